// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

//go:build !bitvecdebug

package bitvec

// debugChecks enables internal bounds assertions on the fixed-capacity
// scratch buffers used by the signed operations. Off in regular builds;
// violating the MaxWords contract is then undefined behavior.
const debugChecks = false
