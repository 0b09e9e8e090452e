// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package bitvec implements runtime arithmetic on arbitrary-width bit vectors,
the value representation used by compiled hardware simulations: signals from
one to several thousand bits wide emulated with fixed-size machine words.

A wide value is a []Word (Word is uint32), least-significant word first, bit 0
of the vector at bit 0 of word 0. The declared bit width of a value is never
stored with it; it is passed explicitly to every operation, which lets the
same backing array be reinterpreted under different widths for extension and
selection without copying. Values up to 32 bits use plain uint32, up to 64
bits plain uint64; function names carry a "64" or "W" suffix for the uint64
and wide forms.

All operations are pure functions over caller-owned buffers: wide destinations
are allocated and sized by the caller to Words(width) elements, written in
place and returned for chaining. The package never allocates on arithmetic
paths (unpacking into a dynamic collection is the one documented exception)
and every function is safe to call concurrently on disjoint buffers.

Results are either "clean" (bits above the declared width guaranteed zero) or
"dirty" (bits above the declared width undefined); each operation documents
which, and Clean re-establishes the invariant where a caller needs it.
Comparisons and reductions require clean operands.

Degenerate inputs produce defined results rather than faults: division and
modulus by zero yield 0, the signed overflow case (minimum value divided by
minus one) yields 0, shift amounts at or beyond the declared width yield zero
(logical) or all sign bits (arithmetic), and out-of-range bit selection yields
all ones.
*/
package bitvec
