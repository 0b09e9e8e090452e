// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitvec

// TimeSource supplies the current simulation time. Generated expressions
// referencing time never read a clock directly: the environment injects
// whatever notion of time it has, and a nil source reads as time zero.
//
type TimeSource func() uint64

// FixedTime returns a TimeSource pinned to t.
func FixedTime(t uint64) TimeSource {
	return func() uint64 { return t }
}

// Time returns the current time, or 0 when no source is set.
//
func (ts TimeSource) Time() uint64 {
	if ts == nil {
		return 0
	}
	return ts()
}

// Time32 returns the low 32 bits of the current time.
func (ts TimeSource) Time32() uint32 { return uint32(ts.Time()) }

// TimeD returns the current time as a float64.
func (ts TimeSource) TimeD() float64 { return float64(ts.Time()) }
