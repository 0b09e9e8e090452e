// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitvec

// AndW computes the bitwise AND of two wide values of equal word count.
// The result is clean if either input is clean. o may alias l or r.
//
func AndW(o, l, r []Word) []Word {
	for i := range o {
		o[i] = l[i] & r[i]
	}
	return o
}

// OrW computes the bitwise OR of two wide values of equal word count.
// The result is clean only if both inputs are clean. o may alias l or r.
//
func OrW(o, l, r []Word) []Word {
	for i := range o {
		o[i] = l[i] | r[i]
	}
	return o
}

// XorW computes the bitwise XOR of two wide values of equal word count.
// The result is clean only if both inputs are clean. o may alias l or r.
//
func XorW(o, l, r []Word) []Word {
	for i := range o {
		o[i] = l[i] ^ r[i]
	}
	return o
}

// NotW computes the bitwise NOT of a wide value. The result is always dirty:
// bits above the declared width come out inverted. o may alias l.
//
func NotW(o, l []Word) []Word {
	for i := range o {
		o[i] = ^l[i]
	}
	return o
}

// EqW reports whether two clean wide values of equal word count are equal.
//
func EqW(l, r []Word) bool {
	var ne Word
	for i := range l {
		ne |= l[i] ^ r[i]
	}
	return ne == 0
}

// ChangeXorW returns a nonzero value iff the two wide values differ in any
// word. Used for change detection; both inputs must be clean.
func ChangeXorW(l, r []Word) Word {
	var d Word
	for i := range l {
		d |= l[i] ^ r[i]
	}
	return d
}

// CmpW compares two clean wide values of equal word count as unsigned
// integers, returning -1, 0 or +1.
//
func CmpW(l, r []Word) int {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i] > r[i] {
			return 1
		}
		if l[i] < r[i] {
			return -1
		}
	}
	return 0
}

// CmpSW compares two clean lbits-wide values as signed two's-complement
// integers, returning -1, 0 or +1. The sign bit is taken relative to lbits,
// not the storage width.
//
func CmpSW(lbits int, l, r []Word) int {
	i := Words(lbits) - 1
	lsign := SignW(lbits, l) & 1
	rsign := SignW(lbits, r) & 1
	if lsign == 0 && rsign != 0 {
		return 1
	}
	if lsign != 0 && rsign == 0 {
		return -1
	}
	// Same sign: the unsigned ordering of the two's-complement images is the
	// signed ordering.
	for ; i >= 0; i-- {
		if l[i] > r[i] {
			return 1
		}
		if l[i] < r[i] {
			return -1
		}
	}
	return 0
}

// CmpS32 compares two clean lbits-wide uint32 values as signed integers,
// returning -1, 0 or +1.
//
func CmpS32(lbits int, l, r uint32) int {
	ls := int64(ExtendS64(lbits, uint64(l)))
	rs := int64(ExtendS64(lbits, uint64(r)))
	switch {
	case ls < rs:
		return -1
	case ls > rs:
		return 1
	}
	return 0
}

// CmpS64 compares two clean lbits-wide uint64 values as signed integers,
// returning -1, 0 or +1.
//
func CmpS64(lbits int, l, r uint64) int {
	ls := int64(ExtendS64(lbits, l))
	rs := int64(ExtendS64(lbits, r))
	switch {
	case ls < rs:
		return -1
	case ls > rs:
		return 1
	}
	return 0
}
