// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitvec

// Packing converts between a slice of lbits-wide elements and a single
// packed value. Element 0 of the slice is the most significant group of the
// packed value, so a queue reads left to right like the source vector. All
// variants use the same ordering.

// Element is any unsigned type a packed-array element fits in.
type Element interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Pack32 packs the lbits-wide elements of q into a uint32, q[0] topmost.
// Clean output given clean elements.
//
func Pack32[E Element](lbits int, q []E) uint32 {
	var out uint32
	n := len(q)
	for i := 0; i < n; i++ {
		out |= uint32(q[n-1-i]) << uint(i*lbits)
	}
	return out
}

// Pack64 packs the lbits-wide elements of q into a uint64, q[0] topmost.
// Clean output given clean elements.
//
func Pack64[E Element](lbits int, q []E) uint64 {
	var out uint64
	n := len(q)
	for i := 0; i < n; i++ {
		out |= uint64(q[n-1-i]) << uint(i*lbits)
	}
	return out
}

// PackW packs the lbits-wide elements of q into the obits-wide o, q[0]
// topmost, and returns o. Elements past the output width are dropped.
// Clean output.
//
func PackW[E Element](obits, lbits int, o []Word, q []E) []Word {
	Zero(obits, o)
	n := len(q)
	for i := 0; i < n; i++ {
		lbit := i * lbits
		if lbit >= obits {
			break
		}
		hbit := lbit + lbits - 1
		if hbit > obits-1 {
			hbit = obits - 1
		}
		InsertW64(o, uint64(q[n-1-i]), hbit, lbit, obits)
	}
	return o
}

// PackWW packs the clean lbits-wide elements of q into the obits-wide o,
// q[0] topmost, and returns o. Elements past the output width are dropped.
// Clean output.
//
func PackWW(obits, lbits int, o []Word, q [][]Word) []Word {
	Zero(obits, o)
	n := len(q)
	for i := 0; i < n; i++ {
		lbit := i * lbits
		if lbit >= obits {
			break
		}
		hbit := lbit + lbits - 1
		if hbit > obits-1 {
			hbit = obits - 1
		}
		InsertW(o, q[n-1-i], hbit, lbit, obits)
	}
	return o
}

// Unpack32 splits the clean rbits-wide value from into ceil(rbits/lbits)
// elements of lbits bits each, the topmost group first. The result slice is
// freshly allocated: unpacking feeds a queue, not a preallocated vector.
//
func Unpack32[E Element](lbits, rbits int, from uint32) []E {
	size := (rbits + lbits - 1) / lbits
	q := make([]E, size)
	for i := 0; i < size; i++ {
		q[size-1-i] = E(from >> uint(i*lbits) & Mask32(lbits))
	}
	return q
}

// Unpack64 splits the clean rbits-wide value from into ceil(rbits/lbits)
// elements of lbits bits each, the topmost group first.
//
func Unpack64[E Element](lbits, rbits int, from uint64) []E {
	size := (rbits + lbits - 1) / lbits
	q := make([]E, size)
	for i := 0; i < size; i++ {
		q[size-1-i] = E(from >> uint(i*lbits) & Mask64(lbits))
	}
	return q
}

// UnpackW splits the clean rbits-wide value from into ceil(rbits/lbits)
// elements of lbits bits each, the topmost group first. When lbits does not
// divide rbits the topmost element holds only the remaining bits.
//
func UnpackW[E Element](lbits, rbits int, from []Word) []E {
	size := (rbits + lbits - 1) / lbits
	q := make([]E, size)
	for i := 0; i < size; i++ {
		width := lbits
		if rem := rbits - i*lbits; rem < width {
			width = rem
		}
		q[size-1-i] = E(Sel64(rbits, from, i*lbits, width) & Mask64(width))
	}
	return q
}

// UnpackWW splits the clean rbits-wide value from into ceil(rbits/lbits)
// freshly allocated lbits-wide elements, the topmost group first. When
// lbits does not divide rbits the topmost element holds only the remaining
// bits.
//
func UnpackWW(lbits, rbits int, from []Word) [][]Word {
	size := (rbits + lbits - 1) / lbits
	q := make([][]Word, size)
	for i := 0; i < size; i++ {
		width := lbits
		if rem := rbits - i*lbits; rem < width {
			width = rem
		}
		e := make([]Word, Words(lbits))
		for b := 0; b < width; b++ {
			SetBitW(e, b, BitW(from, i*lbits+b))
		}
		q[size-1-i] = e
	}
	return q
}
