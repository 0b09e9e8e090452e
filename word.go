// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitvec

// Word is the storage element of wide values: a wide value is a []Word,
// least-significant word first.
//
type Word = uint32

const (
	// WordBits is the width of a storage element in bits.
	WordBits = 32
	// WordBytes is the size of a storage element in bytes.
	WordBytes = 4
	// QWords is the number of elements backing a uint64.
	QWords = 2

	// MaxWords bounds the word count of operands to the signed
	// multiply/divide and power operations, which keep negated copies of
	// their operands in fixed-size stack scratch buffers.
	MaxWords = 64

	wordSizeBits = WordBits - 1 // bit offset mask within a word
	wordLog2     = 5            // log2(WordBits)
)

// Words returns the number of elements needed to store a value of the given
// bit width.
//
func Words(bits int) int { return (bits + wordSizeBits) >> wordLog2 }

// wordIdx and bitIdx split a bit position into element index and bit offset
// within the element. WordBits is a power of two so these are a shift and a
// mask, never a division.
func wordIdx(bit int) int { return bit >> wordLog2 }
func bitIdx(bit int) int  { return bit & wordSizeBits }

// Mask32 returns a uint32 with the low n bits set. n equal to the word width
// yields all ones: the wrap is handled explicitly rather than left to a
// shift-by-width.
//
func Mask32(n int) uint32 {
	if n&wordSizeBits == 0 {
		return ^uint32(0)
	}
	return uint32(1)<<uint(n&wordSizeBits) - 1
}

// Mask64 returns a uint64 with the low n bits set. As with Mask32, n equal
// to 64 yields all ones.
//
func Mask64(n int) uint64 {
	if n&63 == 0 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(n&63) - 1
}

// Sign32 returns the sign bit of a value of lbits significant bits, in bit 0.
// The input must be clean.
func Sign32(lbits int, v uint32) uint32 { return v >> uint(bitIdx(lbits-1)) }

// Sign64 returns the sign bit of a value of lbits significant bits, in bit 0.
// The input must be clean.
func Sign64(lbits int, v uint64) uint64 { return v >> uint((lbits-1)&63) }

// SignW returns the sign bit of a clean wide value of lbits significant bits,
// in bit 0 of the result.
func SignW(lbits int, l []Word) Word {
	return l[wordIdx(lbits-1)] >> uint(bitIdx(lbits-1))
}

// SignOnes32 returns all ones if the sign bit (relative to lbits) of the
// clean value v is set, else zero.
func SignOnes32(lbits int, v uint32) uint32 { return -Sign32(lbits, v) }

// SignOnes64 is the uint64 form of SignOnes32.
func SignOnes64(lbits int, v uint64) uint64 { return -Sign64(lbits, v) }

// ExtendSign32 returns the sign bit of v (relative to lbits) duplicated into
// every position at and above lbits-1, and zeros below. Or it with the value
// itself to sign extend.
func ExtendSign32(lbits int, v uint32) uint32 { return -(v & (1 << uint(lbits-1))) }

// ExtendSign64 is the uint64 form of ExtendSign32.
func ExtendSign64(lbits int, v uint64) uint64 { return -(v & (1 << uint(lbits-1))) }

// ExtendS32 sign extends a clean value of lbits significant bits across the
// full word. The result is dirty with respect to any output width below 32.
//
func ExtendS32(lbits int, v uint32) uint32 { return ExtendSign32(lbits, v) | v }

// ExtendS64 sign extends a clean value of lbits significant bits across the
// full 64 bits. The result is dirty with respect to any output width below 64.
//
func ExtendS64(lbits int, v uint64) uint64 { return ExtendSign64(lbits, v) | v }

// Zero sets the obits-wide destination to zero and returns it. Clean.
//
func Zero(obits int, o []Word) []Word {
	for i := 0; i < Words(obits); i++ {
		o[i] = 0
	}
	return o
}

// Ones sets the obits-wide destination to all ones below obits and zero
// above. Clean.
//
func Ones(obits int, o []Word) []Word {
	n := Words(obits)
	for i := 0; i < n-1; i++ {
		o[i] = ^Word(0)
	}
	o[n-1] = Mask32(obits)
	return o
}

// Assign copies an obits-wide value. Cleanliness follows the source.
//
func Assign(obits int, o, l []Word) []Word {
	copy(o[:Words(obits)], l)
	return o
}

// Clean copies an obits-wide value, zeroing the bits above obits in the top
// word. Clean output.
//
func Clean(obits int, o, l []Word) []Word {
	n := Words(obits)
	copy(o[:n-1], l)
	o[n-1] = l[n-1] & Mask32(obits)
	return o
}

// CleanInPlace masks the bits above obits in the top word of o. Clean output.
//
func CleanInPlace(obits int, o []Word) []Word {
	o[Words(obits)-1] &= Mask32(obits)
	return o
}

// SetQ stores a uint64 into the two low words of o. Words above the second
// are left untouched.
//
func SetQ(o []Word, v uint64) {
	o[0] = Word(v)
	o[1] = Word(v >> WordBits)
}

// GetQ assembles a uint64 from the two low words of l.
//
func GetQ(l []Word) uint64 {
	return uint64(l[0]) | uint64(l[1])<<WordBits
}

// SetW stores a uint32 into the low word of o and zeroes the second word, so
// that GetQ round-trips.
func SetW(o []Word, v uint32) {
	o[0] = v
	o[1] = 0
}

// ExtendW32 zero extends the clean uint32 value v into an obits-wide
// destination. Clean.
//
func ExtendW32(obits int, o []Word, v uint32) []Word {
	o[0] = v
	for i := 1; i < Words(obits); i++ {
		o[i] = 0
	}
	return o
}

// ExtendWQ zero extends the clean uint64 value v into an obits-wide
// destination. Clean.
//
func ExtendWQ(obits int, o []Word, v uint64) []Word {
	SetQ(o, v)
	for i := QWords; i < Words(obits); i++ {
		o[i] = 0
	}
	return o
}

// ExtendW zero extends a clean lbits-wide value into an obits-wide
// destination, obits > lbits. Clean.
//
func ExtendW(obits, lbits int, o, l []Word) []Word {
	lw := Words(lbits)
	for i := lw; i < Words(obits); i++ {
		o[i] = 0
	}
	copy(o[:lw], l)
	return o
}

// ExtendSW32 sign extends the clean uint32 value of lbits significant bits
// into an obits-wide destination. Dirty: every bit above lbits is the sign,
// including bits above obits in the top word.
//
func ExtendSW32(obits, lbits int, o []Word, v uint32) []Word {
	o[0] = v
	if Sign32(lbits, v)&1 != 0 {
		o[0] |= ^Mask32(lbits)
		for i := 1; i < Words(obits); i++ {
			o[i] = ^Word(0)
		}
	} else {
		for i := 1; i < Words(obits); i++ {
			o[i] = 0
		}
	}
	return o
}

// ExtendSWQ sign extends the clean uint64 value of lbits significant bits
// into an obits-wide destination. Dirty.
//
func ExtendSWQ(obits, lbits int, o []Word, v uint64) []Word {
	SetQ(o, v)
	if o[1]>>uint(bitIdx(lbits-1))&1 != 0 {
		o[1] |= ^Mask32(lbits)
		for i := QWords; i < Words(obits); i++ {
			o[i] = ^Word(0)
		}
	} else {
		for i := QWords; i < Words(obits); i++ {
			o[i] = 0
		}
	}
	return o
}

// ExtendSW sign extends a clean lbits-wide value into an obits-wide
// destination, obits > lbits > 64. Dirty.
//
func ExtendSW(obits, lbits int, o, l []Word) []Word {
	lw := Words(lbits)
	o[lw-1] = l[lw-1]
	if SignW(lbits, l)&1 != 0 {
		o[lw-1] |= ^Mask32(lbits)
		for i := lw; i < Words(obits); i++ {
			o[i] = ^Word(0)
		}
	} else {
		for i := lw; i < Words(obits); i++ {
			o[i] = 0
		}
	}
	copy(o[:lw-1], l)
	return o
}

// BitW returns bit number bit of l, in bit 0 of the result, with no bounds
// check against the declared width (see BitSel for the checked form).
func BitW(l []Word, bit int) Word {
	return l[wordIdx(bit)] >> uint(bitIdx(bit))
}

// SetBit32 returns o with the given bit replaced by the low bit of v.
func SetBit32(o uint32, bit int, v uint32) uint32 {
	return o&^(1<<uint(bit)) | (v&1)<<uint(bit)
}

// SetBit64 returns o with the given bit replaced by the low bit of v.
func SetBit64(o uint64, bit int, v uint64) uint64 {
	return o&^(1<<uint(bit)) | (v&1)<<uint(bit)
}

// SetBitW sets bit number bit of o to the low bit of v, leaving every other
// bit untouched.
//
func SetBitW(o []Word, bit int, v Word) {
	w := wordIdx(bit)
	o[w] = o[w]&^(1<<uint(bitIdx(bit))) | (v&1)<<uint(bitIdx(bit))
}
