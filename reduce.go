// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitvec

import "math/bits"

// Reductions collapse a value to a single bit or a small count. All of
// them take clean inputs and return clean results.

// RedAnd32 reports whether all lbits bits of the clean value l are set.
func RedAnd32(lbits int, l uint32) bool { return l == Mask32(lbits) }

// RedAnd64 reports whether all lbits bits of the clean value l are set.
func RedAnd64(lbits int, l uint64) bool { return l == Mask64(lbits) }

// RedAndW reports whether all lbits bits of the clean wide value l are set.
//
func RedAndW(lbits int, l []Word) bool {
	words := Words(lbits)
	// Treat the bits above lbits in the top word as set.
	combine := ^Mask32(lbits) | l[words-1]
	for i := 0; i < words-1; i++ {
		combine &= l[i]
	}
	return ^combine == 0
}

// RedOr32 reports whether any bit of the clean value l is set.
func RedOr32(l uint32) bool { return l != 0 }

// RedOr64 reports whether any bit of the clean value l is set.
func RedOr64(l uint64) bool { return l != 0 }

// RedOrW reports whether any bit of the words-long clean value l is set.
//
func RedOrW(words int, l []Word) bool {
	var or Word
	for i := 0; i < words; i++ {
		or |= l[i]
	}
	return or != 0
}

// RedXor32 returns the parity of the clean value l, in bit 0. Dirty upper
// bits.
func RedXor32(l uint32) uint32 { return uint32(bits.OnesCount32(l)) }

// RedXor64 returns the parity of the clean value l, in bit 0. Dirty upper
// bits.
func RedXor64(l uint64) uint32 { return uint32(bits.OnesCount64(l)) }

// RedXorW returns the parity of the words-long clean value l, in bit 0.
// Dirty upper bits.
//
func RedXorW(words int, l []Word) uint32 {
	x := l[0]
	for i := 1; i < words; i++ {
		x ^= l[i]
	}
	return RedXor32(x)
}

// redXorFold32 is the shift-and-fold parity used before the word
// primitives moved to math/bits. Kept for cross-checking in tests.
func redXorFold32(r uint32) uint32 {
	r ^= r >> 1
	r ^= r >> 2
	r ^= r >> 4
	r ^= r >> 8
	r ^= r >> 16
	return r
}

// CountOnes32 returns the number of set bits in the clean value l.
func CountOnes32(l uint32) uint32 { return uint32(bits.OnesCount32(l)) }

// CountOnes64 returns the number of set bits in the clean value l.
func CountOnes64(l uint64) uint32 { return uint32(bits.OnesCount64(l)) }

// CountOnesW returns the number of set bits in the words-long clean value l.
//
func CountOnesW(words int, l []Word) uint32 {
	var n uint32
	for i := 0; i < words; i++ {
		n += CountOnes32(l[i])
	}
	return n
}

// CountBits32 counts the bits of the clean lbits-wide l matching any of the
// three control bits. In two-state logic only 0 and 1 occur, so all ones
// counts set bits, all zeros counts clear bits, and a mix of controls
// matches every bit.
//
func CountBits32(lbits int, l, ctrl0, ctrl1, ctrl2 uint32) uint32 {
	ctrlSum := ctrl0&1 + ctrl1&1 + ctrl2&1
	switch ctrlSum {
	case 3:
		return CountOnes32(l)
	case 0:
		return CountOnes32(^l & Mask32(lbits))
	default:
		return uint32(lbits)
	}
}

// CountBits64 counts the bits of the clean lbits-wide l matching any of the
// three control bits.
//
func CountBits64(lbits int, l uint64, ctrl0, ctrl1, ctrl2 uint32) uint32 {
	return CountBits32(WordBits, uint32(l), ctrl0, ctrl1, ctrl2) +
		CountBits32(lbits-WordBits, uint32(l>>WordBits), ctrl0, ctrl1, ctrl2)
}

// CountBitsW counts the bits of the clean lbits-wide l matching any of the
// three control bits.
//
func CountBitsW(lbits int, l []Word, ctrl0, ctrl1, ctrl2 uint32) uint32 {
	words := Words(lbits)
	var n uint32
	for i := 0; i < words; i++ {
		wbits := WordBits
		if i == words-1 {
			wbits = lbits - WordBits*(words-1)
		}
		n += CountBits32(wbits, l[i], ctrl0, ctrl1, ctrl2)
	}
	return n
}

// OneHot32 reports whether exactly one bit of the clean value l is set.
func OneHot32(l uint32) bool { return l&(l-1) == 0 && l != 0 }

// OneHot64 reports whether exactly one bit of the clean value l is set.
func OneHot64(l uint64) bool { return l&(l-1) == 0 && l != 0 }

// OneHotW reports whether exactly one bit of the words-long clean value l
// is set.
//
func OneHotW(words int, l []Word) bool {
	seen := false
	for i := 0; i < words; i++ {
		if l[i] == 0 {
			continue
		}
		if seen || l[i]&(l[i]-1) != 0 {
			return false
		}
		seen = true
	}
	return seen
}

// OneHot032 reports whether at most one bit of the clean value l is set.
func OneHot032(l uint32) bool { return l&(l-1) == 0 }

// OneHot064 reports whether at most one bit of the clean value l is set.
func OneHot064(l uint64) bool { return l&(l-1) == 0 }

// OneHot0W reports whether at most one bit of the words-long clean value l
// is set.
//
func OneHot0W(words int, l []Word) bool {
	seen := false
	for i := 0; i < words; i++ {
		if l[i] == 0 {
			continue
		}
		if seen || l[i]&(l[i]-1) != 0 {
			return false
		}
		seen = true
	}
	return true
}

// CeilLog2 returns the ceiling of the base-2 logarithm of the clean value
// l, with CeilLog2(0) == 0.
//
func CeilLog2(l uint32) uint32 {
	if l == 0 {
		return 0
	}
	return uint32(bits.Len32(l - 1))
}

// CeilLog264 returns the ceiling of the base-2 logarithm of the clean value
// l, with CeilLog264(0) == 0.
//
func CeilLog264(l uint64) uint32 {
	if l == 0 {
		return 0
	}
	return uint32(bits.Len64(l - 1))
}

// CeilLog2W returns the ceiling of the base-2 logarithm of the words-long
// clean value l.
//
func CeilLog2W(words int, l []Word) uint32 {
	// For a power of two the top set bit is the answer; anything else
	// rounds up by one.
	var adjust uint32
	if CountOnesW(words, l) != 1 {
		adjust = 1
	}
	for i := words - 1; i >= 0; i-- {
		if l[i] != 0 {
			return uint32(i*WordBits+bits.Len32(l[i])-1) + adjust
		}
	}
	return 0
}

// MostSetBitP1W returns the position of the topmost set bit of the
// words-long clean value l, plus one. A zero value returns 0.
//
func MostSetBitP1W(words int, l []Word) uint32 {
	for i := words - 1; i >= 0; i-- {
		if l[i] != 0 {
			return uint32(i*WordBits + bits.Len32(l[i]))
		}
	}
	return 0
}
