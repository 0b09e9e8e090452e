// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitvec

// Wide arithmetic. Unless stated otherwise the operations here propagate
// carries across the full word count and leave the top word dirty; callers
// mask with Clean when a clean value is needed (comparisons, reductions,
// division). Division and remainder by zero yield zero, and the signed
// overflow case MIN/-1 yields zero as well, so generated expressions never
// trap at run time.

// NegateW stores the two's complement of the words-long value l into o and
// returns o. Dirty top word. o may alias l.
//
func NegateW(words int, o, l []Word) []Word {
	carry := true
	for i := 0; i < words; i++ {
		o[i] = ^l[i]
		if carry {
			o[i]++
			carry = o[i] == 0
		}
	}
	return o
}

// AddW stores l+r into the words-long o and returns o. Dirty top word.
// o may alias l or r.
//
func AddW(words int, o, l, r []Word) []Word {
	var carry uint64
	for i := 0; i < words; i++ {
		carry += uint64(l[i]) + uint64(r[i])
		o[i] = Word(carry)
		carry >>= WordBits
	}
	return o
}

// SubW stores l-r into the words-long o and returns o. Dirty top word.
// o may alias l or r.
//
func SubW(words int, o, l, r []Word) []Word {
	// l + ^r + 1, with the +1 folded into the first carry.
	var carry uint64 = 1
	for i := 0; i < words; i++ {
		carry += uint64(l[i]) + uint64(^r[i])
		o[i] = Word(carry)
		carry >>= WordBits
	}
	return o
}

// MulS32 returns the signed product of the lbits-wide l and rbits-wide r.
// Dirty upper bits.
//
func MulS32(lbits, rbits int, l, r uint32) uint32 {
	return uint32(int32(ExtendS32(lbits, l)) * int32(ExtendS32(rbits, r)))
}

// MulS64 returns the signed product of the lbits-wide l and rbits-wide r.
// Dirty upper bits.
//
func MulS64(lbits, rbits int, l, r uint64) uint64 {
	return uint64(int64(ExtendS64(lbits, l)) * int64(ExtendS64(rbits, r)))
}

// MulW stores the low words of l*r into the words-long o and returns o.
// Schoolbook multiplication; dirty top word. o must not alias l or r.
//
func MulW(words int, o, l, r []Word) []Word {
	for i := 0; i < words; i++ {
		o[i] = 0
	}
	for i := 0; i < words; i++ {
		var carry uint64
		for j := 0; j+i < words; j++ {
			carry += uint64(o[i+j]) + uint64(l[i])*uint64(r[j])
			o[i+j] = Word(carry)
			carry >>= WordBits
			// Ripple any leftover carry into the remaining words.
			for k := i + j + 1; carry != 0 && k < words; k++ {
				carry += uint64(o[k])
				o[k] = Word(carry)
				carry >>= WordBits
			}
		}
	}
	return o
}

// MulSW stores the low lbits of the signed product of the clean lbits-wide
// l and r into o and returns o. Clean output. o must not alias l or r.
//
func MulSW(lbits int, o, l, r []Word) []Word {
	words := Words(lbits)
	if debugChecks && words > MaxWords {
		panic("bitvec: operand too wide")
	}
	// Work on absolute values, multiply, then restore the result sign.
	var lpos, rpos [MaxWords]Word
	lneg := SignW(lbits, l) != 0
	rneg := SignW(lbits, r) != 0
	if lneg {
		CleanInPlace(lbits, NegateW(words, lpos[:words], l))
	} else {
		copy(lpos[:words], l)
	}
	if rneg {
		CleanInPlace(lbits, NegateW(words, rpos[:words], r))
	} else {
		copy(rpos[:words], r)
	}
	MulW(words, o, lpos[:words], rpos[:words])
	CleanInPlace(lbits, o)
	if lneg != rneg {
		CleanInPlace(lbits, NegateW(words, o, o))
	}
	return o
}

// Div32 returns l/r for clean operands, or 0 when r is zero.
//
func Div32(l, r uint32) uint32 {
	if r == 0 {
		return 0
	}
	return l / r
}

// Div64 returns l/r for clean operands, or 0 when r is zero.
//
func Div64(l, r uint64) uint64 {
	if r == 0 {
		return 0
	}
	return l / r
}

// Mod32 returns l%r for clean operands, or 0 when r is zero.
//
func Mod32(l, r uint32) uint32 {
	if r == 0 {
		return 0
	}
	return l % r
}

// Mod64 returns l%r for clean operands, or 0 when r is zero.
//
func Mod64(l, r uint64) uint64 {
	if r == 0 {
		return 0
	}
	return l % r
}

// DivS32 returns the signed quotient of the lbits-wide l and r. Division by
// zero and MIN/-1 both return 0. Dirty upper bits.
//
func DivS32(lbits int, l, r uint32) uint32 {
	ls, rs := int32(ExtendS32(lbits, l)), int32(ExtendS32(lbits, r))
	if rs == 0 || (ls == -0x80000000 && rs == -1) {
		return 0
	}
	return uint32(ls / rs)
}

// DivS64 returns the signed quotient of the lbits-wide l and r. Division by
// zero and MIN/-1 both return 0. Dirty upper bits.
//
func DivS64(lbits int, l, r uint64) uint64 {
	ls, rs := int64(ExtendS64(lbits, l)), int64(ExtendS64(lbits, r))
	if rs == 0 || (ls == -0x8000000000000000 && rs == -1) {
		return 0
	}
	return uint64(ls / rs)
}

// ModS32 returns the signed remainder of the lbits-wide l and r, with the
// sign of the dividend. Division by zero and MIN/-1 both return 0. Dirty
// upper bits.
//
func ModS32(lbits int, l, r uint32) uint32 {
	ls, rs := int32(ExtendS32(lbits, l)), int32(ExtendS32(lbits, r))
	if rs == 0 || (ls == -0x80000000 && rs == -1) {
		return 0
	}
	return uint32(ls % rs)
}

// ModS64 returns the signed remainder of the lbits-wide l and r, with the
// sign of the dividend. Division by zero and MIN/-1 both return 0. Dirty
// upper bits.
//
func ModS64(lbits int, l, r uint64) uint64 {
	ls, rs := int64(ExtendS64(lbits, l)), int64(ExtendS64(lbits, r))
	if rs == 0 || (ls == -0x8000000000000000 && rs == -1) {
		return 0
	}
	return uint64(ls % rs)
}

// divmodW computes l/r (or l%r when wantMod is set) for clean lbits-wide
// operands, storing the clean result in o. Division by zero yields zero.
// o may alias l or r.
func divmodW(lbits int, o, l, r []Word, wantMod bool) []Word {
	words := Words(lbits)
	if debugChecks && words > MaxWords {
		panic("bitvec: operand too wide")
	}

	// Top nonzero word of the divisor.
	rwords := 0
	for i := words - 1; i >= 0; i-- {
		if r[i] != 0 {
			rwords = i + 1
			break
		}
	}
	if rwords == 0 {
		return Zero(lbits, o)
	}

	if rwords == 1 {
		// Single-word divisor: short division with a 64-bit window.
		d := uint64(r[0])
		var q [MaxWords]Word
		var rem uint64
		for i := words - 1; i >= 0; i-- {
			cur := rem<<WordBits | uint64(l[i])
			q[i] = Word(cur / d)
			rem = cur % d
		}
		if wantMod {
			Zero(lbits, o)
			o[0] = Word(rem)
			return o
		}
		copy(o, q[:words])
		return o
	}

	// Multi-word divisor: restoring bit-by-bit long division. Slow, but
	// correct for any width and alias-safe via the scratch buffers.
	var q, rem [MaxWords]Word
	for i := lbits - 1; i >= 0; i-- {
		// rem = rem<<1 | bit i of l
		var carry Word
		for j := 0; j < words; j++ {
			next := rem[j] >> wordSizeBits
			rem[j] = rem[j]<<1 | carry
			carry = next
		}
		rem[0] |= l[wordIdx(i)] >> uint(bitIdx(i)) & 1
		// If rem >= r, subtract and set the quotient bit. A carry out of
		// the top word (possible when lbits fills it exactly) means the
		// shifted remainder already exceeds any divisor.
		ge := carry != 0
		for j := words - 1; !ge; j-- {
			if j < 0 || rem[j] > r[j] {
				ge = true
				break
			}
			if rem[j] < r[j] {
				break
			}
		}
		if ge {
			SubW(words, rem[:words], rem[:words], r)
			q[wordIdx(i)] |= 1 << uint(bitIdx(i))
		}
	}
	if wantMod {
		copy(o, rem[:words])
	} else {
		copy(o, q[:words])
	}
	return o
}

// DivW stores l/r into o for clean lbits-wide operands and returns o.
// Clean output; division by zero yields zero. o may alias l or r.
//
func DivW(lbits int, o, l, r []Word) []Word {
	return divmodW(lbits, o, l, r, false)
}

// ModW stores l%r into o for clean lbits-wide operands and returns o.
// Clean output; division by zero yields zero. o may alias l or r.
//
func ModW(lbits int, o, l, r []Word) []Word {
	return divmodW(lbits, o, l, r, true)
}

func divmodSW(lbits int, o, l, r []Word, wantMod bool) []Word {
	words := Words(lbits)
	if debugChecks && words > MaxWords {
		panic("bitvec: operand too wide")
	}
	// MIN/-1 overflows the negated quotient; define it as zero, matching
	// the narrow forms.
	if minDivOverflowW(lbits, l, r) {
		return Zero(lbits, o)
	}
	// Operate on absolute values, then restore the result sign: the
	// quotient is negative when operand signs differ, the remainder takes
	// the sign of the dividend.
	var lpos, rpos [MaxWords]Word
	lneg := SignW(lbits, l) != 0
	rneg := SignW(lbits, r) != 0
	if lneg {
		CleanInPlace(lbits, NegateW(words, lpos[:words], l))
	} else {
		copy(lpos[:words], l)
	}
	if rneg {
		CleanInPlace(lbits, NegateW(words, rpos[:words], r))
	} else {
		copy(rpos[:words], r)
	}
	divmodW(lbits, o, lpos[:words], rpos[:words], wantMod)
	neg := lneg != rneg
	if wantMod {
		neg = lneg
	}
	if neg {
		CleanInPlace(lbits, NegateW(words, o, o))
	}
	return o
}

// minDivOverflowW reports whether l is the most negative lbits-wide value
// and r is -1.
func minDivOverflowW(lbits int, l, r []Word) bool {
	words := Words(lbits)
	for i := 0; i < words-1; i++ {
		if l[i] != 0 || r[i] != ^Word(0) {
			return false
		}
	}
	return l[words-1] == 1<<uint(bitIdx(lbits-1)) && r[words-1] == Mask32(lbits)
}

// DivSW stores the signed quotient of the clean lbits-wide l and r into o
// and returns o. Clean output; division by zero yields zero. o must not
// alias l or r.
//
func DivSW(lbits int, o, l, r []Word) []Word {
	return divmodSW(lbits, o, l, r, false)
}

// ModSW stores the signed remainder of the clean lbits-wide l and r into o
// and returns o, with the sign of the dividend. Clean output; division by
// zero yields zero. o must not alias l or r.
//
func ModSW(lbits int, o, l, r []Word) []Word {
	return divmodSW(lbits, o, l, r, true)
}
