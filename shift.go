// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitvec

// Shifts. The shift amount is a runtime value and may exceed the operand
// width: logical shifts then yield zero, arithmetic shifts yield the sign
// bit replicated across the output width. Variants taking a wide shift
// amount first check its upper words, since an amount like 1<<32 must
// overshift rather than alias a small count.

// ShiftL32 returns l<<r, zero when r is 32 or more. Dirty upper bits.
func ShiftL32(l, r uint32) uint32 { return l << r }

// ShiftL64 returns l<<r, zero when r is 64 or more. Dirty upper bits.
func ShiftL64(l uint64, r uint32) uint64 { return l << r }

// ShiftL32W returns l<<r for a wide rbits-wide shift amount. Dirty upper
// bits.
//
func ShiftL32W(rbits int, l uint32, r []Word) uint32 {
	if overshiftW(rbits, r) {
		return 0
	}
	return l << r[0]
}

// ShiftL64W returns l<<r for a wide rbits-wide shift amount. Dirty upper
// bits.
//
func ShiftL64W(rbits int, l uint64, r []Word) uint64 {
	if overshiftW(rbits, r) {
		return 0
	}
	return l << r[0]
}

// ShiftLW stores l<<rd into the obits-wide o and returns o. Clean output
// given clean l. o may alias l.
//
func ShiftLW(obits int, o, l []Word, rd uint32) []Word {
	words := Words(obits)
	if rd >= uint32(obits) { // rd may be huge with the MSB set
		return Zero(obits, o)
	}
	ws := int(rd >> wordLog2)
	off := int(rd & wordSizeBits)
	if off == 0 { // aligned word shift
		for i := words - 1; i >= ws; i-- {
			o[i] = l[i-ws]
		}
		for i := ws - 1; i >= 0; i-- {
			o[i] = 0
		}
	} else {
		// Walk down so that an aliased o never clobbers l words still to
		// be read.
		for i := words - 1; i > ws; i-- {
			o[i] = l[i-ws]<<uint(off) | l[i-ws-1]>>uint(WordBits-off)
		}
		o[ws] = l[0] << uint(off)
		for i := ws - 1; i >= 0; i-- {
			o[i] = 0
		}
		o[words-1] &= Mask32(obits)
	}
	return o
}

// ShiftLWW stores l<<r into the obits-wide o for a wide rbits-wide shift
// amount and returns o. Clean output given clean l. o may alias l.
//
func ShiftLWW(obits, rbits int, o, l, r []Word) []Word {
	if overshiftW(rbits, r) {
		return Zero(obits, o)
	}
	return ShiftLW(obits, o, l, r[0])
}

// ShiftLW64 stores l<<rd into the obits-wide o for a 64-bit shift amount
// and returns o.
//
func ShiftLW64(obits int, o, l []Word, rd uint64) []Word {
	var rw [QWords]Word
	SetQ(rw[:], rd)
	return ShiftLWW(obits, 2*WordBits, o, l, rw[:])
}

// ShiftR32 returns l>>r for clean l, zero when r is 32 or more.
func ShiftR32(l, r uint32) uint32 { return l >> r }

// ShiftR64 returns l>>r for clean l, zero when r is 64 or more.
func ShiftR64(l uint64, r uint32) uint64 { return l >> r }

// ShiftR32W returns l>>r for clean l and a wide rbits-wide shift amount.
//
func ShiftR32W(rbits int, l uint32, r []Word) uint32 {
	if overshiftW(rbits, r) {
		return 0
	}
	return l >> r[0]
}

// ShiftR64W returns l>>r for clean l and a wide rbits-wide shift amount.
//
func ShiftR64W(rbits int, l uint64, r []Word) uint64 {
	if overshiftW(rbits, r) {
		return 0
	}
	return l >> r[0]
}

// ShiftRW stores l>>rd into the obits-wide o and returns o. Clean output
// given clean l. o may alias l.
//
func ShiftRW(obits int, o, l []Word, rd uint32) []Word {
	words := Words(obits)
	if rd >= uint32(obits) { // rd may be huge with the MSB set
		return Zero(obits, o)
	}
	ws := int(rd >> wordLog2)
	off := int(rd & wordSizeBits)
	if off == 0 { // aligned word shift
		copyWords := words - ws
		for i := 0; i < copyWords; i++ {
			o[i] = l[i+ws]
		}
		for i := copyWords; i < words; i++ {
			o[i] = 0
		}
	} else {
		nlow := WordBits - off // bits that end up in the lower word
		words2 := Words(obits - int(rd))
		for i := 0; i < words2; i++ {
			o[i] = l[i+ws] >> uint(off)
			if up := i + ws + 1; up < words {
				o[i] |= l[up] << uint(nlow)
			}
		}
		for i := words2; i < words; i++ {
			o[i] = 0
		}
	}
	return o
}

// ShiftRWW stores l>>r into the obits-wide o for a wide rbits-wide shift
// amount and returns o. Clean output given clean l. o may alias l.
//
func ShiftRWW(obits, rbits int, o, l, r []Word) []Word {
	if overshiftW(rbits, r) {
		return Zero(obits, o)
	}
	return ShiftRW(obits, o, l, r[0])
}

// ShiftRW64 stores l>>rd into the obits-wide o for a 64-bit shift amount
// and returns o.
//
func ShiftRW64(obits int, o, l []Word, rd uint64) []Word {
	var rw [QWords]Word
	SetQ(rw[:], rd)
	return ShiftRWW(obits, 2*WordBits, o, l, rw[:])
}

// ShiftRS32 returns the arithmetic l>>r, where l is a clean lbits-wide
// value. The sign bit comes from lbits; the result is clean to obits.
//
func ShiftRS32(obits, lbits int, l, r uint32) uint32 {
	sign := SignOnes32(lbits, l)
	if r >= WordBits {
		return sign & Mask32(obits)
	}
	signext := ^(Mask32(lbits) >> r) // ones where we shifted past the value
	return l>>r | sign&signext&Mask32(obits)
}

// ShiftRS64 returns the arithmetic l>>r, where l is a clean lbits-wide
// value. The sign bit comes from lbits; the result is clean to obits.
//
func ShiftRS64(obits, lbits int, l uint64, r uint32) uint64 {
	sign := SignOnes64(lbits, l)
	if r >= 2*WordBits {
		return sign & Mask64(obits)
	}
	signext := ^(Mask64(lbits) >> r)
	return l>>r | sign&signext&Mask64(obits)
}

// ShiftRS32W returns the arithmetic l>>r for a wide rbits-wide shift
// amount.
//
func ShiftRS32W(obits, lbits, rbits int, l uint32, r []Word) uint32 {
	if overshiftW(rbits, r) || r[0] >= uint32(obits) {
		return SignOnes32(lbits, l) & Mask32(obits)
	}
	return ShiftRS32(obits, lbits, l, r[0])
}

// ShiftRS64W returns the arithmetic l>>r for a wide rbits-wide shift
// amount.
//
func ShiftRS64W(obits, lbits, rbits int, l uint64, r []Word) uint64 {
	if overshiftW(rbits, r) || r[0] >= uint32(obits) {
		return SignOnes64(lbits, l) & Mask64(obits)
	}
	return ShiftRS64(obits, lbits, l, r[0])
}

// ShiftRSW stores the arithmetic l>>rd into the lbits-wide o and returns
// o. Clean output given clean l. o may alias l.
//
func ShiftRSW(lbits int, o, l []Word, rd uint32) []Word {
	words := Words(lbits)
	lmsw := words - 1
	sign := SignOnes32(lbits, l[lmsw])
	if rd >= uint32(lbits) { // shifting past the end: sign in all of lbits
		for i := 0; i <= lmsw; i++ {
			o[i] = sign
		}
		o[lmsw] &= Mask32(lbits)
		return o
	}
	ws := int(rd >> wordLog2)
	off := int(rd & wordSizeBits)
	if off == 0 { // aligned word shift
		copyWords := words - ws
		for i := 0; i < copyWords; i++ {
			o[i] = l[i+ws]
		}
		o[copyWords-1] |= ^Mask32(lbits) & sign
		for i := copyWords; i < words; i++ {
			o[i] = sign
		}
	} else {
		nlow := WordBits - off // bits that end up in the lower word
		words2 := Words(lbits - int(rd))
		for i := 0; i < words2; i++ {
			o[i] = l[i+ws] >> uint(off)
			if up := i + ws + 1; up < words {
				o[i] |= l[up] << uint(nlow)
			}
		}
		o[words2-1] |= sign & ^Mask32(lbits-off)
		for i := words2; i < words; i++ {
			o[i] = sign
		}
	}
	o[lmsw] &= Mask32(lbits)
	return o
}

// ShiftRSWW stores the arithmetic l>>r into the lbits-wide o for a wide
// rbits-wide shift amount and returns o. o may alias l.
//
func ShiftRSWW(lbits, rbits int, o, l, r []Word) []Word {
	rd := r[0]
	if overshiftW(rbits, r) {
		rd = uint32(lbits) // force the sign-fill path
	}
	return ShiftRSW(lbits, o, l, rd)
}

// ShiftRSW64 stores the arithmetic l>>rd into the lbits-wide o for a
// 64-bit shift amount and returns o.
//
func ShiftRSW64(lbits int, o, l []Word, rd uint64) []Word {
	var rw [QWords]Word
	SetQ(rw[:], rd)
	return ShiftRSWW(lbits, 2*WordBits, o, l, rw[:])
}

// overshiftW reports whether any word of the rbits-wide shift amount r
// above the first is nonzero.
func overshiftW(rbits int, r []Word) bool {
	for i := 1; i < Words(rbits); i++ {
		if r[i] != 0 {
			return true
		}
	}
	return false
}
