// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitvec

// Bit-range insertion and selection. Insertion copies the low bits of a
// source into an arbitrary [hbit:lbit] range of a destination, preserving
// every destination bit outside the range. rbits is the declared width of
// the destination: a cleaning mask is applied to the topmost written word
// only when that word is also the destination's topmost word, so bits above
// the declared width are never set by an insertion into the top word.

// Insert32 returns dst with bits [hbit:lbit] replaced by the low bits of
// src. dst is rbits wide; src may be dirty. Clean output given a clean dst.
//
func Insert32(dst, src uint32, hbit, lbit, rbits int) uint32 {
	cleanmask := Mask32(rbits)
	insmask := Mask32(hbit-lbit+1) << uint(lbit)
	return dst&^insmask | (src<<uint(lbit))&insmask&cleanmask
}

// Insert64 returns dst with bits [hbit:lbit] replaced by the low bits of
// src. dst is rbits wide; src may be dirty. Clean output given a clean dst.
//
func Insert64(dst, src uint64, hbit, lbit, rbits int) uint64 {
	cleanmask := Mask64(rbits)
	insmask := Mask64(hbit-lbit+1) << uint(lbit)
	return dst&^insmask | (src<<uint(lbit))&insmask&cleanmask
}

// InsertW32 writes the low hbit-lbit+1 bits of src into bits [hbit:lbit] of
// the rbits-wide destination o. src may be dirty; the range must fit within
// 32 bits. o must not alias src's backing store (src is scalar; o is only
// read-modify-written inside the range).
//
func InsertW32(o []Word, src uint32, hbit, lbit, rbits int) []Word {
	hoff, loff, roff := bitIdx(hbit), bitIdx(lbit), bitIdx(rbits)
	hword, lword, rword := wordIdx(hbit), wordIdx(lbit), wordIdx(rbits)
	cleanmask := ^Word(0)
	if hword == rword {
		cleanmask = Mask32(roff)
	}

	if hoff == wordSizeBits && loff == 0 {
		// Whole-word insertion.
		o[lword] = src & cleanmask
	} else if hword == lword {
		// Range contained in one destination word.
		insmask := Mask32(hoff-loff+1) << uint(loff)
		o[lword] = o[lword]&^insmask | (src<<uint(loff))&insmask&cleanmask
	} else {
		// Range crosses a word boundary.
		hinsmask := Mask32(hoff + 1)
		linsmask := Mask32(WordBits-loff) << uint(loff)
		nright := WordBits - loff // bits that land in the low word
		o[lword] = o[lword]&^linsmask | (src<<uint(loff))&linsmask
		// When lword is the final writable word, hword is past the end of
		// the destination and must not be touched.
		if !(hword == rword && roff == 0) {
			o[hword] = o[hword]&^hinsmask | (src>>uint(nright))&hinsmask&cleanmask
		}
	}
	return o
}

// InsertW64 writes the low hbit-lbit+1 bits of src into bits [hbit:lbit] of
// the rbits-wide destination o. src may be dirty; the range must fit within
// 64 bits.
//
func InsertW64(o []Word, src uint64, hbit, lbit, rbits int) []Word {
	var lw [QWords]Word
	SetQ(lw[:], src)
	return InsertW(o, lw[:], hbit, lbit, rbits)
}

// InsertW writes the low hbit-lbit+1 bits of the wide source l into bits
// [hbit:lbit] of the rbits-wide destination o. l may be dirty. o must not
// alias l.
//
func InsertW(o, l []Word, hbit, lbit, rbits int) []Word {
	hoff, loff, roff := bitIdx(hbit), bitIdx(lbit), bitIdx(rbits)
	hword, lword, rword := wordIdx(hbit), wordIdx(lbit), wordIdx(rbits)
	words := Words(hbit - lbit + 1)
	// Cleaning mask for the top word of the assignment; a no-op unless the
	// assignment reaches the destination's top word.
	cleanmask := ^Word(0)
	if hword == rword {
		cleanmask = Mask32(roff)
	}

	switch {
	case hoff == wordSizeBits && loff == 0:
		// Aligned fast path: whole-word moves.
		for i := 0; i < words-1; i++ {
			o[lword+i] = l[i]
		}
		o[hword] = l[words-1] & cleanmask
	case loff == 0:
		// Aligned start, partial top word.
		for i := 0; i < words-1; i++ {
			o[lword+i] = l[i]
		}
		hinsmask := Mask32(hoff + 1)
		o[hword] = o[hword]&^hinsmask | l[words-1]&hinsmask&cleanmask
	default:
		hinsmask := Mask32(hoff + 1)
		linsmask := Mask32(WordBits-loff) << uint(loff)
		nright := WordBits - loff // bits that land in the lower word
		for i := 0; i < words; i++ {
			{ // lower destination word
				ow := lword + i
				d := l[i] << uint(loff)
				od := o[ow]&^linsmask | d&linsmask
				if ow == hword {
					o[ow] = o[ow]&^hinsmask | od&hinsmask&cleanmask
				} else {
					o[ow] = od
				}
			}
			{ // upper destination word
				ow := lword + i + 1
				if ow <= hword {
					d := l[i] >> uint(nright)
					od := d&^linsmask | o[ow]&linsmask
					if ow == hword {
						o[ow] = o[ow]&^hinsmask | od&hinsmask&cleanmask
					} else {
						o[ow] = od
					}
				}
			}
		}
	}
	return o
}

// BitSel returns bit number bit of the clean lbits-wide value l in bit 0 of
// the result (upper result bits dirty). Selecting past the declared width
// returns all ones: real hardware tolerates out-of-range array indexing, and
// all ones is likelier to surface the bug than zeros.
//
func BitSel(lbits int, l []Word, bit uint32) uint32 {
	if bit > uint32(lbits) {
		return ^uint32(0)
	}
	return l[wordIdx(int(bit))] >> uint(bitIdx(int(bit)))
}

// Sel extracts width bits of l starting at lsb into a uint32 (upper result
// bits dirty). lbits is l's declared width; an out-of-range selection
// returns all ones.
//
func Sel(lbits int, l []Word, lsb, width int) uint32 {
	msb := lsb + width - 1
	switch {
	case msb >= lbits:
		return ^uint32(0)
	case wordIdx(msb) == wordIdx(lsb):
		return l[wordIdx(lsb)] >> uint(bitIdx(lsb))
	default:
		// Extraction spans two words.
		nlow := WordBits - bitIdx(lsb)
		return l[wordIdx(msb)]<<uint(nlow) | l[wordIdx(lsb)]>>uint(bitIdx(lsb))
	}
}

// Sel64 extracts width bits of l starting at lsb into a uint64 (upper result
// bits dirty). An out-of-range selection returns all ones.
//
func Sel64(lbits int, l []Word, lsb, width int) uint64 {
	msb := lsb + width - 1
	switch {
	case msb > lbits:
		return ^uint64(0)
	case wordIdx(msb) == wordIdx(lsb):
		return uint64(l[wordIdx(lsb)] >> uint(bitIdx(lsb)))
	case wordIdx(msb) == wordIdx(lsb)+1:
		nlow := WordBits - bitIdx(lsb)
		hi := uint64(l[wordIdx(msb)])
		lo := uint64(l[wordIdx(lsb)] >> uint(bitIdx(lsb)))
		return hi<<uint(nlow) | lo
	default:
		// Extraction spans three words.
		nlow := WordBits - bitIdx(lsb)
		hi := uint64(l[wordIdx(msb)])
		mid := uint64(l[wordIdx(lsb)+1])
		lo := uint64(l[wordIdx(lsb)] >> uint(bitIdx(lsb)))
		return hi<<uint(nlow+WordBits) | mid<<uint(nlow) | lo
	}
}

// SelW extracts width bits of the clean lbits-wide value l starting at lsb
// into the obits-wide destination o, obits == width. An out-of-range
// selection yields all ones (clean); otherwise the result's top word is
// dirty for unaligned lsb. o must not alias l.
//
func SelW(obits, lbits int, o, l []Word, lsb, width int) []Word {
	msb := lsb + width - 1
	ws := wordIdx(lsb)
	switch {
	case msb > lbits:
		for i := 0; i < Words(obits)-1; i++ {
			o[i] = ^Word(0)
		}
		o[Words(obits)-1] = Mask32(obits)
	case bitIdx(lsb) == 0:
		// Word-aligned extract.
		for i := 0; i < Words(obits); i++ {
			o[i] = l[i+ws]
		}
	default:
		loff := bitIdx(lsb)
		nlow := WordBits - loff // bits taken from the lower source word
		words := Words(msb - lsb + 1)
		for i := 0; i < words; i++ {
			o[i] = l[i+ws] >> uint(loff)
			if up := i + ws + 1; up <= wordIdx(msb) {
				o[i] |= l[up] << uint(nlow)
			}
		}
		for i := words; i < Words(obits); i++ {
			o[i] = 0
		}
	}
	return o
}
