// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitvec

// Concatenation, replication and bit streaming. Concatenation places l
// above r: the result holds r in bits [rbits-1:0] and l above it. All
// operands must be clean; wide results are clean.

// Concat32 returns l++r where r is rbits wide. Dirty upper bits.
func Concat32(rbits int, l, r uint32) uint32 { return l<<uint(rbits) | r }

// Concat64 returns l++r where r is rbits wide. Dirty upper bits.
func Concat64(rbits int, l, r uint64) uint64 { return l<<uint(rbits) | r }

// ConcatW stores l++r into the obits-wide o, where l is lbits wide and r
// rbits wide, and returns o. o must not alias l or r.
//
func ConcatW(obits, lbits, rbits int, o, l, r []Word) []Word {
	rwords := Words(rbits)
	copy(o[:rwords], r[:rwords])
	for i := rwords; i < Words(obits); i++ {
		o[i] = 0
	}
	return InsertW(o, l, rbits+lbits-1, rbits, obits)
}

// ConcatW64 stores l++r into the obits-wide o for scalar operands up to 64
// bits each and returns o.
//
func ConcatW64(obits, lbits, rbits int, o []Word, l, r uint64) []Word {
	SetQ(o, r)
	for i := QWords; i < Words(obits); i++ {
		o[i] = 0
	}
	return InsertW64(o, l, rbits+lbits-1, rbits, obits)
}

// ConcatWW64 stores l++r into the obits-wide o for a wide l and a scalar r
// up to 64 bits and returns o. o must not alias l.
//
func ConcatWW64(obits, lbits, rbits int, o, l []Word, r uint64) []Word {
	SetQ(o, r)
	for i := QWords; i < Words(obits); i++ {
		o[i] = 0
	}
	return InsertW(o, l, rbits+lbits-1, rbits, obits)
}

// ConcatW64W stores l++r into the obits-wide o for a scalar l up to 64 bits
// and a wide r, and returns o. o must not alias r.
//
func ConcatW64W(obits, lbits, rbits int, o []Word, l uint64, r []Word) []Word {
	rwords := Words(rbits)
	copy(o[:rwords], r[:rwords])
	for i := rwords; i < Words(obits); i++ {
		o[i] = 0
	}
	return InsertW64(o, l, rbits+lbits-1, rbits, obits)
}

// Replicate32 returns rep copies of the clean lbits-wide l laid side by
// side, the first copy in the low bits. Dirty upper bits.
//
func Replicate32(lbits int, l uint32, rep int) uint32 {
	out := l
	for i := 1; i < rep; i++ {
		out = out<<uint(lbits) | l
	}
	return out
}

// Replicate64 returns rep copies of the clean lbits-wide l laid side by
// side, the first copy in the low bits. Dirty upper bits.
//
func Replicate64(lbits int, l uint64, rep int) uint64 {
	out := l
	for i := 1; i < rep; i++ {
		out = out<<uint(lbits) | l
	}
	return out
}

// ReplicateW64 stores rep copies of the clean lbits-wide scalar l into o
// and returns o. Clean output.
//
func ReplicateW64(lbits int, o []Word, l uint64, rep int) []Word {
	obits := lbits * rep
	Zero(obits, o)
	for i := 0; i < rep; i++ {
		InsertW64(o, l, i*lbits+lbits-1, i*lbits, obits)
	}
	return o
}

// ReplicateW32 stores rep copies of the clean lbits-wide uint32 l into o
// and returns o. Clean output.
//
func ReplicateW32(lbits int, o []Word, l uint32, rep int) []Word {
	return ReplicateW64(lbits, o, uint64(l), rep)
}

// ReplicateW stores rep copies of the clean lbits-wide l into o and
// returns o. Clean output. o must not alias l.
//
func ReplicateW(lbits int, o, l []Word, rep int) []Word {
	obits := lbits * rep
	Zero(obits, o)
	copy(o[:Words(lbits)], l[:Words(lbits)])
	for i := 1; i < rep; i++ {
		InsertW(o, l, i*lbits+lbits-1, i*lbits, obits)
	}
	return o
}

// StreamL32 reverses the slice-sized groups of the clean lbits-wide l, the
// left streaming operator. Slices larger than the remaining bits shift into
// the low end of the result. Clean output.
//
func StreamL32(lbits int, l uint32, slice int) uint32 {
	var out uint32
	mask := Mask32(slice)
	for istart := 0; istart < lbits; istart += slice {
		ostart := lbits - slice - istart
		if ostart < 0 {
			ostart = 0
		}
		out |= l >> uint(istart) & mask << uint(ostart)
	}
	return out
}

// StreamL64 reverses the slice-sized groups of the clean lbits-wide l.
// Clean output.
//
func StreamL64(lbits int, l uint64, slice int) uint64 {
	var out uint64
	mask := Mask64(slice)
	for istart := 0; istart < lbits; istart += slice {
		ostart := lbits - slice - istart
		if ostart < 0 {
			ostart = 0
		}
		out |= l >> uint(istart) & mask << uint(ostart)
	}
	return out
}

// StreamLW stores the slice-reversed clean lbits-wide l into o and returns
// o. Clean output. o must not alias l.
//
func StreamLW(lbits int, o, l []Word, slice int) []Word {
	Zero(lbits, o)
	ssize := slice
	if ssize > lbits {
		ssize = lbits
	}
	for istart := 0; istart < lbits; istart += slice {
		ostart := lbits - slice - istart
		if ostart < 0 {
			ostart = 0
		}
		for sbit := 0; sbit < ssize && sbit < lbits-istart; sbit++ {
			SetBitW(o, ostart+sbit, BitW(l, istart+sbit))
		}
	}
	return o
}
