// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitvec

// Exponentiation by repeated squaring, truncated to the output width.
// Anything to the power zero is one, zero to any other power is zero; the
// signed forms additionally define results for negative exponents, where
// only a base of 1 or -1 can produce a nonzero value.

// Pow32 returns l**r truncated to 32 bits. Operands must be clean.
//
func Pow32(l, r uint32) uint32 {
	if r == 0 {
		return 1
	}
	if l == 0 {
		return 0
	}
	out := uint32(1)
	power := l
	for i := 0; i < WordBits; i++ {
		if i > 0 {
			power *= power
		}
		if r>>uint(i)&1 != 0 {
			out *= power
		}
	}
	return out
}

// Pow64 returns l**r truncated to 64 bits. Operands must be clean.
//
func Pow64(l, r uint64) uint64 {
	if r == 0 {
		return 1
	}
	if l == 0 {
		return 0
	}
	out := uint64(1)
	power := l
	for i := 0; i < 2*WordBits; i++ {
		if i > 0 {
			power *= power
		}
		if r>>uint(i)&1 != 0 {
			out *= power
		}
	}
	return out
}

// Pow64W returns l**r truncated to 64 bits for a clean rbits-wide exponent.
//
func Pow64W(rbits int, l uint64, r []Word) uint64 {
	if !RedOrW(Words(rbits), r) {
		return 1
	}
	if l == 0 {
		return 0
	}
	out := uint64(1)
	power := l
	for i := 0; i < rbits; i++ {
		if i > 0 {
			power *= power
		}
		if r[wordIdx(i)]>>uint(bitIdx(i))&1 != 0 {
			out *= power
		}
	}
	return out
}

// PowW stores l**r into o and returns o, truncated to the clean obits-wide
// result. l is lbits wide and r rbits wide, both clean. Clean output.
// o must not alias l or r.
//
func PowW(obits, lbits, rbits int, o, l, r []Word) []Word {
	owords := Words(obits)
	if debugChecks && (owords > MaxWords || Words(lbits) > MaxWords) {
		panic("bitvec: operand too wide")
	}
	Zero(obits, o)
	o[0] = 1
	if !RedOrW(Words(rbits), r) {
		return o
	}
	if !RedOrW(Words(lbits), l) {
		o[0] = 0
		return o
	}

	// power holds the running square, widened to the output size; out and
	// a scratch buffer ping-pong through MulW since it cannot work in
	// place.
	var power, scratch [MaxWords]Word
	for i := 0; i < owords; i++ {
		power[i] = 0
	}
	copy(power[:Words(lbits)], l[:Words(lbits)])
	CleanInPlace(obits, power[:owords])
	for i := 0; i < rbits; i++ {
		if i > 0 {
			CleanInPlace(obits, MulW(owords, scratch[:owords], power[:owords], power[:owords]))
			copy(power[:owords], scratch[:owords])
		}
		if r[wordIdx(i)]>>uint(bitIdx(i))&1 != 0 {
			CleanInPlace(obits, MulW(owords, scratch[:owords], o, power[:owords]))
			copy(o, scratch[:owords])
		}
	}
	return o
}

// PowS32 returns the signed l**r for an lbits-wide base and rbits-wide
// exponent, truncated to obits. Dirty upper bits.
//
func PowS32(obits, lbits, rbits int, l, r uint32) uint32 {
	if Sign32(rbits, r)&1 == 0 {
		return Pow32(l, r)
	}
	return uint32(powSNeg64(obits, lbits, uint64(l), uint64(r)))
}

// PowS64 returns the signed l**r for an lbits-wide base and rbits-wide
// exponent, truncated to obits. Dirty upper bits.
//
func PowS64(obits, lbits, rbits int, l, r uint64) uint64 {
	if Sign64(rbits, r)&1 == 0 {
		return Pow64(l, r)
	}
	return powSNeg64(obits, lbits, l, r)
}

// powSNeg64 resolves a power with a negative exponent: only a base of 1 or
// -1 yields a nonzero result, -1 alternating sign with the exponent parity.
func powSNeg64(obits, lbits int, l, r uint64) uint64 {
	switch {
	case l == 0:
		return 0
	case l == 1:
		return 1
	case ExtendS64(lbits, l) == ^uint64(0):
		if r&1 != 0 {
			return Mask64(obits)
		}
		return 1
	default:
		return 0
	}
}

// PowSW stores the signed l**r into o and returns o. l is lbits wide, r is
// rbits wide, the clean result obits wide. o must not alias l or r.
//
func PowSW(obits, lbits, rbits int, o, l, r []Word) []Word {
	if SignW(rbits, r)&1 == 0 {
		return PowW(obits, lbits, rbits, o, l, r)
	}
	// Negative exponent.
	Zero(obits, o)
	lwords := Words(lbits)
	switch {
	case !RedOrW(lwords, l):
		// 0 ** negative is 0.
	case isOneW(lwords, l):
		o[0] = 1
	default:
		var neg [MaxWords]Word
		CleanInPlace(lbits, NegateW(lwords, neg[:lwords], l))
		if isOneW(lwords, neg[:lwords]) {
			// Base -1: the result alternates with the exponent parity.
			if r[0]&1 != 0 {
				Ones(obits, o)
			} else {
				o[0] = 1
			}
		}
	}
	return o
}

// isOneW reports whether the words-long clean value l equals 1.
func isOneW(words int, l []Word) bool {
	if l[0] != 1 {
		return false
	}
	for _, w := range l[1:words] {
		if w != 0 {
			return false
		}
	}
	return true
}
