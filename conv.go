// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitvec

import "math"

// Conversions between wide values, float64 and strings. Reals follow IEEE
// double semantics: conversion to an integral type rounds half away from
// zero, and values too large for the destination silently drop their high
// bits.

// FloatToBits returns the IEEE 754 bit pattern of d as a clean 64-bit
// value.
func FloatToBits(d float64) uint64 { return math.Float64bits(d) }

// FloatFromBits returns the float64 with the IEEE 754 bit pattern l.
func FloatFromBits(l uint64) float64 { return math.Float64frombits(l) }

// FloatToBits32 returns the IEEE 754 bit pattern of f as a clean 32-bit
// value.
func FloatToBits32(f float32) uint32 { return math.Float32bits(f) }

// FloatFromBits32 returns the float32 with the IEEE 754 bit pattern l.
func FloatFromBits32(l uint32) float32 { return math.Float32frombits(l) }

// ToFloat32 converts the clean unsigned value l to float64.
func ToFloat32(l uint32) float64 { return float64(l) }

// ToFloat64 converts the clean unsigned value l to float64.
func ToFloat64(l uint64) float64 { return float64(l) }

// ToFloatW converts the clean lbits-wide unsigned value l to float64.
//
func ToFloatW(lbits int, l []Word) float64 {
	var d float64
	for i := Words(lbits) - 1; i >= 0; i-- {
		if l[i] != 0 {
			d += math.Ldexp(float64(l[i]), i*WordBits)
		}
	}
	return d
}

// ToFloatS32 converts the clean lbits-wide signed value l to float64.
func ToFloatS32(lbits int, l uint32) float64 {
	if lbits == WordBits {
		return float64(int32(l))
	}
	return float64(int64(ExtendS64(lbits, uint64(l))))
}

// ToFloatS64 converts the clean lbits-wide signed value l to float64.
//
func ToFloatS64(lbits int, l uint64) float64 {
	if lbits == 2*WordBits {
		return float64(int64(l))
	}
	return float64(int64(ExtendS64(lbits, l)))
}

// ToFloatSW converts the clean lbits-wide signed value l to float64.
//
func ToFloatSW(lbits int, l []Word) float64 {
	if SignW(lbits, l)&1 == 0 {
		return ToFloatW(lbits, l)
	}
	words := Words(lbits)
	if debugChecks && words > MaxWords {
		panic("bitvec: operand too wide")
	}
	var neg [MaxWords]Word
	CleanInPlace(lbits, NegateW(words, neg[:words], l))
	return -ToFloatW(lbits, neg[:words])
}

// RToI truncates d toward zero to a 32-bit integer. Dirty upper bits.
func RToI(d float64) uint32 { return uint32(int32(int64(math.Trunc(d)))) }

// RToIRound64 rounds d half away from zero and returns the low 64 bits of
// the result, decoding the IEEE representation directly so that values
// beyond the int64 range wrap instead of saturating.
//
func RToIRound64(d float64) uint64 {
	d = math.Round(d)
	if d == 0 {
		return 0
	}
	q := math.Float64bits(d)
	lsb := int(q>>52&Mask64(11)) - 1023 - 52
	mantissa := q&Mask64(52) | 1<<52
	var out uint64
	if lsb < 0 {
		out = mantissa >> uint(-lsb)
	} else if lsb < 64 {
		out = mantissa << uint(lsb)
	}
	if d < 0 {
		out = -out
	}
	return out
}

// RToIRound32 rounds d half away from zero to 32 bits. Dirty upper bits.
func RToIRound32(d float64) uint32 { return uint32(RToIRound64(d)) }

// RToIRoundW rounds d half away from zero into the obits-wide o and
// returns o. Clean output.
//
func RToIRoundW(obits int, o []Word, d float64) []Word {
	d = math.Round(d)
	Zero(obits, o)
	if d == 0 {
		return o
	}
	q := math.Float64bits(d)
	lsb := int(q>>52&Mask64(11)) - 1023 - 52
	mantissa := q&Mask64(52) | 1<<52
	if lsb < 0 {
		m := mantissa >> uint(-lsb)
		o[0] = Word(m)
		if Words(obits) > 1 {
			o[1] = Word(m >> WordBits)
		}
		CleanInPlace(obits, o)
	} else if lsb < obits {
		hbit := lsb + 52
		if hbit > obits-1 {
			hbit = obits - 1 // high bits of the mantissa fall off the top
		}
		InsertW64(o, mantissa, hbit, lsb, obits)
	}
	if d < 0 {
		CleanInPlace(obits, NegateW(Words(obits), o, o))
	}
	return o
}
