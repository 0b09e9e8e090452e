// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitvec

import (
	"strings"

	"github.com/db47h/bitvec/internal/vlit"
	"github.com/pkg/errors"
)

// String32 converts the packed value l to a string, most significant byte
// first, skipping NUL bytes.
func String32(l uint32) string {
	var lw [1]Word
	lw[0] = l
	return StringW(1, lw[:])
}

// String64 converts the packed value l to a string, most significant byte
// first, skipping NUL bytes.
func String64(l uint64) string {
	var lw [QWords]Word
	SetQ(lw[:], l)
	return StringW(QWords, lw[:])
}

// StringW converts the words-long packed value l to a string, most
// significant byte first. NUL bytes are dropped so that short strings held
// in wide vectors print without padding.
//
func StringW(words int, l []Word) string {
	var b strings.Builder
	b.Grow(words * WordBytes)
	for i := words - 1; i >= 0; i-- {
		for shift := WordBits - 8; shift >= 0; shift -= 8 {
			if c := byte(l[i] >> uint(shift)); c != 0 {
				b.WriteByte(c)
			}
		}
	}
	return b.String()
}

const hexDigits = "0123456789abcdef"

// HexW renders the clean lbits-wide value l in hexadecimal, most
// significant nibble first.
//
func HexW(lbits int, l []Word) string {
	nibbles := (lbits + 3) / 4
	var b strings.Builder
	b.Grow(nibbles)
	for i := nibbles - 1; i >= 0; i-- {
		// nibbles never straddle a word boundary
		b.WriteByte(hexDigits[l[i>>3]>>(uint(i&7)*4)&0xf])
	}
	return b.String()
}

// ParseW parses the Verilog literal s into the obits-wide o and returns o.
// Unsized literals are decimal; sized literals wider than obits are
// truncated. Clean output.
//
func ParseW(obits int, o []Word, s string) ([]Word, error) {
	lit, err := vlit.Parse(s)
	if err != nil {
		return nil, errors.Wrap(err, "parse literal")
	}
	Zero(obits, o)
	switch lit.Base {
	case vlit.Dec:
		for _, d := range lit.Digits {
			// o = o*10 + d
			carry := uint64(d)
			for i := 0; i < Words(obits); i++ {
				carry += uint64(o[i]) * 10
				o[i] = Word(carry)
				carry >>= WordBits
			}
		}
	default:
		shift := uint32(1) // Bin
		switch lit.Base {
		case vlit.Oct:
			shift = 3
		case vlit.Hex:
			shift = 4
		}
		for _, d := range lit.Digits {
			ShiftLW(obits, o, o, shift)
			o[0] |= Word(d)
		}
	}
	CleanInPlace(obits, o)
	return o, nil
}
