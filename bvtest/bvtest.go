// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package bvtest provides utility functions for testing wide-value
// operations against math/big references.
//
package bvtest

import (
	"math/big"
	"math/rand"
	"testing"
	"time"

	"github.com/db47h/bitvec"
)

// Widths is a set of operand widths covering the interesting word-count
// boundaries: single bit, sub-word, exact words, one past a word and a
// large multi-word value.
var Widths = []int{1, 8, 32, 33, 64, 65, 128, 513}

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// Rand32 returns a random clean value of lbits bits, lbits <= 32.
func Rand32(lbits int) uint32 {
	return rng.Uint32() & bitvec.Mask32(lbits)
}

// Rand64 returns a random clean value of lbits bits, lbits <= 64.
func Rand64(lbits int) uint64 {
	return rng.Uint64() & bitvec.Mask64(lbits)
}

// RandW returns a freshly allocated random clean value of lbits bits.
//
func RandW(lbits int) []bitvec.Word {
	o := make([]bitvec.Word, bitvec.Words(lbits))
	for i := range o {
		o[i] = bitvec.Word(rng.Uint32())
	}
	return bitvec.CleanInPlace(lbits, o)
}

// ToBig converts the clean lbits-wide value l to an unsigned big.Int.
//
func ToBig(lbits int, l []bitvec.Word) *big.Int {
	words := bitvec.Words(lbits)
	b := make([]byte, words*bitvec.WordBytes)
	for i := 0; i < words; i++ {
		w := l[i]
		for j := 0; j < bitvec.WordBytes; j++ {
			b[len(b)-1-(i*bitvec.WordBytes+j)] = byte(w >> uint(8*j))
		}
	}
	return new(big.Int).SetBytes(b)
}

// ToBigS converts the clean lbits-wide value l to a signed big.Int.
//
func ToBigS(lbits int, l []bitvec.Word) *big.Int {
	v := ToBig(lbits, l)
	if bitvec.SignW(lbits, l)&1 != 0 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(lbits)))
	}
	return v
}

// FromBig stores v truncated to obits bits into o and returns o. Negative
// values wrap to their two's complement representation. Clean output.
//
func FromBig(obits int, o []bitvec.Word, v *big.Int) []bitvec.Word {
	bitvec.Zero(obits, o)
	// big.Int bitwise ops treat negatives as infinite two's complement,
	// so masking wraps negative values the way hardware does.
	m := new(big.Int).And(v, mask(obits))
	b := m.Bytes() // big endian
	for i, c := range b {
		k := len(b) - 1 - i // byte position from the LSB
		o[k/bitvec.WordBytes] |= bitvec.Word(c) << uint(8*(k%bitvec.WordBytes))
	}
	return o
}

// BigW returns a freshly allocated obits-wide value holding v.
func BigW(obits int, v *big.Int) []bitvec.Word {
	return FromBig(obits, make([]bitvec.Word, bitvec.Words(obits)), v)
}

func mask(obits int) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(obits))
	return m.Sub(m, big.NewInt(1))
}

// Equal compares the clean lbits-wide got against the reference value want,
// reporting a fatal error with both values in hex on mismatch.
//
func Equal(t *testing.T, lbits int, got []bitvec.Word, want *big.Int) {
	t.Helper()
	w := BigW(lbits, want)
	if !bitvec.EqW(got[:bitvec.Words(lbits)], w) {
		t.Fatalf("lbits=%d\nexpected %s\ngot      %s",
			lbits, bitvec.HexW(lbits, w), bitvec.HexW(lbits, got))
	}
}
