package bitvec_test

import (
	"math/big"
	"testing"

	bv "github.com/db47h/bitvec"
	"github.com/db47h/bitvec/bvtest"
)

func TestAddSubW(t *testing.T) {
	for _, lbits := range bvtest.Widths {
		words := bv.Words(lbits)
		for i := 0; i < 50; i++ {
			l, r := bvtest.RandW(lbits), bvtest.RandW(lbits)
			lb, rb := bvtest.ToBig(lbits, l), bvtest.ToBig(lbits, r)
			o := make([]bv.Word, words)

			bv.CleanInPlace(lbits, bv.AddW(words, o, l, r))
			bvtest.Equal(t, lbits, o, new(big.Int).Add(lb, rb))

			bv.CleanInPlace(lbits, bv.SubW(words, o, l, r))
			bvtest.Equal(t, lbits, o, new(big.Int).Sub(lb, rb))

			bv.CleanInPlace(lbits, bv.NegateW(words, o, l))
			bvtest.Equal(t, lbits, o, new(big.Int).Neg(lb))
		}
	}
}

func TestAddWInPlace(t *testing.T) {
	const lbits = 128
	words := bv.Words(lbits)
	l, r := bvtest.RandW(lbits), bvtest.RandW(lbits)
	want := new(big.Int).Add(bvtest.ToBig(lbits, l), bvtest.ToBig(lbits, r))
	bv.CleanInPlace(lbits, bv.AddW(words, l, l, r))
	bvtest.Equal(t, lbits, l, want)
}

func TestMulW(t *testing.T) {
	for _, lbits := range bvtest.Widths {
		words := bv.Words(lbits)
		for i := 0; i < 50; i++ {
			l, r := bvtest.RandW(lbits), bvtest.RandW(lbits)
			o := make([]bv.Word, words)
			bv.CleanInPlace(lbits, bv.MulW(words, o, l, r))
			bvtest.Equal(t, lbits, o,
				new(big.Int).Mul(bvtest.ToBig(lbits, l), bvtest.ToBig(lbits, r)))
		}
	}
}

func TestMulSW(t *testing.T) {
	for _, lbits := range bvtest.Widths {
		for i := 0; i < 50; i++ {
			l, r := bvtest.RandW(lbits), bvtest.RandW(lbits)
			o := make([]bv.Word, bv.Words(lbits))
			bv.MulSW(lbits, o, l, r)
			bvtest.Equal(t, lbits, o,
				new(big.Int).Mul(bvtest.ToBigS(lbits, l), bvtest.ToBigS(lbits, r)))
		}
	}
}

func TestMulS(t *testing.T) {
	// (-2) * 3 in 8 bits
	if got := bv.MulS32(8, 8, 0xfe, 3) & bv.Mask32(8); got != 0xfa {
		t.Fatalf("MulS32: expected 0xfa, got %#x", got)
	}
	if got := bv.MulS64(33, 33, 1<<32|1, 2) & bv.Mask64(33); got != 2 {
		t.Fatalf("MulS64: expected 2, got %#x", got)
	}
}

func TestDivModW(t *testing.T) {
	for _, lbits := range bvtest.Widths {
		words := bv.Words(lbits)
		for i := 0; i < 30; i++ {
			l, r := bvtest.RandW(lbits), bvtest.RandW(lbits)
			if !bv.RedOrW(words, r) {
				continue
			}
			lb, rb := bvtest.ToBig(lbits, l), bvtest.ToBig(lbits, r)
			o := make([]bv.Word, words)
			bvtest.Equal(t, lbits, bv.DivW(lbits, o, l, r), new(big.Int).Quo(lb, rb))
			bvtest.Equal(t, lbits, bv.ModW(lbits, o, l, r), new(big.Int).Rem(lb, rb))
		}
	}
}

func TestDivModWSmallDivisor(t *testing.T) {
	// exercise the single-word fast path with a multi-word dividend
	const lbits = 128
	l := bvtest.RandW(lbits)
	r := bv.Zero(lbits, make([]bv.Word, bv.Words(lbits)))
	r[0] = 10
	lb := bvtest.ToBig(lbits, l)
	o := make([]bv.Word, bv.Words(lbits))
	bvtest.Equal(t, lbits, bv.DivW(lbits, o, l, r), new(big.Int).Quo(lb, big.NewInt(10)))
	bvtest.Equal(t, lbits, bv.ModW(lbits, o, l, r), new(big.Int).Rem(lb, big.NewInt(10)))
}

func TestDivModByZero(t *testing.T) {
	if bv.Div32(17, 0) != 0 || bv.Mod32(17, 0) != 0 {
		t.Fatal("32-bit division by zero should yield 0")
	}
	if bv.Div64(17, 0) != 0 || bv.Mod64(17, 0) != 0 {
		t.Fatal("64-bit division by zero should yield 0")
	}
	const lbits = 70
	l := bvtest.RandW(lbits)
	z := make([]bv.Word, bv.Words(lbits))
	o := bvtest.RandW(lbits)
	bvtest.Equal(t, lbits, bv.DivW(lbits, o, l, z), big.NewInt(0))
	o = bvtest.RandW(lbits)
	bvtest.Equal(t, lbits, bv.ModW(lbits, o, l, z), big.NewInt(0))
	o = bvtest.RandW(lbits)
	bvtest.Equal(t, lbits, bv.DivSW(lbits, o, l, z), big.NewInt(0))
}

func TestDivModSW(t *testing.T) {
	for _, lbits := range bvtest.Widths {
		words := bv.Words(lbits)
		for i := 0; i < 30; i++ {
			l, r := bvtest.RandW(lbits), bvtest.RandW(lbits)
			if !bv.RedOrW(words, r) {
				continue
			}
			lb, rb := bvtest.ToBigS(lbits, l), bvtest.ToBigS(lbits, r)
			o := make([]bv.Word, words)
			bvtest.Equal(t, lbits, bv.DivSW(lbits, o, l, r), new(big.Int).Quo(lb, rb))
			bvtest.Equal(t, lbits, bv.ModSW(lbits, o, l, r), new(big.Int).Rem(lb, rb))
		}
	}
}

func TestDivSOverflow(t *testing.T) {
	// most negative value divided by -1 is defined as 0
	if bv.DivS32(8, 0x80, 0xff) != 0 {
		t.Fatal("DivS32: MIN/-1 should yield 0")
	}
	if bv.ModS32(8, 0x80, 0xff) != 0 {
		t.Fatal("ModS32: MIN/-1 should yield 0")
	}
	if bv.DivS64(64, 1<<63, ^uint64(0)) != 0 {
		t.Fatal("DivS64: MIN/-1 should yield 0")
	}
	const lbits = 70
	words := bv.Words(lbits)
	l := make([]bv.Word, words)
	bv.SetBitW(l, lbits-1, 1)
	r := bv.Ones(lbits, make([]bv.Word, words))
	o := bvtest.RandW(lbits)
	bvtest.Equal(t, lbits, bv.DivSW(lbits, o, l, r), big.NewInt(0))
	o = bvtest.RandW(lbits)
	bvtest.Equal(t, lbits, bv.ModSW(lbits, o, l, r), big.NewInt(0))
}

func TestDivS(t *testing.T) {
	if got := bv.DivS32(8, 0xf9, 2) & bv.Mask32(8); got != 0xfd { // -7/2 = -3
		t.Fatalf("DivS32: expected -3, got %#x", got)
	}
	if got := bv.ModS32(8, 0xf9, 2) & bv.Mask32(8); got != 0xff { // -7%2 = -1
		t.Fatalf("ModS32: expected -1, got %#x", got)
	}
	if got := bv.DivS64(8, 7, 0xfe) & bv.Mask64(8); got != 0xfd { // 7/-2 = -3
		t.Fatalf("DivS64: expected -3, got %#x", got)
	}
	if got := bv.ModS64(8, 7, 0xfe) & bv.Mask64(8); got != 1 { // 7%-2 = 1
		t.Fatalf("ModS64: expected 1, got %#x", got)
	}
}
