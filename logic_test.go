package bitvec_test

import (
	"math/big"
	"testing"

	bv "github.com/db47h/bitvec"
	"github.com/db47h/bitvec/bvtest"
)

func TestLogicW(t *testing.T) {
	for _, lbits := range bvtest.Widths {
		words := bv.Words(lbits)
		l, r := bvtest.RandW(lbits), bvtest.RandW(lbits)
		lb, rb := bvtest.ToBig(lbits, l), bvtest.ToBig(lbits, r)
		o := make([]bv.Word, words)

		bvtest.Equal(t, lbits, bv.AndW(o, l, r), new(big.Int).And(lb, rb))
		bvtest.Equal(t, lbits, bv.OrW(o, l, r), new(big.Int).Or(lb, rb))
		bvtest.Equal(t, lbits, bv.XorW(o, l, r), new(big.Int).Xor(lb, rb))
		bv.CleanInPlace(lbits, bv.NotW(o, l))
		want := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(lbits)), big.NewInt(1))
		bvtest.Equal(t, lbits, o, want.AndNot(want, lb))
	}
}

func TestLogicWInPlace(t *testing.T) {
	const lbits = 513
	l, r := bvtest.RandW(lbits), bvtest.RandW(lbits)
	want := new(big.Int).Xor(bvtest.ToBig(lbits, l), bvtest.ToBig(lbits, r))
	bvtest.Equal(t, lbits, bv.XorW(l, l, r), want)
}

func TestEqChange(t *testing.T) {
	l := bvtest.RandW(128)
	r := append([]bv.Word(nil), l...)
	if !bv.EqW(l, r) {
		t.Fatal("equal values compare unequal")
	}
	if bv.ChangeXorW(l, r) != 0 {
		t.Fatal("equal values report a change")
	}
	r[2] ^= 4
	if bv.EqW(l, r) {
		t.Fatal("different values compare equal")
	}
	if bv.ChangeXorW(l, r) == 0 {
		t.Fatal("different values report no change")
	}
}

func TestCmpW(t *testing.T) {
	for _, lbits := range bvtest.Widths {
		for i := 0; i < 100; i++ {
			l, r := bvtest.RandW(lbits), bvtest.RandW(lbits)
			if got, want := bv.CmpW(l, r), bvtest.ToBig(lbits, l).Cmp(bvtest.ToBig(lbits, r)); got != want {
				t.Fatalf("lbits=%d: CmpW=%d reference=%d", lbits, got, want)
			}
			if got, want := bv.CmpSW(lbits, l, r), bvtest.ToBigS(lbits, l).Cmp(bvtest.ToBigS(lbits, r)); got != want {
				t.Fatalf("lbits=%d: CmpSW=%d reference=%d", lbits, got, want)
			}
		}
	}
}

func TestCmpS(t *testing.T) {
	if bv.CmpS32(8, 0x80, 0x7f) != -1 { // -128 < 127
		t.Fatal("CmpS32: -128 should compare below 127")
	}
	if bv.CmpS32(8, 0, 0xff) != 1 { // 0 > -1
		t.Fatal("CmpS32: 0 should compare above -1")
	}
	if bv.CmpS64(33, 1<<32, 0) != -1 { // sign bit of a 33-bit value
		t.Fatal("CmpS64: negative 33-bit value should compare below 0")
	}
	if bv.CmpS64(64, 5, 5) != 0 {
		t.Fatal("CmpS64: equal values")
	}
}
