package bitvec_test

import (
	"math/bits"
	"testing"

	bv "github.com/db47h/bitvec"
	"github.com/db47h/bitvec/bvtest"
)

func TestRedAnd(t *testing.T) {
	if !bv.RedAnd32(8, 0xff) || bv.RedAnd32(8, 0xfe) {
		t.Fatal("RedAnd32")
	}
	if !bv.RedAnd64(33, bv.Mask64(33)) || bv.RedAnd64(33, bv.Mask64(33)>>1) {
		t.Fatal("RedAnd64")
	}
	for _, lbits := range bvtest.Widths {
		words := bv.Words(lbits)
		l := bv.Ones(lbits, make([]bv.Word, words))
		if !bv.RedAndW(lbits, l) {
			t.Fatalf("lbits=%d: all ones should reduce to 1", lbits)
		}
		bv.SetBitW(l, lbits/2, 0)
		if bv.RedAndW(lbits, l) {
			t.Fatalf("lbits=%d: cleared bit should reduce to 0", lbits)
		}
	}
}

func TestRedOr(t *testing.T) {
	for _, lbits := range bvtest.Widths {
		words := bv.Words(lbits)
		l := make([]bv.Word, words)
		if bv.RedOrW(words, l) {
			t.Fatalf("lbits=%d: zero should reduce to 0", lbits)
		}
		bv.SetBitW(l, lbits-1, 1)
		if !bv.RedOrW(words, l) {
			t.Fatalf("lbits=%d: set bit should reduce to 1", lbits)
		}
	}
}

func TestRedXor(t *testing.T) {
	for i := 0; i < 1000; i++ {
		l := bvtest.Rand32(32)
		if bv.RedXor32(l)&1 != redXorRef(l) {
			t.Fatalf("RedXor32(%#x)", l)
		}
	}
	for _, lbits := range bvtest.Widths {
		words := bv.Words(lbits)
		l := bvtest.RandW(lbits)
		var want uint32
		for _, w := range l {
			want ^= redXorRef(w)
		}
		if bv.RedXorW(words, l)&1 != want {
			t.Fatalf("RedXorW, lbits=%d", lbits)
		}
	}
}

// redXorRef is an independent parity reference.
func redXorRef(v uint32) uint32 {
	var p uint32
	for ; v != 0; v >>= 1 {
		p ^= v & 1
	}
	return p
}

func TestCountOnes(t *testing.T) {
	for _, lbits := range bvtest.Widths {
		words := bv.Words(lbits)
		l := bvtest.RandW(lbits)
		var want uint32
		for _, w := range l {
			want += uint32(bits.OnesCount32(uint32(w)))
		}
		if got := bv.CountOnesW(words, l); got != want {
			t.Fatalf("lbits=%d: expected %d, got %d", lbits, want, got)
		}
	}
	if bv.CountOnes64(0xf0f0f0f0f0f0f0f0) != 32 {
		t.Fatal("CountOnes64")
	}
}

func TestCountBits(t *testing.T) {
	// all control bits 1: count ones; all 0: count zeros; mixed: width
	if bv.CountBits32(8, 0xf0, 1, 1, 1) != 4 {
		t.Fatal("CountBits32: ones")
	}
	if bv.CountBits32(8, 0xf0, 0, 0, 0) != 4 {
		t.Fatal("CountBits32: zeros")
	}
	if bv.CountBits32(8, 0xf0, 1, 0, 1) != 8 {
		t.Fatal("CountBits32: mixed")
	}
	l := bv.Ones(70, make([]bv.Word, 3))
	if bv.CountBitsW(70, l, 1, 1, 1) != 70 {
		t.Fatal("CountBitsW: ones")
	}
	if bv.CountBitsW(70, l, 0, 0, 0) != 0 {
		t.Fatal("CountBitsW: zeros")
	}
	if bv.CountBitsW(70, l, 0, 1, 0) != 70 {
		t.Fatal("CountBitsW: mixed")
	}
}

func TestOneHot(t *testing.T) {
	for _, lbits := range bvtest.Widths {
		words := bv.Words(lbits)
		l := make([]bv.Word, words)
		if bv.OneHotW(words, l) {
			t.Fatalf("lbits=%d: zero is not one hot", lbits)
		}
		if !bv.OneHot0W(words, l) {
			t.Fatalf("lbits=%d: zero is one hot or zero", lbits)
		}
		bv.SetBitW(l, lbits-1, 1)
		if !bv.OneHotW(words, l) || !bv.OneHot0W(words, l) {
			t.Fatalf("lbits=%d: single bit should be one hot", lbits)
		}
		bv.SetBitW(l, 0, 1)
		if lbits > 1 && (bv.OneHotW(words, l) || bv.OneHot0W(words, l)) {
			t.Fatalf("lbits=%d: two bits are not one hot", lbits)
		}
	}
	if !bv.OneHot32(0x40) || bv.OneHot32(0x41) || bv.OneHot32(0) {
		t.Fatal("OneHot32")
	}
	if !bv.OneHot064(0) || !bv.OneHot064(1<<63) || bv.OneHot064(3) {
		t.Fatal("OneHot064")
	}
}

func TestCeilLog2(t *testing.T) {
	for _, tc := range []struct{ in, out uint32 }{
		{0, 0}, {1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {1024, 10}, {1025, 11},
	} {
		if got := bv.CeilLog2(tc.in); got != tc.out {
			t.Fatalf("CeilLog2(%d): expected %d, got %d", tc.in, tc.out, got)
		}
		if got := bv.CeilLog264(uint64(tc.in)); got != tc.out {
			t.Fatalf("CeilLog264(%d): expected %d, got %d", tc.in, tc.out, got)
		}
		l := make([]bv.Word, 3)
		l[0] = tc.in
		if got := bv.CeilLog2W(3, l); got != tc.out {
			t.Fatalf("CeilLog2W(%d): expected %d, got %d", tc.in, tc.out, got)
		}
	}
	// values above a word boundary
	l := make([]bv.Word, 3)
	bv.SetBitW(l, 64, 1)
	if got := bv.CeilLog2W(3, l); got != 64 {
		t.Fatalf("CeilLog2W(2^64): expected 64, got %d", got)
	}
	l[0] = 1
	if got := bv.CeilLog2W(3, l); got != 65 {
		t.Fatalf("CeilLog2W(2^64+1): expected 65, got %d", got)
	}
}

func TestMostSetBitP1W(t *testing.T) {
	l := make([]bv.Word, 3)
	if bv.MostSetBitP1W(3, l) != 0 {
		t.Fatal("zero value should return 0")
	}
	bv.SetBitW(l, 69, 1)
	if got := bv.MostSetBitP1W(3, l); got != 70 {
		t.Fatalf("expected 70, got %d", got)
	}
	l[0] = 1
	if got := bv.MostSetBitP1W(3, l); got != 70 {
		t.Fatalf("expected 70, got %d", got)
	}
}
