package bitvec_test

import (
	"math/big"
	"testing"

	bv "github.com/db47h/bitvec"
	"github.com/db47h/bitvec/bvtest"
)

func TestString(t *testing.T) {
	if got := bv.String64(0x48656c6c6f); got != "Hello" {
		t.Fatalf("String64: got %q", got)
	}
	if got := bv.String32(0x4869); got != "Hi" {
		t.Fatalf("String32: got %q", got)
	}

	// NUL padding in the upper words is dropped
	l := make([]bv.Word, 3)
	bv.SetQ(l, 0x68770a) // "hw\n"
	if got := bv.StringW(3, l); got != "hw\n" {
		t.Fatalf("StringW: got %q", got)
	}
}

func TestHexW(t *testing.T) {
	l := []bv.Word{0x89abcdef, 0x01234567, 0x15}
	if got := bv.HexW(70, l); got != "150123456789abcdef" {
		t.Fatalf("HexW: got %q", got)
	}
	if got := bv.HexW(1, []bv.Word{1}); got != "1" {
		t.Fatalf("HexW: got %q", got)
	}
}

func TestParseW(t *testing.T) {
	o := make([]bv.Word, 1)
	for _, tc := range []struct {
		in   string
		want uint32
	}{
		{"8'hFF", 0xff},
		{"13'sd42", 42},
		{"12'b1010_0011", 0xa3},
		{"'o777", 0o777},
		{"123", 123},
		{"0", 0},
	} {
		if _, err := bv.ParseW(32, o, tc.in); err != nil {
			t.Fatalf("ParseW(%q): %v", tc.in, err)
		}
		if o[0] != bv.Word(tc.want) {
			t.Fatalf("ParseW(%q): got %#x, want %#x", tc.in, o[0], tc.want)
		}
	}

	// sized literal wider than the destination truncates
	if _, err := bv.ParseW(8, o, "16'hABCD"); err != nil {
		t.Fatal(err)
	}
	if o[0] != 0xcd {
		t.Fatalf("truncated parse: got %#x", o[0])
	}
}

func TestParseWWide(t *testing.T) {
	const in = "1180591620717411303423" // 2^70 - 1
	want, ok := new(big.Int).SetString(in, 10)
	if !ok {
		t.Fatal("bad reference literal")
	}
	o := make([]bv.Word, bv.Words(70))
	if _, err := bv.ParseW(70, o, "70'd"+in); err != nil {
		t.Fatal(err)
	}
	bvtest.Equal(t, 70, o, want)

	if _, err := bv.ParseW(70, o, "70'hffffffffffffffffff"); err != nil {
		t.Fatal(err)
	}
	bvtest.Equal(t, 70, o, want)
}

func TestParseWErrors(t *testing.T) {
	o := make([]bv.Word, 1)
	for _, in := range []string{
		"",
		"8'",
		"8'q12",
		"8'b102",
		"4'bxxxx",
		"8'hzz",
		"8'b_1",
		"8xff",
	} {
		if _, err := bv.ParseW(32, o, in); err == nil {
			t.Fatalf("ParseW(%q): expected error", in)
		}
	}
}
