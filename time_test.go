package bitvec_test

import (
	"testing"

	bv "github.com/db47h/bitvec"
)

func TestTimeSource(t *testing.T) {
	var ts bv.TimeSource
	if ts.Time() != 0 || ts.Time32() != 0 || ts.TimeD() != 0 {
		t.Fatal("nil source must read as time zero")
	}

	ts = bv.FixedTime(0x123456789a)
	if got := ts.Time(); got != 0x123456789a {
		t.Fatalf("Time: got %#x", got)
	}
	if got := ts.Time32(); got != 0x3456789a {
		t.Fatalf("Time32: got %#x", got)
	}
	if got := ts.TimeD(); got != float64(0x123456789a) {
		t.Fatalf("TimeD: got %v", got)
	}

	var n uint64
	ts = func() uint64 { n++; return n }
	ts.Time()
	if got := ts.Time(); got != 2 {
		t.Fatalf("advancing source: got %v", got)
	}
}
