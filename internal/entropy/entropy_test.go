package entropy

import (
	"errors"
	"math"
	"testing"
)

func TestCharsetSize(t *testing.T) {
	tcs := []struct {
		charset Charset
		want    int
	}{
		{Charset{}, 0},
		{Charset{Uppercase: true}, 26},
		{Charset{Uppercase: true, Lowercase: true, Digits: true}, 62},
		{Charset{Uppercase: true, Lowercase: true, Digits: true, Symbols: true}, 94},
		{Charset{Digits: true, Symbols: true}, 42},
	}
	for _, tc := range tcs {
		if got := tc.charset.Size(); got != tc.want {
			t.Fatalf("Size(%+v) = %d, want %d", tc.charset, got, tc.want)
		}
	}
}

func TestBits(t *testing.T) {
	got, err := Bits(16, 62)
	if err != nil {
		t.Fatalf("Bits returned error: %v", err)
	}
	// 16 * log2(62) = 95.27...
	if math.Abs(got-95.27) > 0.01 {
		t.Fatalf("Bits(16, 62) = %v, want ~95.27", got)
	}
}

func TestBitsMatchesPowerForm(t *testing.T) {
	// length*log2(size) must agree with log2(size^length) where the
	// latter is still computable.
	got, err := Bits(8, 26)
	if err != nil {
		t.Fatalf("Bits returned error: %v", err)
	}
	want := math.Log2(math.Pow(26, 8))
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("Bits(8, 26) = %v, want %v", got, want)
	}
}

func TestBitsRejectsEmptyCharset(t *testing.T) {
	if _, err := Bits(8, 0); !errors.Is(err, ErrEmptyCharset) {
		t.Fatalf("Bits(8, 0) error = %v, want %v", err, ErrEmptyCharset)
	}
	if _, err := Bits(8, -1); !errors.Is(err, ErrEmptyCharset) {
		t.Fatalf("Bits(8, -1) error = %v, want %v", err, ErrEmptyCharset)
	}
}

func TestBitsRejectsNonPositiveLength(t *testing.T) {
	if _, err := Bits(0, 62); err == nil {
		t.Fatalf("Bits(0, 62) expected error, got nil")
	}
}
