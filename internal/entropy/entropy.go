// Package entropy estimates password strength from the character classes
// the password was drawn from. Nothing here touches the network; the
// charset size is pure local bookkeeping.
package entropy

import (
	"errors"
	"fmt"
	"math"
)

// Character-class sizes. The symbols class is fixed at the 32 printable
// ASCII punctuation characters the service draws from.
const (
	UppercaseSize = 26
	LowercaseSize = 26
	DigitSize     = 10
	SymbolSize    = 32
)

// ErrEmptyCharset indicates every character class was disabled, which
// leaves nothing to estimate entropy over.
var ErrEmptyCharset = errors.New("charset must enable at least one character class")

// Charset records which character classes a password request enabled.
type Charset struct {
	Uppercase bool
	Lowercase bool
	Digits    bool
	Symbols   bool
}

// Size returns the combined size of all enabled classes.
func (c Charset) Size() int {
	size := 0
	if c.Uppercase {
		size += UppercaseSize
	}
	if c.Lowercase {
		size += LowercaseSize
	}
	if c.Digits {
		size += DigitSize
	}
	if c.Symbols {
		size += SymbolSize
	}
	return size
}

// Bits estimates entropy in bits for a password of the given length drawn
// uniformly from charsetSize characters. Computed as
// length * log2(charsetSize) rather than log2(charsetSize^length) so large
// lengths cannot overflow.
//
// A charset size of zero or less returns ErrEmptyCharset rather than
// silently producing -Inf.
func Bits(length, charsetSize int) (float64, error) {
	if charsetSize <= 0 {
		return 0, ErrEmptyCharset
	}
	if length <= 0 {
		return 0, fmt.Errorf("password length must be positive, got %d", length)
	}
	return float64(length) * math.Log2(float64(charsetSize)), nil
}
