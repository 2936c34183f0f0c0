package checker

import (
	"bufio"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// Default lookahead windows per variant, matching the shipped checkers.
const (
	DefaultCharLookahead = 10
	DefaultRealLookahead = 3
)

var errNoLexeme = errors.New("no value lexeme at stream position")

// NewCharSession builds a session over single-character tokens. Valid
// values are the printable ASCII range 0x21..0x7E; equality is exact.
func NewCharSession(claimed, reference io.Reader, cfg Config) *Session[byte] {
	return NewSession(claimed, reference, ScanChar, ValidChar, EqChar, cfg)
}

// NewRealSession builds a session over finite real-number tokens compared
// under absolute and relative tolerance.
func NewRealSession(claimed, reference io.Reader, cfg Config) *Session[float64] {
	return NewSession(claimed, reference, ScanReal, ValidReal, EqReal, cfg)
}

// ScanChar extracts a single character.
func ScanChar(r *bufio.Reader) (byte, string, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, "", err
	}
	return b, string(b), nil
}

// ValidChar accepts printable ASCII.
func ValidChar(c byte) bool {
	return c >= '!' && c <= '~'
}

// EqChar is exact equality.
func EqChar(a, b byte) bool {
	return a == b
}

// ScanReal extracts one floating-point lexeme, consuming exactly the
// characters that form it: an optional sign followed by either a digit
// sequence with optional fraction and well-formed exponent, or one of the
// inf/infinity/nan spellings (which ValidReal then rejects). A malformed
// or out-of-range lexeme is an error.
func ScanReal(r *bufio.Reader) (float64, string, error) {
	var lex strings.Builder

	take := func(n int) {
		for i := 0; i < n; i++ {
			b, err := r.ReadByte()
			if err != nil {
				panic("checker: read failed after successful peek")
			}
			lex.WriteByte(b)
		}
	}

	if b, err := r.Peek(1); err == nil && (b[0] == '+' || b[0] == '-') {
		take(1)
	}

	if n := peekWord(r, "infinity"); n > 0 {
		take(n)
	} else if n := peekWord(r, "nan"); n > 0 {
		take(n)
	} else {
		digits := 0
		digits += takeDigits(r, &lex)
		if b, err := r.Peek(1); err == nil && b[0] == '.' {
			take(1)
			digits += takeDigits(r, &lex)
		}
		if digits == 0 {
			return 0, "", errNoLexeme
		}
		// The exponent is consumed only when complete: a bare 'e' or a
		// signless/digitless tail stays in the stream.
		if n := peekExponent(r); n > 0 {
			take(n)
			takeDigits(r, &lex)
		}
	}

	v, err := strconv.ParseFloat(lex.String(), 64)
	if err != nil {
		return 0, "", err
	}
	return v, lex.String(), nil
}

// peekWord reports how many bytes of word (or its "inf" prefix for
// "infinity") match case-insensitively at the current position, without
// consuming anything. Returns 0 on no match.
func peekWord(r *bufio.Reader, word string) int {
	buf, _ := r.Peek(len(word))
	n := 0
	for n < len(buf) && lower(buf[n]) == word[n] {
		n++
	}
	if n == len(word) {
		return n
	}
	if word == "infinity" && n >= 3 {
		return 3
	}
	return 0
}

// peekExponent reports the length of the exponent prefix ("e", "e+",
// "e-") when at least one digit follows it, and 0 otherwise.
func peekExponent(r *bufio.Reader) int {
	buf, _ := r.Peek(3)
	if len(buf) < 2 || lower(buf[0]) != 'e' {
		return 0
	}
	if isDigit(buf[1]) {
		return 1
	}
	if (buf[1] == '+' || buf[1] == '-') && len(buf) == 3 && isDigit(buf[2]) {
		return 2
	}
	return 0
}

func takeDigits(r *bufio.Reader, lex *strings.Builder) int {
	n := 0
	for {
		b, err := r.Peek(1)
		if err != nil || !isDigit(b[0]) {
			return n
		}
		if _, err := r.ReadByte(); err != nil {
			panic("checker: read failed after successful peek")
		}
		lex.WriteByte(b[0])
		n++
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// ValidReal rejects infinities and NaN.
func ValidReal(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// EqReal accepts an absolute error of 0.00001 (floats are printed with
// six significant digits), or a relative error of 1%. The relative bounds
// flip for negative a because scaling a negative number by 1.01 moves it
// down, not up.
func EqReal(a, b float64) bool {
	if a-b <= 0.00001 && b-a <= 0.00001 {
		return true
	}
	if a >= 0 {
		return a*0.99 <= b && b <= a*1.01
	}
	return a*1.01 <= b && b <= a*0.99
}
