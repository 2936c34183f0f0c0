// Package tokenizer implements the whitespace-folding lexer shared by the
// checker variants. It reads a borrowed text stream and produces tokens
// terminated by exactly one EOF or Invalid token, folding away cosmetic
// trailing whitespace: a space directly before a newline or end-of-stream
// and a newline directly before end-of-stream are swallowed, while an
// interior space followed by an ordinary character is emitted as its own
// Space token.
package tokenizer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hakanyildizphd/vplc/internal/token"
)

// ScanFunc extracts one value from the reader, consuming exactly the
// characters that form its lexeme. It returns the parsed value and the
// consumed lexeme, or an error when no well-formed lexeme starts at the
// current position.
type ScanFunc[V any] func(r *bufio.Reader) (V, string, error)

// ValidFunc reports whether a scanned value is acceptable for the variant.
type ValidFunc[V any] func(v V) bool

// Tokenizer pulls tokens from a single stream. It owns only its cursor
// bookkeeping; the stream is borrowed. After the terminal EOF or Invalid
// token has been returned, the tokenizer is invalidated and Next panics.
type Tokenizer[V any] struct {
	r     *bufio.Reader
	scan  ScanFunc[V]
	valid ValidFunc[V]
	line  int
	index int
	done  bool
}

// New wraps the reader and positions the cursor at line 1, token 1.
func New[V any](r io.Reader, scan ScanFunc[V], valid ValidFunc[V]) *Tokenizer[V] {
	return &Tokenizer[V]{
		r:     bufio.NewReader(r),
		scan:  scan,
		valid: valid,
		line:  1,
		index: 1,
	}
}

// Next returns the next token. It must not be called again after an EOF
// or Invalid token has been returned.
func (t *Tokenizer[V]) Next() token.Token[V] {
	if t.done {
		panic("tokenizer: Next called after terminal token")
	}

	c, eof := t.peek()
	if eof {
		return t.terminal(token.EOF)
	}

	switch c {
	case '\n':
		t.consume('\n')
		if _, eof := t.peek(); eof {
			// Trailing newline directly before end-of-stream is swallowed.
			return t.terminal(token.EOF)
		}
		return t.newline()

	case ' ':
		t.consume(' ')
		c, eof := t.peek()
		if eof {
			// Trailing space before end-of-stream is swallowed.
			return t.terminal(token.EOF)
		}
		if c == '\n' {
			// Space before a newline is swallowed; the newline may in
			// turn be swallowed if nothing follows it.
			t.consume('\n')
			if _, eof := t.peek(); eof {
				return t.terminal(token.EOF)
			}
			return t.newline()
		}
		tok := token.Token[V]{Kind: token.Space, Line: t.line, Index: t.index}
		t.index++
		return tok

	default:
		v, text, err := t.scan(t.r)
		if err != nil {
			return t.terminal(token.Invalid)
		}
		if !t.valid(v) {
			return t.terminal(token.Invalid)
		}
		tok := token.Token[V]{
			Kind:  token.Value,
			Value: v,
			Text:  text,
			Line:  t.line,
			Index: t.index,
		}
		t.index++
		return tok
	}
}

// newline emits a Newline token at the pre-advance position, then moves
// the cursor to the start of the following line.
func (t *Tokenizer[V]) newline() token.Token[V] {
	tok := token.Token[V]{Kind: token.Newline, Line: t.line, Index: t.index}
	t.line++
	t.index = 1
	return tok
}

func (t *Tokenizer[V]) terminal(k token.Kind) token.Token[V] {
	t.done = true
	return token.Token[V]{Kind: k, Line: t.line, Index: t.index}
}

// peek inspects the next byte without consuming it. The second result is
// true at end-of-stream.
func (t *Tokenizer[V]) peek() (byte, bool) {
	b, err := t.r.Peek(1)
	if err != nil {
		return 0, true
	}
	return b[0], false
}

// consume reads one byte and checks it against the byte peek reported.
// The peek/consume protocol makes a mismatch unreachable; hitting one
// means the cursor state is broken and masking it would corrupt every
// token that follows.
func (t *Tokenizer[V]) consume(want byte) {
	b, err := t.r.ReadByte()
	if err != nil {
		panic(fmt.Sprintf("tokenizer: consume %q after peek hit %v", want, err))
	}
	if b != want {
		panic(fmt.Sprintf("tokenizer: consumed %q, peeked %q", b, want))
	}
}
