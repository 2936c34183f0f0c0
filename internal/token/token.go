package token

import "fmt"

// Kind classifies a lexical unit or a stream-boundary marker.
type Kind int

const (
	Value Kind = iota
	Space
	Newline
	EOF
	Invalid
)

func (k Kind) String() string {
	switch k {
	case Value:
		return "VALUE"
	case Space:
		return "SPACE"
	case Newline:
		return "NEWLINE"
	case EOF:
		return "EOF"
	case Invalid:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}

// Token is one lexical unit produced by a tokenizer. Value and Text are
// populated only for Kind == Value; Text holds the exact characters the
// scanner consumed, so concatenating ShortText over a token sequence
// reconstructs the stream as it was parsed.
//
// Line and Index are 1-based. Space and Value tokens advance Index;
// Newline resets it to 1 for the following line. EOF and Invalid carry
// whatever the counters held at detection time.
type Token[V any] struct {
	Kind  Kind
	Value V
	Text  string
	Line  int
	Index int
}

// EqFunc reports whether two values compare as equal under a variant's
// tolerance rules.
type EqFunc[V any] func(a, b V) bool

// ShortText renders the token for stream reconstruction.
func (t Token[V]) ShortText() string {
	switch t.Kind {
	case Value:
		return t.Text
	case Space:
		return " "
	case Newline:
		return "\n"
	case EOF:
		return "<end>"
	case Invalid:
		return "<invalid-format>"
	default:
		return "<unknown>"
	}
}

// LongText renders the token for human-readable diagnostics.
func (t Token[V]) LongText() string {
	switch t.Kind {
	case Value:
		return fmt.Sprintf("'%s'", t.Text)
	case Space:
		return "<space>"
	case Newline:
		return "<newline>"
	case EOF:
		return "<end>"
	case Invalid:
		return "<invalid-format>"
	default:
		return "<unknown>"
	}
}

// Equal reports whether t and other match: kinds must agree, and Value
// tokens additionally compare their values under eq. All non-Value kinds
// equal themselves with no further comparison.
func (t Token[V]) Equal(other Token[V], eq EqFunc[V]) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.Kind != Value {
		return true
	}
	return eq(t.Value, other.Value)
}
