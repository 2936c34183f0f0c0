// Package checker compares a submitted program's output against a
// reference output token by token and produces a single graded verdict.
// A mismatch or an unreadable submission is an ordinary graded failure;
// a broken reference stream is an infrastructure fault and never scores.
package checker

import (
	"fmt"
	"io"
	"strings"

	"github.com/hakanyildizphd/vplc/internal/apperr"
	"github.com/hakanyildizphd/vplc/internal/token"
	"github.com/hakanyildizphd/vplc/internal/tokenizer"
)

// Config controls one comparison session.
type Config struct {
	// Hidden suppresses mismatch detail and output echoing so blind test
	// cases do not leak expected answers.
	Hidden bool
	// ShowDiff includes the mismatching and expected token in the verdict.
	ShowDiff bool
	// ShowOutput echoes the claimed output, as parsed, after a mismatch.
	ShowOutput bool
	// Lookahead is how many extra claimed tokens to echo past a mismatch.
	Lookahead int
}

// Verdict is the checker's only success-path output artifact.
type Verdict struct {
	Passed  bool
	Message string
}

// String renders the verdict line consumed by the grading orchestrator.
func (v Verdict) String() string {
	pass := 0
	if v.Passed {
		pass = 1
	}
	return fmt.Sprintf("%d|%s", pass, v.Message)
}

// Result is the outcome of one comparison session. Echo is non-empty only
// when ShowOutput applies to a failed verdict.
type Result struct {
	Verdict Verdict
	Echo    string
}

// Session drives two tokenizers in lockstep over the claimed and
// reference streams. It lives for exactly one Run call.
type Session[V any] struct {
	claimed   *tokenizer.Tokenizer[V]
	reference *tokenizer.Tokenizer[V]
	eq        token.EqFunc[V]
	cfg       Config
	echo      strings.Builder
}

// NewSession builds a session over the two borrowed streams. The scan,
// valid, and eq functions define the variant's token domain.
func NewSession[V any](
	claimed, reference io.Reader,
	scan tokenizer.ScanFunc[V],
	valid tokenizer.ValidFunc[V],
	eq token.EqFunc[V],
	cfg Config,
) *Session[V] {
	return &Session[V]{
		claimed:   tokenizer.New(claimed, scan, valid),
		reference: tokenizer.New(reference, scan, valid),
		eq:        eq,
		cfg:       cfg,
	}
}

// Run pulls tokens pairwise until a terminal state is reached and returns
// the verdict. A malformed reference stream returns an InfraError instead
// of a verdict: that failure is never the submission's fault and must not
// be mistaken for a zero score.
func (s *Session[V]) Run() (*Result, error) {
	for {
		claimed := s.claimed.Next()
		reference := s.reference.Next()

		if reference.Kind == token.Invalid {
			return nil, apperr.NewInfra(fmt.Sprintf(
				"reference output is malformed at line %d, token %d",
				reference.Line, reference.Index,
			))
		}

		// The echo buffer grows before comparing, so on a mismatch it
		// already ends with the offending token.
		s.echo.WriteString(claimed.ShortText())

		if claimed.Equal(reference, s.eq) {
			if reference.Kind == token.EOF {
				return &Result{
					Verdict: Verdict{Passed: true, Message: "Correct output."},
				}, nil
			}
			continue
		}

		return s.fail(claimed, reference), nil
	}
}

func (s *Session[V]) fail(claimed, expected token.Token[V]) *Result {
	var msg string
	switch {
	case s.cfg.Hidden:
		msg = "Wrong output. (Mismatch intentionally hidden.)"
	case s.cfg.ShowDiff:
		msg = fmt.Sprintf("Unexpected %s at line %d, token %d, while expecting %s.",
			claimed.LongText(), claimed.Line, claimed.Index, expected.LongText())
	default:
		msg = "Wrong output."
	}

	res := &Result{Verdict: Verdict{Passed: false, Message: msg}}
	if !s.cfg.ShowOutput {
		return res
	}
	if s.cfg.Hidden {
		res.Echo = "(Your output is intentionally hidden.)"
		return res
	}

	// Extend the echo with up to Lookahead extra claimed tokens for
	// context, stopping early once the claimed stream terminates.
	last := claimed
	for i := 0; i < s.cfg.Lookahead && last.Kind != token.EOF && last.Kind != token.Invalid; i++ {
		last = s.claimed.Next()
		s.echo.WriteString(last.ShortText())
	}
	switch last.Kind {
	case token.Invalid:
		s.echo.WriteString("..?..")
	case token.EOF:
		// The full remaining content was shown; nothing to mark.
	default:
		s.echo.WriteString(".....")
	}
	res.Echo = s.echo.String()
	return res
}
