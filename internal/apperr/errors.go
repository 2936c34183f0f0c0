// Package apperr separates the two failure worlds of the checker: faults
// of the grading environment (bad invocation, unreadable or corrupt
// reference data), which must abort loudly with no verdict, and faults of
// the submission, which are folded into an ordinary graded verdict.
package apperr

// UsageError reports a defective invocation: wrong argument count or a
// malformed hidden flag. It is never the submission's fault.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func NewUsage(msg string) *UsageError {
	return &UsageError{Message: msg}
}

// InfraError reports that the grading environment itself is broken: the
// reference file is missing, unreadable, or its content is malformed.
// Scoring such a case as 0 would silently blame the student, so callers
// must emit it on the error channel and exit non-zero without a verdict.
type InfraError struct {
	Message string
	Err     error
}

func (e *InfraError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *InfraError) Unwrap() error {
	return e.Err
}

func NewInfra(msg string) *InfraError {
	return &InfraError{Message: msg}
}

func NewInfraWrap(msg string, err error) *InfraError {
	return &InfraError{Message: msg, Err: err}
}
