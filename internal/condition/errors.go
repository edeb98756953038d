package condition

import (
	"errors"
	"fmt"
)

// Caller-contract violations. They indicate a programming error in the caller,
// not a recoverable runtime condition.
var (
	ErrEmptyGroup       = errors.New("score group must not be empty")
	ErrInvalidLimit     = errors.New("limit must be greater than zero")
	ErrMisalignedWindow = errors.New("window start must be aligned to a whole hour")
	ErrOutOfOrder       = errors.New("records must arrive in ascending timestamp order")
)

var (
	// ErrInvalidFormat is wrapped by every *FormatError.
	ErrInvalidFormat = errors.New("invalid condition format")
	// ErrWindowClosed is returned by HourlyBucketer.Add once the stream has moved
	// past the graph window; callers may stop scanning.
	ErrWindowClosed = errors.New("record is past the end of the graph window")

	ErrUnknownLevel      = errors.New("unknown condition level")
	ErrUnknownTrendShape = errors.New("unknown trend shape")
)

// FormatError reports a flag string that does not match the canonical grammar.
type FormatError struct {
	Raw    string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid condition %q: %s", e.Raw, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrInvalidFormat }

// ClassificationError means stored data could not be mapped to a level. Stored
// conditions are validated at ingestion, so this is an invariant violation.
type ClassificationError struct {
	Raw   string
	Count int
	Err   error
}

func (e *ClassificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("classify condition %q: %v", e.Raw, e.Err)
	}
	return fmt.Sprintf("classify condition: %d flags set, want 0..3", e.Count)
}

func (e *ClassificationError) Unwrap() error { return e.Err }
