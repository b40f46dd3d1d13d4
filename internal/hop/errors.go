package hop

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is wrapped by every MalformedError.
	ErrMalformed = errors.New("malformed hop record")

	// ErrBlankLine is returned for lines that carry no data at all. Callers
	// skip these silently.
	ErrBlankLine = errors.New("blank line")
)

// MalformedError describes why a line could not be turned into a hop.
type MalformedError struct {
	Reason string
	Fields int
}

// Error implements the error interface for MalformedError.
func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: %s (got %d fields)", ErrMalformed, e.Reason, e.Fields)
}

// Unwrap allows errors.Is(err, ErrMalformed).
func (e *MalformedError) Unwrap() error {
	return ErrMalformed
}
