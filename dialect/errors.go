package dialect

import (
	"errors"
	"fmt"
)

// ErrMalformedPlaceholder is the sentinel wrapped by every
// *MalformedPlaceholderError.
var ErrMalformedPlaceholder = errors.New("malformed placeholder")

// MalformedPlaceholderError is returned by Compile when a
// placeholder has an empty name. Ordinal is the 0-based
// index of the offending placeholder among all
// placeholders of the template.
type MalformedPlaceholderError struct {
	Ordinal int
}

// Error implements the error interface.
func (e *MalformedPlaceholderError) Error() string {
	return fmt.Sprintf(
		"placeholder number %d has no name", e.Ordinal,
	)
}

// Unwrap returns ErrMalformedPlaceholder.
func (e *MalformedPlaceholderError) Unwrap() error {
	return ErrMalformedPlaceholder
}
