package classify

import (
	"errors"
	"fmt"
)

// FormatError reports a token that is not a run of ASCII decimal digits,
// or a digit run too large to hold in a Value.
type FormatError struct {
	// Token is the offending token as it appeared in the line.
	Token string

	// Index is the zero-based position of the token within the line.
	Index int

	// Err is the underlying conversion error, if any (e.g. strconv range errors).
	Err error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid integer format: %q (token %d): %v", e.Token, e.Index, e.Err)
	}
	return fmt.Sprintf("invalid integer format: %q (token %d)", e.Token, e.Index)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// IsFormatError returns true if err is, or wraps, a *FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
