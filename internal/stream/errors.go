package stream

import (
	"errors"
	"fmt"
	"io/fs"
)

// SourceIOError reports a failure to open or read the line source.
// It is terminal: no verdicts follow it.
type SourceIOError struct {
	Op   string // "open" or "read"
	Path string
	Err  error
}

// Error implements the error interface.
func (e *SourceIOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *SourceIOError) Unwrap() error {
	return e.Err
}

// IsSourceIOError returns true if err is, or wraps, a *SourceIOError.
func IsSourceIOError(err error) bool {
	var se *SourceIOError
	return errors.As(err, &se)
}

// IsUnreadable reports whether err means the source could not be accessed
// at all (missing file or insufficient permissions).
func IsUnreadable(err error) bool {
	return IsSourceIOError(err) &&
		(errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission))
}
