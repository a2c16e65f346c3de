package stream

import (
	"io"
	"os"
	"strings"
)

// Source produces a fresh reader for every iteration.
// Each Open result is closed by the Validator exactly once.
type Source interface {
	Open() (io.ReadCloser, error)
}

// Named is implemented by sources that can describe themselves in
// diagnostics and errors.
type Named interface {
	Name() string
}

// FileSource reads lines from a file on disk.
type FileSource string

// Open opens the file for reading.
func (p FileSource) Open() (io.ReadCloser, error) {
	return os.Open(string(p))
}

// Name returns the file path.
func (p FileSource) Name() string {
	return string(p)
}

// StringSource serves lines from an in-memory string.
type StringSource string

// Open returns a reader over the string.
func (s StringSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(string(s))), nil
}

func sourceName(src Source) string {
	if n, ok := src.(Named); ok {
		return n.Name()
	}
	return ""
}
