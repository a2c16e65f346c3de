package testutil

import (
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrAlreadyClosed is returned by a TrackedReader closed more than once.
var ErrAlreadyClosed = errors.New("testutil: reader already closed")

// TrackedSource serves a fixed string and records every reader it hands out,
// so tests can assert that each one was closed exactly once.
//
// Thread-safety: TrackedSource is safe for concurrent use via internal mutex.
type TrackedSource struct {
	mu      sync.Mutex
	content string
	readers []*TrackedReader

	// OpenErr, when set, is returned from Open and no reader is created.
	OpenErr error

	// ReadErr, when set, is returned by readers after content is exhausted
	// instead of io.EOF.
	ReadErr error
}

// NewTrackedSource creates a source serving content.
func NewTrackedSource(content string) *TrackedSource {
	return &TrackedSource{content: content}
}

// Open returns a new TrackedReader over the content.
func (s *TrackedSource) Open() (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.OpenErr != nil {
		return nil, s.OpenErr
	}
	r := &TrackedReader{r: strings.NewReader(s.content), readErr: s.ReadErr}
	s.readers = append(s.readers, r)
	return r, nil
}

// Name identifies the source in diagnostics.
func (s *TrackedSource) Name() string {
	return "tracked"
}

// Opens returns how many readers have been handed out.
func (s *TrackedSource) Opens() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.readers)
}

// Readers returns the readers handed out so far, in order.
func (s *TrackedSource) Readers() []*TrackedReader {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*TrackedReader(nil), s.readers...)
}

// TrackedReader counts Close calls.
type TrackedReader struct {
	mu      sync.Mutex
	r       *strings.Reader
	readErr error
	closes  int
}

// Read reads from the content. Reading after Close fails.
func (r *TrackedReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closes > 0 {
		return 0, ErrAlreadyClosed
	}
	n, err := r.r.Read(p)
	if errors.Is(err, io.EOF) && r.readErr != nil {
		return n, r.readErr
	}
	return n, err
}

// Close marks the reader closed. A second Close returns ErrAlreadyClosed.
func (r *TrackedReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closes++
	if r.closes > 1 {
		return ErrAlreadyClosed
	}
	return nil
}

// Closes returns the number of Close calls.
func (r *TrackedReader) Closes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closes
}
