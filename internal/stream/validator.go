package stream

import (
	"context"
	"errors"
	"iter"
	"log/slog"
	"unicode/utf8"

	"github.com/roach88/levels/internal/classify"
)

// DisplayLimit is the number of characters of a line shown in traces.
// Longer lines are cut and suffixed with DisplayEllipsis.
const (
	DisplayLimit    = 100
	DisplayEllipsis = "..."
)

// Validator classifies every line of a Source.
// The zero value is usable with traces off.
type Validator struct {
	// Debug enables per-line classification and format-error traces.
	Debug bool

	// Logger receives traces. Defaults to slog.Default() when nil.
	Logger *slog.Logger
}

// New creates a Validator that traces to logger when debug is set.
func New(debug bool, logger *slog.Logger) *Validator {
	return &Validator{Debug: debug, Logger: logger}
}

func (v *Validator) logger() *slog.Logger {
	if v.Logger != nil {
		return v.Logger
	}
	return slog.Default()
}

// Verdicts returns the lazy verdict sequence for src.
//
// Each pair is (safe, nil) for one input line, in input order. If the source
// cannot be opened or read, a single (false, *SourceIOError) pair is yielded
// and the sequence ends. The source is opened once per range and closed on
// every exit path.
func (v *Validator) Verdicts(src Source) iter.Seq2[bool, error] {
	return func(yield func(bool, error) bool) {
		name := sourceName(src)

		rc, err := src.Open()
		if err != nil {
			yield(false, &SourceIOError{Op: "open", Path: name, Err: err})
			return
		}
		defer func() {
			if closeErr := rc.Close(); closeErr != nil {
				v.logger().Warn("error closing source", "path", name, "error", closeErr)
			}
		}()

		n := 0
		for line, readErr := range readLines(rc) {
			if readErr != nil {
				yield(false, &SourceIOError{Op: "read", Path: name, Err: readErr})
				return
			}
			n++
			if !yield(v.classifyLine(n, line), nil) {
				return
			}
		}
	}
}

// classifyLine folds a per-line format error into a false verdict.
func (v *Validator) classifyLine(n int, line string) bool {
	r := classify.Explain(line)
	if !v.Debug {
		return r.Safe
	}

	log := v.logger()
	text := Display(line)
	if r.Reason == classify.ReasonFormat {
		log.Warn("error processing line", "line", n, "error", r.Err, "text", text)
	}
	attrs := []any{"line", n, "verdict", verdictLabel(r.Safe)}
	if !r.Safe {
		attrs = append(attrs, "reason", string(r.Reason))
	}
	attrs = append(attrs, "text", text)
	log.Debug("classified", attrs...)
	return r.Safe
}

func verdictLabel(safe bool) string {
	if safe {
		return "Safe"
	}
	return "Not Safe"
}

// Display renders line for traces, truncating to DisplayLimit characters.
func Display(line string) string {
	if utf8.RuneCountInString(line) <= DisplayLimit {
		return line
	}
	cut := 0
	for i := range line {
		if cut == DisplayLimit {
			return line[:i] + DisplayEllipsis
		}
		cut++
	}
	return line
}

// Summary counts the verdicts produced for one source.
type Summary struct {
	Total int `json:"total"`
	Safe  int `json:"safe"`
}

// Unsafe returns the number of lines that were not safe.
func (s Summary) Unsafe() int {
	return s.Total - s.Safe
}

// Summarize drains the verdict sequence for src. It stops early, releasing
// the source, when ctx is cancelled; the returned error is then ctx.Err().
func (v *Validator) Summarize(ctx context.Context, src Source) (Summary, error) {
	var s Summary
	for safe, err := range v.Verdicts(src) {
		if err != nil {
			return s, err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return s, ctxErr
		}
		s.Total++
		if safe {
			s.Safe++
		}
	}
	return s, nil
}

// IsCanceled reports whether err came from context cancellation.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
