package cli

import (
	"io"
	"log/slog"
)

// newLogger builds the diagnostic logger for a run. Debug enables the
// per-line traces emitted by the stream package.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler)
}
