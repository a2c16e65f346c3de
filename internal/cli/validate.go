package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/levels/internal/config"
	"github.com/roach88/levels/internal/stream"
)

// ValidationResult holds the counts for one validated file.
type ValidationResult struct {
	Path   string `json:"path"`
	Total  int    `json:"total"`
	Safe   int    `json:"safe"`
	Unsafe int    `json:"unsafe"`
}

// String renders the text form of the result with grouped counts.
func (r ValidationResult) String() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("In %s:\n Of %d lines, %d are safe.", r.Path, r.Total, r.Safe)
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Count safe lines in an input file",
		Long: `Classify every line of a file in the assets directory and report
how many lines are safe.

The file is read one line at a time, so inputs of any size are supported.
Lines that are not made of single-space separated digits are not safe.
With --debug every line is traced to stderr.

Exit codes:
  0 - File validated
  1 - Invalid settings or unexpected failure
  2 - Input file missing or not readable

Examples:
  levels validate
  levels validate generated.txt --debug
  levels validate levels.txt --assets ./data --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, args []string, cmd *cobra.Command) error {
	cfg, err := resolveConfig(opts, cmd)
	if len(args) == 1 {
		cfg.Input = args[0]
	}

	formatter := &OutputFormatter{
		Format:    cfg.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Diagnostics go to stderr to avoid corrupting JSON
		Debug:     cfg.Debug,
		TraceID:   opts.runIDs().Generate(),
	}
	if err != nil {
		return outputCommandError(formatter, ErrCodeConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return outputCommandError(formatter, ErrCodeConfig, WrapExitError(ExitFailure, "invalid settings", err))
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Debug).With("run_id", formatter.TraceID)
	path := cfg.InputPath()
	logger.Debug("validating", "path", path)

	// Stop reading on Ctrl-C; the stream releases the file when the pull stops.
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	validator := stream.New(cfg.Debug, logger)
	summary, err := validator.Summarize(ctx, stream.FileSource(path))
	if err != nil {
		if cfg.Debug {
			logger.Error("validation failed", "path", path, "error", err)
		}
		return outputCommandError(formatter, errorCode(err), classifyRunError(err))
	}
	logger.Debug("validated", "path", path, "total", summary.Total, "safe", summary.Safe)

	result := ValidationResult{
		Path:   path,
		Total:  summary.Total,
		Safe:   summary.Safe,
		Unsafe: summary.Unsafe(),
	}
	return formatter.Success(result)
}

// classifyRunError maps a stream failure to an ExitError.
func classifyRunError(err error) *ExitError {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	switch {
	case stream.IsUnreadable(err):
		return WrapExitError(ExitUnreadable, "cannot read input file", err)
	case stream.IsCanceled(err):
		return WrapExitError(ExitFailure, "validation interrupted", err)
	default:
		return WrapExitError(ExitFailure, "unexpected failure", err)
	}
}

func errorCode(err error) string {
	var cfgErr *config.Error
	switch {
	case stream.IsUnreadable(err):
		return ErrCodeUnreadable
	case stream.IsSourceIOError(err):
		return ErrCodeReadFailed
	case stream.IsCanceled(err):
		return ErrCodeCanceled
	case errors.As(err, &cfgErr):
		return ErrCodeConfig
	default:
		return ErrCodeGeneric
	}
}

// outputCommandError prints err and returns it as an *ExitError.
// The underlying error chain is only shown with --debug.
func outputCommandError(formatter *OutputFormatter, code string, err error) error {
	exitErr := classifyRunError(err)
	var details interface{}
	if exitErr.Err != nil {
		details = exitErr.Err.Error()
	}
	_ = formatter.Error(code, exitErr.Message, details)
	return exitErr
}
