package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/levels/internal/config"
	"github.com/roach88/levels/internal/runid"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Debug      bool
	Format     string // "json" | "text"
	AssetsDir  string
	ConfigFile string

	// RunIDs allows overriding the run ID generator (for testing).
	// If nil, defaults to runid.UUIDv7Generator.
	RunIDs runid.Generator
}

// NewRootCommand creates the root command for the levels CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "levels - monotonic level report checker",
		Long: `Check files of space-separated integers line by line.

A line is safe when its values are strictly increasing or strictly
decreasing and every adjacent difference is between 1 and 3.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if config.ValidateFormat(opts.Format) != nil {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, config.ValidFormats)
			}
			return nil
		},
	}

	defaults := config.Defaults()

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Debug, "debug", "d", defaults.Debug, "trace every line and show error details")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", defaults.Format, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.AssetsDir, "assets", defaults.AssetsDir, "directory holding input files")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (.yaml, .toml or .cue)")

	// Add subcommands
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewGenerateCommand(opts))

	return cmd
}

func (o *RootOptions) runIDs() runid.Generator {
	if o.RunIDs != nil {
		return o.RunIDs
	}
	return runid.UUIDv7Generator{}
}

// resolveConfig layers the config file and explicitly set global flags
// over the defaults. Command-specific flags are applied by the caller.
func resolveConfig(opts *RootOptions, cmd *cobra.Command) (config.Config, error) {
	cfg := config.Defaults()
	if opts.ConfigFile != "" {
		loaded, err := config.Load(opts.ConfigFile)
		if err != nil {
			return cfg, WrapExitError(ExitFailure, "failed to load config", err)
		}
		cfg = loaded
	}

	if flagChanged(cmd, "debug") {
		cfg.Debug = opts.Debug
	}
	if flagChanged(cmd, "format") {
		cfg.Format = opts.Format
	}
	if flagChanged(cmd, "assets") {
		cfg.AssetsDir = opts.AssetsDir
	}
	return cfg, nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}
