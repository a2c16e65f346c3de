package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/levels/internal/config"
	"github.com/roach88/levels/internal/generate"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Lines     int
	Numbers   int
	AssetFile string
	Seed      uint64
}

// GenerateResult describes a generated file.
type GenerateResult struct {
	Path    string `json:"path"`
	Lines   int    `json:"lines"`
	Numbers int    `json:"numbers"`
}

func (r GenerateResult) String() string {
	return fmt.Sprintf("Successfully generated %d lines in %s", r.Lines, r.Path)
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}
	defaults := config.Defaults().Generate

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic input file",
		Long: `Generate a file of increasing integer lines in the assets directory.

Even lines use steps of 1 to 5 and are often unsafe; odd lines use steps
of 1 to 3 and are always safe. The default input file is never
overwritten: asking for default.txt writes generated.txt instead.

Examples:
  levels generate
  levels generate -l 1000 -n 20 -a big.txt
  levels generate --seed 42`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Lines, "lines", "l", defaults.Lines, fmt.Sprintf("number of lines to generate (max %d)", config.MaxLines))
	cmd.Flags().IntVarP(&opts.Numbers, "numbers", "n", defaults.Numbers, fmt.Sprintf("number of numbers per line (max %d)", config.MaxNumbers))
	cmd.Flags().StringVarP(&opts.AssetFile, "asset-file", "a", defaults.Output, "name of the file in the assets directory")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", defaults.Seed, "random seed (0 picks one)")

	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command) error {
	cfg, err := resolveConfig(opts.RootOptions, cmd)
	if flagChanged(cmd, "lines") {
		cfg.Generate.Lines = opts.Lines
	}
	if flagChanged(cmd, "numbers") {
		cfg.Generate.Numbers = opts.Numbers
	}
	if flagChanged(cmd, "asset-file") {
		cfg.Generate.Output = opts.AssetFile
	}
	if flagChanged(cmd, "seed") {
		cfg.Generate.Seed = opts.Seed
	}

	formatter := &OutputFormatter{
		Format:    cfg.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
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
	path := cfg.OutputPath()
	gen := cfg.Generate
	logger.Debug("generating", "path", path, "lines", gen.Lines, "numbers", gen.Numbers, "seed", gen.Seed)

	if err := generate.File(path, gen.Lines, gen.Numbers, generate.NewRand(gen.Seed)); err != nil {
		if cfg.Debug {
			logger.Error("generation failed", "path", path, "error", err)
		}
		return outputCommandError(formatter, ErrCodeWriteFailed, WrapExitError(ExitFailure, "failed to generate file", err))
	}

	result := GenerateResult{Path: path, Lines: gen.Lines, Numbers: gen.Numbers}
	return formatter.Success(result)
}
