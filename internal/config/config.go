package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Default file names inside the assets directory.
const (
	DefaultAssetsDir     = "assets"
	DefaultInputFile     = "default.txt"
	DefaultGeneratedFile = "generated.txt"
)

// Generation limits.
const (
	DefaultLines   = 10
	DefaultNumbers = 10
	MaxLines       = 100000
	MaxNumbers     = 1000
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// InvalidFileNameChars may not appear in an asset file name.
const InvalidFileNameChars = `/\:*"<>|`

// Config contains every setting of a run.
type Config struct {
	AssetsDir string         `json:"assets_dir" yaml:"assets_dir" toml:"assets_dir"`
	Input     string         `json:"input" yaml:"input" toml:"input"`
	Debug     bool           `json:"debug" yaml:"debug" toml:"debug"`
	Format    string         `json:"format" yaml:"format" toml:"format"`
	Generate  GenerateConfig `json:"generate" yaml:"generate" toml:"generate"`
}

// GenerateConfig contains the settings of the generate command.
type GenerateConfig struct {
	Lines   int    `json:"lines" yaml:"lines" toml:"lines"`
	Numbers int    `json:"numbers" yaml:"numbers" toml:"numbers"`
	Output  string `json:"output" yaml:"output" toml:"output"`
	Seed    uint64 `json:"seed" yaml:"seed" toml:"seed"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		AssetsDir: DefaultAssetsDir,
		Input:     DefaultInputFile,
		Format:    "text",
		Generate: GenerateConfig{
			Lines:   DefaultLines,
			Numbers: DefaultNumbers,
			Output:  DefaultInputFile,
		},
	}
}

// Error reports an invalid setting.
type Error struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ValidateFileName rejects names containing path separators or characters
// reserved on common filesystems.
func ValidateFileName(field, name string) error {
	if name == "" {
		return &Error{Field: field, Message: "file name cannot be empty"}
	}
	if i := strings.IndexAny(name, InvalidFileNameChars); i >= 0 {
		return &Error{Field: field, Message: fmt.Sprintf("file name cannot contain %q", name[i])}
	}
	return nil
}

// ValidateNumber requires 0 <= n <= max.
func ValidateNumber(field string, n, max int) error {
	if n < 0 {
		return &Error{Field: field, Message: "number must be a non-negative integer"}
	}
	if n > max {
		return &Error{Field: field, Message: fmt.Sprintf("number must be less than or equal to %d", max)}
	}
	return nil
}

// ValidateFormat requires one of ValidFormats.
func ValidateFormat(format string) error {
	for _, f := range ValidFormats {
		if f == format {
			return nil
		}
	}
	return &Error{Field: "format", Message: fmt.Sprintf("%q: must be one of %v", format, ValidFormats)}
}

// Validate checks every setting.
func (c Config) Validate() error {
	if c.AssetsDir == "" {
		return &Error{Field: "assets_dir", Message: "directory cannot be empty"}
	}
	if err := ValidateFormat(c.Format); err != nil {
		return err
	}
	if err := ValidateFileName("input", c.Input); err != nil {
		return err
	}
	if err := ValidateFileName("generate.output", c.Generate.Output); err != nil {
		return err
	}
	if err := ValidateNumber("generate.lines", c.Generate.Lines, MaxLines); err != nil {
		return err
	}
	return ValidateNumber("generate.numbers", c.Generate.Numbers, MaxNumbers)
}

// InputPath returns the path of the file to validate.
func (c Config) InputPath() string {
	return filepath.Join(c.AssetsDir, c.Input)
}

// OutputPath returns the path the generate command writes to.
// The default input file is never overwritten: asking for it writes
// DefaultGeneratedFile instead.
func (c Config) OutputPath() string {
	name := c.Generate.Output
	if name == DefaultInputFile {
		name = DefaultGeneratedFile
	}
	return filepath.Join(c.AssetsDir, name)
}
