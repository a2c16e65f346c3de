// Package config holds the settings for a levels run.
//
// Settings come from three layers, lowest precedence first:
//  1. Defaults()
//  2. an optional config file (.yaml/.yml, .toml or .cue)
//  3. command-line flags explicitly set by the user (applied by the cli package)
//
// Validate enforces file-name and numeric bounds once all layers are merged.
package config
