package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_DefaultRedirectsToGeneratedFile(t *testing.T) {
	dir := t.TempDir()
	defaultPath := filepath.Join(dir, "default.txt")
	require.NoError(t, os.WriteFile(defaultPath, []byte("keep me"), 0o644))

	stdout, _, err := execute(t, "generate", "--assets", dir)
	require.NoError(t, err)

	generated := filepath.Join(dir, "generated.txt")
	assert.Equal(t, "Successfully generated 10 lines in "+generated+"\n", stdout)

	kept, err := os.ReadFile(defaultPath)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(kept))

	data, err := os.ReadFile(generated)
	require.NoError(t, err)
	assert.Len(t, strings.Split(string(data), "\n"), 10)
}

func TestGenerate_CustomFile(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, "generate", "-l", "7", "-n", "4", "-a", "custom.txt", "--seed", "12", "--assets", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "custom.txt"))
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 7)
	for _, line := range lines {
		assert.Len(t, strings.Fields(line), 4)
	}
}

func TestGenerate_SeedIsDeterministic(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, "generate", "-a", "a.txt", "--seed", "99", "--assets", dir)
	require.NoError(t, err)
	_, _, err = execute(t, "generate", "-a", "b.txt", "--seed", "99", "--assets", dir)
	require.NoError(t, err)

	a, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(dir, "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_ThenValidate(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, "generate", "-l", "20", "-a", "round.txt", "--assets", dir)
	require.NoError(t, err)

	stdout, _, err := execute(t, "--format", "json", "validate", "round.txt", "--assets", dir)
	require.NoError(t, err)

	var resp struct {
		Data ValidationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, 20, resp.Data.Total)
	// Every odd line is generated safe.
	assert.GreaterOrEqual(t, resp.Data.Safe, 10)
}

func TestGenerate_JSON(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := execute(t, "--format", "json", "generate", "-l", "3", "-a", "j.txt", "--assets", dir)
	require.NoError(t, err)

	var resp struct {
		Status  string         `json:"status"`
		Data    GenerateResult `json:"data"`
		TraceID string         `json:"trace_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 3, resp.Data.Lines)
	assert.Equal(t, filepath.Join(dir, "j.txt"), resp.Data.Path)
	assert.Equal(t, "test-run-fixed", resp.TraceID)
}

func TestGenerate_Bounds(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"too many lines", []string{"-l", "100001"}, "less than or equal to 100000"},
		{"too many numbers", []string{"-n", "1001"}, "less than or equal to 1000"},
		{"negative lines", []string{"-l", "-1"}, "non-negative"},
		{"bad file name", []string{"-a", "dir/file.txt"}, "cannot contain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--debug", "generate", "--assets", t.TempDir()}, tt.args...)
			_, stderr, err := execute(t, args...)
			require.Error(t, err)
			assert.Equal(t, ExitFailure, GetExitCode(err))
			assert.Contains(t, stderr, "Error [E002]")
			assert.Contains(t, stderr, tt.msg)
		})
	}
}

func TestGenerate_MissingAssetsDir(t *testing.T) {
	_, stderr, err := execute(t, "generate", "--assets", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stderr, "Error [E007]: failed to generate file")
}

func TestGenerate_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "levels.cue")
	cfgContent := "assets_dir: \"" + dir + "\"\ngenerate: {\n\tlines: 4\n\toutput: \"cue.txt\"\n}\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgContent), 0o644))

	_, _, err := execute(t, "--config", cfgPath, "generate", "-n", "2")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "cue.txt"))
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 4)
	assert.Len(t, strings.Fields(lines[0]), 2)
}
