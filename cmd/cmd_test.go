package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"gptignore/pkg/combine"
	"gptignore/pkg/ignore"
	"gptignore/pkg/logging"
	"gptignore/pkg/version"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// run executes the root command as if invoked from workDir and returns its stdout.
func run(t *testing.T, workDir string, args ...string) (string, error) {
	t.Helper()

	origGetwd := getwd
	getwd = func() (string, error) { return workDir, nil }
	generateFlags.noHeader, generateFlags.noTerminator, generateFlags.tree = false, false, false
	debug = false
	t.Cleanup(func() { getwd = origGetwd })

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func TestUnknownCommandDoesNotFail(t *testing.T) {
	out, err := run(t, t.TempDir(), "frobnicate")
	require.NoError(t, err)

	assert.Contains(t, out, "Unknown command: frobnicate")
	assert.Contains(t, out, "Available commands:")
	assert.Contains(t, out, "generate")
	assert.Contains(t, out, "init")
}

func TestUnknownCommandWithFlagDoesNotFail(t *testing.T) {
	out, err := run(t, t.TempDir(), "frobnicate", "--verbose")
	require.NoError(t, err)

	assert.Contains(t, out, "Unknown command: frobnicate")
	assert.Contains(t, out, "Available commands:")
}

func TestSubcommandUnknownFlagStillFails(t *testing.T) {
	_, err := run(t, t.TempDir(), "generate", "--verbose")
	assert.Error(t, err)
}

func TestErrorsAreNotPrintedByCobra(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blob"), []byte{0xff, 0xfe}, 0644))

	out, err := run(t, dir, "generate")
	require.Error(t, err)
	assert.NotContains(t, out, "Error:")
}

func TestDebugFlagSwitchesToDevelopmentLogger(t *testing.T) {
	_, err := run(t, t.TempDir(), "init", "--debug")
	require.NoError(t, err)
	assert.True(t, logging.Logger.Core().Enabled(zap.DebugLevel))

	_, err = run(t, t.TempDir(), "init")
	require.NoError(t, err)
	assert.False(t, logging.Logger.Core().Enabled(zap.InfoLevel))
}

func TestVersionFull(t *testing.T) {
	out, err := run(t, t.TempDir(), "version", "--short=false")
	require.NoError(t, err)
	assert.Equal(t, version.Get().String()+"\n", out)
}

func TestInitTwiceKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, ignore.DefaultFileName)

	out, err := run(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	require.NoError(t, os.WriteFile(target, []byte("edited/\n"), 0644))

	out, err = run(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "edited/\n", string(data))
}

func TestGenerateDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha\n"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "b"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b", "secret.txt"), []byte("hidden\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ignore.DefaultFileName), []byte("b/\n"), 0644))

	out, err := run(t, dir, "generate")
	require.NoError(t, err)

	outputPath := filepath.Join(dir, combine.DefaultOutputDir, combine.DefaultOutputFileName)
	assert.Contains(t, out, "AI file generated at "+outputPath)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), combine.DefaultTemplate().Header)
	assert.Contains(t, string(data), "----\na.txt\n\nalpha\n")
	assert.NotContains(t, string(data), "secret.txt")
	assert.Contains(t, string(data), "--END--\n")
}

func TestGenerateWithArgsAndFlags(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.go"), []byte("package main\n"), 0644))

	_, err := run(t, dir, "generate", "src", "src.txt", "--no-header", "--no-terminator")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "ai", "src.txt"))
	require.NoError(t, err)
	assert.Equal(t, "----\nmain.go\n\npackage main\n\n\n", string(data))
}

func TestGenerateNoTerminatorDropsItFromHeader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha\n"), 0644))

	_, err := run(t, dir, "generate", "--no-terminator")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, combine.DefaultOutputDir, combine.DefaultOutputFileName))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "--END--")
	assert.Contains(t, string(data), "The following text is a project's source code")
}

func TestGenerateFailsOnUnreadableTree(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blob"), []byte{0xff, 0xfe}, 0644))

	_, err := run(t, dir, "generate")
	require.ErrorIs(t, err, combine.ErrNotText)

	_, statErr := os.Stat(filepath.Join(dir, combine.DefaultOutputDir, combine.DefaultOutputFileName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateRejectsExtraArgs(t *testing.T) {
	_, err := run(t, t.TempDir(), "generate", "a", "b", "c")
	assert.Error(t, err)
}

func TestVersionShort(t *testing.T) {
	out, err := run(t, t.TempDir(), "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", out)
}
