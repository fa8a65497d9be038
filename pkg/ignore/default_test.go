package ignore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault_CreatesTemplate(t *testing.T) {
	dir := t.TempDir()

	created, err := WriteDefault(dir, DefaultFileName)
	require.NoError(t, err)
	assert.True(t, created)

	content, err := os.ReadFile(filepath.Join(dir, DefaultFileName))
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplate(), content)
}

func TestWriteDefault_LeavesExistingFile(t *testing.T) {
	dir := t.TempDir()
	writeIgnoreFile(t, dir, "custom/\n")

	created, err := WriteDefault(dir, DefaultFileName)
	require.NoError(t, err)
	assert.False(t, created)

	content, err := os.ReadFile(filepath.Join(dir, DefaultFileName))
	require.NoError(t, err)
	assert.Equal(t, "custom/\n", string(content))
}

func TestDefaultTemplate_Parses(t *testing.T) {
	gi := NewGPTIgnore(nil)
	gi.CompileIgnoreLines(strings.Split(string(DefaultTemplate()), "\n")...)

	require.NotEmpty(t, gi.Patterns)
	assert.True(t, gi.MatchesPath(".git/HEAD"))
	assert.True(t, gi.MatchesPath("node_modules/lodash/index.js"))
	assert.True(t, gi.MatchesPath("ai/project_contents.txt"))
	assert.True(t, gi.MatchesPath("assets/logo.png"))
	assert.False(t, gi.MatchesPath("main.go"))
}
