// Package ignore loads .gptignore files and matches paths against their patterns.
package ignore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// DefaultFileName is the ignore-specification file looked up in the working directory.
const DefaultFileName = ".gptignore"

// IgnorePattern pairs a parsed Matcher with metadata about the pattern's origin.
type IgnorePattern struct {
	Matcher Matcher // Matching rule selected at parse time.
	Line    string  // Original pattern line, trimmed.
	LineNo  int     // Position among the loaded patterns (1-based).
}

// GPTIgnore represents an ordered collection of ignore patterns.
type GPTIgnore struct {
	Patterns []*IgnorePattern
	logger   *zap.Logger
}

// NewGPTIgnore initializes an empty GPTIgnore with an optional logger.
func NewGPTIgnore(logger *zap.Logger) *GPTIgnore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GPTIgnore{
		Patterns: []*IgnorePattern{},
		logger:   logger,
	}
}

// ReadPatterns reads the ignore file in workDir and returns its pattern lines in
// order. A missing file yields an empty slice and no error.
func ReadPatterns(workDir, fileName string) ([]string, error) {
	content, err := os.ReadFile(filepath.Join(workDir, fileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read ignore file: %w", err)
	}

	lines := lo.Map(strings.Split(string(content), "\n"), func(line string, _ int) string {
		return strings.TrimSpace(line)
	})
	return lo.Filter(lines, func(line string, _ int) bool {
		return line != "" && !strings.HasPrefix(line, "#")
	}), nil
}

// LoadIgnoreFile reads and compiles the ignore file in workDir.
func LoadIgnoreFile(workDir, fileName string, logger *zap.Logger) (*GPTIgnore, error) {
	gi := NewGPTIgnore(logger)

	lines, err := ReadPatterns(workDir, fileName)
	if err != nil {
		gi.logger.Error("Failed to read ignore file",
			zap.String("workDir", workDir),
			zap.String("fileName", fileName),
			zap.Error(err))
		return nil, err
	}

	gi.CompileIgnoreLines(lines...)
	gi.logger.Debug("Loaded ignore file",
		zap.String("filePath", filepath.Join(workDir, fileName)),
		zap.Int("patternCount", len(gi.Patterns)))
	return gi, nil
}

// CompileIgnoreLines parses lines and appends the resulting patterns.
// Blank lines and comments are skipped.
func (gi *GPTIgnore) CompileIgnoreLines(lines ...string) {
	for _, line := range lines {
		m := ParsePattern(line)
		if m == nil {
			continue
		}
		ip := &IgnorePattern{
			Matcher: m,
			Line:    strings.TrimSpace(line),
			LineNo:  len(gi.Patterns) + 1,
		}
		gi.Patterns = append(gi.Patterns, ip)
		gi.logger.Debug("Compiled ignore pattern",
			zap.Int("lineNo", ip.LineNo),
			zap.String("pattern", ip.Line),
			zap.Stringer("kind", m.Kind()))
	}
}

// MatchesPath checks if a path matches any of the ignore patterns.
func (gi *GPTIgnore) MatchesPath(path string) bool {
	matches, _ := gi.MatchesPathWithPattern(path)
	return matches
}

// MatchesPathWithPattern returns the first pattern, in file order, matching path.
func (gi *GPTIgnore) MatchesPathWithPattern(path string) (bool, *IgnorePattern) {
	normalizedPath := NormalizePath(path)
	for _, pattern := range gi.Patterns {
		if pattern.Matcher.Match(normalizedPath) {
			return true, pattern
		}
	}
	return false, nil
}
