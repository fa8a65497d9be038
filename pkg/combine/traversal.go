// File: pkg/combine/traversal.go
package combine

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gptignore/pkg/ignore"

	"go.uber.org/zap"
)

// IgnoreParser defines the interface for matching paths against ignore patterns.
type IgnoreParser interface {
	MatchesPath(path string) bool
	MatchesPathWithPattern(path string) (bool, *ignore.IgnorePattern)
}

// WalkOptions describes one traversal.
type WalkOptions struct {
	Root    string   // Directory to descend into.
	WorkDir string   // Candidate paths are made relative to this before matching.
	Exclude []string // Absolute paths skipped regardless of ignore rules.
}

// CollectFiles walks opts.Root depth-first and returns every regular file not
// matched by gi. Ignored directories are pruned. The first file-system error
// aborts the walk.
func CollectFiles(opts WalkOptions, gi IgnoreParser, logger *zap.Logger) ([]FileEntry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %q: %w", opts.Root, err)
	}
	workDir, err := filepath.Abs(opts.WorkDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory %q: %w", opts.WorkDir, err)
	}

	excluded := make(map[string]bool, len(opts.Exclude))
	for _, p := range opts.Exclude {
		if abs, err := filepath.Abs(p); err == nil {
			excluded[abs] = true
		}
	}

	logger.Debug("Starting file traversal", zap.String("root", root), zap.String("workDir", workDir))

	var files []FileEntry
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Error("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return err
		}
		if path == root {
			return nil
		}
		if excluded[path] {
			logger.Debug("Skipping excluded path", zap.String("path", path))
			return nil
		}

		candidate, err := filepath.Rel(workDir, path)
		if err != nil {
			return fmt.Errorf("failed to relativize %s: %w", path, err)
		}
		candidate = ignore.NormalizePath(candidate)

		if matched, pattern := gi.MatchesPathWithPattern(candidate); matched {
			logger.Debug("Path matches ignore pattern",
				zap.String("path", candidate),
				zap.String("pattern", pattern.Line),
				zap.Bool("dir", d.IsDir()))
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		info, err := os.Stat(path)
		if err != nil {
			logger.Error("Failed to stat file during traversal", zap.String("path", path), zap.Error(err))
			return err
		}
		if info.IsDir() {
			logger.Debug("Not following symlinked directory", zap.String("path", path))
			return nil
		}
		if !info.Mode().IsRegular() {
			logger.Debug("Skipping non-regular file", zap.String("path", path), zap.Stringer("mode", info.Mode()))
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to relativize %s: %w", path, err)
		}
		files = append(files, FileEntry{Path: path, RelPath: ignore.NormalizePath(relPath)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("traversal of %s failed: %w", root, err)
	}

	logger.Debug("Completed file traversal", zap.Int("files", len(files)))
	return files, nil
}
