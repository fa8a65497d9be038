// File: pkg/combine/execute.go
package combine

import (
	"fmt"
	"path/filepath"
	"time"

	"gptignore/pkg/ignore"

	"go.uber.org/zap"
)

// RunGenerate loads the ignore file, walks the root and writes the combined
// document. No output is written if any step fails.
func RunGenerate(args Arguments, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()

	args = withDefaults(args)
	workDir, err := filepath.Abs(args.WorkDir)
	if err != nil {
		logger.Error("Failed to resolve working directory", zap.Error(err))
		return Result{}, fmt.Errorf("failed to get absolute path: %w", err)
	}
	root := resolve(workDir, args.Root)
	outputPath := filepath.Join(resolve(workDir, args.OutputDir), args.OutputFileName)

	logger.Info("Starting generate",
		zap.String("root", root),
		zap.String("workDir", workDir),
		zap.String("output", outputPath))

	gi, err := ignore.LoadIgnoreFile(workDir, args.IgnoreFileName, logger)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load ignore patterns: %w", err)
	}

	files, err := CollectFiles(WalkOptions{
		Root:    root,
		WorkDir: workDir,
		Exclude: []string{outputPath},
	}, gi, logger)
	if err != nil {
		logger.Error("Failed to collect files", zap.Error(err))
		return Result{}, fmt.Errorf("failed to collect files: %w", err)
	}
	if len(files) == 0 {
		logger.Warn("No files to process after filtering", zap.String("root", root))
	}

	doc, err := RenderDocument(files, args.Template, logger)
	if err != nil {
		return Result{}, fmt.Errorf("failed to render document: %w", err)
	}

	if err := WriteDocument(outputPath, doc, logger); err != nil {
		return Result{}, fmt.Errorf("failed to write document: %w", err)
	}

	logger.Info("Generate completed",
		zap.String("outputFile", outputPath),
		zap.Int("totalFiles", len(files)),
		zap.Duration("elapsed", time.Since(startTime)))

	return Result{OutputPath: outputPath, FileCount: len(files), Bytes: len(doc)}, nil
}

func withDefaults(args Arguments) Arguments {
	if args.IgnoreFileName == "" {
		args.IgnoreFileName = ignore.DefaultFileName
	}
	if args.OutputDir == "" {
		args.OutputDir = DefaultOutputDir
	}
	if args.OutputFileName == "" {
		args.OutputFileName = DefaultOutputFileName
	}
	return args
}

// resolve joins path onto base unless path is already absolute.
func resolve(base, path string) string {
	if path == "" {
		return base
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
