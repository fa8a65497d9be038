package combine

import (
	"fmt"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
)

// ReadFileEntry reads the full contents of one included file.
func ReadFileEntry(entry FileEntry, logger *zap.Logger) (FileContent, error) {
	logger.Debug("Reading file content", zap.String("filePath", entry.Path))

	fileBytes, err := os.ReadFile(entry.Path)
	if err != nil {
		logger.Error("Failed to read file",
			zap.String("filePath", entry.Path),
			zap.Error(err))
		return FileContent{}, fmt.Errorf("error reading file %s: %w", entry.Path, err)
	}

	if !utf8.Valid(fileBytes) {
		logger.Error("File is not valid text", zap.String("filePath", entry.Path))
		return FileContent{}, fmt.Errorf("error decoding file %s: %w", entry.Path, ErrNotText)
	}

	logger.Debug("Successfully read file content",
		zap.String("filePath", entry.Path),
		zap.Int("contentSizeBytes", len(fileBytes)))

	return FileContent{
		Path:    entry.RelPath,
		Content: string(fileBytes),
	}, nil
}
