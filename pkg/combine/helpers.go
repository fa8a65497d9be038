// File: pkg/combine/helpers.go
package combine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// RenderDocument reads every entry and lays the document out according to tmpl.
// Nothing is returned if any file fails to read.
func RenderDocument(entries []FileEntry, tmpl Template, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var doc strings.Builder

	if tmpl.Header != "" {
		doc.WriteString(tmpl.Header)
		doc.WriteString("\n\n")
	}

	if tmpl.Tree {
		doc.WriteString(GenerateTree(entries))
		doc.WriteString("\n")
	}

	for _, entry := range entries {
		content, err := ReadFileEntry(entry, logger)
		if err != nil {
			return "", err
		}
		writeSection(&doc, tmpl.Delimiter, content)
	}

	if tmpl.Terminator != "" {
		doc.WriteString(tmpl.Terminator)
		doc.WriteString("\n")
	}

	logger.Debug("Rendered document", zap.Int("files", len(entries)), zap.Int("bytes", doc.Len()))
	return doc.String(), nil
}

// writeSection appends a delimiter line, the path, a blank line, the contents
// exactly as read, and a blank-line separator.
func writeSection(doc *strings.Builder, delimiter string, content FileContent) {
	if delimiter != "" {
		doc.WriteString(delimiter)
		doc.WriteString("\n")
	}
	doc.WriteString(content.Path)
	doc.WriteString("\n\n")
	doc.WriteString(content.Content)
	doc.WriteString("\n\n")
}

// WriteDocument creates the output directory if needed and writes doc in a single call.
func WriteDocument(outputPath, doc string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := ensureDirectory(filepath.Dir(outputPath), logger); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return writeToFile(outputPath, []byte(doc), 0644, logger)
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}

// writeToFile writes data to a file and logs the operation.
func writeToFile(path string, data []byte, perm os.FileMode, logger *zap.Logger) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		logger.Error("Failed to write file", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Successfully wrote file", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}
