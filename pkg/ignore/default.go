package ignore

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed default.gptignore
var defaultTemplate []byte

// DefaultTemplate returns a copy of the bundled ignore file.
func DefaultTemplate() []byte {
	return append([]byte(nil), defaultTemplate...)
}

// WriteDefault writes the bundled template to workDir/fileName. An existing file
// is left untouched and created is false.
func WriteDefault(workDir, fileName string) (created bool, err error) {
	target := filepath.Join(workDir, fileName)

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create %s: %w", target, err)
	}

	if _, err := f.Write(defaultTemplate); err != nil {
		f.Close()
		return false, fmt.Errorf("failed to write %s: %w", target, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("failed to close %s: %w", target, err)
	}
	return true, nil
}
