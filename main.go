package main

import (
	"log"
	"os"
	"strings"

	"gptignore/cmd"
	"gptignore/pkg/logging"
	"gptignore/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	// Commands may replace this with a development logger under --debug. Setting it
	// up first keeps flag parsing errors visible, since cobra does not print them.
	if err := logging.Setup(false, "gptignore", version.Get().Version); err != nil {
		log.Printf("Failed to initialize logger: %v", err)
	}

	err := cmd.Execute()
	logger := logging.Logger
	if err != nil {
		logger.Fatal("gptignore execution failed", zap.Error(err))
	}

	// Syncing stderr fails with EINVAL on pipes and character devices other than terminals.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
