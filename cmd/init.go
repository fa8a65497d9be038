package cmd

import (
	"fmt"
	"path/filepath"

	"gptignore/pkg/console"
	"gptignore/pkg/ignore"
	"gptignore/pkg/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default .gptignore in the working directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		workDir, err := getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		target := filepath.Join(workDir, ignore.DefaultFileName)

		created, err := ignore.WriteDefault(workDir, ignore.DefaultFileName)
		if err != nil {
			logging.ForCommand(cmd.Name()).Error("Failed to write default ignore file", zap.String("path", target), zap.Error(err))
			return err
		}

		out := cmd.OutOrStdout()
		if !created {
			console.Info(out, fmt.Sprintf("%s already exists, leaving it unchanged", target))
			return nil
		}
		console.Success(out, fmt.Sprintf("Created %s", target))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}
