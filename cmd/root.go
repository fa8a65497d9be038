package cmd

import (
	"fmt"
	"os"
	"strings"

	"gptignore/pkg/console"
	"gptignore/pkg/logging"
	"gptignore/pkg/version"

	"github.com/spf13/cobra"
)

// getwd is replaced in tests.
var getwd = os.Getwd

var debug bool

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "gptignore",
	Short: "gptignore flattens a project into one text file for LLM context",
	Long: `gptignore walks a project directory, drops every path matched by the .gptignore
file in the working directory, and concatenates the remaining files into a single
document under ai/.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	// Flags trailing an unknown command must not turn the report into a failure.
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Setup(debug, "gptignore", version.Get().Version)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		reportUnknownCommand(cmd, args[0])
		return nil
	},
}

// reportUnknownCommand tells the user which commands exist without failing the process.
func reportUnknownCommand(cmd *cobra.Command, name string) {
	out := cmd.OutOrStdout()
	console.Warning(out, fmt.Sprintf("Unknown command: %s", name))

	var names []string
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() {
			names = append(names, c.Name())
		}
	}
	console.Detail(out, "Available commands: "+strings.Join(names, ", "))
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.CompletionOptions.DisableDefaultCmd = true
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable development logging")
}
