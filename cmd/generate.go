package cmd

import (
	"fmt"

	"gptignore/pkg/combine"
	"gptignore/pkg/console"
	"gptignore/pkg/ignore"
	"gptignore/pkg/logging"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var generateFlags struct {
	noHeader     bool
	noTerminator bool
	tree         bool
}

var generateCmd = &cobra.Command{
	Use:   "generate [inputPath] [outputFileName]",
	Short: "Combine the project's files into ai/<outputFileName>",
	Long: `Walk inputPath (default: the working directory), skip everything matched by
.gptignore, and write the remaining files into one document under ai/.
The output file name defaults to ` + combine.DefaultOutputFileName + `.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		workDir, err := getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}

		genArgs := combine.Arguments{
			WorkDir:        workDir,
			IgnoreFileName: ignore.DefaultFileName,
			OutputDir:      combine.DefaultOutputDir,
			OutputFileName: combine.DefaultOutputFileName,
			Template:       generateTemplate(),
		}
		if len(args) > 0 {
			genArgs.Root = args[0]
		}
		if len(args) > 1 {
			genArgs.OutputFileName = args[1]
		}

		result, err := combine.RunGenerate(genArgs, logging.ForCommand(cmd.Name()))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		console.Success(out, fmt.Sprintf("AI file generated at %s", result.OutputPath))
		console.Detail(out, fmt.Sprintf("%d files, %s", result.FileCount, humanize.Bytes(uint64(result.Bytes))))
		return nil
	},
}

func generateTemplate() combine.Template {
	tmpl := combine.DefaultTemplate()
	if generateFlags.noTerminator {
		tmpl.Terminator = ""
		tmpl.Header = combine.LayoutHeader(tmpl)
	}
	if generateFlags.noHeader {
		tmpl.Header = ""
	}
	tmpl.Tree = generateFlags.tree
	return tmpl
}

func init() {
	generateCmd.Flags().BoolVar(&generateFlags.noHeader, "no-header", false, "Omit the introductory explanation")
	generateCmd.Flags().BoolVar(&generateFlags.noTerminator, "no-terminator", false, "Omit the --END-- marker")
	generateCmd.Flags().BoolVar(&generateFlags.tree, "tree", false, "Include a directory tree of the included files")
	RootCmd.AddCommand(generateCmd)
}
