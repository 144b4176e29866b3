package main

import (
	"context"
	goerrors "errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/readmekit/projectinfo/cmd"
	"github.com/readmekit/projectinfo/constants"
	"github.com/readmekit/projectinfo/entity"
	"github.com/readmekit/projectinfo/ui"
	"github.com/spf13/cobra"
)

// errCrashed is returned after a recovered panic; the trace is already printed.
var errCrashed = goerrors.New("crashed")

var rootCmd = &cobra.Command{
	Use:           "projectinfo",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       constants.Version,
	Short:         "Summarize a repository for README generation",
	Long: "Collects git metadata, declared dependencies and the directory layout of a project\n" +
		"and writes them to " + constants.OutputFile + ".",
	Args: cobra.NoArgs,
}

/* contextualize converts a HandlerFunction to a cobra function
 */
func contextualize(fn entity.HandlerFunction, panicFn entity.PanicFunction) entity.CobraFunction {
	return func(cmd *cobra.Command, args []string) (err error) {
		ctx := context.Background()
		defer func() {
			if r := recover(); r != nil {
				panicFn(ctx, r, string(debug.Stack()), cmd.Name(), args)
				err = errCrashed
			}
		}()

		req := &entity.CommandRequest{
			Cmd:  cmd,
			Args: args,
		}
		return fn(ctx, req)
	}
}

func init() {
	handler := cmd.New()

	rootCmd.RunE = contextualize(handler.Generate, handler.Panic)
	cmd.RegisterReportFlags(rootCmd.Flags())

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Get version of projectinfo",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.Version, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate completion script",
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.ExactValidArgs(1),
		RunE:      contextualize(handler.Completion, handler.Panic),
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if goerrors.Is(err, errCrashed) {
			os.Exit(1)
		}
		if strings.Contains(err.Error(), "unknown command") {
			suggStr := "\nS"

			suggestions := rootCmd.SuggestionsFor(os.Args[1])
			if len(suggestions) > 0 {
				suggStr = fmt.Sprintf(" Did you mean \"%s\"?\nIf not, s", suggestions[0])
			}

			fmt.Println(fmt.Sprintf("Unknown command \"%s\" for \"%s\".%s"+
				"ee \"projectinfo --help\" for available commands.",
				os.Args[1], rootCmd.CommandPath(), suggStr))
		} else {
			fmt.Fprintln(os.Stderr, ui.RedText("Error:"), err)
		}
		os.Exit(1)
	}
}
