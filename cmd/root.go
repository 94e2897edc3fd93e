package cmd

import (
	"errors"
	"fmt"

	logger "github.com/PolarWolf314/quick-gist/internal/logging"
	"github.com/PolarWolf314/quick-gist/internal/utils"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

// ErrReported marks a failure whose message has already been printed.
// main exits non-zero without printing it again.
var ErrReported = errors.New("error already reported")

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// readPassphrase reads hidden input. Tests replace it.
	readPassphrase = utils.ReadPassphrase

	RootCmd = &cobra.Command{
		Use:   "quick-gist",
		Short: "Quickly create GitHub gists from local files",
		Long: `quick-gist publishes local files, or selected line ranges of them, as a
GitHub gist under one of your configured accounts.

API tokens can be stored in the configuration file protected by a password,
stored in plaintext, or read from the GITHUB_TOKEN environment variable.

Examples:
  quick-gist add-user
  quick-gist new -f main.go
  quick-gist new -f "main.go[1-10, 20]" -f README.md -d "demo" --public`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing quick-gist with verbose=%t, debug=%t", verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), figure.NewFigure("quick-gist", "small", true).String())
			fmt.Fprintln(cmd.OutOrStdout(), "Run 'quick-gist --help' to see available commands.")
		},
	}
)

func init() {
	// -d belongs to new's --description, so --debug has no shorthand.
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	RootCmd.AddCommand(addUserCmd)
	RootCmd.AddCommand(removeUserCmd)
	RootCmd.AddCommand(listUserCmd)
	RootCmd.AddCommand(newCmd)
	RootCmd.AddCommand(historyCmd)
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// reported wraps err so main does not print it a second time.
func reported(err error) error {
	return fmt.Errorf("%w: %w", ErrReported, err)
}
