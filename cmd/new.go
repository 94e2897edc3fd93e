package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/PolarWolf314/quick-gist/internal/snippets"
	"github.com/PolarWolf314/quick-gist/internal/ui"
	"github.com/PolarWolf314/quick-gist/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	newFiles       []string
	newDescription string
	newPublic      bool
	newSoftFail    bool
	newUser        string
	newMaxAttempts int
)

func init() {
	newCmd.Flags().StringArrayVarP(&newFiles, "files", "f", nil, "files to include, optionally with line ranges: file.go[1-10, 20]")
	newCmd.Flags().StringVarP(&newDescription, "description", "d", workflows.DefaultDescription, "description of the gist")
	newCmd.Flags().BoolVarP(&newPublic, "public", "p", false, "make the new gist public")
	newCmd.Flags().BoolVarP(&newSoftFail, "softfail", "s", false, "skip files that cannot be read instead of failing")
	newCmd.Flags().StringVarP(&newUser, "user", "u", "", "GitHub username (required when several users are configured)")
	newCmd.Flags().IntVar(&newMaxAttempts, "max-attempts", 0, "give up after this many wrong passwords (0 asks until correct)")

	_ = newCmd.MarkFlagRequired("files")
}

// resetNewCommandState resets the new command's global state for testing.
func resetNewCommandState() {
	newFiles = nil
	newDescription = workflows.DefaultDescription
	newPublic = false
	newSoftFail = false
	newUser = ""
	newMaxAttempts = 0
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new GitHub gist",
	Long: `Creates a new gist from local files.

Each file may select line ranges in square brackets. A single number selects
one line; ranges are inclusive and may be combined with commas. Ranges that
do not exist in the file are skipped with a warning. Several files may follow
a single -f.

If the selected account's token is password protected, you will be asked for
the password until it is correct (or --max-attempts is reached).

Examples:
  quick-gist new -f main.go
  quick-gist new -f "main.go[1-10, 20]" -f README.md -d "demo"
  quick-gist new -f a.txt missing.txt --softfail -u octocat`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting new command")
		// Arguments after the first -f are files too: -f a.txt b.txt
		files := append(append([]string{}, newFiles...), args...)
		Logger.Debugf("Files: %v", files)

		spinner, cleanup := startSpinner("Creating gist...", verbose)
		defer cleanup()

		pause := &spinnerPause{s: spinner}
		result, err := workflows.NewGist(context.Background(), workflows.NewGistOptions{
			Files:           files,
			Description:     newDescription,
			Public:          newPublic,
			SoftFail:        newSoftFail,
			User:            newUser,
			Prompt:          pause.prompt,
			MaxAttempts:     newMaxAttempts,
			OnWrongPassword: pause.pause,
			Logger:          Logger,
		})
		if err != nil {
			spinner.FinalMSG = formatError(err)
			return reported(err)
		}

		spinner.FinalMSG = formatNewGistResult(result)
		return nil
	},
}

func formatNewGistResult(result *workflows.NewGistResult) string {
	visibility := "secret"
	if result.Public {
		visibility = "public"
	}

	var b strings.Builder
	b.WriteString(ui.Done(fmt.Sprintf("Created new %s GitHub gist as %s", visibility, ui.Highlight.Sprint(result.User))))
	b.WriteString("\n")
	for _, f := range result.Files {
		b.WriteString("    - ")
		b.WriteString(ui.Path.Sprint(f.Path))
		if len(f.Ranges) > 0 {
			b.WriteString(" ")
			b.WriteString(snippets.FormatRanges(f.Ranges))
		}
		b.WriteString("\n")
	}
	for _, skipped := range result.Skipped {
		b.WriteString("    - ")
		b.WriteString(ui.Warning.Sprint(skipped))
		b.WriteString(" ")
		b.WriteString(ui.Muted.Sprint("skipped"))
		b.WriteString("\n")
	}
	b.WriteString(ui.Info.Sprint("→") + " " + ui.URL.Sprint(result.URL))
	return b.String()
}
