package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/quick-gist/internal/credentials"
	"github.com/PolarWolf314/quick-gist/internal/ui"
	"github.com/PolarWolf314/quick-gist/internal/utils"
	"github.com/PolarWolf314/quick-gist/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	addUserIterations   uint32
	addUserNoValidation bool
)

func init() {
	addUserCmd.Flags().Uint32Var(&addUserIterations, "iterations", credentials.DefaultIterations, "key derivation rounds for password protected tokens")
	addUserCmd.Flags().BoolVar(&addUserNoValidation, "no-validate", false, "skip checking the username and token with GitHub")
}

// resetAddUserCommandState resets the add-user command's global state for testing.
func resetAddUserCommandState() {
	addUserIterations = credentials.DefaultIterations
	addUserNoValidation = false
}

const tokenSourcePrompt = `
The following options for getting your API token are available:
- from environment variable [1]
- from configuration file [2]
Selection: `

var addUserCmd = &cobra.Command{
	Use:   "add-user",
	Short: "Add a new GitHub user to the configuration",
	Long: `Adds a GitHub account to the quick-gist configuration.

You are asked for the GitHub username and where the API token comes from:
the GITHUB_TOKEN environment variable, or the configuration file. A token
stored in the configuration file can be protected with a password; you will
be asked for it whenever a gist is created.

The token must have the gist scope.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting add-user command")
		ctx := context.Background()
		prompter := utils.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())

		username, err := prompter.Prompt("GitHub username: ", utils.IsValidGitHubUsername)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read username: %v", err)
		}

		if _, err := workflows.AddUserPreCheck(ctx, workflows.AddUserPreCheckOptions{
			Username:       username,
			SkipValidation: addUserNoValidation,
			Logger:         Logger,
		}); err != nil {
			fmt.Println(formatError(err))
			return reported(err)
		}

		opts := workflows.AddUserOptions{
			Username:       username,
			Iterations:     addUserIterations,
			SkipValidation: addUserNoValidation,
			Logger:         Logger,
		}

		selection, err := prompter.Prompt(tokenSourcePrompt, func(s string) bool { return s == "1" || s == "2" })
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read token source: %v", err)
		}

		if selection == "1" {
			opts.TokenFromEnv = true
		} else {
			encrypt, err := prompter.Confirm("Do you want to save your API token password encrypted? (Y/n) ", true)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read answer: %v", err)
			}

			opts.Token, err = prompter.Prompt("Your GitHub API token: ", func(s string) bool { return s != "" })
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read token: %v", err)
			}

			if encrypt {
				opts.Passphrase, err = utils.ReadNewPassphrase(readPassphrase)
				if err != nil {
					fmt.Println(ui.Failure("Failed to read password: "+err.Error(), ""))
					return reported(err)
				}
			}
		}

		spinner, cleanup := startSpinner("Adding user...", verbose)
		defer cleanup()

		result, err := workflows.AddUser(ctx, opts)
		if err != nil {
			spinner.FinalMSG = formatError(err)
			return reported(err)
		}

		source := "stored in plaintext"
		switch {
		case result.FromEnv:
			source = "read from " + ui.Code.Sprint("GITHUB_TOKEN")
		case result.Encrypted:
			source = "password protected"
		}
		spinner.FinalMSG = ui.Done("Added user "+ui.Highlight.Sprint(result.Username)+" (token "+source+")") + "\n" +
			ui.Info.Sprint("→") + " Configuration: " + ui.Path.Sprint(utils.TildePath(result.ConfigPath))
		return nil
	},
}
