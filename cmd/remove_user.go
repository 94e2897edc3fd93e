package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/quick-gist/internal/ui"
	"github.com/PolarWolf314/quick-gist/internal/workflows"
	"github.com/spf13/cobra"
)

var removeUserCmd = &cobra.Command{
	Use:   "remove-user <username>",
	Short: "Remove a GitHub user from the configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting remove-user command")
		name := args[0]

		if err := workflows.RemoveUser(context.Background(), name); err != nil {
			fmt.Println(formatError(err))
			return reported(err)
		}

		fmt.Println(ui.Done("Removed user " + ui.Highlight.Sprint(name) + " from configuration"))
		return nil
	},
}
