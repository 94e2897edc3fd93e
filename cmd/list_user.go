package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/quick-gist/internal/configs"
	"github.com/PolarWolf314/quick-gist/internal/ui"
	"github.com/PolarWolf314/quick-gist/internal/workflows"
	"github.com/spf13/cobra"
)

var listUserCmd = &cobra.Command{
	Use:   "list-user",
	Short: "List all GitHub users from the configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list-user command")

		result, err := workflows.ListUsers(context.Background())
		if err != nil {
			fmt.Println(formatError(err))
			return reported(err)
		}

		if len(result.Users) == 0 {
			fmt.Println(ui.Info.Sprint("ℹ") + " No users configured. Run " + ui.Code.Sprint("quick-gist add-user") + " to add one.")
			return nil
		}

		publish := configs.PublishPrivate
		if result.PublishPublic {
			publish = configs.PublishPublic
		}
		fmt.Printf("Configured users %s:\n", ui.Muted.Sprint("default publish: "+publish))
		for _, u := range result.Users {
			fmt.Printf("  - %-39s %s\n", u.Name, ui.Muted.Sprint(u.Source))
		}
		return nil
	},
}
