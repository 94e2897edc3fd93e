package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PolarWolf314/quick-gist/internal/history"
	"github.com/PolarWolf314/quick-gist/internal/ui"
	"github.com/PolarWolf314/quick-gist/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyAll   bool
	historyJSON  bool
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of entries to show (0 shows all)")
	historyCmd.Flags().BoolVar(&historyAll, "all", false, "include user changes as well as created gists")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON array")
}

// resetHistoryCommandState resets the history command's global state for testing.
func resetHistoryCommandState() {
	historyLimit = 10
	historyAll = false
	historyJSON = false
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently created gists",
	Long: `Shows the gists created with quick-gist, most recent first.

Examples:
  quick-gist history             # Last 10 gists
  quick-gist history -n 0        # Every gist
  quick-gist history --all       # Include add-user and remove-user
  quick-gist history --json      # JSON output`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting history command")

		entries, err := workflows.History(context.Background(), workflows.HistoryOptions{
			Limit: historyLimit,
			All:   historyAll,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read history: %w", err)
		}

		if historyJSON {
			return outputHistoryJSON(entries)
		}

		if len(entries) == 0 {
			fmt.Println("No history entries found.")
			return nil
		}

		for _, e := range entries {
			fmt.Println(formatHistoryEntry(e))
		}
		return nil
	},
}

func outputHistoryJSON(entries []history.Entry) error {
	if entries == nil {
		entries = []history.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries to JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func formatHistoryEntry(e history.Entry) string {
	when := e.Timestamp
	if t := e.Time(); !t.IsZero() {
		when = t.Local().Format("2006-01-02 15:04:05")
	}

	switch e.Operation {
	case history.OpNewGist:
		visibility := "secret"
		if e.Public {
			visibility = "public"
		}
		return fmt.Sprintf("%-19s  %-20s  %-6s  %s %s", when, e.User, visibility, ui.URL.Sprint(e.URL), ui.Muted.Sprint(strings.Join(e.Files, ", ")))
	default:
		return fmt.Sprintf("%-19s  %-20s  %s", when, e.User, e.Operation)
	}
}
