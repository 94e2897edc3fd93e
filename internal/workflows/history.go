package workflows

import (
	"context"

	"github.com/PolarWolf314/quick-gist/internal/configs"
	"github.com/PolarWolf314/quick-gist/internal/history"
)

// HistoryOptions configures the history workflow.
type HistoryOptions struct {
	// Limit is the maximum number of entries; zero returns all.
	Limit int

	// All includes account changes as well as created gists.
	All bool
}

// History returns recorded entries, newest first.
func History(ctx context.Context, opts HistoryOptions) ([]history.Entry, error) {
	entries, err := history.ReadEntries(configs.QuickGistSettings.HistoryPath)
	if err != nil {
		return nil, err
	}

	if !opts.All {
		entries = history.Filter(entries, history.OpNewGist)
	}
	return history.Last(entries, opts.Limit), nil
}
