package workflows

import (
	"context"

	"github.com/PolarWolf314/quick-gist/internal/configs"
	"github.com/PolarWolf314/quick-gist/internal/github"
	logger "github.com/PolarWolf314/quick-gist/internal/logging"
)

// GistAPI is the subset of the GitHub API the workflows depend on.
type GistAPI interface {
	ValidateUsername(ctx context.Context, name string) error
	ValidateTokenScope(ctx context.Context, name, token string) error
	CreateGist(ctx context.Context, token string, gist github.Gist) (*github.CreatedGist, error)
}

// PassphraseFunc reads a passphrase without echo.
type PassphraseFunc func(prompt string) ([]byte, error)

func apiOrDefault(api GistAPI, log logger.Logger) GistAPI {
	if api != nil {
		return api
	}
	return github.NewClient(github.DefaultConfig(configs.QuickGistSettings.APIURL, log))
}
