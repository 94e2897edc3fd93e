package workflows

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/PolarWolf314/quick-gist/internal/configs"
	qerrors "github.com/PolarWolf314/quick-gist/internal/errors"
	"github.com/PolarWolf314/quick-gist/internal/github"
	"github.com/PolarWolf314/quick-gist/internal/history"
	logger "github.com/PolarWolf314/quick-gist/internal/logging"
	"github.com/PolarWolf314/quick-gist/internal/snippets"
)

// DefaultDescription is used when no description is given.
const DefaultDescription = "gist created via quick-gist"

// NewGistOptions configures the new-gist workflow.
type NewGistOptions struct {
	// Files are file descriptors such as "main.go" or "main.go[1-10, 20]".
	Files []string

	Description string

	// Public publishes the gist publicly regardless of the configured default.
	Public bool

	// SoftFail skips unreadable files instead of aborting.
	SoftFail bool

	// User selects the account; optional when only one is configured.
	User string

	// Prompt reads the passphrase of a protected token.
	Prompt PassphraseFunc

	// MaxAttempts caps passphrase prompts; zero means unlimited.
	MaxAttempts int

	// OnWrongPassword is passed to UnlockToken.
	OnWrongPassword func()

	API    GistAPI
	Logger logger.Logger
}

// NewGistResult contains the outcome of creating a gist.
type NewGistResult struct {
	URL     string
	ID      string
	User    string
	Public  bool
	Files   []snippets.File
	Skipped []string
}

// NewGist assembles the described files and publishes them as one gist.
//
// Files are read before any passphrase is asked for, so a bad descriptor or
// unreadable file fails fast.
//
// Returns ErrInvalidDescriptor, ErrFileUnreadable, ErrDuplicateFile or
// ErrNothingToPublish for file problems.
// Returns ErrNoUsers, ErrAmbiguousUser or ErrUserNotFound if no account can be picked.
// Returns ErrTokenUnavailable if an env account has no GITHUB_TOKEN.
func NewGist(ctx context.Context, opts NewGistOptions) (*NewGistResult, error) {
	log := opts.Logger

	if len(opts.Files) == 0 {
		return nil, fmt.Errorf("no files given: %w", qerrors.ErrNothingToPublish)
	}

	descs, err := snippets.ParseDescriptors(opts.Files)
	if err != nil {
		return nil, err
	}

	assembled, err := snippets.Assemble(descs, snippets.Options{SoftFail: opts.SoftFail, Logger: log})
	if err != nil {
		return nil, err
	}

	config, err := configs.LoadUserConfig(configs.QuickGistSettings.ConfigPath)
	if err != nil {
		return nil, err
	}

	user, entry, err := config.ResolveUser(opts.User)
	if err != nil {
		return nil, err
	}
	log.Debugf("Publishing as %s", user)

	token, err := resolveToken(ctx, entry, opts)
	if err != nil {
		return nil, err
	}

	description := opts.Description
	if strings.TrimSpace(description) == "" {
		description = DefaultDescription
	}
	public := opts.Public || config.PublishPublic()

	gist := github.Gist{
		Description: description,
		Public:      public,
		Files:       make(map[string]github.File, len(assembled.Files)),
	}
	for _, f := range assembled.Files {
		gist.Files[f.Name] = github.File{Content: f.Content}
	}

	created, err := apiOrDefault(opts.API, log).CreateGist(ctx, token, gist)
	if err != nil {
		return nil, err
	}
	log.Infof("Created gist %s", created.ID)

	names := make([]string, 0, len(assembled.Files))
	for _, f := range assembled.Files {
		names = append(names, f.Name)
	}
	history.Log(configs.QuickGistSettings.HistoryPath, history.Entry{
		Operation:   history.OpNewGist,
		User:        user,
		URL:         created.HTMLURL,
		Description: description,
		Public:      public,
		Files:       names,
	})

	return &NewGistResult{
		URL:     created.HTMLURL,
		ID:      created.ID,
		User:    user,
		Public:  public,
		Files:   assembled.Files,
		Skipped: assembled.Skipped,
	}, nil
}

func resolveToken(ctx context.Context, entry configs.UserEntry, opts NewGistOptions) (string, error) {
	switch {
	case entry.Encrypted:
		if opts.Prompt == nil {
			return "", fmt.Errorf("token is password protected but no prompt is available: %w", qerrors.ErrTokenUnavailable)
		}
		return UnlockToken(ctx, entry.Auth, opts.Prompt, UnlockOptions{
			MaxAttempts:     opts.MaxAttempts,
			OnWrongPassword: opts.OnWrongPassword,
			Logger:          opts.Logger,
		})
	case entry.FromEnv():
		token := strings.TrimSpace(os.Getenv(configs.TokenEnvVar))
		if token == "" {
			return "", fmt.Errorf("%s is not set: %w", configs.TokenEnvVar, qerrors.ErrTokenUnavailable)
		}
		return token, nil
	default:
		return entry.Auth, nil
	}
}
