package workflows

import (
	"context"
	"fmt"
	"strings"

	"github.com/PolarWolf314/quick-gist/internal/configs"
	"github.com/PolarWolf314/quick-gist/internal/credentials"
	qerrors "github.com/PolarWolf314/quick-gist/internal/errors"
	"github.com/PolarWolf314/quick-gist/internal/history"
	logger "github.com/PolarWolf314/quick-gist/internal/logging"
)

// AddUserPreCheckOptions configures the checks run before asking for a token.
type AddUserPreCheckOptions struct {
	Username string

	// SkipValidation skips the GitHub lookup.
	SkipValidation bool

	API    GistAPI
	Logger logger.Logger
}

// AddUserPreCheckResult reports what the pre-check did.
type AddUserPreCheckResult struct {
	// ConfigCreated indicates a default configuration file was written.
	ConfigCreated bool
	ConfigPath    string
}

// AddUserPreCheck creates the configuration if needed, rejects usernames that
// are already configured, and checks the account exists on GitHub.
//
// Returns ErrUserExists if the username is already configured.
// Returns ErrGitHubUserNotFound if GitHub does not know the account.
func AddUserPreCheck(ctx context.Context, opts AddUserPreCheckOptions) (*AddUserPreCheckResult, error) {
	log := opts.Logger
	configPath := configs.QuickGistSettings.ConfigPath

	config, created, err := configs.EnsureUserConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("ensuring user config: %w", err)
	}
	if created {
		log.Infof("Created config file at %s", configPath)
	}

	if _, ok := config.FindUser(opts.Username); ok {
		return nil, fmt.Errorf("%q: %w", opts.Username, qerrors.ErrUserExists)
	}

	if !opts.SkipValidation {
		log.Debugf("Checking that %s exists on GitHub", opts.Username)
		if err := apiOrDefault(opts.API, log).ValidateUsername(ctx, opts.Username); err != nil {
			return nil, err
		}
	}

	return &AddUserPreCheckResult{ConfigCreated: created, ConfigPath: configPath}, nil
}

// AddUserOptions configures the add-user workflow.
type AddUserOptions struct {
	Username string

	// TokenFromEnv stores "env" instead of a token; the token is read from
	// GITHUB_TOKEN whenever a gist is created.
	TokenFromEnv bool

	// Token is the API token to store when TokenFromEnv is false.
	Token string

	// Passphrase protects the token when non-nil. It is zeroed after use.
	Passphrase []byte

	// Iterations is the PBKDF2 work factor; zero selects the default.
	Iterations uint32

	// SkipValidation skips the GitHub scope check.
	SkipValidation bool

	API    GistAPI
	Logger logger.Logger
}

// AddUserResult contains the outcome of an add-user operation.
type AddUserResult struct {
	Username   string
	Encrypted  bool
	FromEnv    bool
	ConfigPath string
}

// AddUser validates the token's scopes, protects it when a passphrase is
// given and stores the account in the configuration.
//
// Returns ErrUserExists if the username is already configured.
// Returns ErrBadCredentials or ErrMissingGistScope if GitHub rejects the token.
func AddUser(ctx context.Context, opts AddUserOptions) (*AddUserResult, error) {
	log := opts.Logger
	configPath := configs.QuickGistSettings.ConfigPath

	config, _, err := configs.EnsureUserConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("ensuring user config: %w", err)
	}

	entry := configs.UserEntry{Auth: configs.AuthFromEnv}

	if !opts.TokenFromEnv {
		token := strings.TrimSpace(opts.Token)
		if token == "" {
			return nil, fmt.Errorf("empty token: %w", qerrors.ErrTokenUnavailable)
		}

		if !opts.SkipValidation {
			log.Debugf("Checking token scopes for %s", opts.Username)
			if err := apiOrDefault(opts.API, log).ValidateTokenScope(ctx, opts.Username, token); err != nil {
				return nil, err
			}
		}

		entry.Auth = token
		if opts.Passphrase != nil {
			log.Debugf("Protecting token with %d iterations", effectiveIterations(opts.Iterations))
			protected, err := credentials.ProtectToken([]byte(token), opts.Passphrase, opts.Iterations)
			for i := range opts.Passphrase {
				opts.Passphrase[i] = 0
			}
			if err != nil {
				return nil, fmt.Errorf("protecting token: %w", err)
			}
			entry = configs.UserEntry{Auth: protected, Encrypted: true}
		}
	}

	if err := config.AddUser(opts.Username, entry); err != nil {
		return nil, err
	}

	if err := configs.SaveUserConfig(configPath, config); err != nil {
		return nil, err
	}
	log.Infof("Successfully added user '%s' to configuration", opts.Username)

	history.Log(configs.QuickGistSettings.HistoryPath, history.Entry{
		Operation: history.OpAddUser,
		User:      opts.Username,
		Encrypted: entry.Encrypted,
	})

	return &AddUserResult{
		Username:   opts.Username,
		Encrypted:  entry.Encrypted,
		FromEnv:    entry.FromEnv(),
		ConfigPath: configPath,
	}, nil
}

func effectiveIterations(n uint32) uint32 {
	if n == 0 {
		return credentials.DefaultIterations
	}
	return n
}
