package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/quick-gist/internal/configs"
	"github.com/PolarWolf314/quick-gist/internal/history"
)

// Token sources reported by ListUsers.
const (
	SourceEncrypted = "encrypted"
	SourceEnv       = "env"
	SourcePlaintext = "plaintext"
)

// UserSummary describes one configured account without exposing its token.
type UserSummary struct {
	Name   string
	Source string
}

// ListUsersResult contains the configured accounts.
type ListUsersResult struct {
	Users         []UserSummary
	PublishPublic bool
	ConfigPath    string
}

// ListUsers returns the configured accounts in file order.
//
// Returns ErrConfigNotFound if no configuration exists yet.
func ListUsers(ctx context.Context) (*ListUsersResult, error) {
	configPath := configs.QuickGistSettings.ConfigPath

	config, err := configs.LoadUserConfig(configPath)
	if err != nil {
		return nil, err
	}

	result := &ListUsersResult{PublishPublic: config.PublishPublic(), ConfigPath: configPath}
	for _, name := range config.Usernames() {
		entry, _ := config.FindUser(name)
		result.Users = append(result.Users, UserSummary{Name: name, Source: tokenSource(entry)})
	}
	return result, nil
}

// RemoveUser deletes an account from the configuration.
//
// Returns ErrConfigNotFound if no configuration exists yet.
// Returns ErrUserNotFound if the account is not configured.
func RemoveUser(ctx context.Context, name string) error {
	configPath := configs.QuickGistSettings.ConfigPath

	config, err := configs.LoadUserConfig(configPath)
	if err != nil {
		return err
	}

	if err := config.RemoveUser(name); err != nil {
		return err
	}

	if err := configs.SaveUserConfig(configPath, config); err != nil {
		return fmt.Errorf("saving user config: %w", err)
	}

	history.Log(configs.QuickGistSettings.HistoryPath, history.Entry{
		Operation: history.OpRemoveUser,
		User:      name,
	})
	return nil
}

func tokenSource(entry configs.UserEntry) string {
	switch {
	case entry.Encrypted:
		return SourceEncrypted
	case entry.FromEnv():
		return SourceEnv
	default:
		return SourcePlaintext
	}
}
