package workflows

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/quick-gist/internal/configs"
	"github.com/PolarWolf314/quick-gist/internal/credentials"
	"github.com/PolarWolf314/quick-gist/internal/github"
	logger "github.com/PolarWolf314/quick-gist/internal/logging"
)

// fakeAPI records calls instead of talking to GitHub.
type fakeAPI struct {
	usernameErr error
	scopeErr    error
	createErr   error

	validatedUsers []string
	scopeTokens    []string
	createdToken   string
	created        *github.Gist
}

func (f *fakeAPI) ValidateUsername(ctx context.Context, name string) error {
	f.validatedUsers = append(f.validatedUsers, name)
	return f.usernameErr
}

func (f *fakeAPI) ValidateTokenScope(ctx context.Context, name, token string) error {
	f.scopeTokens = append(f.scopeTokens, token)
	return f.scopeErr
}

func (f *fakeAPI) CreateGist(ctx context.Context, token string, gist github.Gist) (*github.CreatedGist, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.createdToken = token
	f.created = &gist
	return &github.CreatedGist{ID: "abc123", HTMLURL: "https://gist.github.com/octocat/abc123"}, nil
}

// useTempSettings points the global settings at a temporary directory for one test.
func useTempSettings(t *testing.T) *configs.Settings {
	t.Helper()
	original := configs.QuickGistSettings
	settings := configs.SettingsForDir(t.TempDir())
	configs.QuickGistSettings = settings
	t.Cleanup(func() { configs.QuickGistSettings = original })
	return settings
}

func quietLogger() logger.Logger {
	return logger.Logger{Out: io.Discard, Err: io.Discard}
}

// protectFast protects a token with a low work factor so tests stay quick.
func protectFast(t *testing.T, plain, passphrase string) string {
	t.Helper()
	token, err := credentials.Protector{Iterations: 1000}.Protect([]byte(plain), []byte(passphrase))
	if err != nil {
		t.Fatalf("Protect() error = %v", err)
	}
	return token
}

// scriptedPrompt answers passphrase prompts from a fixed list.
func scriptedPrompt(answers ...string) (PassphraseFunc, *int) {
	calls := 0
	return func(prompt string) ([]byte, error) {
		if calls >= len(answers) {
			calls++
			return nil, io.EOF
		}
		answer := answers[calls]
		calls++
		return []byte(answer), nil
	}, &calls
}

func writeConfig(t *testing.T, settings *configs.Settings, config *configs.UserConfig) {
	t.Helper()
	if err := configs.SaveUserConfig(settings.ConfigPath, config); err != nil {
		t.Fatalf("SaveUserConfig() error = %v", err)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func assertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected error wrapping %v, got %v", target, err)
	}
}
