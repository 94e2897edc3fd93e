package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	qerrors "github.com/PolarWolf314/quick-gist/internal/errors"
)

const (
	PublishPrivate = "private"
	PublishPublic  = "public"

	// AuthFromEnv as a user's auth value means the token is read from TokenEnvVar.
	AuthFromEnv = "env"

	// TokenEnvVar holds the API token for users configured with AuthFromEnv.
	TokenEnvVar = "GITHUB_TOKEN"
)

// UserConfig mirrors quick-gist-config.yaml:
//
//	default:
//	  publish: private
//	user:
//	  - octocat:
//	      auth: <token>
//	      encrypted: true
type UserConfig struct {
	Default Defaults               `yaml:"default"`
	Users   []map[string]UserEntry `yaml:"user"`
}

type Defaults struct {
	Publish string `yaml:"publish"`
}

// UserEntry holds one account's credential. Auth is a plaintext token,
// AuthFromEnv, or a protected token when Encrypted is set.
type UserEntry struct {
	Auth      string `yaml:"auth"`
	Encrypted bool   `yaml:"encrypted"`
}

// FromEnv reports whether the token is taken from the environment.
func (e UserEntry) FromEnv() bool {
	return !e.Encrypted && e.Auth == AuthFromEnv
}

// NewUserConfig returns the configuration written on first use.
func NewUserConfig() *UserConfig {
	return &UserConfig{Default: Defaults{Publish: PublishPrivate}}
}

// LoadUserConfig loads and validates the configuration at path.
//
// Returns ErrConfigNotFound if the file does not exist.
// Returns ErrInvalidConfig if it cannot be parsed or has an unknown shape.
func LoadUserConfig(path string) (*UserConfig, error) {
	config := NewUserConfig()

	if err := LoadYAML(path, config); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, qerrors.ErrConfigNotFound)
		}
		return nil, fmt.Errorf("%s: %v: %w", path, err, qerrors.ErrInvalidConfig)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, qerrors.ErrInvalidConfig)
	}

	return config, nil
}

// SaveUserConfig writes the configuration to path with owner-only permissions.
func SaveUserConfig(path string, config *UserConfig) error {
	if err := SaveYAML(path, config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}
	return nil
}

// EnsureUserConfig loads the configuration at path, creating a default one if missing.
// The returned bool reports whether the file was created.
func EnsureUserConfig(path string) (*UserConfig, bool, error) {
	config, err := LoadUserConfig(path)
	if err == nil {
		return config, false, nil
	}
	if !errors.Is(err, qerrors.ErrConfigNotFound) {
		return nil, false, err
	}

	config = NewUserConfig()
	if err := SaveUserConfig(path, config); err != nil {
		return nil, false, err
	}
	return config, true, nil
}

// ConfigExists reports whether a configuration file is present at path.
func ConfigExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (c *UserConfig) validate() error {
	switch c.Default.Publish {
	case "":
		c.Default.Publish = PublishPrivate
	case PublishPrivate, PublishPublic:
	default:
		return fmt.Errorf("default.publish must be %q or %q, got %q", PublishPrivate, PublishPublic, c.Default.Publish)
	}

	seen := make(map[string]bool)
	for i, user := range c.Users {
		if len(user) != 1 {
			return fmt.Errorf("user entry %d must name exactly one user", i+1)
		}
		for name := range user {
			if seen[name] {
				return fmt.Errorf("user %q is listed twice", name)
			}
			seen[name] = true
		}
	}
	return nil
}

// Usernames returns the configured usernames in file order.
func (c *UserConfig) Usernames() []string {
	names := make([]string, 0, len(c.Users))
	for _, user := range c.Users {
		for name := range user {
			names = append(names, name)
		}
	}
	return names
}

// SortedUsernames returns the configured usernames alphabetically.
func (c *UserConfig) SortedUsernames() []string {
	names := c.Usernames()
	sort.Strings(names)
	return names
}

// FindUser looks up a user entry by username.
func (c *UserConfig) FindUser(name string) (UserEntry, bool) {
	for _, user := range c.Users {
		if entry, ok := user[name]; ok {
			return entry, true
		}
	}
	return UserEntry{}, false
}

// AddUser appends a user. Returns ErrUserExists if the name is taken.
func (c *UserConfig) AddUser(name string, entry UserEntry) error {
	if _, ok := c.FindUser(name); ok {
		return fmt.Errorf("%q: %w", name, qerrors.ErrUserExists)
	}
	c.Users = append(c.Users, map[string]UserEntry{name: entry})
	return nil
}

// RemoveUser deletes a user. Returns ErrUserNotFound if the name is unknown.
func (c *UserConfig) RemoveUser(name string) error {
	for i, user := range c.Users {
		if _, ok := user[name]; ok {
			c.Users = append(c.Users[:i], c.Users[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%q: %w", name, qerrors.ErrUserNotFound)
}

// ResolveUser picks the account a gist is published under. With a single
// configured user the name may be empty; with several it is required.
//
// Returns ErrNoUsers, ErrAmbiguousUser or ErrUserNotFound.
func (c *UserConfig) ResolveUser(name string) (string, UserEntry, error) {
	names := c.Usernames()

	if len(names) == 0 {
		return "", UserEntry{}, qerrors.ErrNoUsers
	}

	if name == "" {
		if len(names) > 1 {
			return "", UserEntry{}, qerrors.ErrAmbiguousUser
		}
		name = names[0]
	}

	entry, ok := c.FindUser(name)
	if !ok {
		return "", UserEntry{}, fmt.Errorf("%q: %w", name, qerrors.ErrUserNotFound)
	}
	return name, entry, nil
}

// PublishPublic reports whether gists are public unless told otherwise.
func (c *UserConfig) PublishPublic() bool {
	return c.Default.Publish == PublishPublic
}
