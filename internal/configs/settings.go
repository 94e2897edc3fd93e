package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigFileName is the user configuration file inside the config directory.
	ConfigFileName = "quick-gist-config.yaml"

	// HistoryFileName is the gist history log inside the config directory.
	HistoryFileName = "history.jsonl"

	// DefaultAPIURL is the public GitHub REST endpoint.
	DefaultAPIURL = "https://api.github.com"

	// ConfigDirEnv overrides the configuration directory.
	ConfigDirEnv = "QUICK_GIST_CONFIG_DIR"

	// APIURLEnv overrides the GitHub API endpoint, e.g. for GitHub Enterprise.
	APIURLEnv = "QUICK_GIST_API_URL"
)

type Settings struct {
	ConfigDir   string
	ConfigPath  string
	HistoryPath string
	APIURL      string
}

// QuickGistSettings is resolved once at start-up. Tests replace it.
var QuickGistSettings *Settings

func init() {
	settings, err := NewSettings()
	if err != nil {
		// Leave paths relative to the working directory; commands that need
		// the config file report the problem when they try to use it.
		settings = settingsFor(filepath.Join(".config", "quick-gist"))
	}
	QuickGistSettings = settings
}

// NewSettings resolves paths from the environment.
func NewSettings() (*Settings, error) {
	dir := os.Getenv(ConfigDirEnv)
	if dir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("error getting config directory: %w", err)
		}
		dir = filepath.Join(configDir, "quick-gist")
	}

	return settingsFor(dir), nil
}

// SettingsForDir returns settings rooted at dir, using the environment only for the API URL.
func SettingsForDir(dir string) *Settings {
	return settingsFor(dir)
}

func settingsFor(dir string) *Settings {
	apiURL := os.Getenv(APIURLEnv)
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	return &Settings{
		ConfigDir:   dir,
		ConfigPath:  filepath.Join(dir, ConfigFileName),
		HistoryPath: filepath.Join(dir, HistoryFileName),
		APIURL:      apiURL,
	}
}
