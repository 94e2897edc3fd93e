package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/PolarWolf314/quick-gist/internal/configs"
	"github.com/PolarWolf314/quick-gist/internal/github"
	"github.com/fatih/color"
	"github.com/spf13/pflag"
)

// setupTestEnvironment points the settings at a temporary directory and a
// fake GitHub API, and restores global command state afterwards.
func setupTestEnvironment(t *testing.T, api *fakeGitHub) *configs.Settings {
	t.Helper()

	color.NoColor = true
	originalSettings := configs.QuickGistSettings
	originalRead := readPassphrase

	settings := configs.SettingsForDir(t.TempDir())
	if api != nil {
		server := httptest.NewServer(api)
		t.Cleanup(server.Close)
		settings.APIURL = server.URL
	} else {
		settings.APIURL = "http://127.0.0.1:0"
	}
	configs.QuickGistSettings = settings

	resetGlobalState()
	t.Cleanup(func() {
		configs.QuickGistSettings = originalSettings
		readPassphrase = originalRead
		resetGlobalState()
	})

	return settings
}

// resetGlobalState resets flag variables and their Changed markers between runs.
func resetGlobalState() {
	verbose = false
	debug = false
	resetAddUserCommandState()
	resetNewCommandState()
	resetHistoryCommandState()

	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}
	reset(RootCmd.PersistentFlags())
	for _, c := range RootCmd.Commands() {
		reset(c.Flags())
	}
}

// passphrases makes readPassphrase answer from a fixed list.
func passphrases(answers ...string) *int {
	calls := 0
	readPassphrase = func(prompt string) ([]byte, error) {
		defer func() { calls++ }()
		if calls >= len(answers) {
			return nil, io.EOF
		}
		return []byte(answers[calls]), nil
	}
	return &calls
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// runCLI executes the root command with args, feeding stdin to prompts.
func runCLI(stdin string, args ...string) (string, error) {
	return captureOutput(func() error {
		RootCmd.SetIn(strings.NewReader(stdin))
		RootCmd.SetArgs(args)
		defer RootCmd.SetIn(nil)
		return RootCmd.Execute()
	})
}

// fakeGitHub serves the endpoints the client uses.
type fakeGitHub struct {
	mu sync.Mutex

	// users maps logins to whether they exist.
	users map[string]bool
	// tokens maps accepted tokens to their X-OAuth-Scopes header.
	tokens map[string]string

	gists []github.Gist
}

func newFakeGitHub() *fakeGitHub {
	return &fakeGitHub{
		users:  map[string]bool{"octocat": true},
		tokens: map[string]string{"ghp_good": "gist, repo"},
	}
}

func (f *fakeGitHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "token ")
	if token != "" {
		scopes, ok := f.tokens[token]
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"message":"Bad credentials"}`)
			return
		}
		w.Header().Set("X-OAuth-Scopes", scopes)
	}

	switch {
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/users/"):
		login := strings.TrimPrefix(r.URL.Path, "/users/")
		if !f.users[login] {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message":"Not Found"}`)
			return
		}
		fmt.Fprintf(w, `{"login":%q}`, login)

	case r.Method == http.MethodPost && r.URL.Path == "/gists":
		var gist github.Gist
		if err := json.NewDecoder(r.Body).Decode(&gist); err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		f.gists = append(f.gists, gist)
		id := fmt.Sprintf("gist%d", len(f.gists))
		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `{"id":%q,"html_url":"https://gist.github.com/octocat/%s"}`, id, id)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeGitHub) created() []github.Gist {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]github.Gist(nil), f.gists...)
}

func writeTestConfig(t *testing.T, settings *configs.Settings, users ...string) *configs.UserConfig {
	t.Helper()
	config := configs.NewUserConfig()
	for _, u := range users {
		if err := config.AddUser(u, configs.UserEntry{Auth: "ghp_good"}); err != nil {
			t.Fatalf("AddUser() error = %v", err)
		}
	}
	if err := configs.SaveUserConfig(settings.ConfigPath, config); err != nil {
		t.Fatalf("SaveUserConfig() error = %v", err)
	}
	return config
}
