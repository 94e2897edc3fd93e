package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	qerrors "github.com/PolarWolf314/quick-gist/internal/errors"
	logger "github.com/PolarWolf314/quick-gist/internal/logging"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	userAgent  = "quick-gist"
	apiVersion = "2022-11-28"

	// scopesHeader lists the OAuth scopes of a classic personal access token.
	scopesHeader = "X-OAuth-Scopes"

	// GistScope is the scope a token needs to create gists.
	GistScope = "gist"
)

// Config configures a Client.
type Config struct {
	// BaseURL is the REST endpoint, e.g. https://api.github.com.
	BaseURL string

	// RetryMax is the number of retries on connection errors and 5xx answers.
	RetryMax int

	// RetryWaitMin and RetryWaitMax bound the backoff between retries.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Logger receives request and retry diagnostics.
	Logger logger.Logger
}

// DefaultConfig returns the settings used by the CLI.
func DefaultConfig(baseURL string, log logger.Logger) Config {
	return Config{
		BaseURL:      baseURL,
		RetryMax:     2,
		RetryWaitMin: 500 * time.Millisecond,
		RetryWaitMax: 3 * time.Second,
		Logger:       log,
	}
}

// Client talks to the three GitHub endpoints quick-gist needs.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
}

// NewClient builds a client with retries.
func NewClient(cfg Config) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	rc.RetryWaitMin = cfg.RetryWaitMin
	rc.RetryWaitMax = cfg.RetryWaitMax
	rc.Logger = leveledLogger{cfg.Logger}
	// Hand the last response back after retries so its status can be mapped.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    rc,
	}
}

// Gist is the body of a create-gist request.
type Gist struct {
	Description string          `json:"description"`
	Public      bool            `json:"public"`
	Files       map[string]File `json:"files"`
}

type File struct {
	Content string `json:"content"`
}

// CreatedGist is the part of the create-gist answer we use.
type CreatedGist struct {
	ID      string `json:"id"`
	HTMLURL string `json:"html_url"`
}

type user struct {
	Login string `json:"login"`
}

type apiMessage struct {
	Message string `json:"message"`
}

// ValidateUsername checks that name is an existing GitHub account.
//
// Returns ErrGitHubUserNotFound if it is not.
// Returns ErrUnexpectedResponse if GitHub answers with anything else.
func (c *Client) ValidateUsername(ctx context.Context, name string) error {
	resp, err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(name), "", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var u user
		if err := json.NewDecoder(resp.Body).Decode(&u); err != nil || u.Login == "" {
			return fmt.Errorf("invalid github api response: %w", qerrors.ErrUnexpectedResponse)
		}
		if !strings.EqualFold(u.Login, name) {
			return fmt.Errorf("%q: %w", name, qerrors.ErrGitHubUserNotFound)
		}
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("%q: %w", name, qerrors.ErrGitHubUserNotFound)
	default:
		return unexpected(resp)
	}
}

// ValidateTokenScope checks that token is accepted by GitHub and, for classic
// tokens, that it carries the gist scope. Fine-grained tokens report no
// scopes and are accepted.
//
// Returns ErrBadCredentials if GitHub rejects the token.
// Returns ErrMissingGistScope if the token lacks the gist scope.
func (c *Client) ValidateTokenScope(ctx context.Context, name, token string) error {
	resp, err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(name), token, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		scopes, classic := resp.Header[http.CanonicalHeaderKey(scopesHeader)]
		if classic && !hasScope(scopes, GistScope) {
			return qerrors.ErrMissingGistScope
		}
		return nil
	case http.StatusUnauthorized:
		return qerrors.ErrBadCredentials
	default:
		return unexpected(resp)
	}
}

// CreateGist publishes gist under the account owning token.
//
// Returns ErrBadCredentials if GitHub rejects the token.
// Returns ErrUnexpectedResponse for any other failure.
func (c *Client) CreateGist(ctx context.Context, token string, gist Gist) (*CreatedGist, error) {
	body, err := json.Marshal(gist)
	if err != nil {
		return nil, fmt.Errorf("failed to encode gist: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/gists", token, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		var created CreatedGist
		if err := json.NewDecoder(resp.Body).Decode(&created); err != nil || created.HTMLURL == "" {
			return nil, fmt.Errorf("invalid create gist response: %w", qerrors.ErrUnexpectedResponse)
		}
		return &created, nil
	case http.StatusUnauthorized:
		return nil, qerrors.ErrBadCredentials
	default:
		return nil, unexpected(resp)
	}
}

func (c *Client) do(ctx context.Context, method, path, token string, body []byte) (*http.Response, error) {
	var rawBody interface{}
	if body != nil {
		rawBody = body
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, rawBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "token "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to github api endpoint: %w", err)
	}
	return resp, nil
}

func hasScope(headers []string, scope string) bool {
	for _, h := range headers {
		for _, s := range strings.Split(h, ",") {
			if strings.TrimSpace(s) == scope {
				return true
			}
		}
	}
	return false
}

// unexpected turns a non-success answer into ErrUnexpectedResponse carrying
// the API's message when there is one.
func unexpected(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var msg apiMessage
	if err := json.Unmarshal(bytes.TrimSpace(data), &msg); err == nil && msg.Message != "" {
		return fmt.Errorf("%s (%d %s): %w", msg.Message, resp.StatusCode, http.StatusText(resp.StatusCode), qerrors.ErrUnexpectedResponse)
	}
	return fmt.Errorf("status %d %s: %w", resp.StatusCode, http.StatusText(resp.StatusCode), qerrors.ErrUnexpectedResponse)
}
