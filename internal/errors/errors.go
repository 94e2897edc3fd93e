package errors

import "errors"

// Credential errors are returned by the token protection layer.
var (
	// ErrWrongPassword indicates a protected token could not be opened with the
	// given passphrase. Corrupted ciphertext is reported the same way.
	ErrWrongPassword = errors.New("invalid password")

	// ErrMalformedToken indicates a stored token is not a validly framed protected token.
	ErrMalformedToken = errors.New("malformed protected token")

	// ErrTooManyAttempts indicates the passphrase prompt gave up after the configured number of attempts.
	ErrTooManyAttempts = errors.New("too many password attempts")
)

// Configuration errors indicate issues with the user configuration file.
var (
	// ErrConfigNotFound indicates no user configuration exists yet.
	ErrConfigNotFound = errors.New("user configuration not found")

	// ErrInvalidConfig indicates the user configuration is malformed.
	ErrInvalidConfig = errors.New("user configuration is invalid")

	// ErrUserExists indicates the username is already present in the configuration.
	ErrUserExists = errors.New("user already exists in configuration")

	// ErrUserNotFound indicates the username is not present in the configuration.
	ErrUserNotFound = errors.New("user not found in configuration")

	// ErrNoUsers indicates no GitHub user has been configured.
	ErrNoUsers = errors.New("no github user is configured")

	// ErrAmbiguousUser indicates several users are configured and none was selected.
	ErrAmbiguousUser = errors.New("more than one user is configured")

	// ErrTokenUnavailable indicates the API token could not be obtained from its source.
	ErrTokenUnavailable = errors.New("api token unavailable")
)

// GitHub errors indicate the remote API refused or misunderstood a request.
var (
	// ErrGitHubUserNotFound indicates the username does not exist on GitHub.
	ErrGitHubUserNotFound = errors.New("username does not exist on github")

	// ErrBadCredentials indicates GitHub rejected the API token.
	ErrBadCredentials = errors.New("bad credentials")

	// ErrMissingGistScope indicates the API token cannot manage gists.
	ErrMissingGistScope = errors.New("token does not have the gist scope")

	// ErrUnexpectedResponse indicates the API answered with something we cannot use.
	ErrUnexpectedResponse = errors.New("unexpected github api response")
)

// File errors indicate issues assembling gist content from local files.
var (
	// ErrNothingToPublish indicates every selected file or range was skipped.
	ErrNothingToPublish = errors.New("all files were skipped, nothing to create")

	// ErrFileUnreadable indicates a file could not be opened or read.
	ErrFileUnreadable = errors.New("failed to open/read file")

	// ErrInvalidDescriptor indicates a file argument could not be parsed.
	ErrInvalidDescriptor = errors.New("invalid file descriptor")

	// ErrDuplicateFile indicates two arguments map to the same gist file name.
	ErrDuplicateFile = errors.New("duplicate gist file name")
)
