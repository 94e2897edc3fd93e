// Package errors provides typed error values for quick-gist.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Credential errors: ErrWrongPassword, ErrMalformedToken, ErrTooManyAttempts
//   - Configuration errors: ErrConfigNotFound, ErrUserNotFound, ErrAmbiguousUser, ...
//   - GitHub errors: ErrBadCredentials, ErrMissingGistScope, ...
//   - File errors: ErrNothingToPublish, ErrFileUnreadable, ...
//
// ErrWrongPassword is the only recoverable one: the caller may prompt for the
// passphrase again. ErrMalformedToken means the stored token itself is broken
// and asking again cannot help.
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(raw) < headerSize {
//	    return nil, 0, nil, errors.ErrMalformedToken
//	}
//
// Handle errors in the CLI layer:
//
//	token, err := workflows.UnlockToken(ctx, stored, prompt, opts)
//	if errors.Is(err, qerrors.ErrMalformedToken) {
//	    // Tell the user to re-add the account
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("reading %s: %w", path, errors.ErrFileUnreadable)
package errors
