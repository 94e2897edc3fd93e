package cmd

import (
	"errors"

	qerrors "github.com/PolarWolf314/quick-gist/internal/errors"
	"github.com/PolarWolf314/quick-gist/internal/ui"
)

// formatError renders a workflow error for display to the user.
func formatError(err error) string {
	switch {
	case errors.Is(err, qerrors.ErrConfigNotFound):
		return ui.Failure("No configuration found", "Run "+ui.Code.Sprint("quick-gist add-user")+" first")

	case errors.Is(err, qerrors.ErrInvalidConfig):
		return ui.Failure("The configuration file is invalid: "+err.Error(), "Fix or remove the file and run "+ui.Code.Sprint("quick-gist add-user"))

	case errors.Is(err, qerrors.ErrNoUsers):
		return ui.Failure("No GitHub user is configured", "Run "+ui.Code.Sprint("quick-gist add-user")+" first")

	case errors.Is(err, qerrors.ErrAmbiguousUser):
		return ui.Failure("More than one user is configured", "Use "+ui.Flag.Sprint("-u/--user")+" to select one")

	case errors.Is(err, qerrors.ErrUserNotFound):
		return ui.Failure("User not found in configuration: "+err.Error(), "Run "+ui.Code.Sprint("quick-gist list-user")+" to see configured users")

	case errors.Is(err, qerrors.ErrUserExists):
		return ui.Failure("User already exists in configuration: "+err.Error(), "Run "+ui.Code.Sprint("quick-gist remove-user")+" first to replace it")

	case errors.Is(err, qerrors.ErrTokenUnavailable):
		return ui.Failure("Could not obtain the API token: "+err.Error(), "")

	case errors.Is(err, qerrors.ErrTooManyAttempts):
		return ui.Failure("Too many invalid passwords", "")

	case errors.Is(err, qerrors.ErrMalformedToken):
		return ui.Failure("The stored token is corrupted", "Run "+ui.Code.Sprint("quick-gist remove-user")+" and add the user again")

	case errors.Is(err, qerrors.ErrGitHubUserNotFound):
		return ui.Failure("Username does not exist on GitHub", "Check the spelling or use "+ui.Flag.Sprint("--no-validate")+" when offline")

	case errors.Is(err, qerrors.ErrBadCredentials):
		return ui.Failure("GitHub rejected the API token", "Create a new token with the "+ui.Code.Sprint("gist")+" scope")

	case errors.Is(err, qerrors.ErrMissingGistScope):
		return ui.Failure("The API token does not have the gist scope", "Create a new token with the "+ui.Code.Sprint("gist")+" scope")

	case errors.Is(err, qerrors.ErrNothingToPublish):
		return ui.Failure("All files were skipped, nothing to create", "")

	case errors.Is(err, qerrors.ErrFileUnreadable),
		errors.Is(err, qerrors.ErrInvalidDescriptor),
		errors.Is(err, qerrors.ErrDuplicateFile):
		return ui.Failure(err.Error(), "")

	default:
		return ui.Failure(err.Error(), "")
	}
}
