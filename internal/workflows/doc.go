// Package workflows provides high-level orchestration for quick-gist commands.
//
// Workflows coordinate configs, credentials, snippets, github and history to
// implement complete user-facing features. Each workflow handles a single
// command's business logic, independent of CLI concerns like flag parsing,
// spinners and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Prompts the user (the workflows take prompt functions, never a terminal)
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Loading and saving the user configuration
//   - Validating accounts and tokens against GitHub
//   - Protecting and recovering API tokens
//   - Recording history entries
//
// # Available Workflows
//
//   - AddUserPreCheck, AddUser: register a GitHub account and its token
//   - RemoveUser, ListUsers: manage configured accounts
//   - NewGist: publish file excerpts as a gist
//   - UnlockToken: the passphrase retry loop for protected tokens
//   - History: read back what was published
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package. Use
// errors.Is() to check for specific conditions:
//
//	result, err := workflows.NewGist(ctx, opts)
//	if errors.Is(err, qerrors.ErrMalformedToken) {
//	    // Ask the user to run add-user again
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// It is passed to every GitHub request.
package workflows
