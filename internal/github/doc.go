// Package github is a small client for the GitHub REST endpoints used by
// quick-gist: looking up a user, checking a token's scopes, and creating a
// gist.
//
// Requests go through hashicorp/go-retryablehttp, which retries connection
// errors and 5xx answers with backoff. Every other answer is mapped to a
// sentinel from the errors package so commands can explain what went wrong:
//
//	404 on a user lookup       → ErrGitHubUserNotFound
//	401                        → ErrBadCredentials
//	token without gist scope   → ErrMissingGistScope
//	anything else              → ErrUnexpectedResponse (with GitHub's message)
//
// Tokens are sent with the "token" authorization scheme, which GitHub
// accepts for both classic and fine-grained personal access tokens.
package github
