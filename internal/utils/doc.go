// Package utils provides shared helpers for quick-gist.
//
// # Terminal Utilities
//
//   - ReadPassphrase: hidden input through golang.org/x/term
//   - ReadNewPassphrase: asks twice and compares
//   - IsTerminal: checks whether stdin is a terminal
//
// # Prompt Utilities
//
// LinePrompter reads visible answers (usernames, yes/no questions) and asks
// again until the answer validates.
//
// # Filesystem Utilities
//
//   - AtomicWriteFile: write-then-rename for the configuration file
//   - TildePath: shortens paths under $HOME for display
//
// # String Utilities
//
//   - FormatPaths: bullet list of paths
//   - IsValidGitHubUsername: local shape check of a GitHub login
//   - MaskSecret: hides all but a short prefix of a token
package utils
