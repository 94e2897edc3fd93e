package utils

import (
	"regexp"
	"strings"

	"github.com/PolarWolf314/quick-gist/internal/ui"
)

// githubUsernameRegex follows GitHub's rules: alphanumerics and single
// hyphens, not starting or ending with a hyphen.
var githubUsernameRegex = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9]|-[a-zA-Z0-9])*$`)

// FormatPaths formats a slice of paths into a readable string.
func FormatPaths(paths []string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, path := range paths {
		b.WriteString("    - ")
		b.WriteString(ui.Path.Sprint(path))
		b.WriteString("\n")
	}
	return b.String()
}

// IsValidGitHubUsername checks the shape of a GitHub login. It does not ask GitHub.
func IsValidGitHubUsername(name string) bool {
	if name == "" || len(name) > 39 {
		return false
	}
	return githubUsernameRegex.MatchString(name)
}

// MaskSecret keeps the first four characters of a secret for display.
func MaskSecret(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return secret[:4] + strings.Repeat("*", 8)
}
