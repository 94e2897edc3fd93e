// Package configs manages the quick-gist user configuration.
//
// Configuration lives in a single YAML file under the user's config
// directory (usually ~/.config/quick-gist/quick-gist-config.yaml):
//
//	default:
//	  publish: private   # private | public
//	user:
//	  - octocat:
//	      auth: gAAAAB...   # plaintext token, "env", or a protected token
//	      encrypted: true
//
// The layout is shared with earlier releases of the tool, so existing files
// load unchanged. Each entry of the user list names exactly one account.
//
// # Settings
//
// QuickGistSettings is resolved at start-up:
//   - QUICK_GIST_CONFIG_DIR overrides the configuration directory
//   - QUICK_GIST_API_URL overrides the GitHub API endpoint
//
// The history log (see package history) sits next to the config file.
//
// # Credentials
//
// The package never decrypts anything. A protected token is an opaque
// string here; package credentials produces and consumes it.
package configs
