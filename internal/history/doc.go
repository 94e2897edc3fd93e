// Package history records what quick-gist did on this machine.
//
// Every created gist and every account change is appended to a JSON Lines
// file next to the user configuration:
//
//	~/.config/quick-gist/history.jsonl
//
// Each entry carries a random ID, a UTC timestamp with microseconds, the
// operation name and the GitHub username, plus operation-specific fields
// such as the gist URL and the included files.
//
// # Usage
//
//	history.Log(settings.HistoryPath, history.Entry{
//	    Operation: history.OpNewGist,
//	    User:      "octocat",
//	    URL:       url,
//	})
//
// # Failure Handling
//
// Logging is best-effort. If the file cannot be written, the command still
// succeeds. Tokens, protected or not, are never written to the history.
package history
