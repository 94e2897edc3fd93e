package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Operation names recorded in the log.
const (
	OpAddUser    = "add-user"
	OpRemoveUser = "remove-user"
	OpNewGist    = "new"
)

// Entry represents a single history entry.
type Entry struct {
	ID        string `json:"id"`
	Timestamp string `json:"ts"` // RFC3339 with microseconds.
	Operation string `json:"op"`
	User      string `json:"user"`

	// Optional fields depending on operation.
	URL         string   `json:"url,omitempty"`         // For new.
	Description string   `json:"description,omitempty"` // For new.
	Public      bool     `json:"public,omitempty"`      // For new.
	Files       []string `json:"files,omitempty"`       // For new.
	Encrypted   bool     `json:"encrypted,omitempty"`   // For add-user.
}

// Time parses the entry timestamp. The zero time is returned for malformed values.
func (e Entry) Time() time.Time {
	t, err := time.Parse(time.RFC3339Nano, e.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Log appends an entry to the history file at path.
// Logging is best-effort: a command never fails because its history could not be written.
func Log(path string, entry Entry) {
	if path == "" {
		return
	}

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// ReadEntries reads all entries from the history file.
// Returns an empty slice if the file doesn't exist.
func ReadEntries(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data), nil
}

// ParseEntries parses JSON Lines data into entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) []Entry {
	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries
}

// Filter returns the entries for op, or all entries when op is empty.
func Filter(entries []Entry, op string) []Entry {
	if op == "" {
		return entries
	}
	var out []Entry
	for _, e := range entries {
		if e.Operation == op {
			out = append(out, e)
		}
	}
	return out
}

// Last returns at most n entries from the end of entries, newest first.
// n <= 0 returns all of them.
func Last(entries []Entry, n int) []Entry {
	if n <= 0 || n > len(entries) {
		n = len(entries)
	}
	out := make([]Entry, 0, n)
	for i := len(entries) - 1; i >= len(entries)-n; i-- {
		out = append(out, entries[i])
	}
	return out
}
