package snippets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	qerrors "github.com/PolarWolf314/quick-gist/internal/errors"
	logger "github.com/PolarWolf314/quick-gist/internal/logging"
)

// Options controls Assemble.
type Options struct {
	// SoftFail skips unreadable files instead of aborting.
	SoftFail bool

	Logger logger.Logger
}

// File is one gist file built from a descriptor.
type File struct {
	// Name is the gist file name, the base name of Path.
	Name string

	// Path is the absolute path of the source file.
	Path string

	Content string

	// Ranges are the ranges actually included; empty means the whole file.
	Ranges []Range
}

// Result is the assembled gist content in argument order.
type Result struct {
	Files   []File
	Skipped []string
}

// Assemble reads the described files and cuts out the selected lines.
//
// Ranges that are reversed, start below 1 or run past the end of the file
// are skipped with a warning. Files that end up empty are left out, since
// GitHub rejects blank gist files.
//
// Returns ErrDuplicateFile if two descriptors share a base name.
// Returns ErrFileUnreadable if a file cannot be read and SoftFail is off.
// Returns ErrNothingToPublish if no content is left.
func Assemble(descs []Descriptor, opts Options) (*Result, error) {
	log := opts.Logger
	result := &Result{}
	seen := make(map[string]string)

	for _, desc := range descs {
		name := filepath.Base(desc.Path)
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("%q and %q both map to %q: %w", prev, desc.Path, name, qerrors.ErrDuplicateFile)
		}
		seen[name] = desc.Path

		absPath, err := filepath.Abs(desc.Path)
		if err != nil {
			absPath = desc.Path
		}

		data, err := os.ReadFile(absPath)
		if err != nil {
			if opts.SoftFail {
				log.WarnfUser("Failed to open/read file '%s' (skipping)", name)
				log.Debugf("Read error for %s: %v", absPath, err)
				result.Skipped = append(result.Skipped, desc.Path)
				continue
			}
			return nil, fmt.Errorf("'%s': %v: %w", name, err, qerrors.ErrFileUnreadable)
		}

		file := File{Name: name, Path: absPath}
		if len(desc.Ranges) == 0 {
			file.Content = string(data)
			log.Debugf("Including all lines from file '%s'", name)
		} else {
			file.Content, file.Ranges = selectLines(string(data), name, desc.Ranges, log)
		}

		if file.Content == "" {
			log.WarnfUser("Nothing selected from '%s' (skipping)", name)
			result.Skipped = append(result.Skipped, desc.Path)
			continue
		}

		result.Files = append(result.Files, file)
	}

	if len(result.Files) == 0 {
		return nil, qerrors.ErrNothingToPublish
	}

	return result, nil
}

func selectLines(content, name string, ranges []Range, log logger.Logger) (string, []Range) {
	lines := splitLines(content)

	var b strings.Builder
	var included []Range

	for _, r := range ranges {
		switch {
		case r.Last < r.First:
			log.WarnfUser("First line number must be lower than the second one (skipping '%s' %s)", name, r)
		case r.First <= 0:
			log.WarnfUser("Line %d does not exist in '%s' (skipping)", r.First, name)
		case r.Last > len(lines):
			log.WarnfUser("Line %d does not exist in file '%s' (skipping lines %s)", r.Last, name, r)
		default:
			for _, line := range lines[r.First-1 : r.Last] {
				b.WriteString(line)
			}
			included = append(included, r)
			log.Debugf("Including lines %d-%d in file '%s'", r.First, r.Last, name)
		}
	}

	return b.String(), included
}

// splitLines splits content into lines that keep their line endings.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
