package snippets

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	qerrors "github.com/PolarWolf314/quick-gist/internal/errors"
)

// descriptorPattern matches "path[1-3,7]". Anything else is a plain path.
var descriptorPattern = regexp.MustCompile(`^(.+?)\[([\d\s,\-]*)\]$`)

// Range is an inclusive, 1-based line range.
type Range struct {
	First int
	Last  int
}

func (r Range) String() string {
	return fmt.Sprintf("[%d-%d]", r.First, r.Last)
}

// Descriptor names a file and the line ranges to take from it.
// No ranges means the whole file.
type Descriptor struct {
	Path   string
	Ranges []Range
}

func (d Descriptor) String() string {
	if len(d.Ranges) == 0 {
		return d.Path
	}
	return d.Path + " " + FormatRanges(d.Ranges)
}

// FormatRanges renders ranges as "[1-3], [7-7]".
func FormatRanges(ranges []Range) string {
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}

// ParseDescriptor parses a command-line file argument such as "main.go",
// "main.go[10]" or "main.go[1-5,20-25]". Ranges are not checked against the
// file here; Assemble skips the ones that do not fit.
//
// Returns ErrInvalidDescriptor for empty arguments and unparsable ranges.
func ParseDescriptor(arg string) (Descriptor, error) {
	if strings.TrimSpace(arg) == "" {
		return Descriptor{}, fmt.Errorf("empty file argument: %w", qerrors.ErrInvalidDescriptor)
	}

	m := descriptorPattern.FindStringSubmatch(arg)
	if m == nil {
		return Descriptor{Path: arg}, nil
	}

	desc := Descriptor{Path: m[1]}
	for _, section := range strings.Split(m[2], ",") {
		r, err := parseRange(strings.TrimSpace(section))
		if err != nil {
			return Descriptor{}, fmt.Errorf("%q: %v: %w", arg, err, qerrors.ErrInvalidDescriptor)
		}
		desc.Ranges = append(desc.Ranges, r)
	}

	return desc, nil
}

// ParseDescriptors parses every argument, stopping at the first error.
func ParseDescriptors(args []string) ([]Descriptor, error) {
	descs := make([]Descriptor, 0, len(args))
	for _, arg := range args {
		d, err := ParseDescriptor(arg)
		if err != nil {
			return nil, err
		}
		descs = append(descs, d)
	}
	return descs, nil
}

func parseRange(section string) (Range, error) {
	if section == "" {
		return Range{}, fmt.Errorf("empty line range")
	}

	first, last, found := strings.Cut(section, "-")
	a, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return Range{}, fmt.Errorf("invalid line number %q", first)
	}
	if !found {
		// A single number selects exactly that line.
		return Range{First: a, Last: a}, nil
	}

	b, err := strconv.Atoi(strings.TrimSpace(last))
	if err != nil {
		return Range{}, fmt.Errorf("invalid line number %q", last)
	}
	return Range{First: a, Last: b}, nil
}
