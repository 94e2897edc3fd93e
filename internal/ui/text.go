package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	return f.render(fmt.Sprint(a...))
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// Failure renders "✗ msg" followed by an optional "→ hint" line.
func Failure(msg, hint string) string {
	out := Error.Sprint("✗") + " " + msg
	if hint != "" {
		out += "\n" + Info.Sprint("→") + " " + hint
	}
	return out
}

// Done renders "✓ msg".
func Done(msg string) string {
	return Success.Sprint("✓") + " " + msg
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// https://no-color.org/
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

// Semantic formatters for different types of CLI output.
var (
	// Code formats runnable commands. Yellow, `backticks` without color.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path formats local file paths.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Flag formats CLI flags like --public.
	Flag = Formatter{color.New(color.FgYellow), "", ""}

	// URL formats links to created gists. Underlined blue, <angle brackets> without color.
	URL = Formatter{color.New(color.FgBlue, color.Underline), "<", ">"}

	Success = Formatter{color.New(color.FgGreen), "", ""}
	Error   = Formatter{color.New(color.FgRed), "", ""}
	Warning = Formatter{color.New(color.FgYellow), "", ""}
	Info    = Formatter{color.New(color.FgCyan), "", ""}

	// Highlight formats user values such as GitHub usernames. 'Quoted' without color.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	// Muted formats secondary text. (Parenthesised) without color.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)
