package utils

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LinePrompter reads visible answers line by line.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter reads answers from r and writes prompts to w.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(r), out: w}
}

// ReadLine prints prompt and returns the next line without its line ending.
// A final line without a newline is returned as-is; io.EOF is only returned
// when nothing at all could be read.
func (p *LinePrompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Prompt asks until valid accepts the trimmed answer.
func (p *LinePrompter) Prompt(prompt string, valid func(string) bool) (string, error) {
	for {
		answer, err := p.ReadLine(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		answer = strings.TrimSpace(answer)
		if valid(answer) {
			return answer, nil
		}

		fmt.Fprintln(p.out, "Invalid input, please try again")
	}
}

// Confirm asks a yes/no question. An empty answer selects def.
func (p *LinePrompter) Confirm(prompt string, def bool) (bool, error) {
	answer, err := p.Prompt(prompt, func(s string) bool {
		switch strings.ToLower(s) {
		case "", "y", "yes", "n", "no":
			return true
		}
		return false
	})
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return def, nil
}
