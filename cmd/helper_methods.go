package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/PolarWolf314/quick-gist/internal/ui"
	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// spinner.FinalMSG values do not need trailing newlines; the cleanup function
// adds one before printing.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Cleared so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if s.Active() {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// spinnerPause takes a running spinner off the terminal line while the user
// is prompted or warned, and puts it back afterwards.
type spinnerPause struct {
	s      *spinner.Spinner
	paused bool
}

func (p *spinnerPause) pause() {
	if p.s.Active() {
		p.s.Stop()
		p.paused = true
	}
}

func (p *spinnerPause) resume() {
	if p.paused {
		p.s.Start()
		p.paused = false
	}
}

// prompt reads a hidden passphrase with the spinner paused. The spinner runs
// again during key derivation.
func (p *spinnerPause) prompt(prompt string) ([]byte, error) {
	p.pause()
	defer p.resume()
	return readPassphrase(prompt)
}
