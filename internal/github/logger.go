package github

import (
	"fmt"
	"strings"

	logger "github.com/PolarWolf314/quick-gist/internal/logging"
)

// leveledLogger routes retryablehttp diagnostics into the CLI logger.
// Request traces are debug output; retries and failures are warnings.
type leveledLogger struct {
	log logger.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.Warnf("%s", format(msg, keysAndValues))
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.Warnf("%s", format(msg, keysAndValues))
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugf("%s", format(msg, keysAndValues))
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.Debugf("%s", format(msg, keysAndValues))
}

func format(msg string, keysAndValues []interface{}) string {
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keysAndValues[i], keysAndValues[i+1])
	}
	return b.String()
}
