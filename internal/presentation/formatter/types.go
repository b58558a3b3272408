package formatter

import (
	"io"
	"strings"
	"time"

	"github.com/penwyp/go-pomodoro/internal/core/eventlog"
)

// LogFormatter renders a sequence of log entries saved at time at to w
type LogFormatter interface {
	Format(w io.Writer, entries []eventlog.Entry, at time.Time) error
	// Extension is the file suffix used for exports, including the dot
	Extension() string
}

// ClockFormatter renders a timestamp for the log file
type ClockFormatter interface {
	FormatClock(t time.Time) string
}

// Zone converts timestamps into the configured timezone
type Zone interface {
	In(t time.Time) time.Time
}

// Clock is what the built-in formatters need from the time provider
type Clock interface {
	ClockFormatter
	Zone
}

// New returns the formatter registered for name ("csv" or "json")
func New(name string, clock Clock, sessionID string) (LogFormatter, bool) {
	switch strings.ToLower(name) {
	case "", "csv":
		return NewCSVFormatter(clock), true
	case "json":
		return NewJSONFormatter(sessionID, clock), true
	default:
		return nil, false
	}
}
