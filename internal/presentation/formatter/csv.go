package formatter

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/penwyp/go-pomodoro/internal/core/eventlog"
)

const (
	csvSeparator = ", "
	csvHeader    = "start, finish, title"
)

// CSVFormatter writes the comma-space delimited session log
type CSVFormatter struct {
	clock ClockFormatter
}

func NewCSVFormatter(clock ClockFormatter) *CSVFormatter {
	return &CSVFormatter{clock: clock}
}

func (f *CSVFormatter) Extension() string {
	return ".csv"
}

// Format writes the header line followed by one row per entry.
// Fields are not quoted; an open entry has an empty finish column.
func (f *CSVFormatter) Format(w io.Writer, entries []eventlog.Entry, _ time.Time) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(csvHeader + "\n"); err != nil {
		return err
	}

	for _, entry := range entries {
		finish := ""
		if entry.Finish != nil {
			finish = f.clock.FormatClock(*entry.Finish)
		}

		record := []string{
			f.clock.FormatClock(entry.Start),
			finish,
			sanitizeTitle(entry.Title),
		}
		if _, err := bw.WriteString(strings.Join(record, csvSeparator) + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// sanitizeTitle keeps every entry on a single row
func sanitizeTitle(title string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(title)
}
