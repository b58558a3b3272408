package formatter

import (
	"io"
	"time"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-pomodoro/internal/core/eventlog"
)

// JSONFormatter writes the session log as one JSON document with
// RFC 3339 timestamps in the configured timezone
type JSONFormatter struct {
	sessionID string
	zone      Zone
}

type jsonEntry struct {
	Title           string  `json:"title"`
	Start           string  `json:"start"`
	Finish          *string `json:"finish"`
	DurationSeconds int64   `json:"duration_seconds"`
}

type jsonLog struct {
	SessionID  string      `json:"session_id"`
	ExportedAt string      `json:"exported_at"`
	Entries    []jsonEntry `json:"entries"`
}

func NewJSONFormatter(sessionID string, zone Zone) *JSONFormatter {
	return &JSONFormatter{sessionID: sessionID, zone: zone}
}

func (f *JSONFormatter) Extension() string {
	return ".json"
}

func (f *JSONFormatter) Format(w io.Writer, entries []eventlog.Entry, at time.Time) error {
	doc := jsonLog{
		SessionID:  f.sessionID,
		ExportedAt: f.timestamp(at),
		Entries:    make([]jsonEntry, 0, len(entries)),
	}

	for _, entry := range entries {
		je := jsonEntry{
			Title: entry.Title,
			Start: f.timestamp(entry.Start),
		}
		if entry.Finish != nil {
			finish := f.timestamp(*entry.Finish)
			je.Finish = &finish
			je.DurationSeconds = int64(entry.Duration() / time.Second)
		}
		doc.Entries = append(doc.Entries, je)
	}

	data, err := sonic.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func (f *JSONFormatter) timestamp(t time.Time) string {
	if f.zone != nil {
		t = f.zone.In(t)
	}
	return t.Format(time.RFC3339)
}
