package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/penwyp/go-pomodoro/internal/core/eventlog"
	"github.com/penwyp/go-pomodoro/internal/presentation/formatter"
)

// Stamper renders the save time used in export filenames
type Stamper interface {
	FileStamp(t time.Time) string
}

// FileExporter writes session logs into a directory, one file per save.
// The filename depends only on the save time, so saving twice within the
// same minute replaces the earlier file with the newer snapshot.
type FileExporter struct {
	dir       string
	formatter formatter.LogFormatter
	stamper   Stamper
}

func NewFileExporter(dir string, f formatter.LogFormatter, stamper Stamper) *FileExporter {
	return &FileExporter{
		dir:       dir,
		formatter: f,
		stamper:   stamper,
	}
}

// FileName returns the export filename for a save at t
func (e *FileExporter) FileName(t time.Time) string {
	return "log_" + e.stamper.FileStamp(t) + e.formatter.Extension()
}

// Export writes entries to the timestamped file and returns its path.
// The file is written under a temporary name and renamed into place.
func (e *FileExporter) Export(entries []eventlog.Entry, at time.Time) (string, error) {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(e.dir, e.FileName(at))

	tmp, err := os.CreateTemp(e.dir, ".log-*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := e.formatter.Format(tmp, entries, at); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write log file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write log file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return "", fmt.Errorf("failed to set log file permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("failed to save log file: %w", err)
	}

	return path, nil
}
