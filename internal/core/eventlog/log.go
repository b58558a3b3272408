package eventlog

import "time"

// Log keeps the completed entries of a session in chronological order plus
// the single entry that is currently open.
type Log struct {
	completed []Entry
	current   *Entry
}

// New creates an empty log
func New() *Log {
	return &Log{completed: make([]Entry, 0)}
}

// Open closes the current entry, if any, and opens a new one titled title
func (l *Log) Open(title string, now time.Time) {
	l.Close(now)
	l.current = Start(title, now)
}

// Close finishes the open entry and appends it to the completed sequence.
// It returns false when no entry was open.
func (l *Log) Close(now time.Time) bool {
	if l.current == nil {
		return false
	}
	l.current.End(now)
	l.completed = append(l.completed, *l.current)
	l.current = nil
	return true
}

// Mark appends an entry that is opened and closed at the same instant.
// Any open entry is closed first.
func (l *Log) Mark(title string, now time.Time) {
	l.Close(now)
	e := Start(title, now)
	e.End(now)
	l.completed = append(l.completed, *e)
}

// Current returns the open entry or nil
func (l *Log) Current() *Entry {
	return l.current
}

// Entries returns a copy of the completed entries
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.completed))
	copy(out, l.completed)
	return out
}

// Len returns the number of completed entries
func (l *Log) Len() int {
	return len(l.completed)
}

// Snapshot returns the completed entries followed by a closed copy of the
// open entry stamped with now. The log itself is left untouched.
func (l *Log) Snapshot(now time.Time) []Entry {
	out := make([]Entry, 0, len(l.completed)+1)
	out = append(out, l.completed...)
	if l.current != nil {
		out = append(out, l.current.ClosedCopy(now))
	}
	return out
}
