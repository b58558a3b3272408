package eventlog

import "time"

// Titles of the bookkeeping entries recorded besides the task itself
const (
	TitleBreak       = "Break"
	TitlePauseResume = "Pause/Resume"
	TitleEnd         = "End"
)

// Entry is one recorded activity interval. An entry is open until Finish is set.
type Entry struct {
	Title  string
	Start  time.Time
	Finish *time.Time
}

// Start opens a new entry at now
func Start(title string, now time.Time) *Entry {
	return &Entry{Title: title, Start: now}
}

// End closes the entry at now. A finish earlier than the start is clamped
// to the start so closed entries never have negative length.
func (e *Entry) End(now time.Time) {
	if now.Before(e.Start) {
		now = e.Start
	}
	e.Finish = &now
}

// IsOpen reports whether the entry has no finish time yet
func (e *Entry) IsOpen() bool {
	return e.Finish == nil
}

// Duration returns the closed length of the entry, or zero while open
func (e *Entry) Duration() time.Duration {
	if e.Finish == nil {
		return 0
	}
	return e.Finish.Sub(e.Start)
}

// ClosedCopy returns a copy of the entry finished at now; e is not modified
func (e *Entry) ClosedCopy(now time.Time) Entry {
	c := Entry{Title: e.Title, Start: e.Start}
	if e.Finish != nil {
		finish := *e.Finish
		c.Finish = &finish
		return c
	}
	c.End(now)
	return c
}
