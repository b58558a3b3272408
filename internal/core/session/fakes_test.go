package session

import (
	"errors"
	"time"

	"github.com/penwyp/go-pomodoro/internal/core/eventlog"
)

// fakeClock advances only when told to
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type fakeNotifier struct {
	focusEnded int
	breakEnded int
}

func (n *fakeNotifier) FocusEnded() { n.focusEnded++ }
func (n *fakeNotifier) BreakEnded() { n.breakEnded++ }

type exportCall struct {
	entries []eventlog.Entry
	at      time.Time
}

type fakeExporter struct {
	calls []exportCall
	fail  bool
}

func (e *fakeExporter) Export(entries []eventlog.Entry, at time.Time) (string, error) {
	e.calls = append(e.calls, exportCall{entries: entries, at: at})
	if e.fail {
		return "", errors.New("disk full")
	}
	return "log.csv", nil
}

func (e *fakeExporter) last() exportCall {
	return e.calls[len(e.calls)-1]
}

type fakeReporter struct {
	saved  []string
	failed []error
}

func (r *fakeReporter) Saved(path string)    { r.saved = append(r.saved, path) }
func (r *fakeReporter) SaveFailed(err error) { r.failed = append(r.failed, err) }

// fakeInput returns queued keys, one per Poll
type fakeInput struct {
	keys []KeyEvent
}

func (f *fakeInput) Press(keys ...rune) {
	for _, k := range keys {
		f.keys = append(f.keys, KeyEvent{Key: k, Type: KeyChar})
	}
}

func (f *fakeInput) Poll() (KeyEvent, bool) {
	if len(f.keys) == 0 {
		return KeyEvent{}, false
	}
	ev := f.keys[0]
	f.keys = f.keys[1:]
	return ev, true
}
