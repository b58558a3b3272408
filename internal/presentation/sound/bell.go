package sound

import (
	"io"
	"strings"
	"sync"

	"github.com/penwyp/go-pomodoro/internal/util"
)

const (
	focusEndBeeps = 2
	breakEndBeeps = 1
)

// Bell signals phase ends with the terminal bell character.
// Writes are a few bytes and return immediately.
type Bell struct {
	out   io.Writer
	mu    sync.Mutex
	muted bool
}

func NewBell(out io.Writer, muted bool) *Bell {
	return &Bell{out: out, muted: muted}
}

// SetMuted turns the bell on or off
func (b *Bell) SetMuted(muted bool) {
	b.mu.Lock()
	b.muted = muted
	b.mu.Unlock()
}

// FocusEnded rings twice
func (b *Bell) FocusEnded() {
	b.ring(focusEndBeeps)
}

// BreakEnded rings once
func (b *Bell) BreakEnded() {
	b.ring(breakEndBeeps)
}

func (b *Bell) ring(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.muted {
		return
	}
	if _, err := io.WriteString(b.out, strings.Repeat(util.Bell, n)); err != nil {
		util.LogDebugf("bell write failed: %v", err)
	}
}
