package session

import (
	"testing"
	"time"

	"github.com/penwyp/go-pomodoro/internal/core/constants"
	"github.com/penwyp/go-pomodoro/internal/core/eventlog"
	"github.com/penwyp/go-pomodoro/internal/core/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	clock    *fakeClock
	notifier *fakeNotifier
	exporter *fakeExporter
	reporter *fakeReporter
	ctrl     *Controller
}

func newHarness(task string) *harness {
	h := &harness{
		clock:    newFakeClock(),
		notifier: &fakeNotifier{},
		exporter: &fakeExporter{},
		reporter: &fakeReporter{},
	}
	h.ctrl = NewController(ControllerConfig{
		ID:       "test-session",
		TaskName: task,
		Now:      h.clock.Now,
		Notifier: h.notifier,
		Exporter: h.exporter,
		Reporter: h.reporter,
	})
	return h
}

// run ticks n seconds, moving the clock along
func (h *harness) run(n int) {
	for i := 0; i < n; i++ {
		h.clock.Advance(time.Second)
		h.ctrl.Tick()
	}
}

func titles(entries []eventlog.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Title
	}
	return out
}

func assertPartition(t *testing.T, entries []eventlog.Entry) {
	t.Helper()
	for i, e := range entries {
		require.NotNil(t, e.Finish, "entry %d (%s) must be closed", i, e.Title)
		assert.False(t, e.Finish.Before(e.Start), "entry %d finishes before it starts", i)
		if i > 0 {
			assert.Equal(t, *entries[i-1].Finish, e.Start, "gap or overlap before entry %d", i)
		}
	}
}

func TestNewControllerDefaults(t *testing.T) {
	h := newHarness("Write report")
	s := h.ctrl.State()

	assert.Equal(t, timer.PhaseFocus, s.Phase)
	assert.Equal(t, constants.FocusDurationSeconds, s.Remaining)
	assert.Equal(t, timer.StatusStopped, s.Status)
	assert.Nil(t, h.ctrl.Log().Current())
	assert.Equal(t, "Write report", h.ctrl.TaskName())
	assert.False(t, h.ctrl.Finished())
}

func TestStartOpensTaskEntry(t *testing.T) {
	h := newHarness("Write report")

	sig := h.ctrl.HandleKey('s')

	assert.Equal(t, timer.SignalContinue, sig)
	assert.Equal(t, timer.StatusRunning, h.ctrl.State().Status)
	require.NotNil(t, h.ctrl.Log().Current())
	assert.Equal(t, "Write report", h.ctrl.Log().Current().Title)
	assert.Equal(t, h.clock.Now(), h.ctrl.Log().Current().Start)

	// a second start is a no-op and does not open another entry
	h.clock.Advance(time.Minute)
	h.ctrl.HandleKey('s')
	assert.Equal(t, 0, h.ctrl.Log().Len())
	assert.Equal(t, h.clock.Now().Add(-time.Minute), h.ctrl.Log().Current().Start)
}

func TestStoppedIgnoresTicksAndPause(t *testing.T) {
	h := newHarness("Task")

	h.run(10)
	h.ctrl.HandleKey('p')

	assert.Equal(t, timer.StatusStopped, h.ctrl.State().Status)
	assert.Equal(t, constants.FocusDurationSeconds, h.ctrl.State().Remaining)
	assert.Nil(t, h.ctrl.Log().Current())
	assert.Equal(t, 0, h.ctrl.Log().Len())
}

func TestUnknownKeyIgnored(t *testing.T) {
	h := newHarness("Task")
	h.ctrl.HandleKey('s')

	assert.Equal(t, timer.SignalContinue, h.ctrl.HandleKey('x'))
	assert.Equal(t, timer.StatusRunning, h.ctrl.State().Status)
	assert.Equal(t, 0, h.ctrl.Log().Len())
	assert.Empty(t, h.exporter.calls)
}

func TestPauseAndResume(t *testing.T) {
	h := newHarness("Task")
	h.ctrl.HandleKey('s')
	h.run(60)

	h.ctrl.HandleKey('p')
	assert.Equal(t, timer.StatusPaused, h.ctrl.State().Status)
	require.NotNil(t, h.ctrl.Log().Current())
	assert.Equal(t, eventlog.TitlePauseResume, h.ctrl.Log().Current().Title)

	// paused time does not count down
	remaining := h.ctrl.State().Remaining
	h.run(30)
	assert.Equal(t, remaining, h.ctrl.State().Remaining)

	h.ctrl.HandleKey('P')
	assert.Equal(t, timer.StatusRunning, h.ctrl.State().Status)
	assert.Equal(t, "Task", h.ctrl.Log().Current().Title)

	entries := h.ctrl.Log().Entries()
	assert.Equal(t, []string{"Task", eventlog.TitlePauseResume}, titles(entries))
	assertPartition(t, entries)
	assert.Equal(t, time.Minute, entries[0].Duration())
	assert.Equal(t, 30*time.Second, entries[1].Duration())
}

func TestResumeDuringBreakOpensBreak(t *testing.T) {
	h := newHarness("Task")
	h.ctrl.HandleKey('s')
	h.run(constants.FocusDurationSeconds + 10)
	require.Equal(t, timer.PhaseBreak, h.ctrl.State().Phase)

	h.ctrl.HandleKey('p')
	h.clock.Advance(time.Minute)
	h.ctrl.HandleKey('p')

	assert.Equal(t, eventlog.TitleBreak, h.ctrl.Log().Current().Title)
	assert.Equal(t,
		[]string{"Task", eventlog.TitleBreak, eventlog.TitlePauseResume},
		titles(h.ctrl.Log().Entries()))
}

func TestFullFocusPhase(t *testing.T) {
	h := newHarness("Write report")
	h.ctrl.HandleKey('s')

	h.run(constants.FocusDurationSeconds)

	entries := h.ctrl.Log().Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Write report", entries[0].Title)
	assert.Equal(t, constants.FocusDuration, entries[0].Duration())

	current := h.ctrl.Log().Current()
	require.NotNil(t, current)
	assert.Equal(t, eventlog.TitleBreak, current.Title)
	assert.True(t, current.IsOpen())
	assert.Equal(t, *entries[0].Finish, current.Start)

	assert.Equal(t, 1, h.notifier.focusEnded)
	assert.Equal(t, 0, h.notifier.breakEnded)
	assert.Equal(t, timer.PhaseBreak, h.ctrl.State().Phase)
	assert.Equal(t, constants.BreakDurationSeconds, h.ctrl.State().Remaining)
}

func TestFullCycle(t *testing.T) {
	h := newHarness("Task")
	h.ctrl.HandleKey('s')

	h.run(constants.FocusDurationSeconds + constants.BreakDurationSeconds)

	assert.Equal(t, []string{"Task", eventlog.TitleBreak}, titles(h.ctrl.Log().Entries()))
	assert.Equal(t, "Task", h.ctrl.Log().Current().Title)
	assert.Equal(t, 1, h.notifier.focusEnded)
	assert.Equal(t, 1, h.notifier.breakEnded)
	assert.Equal(t, timer.PhaseFocus, h.ctrl.State().Phase)
	assertPartition(t, h.ctrl.Log().Entries())
}

func TestTickReportsTransition(t *testing.T) {
	h := newHarness("Task")

	tr := h.ctrl.Tick()
	assert.False(t, tr.Switched)

	h.ctrl.HandleKey('s')
	h.run(constants.FocusDurationSeconds - 1)
	tr = h.ctrl.Tick()
	assert.True(t, tr.FocusEnded())
}

func TestSaveSnapshot(t *testing.T) {
	h := newHarness("Task")
	h.ctrl.HandleKey('s')
	h.run(constants.FocusDurationSeconds + 60)

	h.ctrl.HandleKey('l')

	require.Len(t, h.exporter.calls, 1)
	call := h.exporter.last()
	assert.Equal(t, h.clock.Now(), call.at)
	assert.Equal(t, []string{"Task", eventlog.TitleBreak}, titles(call.entries))
	assertPartition(t, call.entries)
	assert.Equal(t, h.clock.Now(), *call.entries[1].Finish)

	// the live log is unchanged
	assert.Equal(t, 1, h.ctrl.Log().Len())
	require.NotNil(t, h.ctrl.Log().Current())
	assert.True(t, h.ctrl.Log().Current().IsOpen())
	assert.Equal(t, timer.StatusRunning, h.ctrl.State().Status)

	assert.Equal(t, []string{"log.csv"}, h.reporter.saved)
}

func TestSaveWhileStopped(t *testing.T) {
	h := newHarness("Task")

	assert.Equal(t, timer.SignalContinue, h.ctrl.HandleKey('l'))

	assert.Empty(t, h.exporter.calls)
	assert.Empty(t, h.reporter.saved)
	assert.Equal(t, timer.StatusStopped, h.ctrl.State().Status)
	assert.Nil(t, h.ctrl.Log().Current())

	// quitting before the start still writes the End marker
	assert.Equal(t, timer.SignalStop, h.ctrl.HandleKey('q'))
	require.Len(t, h.exporter.calls, 1)
	assert.Equal(t, []string{eventlog.TitleEnd}, titles(h.exporter.last().entries))
}

func TestSaveFailureKeepsRunning(t *testing.T) {
	h := newHarness("Task")
	h.exporter.fail = true
	h.ctrl.HandleKey('s')

	assert.Equal(t, timer.SignalContinue, h.ctrl.HandleKey('l'))

	require.Len(t, h.reporter.failed, 1)
	assert.EqualError(t, h.reporter.failed[0], "disk full")
	assert.Empty(t, h.reporter.saved)
	assert.Equal(t, timer.StatusRunning, h.ctrl.State().Status)

	h.run(5)
	assert.Equal(t, constants.FocusDurationSeconds-5, h.ctrl.State().Remaining)
}

func TestQuit(t *testing.T) {
	for _, status := range []timer.Status{timer.StatusStopped, timer.StatusRunning, timer.StatusPaused} {
		t.Run(status.String(), func(t *testing.T) {
			h := newHarness("Task")
			switch status {
			case timer.StatusRunning:
				h.ctrl.HandleKey('s')
			case timer.StatusPaused:
				h.ctrl.HandleKey('s')
				h.ctrl.HandleKey('p')
			}
			h.clock.Advance(time.Minute)

			assert.Equal(t, timer.SignalStop, h.ctrl.HandleKey('q'))
			assert.True(t, h.ctrl.Finished())
			assert.Nil(t, h.ctrl.Log().Current())

			entries := h.ctrl.Log().Entries()
			require.NotEmpty(t, entries)
			end := entries[len(entries)-1]
			assert.Equal(t, eventlog.TitleEnd, end.Title)
			assert.Equal(t, end.Start, *end.Finish)
			assertPartition(t, entries)

			require.Len(t, h.exporter.calls, 1)
			assert.Equal(t, entries, h.exporter.last().entries)
		})
	}
}

func TestQuitIsIdempotent(t *testing.T) {
	h := newHarness("Task")
	h.ctrl.HandleKey('s')

	h.ctrl.Quit()
	h.ctrl.Quit()

	assert.Equal(t, []string{"Task", eventlog.TitleEnd}, titles(h.ctrl.Log().Entries()))
	assert.Len(t, h.exporter.calls, 1)
}

func TestControllerWithoutCollaborators(t *testing.T) {
	ctrl := NewController(ControllerConfig{TaskName: "Task"})

	assert.NotPanics(t, func() {
		ctrl.HandleKey('s')
		for i := 0; i < constants.FocusDurationSeconds; i++ {
			ctrl.Tick()
		}
		ctrl.HandleKey('l')
		ctrl.HandleKey('q')
	})
	assert.Equal(t, []string{"Task", eventlog.TitleBreak, eventlog.TitleEnd}, titles(ctrl.Log().Entries()))
}
