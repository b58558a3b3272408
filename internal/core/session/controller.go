package session

import (
	"time"

	"github.com/penwyp/go-pomodoro/internal/core/eventlog"
	"github.com/penwyp/go-pomodoro/internal/core/timer"
	"github.com/penwyp/go-pomodoro/internal/util"
)

// Notifier is told about phase ends while the timer runs
type Notifier interface {
	FocusEnded()
	BreakEnded()
}

// Exporter writes a log snapshot and returns where it went
type Exporter interface {
	Export(entries []eventlog.Entry, at time.Time) (string, error)
}

// Reporter surfaces export results to the user
type Reporter interface {
	Saved(path string)
	SaveFailed(err error)
}

// Controller owns the timer state and the event log of one session and
// keeps the log in step with every status and phase transition.
// It is not safe for concurrent use.
type Controller struct {
	id       string
	task     string
	state    *timer.State
	log      *eventlog.Log
	now      func() time.Time
	notifier Notifier
	exporter Exporter
	reporter Reporter
	logger   util.LoggerInterface
	finished bool
}

type ControllerConfig struct {
	ID       string
	TaskName string
	Now      func() time.Time
	Notifier Notifier
	Exporter Exporter
	Reporter Reporter
}

func NewController(config ControllerConfig) *Controller {
	now := config.Now
	if now == nil {
		now = time.Now
	}

	return &Controller{
		id:       config.ID,
		task:     config.TaskName,
		state:    timer.NewState(),
		log:      eventlog.New(),
		now:      now,
		notifier: config.Notifier,
		exporter: config.Exporter,
		reporter: config.Reporter,
		logger:   util.WithFields(util.F("session_id", config.ID)),
	}
}

// State returns the live timer state; callers must not modify it
func (c *Controller) State() *timer.State {
	return c.state
}

// Log returns the session event log
func (c *Controller) Log() *eventlog.Log {
	return c.log
}

// TaskName returns the title used for focus entries
func (c *Controller) TaskName() string {
	return c.task
}

// HandleKey applies one key press and records the resulting transition.
// It returns SignalStop once the session has been quit.
func (c *Controller) HandleKey(key rune) timer.Signal {
	cmd := timer.ParseKey(key)
	if cmd == timer.CommandNone {
		c.logger.Debugf("Ignoring key %q", key)
		return timer.SignalContinue
	}

	prev, sig := timer.Apply(cmd, c.state)
	now := c.now()

	switch cmd {
	case timer.CommandStart:
		if prev == timer.StatusStopped {
			c.log.Open(c.task, now)
			c.logger.Info("Session started", util.F("task", c.task))
		}

	case timer.CommandTogglePause:
		switch prev {
		case timer.StatusRunning:
			c.log.Open(eventlog.TitlePauseResume, now)
			c.logger.Info("Paused", util.F("phase", c.state.Phase.String()), util.F("remaining", c.state.Remaining))
		case timer.StatusPaused:
			c.log.Open(c.activityTitle(), now)
			c.logger.Info("Resumed", util.F("phase", c.state.Phase.String()))
		}

	case timer.CommandSave:
		if prev == timer.StatusStopped {
			c.logger.Debug("Nothing to save before the timer starts")
			break
		}
		c.Save()

	case timer.CommandQuit:
		c.Quit()
	}

	return sig
}

// Tick advances a running timer by one second. Phase switches close the
// current entry, open the next one and fire the matching notification.
func (c *Controller) Tick() timer.Transition {
	if !c.state.IsRunning() {
		return timer.Transition{From: c.state.Phase, To: c.state.Phase}
	}

	tr := timer.Advance(c.state)
	if !tr.Switched {
		return tr
	}

	now := c.now()
	if tr.FocusEnded() {
		c.log.Open(eventlog.TitleBreak, now)
		if c.notifier != nil {
			c.notifier.FocusEnded()
		}
	} else {
		c.log.Open(c.task, now)
		if c.notifier != nil {
			c.notifier.BreakEnded()
		}
	}
	c.logger.Info("Phase switched", util.F("from", tr.From.String()), util.F("to", tr.To.String()))

	return tr
}

// Save exports the completed entries plus a closed copy of the open one.
// The open entry stays open. Export failures are reported, not returned,
// so the timer keeps running.
func (c *Controller) Save() {
	now := c.now()
	c.export(c.log.Snapshot(now), now)
}

// Quit closes the open entry, appends the End marker and exports the log.
// Calling it again is a no-op.
func (c *Controller) Quit() {
	if c.finished {
		return
	}
	c.finished = true

	now := c.now()
	c.log.Mark(eventlog.TitleEnd, now)
	c.logger.Info("Session ended", util.F("entries", c.log.Len()))

	c.export(c.log.Entries(), now)
}

// Finished reports whether Quit has run
func (c *Controller) Finished() bool {
	return c.finished
}

func (c *Controller) export(entries []eventlog.Entry, now time.Time) {
	if c.exporter == nil {
		return
	}

	path, err := c.exporter.Export(entries, now)
	if err != nil {
		c.logger.Error("Log export failed", util.F("error", err.Error()))
		if c.reporter != nil {
			c.reporter.SaveFailed(err)
		}
		return
	}

	c.logger.Info("Log exported", util.F("path", path), util.F("entries", len(entries)))
	if c.reporter != nil {
		c.reporter.Saved(path)
	}
}

// activityTitle names what the user is doing in the current phase
func (c *Controller) activityTitle() string {
	if c.state.Phase == timer.PhaseBreak {
		return eventlog.TitleBreak
	}
	return c.task
}
