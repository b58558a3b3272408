package session

import (
	"context"
	"time"

	"github.com/penwyp/go-pomodoro/internal/config"
	"github.com/penwyp/go-pomodoro/internal/core/constants"
	"github.com/penwyp/go-pomodoro/internal/core/timer"
	"github.com/penwyp/go-pomodoro/internal/presentation/display"
	"github.com/penwyp/go-pomodoro/internal/presentation/sound"
	"github.com/penwyp/go-pomodoro/internal/util"
)

// InputSource delivers key presses without blocking
type InputSource interface {
	Poll() (KeyEvent, bool)
}

type ManagerConfig struct {
	Controller *Controller
	Input      InputSource
	Display    *display.TerminalDisplay
	Bell       *sound.Bell
	// Reloads delivers configuration changes; may be nil
	Reloads <-chan config.Config
}

// Manager runs the cooperative poll loop: at most one key, then at most
// one tick, then a redraw, every PollInterval. All state changes happen on
// the goroutine calling Run.
type Manager struct {
	controller *Controller
	input      InputSource
	display    *display.TerminalDisplay
	bell       *sound.Bell
	reloads    <-chan config.Config

	lastPoll time.Time
	elapsed  time.Duration // running time not yet turned into a tick
}

func NewManager(config ManagerConfig) *Manager {
	return &Manager{
		controller: config.Controller,
		input:      config.Input,
		display:    config.Display,
		bell:       config.Bell,
		reloads:    config.Reloads,
	}
}

// Run polls until the quit key is pressed or ctx is cancelled. A cancelled
// context is treated like the quit key so the log is still saved.
func (m *Manager) Run(ctx context.Context) error {
	util.LogInfo("Starting pomodoro timer...")

	m.display.PrintHelp()
	m.lastPoll = time.Now()
	m.display.Draw(m.controller.State())

	ticker := time.NewTicker(constants.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			util.LogInfo("Interrupted, closing session...")
			m.controller.Quit()
			m.display.Goodbye()
			return nil

		case now := <-ticker.C:
			if m.Step(now) == timer.SignalStop {
				m.display.Goodbye()
				return nil
			}
		}
	}
}

// Step runs one poll cycle at wall-clock time now
func (m *Manager) Step(now time.Time) timer.Signal {
	m.applyReloads()

	if ev, ok := m.input.Poll(); ok {
		if m.handleKey(ev) == timer.SignalStop {
			return timer.SignalStop
		}
	}

	if m.lastPoll.IsZero() {
		m.lastPoll = now
	}
	delta := now.Sub(m.lastPoll)
	m.lastPoll = now

	if m.controller.State().IsRunning() && delta > 0 {
		m.elapsed += delta
		if m.elapsed >= constants.TickThreshold {
			// carry the remainder, but never more than one tick per cycle
			m.elapsed = (m.elapsed - constants.TickThreshold) % constants.TickThreshold
			m.controller.Tick()
		}
	}

	m.display.Draw(m.controller.State())
	return timer.SignalContinue
}

func (m *Manager) handleKey(ev KeyEvent) timer.Signal {
	if ev.Type == KeyEscape {
		return timer.SignalContinue
	}

	key := ev.Key
	if key == KeyInterrupt {
		key = 'q'
	}
	return m.controller.HandleKey(key)
}

func (m *Manager) applyReloads() {
	if m.reloads == nil {
		return
	}

	select {
	case cfg, ok := <-m.reloads:
		if !ok {
			m.reloads = nil
			return
		}
		m.display.Apply(display.DisplayConfig{
			Language: cfg.Language,
			BarGlyph: cfg.BarGlyph,
		})
		if m.bell != nil {
			m.bell.SetMuted(cfg.Mute)
		}
		util.LogDebugf("Applied display settings: language=%s mute=%t", cfg.Language, cfg.Mute)
	default:
	}
}
