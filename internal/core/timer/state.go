package timer

import (
	"fmt"

	"github.com/penwyp/go-pomodoro/internal/core/constants"
)

// Phase is the active timer mode
type Phase int

const (
	PhaseFocus Phase = iota
	PhaseBreak
)

func (p Phase) String() string {
	switch p {
	case PhaseFocus:
		return "focus"
	case PhaseBreak:
		return "break"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Duration returns the full countdown length of the phase in seconds
func (p Phase) Duration() int {
	if p == PhaseBreak {
		return constants.BreakDurationSeconds
	}
	return constants.FocusDurationSeconds
}

// Next returns the phase that follows p
func (p Phase) Next() Phase {
	if p == PhaseFocus {
		return PhaseBreak
	}
	return PhaseFocus
}

// Status tells whether the countdown advances
type Status int

const (
	StatusStopped Status = iota
	StatusRunning
	StatusPaused
)

func (s Status) String() string {
	switch s {
	case StatusStopped:
		return "stopped"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// State holds the countdown of one session.
// Remaining never goes below zero; phase persists across pauses.
type State struct {
	Phase     Phase
	Remaining int // seconds left in the current phase
	Status    Status
}

// NewState returns a stopped Focus countdown at full length
func NewState() *State {
	return &State{
		Phase:     PhaseFocus,
		Remaining: PhaseFocus.Duration(),
		Status:    StatusStopped,
	}
}

// IsRunning reports whether ticks should advance the countdown
func (s *State) IsRunning() bool {
	return s.Status == StatusRunning
}
