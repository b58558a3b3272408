package timer

import "unicode"

// Command is a recognized single-key user action
type Command int

const (
	CommandNone Command = iota
	CommandStart
	CommandTogglePause
	CommandQuit
	CommandSave
)

func (c Command) String() string {
	switch c {
	case CommandStart:
		return "start"
	case CommandTogglePause:
		return "pause/resume"
	case CommandQuit:
		return "quit"
	case CommandSave:
		return "save"
	default:
		return "none"
	}
}

// ParseKey maps a key press to a command. Matching is case-insensitive;
// unrecognized keys map to CommandNone.
func ParseKey(key rune) Command {
	switch unicode.ToLower(key) {
	case 's':
		return CommandStart
	case 'p':
		return CommandTogglePause
	case 'q':
		return CommandQuit
	case 'l':
		return CommandSave
	default:
		return CommandNone
	}
}

// Signal tells the driver loop whether to keep polling
type Signal int

const (
	SignalContinue Signal = iota
	SignalStop
)

// Apply performs the status change for cmd and returns the previous status.
//
//	key     Stopped    Running    Paused
//	start   Running    -          -
//	pause   -          Paused     Running
//	quit    stop       stop       stop
//	save    -          -          -
func Apply(cmd Command, s *State) (Status, Signal) {
	prev := s.Status

	switch cmd {
	case CommandStart:
		if s.Status == StatusStopped {
			s.Status = StatusRunning
		}
	case CommandTogglePause:
		switch s.Status {
		case StatusRunning:
			s.Status = StatusPaused
		case StatusPaused:
			s.Status = StatusRunning
		}
	case CommandQuit:
		return prev, SignalStop
	}

	return prev, SignalContinue
}
