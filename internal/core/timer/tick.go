package timer

// Transition describes the phase change caused by one Advance call
type Transition struct {
	From     Phase
	To       Phase
	Switched bool
}

// FocusEnded reports a Focus -> Break switch
func (t Transition) FocusEnded() bool {
	return t.Switched && t.From == PhaseFocus
}

// BreakEnded reports a Break -> Focus switch
func (t Transition) BreakEnded() bool {
	return t.Switched && t.From == PhaseBreak
}

// Advance moves the countdown forward by one second. When the counter
// reaches zero the phase switches exactly once and the counter is reset
// to the full duration of the new phase. Status is not consulted; callers
// only advance running timers.
func Advance(s *State) Transition {
	tr := Transition{From: s.Phase, To: s.Phase}

	if s.Remaining > 0 {
		s.Remaining--
	}

	if s.Remaining == 0 {
		s.Phase = s.Phase.Next()
		s.Remaining = s.Phase.Duration()
		tr.To = s.Phase
		tr.Switched = true
	}

	return tr
}
