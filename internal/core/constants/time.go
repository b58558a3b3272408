package constants

import "time"

const (
	// Phase durations, in ticks (one tick per second)
	FocusDurationSeconds = 25 * 60
	BreakDurationSeconds = 5 * 60

	FocusDuration = FocusDurationSeconds * time.Second
	BreakDuration = BreakDurationSeconds * time.Second

	// Driver loop cadence
	PollInterval = 100 * time.Millisecond

	// Accumulated running time needed for one tick
	TickThreshold = time.Second

	// Seconds per bar glyph in the countdown line
	SecondsPerGlyph = 60
)
