package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-pomodoro/internal/core/constants"
	"github.com/penwyp/go-pomodoro/internal/core/timer"
	"github.com/penwyp/go-pomodoro/internal/util"
)

// DefaultGlyph is one minute of remaining time in the countdown bar
const DefaultGlyph = "🟩"

type DisplayConfig struct {
	Language string
	BarGlyph string
	// Width reports the terminal width; nil disables truncation
	Width func() int
}

// TerminalDisplay draws the countdown on a single line that is rewritten in place
type TerminalDisplay struct {
	out       io.Writer
	labels    Labels
	glyph     string
	width     func() int
	lastWidth int
}

func NewTerminalDisplay(out io.Writer, config DisplayConfig) *TerminalDisplay {
	td := &TerminalDisplay{out: out, width: config.Width}
	td.Apply(config)
	return td
}

// Apply switches language and bar glyph; the width source is kept
func (td *TerminalDisplay) Apply(config DisplayConfig) {
	labels, ok := LabelsFor(config.Language)
	if !ok && config.Language != "" {
		util.LogWarnf("Unsupported language %q, using %s", config.Language, DefaultLanguage)
	}
	td.labels = labels

	td.glyph = config.BarGlyph
	if td.glyph == "" {
		td.glyph = DefaultGlyph
	}
}

// Labels returns the active language strings
func (td *TerminalDisplay) Labels() Labels {
	return td.labels
}

// Render returns the status line for s: phase label, MM:SS, and one
// glyph per whole remaining minute.
func (td *TerminalDisplay) Render(s *timer.State) string {
	label := td.labels.Focus
	if s.Phase == timer.PhaseBreak {
		label = td.labels.Break
	}

	bar := strings.Repeat(td.glyph, s.Remaining/constants.SecondsPerGlyph)
	line := fmt.Sprintf("[%s] %s %s", label, util.FormatCountdown(s.Remaining), bar)

	if s.Status == timer.StatusPaused {
		line += " (" + td.labels.Paused + ")"
	}
	return line
}

// Draw overwrites the previous status line with the current one. The line
// is cut to the terminal width so it never wraps.
func (td *TerminalDisplay) Draw(s *timer.State) {
	line := td.Render(s)
	if td.width != nil {
		line = util.TruncateToWidth(line, td.width()-1)
	}

	width := util.GetDisplayWidth(line)
	fmt.Fprint(td.out, util.CarriageReturn+util.PadToWidth(line, td.lastWidth))
	td.lastWidth = width
}

// PrintHelp prints the key help line
func (td *TerminalDisplay) PrintHelp() {
	td.Message(td.labels.Help)
}

// Message prints msg on its own line below the status line
func (td *TerminalDisplay) Message(msg string) {
	fmt.Fprint(td.out, util.CarriageReturn+util.ClearLine+msg+"\n")
	td.lastWidth = 0
}

// Saved confirms a successful export
func (td *TerminalDisplay) Saved(path string) {
	td.Message(util.Colorize(util.ColorGreen, fmt.Sprintf(td.labels.Saved, path)))
}

// SaveFailed reports a failed export
func (td *TerminalDisplay) SaveFailed(err error) {
	td.Message(util.Colorize(util.ColorRed, fmt.Sprintf(td.labels.SaveFailed, err)))
}

// Goodbye prints the exit confirmation
func (td *TerminalDisplay) Goodbye() {
	td.Message(td.labels.Goodbye)
}
