package display

import (
	"os"

	"golang.org/x/term"
)

const fallbackWidth = 80

// StdoutWidth reports the terminal width of stdout, falling back to 80
// columns when stdout is not a terminal.
func StdoutWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}
