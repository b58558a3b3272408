package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Terminal control sequences
const (
	ColorReset = "\033[0m"
	ColorGreen = "\033[32m"
	ColorRed   = "\033[31m"

	CarriageReturn = "\r"
	ClearLine      = "\033[2K" // Clear entire line
	HideCursor     = "\033[?25l"
	ShowCursor     = "\033[?25h"
	Bell           = "\a"
)

// GetDisplayWidth calculates the actual display width of a string, accounting for emojis
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// TruncateToWidth cuts text so it occupies at most width terminal cells
func TruncateToWidth(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "")
}

// PadToWidth right-pads text with spaces up to width terminal cells
func PadToWidth(text string, width int) string {
	actual := runewidth.StringWidth(text)
	if actual >= width {
		return text
	}
	return text + strings.Repeat(" ", width-actual)
}

// Colorize wraps text in the given color sequence
func Colorize(color, text string) string {
	return color + text + ColorReset
}
