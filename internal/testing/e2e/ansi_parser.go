package e2e

import (
	"regexp"
	"strings"
)

// ANSI escape code patterns
var (
	ansiEscape = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)
)

// StripANSI removes all ANSI escape codes from a string
func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// VisibleLines replays output the way a terminal would for carriage
// returns, line feeds and "clear line", and returns the resulting rows
// with trailing spaces removed. Other escape sequences and control
// characters are dropped.
func VisibleLines(output string) []string {
	var (
		lines   []string
		line    []rune
		cursorX int
	)

	runes := []rune(output)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\x1b' && i+1 < len(runes) && runes[i+1] == '[':
			j := i + 2
			for j < len(runes) && !isFinalByte(runes[j]) {
				j++
			}
			if j < len(runes) && runes[j] == 'K' && string(runes[i+2:j]) == "2" {
				line = line[:0]
			}
			i = j
		case r == '\r':
			cursorX = 0
		case r == '\n':
			lines = append(lines, strings.TrimRight(string(line), " "))
			line = line[:0]
			cursorX = 0
		case r < 0x20 || r == 0x7f:
			// bell and other controls do not print
		default:
			if cursorX < len(line) {
				line[cursorX] = r
			} else {
				for len(line) < cursorX {
					line = append(line, ' ')
				}
				line = append(line, r)
			}
			cursorX++
		}
	}

	return append(lines, strings.TrimRight(string(line), " "))
}

// CurrentLine returns the row the cursor is on after replaying output
func CurrentLine(output string) string {
	lines := VisibleLines(output)
	return lines[len(lines)-1]
}

func isFinalByte(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
