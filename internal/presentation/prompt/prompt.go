package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-pomodoro/internal/util"
)

// DefaultTaskName is used when the user enters nothing
const DefaultTaskName = "Task"

const maxTaskNameWidth = 60

// TaskName asks for the task being worked on and reads one line from r.
// Blank input, read errors and EOF all fall back to DefaultTaskName.
func TaskName(r io.Reader, w io.Writer, question string) string {
	if question != "" {
		fmt.Fprint(w, question)
	}

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			util.LogWarnf("Task name input failed: %v", err)
		}
		return DefaultTaskName
	}

	name := strings.TrimSpace(scanner.Text())
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, name)

	if name == "" {
		return DefaultTaskName
	}
	return util.TruncateToWidth(name, maxTaskNameWidth)
}
