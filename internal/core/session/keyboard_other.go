//go:build !darwin && !linux

package session

import (
	"golang.org/x/term"
)

// enableRawMode uses x/term where termios ioctls are not available. Ctrl+C
// then arrives as KeyInterrupt instead of a signal.
func enableRawMode(fd int) (func() error, error) {
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}

	return func() error {
		return term.Restore(fd, oldState)
	}, nil
}
