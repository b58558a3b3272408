package session

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin cannot be switched to raw mode
var ErrNotTerminal = errors.New("stdin is not a terminal")

// KeyInterrupt is the byte sent by Ctrl+C when the terminal does not turn it into a signal
const KeyInterrupt rune = 3

// KeyEvent represents a keyboard event
type KeyEvent struct {
	Key  rune
	Type KeyType
}

// KeyType represents the type of key pressed
type KeyType int

const (
	KeyChar KeyType = iota
	KeyEscape
)

// KeyboardReader reads single key presses from a raw-mode terminal. A
// background goroutine performs the blocking reads and queues events;
// Poll never blocks.
type KeyboardReader struct {
	in      io.Reader
	restore func() error
	input   chan KeyEvent
	stop    chan struct{}
}

// NewKeyboardReader switches stdin to raw mode and starts reading keys
func NewKeyboardReader() (*KeyboardReader, error) {
	return openKeyboardReader(os.Stdin)
}

func openKeyboardReader(f *os.File) (*KeyboardReader, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	restore, err := enableRawMode(fd)
	if err != nil {
		return nil, err
	}

	kr := newKeyboardReader(f)
	kr.restore = restore

	go kr.readInput()

	return kr, nil
}

func newKeyboardReader(in io.Reader) *KeyboardReader {
	return &KeyboardReader{
		in:    in,
		input: make(chan KeyEvent, 10),
		stop:  make(chan struct{}),
	}
}

// readInput reads keyboard input in a goroutine. Every byte of a read is
// queued as its own key; the loop ends on any read error.
func (kr *KeyboardReader) readInput() {
	buf := make([]byte, 64)

	for {
		select {
		case <-kr.stop:
			return
		default:
		}

		n, err := kr.in.Read(buf)
		for _, event := range parseInput(buf[:n]) {
			select {
			case kr.input <- event:
			case <-kr.stop:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// parseInput splits raw keyboard input into key events. Escape sequences
// such as arrow keys (ESC [ x, ESC O x) are dropped; a lone ESC is kept.
func parseInput(buf []byte) []KeyEvent {
	var events []KeyEvent

	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b == 27 { // ESC
			if i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
				i += 2
				continue
			}
			events = append(events, KeyEvent{Key: 27, Type: KeyEscape})
			continue
		}
		events = append(events, KeyEvent{Key: rune(b), Type: KeyChar})
	}

	return events
}

// Poll returns the next queued key press, if any, without blocking
func (kr *KeyboardReader) Poll() (KeyEvent, bool) {
	select {
	case ev := <-kr.input:
		return ev, true
	default:
		return KeyEvent{}, false
	}
}

// Close stops the keyboard reader and restores the terminal
func (kr *KeyboardReader) Close() error {
	close(kr.stop)
	if kr.restore == nil {
		return nil
	}
	return kr.restore()
}
