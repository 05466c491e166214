package terminal

import (
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// readTimeout is how long a read waits for input, in tenths of a second.
// Reads return empty-handed after it so the caller can service SIGWINCH.
const readTimeout = 1

// Terminal manages raw mode, the alternate screen buffer and terminal
// dimensions, and turns stdin into a queue of input events.
type Terminal struct {
	in       *os.File
	out      *os.File
	oldState *term.State
	width    int
	height   int
	sigwinch chan os.Signal

	buf     [256]byte
	carry   []byte // Incomplete UTF-8 sequence from the previous read
	pending []InputEvent
}

// NewTerminal puts stdin into raw mode and switches stdout to the alternate
// screen. Callers must Restore before exiting.
func NewTerminal() (*Terminal, error) {
	t := &Terminal{in: os.Stdin, out: os.Stdout}

	oldState, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return nil, err
	}
	t.oldState = oldState

	if err := setReadTimeout(int(t.in.Fd()), readTimeout); err != nil {
		t.Restore()
		return nil, err
	}

	// Alternate screen, hidden cursor.
	t.out.WriteString("\x1b[?1049h")
	t.out.WriteString("\x1b[?25l")

	// SGR mouse protocol: button events + extended coordinates.
	t.out.WriteString("\x1b[?1000h")
	t.out.WriteString("\x1b[?1006h")

	t.width, t.height, err = term.GetSize(int(t.out.Fd()))
	if err != nil {
		t.Restore()
		return nil, err
	}

	t.sigwinch = make(chan os.Signal, 1)
	signal.Notify(t.sigwinch, syscall.SIGWINCH)

	return t, nil
}

// Resize re-queries terminal dimensions. Returns true if the size changed.
func (t *Terminal) Resize() bool {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return false
	}
	changed := w != t.width || h != t.height
	t.width = w
	t.height = h
	return changed
}

// Width returns the current terminal width.
func (t *Terminal) Width() int { return t.width }

// Height returns the current terminal height.
func (t *Terminal) Height() int { return t.height }

// SigwinchChan returns the channel that receives SIGWINCH signals.
func (t *Terminal) SigwinchChan() <-chan os.Signal {
	return t.sigwinch
}

// Writer returns the stream frames are written to.
func (t *Terminal) Writer() io.Writer { return t.out }

// Restore returns the terminal to its original state.
func (t *Terminal) Restore() {
	t.out.WriteString("\x1b[?1006l")
	t.out.WriteString("\x1b[?1000l")
	// Clear, show cursor, leave the alternate screen.
	t.out.WriteString("\x1b[2J\x1b[H")
	t.out.WriteString("\x1b[?25h")
	t.out.WriteString("\x1b[?1049l")
	if t.oldState != nil {
		term.Restore(int(t.in.Fd()), t.oldState)
	}
	if t.sigwinch != nil {
		signal.Stop(t.sigwinch)
	}
}

// setReadTimeout makes reads on fd return after at most tenths/10 seconds,
// with zero bytes if nothing arrived.
func setReadTimeout(fd int, tenths uint8) error {
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return err
	}
	termios.Cc[unix.VMIN] = 0
	termios.Cc[unix.VTIME] = tenths
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, termios)
}

// ReadEvent returns the next input event. It waits at most the read timeout
// for input; ok is false when none arrived.
func (t *Terminal) ReadEvent() (event InputEvent, ok bool, err error) {
	if len(t.pending) == 0 {
		n, err := unix.Read(int(t.in.Fd()), t.buf[:])
		if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
			return InputEvent{}, false, nil
		}
		if err != nil {
			return InputEvent{}, false, err
		}
		if n == 0 {
			return InputEvent{}, false, nil
		}
		t.pending, t.carry = splitEvents(append(t.carry, t.buf[:n]...))
	}
	if len(t.pending) == 0 {
		return InputEvent{}, false, nil
	}
	event = t.pending[0]
	t.pending = t.pending[1:]
	return event, true, nil
}

// Buffered returns the number of decoded events not yet returned by
// ReadEvent.
func (t *Terminal) Buffered() int { return len(t.pending) }
