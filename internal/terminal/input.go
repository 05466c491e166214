package terminal

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

// Key types.
const (
	KeyRune      = iota // Printable character or tab
	KeyEscape           // Escape key (standalone)
	KeyEnter            // Enter/Return
	KeyBackspace        // Backspace, Ctrl+H
	KeyDelete           // Delete/Forward-delete
	KeyUp               // Arrow up
	KeyDown             // Arrow down
	KeyLeft             // Arrow left
	KeyRight            // Arrow right
	KeyHome             // Home
	KeyEnd              // End
	KeyPgUp             // Page Up
	KeyPgDn             // Page Down
	KeyCtrlF            // Ctrl+F
	KeyCtrlL            // Ctrl+L
	KeyCtrlQ            // Ctrl+Q
	KeyCtrlS            // Ctrl+S
	KeyCtrlX            // Ctrl+X
	KeyUnknown          // Unrecognised sequence
)

// Key is a decoded logical key press.
type Key struct {
	Type int
	Rune rune
}

// Event types.
const (
	EventKey = iota
	EventMouse
)

// MouseButton types.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
	MouseUnknown
)

// MouseEvent represents a mouse input event.
type MouseEvent struct {
	Button MouseButton
	Row    int  // 1-based terminal row
	Col    int  // 1-based terminal column
	Press  bool // true for press, false for release
}

// InputEvent wraps either a key or mouse event.
type InputEvent struct {
	Type  int // EventKey or EventMouse
	Key   Key
	Mouse MouseEvent
}

// ctrl maps a letter to the byte its Ctrl chord produces.
func ctrl(k byte) byte { return k & 0x1f }

// ParseInput decodes everything in one read from the terminal. A read can
// hold several events when keys arrive faster than they are consumed or
// text is pasted.
func ParseInput(buf []byte) []InputEvent {
	var events []InputEvent
	for len(buf) > 0 {
		ev, n := nextEvent(buf)
		events = append(events, ev)
		buf = buf[n:]
	}
	return events
}

// splitEvents is ParseInput for a stream: a UTF-8 sequence cut off at the
// end of buf is returned as rest instead of being decoded.
func splitEvents(buf []byte) (events []InputEvent, rest []byte) {
	for len(buf) > 0 {
		if buf[0] >= utf8.RuneSelf && !utf8.FullRune(buf) {
			return events, buf
		}
		ev, n := nextEvent(buf)
		events = append(events, ev)
		buf = buf[n:]
	}
	return events, nil
}

// nextEvent decodes the first event in buf and reports how many bytes it
// used. It always uses at least one byte of a non-empty buf.
func nextEvent(buf []byte) (InputEvent, int) {
	if len(buf) == 0 {
		return keyEvent(Key{Type: KeyUnknown}), 0
	}
	if buf[0] == 27 {
		return escapeEvent(buf)
	}
	if buf[0] < utf8.RuneSelf {
		return keyEvent(controlKey(buf[0])), 1
	}
	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError || unicode.IsControl(r) {
		return keyEvent(Key{Type: KeyUnknown}), size
	}
	return keyEvent(Key{Type: KeyRune, Rune: r}), size
}

func keyEvent(k Key) InputEvent {
	return InputEvent{Type: EventKey, Key: k}
}

// controlKey decodes a single ASCII byte.
func controlKey(b byte) Key {
	switch {
	case b == '\r':
		return Key{Type: KeyEnter}
	case b == 127 || b == ctrl('h'):
		return Key{Type: KeyBackspace}
	case b == '\t':
		return Key{Type: KeyRune, Rune: '\t'}
	case b == ctrl('f'):
		return Key{Type: KeyCtrlF}
	case b == ctrl('l'):
		return Key{Type: KeyCtrlL}
	case b == ctrl('q'):
		return Key{Type: KeyCtrlQ}
	case b == ctrl('s'):
		return Key{Type: KeyCtrlS}
	case b == ctrl('x'):
		return Key{Type: KeyCtrlX}
	case b >= 32 && b < 127:
		return Key{Type: KeyRune, Rune: rune(b)}
	}
	return Key{Type: KeyUnknown}
}

// escapeEvent decodes a sequence starting with ESC. An ESC that does not
// start a recognised sequence is a lone Escape key and uses one byte.
func escapeEvent(buf []byte) (InputEvent, int) {
	if len(buf) < 2 {
		return keyEvent(Key{Type: KeyEscape}), 1
	}
	switch buf[1] {
	case '[':
		if len(buf) >= 3 && buf[2] == '<' {
			end := bytes.IndexAny(buf, "Mm")
			if end < 0 {
				return keyEvent(Key{Type: KeyUnknown}), len(buf)
			}
			if mouse, ok := parseMouseEvent(buf[:end+1]); ok {
				return InputEvent{Type: EventMouse, Mouse: mouse}, end + 1
			}
			return keyEvent(Key{Type: KeyUnknown}), end + 1
		}
		// Parameter and intermediate bytes run up to a final byte in @..~.
		for i := 2; i < len(buf); i++ {
			if buf[i] >= 0x40 && buf[i] <= 0x7e {
				return keyEvent(parseCSI(buf[2 : i+1])), i + 1
			}
		}
		return keyEvent(Key{Type: KeyEscape}), len(buf)
	case 'O':
		if len(buf) < 3 {
			return keyEvent(Key{Type: KeyEscape}), 2
		}
		switch buf[2] {
		case 'H':
			return keyEvent(Key{Type: KeyHome}), 3
		case 'F':
			return keyEvent(Key{Type: KeyEnd}), 3
		}
		return keyEvent(Key{Type: KeyEscape}), 3
	}
	return keyEvent(Key{Type: KeyEscape}), 1
}

// parseKey decodes the first key in buf.
func parseKey(buf []byte) Key {
	ev, _ := nextEvent(buf)
	return ev.Key
}

// parseCSI decodes the part of an escape sequence after "ESC [", up to and
// including the final byte.
func parseCSI(seq []byte) Key {
	if len(seq) == 0 {
		return Key{Type: KeyEscape}
	}
	switch seq[0] {
	case 'A':
		return Key{Type: KeyUp}
	case 'B':
		return Key{Type: KeyDown}
	case 'C':
		return Key{Type: KeyRight}
	case 'D':
		return Key{Type: KeyLeft}
	case 'H':
		return Key{Type: KeyHome}
	case 'F':
		return Key{Type: KeyEnd}
	}

	// ESC [ <n> ~
	if len(seq) >= 2 && seq[1] == '~' {
		switch seq[0] {
		case '1', '7':
			return Key{Type: KeyHome}
		case '3':
			return Key{Type: KeyDelete}
		case '4', '8':
			return Key{Type: KeyEnd}
		case '5':
			return Key{Type: KeyPgUp}
		case '6':
			return Key{Type: KeyPgDn}
		}
	}
	return Key{Type: KeyEscape}
}

// parseMouseEvent parses an SGR mouse sequence: ESC [ < Cb ; Cx ; Cy M|m
func parseMouseEvent(buf []byte) (MouseEvent, bool) {
	// Shortest valid form is ESC[<0;1;1M.
	if len(buf) < 9 {
		return MouseEvent{}, false
	}
	if buf[0] != 27 || buf[1] != '[' || buf[2] != '<' {
		return MouseEvent{}, false
	}

	i := 3
	var fields [3]int
	for f := range fields {
		start := i
		for i < len(buf) && buf[i] >= '0' && buf[i] <= '9' {
			fields[f] = fields[f]*10 + int(buf[i]-'0')
			i++
		}
		if i == start || i >= len(buf) {
			return MouseEvent{}, false
		}
		if f < 2 {
			if buf[i] != ';' {
				return MouseEvent{}, false
			}
			i++
		}
	}

	var press bool
	switch buf[i] {
	case 'M':
		press = true
	case 'm':
		press = false
	default:
		return MouseEvent{}, false
	}

	button := fields[0]
	var btn MouseButton
	switch {
	case button == 64:
		btn = MouseWheelUp
	case button == 65:
		btn = MouseWheelDown
	case button >= 64:
		btn = MouseUnknown
	default:
		switch button & 0x03 {
		case 0:
			btn = MouseLeft
		case 1:
			btn = MouseMiddle
		case 2:
			btn = MouseRight
		default:
			btn = MouseUnknown
		}
	}

	return MouseEvent{
		Button: btn,
		Col:    fields[1],
		Row:    fields[2],
		Press:  press,
	}, true
}
