package editor

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/JackWReid/kite/internal/terminal"
)

const maxStatusName = 20

// StatusBar formats the status line and owns the message line and the text
// typed into an active prompt.
type StatusBar struct {
	Message     string
	MessageTime time.Time
	Timeout     time.Duration

	PromptLabel string // e.g. "Save as: "; empty when no prompt is active
	PromptText  string

	now func() time.Time
}

func NewStatusBar(timeout time.Duration) *StatusBar {
	return &StatusBar{Timeout: timeout, now: time.Now}
}

// SetMessage sets the message line and restarts its timeout.
func (s *StatusBar) SetMessage(format string, args ...any) {
	s.Message = fmt.Sprintf(format, args...)
	s.MessageTime = s.now()
}

// ClearMessage clears the message line.
func (s *StatusBar) ClearMessage() {
	s.Message = ""
}

// VisibleMessage returns the message line if it has not timed out.
func (s *StatusBar) VisibleMessage() string {
	if s.Message == "" || s.now().Sub(s.MessageTime) >= s.Timeout {
		return ""
	}
	return s.Message
}

// FormatLeft returns the left-aligned portion of the status bar.
func (s *StatusBar) FormatLeft(filename string, numRows int, dirty bool) string {
	name := filename
	if name == "" {
		name = "[No Name]"
	}
	name = runewidth.Truncate(name, maxStatusName, "")
	modified := ""
	if dirty {
		modified = " (modified)"
	}
	return fmt.Sprintf("%s - %d lines%s", name, numRows, modified)
}

// FormatRight returns the right-aligned portion of the status bar.
func (s *StatusBar) FormatRight(cursorRow, numRows int) string {
	return fmt.Sprintf("%d/%d", cursorRow+1, numRows)
}

// Compose lays left and right out across width cells. The right side is
// dropped when both do not fit; the left side is truncated last.
func Compose(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	left = runewidth.Truncate(left, width, "")
	lw := runewidth.StringWidth(left)
	rw := runewidth.StringWidth(right)
	if lw+rw > width {
		return runewidth.FillRight(left, width)
	}
	return left + strings.Repeat(" ", width-lw-rw) + right
}

// FitMessage trims msg to width cells.
func FitMessage(msg string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(msg, width, "")
}

// StartPrompt begins a prompt with the given label.
func (s *StatusBar) StartPrompt(label string) {
	s.PromptLabel = label
	s.PromptText = ""
	s.SetMessage("%s", label)
}

// ClearPrompt resets the prompt state.
func (s *StatusBar) ClearPrompt() {
	s.PromptLabel = ""
	s.PromptText = ""
	s.ClearMessage()
}

// HandlePromptKey processes a keypress during an active prompt.
// Returns (input string, done bool, cancelled bool). Enter on empty input is
// ignored.
func (s *StatusBar) HandlePromptKey(key terminal.Key) (string, bool, bool) {
	switch key.Type {
	case terminal.KeyEscape, terminal.KeyCtrlX:
		s.ClearPrompt()
		return "", false, true
	case terminal.KeyEnter:
		if s.PromptText == "" {
			return "", false, false
		}
		text := s.PromptText
		s.ClearPrompt()
		return text, true, false
	case terminal.KeyBackspace, terminal.KeyDelete:
		if len(s.PromptText) > 0 {
			runes := []rune(s.PromptText)
			s.PromptText = string(runes[:len(runes)-1])
		}
	case terminal.KeyRune:
		if key.Rune >= 32 && key.Rune < 127 {
			s.PromptText += string(key.Rune)
		}
	}
	s.SetMessage("%s%s", s.PromptLabel, s.PromptText)
	return "", false, false
}
