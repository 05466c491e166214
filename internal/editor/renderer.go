package editor

import (
	"fmt"
	"strings"
)

// Renderer builds a frame buffer and writes it to the terminal in one go.
type Renderer struct {
	buf     strings.Builder
	Version string
}

func NewRenderer(version string) *Renderer {
	return &Renderer{Version: version}
}

// RenderFrame draws the text rows, the status bar and the message bar, then
// places the cursor. The caller must have run Editor.Scroll for this frame.
func (r *Renderer) RenderFrame(ed *Editor, sb *StatusBar, filename string) string {
	r.buf.Reset()

	// Hide cursor during drawing, then home.
	r.buf.WriteString("\x1b[?25l")
	r.buf.WriteString("\x1b[H")

	r.renderRows(ed)
	r.renderStatusBar(ed, sb, filename)
	r.renderMessageBar(ed, sb)

	row, col := ed.CursorScreenPos()
	r.buf.WriteString(fmt.Sprintf("\x1b[%d;%dH", row+1, col+1))

	r.buf.WriteString("\x1b[?25h")
	return r.buf.String()
}

func (r *Renderer) renderRows(ed *Editor) {
	vp := ed.View
	lines := ed.VisibleLines()
	for y := 0; y < vp.ScreenRows; y++ {
		if y < len(lines) {
			r.buf.WriteString(lines[y])
		} else if ed.Doc.NumRows() == 0 && y == vp.ScreenRows/3 {
			r.renderWelcome(vp.ScreenCols)
		} else {
			r.buf.WriteString("~")
		}
		r.buf.WriteString("\x1b[K\r\n")
	}
}

func (r *Renderer) renderWelcome(width int) {
	welcome := FitMessage(fmt.Sprintf("kite editor -- version %s", r.Version), width)
	padding := (width - len([]rune(welcome))) / 2
	if padding > 0 {
		r.buf.WriteString("~")
		padding--
	}
	r.buf.WriteString(strings.Repeat(" ", padding))
	r.buf.WriteString(welcome)
}

func (r *Renderer) renderStatusBar(ed *Editor, sb *StatusBar, filename string) {
	left := sb.FormatLeft(filename, ed.Doc.NumRows(), ed.Doc.Dirty())
	right := sb.FormatRight(ed.Cursor.Row, ed.Doc.NumRows())

	// Reverse video for status bar.
	r.buf.WriteString("\x1b[7m")
	r.buf.WriteString(Compose(left, right, ed.View.ScreenCols))
	r.buf.WriteString("\x1b[m\r\n")
}

func (r *Renderer) renderMessageBar(ed *Editor, sb *StatusBar) {
	r.buf.WriteString("\x1b[K")
	r.buf.WriteString(FitMessage(sb.VisibleMessage(), ed.View.ScreenCols))
}
