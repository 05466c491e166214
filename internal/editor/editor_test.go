package editor

import (
	"fmt"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func numberedLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return lines
}

func TestHomeEnd(t *testing.T) {
	ed := newTestEditor("hello", "x")
	ed.Cursor = Cursor{Row: 0, Col: 2}

	ed.End()
	assert.Equal(t, Cursor{Row: 0, Col: 5}, ed.Cursor)
	ed.Home()
	assert.Equal(t, Cursor{Row: 0, Col: 0}, ed.Cursor)

	ed.Cursor = Cursor{Row: 2, Col: 0}
	ed.End()
	assert.Equal(t, Cursor{Row: 2, Col: 0}, ed.Cursor, "End on the virtual row is a no-op")
}

func TestPageDown(t *testing.T) {
	ed := newTestEditor(numberedLines(40)...)

	ed.PageDown()
	assert.Equal(t, 19, ed.Cursor.Row)

	ed.View.RowOffset = 35
	ed.PageDown()
	assert.Equal(t, 40, ed.Cursor.Row, "paging past the end stops on the virtual row")
	assert.Equal(t, 0, ed.Cursor.Col)
}

func TestPageUp(t *testing.T) {
	ed := newTestEditor(numberedLines(40)...)
	ed.Cursor = Cursor{Row: 20, Col: 6}
	ed.View.RowOffset = 15

	ed.PageUp()
	assert.Equal(t, Cursor{Row: 5, Col: 6}, ed.Cursor)

	ed.View.RowOffset = 3
	ed.PageUp()
	assert.Equal(t, 0, ed.Cursor.Row)
}

func TestPageKeepsColumnInRange(t *testing.T) {
	ed := newTestEditor("a very long first line", "short")
	ed.Cursor = Cursor{Row: 0, Col: 20}
	ed.PageDown()
	assert.Equal(t, Cursor{Row: 2, Col: 0}, ed.Cursor)
}

func TestClickAt(t *testing.T) {
	ed := newTestEditor("a\tb", "xyz")

	ed.ClickAt(0, 5)
	assert.Equal(t, Cursor{Row: 0, Col: 1}, ed.Cursor, "click inside a tab lands on the tab")

	ed.ClickAt(1, 15)
	assert.Equal(t, Cursor{Row: 1, Col: 3}, ed.Cursor, "click past the end lands on the row end")

	ed.ClickAt(6, 4)
	assert.Equal(t, Cursor{Row: 2, Col: 0}, ed.Cursor, "click below the text lands on the virtual row")

	ed.ClickAt(10, 0)
	ed.ClickAt(-1, 0)
	assert.Equal(t, Cursor{Row: 2, Col: 0}, ed.Cursor, "clicks outside the text area are ignored")
}

func TestClickAtHonoursOffsets(t *testing.T) {
	ed := newTestEditor(numberedLines(30)...)
	ed.View.RowOffset, ed.View.ColOffset = 12, 2

	ed.ClickAt(3, 1)
	assert.Equal(t, Cursor{Row: 15, Col: 3}, ed.Cursor)
}

func TestVisibleLines(t *testing.T) {
	ed := New(3, 4, DefaultTabStop)
	ed.Open([]string{"abcdef", "\tx", "short", "hidden"})

	ed.View.ColOffset = 2
	assert.Equal(t, []string{"cdef", "    ", "ort"}, ed.VisibleLines())

	ed.View.RowOffset = 2
	assert.Equal(t, []string{"ort", "dden"}, ed.VisibleLines())

	ed.View.ColOffset = 7
	assert.Equal(t, []string{"", ""}, ed.VisibleLines())
}

func TestScrollUsesRenderColumn(t *testing.T) {
	ed := New(5, 10, DefaultTabStop)
	ed.Open([]string{"\t\tx"})
	ed.Cursor = Cursor{Row: 0, Col: 2}

	ed.Scroll()
	assert.Equal(t, 16, ed.RenderColumn())
	assert.Equal(t, 7, ed.View.ColOffset)

	row, col := ed.CursorScreenPos()
	assert.Equal(t, 0, row)
	assert.Equal(t, 9, col)
}

func TestScrollOnVirtualRow(t *testing.T) {
	ed := New(2, 10, DefaultTabStop)
	ed.Open([]string{"a", "b", "c"})
	ed.View.ColOffset = 5
	ed.Cursor = Cursor{Row: 3, Col: 0}

	ed.Scroll()
	assert.Equal(t, 0, ed.RenderColumn())
	assert.Equal(t, 2, ed.View.RowOffset)
	assert.Equal(t, 0, ed.View.ColOffset)
}

func TestOpenResetsCursorAndView(t *testing.T) {
	ed := newTestEditor(numberedLines(50)...)
	ed.Cursor = Cursor{Row: 40, Col: 2}
	ed.Scroll()

	ed.Open([]string{"fresh"})
	assert.Equal(t, Cursor{}, ed.Cursor)
	assert.Equal(t, 0, ed.View.RowOffset)
	assert.Equal(t, []string{"fresh"}, ed.Doc.Lines())
}

func TestVisibleLinesClipsWideRunes(t *testing.T) {
	ed := New(3, 10, DefaultTabStop)
	ed.Open([]string{"日本語日本語日本語", "ab日"})

	lines := ed.VisibleLines()
	assert.Equal(t, "日本語日本", lines[0])
	assert.Equal(t, "ab日", lines[1])

	ed.View.ColOffset = 1
	lines = ed.VisibleLines()
	assert.Equal(t, " 本語日本 ", lines[0], "runes cut by an edge become spaces")
	for _, line := range lines {
		assert.LessOrEqual(t, runewidth.StringWidth(line), 10)
	}
}

func TestScrollWideRunes(t *testing.T) {
	ed := New(3, 10, DefaultTabStop)
	ed.Open([]string{"日本語日本語日本語"})

	ed.Cursor = Cursor{Row: 0, Col: 3}
	ed.Scroll()
	assert.Equal(t, 3, ed.RenderColumn())
	row, col := ed.CursorScreenPos()
	assert.Equal(t, 0, row)
	assert.Equal(t, 6, col)
	assert.Equal(t, 0, ed.View.ColOffset)

	ed.Cursor = Cursor{Row: 0, Col: 6}
	ed.Scroll()
	assert.Equal(t, 4, ed.View.ColOffset, "the whole glyph under the cursor is shown")
	_, col = ed.CursorScreenPos()
	assert.Equal(t, 8, col)
	assert.Equal(t, "語日本語日", ed.VisibleLines()[0])
}

func TestClickAtWideRunes(t *testing.T) {
	ed := newTestEditor("日本語x")

	ed.ClickAt(0, 3)
	assert.Equal(t, Cursor{Row: 0, Col: 1}, ed.Cursor, "second cell of a wide rune lands on that rune")

	ed.ClickAt(0, 6)
	assert.Equal(t, Cursor{Row: 0, Col: 3}, ed.Cursor)
}
