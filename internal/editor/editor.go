package editor

// Editor aggregates the document, the cursor and the viewport. Every piece of
// editing state lives here; there is no package-level editor.
type Editor struct {
	Doc    *Document
	Cursor Cursor
	View   *Viewport

	rx   int // cursor render column, computed by Scroll
	cell int // screen cell of rx; differs from rx only on rows with wide runes
}

// New returns an editor with an empty document sized for a text area of
// screenRows x screenCols.
func New(screenRows, screenCols, tabStop int) *Editor {
	return &Editor{
		Doc:  NewDocument(tabStop),
		View: NewViewport(screenRows, screenCols),
	}
}

// Open loads newline-stripped lines into the document and puts the cursor
// and viewport back at the top.
func (e *Editor) Open(lines []string) {
	e.Doc.OpenWith(lines)
	e.Cursor = Cursor{}
	e.View.RowOffset, e.View.ColOffset = 0, 0
	e.rx, e.cell = 0, 0
}

// Serialize returns the document as newline-terminated text.
func (e *Editor) Serialize() ([]byte, int) {
	return e.Doc.Serialize()
}

// Scroll recomputes the cursor render column and moves the viewport so the
// cursor is visible. It runs once per frame, before drawing. Horizontal
// offsets are screen cells, so a wide rune under the cursor is shown whole.
func (e *Editor) Scroll() {
	e.rx = e.Doc.RenderColumn(e.Cursor.Row, e.Cursor.Col)
	e.cell = e.Doc.CellColumn(e.Cursor.Row, e.rx)
	if row := e.Doc.Row(e.Cursor.Row); row != nil {
		e.View.Scroll(e.Cursor.Row, e.cell+row.glyphWidth(e.rx)-1)
	}
	e.View.Scroll(e.Cursor.Row, e.cell)
}

// RenderColumn returns the cursor render column from the last Scroll.
func (e *Editor) RenderColumn() int { return e.rx }

// VisibleLines returns the render text of the document rows inside the
// viewport, each trimmed to the visible columns. Screen rows past the end of
// the document are not included.
func (e *Editor) VisibleLines() []string {
	var lines []string
	for y := 0; y < e.View.ScreenRows; y++ {
		row := e.Doc.Row(e.View.RowOffset + y)
		if row == nil {
			break
		}
		lines = append(lines, row.window(e.View.ColOffset, e.View.ScreenCols))
	}
	return lines
}

// CursorScreenPos returns the 0-based screen position of the cursor.
func (e *Editor) CursorScreenPos() (row, col int) {
	return e.Cursor.Row - e.View.RowOffset, e.cell - e.View.ColOffset
}

// MoveCursor applies one arrow-key move.
func (e *Editor) MoveCursor(dir Direction) {
	e.Cursor.Move(e.Doc, dir)
}

// Home moves the cursor to the start of its row.
func (e *Editor) Home() {
	e.Cursor.Col = 0
}

// End moves the cursor to the end of its row. It does nothing on the
// virtual row past the end of the document.
func (e *Editor) End() {
	if e.Cursor.Row < e.Doc.NumRows() {
		e.Cursor.Col = e.Doc.RowLen(e.Cursor.Row)
	}
}

// PageUp jumps to the top of the window, then one screen further up.
func (e *Editor) PageUp() {
	e.Cursor.Row = e.View.RowOffset
	for i := 0; i < e.View.ScreenRows; i++ {
		e.Cursor.Move(e.Doc, DirUp)
	}
	e.Cursor.Clamp(e.Doc)
}

// PageDown jumps to the bottom of the window, then one screen further down.
func (e *Editor) PageDown() {
	e.Cursor.Row = e.View.RowOffset + e.View.ScreenRows - 1
	if e.Cursor.Row > e.Doc.NumRows() {
		e.Cursor.Row = e.Doc.NumRows()
	}
	for i := 0; i < e.View.ScreenRows; i++ {
		e.Cursor.Move(e.Doc, DirDown)
	}
	e.Cursor.Clamp(e.Doc)
}

// ClickAt moves the cursor to the document position under the 0-based
// screen cell (screenRow, screenCol). Clicks outside the text area are
// ignored.
func (e *Editor) ClickAt(screenRow, screenCol int) {
	if screenRow < 0 || screenRow >= e.View.ScreenRows || screenCol < 0 {
		return
	}
	row := e.View.RowOffset + screenRow
	if row > e.Doc.NumRows() {
		row = e.Doc.NumRows()
	}
	e.Cursor.Row = row
	renderCol := e.Doc.RenderColumnAt(row, e.View.ColOffset+screenCol)
	e.Cursor.Col = e.Doc.RawColumn(row, renderCol)
	e.Cursor.Clamp(e.Doc)
}
