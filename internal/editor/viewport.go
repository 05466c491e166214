package editor

// Viewport is the window of the document shown on screen. RowOffset is the
// first visible document row; ColOffset is the first visible screen cell of
// the render form, which is the render column unless wide runes precede it.
type Viewport struct {
	RowOffset  int
	ColOffset  int
	ScreenRows int // Text rows available (terminal height minus the two bars)
	ScreenCols int
}

func NewViewport(screenRows, screenCols int) *Viewport {
	v := &Viewport{}
	v.Resize(screenRows, screenCols)
	return v
}

// Resize updates the viewport for new terminal dimensions. Offsets are left
// alone; the next Scroll re-establishes cursor visibility.
func (v *Viewport) Resize(screenRows, screenCols int) {
	if screenRows < 1 {
		screenRows = 1
	}
	if screenCols < 1 {
		screenCols = 1
	}
	v.ScreenRows = screenRows
	v.ScreenCols = screenCols
}

// Scroll adjusts both offsets by the minimum amount needed to bring the
// cursor's row and render column back inside the window.
func (v *Viewport) Scroll(cursorRow, renderCol int) {
	ensureVisible(cursorRow, &v.RowOffset, v.ScreenRows)
	ensureVisible(renderCol, &v.ColOffset, v.ScreenCols)
}

// ensureVisible adjusts offset so pos lies in [offset, offset+size).
func ensureVisible(pos int, offset *int, size int) {
	if size <= 0 {
		return
	}
	if pos < *offset {
		*offset = pos
	}
	if pos >= *offset+size {
		*offset = pos - size + 1
	}
	if *offset < 0 {
		*offset = 0
	}
}

// Contains reports whether the document position (row, renderCol) is on
// screen.
func (v *Viewport) Contains(row, renderCol int) bool {
	return row >= v.RowOffset && row < v.RowOffset+v.ScreenRows &&
		renderCol >= v.ColOffset && renderCol < v.ColOffset+v.ScreenCols
}
