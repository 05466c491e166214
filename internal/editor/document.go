package editor

import "strings"

// Document owns the ordered rows of the file being edited and tracks whether
// they differ from what was last saved. Row indices are always contiguous.
type Document struct {
	rows    []*Row
	dirty   bool
	tabStop int
}

// NewDocument returns an empty document that expands tabs to tabStop.
func NewDocument(tabStop int) *Document {
	if tabStop <= 0 {
		tabStop = DefaultTabStop
	}
	return &Document{tabStop: tabStop}
}

// NumRows returns the number of rows.
func (d *Document) NumRows() int { return len(d.rows) }

// TabStop returns the tab width used for rendering.
func (d *Document) TabStop() int { return d.tabStop }

// Row returns the row at index i, or nil when i is out of range.
func (d *Document) Row(i int) *Row {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return d.rows[i]
}

// RowLen returns the raw length of row i, or 0 for an index past the end.
func (d *Document) RowLen(i int) int {
	if r := d.Row(i); r != nil {
		return r.Len()
	}
	return 0
}

// Dirty reports whether the document has unsaved changes.
func (d *Document) Dirty() bool { return d.dirty }

// MarkSaved acknowledges a successful save.
func (d *Document) MarkSaved() { d.dirty = false }

// InsertRow inserts a copy of content as a new row at index at, shifting the
// rows at and below it down by one. at must be in [0, NumRows()]; anything
// else is ignored.
func (d *Document) InsertRow(at int, content string) {
	d.insertRow(at, []rune(content))
}

func (d *Document) insertRow(at int, content []rune) {
	if at < 0 || at > len(d.rows) {
		return
	}
	d.rows = append(d.rows, nil)
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = newRow(content, d.tabStop)
	d.dirty = true
}

// DeleteRow removes row at, shifting the rows below it up by one. at must be
// in [0, NumRows()); anything else is ignored.
func (d *Document) DeleteRow(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}
	copy(d.rows[at:], d.rows[at+1:])
	d.rows[len(d.rows)-1] = nil
	d.rows = d.rows[:len(d.rows)-1]
	d.dirty = true
}

func (d *Document) insertRune(row, col int, ch rune) {
	r := d.Row(row)
	if r == nil || col < 0 || col > r.Len() {
		return
	}
	r.insertRune(col, ch, d.tabStop)
	d.dirty = true
}

func (d *Document) deleteRune(row, col int) {
	r := d.Row(row)
	if r == nil || col < 0 || col >= r.Len() {
		return
	}
	r.deleteRune(col, d.tabStop)
	d.dirty = true
}

// splitRow cuts row at col, moving the tail into a new row directly below.
func (d *Document) splitRow(row, col int) {
	r := d.Row(row)
	if r == nil || col < 0 || col > r.Len() {
		return
	}
	d.insertRow(row+1, r.chars[col:])
	r.truncate(col, d.tabStop)
}

// joinRows appends row+1 onto row and deletes row+1.
func (d *Document) joinRows(row int) {
	if row < 0 || row+1 >= len(d.rows) {
		return
	}
	d.rows[row].appendRunes(d.rows[row+1].chars, d.tabStop)
	d.DeleteRow(row + 1)
}

// RenderColumn converts a raw column on row into its render column. It
// returns 0 for rows past the end of the document.
func (d *Document) RenderColumn(row, rawCol int) int {
	r := d.Row(row)
	if r == nil || rawCol <= 0 {
		return 0
	}
	return RawToRenderCol(r.chars, rawCol, d.tabStop)
}

// RawColumn converts a render column on row back into a raw column.
func (d *Document) RawColumn(row, renderCol int) int {
	r := d.Row(row)
	if r == nil || renderCol <= 0 {
		return 0
	}
	return RenderToRawCol(r.chars, renderCol, d.tabStop)
}

// CellColumn converts a render column on row into the screen cell it starts
// at. Rows past the end of the document have only cell 0.
func (d *Document) CellColumn(row, renderCol int) int {
	r := d.Row(row)
	if r == nil || renderCol <= 0 {
		return 0
	}
	return r.cellColumn(renderCol)
}

// RenderColumnAt converts a screen cell on row back into a render column.
func (d *Document) RenderColumnAt(row, cell int) int {
	r := d.Row(row)
	if r == nil || cell <= 0 {
		return 0
	}
	return r.renderColumnAt(cell)
}

// OpenWith replaces the document contents with lines, which must already
// have their line terminators stripped. The result counts as saved.
func (d *Document) OpenWith(lines []string) {
	d.rows = nil
	for _, line := range lines {
		d.InsertRow(len(d.rows), line)
	}
	d.dirty = false
}

// Serialize joins the raw rows with '\n', ending the last row with '\n' too.
func (d *Document) Serialize() ([]byte, int) {
	var b strings.Builder
	for _, r := range d.rows {
		b.WriteString(string(r.chars))
		b.WriteByte('\n')
	}
	out := []byte(b.String())
	return out, len(out)
}

// Lines returns a copy of the raw content of every row.
func (d *Document) Lines() []string {
	lines := make([]string, len(d.rows))
	for i, r := range d.rows {
		lines[i] = r.String()
	}
	return lines
}
