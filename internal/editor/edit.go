package editor

// InsertChar inserts ch at the cursor and advances the cursor. On the
// virtual row past the end, an empty row is appended first so there is a
// concrete row to edit.
func (e *Editor) InsertChar(ch rune) {
	if e.Cursor.Row == e.Doc.NumRows() {
		e.Doc.InsertRow(e.Doc.NumRows(), "")
	}
	e.Doc.insertRune(e.Cursor.Row, e.Cursor.Col, ch)
	e.Cursor.Col++
}

// DeleteChar deletes the character before the cursor (backspace). At the
// start of a row it joins the row onto the previous one and leaves the cursor
// at the join point.
func (e *Editor) DeleteChar() {
	if e.Cursor.Row == e.Doc.NumRows() {
		return
	}
	if e.Cursor.Row == 0 && e.Cursor.Col == 0 {
		return
	}

	if e.Cursor.Col > 0 {
		e.Doc.deleteRune(e.Cursor.Row, e.Cursor.Col-1)
		e.Cursor.Col--
		return
	}

	prevLen := e.Doc.RowLen(e.Cursor.Row - 1)
	e.Doc.joinRows(e.Cursor.Row - 1)
	e.Cursor.Row--
	e.Cursor.Col = prevLen
}

// DeleteForward deletes the character under the cursor (Delete key) by
// stepping right and deleting backwards.
func (e *Editor) DeleteForward() {
	e.MoveCursor(DirRight)
	e.DeleteChar()
}

// InsertNewline breaks the row at the cursor. At column 0 a blank row is
// inserted above the current one; otherwise the tail of the row moves to a
// new row below. Either way the cursor ends at the start of the next row.
func (e *Editor) InsertNewline() {
	if e.Cursor.Col == 0 {
		e.Doc.InsertRow(e.Cursor.Row, "")
	} else {
		e.Doc.splitRow(e.Cursor.Row, e.Cursor.Col)
	}
	e.Cursor.Row++
	e.Cursor.Col = 0
}
