package editor

// Direction is one of the four arrow-key moves.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Cursor is a position in raw-content coordinates. Row may equal the number
// of rows in the document, meaning the virtual line past the end; Col is 0
// there.
type Cursor struct {
	Row int
	Col int
}

// Move applies one directional move against d and re-clamps the column to
// the length of the row the cursor lands on.
func (c *Cursor) Move(d *Document, dir Direction) {
	switch dir {
	case DirLeft:
		if c.Col > 0 {
			c.Col--
		} else if c.Row > 0 {
			c.Row--
			c.Col = d.RowLen(c.Row)
		}
	case DirRight:
		if row := d.Row(c.Row); row != nil {
			if c.Col < row.Len() {
				c.Col++
			} else if c.Col == row.Len() {
				c.Row++
				c.Col = 0
			}
		}
	case DirUp:
		if c.Row > 0 {
			c.Row--
		}
	case DirDown:
		if c.Row < d.NumRows() {
			c.Row++
		}
	}
	c.Clamp(d)
}

// Clamp pulls the cursor back inside d after a row count or row length
// change.
func (c *Cursor) Clamp(d *Document) {
	if c.Row > d.NumRows() {
		c.Row = d.NumRows()
	}
	if c.Row < 0 {
		c.Row = 0
	}
	if n := d.RowLen(c.Row); c.Col > n {
		c.Col = n
	}
	if c.Col < 0 {
		c.Col = 0
	}
}
