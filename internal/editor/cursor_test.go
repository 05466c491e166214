package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorMove(t *testing.T) {
	doc := newTestDoc("hello", "hi", "", "longer line")

	tests := []struct {
		name  string
		start Cursor
		dir   Direction
		want  Cursor
	}{
		{"left within row", Cursor{0, 3}, DirLeft, Cursor{0, 2}},
		{"left wraps to previous row end", Cursor{1, 0}, DirLeft, Cursor{0, 5}},
		{"left at document start", Cursor{0, 0}, DirLeft, Cursor{0, 0}},
		{"left from virtual row", Cursor{4, 0}, DirLeft, Cursor{3, 11}},
		{"right within row", Cursor{0, 3}, DirRight, Cursor{0, 4}},
		{"right wraps to next row", Cursor{0, 5}, DirRight, Cursor{1, 0}},
		{"right from last row end to virtual row", Cursor{3, 11}, DirRight, Cursor{4, 0}},
		{"right on virtual row", Cursor{4, 0}, DirRight, Cursor{4, 0}},
		{"up clamps column", Cursor{3, 8}, DirUp, Cursor{2, 0}},
		{"up keeps short column", Cursor{1, 1}, DirUp, Cursor{0, 1}},
		{"up at top", Cursor{0, 2}, DirUp, Cursor{0, 2}},
		{"down clamps column", Cursor{0, 5}, DirDown, Cursor{1, 2}},
		{"down to virtual row", Cursor{3, 4}, DirDown, Cursor{4, 0}},
		{"down at virtual row", Cursor{4, 0}, DirDown, Cursor{4, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.start
			c.Move(doc, tt.dir)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestCursorColumnIsNotSticky(t *testing.T) {
	doc := newTestDoc("a long row", "ab", "a long row")
	c := Cursor{Row: 0, Col: 8}
	c.Move(doc, DirDown)
	c.Move(doc, DirDown)
	assert.Equal(t, Cursor{Row: 2, Col: 2}, c)
}

func TestCursorClamp(t *testing.T) {
	doc := newTestDoc("abc")

	c := Cursor{Row: 5, Col: 7}
	c.Clamp(doc)
	assert.Equal(t, Cursor{Row: 1, Col: 0}, c)

	c = Cursor{Row: 0, Col: 9}
	c.Clamp(doc)
	assert.Equal(t, Cursor{Row: 0, Col: 3}, c)

	c = Cursor{Row: -2, Col: -1}
	c.Clamp(doc)
	assert.Equal(t, Cursor{}, c)
}
