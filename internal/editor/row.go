package editor

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Row is one line of the document: its raw runes and the derived render form.
// The render form is rebuilt by update after every change to chars and is
// never written to directly.
type Row struct {
	chars  []rune
	render []rune
}

func newRow(content []rune, tabStop int) *Row {
	r := &Row{chars: append([]rune(nil), content...)}
	r.update(tabStop)
	return r
}

// String returns the raw content of the row.
func (r *Row) String() string { return string(r.chars) }

// Len returns the raw length in runes.
func (r *Row) Len() int { return len(r.chars) }

// Render returns the tab-expanded display form.
func (r *Row) Render() string { return string(r.render) }

// RenderLen returns the length of the display form in columns.
func (r *Row) RenderLen() int { return len(r.render) }

func (r *Row) update(tabStop int) {
	r.render = ExpandTabs(r.chars, tabStop)
}

func (r *Row) insertRune(at int, ch rune, tabStop int) {
	if at < 0 || at > len(r.chars) {
		at = len(r.chars)
	}
	r.chars = append(r.chars, 0)
	copy(r.chars[at+1:], r.chars[at:])
	r.chars[at] = ch
	r.update(tabStop)
}

func (r *Row) deleteRune(at int, tabStop int) {
	if at < 0 || at >= len(r.chars) {
		return
	}
	r.chars = append(r.chars[:at], r.chars[at+1:]...)
	r.update(tabStop)
}

func (r *Row) appendRunes(s []rune, tabStop int) {
	r.chars = append(r.chars, s...)
	r.update(tabStop)
}

func (r *Row) truncate(n int, tabStop int) {
	if n < 0 || n >= len(r.chars) {
		return
	}
	r.chars = r.chars[:n:n]
	r.update(tabStop)
}

// cellColumn returns the screen cell at which render column renderCol
// starts. Wide runes take two cells.
func (r *Row) cellColumn(renderCol int) int {
	if renderCol > len(r.render) {
		renderCol = len(r.render)
	}
	cells := 0
	for _, ch := range r.render[:renderCol] {
		cells += runewidth.RuneWidth(ch)
	}
	return cells
}

// renderColumnAt returns the render column whose rune covers screen cell
// cell, or the render length for cells past the end.
func (r *Row) renderColumnAt(cell int) int {
	cells := 0
	for i, ch := range r.render {
		cells += runewidth.RuneWidth(ch)
		if cells > cell {
			return i
		}
	}
	return len(r.render)
}

// glyphWidth returns the cells taken by the rune at renderCol, and 1 past
// the end of the row.
func (r *Row) glyphWidth(renderCol int) int {
	if renderCol < 0 || renderCol >= len(r.render) {
		return 1
	}
	if w := runewidth.RuneWidth(r.render[renderCol]); w > 0 {
		return w
	}
	return 1
}

// window returns the part of the render form that falls in screen cells
// [from, from+width). A wide rune cut by either edge is drawn as spaces.
func (r *Row) window(from, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	cell, used := 0, 0
	for _, ch := range r.render {
		w := runewidth.RuneWidth(ch)
		start := cell
		cell += w
		switch {
		case start < from && cell <= from:
		case start < from:
			b.WriteString(strings.Repeat(" ", cell-from))
			used += cell - from
		case used+w > width:
			b.WriteString(strings.Repeat(" ", width-used))
			return b.String()
		default:
			b.WriteRune(ch)
			used += w
		}
	}
	return b.String()
}
