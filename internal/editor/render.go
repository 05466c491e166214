package editor

// DefaultTabStop is the column multiple a tab character expands to.
const DefaultTabStop = 8

// ExpandTabs returns the display form of raw row content. Every rune is
// copied verbatim except '\t', which becomes one or more spaces so the next
// render column is a multiple of tabStop.
func ExpandTabs(chars []rune, tabStop int) []rune {
	if tabStop <= 0 {
		tabStop = DefaultTabStop
	}
	tabs := 0
	for _, r := range chars {
		if r == '\t' {
			tabs++
		}
	}
	render := make([]rune, 0, len(chars)+tabs*(tabStop-1))
	for _, r := range chars {
		if r != '\t' {
			render = append(render, r)
			continue
		}
		render = append(render, ' ')
		for len(render)%tabStop != 0 {
			render = append(render, ' ')
		}
	}
	return render
}

// RawToRenderCol converts a raw column into the render column it is drawn at.
// It walks the same rules as ExpandTabs, so the two always agree.
func RawToRenderCol(chars []rune, rawCol, tabStop int) int {
	if tabStop <= 0 {
		tabStop = DefaultTabStop
	}
	if rawCol > len(chars) {
		rawCol = len(chars)
	}
	rx := 0
	for i := 0; i < rawCol; i++ {
		rx += advance(chars[i], rx, tabStop)
	}
	return rx
}

// RenderToRawCol is the inverse of RawToRenderCol: it returns the raw column
// whose render span covers renderCol. Columns past the end of the row map to
// the row length.
func RenderToRawCol(chars []rune, renderCol, tabStop int) int {
	if tabStop <= 0 {
		tabStop = DefaultTabStop
	}
	rx := 0
	for cx, r := range chars {
		rx += advance(r, rx, tabStop)
		if rx > renderCol {
			return cx
		}
	}
	return len(chars)
}

// advance reports how many render columns r occupies when drawn at rx.
func advance(r rune, rx, tabStop int) int {
	if r == '\t' {
		return tabStop - rx%tabStop
	}
	return 1
}
