package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		tabStop int
		want    string
	}{
		{"no tabs", "hello", 8, "hello"},
		{"empty", "", 8, ""},
		{"tab after one char", "a\tb", 8, "a" + strings.Repeat(" ", 7) + "b"},
		{"leading tab", "\tx", 8, strings.Repeat(" ", 8) + "x"},
		{"tab at stop boundary", "12345678\tx", 8, "12345678" + strings.Repeat(" ", 8) + "x"},
		{"two tabs", "\t\t", 4, strings.Repeat(" ", 8)},
		{"tab stop 1", "a\tb", 1, "a b"},
		{"zero tab stop falls back to default", "\t", 0, strings.Repeat(" ", 8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(ExpandTabs([]rune(tt.raw), tt.tabStop))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRawToRenderColTabExample(t *testing.T) {
	row := newRow([]rune("a\tb"), 8)
	assert.Equal(t, "a       b", row.Render())
	assert.Equal(t, 9, row.RenderLen())
	assert.Equal(t, 8, RawToRenderCol(row.chars, 2, 8))
}

// Every raw column must land on the render column where ExpandTabs actually
// placed that character.
func TestRawToRenderColAgreesWithExpansion(t *testing.T) {
	samples := []string{"", "abc", "\t", "a\tb\tc", "\t\tx", "xyz\t\t\tq", "日本\t語"}
	for _, tabStop := range []int{1, 2, 4, 8} {
		for _, s := range samples {
			chars := []rune(s)
			for cx := 0; cx <= len(chars); cx++ {
				rendered := ExpandTabs(chars[:cx], tabStop)
				assert.Equal(t, len(rendered), RawToRenderCol(chars, cx, tabStop),
					"tabStop=%d raw=%q cx=%d", tabStop, s, cx)
			}
		}
	}
}

func TestRawToRenderColMonotonic(t *testing.T) {
	chars := []rune("\ta\t\tbc\td")
	assert.Equal(t, 0, RawToRenderCol(chars, 0, 8))
	prev := 0
	for cx := 0; cx <= len(chars)+2; cx++ {
		rx := RawToRenderCol(chars, cx, 8)
		assert.GreaterOrEqual(t, rx, prev, "cx=%d", cx)
		prev = rx
	}
}

func TestRenderToRawCol(t *testing.T) {
	chars := []rune("a\tb")
	tests := []struct {
		rx   int
		want int
	}{
		{0, 0},
		{1, 1}, // inside the tab
		{5, 1},
		{7, 1},
		{8, 2},
		{9, 3}, // past the end
		{50, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RenderToRawCol(chars, tt.rx, 8), "rx=%d", tt.rx)
	}
}

func TestRenderToRawColRoundTrip(t *testing.T) {
	chars := []rune("x\ty\t\tz")
	for cx := 0; cx <= len(chars); cx++ {
		rx := RawToRenderCol(chars, cx, 4)
		assert.Equal(t, cx, RenderToRawCol(chars, rx, 4), "cx=%d rx=%d", cx, rx)
	}
}
