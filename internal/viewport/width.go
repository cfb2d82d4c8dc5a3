package viewport

import (
	"strconv"

	"github.com/mattn/go-runewidth"
)

// RuneWidth is the number of cells r occupies. Tabs take tabWidth cells;
// zero-width and control runes take one so every rune owns a cell.
func RuneWidth(r rune, tabWidth int) int {
	if r == '\t' {
		return max(tabWidth, 1)
	}
	return max(runewidth.RuneWidth(r), 1)
}

// StringWidth is the display width of s.
func StringWidth(s string, tabWidth int) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r, tabWidth)
	}
	return w
}

// DisplayCol converts a rune column into a display cell offset.
func DisplayCol(line string, col, tabWidth int) int {
	w := 0
	for i, r := range []rune(line) {
		if i >= col {
			break
		}
		w += RuneWidth(r, tabWidth)
	}
	return w
}

// GutterWidth is the width of the line-number column including its
// trailing space, or zero when numbers are hidden.
func GutterWidth(lineCount int, enabled bool) int {
	if !enabled {
		return 0
	}
	return max(4, len(strconv.Itoa(max(lineCount, 1)))) + 1
}
