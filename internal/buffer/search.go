package buffer

import "strings"

// Search returns the first occurrence of query scanning from the top.
func (d *Document) Search(query string) (Position, bool) {
	if query == "" {
		return Position{}, false
	}
	for y, line := range d.lines {
		if x := runeIndex(line, query, 0); x >= 0 {
			return Position{Row: y, Col: x}, true
		}
	}
	return Position{}, false
}

// SearchNext finds the next occurrence strictly after (row, col),
// wrapping to the top of the document.
func (d *Document) SearchNext(query string, row, col int) (Position, bool) {
	if query == "" {
		return Position{}, false
	}
	n := len(d.lines)
	if x := runeIndex(d.Line(row), query, col+1); x >= 0 {
		return Position{Row: row, Col: x}, true
	}
	for i := 1; i < n; i++ {
		y := (row + i) % n
		if x := runeIndex(d.lines[y], query, 0); x >= 0 {
			return Position{Row: y, Col: x}, true
		}
	}
	if x := runeIndex(d.Line(row), query, 0); x >= 0 && x <= col {
		return Position{Row: row, Col: x}, true
	}
	return Position{}, false
}

// SearchPrev finds the closest occurrence strictly before (row, col),
// wrapping to the bottom of the document.
func (d *Document) SearchPrev(query string, row, col int) (Position, bool) {
	if query == "" {
		return Position{}, false
	}
	n := len(d.lines)
	if x := runeLastIndexBefore(d.Line(row), query, col); x >= 0 {
		return Position{Row: row, Col: x}, true
	}
	for i := 1; i < n; i++ {
		y := ((row-i)%n + n) % n
		if x := runeLastIndexBefore(d.lines[y], query, -1); x >= 0 {
			return Position{Row: y, Col: x}, true
		}
	}
	if x := runeLastIndexBefore(d.Line(row), query, -1); x >= col {
		return Position{Row: row, Col: x}, true
	}
	return Position{}, false
}

// runeIndex finds query in line starting at rune column from and returns
// a rune column, or -1.
func runeIndex(line, query string, from int) int {
	r := []rune(line)
	if from > len(r) {
		return -1
	}
	from = max(from, 0)
	i := strings.Index(string(r[from:]), query)
	if i < 0 {
		return -1
	}
	return from + runeLen(string(r[from:])[:i])
}

// runeLastIndexBefore returns the last occurrence starting before rune
// column before; a negative before searches the whole line.
func runeLastIndexBefore(line, query string, before int) int {
	r := []rune(line)
	if before < 0 || before > len(r) {
		before = len(r)
	}
	for x := before - 1; x >= 0; x-- {
		if strings.HasPrefix(string(r[x:]), query) {
			return x
		}
	}
	return -1
}
