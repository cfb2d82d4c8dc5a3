package cursor

import (
	"unicode"

	"tedit/internal/buffer"
)

// Cursor is the logical position inside one document plus the scroll
// offsets of the window showing it.
type Cursor struct {
	Row int
	Col int

	// ScrollRow is the first visible logical row. ScrollCol is the first
	// visible display cell when lines are not wrapped.
	ScrollRow int
	ScrollCol int

	text   buffer.Text
	anchor *buffer.Position
	marks  map[rune]buffer.Position
}

// New returns a cursor at the top of text.
func New(text buffer.Text) *Cursor {
	return &Cursor{text: text, marks: make(map[rune]buffer.Position)}
}

// Position returns the current logical position.
func (c *Cursor) Position() buffer.Position {
	return buffer.Position{Row: c.Row, Col: c.Col}
}

// Set moves the cursor to pos and clamps it.
func (c *Cursor) Set(pos buffer.Position) {
	c.Row, c.Col = pos.Row, pos.Col
	c.Fix()
}

// Fix clamps the row into the document and the column into the line.
func (c *Cursor) Fix() {
	c.Row = min(max(c.Row, 0), c.text.LineCount()-1)
	c.Col = min(max(c.Col, 0), c.text.LineLen(c.Row))
}

// Move applies the row delta, clamps, then applies the column delta and
// clamps against the new line.
func (c *Cursor) Move(dRow, dCol int) {
	c.Row += dRow
	c.Fix()
	c.Col += dCol
	c.Fix()
}

func (c *Cursor) LineStart() { c.Col = 0 }

func (c *Cursor) LineEnd() {
	c.Fix()
	c.Col = c.text.LineLen(c.Row)
}

func (c *Cursor) FirstLine() { c.Set(buffer.Position{}) }

func (c *Cursor) LastLine() {
	c.Set(buffer.Position{Row: c.text.LineCount() - 1})
}

// GotoLine moves to the start of 1-based line n.
func (c *Cursor) GotoLine(n int) {
	c.Set(buffer.Position{Row: n - 1})
}

// MoveWordForward skips the rest of the current alphanumeric run and the
// separators after it, landing on the next word or the end of the line.
func (c *Cursor) MoveWordForward() {
	c.Fix()
	line := []rune(c.text.Line(c.Row))
	i := c.Col + 1
	for i < len(line) && isWordRune(line[i]) {
		i++
	}
	for i < len(line) && !isWordRune(line[i]) {
		i++
	}
	c.Col = min(i, len(line))
}

// MoveWordBackward mirrors MoveWordForward and stops at the line start.
func (c *Cursor) MoveWordBackward() {
	c.Fix()
	line := []rune(c.text.Line(c.Row))
	i := min(c.Col-1, len(line)-1)
	for i > 0 && isWordRune(line[i]) {
		i--
	}
	for i > 0 && !isWordRune(line[i]) {
		i--
	}
	c.Col = max(i, 0)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
