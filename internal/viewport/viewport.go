package viewport

import (
	"tedit/internal/buffer"
	"tedit/internal/cursor"
)

// Options describe how a pane shows its document.
type Options struct {
	Wrap     bool
	Gutter   int
	TabWidth int
}

// Segment is a run of runes [Start, End) of one logical line that fits on
// one screen row.
type Segment struct {
	Start int
	End   int
}

// Row is one visible screen row of a pane.
type Row struct {
	Line  int
	Start int
	End   int
	// First is set on the first screen row of a logical line; only those
	// rows show a line number.
	First bool
	// Pad is the number of blank cells before Start, used when a wide rune
	// is cut by horizontal scrolling.
	Pad int
}

// Segments wraps line into rows of at most width cells. An empty line
// has one empty segment.
func Segments(line string, width, tabWidth int) []Segment {
	width = max(width, 1)
	runes := []rune(line)
	if len(runes) == 0 {
		return []Segment{{0, 0}}
	}
	var segs []Segment
	start, used := 0, 0
	for i, r := range runes {
		w := RuneWidth(r, tabWidth)
		if used+w > width && i > start {
			segs = append(segs, Segment{start, i})
			start, used = i, 0
		}
		used += w
	}
	return append(segs, Segment{start, len(runes)})
}

// segmentIndex returns the segment holding rune column col. The end of
// line belongs to the last segment.
func segmentIndex(segs []Segment, col int) int {
	for i, s := range segs {
		if col >= s.Start && col < s.End {
			return i
		}
	}
	return len(segs) - 1
}

func textArea(size Rect, opt Options) (width, height int) {
	return max(size.Width-opt.Gutter, 1), max(size.Height, 1)
}

// Follow adjusts the cursor's scroll offsets so that the cursor is
// visible in a pane of the given size. The cursor is fixed first.
func Follow(c *cursor.Cursor, text buffer.Text, size Rect, opt Options) {
	c.Fix()
	width, height := textArea(size, opt)
	c.ScrollRow = min(max(c.ScrollRow, 0), text.LineCount()-1)
	if c.Row < c.ScrollRow {
		c.ScrollRow = c.Row
	}

	if !opt.Wrap {
		if c.Row >= c.ScrollRow+height {
			c.ScrollRow = c.Row - height + 1
		}
		x := DisplayCol(text.Line(c.Row), c.Col, opt.TabWidth)
		if x < c.ScrollCol {
			c.ScrollCol = x
		}
		if x >= c.ScrollCol+width {
			c.ScrollCol = x - width + 1
		}
		c.ScrollCol = max(c.ScrollCol, 0)
		return
	}

	c.ScrollCol = 0
	rows := segmentIndex(Segments(text.Line(c.Row), width, opt.TabWidth), c.Col) + 1
	for r := c.ScrollRow; r < c.Row; r++ {
		rows += len(Segments(text.Line(r), width, opt.TabWidth))
	}
	for rows > height && c.ScrollRow < c.Row {
		rows -= len(Segments(text.Line(c.ScrollRow), width, opt.TabWidth))
		c.ScrollRow++
	}
}

// Rows lists the screen rows visible in a pane, starting at the cursor's
// scroll offsets. Call Follow first.
func Rows(c *cursor.Cursor, text buffer.Text, size Rect, opt Options) []Row {
	width, height := textArea(size, opt)
	var rows []Row
	if !opt.Wrap {
		for line := c.ScrollRow; line < text.LineCount() && len(rows) < height; line++ {
			rows = append(rows, clipRow(text.Line(line), line, c.ScrollCol, width, opt.TabWidth))
		}
		return rows
	}

	// A single logical line taller than the pane scrolls by segment.
	skip := 0
	if c.ScrollRow == c.Row {
		segs := Segments(text.Line(c.Row), width, opt.TabWidth)
		skip = max(segmentIndex(segs, c.Col)-height+1, 0)
	}
	for line := c.ScrollRow; line < text.LineCount() && len(rows) < height; line++ {
		for i, s := range Segments(text.Line(line), width, opt.TabWidth) {
			if line == c.ScrollRow && i < skip {
				continue
			}
			if len(rows) == height {
				break
			}
			rows = append(rows, Row{Line: line, Start: s.Start, End: s.End, First: i == 0})
		}
	}
	return rows
}

// clipRow cuts line to the cells [scrollCol, scrollCol+width).
func clipRow(line string, idx, scrollCol, width, tabWidth int) Row {
	runes := []rune(line)
	row := Row{Line: idx, First: true}
	x, i := 0, 0
	for ; i < len(runes); i++ {
		w := RuneWidth(runes[i], tabWidth)
		if x+w > scrollCol {
			break
		}
		x += w
	}
	if i < len(runes) && x < scrollCol {
		// A wide rune cut by the left edge shows as blanks.
		row.Pad = x + RuneWidth(runes[i], tabWidth) - scrollCol
		i++
	}
	row.Start = i
	used := row.Pad
	for ; i < len(runes); i++ {
		w := RuneWidth(runes[i], tabWidth)
		if used+w > width {
			break
		}
		used += w
	}
	row.End = i
	return row
}

// CursorCell returns the cursor's cell inside the pane's text area (the
// gutter excluded) and whether it is visible.
func CursorCell(c *cursor.Cursor, text buffer.Text, rows []Row, size Rect, opt Options) (x, y int, ok bool) {
	width, _ := textArea(size, opt)
	runes := []rune(text.Line(c.Row))
	for i, r := range rows {
		if r.Line != c.Row || c.Col < r.Start {
			continue
		}
		last := i == len(rows)-1 || rows[i+1].Line != c.Row
		if c.Col >= r.End && !last {
			continue
		}
		end := min(c.Col, len(runes))
		x = r.Pad + StringWidth(string(runes[r.Start:end]), opt.TabWidth)
		return min(x, width-1), i, true
	}
	return 0, 0, false
}
