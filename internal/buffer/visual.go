package buffer

import "strings"

// VisualText returns the text covered by the range without modifying the
// document. A single-line range includes both endpoints; a multi-line
// range runs from x1 on the first line up to (excluding) x2 on the last.
func (d *Document) VisualText(y1, x1, y2, x2 int) string {
	rg := d.clampRange(NormalizeRange(y1, x1, y2, x2))
	s, e := rg.Start, rg.End
	if s.Row == e.Row {
		r := []rune(d.lines[s.Row])
		return string(r[s.Col:inclusiveEnd(e.Col, len(r))])
	}
	var b strings.Builder
	b.WriteString(string([]rune(d.lines[s.Row])[s.Col:]))
	for y := s.Row + 1; y < e.Row; y++ {
		b.WriteByte('\n')
		b.WriteString(d.lines[y])
	}
	b.WriteByte('\n')
	b.WriteString(string([]rune(d.lines[e.Row])[:e.Col]))
	return b.String()
}

// DeleteVisual removes the range and stores the removed text in the
// clipboard.
func (d *Document) DeleteVisual(y1, x1, y2, x2 int) error {
	if err := d.writable(); err != nil {
		return err
	}
	d.saveUndo()
	d.clipboard = d.VisualText(y1, x1, y2, x2)
	d.cutRange(NormalizeRange(y1, x1, y2, x2))
	return nil
}

// PasteOverVisual replaces the range with the clipboard in one undo step.
// The clipboard keeps its pasted content.
func (d *Document) PasteOverVisual(y1, x1, y2, x2 int) (Position, error) {
	if err := d.writable(); err != nil {
		return Position{Row: y1, Col: x1}, err
	}
	d.saveUndo()
	start := d.cutRange(NormalizeRange(y1, x1, y2, x2))
	return d.insertText(start.Row, start.Col, d.clipboard), nil
}

// cutRange removes the range and returns its start.
func (d *Document) cutRange(rg Range) Position {
	rg = d.clampRange(rg)
	s, e := rg.Start, rg.End
	if s.Row == e.Row {
		r := []rune(d.lines[s.Row])
		d.lines[s.Row] = string(r[:s.Col]) + string(r[inclusiveEnd(e.Col, len(r)):])
		return s
	}
	head := string([]rune(d.lines[s.Row])[:s.Col])
	tail := string([]rune(d.lines[e.Row])[e.Col:])
	d.lines[s.Row] = head + tail
	d.removeLines(s.Row+1, e.Row+1)
	return s
}

func (d *Document) clampRange(rg Range) Range {
	fix := func(p Position) Position {
		p.Row = clamp(p.Row, 0, len(d.lines)-1)
		p.Col = clamp(p.Col, 0, d.LineLen(p.Row))
		return p
	}
	return Range{Start: fix(rg.Start), End: fix(rg.End)}
}

func inclusiveEnd(col, n int) int {
	return min(col+1, n)
}
