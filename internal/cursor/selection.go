package cursor

import "tedit/internal/buffer"

// VisualSelect toggles the selection anchor: it is set to the current
// position when absent and cleared when present.
func (c *Cursor) VisualSelect() {
	if c.anchor == nil {
		p := c.Position()
		c.anchor = &p
		return
	}
	c.anchor = nil
}

func (c *Cursor) ClearVisual() { c.anchor = nil }

func (c *Cursor) Selecting() bool { return c.anchor != nil }

// VisualRange returns the normalized selection between the anchor and the
// cursor. ok is false when no selection is active.
func (c *Cursor) VisualRange() (rg buffer.Range, ok bool) {
	if c.anchor == nil {
		return buffer.Range{}, false
	}
	return buffer.NormalizeRange(c.anchor.Row, c.anchor.Col, c.Row, c.Col), true
}

// SetMark stores the current position under label.
func (c *Cursor) SetMark(label rune) {
	c.marks[label] = c.Position()
}

// JumpMark moves to the position stored under label.
func (c *Cursor) JumpMark(label rune) bool {
	pos, ok := c.marks[label]
	if !ok {
		return false
	}
	c.Set(pos)
	return true
}

// Marks returns a copy of the stored marks.
func (c *Cursor) Marks() map[rune]buffer.Position {
	out := make(map[rune]buffer.Position, len(c.marks))
	for k, v := range c.marks {
		out[k] = v
	}
	return out
}
