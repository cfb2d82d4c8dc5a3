package buffer

import "tedit/internal/logger"

// history holds full line-array snapshots.
type history struct {
	states [][]string
}

func (h *history) push(lines []string) {
	h.states = append(h.states, lines)
	if len(h.states) > maxHistory {
		h.states = h.states[1:]
	}
}

func (h *history) pop() ([]string, bool) {
	if len(h.states) == 0 {
		return nil, false
	}
	last := h.states[len(h.states)-1]
	h.states = h.states[:len(h.states)-1]
	return last, true
}

func (h *history) clear() {
	h.states = nil
}

func (h *history) len() int {
	return len(h.states)
}

func cloneLines(lines []string) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

// saveUndo pushes the pre-mutation snapshot and drops the redo history.
func (d *Document) saveUndo() {
	d.undo.push(cloneLines(d.lines))
	d.redo.clear()
	d.version++
}

// Undo restores the most recent snapshot. It reports whether one existed.
func (d *Document) Undo() bool {
	prev, ok := d.undo.pop()
	if !ok {
		logger.Debug("undo: nothing to undo (%s)", d.Name())
		return false
	}
	d.redo.push(d.lines)
	d.lines = prev
	d.afterHistoryChange()
	logger.Debug("undo: %d left, %d redo (%s)", d.undo.len(), d.redo.len(), d.Name())
	return true
}

// Redo re-applies the most recently undone snapshot.
func (d *Document) Redo() bool {
	next, ok := d.redo.pop()
	if !ok {
		return false
	}
	d.undo.push(d.lines)
	d.lines = next
	d.afterHistoryChange()
	return true
}

func (d *Document) afterHistoryChange() {
	if len(d.lines) == 0 {
		d.lines = []string{""}
	}
	d.diagnostics = nil
	d.version++
}

// UndoDepth returns the number of available undo steps.
func (d *Document) UndoDepth() int { return d.undo.len() }

// RedoDepth returns the number of available redo steps.
func (d *Document) RedoDepth() int { return d.redo.len() }
