package editor

import (
	"tedit/internal/buffer"
	"tedit/internal/config"
	"tedit/internal/cursor"
)

func (m *Machine) visual(doc *buffer.Document, cur *cursor.Cursor, key string) Intent {
	act, ok := m.keymap.Lookup(config.ModeVisual, key)
	if !ok {
		m.SetMessage("Unhandled VISUAL %s", key)
		return Intent{}
	}

	switch act {
	case config.ActionVisual, config.ActionCancel:
		m.leaveVisual(cur)
	case config.ActionLeft:
		cur.Move(0, -1)
	case config.ActionRight:
		cur.Move(0, 1)
	case config.ActionUp:
		cur.Move(-1, 0)
	case config.ActionDown:
		cur.Move(1, 0)
	case config.ActionWordForward:
		cur.MoveWordForward()
	case config.ActionWordBackward:
		cur.MoveWordBackward()
	case config.ActionLineStart:
		cur.LineStart()
	case config.ActionLineEnd:
		cur.LineEnd()
	case config.ActionVisualYank, config.ActionVisualDelete, config.ActionVisualPaste:
		rg, ok := cur.VisualRange()
		if !ok {
			m.leaveVisual(cur)
			return Intent{}
		}
		m.applySelection(doc, cur, act, rg)
		m.leaveVisual(cur)
	default:
		m.SetMessage("Unhandled VISUAL %s", key)
	}
	return Intent{}
}

func (m *Machine) applySelection(doc *buffer.Document, cur *cursor.Cursor, act config.Action, rg buffer.Range) {
	s, e := rg.Start, rg.End
	switch act {
	case config.ActionVisualYank:
		text := doc.VisualText(s.Row, s.Col, e.Row, e.Col)
		doc.SetClipboard(text)
		m.mirror(text)
		m.SetMessage("Yanked %d characters", len([]rune(text)))
		cur.Set(s)
	case config.ActionVisualDelete:
		if err := doc.DeleteVisual(s.Row, s.Col, e.Row, e.Col); err != nil {
			m.fail(err)
			return
		}
		m.mirror(doc.Clipboard())
		cur.Set(s)
	case config.ActionVisualPaste:
		pos, err := doc.PasteOverVisual(s.Row, s.Col, e.Row, e.Col)
		if err != nil {
			m.fail(err)
			return
		}
		cur.Set(pos)
	}
}

func (m *Machine) leaveVisual(cur *cursor.Cursor) {
	cur.ClearVisual()
	m.mode = Normal
}
