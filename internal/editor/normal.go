package editor

import (
	"unicode"
	"unicode/utf8"

	"tedit/internal/buffer"
	"tedit/internal/config"
	"tedit/internal/cursor"
)

func (m *Machine) normal(doc *buffer.Document, cur *cursor.Cursor, key string) Intent {
	if m.pending != pendingNone {
		return m.second(doc, cur, key)
	}

	act, ok := m.keymap.Lookup(config.ModeNormal, key)
	if !ok {
		m.SetMessage("Unhandled %s", key)
		return Intent{}
	}

	switch act {
	case config.ActionInsert:
		m.enterInsert(doc)
	case config.ActionAppend:
		cur.Move(0, 1)
		m.enterInsert(doc)
	case config.ActionOpenBelow:
		if err := doc.Newline(cur.Row, doc.LineLen(cur.Row)); err != nil {
			m.fail(err)
			return Intent{}
		}
		cur.Set(buffer.Position{Row: cur.Row + 1})
		m.mode = Insert
	case config.ActionVisual:
		if !cur.Selecting() {
			cur.VisualSelect()
		}
		m.mode = Visual
	case config.ActionCommand:
		m.openPrompt(promptCommand)
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
	case config.ActionLastLine:
		cur.LastLine()
	case config.ActionYankLine:
		doc.YankLine(cur.Row)
		m.mirror(doc.Clipboard())
		m.message = "Line yanked"
	case config.ActionDelete:
		m.pending = pendingDelete
	case config.ActionDeleteChar:
		m.fail(doc.DeleteCharForward(cur.Row, cur.Col))
	case config.ActionPaste:
		pos, err := doc.Paste(cur.Row, cur.Col)
		if err != nil {
			m.fail(err)
			return Intent{}
		}
		cur.Set(pos)
	case config.ActionUndo:
		if !doc.Undo() {
			m.message = "Already at oldest change"
		}
	case config.ActionRedo:
		if !doc.Redo() {
			m.message = "Already at newest change"
		}
	case config.ActionSearch:
		m.openPrompt(promptSearch)
	case config.ActionSearchNext:
		m.searchStep(doc, cur, true)
	case config.ActionSearchPrev:
		m.searchStep(doc, cur, false)
	case config.ActionMark:
		m.pending = pendingMark
	case config.ActionJumpMark:
		m.pending = pendingJump
	case config.ActionExit:
		if doc.HasPendingEdits() {
			m.pending = pendingConfirmExit
			m.message = "Unsaved changes! Exit anyway? (y/n)"
			return Intent{}
		}
		return Intent{Kind: IntentQuit}
	default:
		m.SetMessage("Unhandled %s", key)
	}
	return Intent{}
}

func (m *Machine) enterInsert(doc *buffer.Document) {
	m.mode = Insert
	if doc.ReadOnly() {
		m.message = "Read-only buffer: edits are disabled"
	}
}

// second completes a two-key sequence. Escape cancels it silently.
func (m *Machine) second(doc *buffer.Document, cur *cursor.Cursor, key string) Intent {
	p := m.pending
	m.pending = pendingNone
	if key == "esc" && p != pendingConfirmExit {
		return Intent{}
	}

	switch p {
	case pendingDelete:
		if key != m.keymap.Key(config.ModeNormal, config.ActionDelete) {
			m.SetMessage("Unhandled %s%s", m.keymap.Key(config.ModeNormal, config.ActionDelete), key)
			return Intent{}
		}
		if err := doc.DeleteLine(cur.Row); err != nil {
			m.fail(err)
			return Intent{}
		}
		m.mirror(doc.Clipboard())
		cur.Set(buffer.Position{Row: min(cur.Row, doc.LineCount()-1)})
	case pendingMark:
		label, ok := markLabel(key)
		if !ok {
			m.SetMessage("Invalid mark %q", key)
			return Intent{}
		}
		cur.SetMark(label)
		m.SetMessage("Mark '%c' set", label)
	case pendingJump:
		label, ok := markLabel(key)
		if !ok {
			m.SetMessage("Invalid mark %q", key)
			return Intent{}
		}
		if !cur.JumpMark(label) {
			m.SetMessage("Mark '%c' not set", label)
		}
	case pendingConfirmExit:
		if key == "y" || key == "Y" {
			return Intent{Kind: IntentForceQuit}
		}
		m.message = "Exit cancelled"
	}
	return Intent{}
}

func markLabel(key string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(key)
	if size != len(key) || !unicode.IsLetter(r) {
		return 0, false
	}
	return r, true
}

// searchStep repeats the last search forwards or backwards with wrap.
func (m *Machine) searchStep(doc *buffer.Document, cur *cursor.Cursor, forward bool) {
	if m.search == "" {
		m.message = "No previous search"
		return
	}
	var (
		pos   buffer.Position
		found bool
	)
	if forward {
		pos, found = doc.SearchNext(m.search, cur.Row, cur.Col)
	} else {
		pos, found = doc.SearchPrev(m.search, cur.Row, cur.Col)
	}
	if !found {
		m.SetMessage("'%s' not found", m.search)
		return
	}
	cur.Set(pos)
	m.SetMessage("Found '%s' at %d,%d", m.search, pos.Row+1, pos.Col+1)
}
