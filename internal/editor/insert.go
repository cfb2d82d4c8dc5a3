package editor

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"tedit/internal/buffer"
	"tedit/internal/config"
	"tedit/internal/cursor"
)

func (m *Machine) insert(doc *buffer.Document, cur *cursor.Cursor, key string) Intent {
	if act, ok := m.keymap.Lookup(config.ModeInsert, key); ok && act == config.ActionExitInsert {
		m.mode = Normal
		return Intent{}
	}

	switch key {
	case "left":
		cur.Move(0, -1)
		return Intent{}
	case "right":
		cur.Move(0, 1)
		return Intent{}
	case "up":
		cur.Move(-1, 0)
		return Intent{}
	case "down":
		cur.Move(1, 0)
		return Intent{}
	case "home":
		cur.LineStart()
		return Intent{}
	case "end":
		cur.LineEnd()
		return Intent{}
	}

	if doc.ReadOnly() {
		m.message = "Read-only buffer: cannot modify"
		return Intent{}
	}

	switch key {
	case "backspace", "ctrl+h":
		pos, err := doc.Backspace(cur.Row, cur.Col)
		m.fail(err)
		cur.Set(pos)
	case "delete":
		m.fail(doc.DeleteCharForward(cur.Row, cur.Col))
	case "enter":
		if err := doc.Newline(cur.Row, cur.Col); err != nil {
			m.fail(err)
			return Intent{}
		}
		cur.Set(buffer.Position{Row: cur.Row + 1})
	case "tab":
		m.insertText(doc, cur, "\t")
	default:
		if !printable(key) {
			m.SetMessage("Unhandled %s", key)
			return Intent{}
		}
		m.insertText(doc, cur, key)
	}
	return Intent{}
}

// insertText inserts a single rune with InsertChar and longer pasted
// text as one undo step.
func (m *Machine) insertText(doc *buffer.Document, cur *cursor.Cursor, text string) {
	runes := []rune(text)
	if len(runes) == 1 {
		if err := doc.InsertChar(runes[0], cur.Row, cur.Col); err != nil {
			m.fail(err)
			return
		}
		cur.Col++
		return
	}
	pos, err := doc.InsertText(cur.Row, cur.Col, text)
	if err != nil {
		m.fail(err)
		return
	}
	cur.Set(pos)
}

// printable reports whether key is literal text rather than a named key.
// Pasted text arrives as one multi-rune key.
func printable(key string) bool {
	if key == "" || isNamedKey(key) {
		return false
	}
	for _, r := range key {
		if r == '\n' || r == '\r' || r == '\t' {
			continue
		}
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

func isNamedKey(key string) bool {
	if utf8.RuneCountInString(key) == 1 {
		return false
	}
	if _, ok := namedKeys[key]; ok {
		return true
	}
	for _, p := range []string{"ctrl+", "alt+", "shift+"} {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	if len(key) > 1 && key[0] == 'f' {
		if _, err := strconv.Atoi(key[1:]); err == nil {
			return true
		}
	}
	return false
}

var namedKeys = map[string]struct{}{
	"esc": {}, "enter": {}, "backspace": {}, "delete": {}, "tab": {},
	"left": {}, "right": {}, "up": {}, "down": {}, "home": {}, "end": {},
	"pgup": {}, "pgdown": {}, "insert": {},
}
