package editor

import (
	"errors"
	"fmt"

	"tedit/internal/buffer"
	"tedit/internal/completion"
	"tedit/internal/config"
	"tedit/internal/cursor"
	"tedit/internal/logger"
)

// pending is the first half of a two-key sequence, or the exit question.
type pending int

const (
	pendingNone pending = iota
	pendingDelete
	pendingMark
	pendingJump
	pendingConfirmExit
)

type promptKind int

const (
	promptCommand promptKind = iota
	promptSaveAs
	promptSaveAsQuit
	promptSearch
)

var promptLabels = map[promptKind]string{
	promptCommand:    ":",
	promptSaveAs:     "Save as: ",
	promptSaveAsQuit: "Save as: ",
	promptSearch:     "Search: ",
}

// Completer completes a command line.
type Completer interface {
	Complete(line string) completion.State
}

type Options struct {
	Keymap    *config.Keymap
	Completer Completer
	// Clipboard, when set, receives every yanked or cut text.
	Clipboard func(string) error
}

// Machine is the modal input state of one document. It owns no text:
// every key is applied to the document and cursor passed in.
type Machine struct {
	mode    Mode
	pending pending
	prompt  promptKind
	cmdline []rune
	message string
	search  string

	keymap     *config.Keymap
	completer  Completer
	completion completion.State
	clipboard  func(string) error
}

func New(opts Options) *Machine {
	km := opts.Keymap
	if km == nil {
		km = config.NewKeymap(nil)
	}
	return &Machine{
		keymap:    km,
		completer: opts.Completer,
		clipboard: opts.Clipboard,
	}
}

func (m *Machine) Mode() Mode { return m.mode }

func (m *Machine) Message() string { return m.message }

func (m *Machine) SetMessage(format string, args ...interface{}) {
	m.message = fmt.Sprintf(format, args...)
}

func (m *Machine) ClearMessage() { m.message = "" }

// SetKeymap swaps the key tables after a configuration reload.
func (m *Machine) SetKeymap(km *config.Keymap) { m.keymap = km }

// LastSearch is the term used by n and N.
func (m *Machine) LastSearch() string { return m.search }

// CommandLine returns the prompt label and the text typed so far. ok is
// false outside COMMAND mode.
func (m *Machine) CommandLine() (label, text string, ok bool) {
	if m.mode != Command {
		return "", "", false
	}
	return promptLabels[m.prompt], string(m.cmdline), true
}

// Pending describes an unfinished two-key sequence for the status line.
func (m *Machine) Pending() string {
	switch m.pending {
	case pendingDelete:
		return m.keymap.Key(config.ModeNormal, config.ActionDelete)
	case pendingMark:
		return m.keymap.Key(config.ModeNormal, config.ActionMark)
	case pendingJump:
		return m.keymap.Key(config.ModeNormal, config.ActionJumpMark)
	}
	return ""
}

// Awaiting reports whether the next key completes a two-key sequence or
// answers the exit question.
func (m *Machine) Awaiting() bool { return m.pending != pendingNone }

// Completion returns the active tab-completion cycle, if any.
func (m *Machine) Completion() completion.State { return m.completion }

// HandleKey applies one key to doc and cur. The returned intent is
// non-empty when the session has to act.
func (m *Machine) HandleKey(doc *buffer.Document, cur *cursor.Cursor, key string) Intent {
	if m.mode != Command {
		m.message = ""
	}
	var in Intent
	switch m.mode {
	case Normal:
		in = m.normal(doc, cur, key)
	case Insert:
		in = m.insert(doc, cur, key)
	case Visual:
		in = m.visual(doc, cur, key)
	case Command:
		in = m.command(doc, cur, key)
	}
	cur.Fix()
	return in
}

// fail turns an edit error into a status message.
func (m *Machine) fail(err error) {
	switch {
	case err == nil:
	case errors.Is(err, buffer.ErrReadOnly):
		m.message = "Read-only buffer: cannot modify"
	default:
		m.message = err.Error()
	}
}

func (m *Machine) mirror(text string) {
	if m.clipboard == nil || text == "" {
		return
	}
	if err := m.clipboard(text); err != nil {
		logger.Error("system clipboard: %v", err)
	}
}

func (m *Machine) openPrompt(kind promptKind) {
	m.mode = Command
	m.prompt = kind
	m.cmdline = nil
	m.completion.Reset()
}
