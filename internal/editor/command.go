package editor

import (
	"errors"
	"strconv"
	"strings"

	"tedit/internal/buffer"
	"tedit/internal/cursor"
	"tedit/internal/logger"
)

// command edits the command line of the open prompt.
func (m *Machine) command(doc *buffer.Document, cur *cursor.Cursor, key string) Intent {
	switch key {
	case "esc":
		if m.prompt == promptCommand {
			m.message = "Command cancelled"
		} else {
			m.message = "Cancelled"
		}
		m.closePrompt()
		return Intent{}
	case "enter":
		line := string(m.cmdline)
		kind := m.prompt
		m.closePrompt()
		m.message = ""
		return m.submit(doc, cur, kind, line)
	case "backspace", "ctrl+h":
		if n := len(m.cmdline); n > 0 {
			m.cmdline = m.cmdline[:n-1]
		}
		m.completion.Reset()
		return Intent{}
	case "tab":
		m.complete(true)
		return Intent{}
	case "shift+tab":
		m.complete(false)
		return Intent{}
	}

	if printable(key) {
		m.cmdline = append(m.cmdline, []rune(strings.ReplaceAll(key, "\n", " "))...)
		m.completion.Reset()
	}
	return Intent{}
}

func (m *Machine) closePrompt() {
	m.mode = Normal
	m.cmdline = nil
	m.completion.Reset()
}

// complete starts a completion cycle on the first tab and steps through
// it on the following ones.
func (m *Machine) complete(forward bool) {
	if m.prompt != promptCommand || m.completer == nil {
		return
	}
	if !m.completion.Active {
		m.completion = m.completer.Complete(string(m.cmdline))
		if !m.completion.Active {
			m.message = "No completions"
			return
		}
	} else if forward {
		m.completion.SelectNext()
	} else {
		m.completion.SelectPrev()
	}
	m.cmdline = []rune(m.completion.Line())
	if len(m.completion.Items) == 1 {
		m.completion.Reset()
	}
}

func (m *Machine) submit(doc *buffer.Document, cur *cursor.Cursor, kind promptKind, line string) Intent {
	switch kind {
	case promptSearch:
		m.searchFromTop(doc, cur, line)
		return Intent{}
	case promptSaveAs, promptSaveAsQuit:
		name := strings.TrimSpace(line)
		if name == "" {
			m.message = "Save cancelled"
			return Intent{}
		}
		if !m.saveAs(doc, name) {
			return Intent{}
		}
		if kind == promptSaveAsQuit {
			return Intent{Kind: IntentQuit}
		}
		return Intent{}
	}
	return m.Execute(doc, cur, line)
}

func (m *Machine) searchFromTop(doc *buffer.Document, cur *cursor.Cursor, term string) {
	if term == "" {
		return
	}
	m.search = term
	pos, ok := doc.Search(term)
	if !ok {
		m.SetMessage("'%s' not found", term)
		return
	}
	cur.Set(pos)
	cur.ScrollRow = pos.Row
	m.SetMessage("Found '%s' at %d,%d", term, pos.Row+1, pos.Col+1)
}

// Execute runs one ex command line against doc and cur. Commands acting
// on the session are returned as intents.
func (m *Machine) Execute(doc *buffer.Document, cur *cursor.Cursor, line string) Intent {
	line = strings.TrimSpace(line)
	if line == "" {
		return Intent{}
	}
	logger.Command(line)

	if strings.HasPrefix(line, "!") {
		cmd := strings.TrimSpace(line[1:])
		if cmd == "" {
			m.message = "Usage: !<command>"
			return Intent{}
		}
		if doc.ReadOnly() {
			m.message = "Read-only buffer: cannot modify"
			return Intent{}
		}
		return Intent{Kind: IntentShell, Arg: cmd}
	}

	name, args, _ := strings.Cut(line, " ")
	args = strings.TrimSpace(args)

	switch name {
	case "w":
		m.write(doc, args, false)
		return Intent{}
	case "wq", "x":
		if m.write(doc, args, true) {
			return Intent{Kind: IntentQuit}
		}
		return Intent{}
	case "q":
		return Intent{Kind: IntentQuit}
	case "q!":
		return Intent{Kind: IntentForceQuit}
	case "e", "view":
		if args == "" {
			m.SetMessage("Usage: %s <path>", name)
			return Intent{}
		}
		return Intent{Kind: IntentOpen, Path: args, ReadOnly: name == "view"}
	case "bn":
		return Intent{Kind: IntentNext}
	case "bp":
		return Intent{Kind: IntentPrev}
	case "bx":
		return Intent{Kind: IntentClose}
	case "bc":
		return Intent{Kind: IntentNew}
	case "goto":
		n, err := strconv.Atoi(args)
		if err != nil || n < 1 {
			m.message = "Usage: goto <line>"
			return Intent{}
		}
		cur.GotoLine(n)
		return Intent{}
	case "search":
		if args == "" {
			m.message = "Usage: search <term>"
			return Intent{}
		}
		m.search = args
		m.searchStep(doc, cur, true)
		return Intent{}
	case "n":
		m.searchStep(doc, cur, true)
		return Intent{}
	case "N":
		m.searchStep(doc, cur, false)
		return Intent{}
	case "replace":
		m.replace(doc, cur, args)
		return Intent{}
	case "theme":
		if args == "" {
			m.message = "Usage: theme <name>"
			return Intent{}
		}
		return Intent{Kind: IntentTheme, Arg: args}
	case "wrap":
		return Intent{Kind: IntentToggleWrap}
	case "sidebar":
		return Intent{Kind: IntentToggleSidebar}
	case "number":
		return Intent{Kind: IntentToggleNumbers}
	case "split":
		return Intent{Kind: IntentSplit}
	case "vsplit":
		return Intent{Kind: IntentVSplit}
	case "unsplit":
		return Intent{Kind: IntentUnsplit}
	case "focus":
		return Intent{Kind: IntentSwitchFocus}
	case "session":
		return m.session(args)
	case "help":
		return Intent{Kind: IntentHelp}
	case "lint":
		return Intent{Kind: IntentLint}
	case "reload":
		return Intent{Kind: IntentReload}
	}

	if n, ok := bufferIndex(name); ok && args == "" {
		return Intent{Kind: IntentGoto, N: n}
	}
	m.SetMessage("Unknown command: %s", line)
	return Intent{}
}

// bufferIndex parses "b<N>".
func bufferIndex(name string) (int, bool) {
	if len(name) < 2 || name[0] != 'b' {
		return 0, false
	}
	n, err := strconv.Atoi(name[1:])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func (m *Machine) session(args string) Intent {
	verb, name, _ := strings.Cut(args, " ")
	name = strings.TrimSpace(name)
	if verb == "list" && name == "" {
		return Intent{Kind: IntentSessionList}
	}
	kinds := map[string]IntentKind{
		"save":   IntentSessionSave,
		"load":   IntentSessionLoad,
		"delete": IntentSessionDelete,
	}
	kind, ok := kinds[verb]
	if !ok || name == "" {
		m.message = "Usage: session save|load|delete <name> or session list"
		return Intent{}
	}
	return Intent{Kind: kind, Arg: name}
}

// write saves doc, to path when given. Without any file name it opens the
// save-as prompt. It reports whether the document was written.
func (m *Machine) write(doc *buffer.Document, path string, quit bool) bool {
	if path != "" {
		return m.saveAs(doc, path)
	}
	if doc.ReadOnly() {
		m.message = "Read-only buffer: use w <path> to save a copy"
		return false
	}
	err := doc.Save()
	switch {
	case errors.Is(err, buffer.ErrNoFilename):
		if quit {
			m.openPrompt(promptSaveAsQuit)
		} else {
			m.openPrompt(promptSaveAs)
		}
		return false
	case err != nil:
		m.SetMessage("Save failed: %v", err)
		return false
	}
	m.SetMessage("\"%s\" %dL written", doc.Name(), doc.LineCount())
	return true
}

func (m *Machine) saveAs(doc *buffer.Document, path string) bool {
	if doc.ReadOnly() {
		if err := doc.WriteCopy(path); err != nil {
			m.SetMessage("Save failed: %v", err)
			return false
		}
		m.SetMessage("\"%s\" %dL written (copy)", path, doc.LineCount())
		return true
	}
	if err := doc.SaveAs(path); err != nil {
		m.SetMessage("Save failed: %v", err)
		return false
	}
	m.SetMessage("\"%s\" %dL written", doc.Name(), doc.LineCount())
	return true
}

func (m *Machine) replace(doc *buffer.Document, cur *cursor.Cursor, args string) {
	search, repl, _ := strings.Cut(args, " ")
	n, err := doc.ReplaceAll(search, repl)
	switch {
	case errors.Is(err, buffer.ErrEmptyPattern):
		m.message = "Usage: replace <search> <replace>"
		return
	case err != nil:
		m.fail(err)
		return
	}
	cur.Fix()
	m.SetMessage("Replaced %d occurrence(s)", n)
}
