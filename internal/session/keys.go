package session

import (
	"errors"
	"strings"

	"tedit/internal/editor"
	"tedit/internal/logger"
	"tedit/internal/viewport"
)

// HandleKey routes one key to the focused entry, executes the resulting
// intent and runs the autosave check. It reports whether the editor
// should exit. A quitting key never autosaves: q! and the exit
// confirmation discard edits.
func (s *Session) HandleKey(key string) (quit bool) {
	e := s.Active()
	if key == "tab" && s.split != nil {
		if m := e.Editor.Mode(); m != editor.Insert && m != editor.Command && !e.Editor.Awaiting() {
			s.ToggleFocus()
			return false
		}
	}

	in := e.Editor.HandleKey(e.Doc, e.Cursor, key)
	if !in.None() {
		logger.Debug("intent %s from %s", in.Kind, e.Doc.Name())
		if s.apply(in) {
			return true
		}
	}
	s.Autosave(s.now())
	return false
}

// Execute runs an ex command line on the focused entry as if it had been
// typed after ':'.
func (s *Session) Execute(line string) (quit bool) {
	e := s.Active()
	in := e.Editor.Execute(e.Doc, e.Cursor, line)
	if in.None() {
		return false
	}
	return s.apply(in)
}

func (s *Session) apply(in editor.Intent) (quit bool) {
	switch in.Kind {
	case editor.IntentQuit:
		if pending := s.PendingDocuments(); len(pending) > 0 {
			s.notify("Unsaved changes in %s! Use q! to quit without saving.", strings.Join(pending, ", "))
			return false
		}
		s.saveLastSession()
		return true
	case editor.IntentForceQuit:
		s.saveLastSession()
		return true
	case editor.IntentOpen:
		e, err := s.Open(in.Path, 0, 0, in.ReadOnly)
		if err != nil {
			s.notify("Cannot open %s: %v", in.Path, err)
			return false
		}
		if e.Doc.ReadOnly() {
			s.notify("\"%s\" [read-only] %dL", e.Doc.Name(), e.Doc.LineCount())
		} else {
			s.notify("\"%s\" %dL", e.Doc.Name(), e.Doc.LineCount())
		}
	case editor.IntentNext:
		s.Next()
	case editor.IntentPrev:
		s.Prev()
	case editor.IntentGoto:
		if err := s.Goto(in.N); err != nil {
			s.notify("%v", err)
		}
	case editor.IntentClose:
		if err := s.Close(s.active); err != nil {
			s.notify("%v", err)
		}
	case editor.IntentNew:
		s.New()
	case editor.IntentSplit, editor.IntentVSplit:
		o := viewport.Horizontal
		if in.Kind == editor.IntentVSplit {
			o = viewport.Vertical
		}
		if err := s.SplitView(o); err != nil {
			s.notify("%v", err)
		}
	case editor.IntentUnsplit:
		s.Unsplit()
	case editor.IntentSwitchFocus:
		if !s.ToggleFocus() {
			s.notify("No split")
		}
	case editor.IntentTheme:
		if _, ok := s.cfg.ThemeByName(in.Arg); !ok {
			s.notify("Unknown theme: %s", in.Arg)
			return false
		}
		s.view.Theme = in.Arg
	case editor.IntentToggleWrap:
		s.view.Wrap = !s.view.Wrap
		s.notify("wrap %s", onOff(s.view.Wrap))
	case editor.IntentToggleSidebar:
		s.view.Sidebar = !s.view.Sidebar
	case editor.IntentToggleNumbers:
		s.view.LineNumbers = !s.view.LineNumbers
	case editor.IntentSessionSave:
		s.saveNamed(in.Arg)
	case editor.IntentSessionLoad:
		s.loadNamed(in.Arg)
	case editor.IntentSessionList:
		s.listNamed()
	case editor.IntentSessionDelete:
		s.deleteNamed(in.Arg)
	case editor.IntentShell:
		s.Shell(in.Arg)
	case editor.IntentHelp:
		s.view.Help = !s.view.Help
	case editor.IntentLint:
		s.Lint()
	case editor.IntentReload:
		s.Reload()
	}
	return false
}

// CloseHelp hides the help overlay.
func (s *Session) CloseHelp() { s.view.Help = false }

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (s *Session) saveLastSession() {
	if s.store == nil {
		return
	}
	if err := s.store.Save(s.Snapshot()); err != nil {
		logger.Error("save last session: %v", err)
	}
}

func (s *Session) saveNamed(name string) {
	if s.named == nil {
		s.notify("Named sessions are unavailable")
		return
	}
	if err := s.named.Save(name, s.Snapshot()); err != nil {
		s.notify("Session save failed: %v", err)
		return
	}
	s.notify("Session %q saved", name)
}

func (s *Session) loadNamed(name string) {
	if s.named == nil {
		s.notify("Named sessions are unavailable")
		return
	}
	rec, err := s.named.Load(name)
	if errors.Is(err, ErrSessionNotFound) {
		s.notify("No session named %q", name)
		return
	}
	if err != nil {
		s.notify("Session load failed: %v", err)
		return
	}
	if pending := s.PendingDocuments(); len(pending) > 0 {
		s.notify("Unsaved changes in %s; save before loading a session", strings.Join(pending, ", "))
		return
	}
	s.Restore(rec)
	s.notify("Session %q loaded (%d buffers)", name, len(s.entries))
}

func (s *Session) listNamed() {
	if s.named == nil {
		s.notify("Named sessions are unavailable")
		return
	}
	names, err := s.named.List()
	switch {
	case err != nil:
		s.notify("Session list failed: %v", err)
	case len(names) == 0:
		s.notify("No saved sessions")
	default:
		s.notify("Sessions: %s", strings.Join(names, ", "))
	}
}

func (s *Session) deleteNamed(name string) {
	if s.named == nil {
		s.notify("Named sessions are unavailable")
		return
	}
	if err := s.named.Delete(name); err != nil {
		s.notify("Session delete failed: %v", err)
		return
	}
	s.notify("Session %q deleted", name)
}
