package session

import (
	"context"
	"strings"
	"time"

	"tedit/internal/config"
	"tedit/internal/logger"
	"tedit/internal/plugin"
)

// Lint runs the linter registered for the active document's extension and
// stores the diagnostics on the document.
func (s *Session) Lint() {
	doc := s.Active().Doc
	diags, err := s.plugins.Lint(context.Background(), doc.Lines(), doc.Ext())
	doc.SetDiagnostics(diags)
	n := doc.DiagnosticCount()
	if err != nil {
		s.notify("Linter failed (%v); built-in rules: %d issue(s)", err, n)
		return
	}
	if n == 0 {
		s.notify("No lint issues")
		return
	}
	s.notify("%d lint issue(s)", n)
}

// Shell pipes the active document through command. On success the output
// replaces the document as one undoable step; on failure the document is
// left alone and the error is shown.
func (s *Session) Shell(command string) {
	e := s.Active()
	if e.Doc.ReadOnly() {
		s.notify("Read-only buffer: cannot modify")
		return
	}
	logger.Plugin("shell", command)
	out, err := s.shell.Run(context.Background(), command, e.Doc.String()+"\n")
	if err != nil {
		logger.Error("shell: %v", err)
		s.notify("Shell failed: %v", err)
		return
	}
	out = strings.TrimSuffix(out, "\n")
	if err := e.Doc.SetContent(out); err != nil {
		s.notify("%v", err)
		return
	}
	e.Cursor.Fix()
	s.notify("!%s: %d line(s)", command, e.Doc.LineCount())
}

// Autosave writes every modified, writable, named document when the
// configured interval has passed since the last run. It returns the
// number of documents written.
func (s *Session) Autosave(now time.Time) int {
	if s.cfg.AutosaveSeconds <= 0 {
		return 0
	}
	if now.Sub(s.lastAutosave) < time.Duration(s.cfg.AutosaveSeconds)*time.Second {
		return 0
	}
	s.lastAutosave = now

	written := 0
	for _, e := range s.entries {
		d := e.Doc
		if !d.Modified() || d.ReadOnly() || d.Filename() == "" {
			continue
		}
		if err := d.Save(); err != nil {
			logger.Error("autosave %s: %v", d.Filename(), err)
			continue
		}
		written++
	}
	if written > 0 {
		logger.Info("autosaved %d document(s)", written)
		s.notify("Autosaved %d file(s)", written)
	}
	return written
}

// Reload re-reads the configuration file and rebuilds the keymap, the
// plugin registry and the view toggles from it.
func (s *Session) Reload() {
	path := s.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		s.notify("Reload failed: %v", err)
		return
	}
	s.cfg = cfg
	s.keymap = cfg.Keymap()
	s.plugins = plugin.Load(cfg)
	s.shell = plugin.ShellFor(cfg)
	help := s.view.Help
	s.view = viewFromConfig(cfg)
	s.view.Help = help
	for _, e := range s.entries {
		e.Editor.SetKeymap(s.keymap)
	}
	s.notify("Reloaded %s", path)
}
