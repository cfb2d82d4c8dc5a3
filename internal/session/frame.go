package session

import (
	"tedit/internal/buffer"
	"tedit/internal/completion"
	"tedit/internal/config"
	"tedit/internal/editor"
	"tedit/internal/plugin"
	"tedit/internal/viewport"
)

// Frame is everything a renderer needs to draw one pane.
type Frame struct {
	Rect    viewport.Rect
	Options viewport.Options
	Index   int
	Focused bool

	Name     string
	Mode     editor.Mode
	Modified bool
	ReadOnly bool
	// Visual is the selection, or nil outside VISUAL mode.
	Visual *buffer.Range

	Rows       []viewport.Row
	CursorRow  int
	CursorCol  int
	ScrollRow  int
	ScrollCol  int
	CursorX    int
	CursorY    int
	CursorSeen bool

	doc     *buffer.Document
	plugins *plugin.Registry
}

func (f Frame) Line(row int) string { return f.doc.Line(row) }

func (f Frame) LineCount() int { return f.doc.LineCount() }

func (f Frame) Diagnostics(row int) []buffer.Diagnostic { return f.doc.Diagnostics(row) }

// Tokens highlights one line with the highlighter for the document's
// extension.
func (f Frame) Tokens(row int) []plugin.Token {
	return f.plugins.Highlight(f.doc.Line(row), f.doc.Ext())
}

// Layout splits the current screen size into regions.
func (s *Session) Layout() viewport.Layout {
	opt := viewport.LayoutOptions{
		Sidebar:      s.view.Sidebar,
		SidebarWidth: s.cfg.SidebarWidth,
		Split:        s.split != nil,
	}
	if s.split != nil {
		opt.Orientation = s.split.Orientation
	}
	return viewport.Compute(s.width, s.height, opt)
}

// Frames lays out the visible panes. Scroll offsets are brought up to
// date so that each cursor is on screen.
func (s *Session) Frames() []Frame {
	layout := s.Layout()
	visible := []int{s.active}
	focus := 0
	if s.split != nil {
		visible = s.split.Panes[:]
		focus = s.split.Focus
	}

	// An entry shown in both panes scrolls with the focused one.
	for i, idx := range visible {
		if i == focus || visible[focus] != idx {
			e := s.entries[idx]
			viewport.Follow(e.Cursor, e.Doc, layout.Panes[i], s.paneOptions(e))
		}
	}

	frames := make([]Frame, 0, len(visible))
	for i, idx := range visible {
		e := s.entries[idx]
		rect := layout.Panes[i]
		opt := s.paneOptions(e)
		rows := viewport.Rows(e.Cursor, e.Doc, rect, opt)
		x, y, seen := viewport.CursorCell(e.Cursor, e.Doc, rows, rect, opt)

		f := Frame{
			Rect:       rect,
			Options:    opt,
			Index:      idx,
			Focused:    i == focus,
			Name:       e.Doc.Name(),
			Mode:       e.Editor.Mode(),
			Modified:   e.Doc.Modified(),
			ReadOnly:   e.Doc.ReadOnly(),
			Rows:       rows,
			CursorRow:  e.Cursor.Row,
			CursorCol:  e.Cursor.Col,
			ScrollRow:  e.Cursor.ScrollRow,
			ScrollCol:  e.Cursor.ScrollCol,
			CursorX:    x,
			CursorY:    y,
			CursorSeen: seen,
			doc:        e.Doc,
			plugins:    s.plugins,
		}
		if rg, ok := e.Cursor.VisualRange(); ok && e.Editor.Mode() == editor.Visual {
			f.Visual = &rg
		}
		frames = append(frames, f)
	}
	return frames
}

func (s *Session) paneOptions(e *Entry) viewport.Options {
	return viewport.Options{
		Wrap:     s.view.Wrap,
		Gutter:   viewport.GutterWidth(e.Doc.LineCount(), s.view.LineNumbers),
		TabWidth: s.cfg.TabWidth,
	}
}

// Status describes the focused entry for the status and command lines.
type Status struct {
	Mode        editor.Mode
	Name        string
	Row, Col    int
	Message     string
	Prompt      string
	CommandLine string
	Prompting   bool
	Pending     string
	Completion  completion.State
	Modified    bool
	ReadOnly    bool
	Buffer      int
	Buffers     int
	Diagnostics int
	Split       bool

	// LineDiagnostics are the diagnostics on the cursor row.
	LineDiagnostics []buffer.Diagnostic
}

// LineIssue returns the most severe diagnostic on the cursor row.
func (st Status) LineIssue() (buffer.Diagnostic, bool) {
	if len(st.LineDiagnostics) == 0 {
		return buffer.Diagnostic{}, false
	}
	worst := st.LineDiagnostics[0]
	for _, d := range st.LineDiagnostics[1:] {
		if d.Severity > worst.Severity {
			worst = d
		}
	}
	return worst, true
}

func (s *Session) Status() Status {
	e := s.Active()
	label, text, prompting := e.Editor.CommandLine()
	return Status{
		Mode:            e.Editor.Mode(),
		Name:            e.Doc.Name(),
		Row:             e.Cursor.Row + 1,
		Col:             e.Cursor.Col + 1,
		Message:         e.Editor.Message(),
		Prompt:          label,
		CommandLine:     text,
		Prompting:       prompting,
		Pending:         e.Editor.Pending(),
		Completion:      e.Editor.Completion(),
		Modified:        e.Doc.Modified(),
		ReadOnly:        e.Doc.ReadOnly(),
		Buffer:          s.active + 1,
		Buffers:         len(s.entries),
		Diagnostics:     e.Doc.DiagnosticCount(),
		LineDiagnostics: e.Doc.Diagnostics(e.Cursor.Row),
		Split:           s.split != nil,
	}
}

// BufferInfo is one line of the sidebar.
type BufferInfo struct {
	Name     string
	Modified bool
	ReadOnly bool
	Active   bool
	Visible  bool
}

func (s *Session) Buffers() []BufferInfo {
	out := make([]BufferInfo, len(s.entries))
	for i, e := range s.entries {
		visible := i == s.active
		if s.split != nil {
			visible = i == s.split.Panes[0] || i == s.split.Panes[1]
		}
		out[i] = BufferInfo{
			Name:     e.Doc.Name(),
			Modified: e.Doc.Modified(),
			ReadOnly: e.Doc.ReadOnly(),
			Active:   i == s.active,
			Visible:  visible,
		}
	}
	return out
}

// Theme returns the theme currently selected with :theme.
func (s *Session) Theme() config.Theme {
	if th, ok := s.cfg.ThemeByName(s.view.Theme); ok {
		return th
	}
	return s.cfg.ActiveTheme()
}

// Keymap returns the key bindings in effect.
func (s *Session) Keymap() *config.Keymap { return s.keymap }
