package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"tedit/internal/editor"
	"tedit/internal/session"
	"tedit/internal/tui/components"
)

// Model represents the Bubble Tea model for the editor
type Model struct {
	session *session.Session
	viewport struct {
		width  int
		height int
	}
	ready     bool
	helpModal *components.HelpModal
	// autosave drives a periodic autosave check while no keys arrive.
	autosave time.Duration
}

// AutosaveTickMsg asks Update to run the autosave check
type AutosaveTickMsg struct {
	Time time.Time
}

// NewModel creates a new TUI model around s
func NewModel(s *session.Session) Model {
	return Model{
		session:   s,
		helpModal: components.NewHelpModal(s.Keymap(), editor.Commands),
		autosave:  time.Duration(s.Config().AutosaveSeconds) * time.Second,
	}
}

// Init starts the autosave ticker when autosave is enabled
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	if m.autosave <= 0 {
		return nil
	}
	return tea.Tick(m.autosave, func(t time.Time) tea.Msg {
		return AutosaveTickMsg{Time: t}
	})
}
