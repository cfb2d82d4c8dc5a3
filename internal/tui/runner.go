package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"tedit/internal/logger"
	"tedit/internal/session"
)

// Run starts the editor on the alternate screen and blocks until it
// exits.
func Run(s *session.Session) error {
	m := NewModel(s)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("tui: %v", err)
		return fmt.Errorf("failed to run editor: %w", err)
	}
	return nil
}
