package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"tedit/internal/editor"
	"tedit/internal/logger"
	"tedit/internal/tui/components"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.width = msg.Width
		m.viewport.height = msg.Height
		m.session.Resize(msg.Width, msg.Height)
		m.ready = true
		return m, nil

	case AutosaveTickMsg:
		m.session.Autosave(msg.Time)
		// Pick up an interval changed by :reload.
		m.autosave = time.Duration(m.session.Config().AutosaveSeconds) * time.Second
		return m, m.tick()

	case tea.KeyMsg:
		// ctrl+c leaves immediately without touching the saved session.
		if msg.Type == tea.KeyCtrlC {
			logger.Info("interrupted")
			return m, tea.Quit
		}

		if m.session.View().Help {
			switch msg.String() {
			case "esc", "q", "enter":
				m.session.CloseHelp()
			}
			return m, nil
		}

		key := keyString(msg)
		if key == "" {
			return m, nil
		}
		wasTicking := m.autosave > 0
		quit := m.session.HandleKey(key)
		if quit {
			return m, tea.Quit
		}

		// A reload may have changed the keymap or the autosave interval.
		m.helpModal = components.NewHelpModal(m.session.Keymap(), editor.Commands)
		m.autosave = time.Duration(m.session.Config().AutosaveSeconds) * time.Second
		if !wasTicking && m.autosave > 0 {
			return m, m.tick()
		}
		return m, nil
	}

	return m, nil
}

// keyString translates a key event into the names the editor binds:
// runes as typed (a paste arrives as one multi-rune key), everything else
// by its bubbletea name such as "esc", "enter" or "ctrl+r".
func keyString(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyRunes:
		s := string(msg.Runes)
		if msg.Alt {
			return "alt+" + s
		}
		return s
	case tea.KeySpace:
		return " "
	}
	return msg.String()
}
