package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"tedit/internal/completion"
	"tedit/internal/config"
	"tedit/internal/session"
	"tedit/internal/tui/components"
	"tedit/internal/viewport"
)

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	s := m.session
	th := s.Theme()
	width, height := m.viewport.width, m.viewport.height

	// Render help modal if visible (overlay on top)
	if s.View().Help {
		return m.helpModal.View(width, height)
	}

	body := m.renderBody(s.Layout(), s.Frames(), th)

	st := s.Status()
	if st.Completion.Active {
		body = overlayCompletion(body, st.Completion, width)
	}

	footer := components.NewFooterComponent(st, width, th).Render()
	statusline := components.NewStatuslineComponent(st, width, th).Render()
	return body + "\n" + footer + "\n" + statusline
}

func (m Model) renderBody(layout viewport.Layout, frames []session.Frame, th config.Theme) string {
	s := m.session
	panes := make([]string, len(frames))
	for i, f := range frames {
		panes[i] = components.NewPaneComponent(f, th).Render()
	}

	main := panes[0]
	if sp := s.Split(); sp != nil && len(panes) == 2 {
		if sp.Orientation == viewport.Vertical {
			main = lipgloss.JoinHorizontal(lipgloss.Top, panes[0], separator(layout.Divider.Height, th), panes[1])
		} else {
			rule := lipgloss.NewStyle().
				Foreground(lipgloss.Color(th.Border)).
				Render(strings.Repeat("─", layout.Divider.Width))
			main = lipgloss.JoinVertical(lipgloss.Left, panes[0], rule, panes[1])
		}
	}

	if layout.Sidebar.Width > 0 {
		sidebar := components.NewSidebarComponent(s.Buffers(), layout.Sidebar.Width, layout.Sidebar.Height, th).Render()
		main = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, separator(layout.Sidebar.Height, th), main)
	}
	return main
}

// separator is a one-column vertical rule.
func separator(height int, th config.Theme) string {
	rows := make([]string, max(height, 1))
	for i := range rows {
		rows[i] = "│"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(th.Border)).Render(strings.Join(rows, "\n"))
}

// overlayCompletion draws the completion popup over the bottom left of
// the body, just above the status row.
func overlayCompletion(body string, state completion.State, width int) string {
	popup := components.NewCompletionComponent(state.Items, state.Selected, min(width, 60))
	popupLines := strings.Split(popup.Render(), "\n")
	lines := strings.Split(body, "\n")
	if len(popupLines) > len(lines) {
		popupLines = popupLines[len(popupLines)-len(lines):]
	}

	start := len(lines) - len(popupLines)
	for i, pl := range popupLines {
		lines[start+i] = pl + ansi.Cut(lines[start+i], popup.Width(), width)
	}
	return strings.Join(lines, "\n")
}
