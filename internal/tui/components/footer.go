package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"tedit/internal/config"
	"tedit/internal/session"
)

// FooterComponent renders the status row: mode, file and position
type FooterComponent struct {
	status session.Status
	width  int
	theme  config.Theme
}

// NewFooterComponent creates a new footer component
func NewFooterComponent(status session.Status, width int, theme config.Theme) *FooterComponent {
	return &FooterComponent{status: status, width: width, theme: theme}
}

// Render renders the complete footer with mode indicator and status bar
func (f *FooterComponent) Render() string {
	modeIndicator := NewModeIndicatorComponent(f.status.Mode)
	remaining := max(f.width-modeIndicator.Width(), 0)

	st := f.status
	left := " " + st.Name
	if st.Modified {
		left += " [+]"
	}
	if st.ReadOnly {
		left += " [RO]"
	}

	// Layout: name | diagnostics | split | buffer | position
	var right []string
	if st.Diagnostics > 0 {
		right = append(right, fmt.Sprintf("%d issue(s)", st.Diagnostics))
	}
	if st.Split {
		right = append(right, "split")
	}
	right = append(right,
		fmt.Sprintf("buf %d/%d", st.Buffer, st.Buffers),
		fmt.Sprintf("Ln %d, Col %d ", st.Row, st.Col),
	)
	rightText := strings.Join(right, " | ")

	gap := remaining - ansi.StringWidth(left) - ansi.StringWidth(rightText)
	var composed string
	if gap >= 1 {
		composed = left + strings.Repeat(" ", gap) + rightText
	} else {
		composed = ansi.Truncate(left+" | "+rightText, remaining, "…")
	}

	mainFooter := lipgloss.NewStyle().
		Foreground(lipgloss.Color(f.theme.StatusFg)).
		Background(lipgloss.Color(f.theme.StatusBg)).
		Width(remaining).
		Render(composed)

	return ansi.Truncate(modeIndicator.Render()+mainFooter, f.width, "")
}
