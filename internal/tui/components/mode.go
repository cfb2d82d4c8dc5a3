package components

import (
	"github.com/charmbracelet/lipgloss"
	"tedit/internal/editor"
)

// ModeIndicatorComponent handles the rendering of the editor mode indicator
type ModeIndicatorComponent struct {
	mode editor.Mode
}

// NewModeIndicatorComponent creates a new mode indicator component
func NewModeIndicatorComponent(mode editor.Mode) *ModeIndicatorComponent {
	return &ModeIndicatorComponent{
		mode: mode,
	}
}

func (m *ModeIndicatorComponent) text() string {
	return " " + m.mode.String() + " "
}

// Render renders the mode indicator with colored background
func (m *ModeIndicatorComponent) Render() string {
	var modeColor string
	switch m.mode {
	case editor.Insert:
		modeColor = "2" // Green
	case editor.Visual:
		modeColor = "5" // Magenta
	case editor.Command:
		modeColor = "3" // Yellow
	default:
		modeColor = "4" // Blue
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(modeColor)).
		Bold(true).
		Render(m.text())
}

// Width returns the width of the mode indicator
func (m *ModeIndicatorComponent) Width() int {
	return len(m.text())
}
