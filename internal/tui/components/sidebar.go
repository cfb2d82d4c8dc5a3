package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"tedit/internal/config"
	"tedit/internal/session"
)

// SidebarComponent lists the open buffers
type SidebarComponent struct {
	buffers []session.BufferInfo
	width   int
	height  int
	theme   config.Theme
}

func NewSidebarComponent(buffers []session.BufferInfo, width, height int, theme config.Theme) *SidebarComponent {
	return &SidebarComponent{buffers: buffers, width: width, height: height, theme: theme}
}

// Render returns height lines of width cells. The separator column is
// drawn by the caller.
func (s *SidebarComponent) Render() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(s.theme.CurrentLine)).
		Width(s.width).
		Render(ansi.Truncate(" Buffers", s.width, ""))

	lines := []string{title}
	for i, b := range s.buffers {
		if len(lines) == s.height {
			break
		}
		lines = append(lines, s.entry(i, b))
	}
	blank := strings.Repeat(" ", s.width)
	for len(lines) < s.height {
		lines = append(lines, blank)
	}
	return strings.Join(lines[:s.height], "\n")
}

func (s *SidebarComponent) entry(i int, b session.BufferInfo) string {
	marker := " "
	switch {
	case b.Active:
		marker = ">"
	case b.Visible:
		marker = "*"
	}
	text := fmt.Sprintf("%s%d %s", marker, i+1, b.Name)
	if b.Modified {
		text += " +"
	}
	if b.ReadOnly {
		text += " [RO]"
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(s.theme.Sidebar)).Width(s.width)
	if b.Active {
		style = style.Foreground(lipgloss.Color(s.theme.CurrentLine)).Bold(true)
	}
	return style.Render(ansi.Truncate(text, s.width, "…"))
}
