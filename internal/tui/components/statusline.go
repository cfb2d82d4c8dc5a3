package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"tedit/internal/config"
	"tedit/internal/session"
)

// StatuslineMessageType represents the type of statusline message
type StatuslineMessageType int

const (
	StatuslineInfo StatuslineMessageType = iota
	StatuslineWarning
	StatuslineError
)

// Classify picks the color class of a status message.
func Classify(msg string) StatuslineMessageType {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "failed"),
		strings.HasPrefix(lower, "unknown"),
		strings.HasPrefix(lower, "cannot"),
		strings.HasPrefix(lower, "read-only"),
		strings.HasPrefix(lower, "no buffer"):
		return StatuslineError
	case strings.HasPrefix(lower, "unsaved"),
		strings.HasPrefix(lower, "usage"),
		strings.HasPrefix(lower, "unhandled"),
		strings.Contains(lower, "not found"):
		return StatuslineWarning
	}
	return StatuslineInfo
}

// StatuslineComponent renders the bottom row: the open prompt, or the
// last message and any pending key.
type StatuslineComponent struct {
	status session.Status
	width  int
	theme  config.Theme
}

// NewStatuslineComponent creates a new statusline component
func NewStatuslineComponent(status session.Status, width int, theme config.Theme) *StatuslineComponent {
	return &StatuslineComponent{status: status, width: width, theme: theme}
}

// Render renders the statusline
func (s *StatuslineComponent) Render() string {
	st := s.status
	base := lipgloss.NewStyle().Width(s.width)

	if st.Prompting {
		line := st.Prompt + st.CommandLine
		// Keep the end of a long command line visible.
		if w := ansi.StringWidth(line) + 1; w > s.width {
			line = ansi.TruncateLeft(line, w-s.width, "")
		}
		return base.Foreground(lipgloss.Color(s.theme.Text)).
			Render(line + cursorStyle().Render(" "))
	}

	text := st.Message
	var fg string
	switch Classify(st.Message) {
	case StatuslineWarning:
		fg = s.theme.Warning
	case StatuslineError:
		fg = s.theme.Error
	default:
		fg = s.theme.Text
	}
	// With nothing else to say, show what the linter found on this line.
	if text == "" {
		if d, ok := st.LineIssue(); ok {
			text = d.Severity.String() + ": " + d.Message
			fg = SeverityColor(s.theme, d.Severity)
		}
	}

	right := st.Pending
	msgWidth := s.width
	if right != "" {
		msgWidth -= ansi.StringWidth(right) + 1
	}
	msg := ansi.Truncate(text, max(msgWidth, 0), "…")
	if right != "" {
		msg += strings.Repeat(" ", max(msgWidth-ansi.StringWidth(msg), 0)) + " " + right
	}
	return base.Foreground(lipgloss.Color(fg)).Render(msg)
}
