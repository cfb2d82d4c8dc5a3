package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"tedit/internal/buffer"
	"tedit/internal/config"
	"tedit/internal/plugin"
	"tedit/internal/session"
	"tedit/internal/viewport"
)

// PaneComponent renders one document window: gutter, highlighted text,
// selection and cursor.
type PaneComponent struct {
	frame session.Frame
	theme config.Theme
}

// NewPaneComponent creates a pane for frame
func NewPaneComponent(frame session.Frame, theme config.Theme) *PaneComponent {
	return &PaneComponent{frame: frame, theme: theme}
}

// cell is the styling of one rune; runs of equal cells share a style.
type cell struct {
	kind     plugin.TokenKind
	selected bool
	cursor   bool
}

// Render returns exactly Rect.Height lines of Rect.Width cells
func (p *PaneComponent) Render() string {
	f := p.frame
	width := max(f.Rect.Width-f.Options.Gutter, 1)
	lines := make([]string, 0, f.Rect.Height)
	for y := 0; y < f.Rect.Height; y++ {
		if y >= len(f.Rows) {
			lines = append(lines, p.filler())
			continue
		}
		row := f.Rows[y]
		lines = append(lines, p.gutter(row)+p.text(row, y, width))
	}
	return strings.Join(lines, "\n")
}

func (p *PaneComponent) filler() string {
	tilde := lipgloss.NewStyle().Foreground(lipgloss.Color(p.theme.Gutter)).Render("~")
	return tilde + strings.Repeat(" ", max(p.frame.Rect.Width-1, 0))
}

func (p *PaneComponent) gutter(row viewport.Row) string {
	f := p.frame
	if f.Options.Gutter == 0 {
		return ""
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(p.theme.Gutter))
	if row.Line == f.CursorRow {
		style = style.Foreground(lipgloss.Color(p.theme.CurrentLine)).Bold(true)
	}
	label := ""
	if row.First {
		label = strconv.Itoa(row.Line + 1)
		if diags := f.Diagnostics(row.Line); len(diags) > 0 {
			style = style.Foreground(lipgloss.Color(SeverityColor(p.theme, Worst(diags))))
		}
	}
	return style.Render(fmt.Sprintf("%*s ", f.Options.Gutter-1, label))
}

func (p *PaneComponent) text(row viewport.Row, y, width int) string {
	f := p.frame
	runes := []rune(f.Line(row.Line))
	kinds := tokenKinds(f.Tokens(row.Line), len(runes))
	onCursorRow := f.Focused && f.CursorSeen && y == f.CursorY

	var b strings.Builder
	used := row.Pad
	b.WriteString(strings.Repeat(" ", row.Pad))

	var run strings.Builder
	var current cell
	flush := func() {
		if run.Len() > 0 {
			b.WriteString(p.style(current).Render(run.String()))
			run.Reset()
		}
	}
	for col := row.Start; col < row.End && col < len(runes); col++ {
		r := runes[col]
		w := viewport.RuneWidth(r, f.Options.TabWidth)
		c := cell{
			kind:     kinds[col],
			selected: f.Visual != nil && f.Visual.Contains(row.Line, col),
			cursor:   onCursorRow && col == f.CursorCol,
		}
		if c != current {
			flush()
			current = c
		}
		if r == '\t' {
			run.WriteString(strings.Repeat(" ", w))
		} else {
			run.WriteRune(r)
		}
		used += w
	}
	flush()

	if onCursorRow && f.CursorCol >= row.End && used < width {
		b.WriteString(cursorStyle().Render(" "))
		used++
	}
	if used < width {
		b.WriteString(strings.Repeat(" ", width-used))
	}
	return b.String()
}

func (p *PaneComponent) style(c cell) lipgloss.Style {
	if c.cursor {
		return cursorStyle()
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(KindColor(p.theme, c.kind)))
	if c.selected {
		st = st.Background(lipgloss.Color(p.theme.Selection))
	}
	return st
}

func cursorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color("7")).Foreground(lipgloss.Color("0"))
}

// tokenKinds spreads token kinds over the n runes of a line.
func tokenKinds(toks []plugin.Token, n int) []plugin.TokenKind {
	kinds := make([]plugin.TokenKind, n)
	i := 0
	for _, t := range toks {
		for range t.Text {
			if i >= n {
				return kinds
			}
			kinds[i] = t.Kind
			i++
		}
	}
	return kinds
}

// KindColor maps a token kind to its theme color.
func KindColor(th config.Theme, k plugin.TokenKind) string {
	switch k {
	case plugin.Keyword:
		return th.Keyword
	case plugin.String:
		return th.String
	case plugin.Comment:
		return th.Comment
	case plugin.Number:
		return th.Number
	case plugin.Operator:
		return th.Operator
	case plugin.Name:
		return th.Name
	}
	return th.Text
}

// Worst returns the highest severity in diags.
func Worst(diags []buffer.Diagnostic) buffer.Severity {
	worst := buffer.SeverityInfo
	for _, d := range diags {
		if d.Severity > worst {
			worst = d.Severity
		}
	}
	return worst
}

func SeverityColor(th config.Theme, s buffer.Severity) string {
	switch s {
	case buffer.SeverityError:
		return th.Error
	case buffer.SeverityWarning:
		return th.Warning
	}
	return th.Info
}
