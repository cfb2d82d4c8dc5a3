package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"tedit/internal/completion"
	"tedit/internal/config"
)

// HelpModal shows the key bindings in effect and the ex commands
type HelpModal struct {
	keymap   *config.Keymap
	commands []completion.Item
}

// NewHelpModal creates a new help modal
func NewHelpModal(keymap *config.Keymap, commands []completion.Item) *HelpModal {
	return &HelpModal{keymap: keymap, commands: commands}
}

type helpLine struct {
	key, desc string
	header    bool
}

func (h *HelpModal) lines() []helpLine {
	var out []helpLine
	section := func(title string, entries []config.HelpEntry) {
		out = append(out, helpLine{key: title, header: true})
		for _, e := range entries {
			out = append(out, helpLine{key: e.Key, desc: e.Desc})
		}
	}
	section("Normal mode", h.keymap.Help(config.ModeNormal))
	section("Visual mode", h.keymap.Help(config.ModeVisual))
	section("Insert mode", h.keymap.Help(config.ModeInsert))

	out = append(out, helpLine{key: "Commands", header: true})
	for _, c := range h.commands {
		out = append(out, helpLine{key: ":" + c.Text, desc: c.Description})
	}
	return out
}

// View renders the help modal to fit in width x height, splitting the
// entries into as many columns as needed.
func (h *HelpModal) View(width, height int) string {
	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("86"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("246"))

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Bold(true)

	rowsPerColumn := max(height-6, 4)
	colWidth := 34

	var columns []string
	var col []string
	flush := func() {
		if len(col) > 0 {
			columns = append(columns, strings.Join(col, "\n"))
			col = nil
		}
	}
	for _, l := range h.lines() {
		if len(col) == rowsPerColumn {
			flush()
		}
		if l.header {
			col = append(col, headerStyle.Render(l.key))
			continue
		}
		entry := keyStyle.Render(l.key) + " " + descStyle.Render(l.desc)
		col = append(col, lipgloss.NewStyle().Width(colWidth).Render(ansi.Truncate(entry, colWidth-1, "…")))
	}
	flush()

	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	content := titleStyle.Render("tedit help") + "\n\n" + body + "\n\n" +
		descStyle.Render("Press Esc to close this help")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modalStyle.Render(content))
}
