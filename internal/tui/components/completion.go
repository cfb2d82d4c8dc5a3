package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"tedit/internal/completion"
)

type CompletionComponent struct {
	items    []completion.Item
	selected int
	height   int
	width    int
}

func NewCompletionComponent(items []completion.Item, selected int, width int) CompletionComponent {
	maxHeight := 8 // Maximum completion window height
	height := len(items)
	if height > maxHeight {
		height = maxHeight
	}

	return CompletionComponent{
		items:    items,
		selected: selected,
		height:   height,
		width:    max(width, 8),
	}
}

func (c CompletionComponent) Render() string {
	if len(c.items) == 0 {
		return ""
	}

	// Calculate visible range for scrolling
	startIdx := 0
	endIdx := len(c.items)
	if len(c.items) > c.height {
		// Scroll to keep selected item visible
		if c.selected >= c.height {
			startIdx = c.selected - c.height + 1
		}
		endIdx = startIdx + c.height
		if endIdx > len(c.items) {
			endIdx = len(c.items)
			startIdx = endIdx - c.height
		}
	}

	inner := c.width - 2
	var lines []string
	for i := startIdx; i < endIdx; i++ {
		item := c.items[i]
		prefix := "  "
		if i == c.selected {
			prefix = "> "
		}
		line := prefix + item.Text

		// Right-align the description when there is room for it
		if item.Description != "" {
			space := inner - ansi.StringWidth(line) - 2
			if space > 3 {
				desc := ansi.Truncate(item.Description, space, "...")
				pad := inner - ansi.StringWidth(line) - ansi.StringWidth(desc)
				line += strings.Repeat(" ", max(pad, 1)) + desc
			}
		}
		line = ansi.Truncate(line, inner, "...")
		lines = append(lines, fmt.Sprintf("│%s%s│", line, strings.Repeat(" ", max(inner-ansi.StringWidth(line), 0))))
	}

	border := strings.Repeat("─", inner)
	return "┌" + border + "┐\n" + strings.Join(lines, "\n") + "\n└" + border + "┘"
}

func (c CompletionComponent) Width() int { return c.width }

func (c CompletionComponent) Height() int {
	if len(c.items) == 0 {
		return 0
	}
	return c.height + 2 // +2 for borders
}
