package components

import (
	"strings"

	"github.com/theirongolddev/ethicsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom bar: key hints on the left and the
// latest notice on the right.
func RenderStatusBar(width int, hints, notice string, warn bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " " + hints
	right := ""
	if notice != "" {
		color := t.Accent
		if warn {
			color = t.Caution
		}
		right = lipgloss.NewStyle().Foreground(color).Render(notice) + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		// Notice wins over hints when space is short.
		return style.Render(right)
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
