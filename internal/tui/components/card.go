// Package components provides reusable TUI widgets for the ethicsim screens.
package components

import (
	"github.com/theirongolddev/ethicsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// Figure is one budget figure shown in a card row.
type Figure struct {
	Label string
	Value string
	Note  string
	Color lipgloss.Color // value color; empty uses the primary text color
}

// FigureCard renders a small card with a label, a bold value and a note.
// outerWidth is the total rendered width including border.
func FigureCard(f Figure, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	valueColor := f.Color
	if valueColor == "" {
		valueColor = t.TextPrimary
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(contentWidth).
		Padding(0, 1)

	body := lipgloss.NewStyle().Foreground(t.TextMuted).Render(f.Label) + "\n" +
		lipgloss.NewStyle().Foreground(valueColor).Bold(true).Render(f.Value)
	if f.Note != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render(f.Note)
	}

	return cardStyle.Render(body)
}

// FigureRow renders figure cards side by side, summing to totalWidth.
func FigureRow(figures []Figure, totalWidth int) string {
	if len(figures) == 0 {
		return ""
	}
	widths := LayoutRow(totalWidth, len(figures))
	rendered := make([]string, len(figures))
	for i, f := range figures {
		rendered[i] = FigureCard(f, widths[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// Panel renders a bordered content panel with an optional title. A focused
// panel uses the accent border.
func Panel(title, body string, outerWidth int, focused bool) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	border := t.Border
	if focused {
		border = t.BorderAccent
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(contentWidth).
		Padding(0, 1)

	content := ""
	if title != "" {
		content = lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true).Render(title) + "\n"
	}
	content += body

	return style.Render(content)
}

// PanelInnerWidth returns the usable text width inside a Panel given its
// outer width.
func PanelInnerWidth(outerWidth int) int {
	w := outerWidth - 4 // 2 border + 2 padding
	if w < 10 {
		w = 10
	}
	return w
}
