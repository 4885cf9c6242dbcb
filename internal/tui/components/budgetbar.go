package components

import (
	"fmt"

	"github.com/theirongolddev/ethicsim/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForSpent returns the bar color for a spent fraction in [0, 1].
func ColorForSpent(frac float64) lipgloss.Color {
	t := theme.Active
	switch {
	case frac > 0.9:
		return t.OverBudget
	case frac >= 0.5:
		return t.Caution
	default:
		return t.Affordable
	}
}

// BudgetBar renders a labeled bar of the spent budget fraction followed by
// the percentage.
func BudgetBar(label string, frac float64, width int) string {
	t := theme.Active

	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	barW := width - lipgloss.Width(label) - 6
	if barW < 4 {
		barW = 4
	}

	color := ColorForSpent(frac)
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return labelStyle.Render(label) + " " + bar.ViewAs(frac) + " " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", frac*100))
}
