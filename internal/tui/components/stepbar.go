package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/ethicsim/internal/flow"
	"github.com/theirongolddev/ethicsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const stepSeparator = " › "

var stepNames = map[flow.Step]string{
	flow.StepBudget:    "Budget",
	flow.StepData:      "Data",
	flow.StepFiltering: "Filtering",
	flow.StepBehavior:  "Behavior",
	flow.StepBias:      "Bias",
	flow.StepSummary:   "Summary",
}

// stepLabel is the plain text shown for a step.
func stepLabel(s flow.Step) string {
	return fmt.Sprintf("%d %s", int(s)+1, stepNames[s])
}

// RenderStepBar renders the linear step indicator. Steps before current are
// shown as done, the current one is highlighted.
func RenderStepBar(current flow.Step) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	doneStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	todoStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	sepStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	parts := make([]string, len(flow.Steps))
	for i, s := range flow.Steps {
		label := stepLabel(s)
		switch {
		case s == current:
			parts[i] = activeStyle.Render(label)
		case s < current:
			parts[i] = doneStyle.Render("✓ " + label)
		default:
			parts[i] = todoStyle.Render(label)
		}
	}
	return " " + strings.Join(parts, sepStyle.Render(stepSeparator))
}

// StepVisualWidth returns the rendered width of s in the step bar.
func StepVisualWidth(s, current flow.Step) int {
	w := lipgloss.Width(stepLabel(s))
	if s < current {
		w += lipgloss.Width("✓ ")
	}
	return w
}

// StepAtX returns the step under column x of the step bar, or false.
func StepAtX(x int, current flow.Step) (flow.Step, bool) {
	pos := 1 // leading space
	sepW := lipgloss.Width(stepSeparator)
	for _, s := range flow.Steps {
		w := StepVisualWidth(s, current)
		if x >= pos && x < pos+w {
			return s, true
		}
		pos += w + sepW
	}
	return 0, false
}
