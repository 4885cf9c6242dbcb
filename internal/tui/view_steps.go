package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/ethicsim/internal/cli"
	"github.com/theirongolddev/ethicsim/internal/content"
	"github.com/theirongolddev/ethicsim/internal/flow"
	"github.com/theirongolddev/ethicsim/internal/model"
	"github.com/theirongolddev/ethicsim/internal/tui/components"
	"github.com/theirongolddev/ethicsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var tierBlurbs = map[model.Tier]string{
	model.TierSmall:  "A scrappy team. Most premium safeguards are out of reach.",
	model.TierMedium: "Room for real investment, but every safeguard competes with another.",
	model.TierLarge:  "Everything is on the table. What you leave out is a choice.",
}

func (a *App) renderBudgetStep(cw int) string {
	t := theme.Active
	catalog := a.sess.Catalog()
	current := a.sess.Budget().Tier

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	cursorStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Highlight).Bold(true)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	innerW := components.PanelInnerWidth(cw)

	var b strings.Builder
	b.WriteString(mutedStyle.Render("How big is the company building this product?"))
	b.WriteString("\n\n")
	for i, tier := range model.Tiers {
		marker := "( )"
		if tier == current {
			marker = "(•)"
		}
		pointer := "  "
		if i == a.cursor {
			pointer = "› "
		}
		line := fmt.Sprintf("%s%s %-18s %12s", pointer, marker, tier.Label(), cli.FormatAmount(catalog.Budget(tier)))

		switch {
		case i == a.cursor:
			b.WriteString(cursorStyle.Render(line))
		case tier == current:
			b.WriteString(selStyle.Render(line))
		default:
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("      " + truncStr(tierBlurbs[tier], innerW-6)))
		b.WriteString("\n\n")
	}

	return components.Panel("Choose your budget", strings.TrimRight(b.String(), "\n"), cw, true)
}

// optionRow renders one option line of an option step.
func (a *App) optionRow(c model.Category, idx int, id model.OptionID, label string, width int) string {
	t := theme.Active

	selected := a.sess.IsSelected(c, id)
	available := a.sess.IsAvailable(c, id)
	affordable := a.sess.CanAfford(c, id)

	marker := "( )"
	if c.MultiSelect() {
		marker = "[ ]"
	}
	if selected {
		marker = "(•)"
		if c.MultiSelect() {
			marker = "[x]"
		}
	}
	pointer := "  "
	if idx == a.cursor {
		pointer = "› "
	}

	cost := "n/a"
	if cc := a.sess.Cost(c, id); cc.Priced {
		cost = cli.FormatAmount(cc.Amount)
		if a.width < compactWidth {
			cost = cli.FormatShortAmount(cc.Amount)
		}
	}

	status := ""
	statusColor := t.TextDim
	switch {
	case selected:
		status, statusColor = "selected", t.Accent
	case !available:
		status, statusColor = "unavailable", t.Unavailable
	case !affordable:
		status, statusColor = "over budget", t.OverBudget
	}

	labelW := width - 2 - 4 - 12 - 13
	if labelW < 10 {
		labelW = 10
	}
	text := fmt.Sprintf("%s%s %-*s %11s", pointer, marker, labelW, truncStr(label, labelW), cost)

	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	switch {
	case !available:
		textStyle = textStyle.Foreground(t.TextDim)
	case selected:
		textStyle = textStyle.Foreground(t.Accent).Bold(true)
	}
	if idx == a.cursor {
		textStyle = textStyle.Background(t.Highlight)
	}

	return textStyle.Render(text) + " " + lipgloss.NewStyle().Foreground(statusColor).Render(status)
}

func (a *App) renderOptionStep(step flow.Step, cw int) string {
	t := theme.Active
	c, _ := step.Category()
	opts := a.sess.Catalog().Options(c)

	compact := a.isCompactLayout()
	listW, detailW := cw, cw
	if !compact {
		widths := components.LayoutRow(cw, 2)
		listW, detailW = widths[0], widths[1]
	}
	innerList := components.PanelInnerWidth(listW)
	innerDetail := components.PanelInnerWidth(detailW)

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	// Option list
	var list strings.Builder
	if c.MultiSelect() {
		list.WriteString(mutedStyle.Render("Pick one or more sources."))
	} else {
		list.WriteString(mutedStyle.Render("Pick one."))
	}
	list.WriteString("\n\n")
	for i, o := range opts {
		list.WriteString(a.optionRow(c, i, o.ID, o.Label, innerList))
		list.WriteString("\n")
	}
	if c == model.CategoryBehavior {
		box := "[ ]"
		if a.sess.CurrentSelections().AdaptToUser {
			box = "[x]"
		}
		list.WriteString("\n")
		list.WriteString(mutedStyle.Render(box + " Adapt to each user (press a)"))
	}
	listPanel := components.Panel(step.Title(), list.String(), listW, true)

	// Detail: option under the cursor, trade-off, insights
	var detail strings.Builder
	wrap := lipgloss.NewStyle().Width(innerDetail)
	headStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	if a.cursor >= 0 && a.cursor < len(opts) {
		o := opts[a.cursor]
		detail.WriteString(headStyle.Render(o.Label))
		detail.WriteString("\n")
		detail.WriteString(wrap.Foreground(t.TextMuted).Render(o.Description))
		detail.WriteString("\n")
		if !a.sess.IsAvailable(c, o.ID) && o.UnavailableReason != "" {
			detail.WriteString(wrap.Foreground(t.Unavailable).Render("Not available: " + o.UnavailableReason))
			detail.WriteString("\n")
		}
	}

	if to, ok := a.sess.TradeOff(c); ok {
		detail.WriteString("\n")
		detail.WriteString(renderTradeOff(to, innerDetail))
	}

	if insights := a.sess.CategoryInsights(c); len(insights) > 0 {
		detail.WriteString("\n")
		detail.WriteString(renderInsights(insights, innerDetail, 3))
	}
	detailPanel := components.Panel("Details", strings.TrimRight(detail.String(), "\n"), detailW, false)

	if compact {
		return lipgloss.JoinVertical(lipgloss.Left, listPanel, detailPanel)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)
}

func renderTradeOff(to content.TradeOff, width int) string {
	t := theme.Active
	proStyle := lipgloss.NewStyle().Foreground(t.Affordable)
	conStyle := lipgloss.NewStyle().Foreground(t.OverBudget)
	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)

	var b strings.Builder
	b.WriteString(headStyle.Render("Trade-offs of your choice"))
	b.WriteString("\n")
	for _, p := range to.Pros {
		b.WriteString(proStyle.Render(truncStr("+ "+p, width)))
		b.WriteString("\n")
	}
	for _, c := range to.Cons {
		b.WriteString(conStyle.Render(truncStr("- "+c, width)))
		b.WriteString("\n")
	}
	return b.String()
}

// renderInsights renders up to limit insights; zero means no limit.
func renderInsights(insights []content.Insight, width, limit int) string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.Insight).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Width(width)

	var b strings.Builder
	for i, in := range insights {
		if limit > 0 && i == limit {
			b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).
				Render(fmt.Sprintf("+%d more on the summary", len(insights)-limit)))
			b.WriteString("\n")
			break
		}
		b.WriteString(titleStyle.Render("◆ " + in.Title))
		b.WriteString("\n")
		b.WriteString(textStyle.Render(in.Text))
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) renderSummaryStep(cw int) string {
	t := theme.Active
	s := a.sess.Summary()
	catalog := a.sess.Catalog()

	effColor := t.Affordable
	switch s.Efficiency {
	case model.EfficiencyExcellent:
		effColor = t.AccentBright
	case model.EfficiencyRemaining:
		effColor = t.Caution
	}

	figures := components.FigureRow([]components.Figure{
		{Label: "Total budget", Value: cli.FormatAmount(s.Budget.Total), Note: s.Budget.Tier.Label()},
		{Label: "Spent", Value: cli.FormatAmount(s.Budget.Spent()), Note: cli.FormatPercent(s.SpentPercent) + " of budget"},
		{Label: "Remaining", Value: cli.FormatAmount(s.Budget.Remaining), Color: effColor},
	}, cw)

	remark := " " + lipgloss.NewStyle().Foreground(effColor).Render(s.Efficiency.Remark())

	compact := a.isCompactLayout()
	leftW, rightW := cw, cw
	if !compact {
		widths := components.LayoutRow(cw, 2)
		leftW, rightW = widths[0], widths[1]
	}

	// Configuration
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	innerLeft := components.PanelInnerWidth(leftW)
	var cfg strings.Builder
	for _, c := range model.Categories {
		active := s.Selections.Active(c)
		names := make([]string, 0, len(active))
		for _, id := range active {
			if o, ok := catalog.Option(c, id); ok {
				names = append(names, o.Label)
			} else {
				names = append(names, string(id))
			}
		}
		value := "none"
		if len(names) > 0 {
			value = strings.Join(names, ", ")
		}
		cfg.WriteString(labelStyle.Render(fmt.Sprintf("%-22s", c.Label())))
		cfg.WriteString(valueStyle.Render(truncStr(value, innerLeft-22)))
		cfg.WriteString("\n")
		if c == model.CategoryBehavior {
			adapt := "no"
			if s.Selections.AdaptToUser {
				adapt = "yes"
			}
			cfg.WriteString(labelStyle.Render(fmt.Sprintf("%-22s", "Adapt to user")))
			cfg.WriteString(valueStyle.Render(adapt))
			cfg.WriteString("\n")
		}
	}
	left := components.Panel("Your AI product", strings.TrimRight(cfg.String(), "\n"), leftW, false)

	if a.chatting || len(a.chatLog) > 0 {
		left = lipgloss.JoinVertical(lipgloss.Left, left, a.renderChat(leftW))
	}

	body := "No ethical considerations: nothing was selected."
	if insights := a.sess.Insights(); len(insights) > 0 {
		body = strings.TrimRight(renderInsights(insights, components.PanelInnerWidth(rightW), 0), "\n")
	}
	right := components.Panel("Ethical considerations", body, rightW, false)

	var panels string
	if compact {
		panels = lipgloss.JoinVertical(lipgloss.Left, left, right)
	} else {
		panels = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}

	return lipgloss.JoinVertical(lipgloss.Left, figures, remark, "", panels)
}

func (a *App) renderChat(w int) string {
	t := theme.Active
	inner := components.PanelInnerWidth(w)
	youStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	botStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Width(inner)

	var b strings.Builder
	for _, ex := range a.chatLog {
		b.WriteString(youStyle.Render(truncStr("you › "+ex.prompt, inner)))
		b.WriteString("\n")
		b.WriteString(botStyle.Render("ai  › " + ex.reply))
		b.WriteString("\n")
	}
	if a.chatting {
		b.WriteString(a.chatInput.View())
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render("press c to keep chatting"))
	}
	return components.Panel("Try your assistant", b.String(), w, a.chatting)
}
