// Package pipeline derives the presentation views of a build from its
// selections: insight keys, trade-off keys and the exportable summary.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/ethicsim/internal/cli"
	"github.com/theirongolddev/ethicsim/internal/config"
	"github.com/theirongolddev/ethicsim/internal/content"
	"github.com/theirongolddev/ethicsim/internal/model"
)

// OptionCatalog lists the declared options of a category in catalog order.
type OptionCatalog interface {
	Options(c model.Category) []config.OptionInfo
}

// Aggregator turns a selection set into derived views. It holds no mutable
// state; every method is a pure function of its arguments.
type Aggregator struct {
	catalog OptionCatalog
	tables  content.Tables
}

// NewAggregator returns an aggregator reading option metadata from catalog
// and commentary from tables.
func NewAggregator(catalog OptionCatalog, tables content.Tables) Aggregator {
	return Aggregator{catalog: catalog, tables: tables}
}

// InsightKeys returns a "category-option" key for every active selection in
// category order, data sources in selection order, followed by the
// adapt-to-user key when that flag is set.
func InsightKeys(sel model.Selections) []string {
	var keys []string
	for _, c := range model.Categories {
		for _, id := range sel.Active(c) {
			keys = append(keys, model.Key(c, id))
		}
		// The flag is configured alongside behavior and is grouped with it.
		if c == model.CategoryBehavior && sel.AdaptToUser {
			keys = append(keys, model.AdaptToUserKey)
		}
	}
	return keys
}

// Insights returns the commentary applicable to sel. Each insight is
// emitted once, at the position of the first key that pulls it in.
func (a Aggregator) Insights(sel model.Selections) []content.Insight {
	seen := make(map[string]struct{})
	var out []content.Insight
	for _, key := range InsightKeys(sel) {
		for _, in := range a.tables.InsightsFor(key) {
			if _, dup := seen[in.ID]; dup {
				continue
			}
			seen[in.ID] = struct{}{}
			out = append(out, in)
		}
	}
	return out
}

// CategoryInsights returns the commentary pulled in by the choices of c.
func (a Aggregator) CategoryInsights(c model.Category, sel model.Selections) []content.Insight {
	return a.Insights(sel.Only(c))
}

// TradeOffKey returns the trade-off lookup key for c. For data the choice is
// the whole active set in catalog order, so trade-offs are authored per
// combination. ok is false when nothing is selected in c.
func (a Aggregator) TradeOffKey(c model.Category, sel model.Selections) (string, bool) {
	active := sel.Active(c)
	if len(active) == 0 {
		return "", false
	}
	if !c.MultiSelect() {
		return model.Key(c, active[0]), true
	}

	ordered := make([]string, 0, len(active))
	for _, o := range a.catalog.Options(c) {
		if sel.IsActive(c, o.ID) {
			ordered = append(ordered, string(o.ID))
		}
	}
	// Ids missing from the catalog keep their selection order at the end.
	for _, id := range active {
		if !containsID(ordered, id) {
			ordered = append(ordered, string(id))
		}
	}
	return string(c) + "-" + strings.Join(ordered, ","), true
}

// TradeOff returns the authored trade-off for the current choice in c.
func (a Aggregator) TradeOff(c model.Category, sel model.Selections) (content.TradeOff, bool) {
	key, ok := a.TradeOffKey(c, sel)
	if !ok {
		return content.TradeOff{}, false
	}
	return a.tables.TradeOff(key)
}

// Summarize computes the final configuration view.
func (a Aggregator) Summarize(sel model.Selections, budget model.BudgetState) model.Summary {
	pct := budget.SpentPercent()
	sel = sel.Clone()
	sel.Tier = budget.Tier
	return model.Summary{
		Budget:       budget,
		SpentPercent: pct,
		Efficiency:   model.ClassifyEfficiency(pct),
		Selections:   sel,
		InsightKeys:  InsightKeys(sel),
	}
}

// SummaryText renders s as deterministic plain text suitable for export.
func (a Aggregator) SummaryText(s model.Summary) string {
	var b strings.Builder

	b.WriteString("AI Product Configuration Summary\n")
	b.WriteString("================================\n\n")

	fmt.Fprintf(&b, "Budget tier:       %s (%s)\n", s.Budget.Tier.Label(), s.Budget.Tier)
	fmt.Fprintf(&b, "Total budget:      %s\n", cli.FormatAmount(s.Budget.Total))
	fmt.Fprintf(&b, "Spent:             %s (%s)\n", cli.FormatAmount(s.Budget.Spent()), cli.FormatPercent(s.SpentPercent))
	fmt.Fprintf(&b, "Remaining:         %s\n", cli.FormatAmount(s.Budget.Remaining))
	fmt.Fprintf(&b, "Budget efficiency: %s\n\n", s.Efficiency.Remark())

	for _, c := range model.Categories {
		fmt.Fprintf(&b, "%-22s %s\n", c.Label()+":", a.describe(c, s.Selections))
		if c == model.CategoryBehavior {
			adapt := "no"
			if s.Selections.AdaptToUser {
				adapt = "yes"
			}
			fmt.Fprintf(&b, "%-22s %s\n", "Adapt to user:", adapt)
		}
	}

	insights := a.Insights(s.Selections)
	if len(insights) > 0 {
		b.WriteString("\nEthical considerations:\n")
		for _, in := range insights {
			fmt.Fprintf(&b, "- %s: %s\n", in.Title, in.Text)
		}
	}

	return b.String()
}

func (a Aggregator) describe(c model.Category, sel model.Selections) string {
	active := sel.Active(c)
	if len(active) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(active))
	for _, id := range active {
		parts = append(parts, a.optionLabel(c, id))
	}
	return strings.Join(parts, ", ")
}

func (a Aggregator) optionLabel(c model.Category, id model.OptionID) string {
	for _, o := range a.catalog.Options(c) {
		if o.ID == id {
			return fmt.Sprintf("%s (%s)", o.Label, id)
		}
	}
	return string(id)
}

func containsID(ids []string, id model.OptionID) bool {
	for _, v := range ids {
		if v == string(id) {
			return true
		}
	}
	return false
}
