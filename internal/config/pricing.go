package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/theirongolddev/ethicsim/internal/model"

	"github.com/shopspring/decimal"
)

// OptionInfo describes a selectable option for display.
type OptionInfo struct {
	ID          model.OptionID
	Label       string
	Description string
	// UnavailableReason is shown when the option has no price at a tier.
	UnavailableReason string
}

// OptionPricing declares one option and its price at every tier.
type OptionPricing struct {
	Category model.Category
	Option   OptionInfo
	Small    model.Cost
	Medium   model.Cost
	Large    model.Cost
}

func (p OptionPricing) at(t model.Tier) model.Cost {
	switch t {
	case model.TierSmall:
		return p.Small
	case model.TierMedium:
		return p.Medium
	case model.TierLarge:
		return p.Large
	}
	return model.Unavailable()
}

type costKey struct {
	category model.Category
	option   model.OptionID
	tier     model.Tier
}

// CostTable maps (category, option, tier) to a cost. It is immutable once
// built; use WithOverrides to derive an adjusted copy.
type CostTable struct {
	entries map[costKey]model.Cost
	options map[model.Category][]OptionInfo
	budgets map[model.Tier]decimal.Decimal
	specs   []OptionPricing
}

// NewCostTable validates specs and builds a table. Every option must belong
// to a known category, appear once, and carry non-negative prices.
func NewCostTable(budgets map[model.Tier]decimal.Decimal, specs []OptionPricing) (CostTable, error) {
	t := CostTable{
		entries: make(map[costKey]model.Cost, len(specs)*len(model.Tiers)),
		options: make(map[model.Category][]OptionInfo),
		budgets: make(map[model.Tier]decimal.Decimal, len(model.Tiers)),
		specs:   append([]OptionPricing(nil), specs...),
	}

	for _, tier := range model.Tiers {
		b, ok := budgets[tier]
		if !ok {
			return CostTable{}, fmt.Errorf("tier %q has no budget", tier)
		}
		if b.IsNegative() {
			return CostTable{}, fmt.Errorf("tier %q has negative budget %s", tier, b)
		}
		t.budgets[tier] = b
	}

	for _, s := range specs {
		if !s.Category.Valid() {
			return CostTable{}, fmt.Errorf("option %q: unknown category %q", s.Option.ID, s.Category)
		}
		if s.Option.ID == "" {
			return CostTable{}, fmt.Errorf("category %q: option with empty id", s.Category)
		}
		for _, tier := range model.Tiers {
			k := costKey{s.Category, s.Option.ID, tier}
			if _, dup := t.entries[k]; dup {
				return CostTable{}, fmt.Errorf("option %s declared twice", model.Key(s.Category, s.Option.ID))
			}
			c := s.at(tier)
			if c.Priced && c.Amount.IsNegative() {
				return CostTable{}, fmt.Errorf("option %s: negative price at %s", model.Key(s.Category, s.Option.ID), tier)
			}
			t.entries[k] = c
		}
		t.options[s.Category] = append(t.options[s.Category], s.Option)
	}

	return t, nil
}

// Cost returns the cost of an option at a tier. Unknown combinations are
// reported as unavailable.
func (t CostTable) Cost(c model.Category, id model.OptionID, tier model.Tier) model.Cost {
	return t.entries[costKey{c, id, tier}]
}

// Budget returns the total budget bound to tier, or zero for unknown tiers.
func (t CostTable) Budget(tier model.Tier) decimal.Decimal {
	return t.budgets[tier]
}

// Options returns the options of c in declaration order.
func (t CostTable) Options(c model.Category) []OptionInfo {
	return append([]OptionInfo(nil), t.options[c]...)
}

// Option returns the metadata of one option.
func (t CostTable) Option(c model.Category, id model.OptionID) (OptionInfo, bool) {
	for _, o := range t.options[c] {
		if o.ID == id {
			return o, true
		}
	}
	return OptionInfo{}, false
}

// Known reports whether the table declares id in c.
func (t CostTable) Known(c model.Category, id model.OptionID) bool {
	_, ok := t.Option(c, id)
	return ok
}

// CostOverride replaces the prices of a single option. Nil fields keep the
// default price; tiers listed in Unavailable lose their price entirely.
type CostOverride struct {
	Small       *int64   `toml:"small,omitempty"`
	Medium      *int64   `toml:"medium,omitempty"`
	Large       *int64   `toml:"large,omitempty"`
	Unavailable []string `toml:"unavailable,omitempty"`
}

// WithOverrides returns a new table with overrides applied. Keys have the
// form "category-option" and must name a declared option.
func (t CostTable) WithOverrides(overrides map[string]CostOverride) (CostTable, error) {
	if len(overrides) == 0 {
		return t, nil
	}

	specs := append([]OptionPricing(nil), t.specs...)
	index := make(map[string]int, len(specs))
	for i, s := range specs {
		index[model.Key(s.Category, s.Option.ID)] = i
	}

	// Sorted for deterministic error messages.
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		o := overrides[key]
		i, ok := index[key]
		if !ok {
			return CostTable{}, fmt.Errorf("cost override %q: no such option", key)
		}
		s := &specs[i]
		if o.Small != nil {
			s.Small = model.Price(*o.Small)
		}
		if o.Medium != nil {
			s.Medium = model.Price(*o.Medium)
		}
		if o.Large != nil {
			s.Large = model.Price(*o.Large)
		}
		for _, name := range o.Unavailable {
			tier, ok := model.ParseTier(strings.ToLower(strings.TrimSpace(name)))
			if !ok {
				return CostTable{}, fmt.Errorf("cost override %q: unknown tier %q", key, name)
			}
			switch tier {
			case model.TierSmall:
				s.Small = model.Unavailable()
			case model.TierMedium:
				s.Medium = model.Unavailable()
			case model.TierLarge:
				s.Large = model.Unavailable()
			}
		}
	}

	return NewCostTable(t.budgets, specs)
}

// DefaultPricing declares the built-in option catalog.
var DefaultPricing = []OptionPricing{
	// Training data
	{
		Category: model.CategoryData,
		Option: OptionInfo{
			ID: model.DataPublic, Label: "Public web data",
			Description: "Scraped websites, forums and open datasets. Cheap and broad, but noisy and full of unexamined bias.",
		},
		Small: model.Price(10_000), Medium: model.Price(50_000), Large: model.Price(200_000),
	},
	{
		Category: model.CategoryData,
		Option: OptionInfo{
			ID: model.DataLicensed, Label: "Licensed content",
			Description:       "Books, news and media licensed from rights holders. Higher quality with clear consent.",
			UnavailableReason: "Publishers will not negotiate licences at this budget.",
		},
		Small: model.Unavailable(), Medium: model.Price(150_000), Large: model.Price(800_000),
	},
	{
		Category: model.CategoryData,
		Option: OptionInfo{
			ID: model.DataUser, Label: "User-generated data",
			Description: "Conversations and feedback from your own users. Relevant, but raises consent and privacy questions.",
		},
		Small: model.Price(5_000), Medium: model.Price(40_000), Large: model.Price(300_000),
	},
	{
		Category: model.CategoryData,
		Option: OptionInfo{
			ID: model.DataSynthetic, Label: "Synthetic data",
			Description: "Data generated to fill gaps. Protects privacy, but can amplify the generator's own blind spots.",
		},
		Small: model.Price(20_000), Medium: model.Price(100_000), Large: model.Price(500_000),
	},
	{
		Category: model.CategoryData,
		Option: OptionInfo{
			ID: model.DataCurated, Label: "Expert-curated corpus",
			Description:       "Hand-reviewed data assembled by domain experts and community representatives.",
			UnavailableReason: "Expert curation needs a dedicated team only large budgets can fund.",
		},
		Small: model.Unavailable(), Medium: model.Unavailable(), Large: model.Price(1_200_000),
	},

	// Content filtering
	{
		Category: model.CategoryFiltering,
		Option: OptionInfo{
			ID: model.FilterMinimal, Label: "Minimal filtering",
			Description: "Block only clearly illegal content. Maximum freedom, maximum exposure to harmful output.",
		},
		Small: model.Price(500), Medium: model.Price(5_000), Large: model.Price(20_000),
	},
	{
		Category: model.CategoryFiltering,
		Option: OptionInfo{
			ID: model.FilterModerate, Label: "Moderate filtering",
			Description: "Keyword and classifier based filters for hate, violence and self-harm.",
		},
		Small: model.Price(5_000), Medium: model.Price(40_000), Large: model.Price(150_000),
	},
	{
		Category: model.CategoryFiltering,
		Option: OptionInfo{
			ID: model.FilterStrict, Label: "Strict filtering",
			Description:       "Human review queues on top of classifiers. Safe, but refuses many legitimate requests.",
			UnavailableReason: "Human review teams are out of reach for a small startup.",
		},
		Small: model.Unavailable(), Medium: model.Price(120_000), Large: model.Price(400_000),
	},
	{
		Category: model.CategoryFiltering,
		Option: OptionInfo{
			ID: model.FilterAdaptive, Label: "Context-aware filtering",
			Description:       "Filters that weigh context, intent and culture instead of keywords.",
			UnavailableReason: "Context-aware moderation requires research investment only large budgets allow.",
		},
		Small: model.Unavailable(), Medium: model.Unavailable(), Large: model.Price(900_000),
	},

	// Interaction behavior
	{
		Category: model.CategoryBehavior,
		Option: OptionInfo{
			ID: model.BehaviorNeutral, Label: "Neutral assistant",
			Description: "Factual and even-toned. Predictable, but can feel cold to people who need support.",
		},
		Small: model.Price(1_000), Medium: model.Price(20_000), Large: model.Price(100_000),
	},
	{
		Category: model.CategoryBehavior,
		Option: OptionInfo{
			ID: model.BehaviorDirective, Label: "Directive expert",
			Description: "Gives confident answers and recommendations. Efficient, but risks overreliance.",
		},
		Small: model.Price(5_000), Medium: model.Price(80_000), Large: model.Price(300_000),
	},
	{
		Category: model.CategoryBehavior,
		Option: OptionInfo{
			ID: model.BehaviorEmpathetic, Label: "Empathetic companion",
			Description: "Warm and emotionally attuned. Engaging, but can blur the line between tool and friend.",
		},
		Small: model.Price(15_000), Medium: model.Price(100_000), Large: model.Price(450_000),
	},
	{
		Category: model.CategoryBehavior,
		Option: OptionInfo{
			ID: model.BehaviorSocratic, Label: "Socratic tutor",
			Description:       "Answers with questions that help users reason for themselves.",
			UnavailableReason: "Tuning a questioning style needs more evaluation than a small budget covers.",
		},
		Small: model.Unavailable(), Medium: model.Price(150_000), Large: model.Price(600_000),
	},

	// Bias handling
	{
		Category: model.CategoryBias,
		Option: OptionInfo{
			ID: model.BiasIgnore, Label: "Ship as is",
			Description: "No bias work at all. Costs nothing today; the cost lands on your users.",
		},
		Small: model.Price(0), Medium: model.Price(0), Large: model.Price(0),
	},
	{
		Category: model.CategoryBias,
		Option: OptionInfo{
			ID: model.BiasBasic, Label: "Basic testing",
			Description: "Spot checks against a handful of known bias benchmarks.",
		},
		Small: model.Price(8_000), Medium: model.Price(60_000), Large: model.Price(250_000),
	},
	{
		Category: model.CategoryBias,
		Option: OptionInfo{
			ID: model.BiasMinimize, Label: "Active mitigation",
			Description:       "Rebalanced data, debiasing during training and red-team evaluation.",
			UnavailableReason: "Active mitigation needs specialised staff a small startup cannot hire.",
		},
		Small: model.Unavailable(), Medium: model.Price(300_000), Large: model.Price(1_500_000),
	},
	{
		Category: model.CategoryBias,
		Option: OptionInfo{
			ID: model.BiasAudit, Label: "Independent audit",
			Description:       "External auditors and affected communities review the system before and after launch.",
			UnavailableReason: "Independent audits are only affordable with a large budget.",
		},
		Small: model.Unavailable(), Medium: model.Unavailable(), Large: model.Price(2_000_000),
	},
}

// DefaultCostTable returns the built-in cost table.
func DefaultCostTable() CostTable {
	t, err := NewCostTable(model.DefaultTierBudgets, DefaultPricing)
	if err != nil {
		panic("config: invalid default pricing: " + err.Error())
	}
	return t
}
