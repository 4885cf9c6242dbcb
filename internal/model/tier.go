// Package model defines domain types for ethicsim builds: tiers, categories,
// options, costs and the budget state a build session carries.
package model

import "github.com/shopspring/decimal"

// Tier is one of the fixed budget levels chosen once per build session.
type Tier string

const (
	TierNone   Tier = ""
	TierSmall  Tier = "small"
	TierMedium Tier = "medium"
	TierLarge  Tier = "large"
)

// Tiers lists every selectable tier, smallest first.
var Tiers = []Tier{TierSmall, TierMedium, TierLarge}

// Valid reports whether t is one of the selectable tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierSmall, TierMedium, TierLarge:
		return true
	}
	return false
}

// Label returns the human-facing tier name.
func (t Tier) Label() string {
	switch t {
	case TierSmall:
		return "Small Startup"
	case TierMedium:
		return "Growing Company"
	case TierLarge:
		return "Tech Giant"
	}
	return "No budget selected"
}

// ParseTier converts user input into a Tier.
func ParseTier(s string) (Tier, bool) {
	t := Tier(s)
	return t, t.Valid()
}

// DefaultTierBudgets holds the total budget bound to each tier.
var DefaultTierBudgets = map[Tier]decimal.Decimal{
	TierSmall:  decimal.NewFromInt(50_000),
	TierMedium: decimal.NewFromInt(500_000),
	TierLarge:  decimal.NewFromInt(5_000_000),
}
