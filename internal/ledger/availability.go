package ledger

import (
	"github.com/theirongolddev/ethicsim/internal/model"

	"github.com/shopspring/decimal"
)

// Pricer resolves the cost of an option at a tier. Unknown options must be
// reported as unavailable rather than failing.
type Pricer interface {
	Cost(c model.Category, id model.OptionID, tier model.Tier) model.Cost
}

// IsPriced reports whether the option has a price at tier.
func IsPriced(p Pricer, c model.Category, id model.OptionID, tier model.Tier) bool {
	return p.Cost(c, id, tier).Priced
}

// IsAffordable reports whether the option can be picked with remaining budget.
// An option that is already part of the active selection is always
// affordable: it has been paid for, and later unrelated choices must not
// invalidate it.
func IsAffordable(p Pricer, c model.Category, id model.OptionID, tier model.Tier, remaining decimal.Decimal, alreadySelected bool) bool {
	if alreadySelected {
		return true
	}
	cost := p.Cost(c, id, tier)
	return cost.Priced && cost.Amount.LessThanOrEqual(remaining)
}
