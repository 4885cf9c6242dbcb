package model

import "github.com/shopspring/decimal"

// Cost is the price of an option at a tier. The zero value is unavailable,
// which is distinct from a priced option costing nothing.
type Cost struct {
	Amount decimal.Decimal
	Priced bool
}

// Price returns an available cost of n currency units.
func Price(n int64) Cost {
	return Cost{Amount: decimal.NewFromInt(n), Priced: true}
}

// Unavailable returns the marker for an option with no price at a tier.
func Unavailable() Cost {
	return Cost{}
}

// BudgetState holds the budget figures of a build session.
type BudgetState struct {
	Tier      Tier
	Total     decimal.Decimal
	Remaining decimal.Decimal
}

// Spent returns the amount committed to active selections.
func (b BudgetState) Spent() decimal.Decimal {
	return b.Total.Sub(b.Remaining)
}

// SpentPercent returns spent/total as a percentage in [0, 100].
// A zero total reports 0.
func (b BudgetState) SpentPercent() decimal.Decimal {
	if b.Total.IsZero() {
		return decimal.Zero
	}
	return b.Spent().Mul(decimal.NewFromInt(100)).Div(b.Total)
}
