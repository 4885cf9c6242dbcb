package model

import "github.com/shopspring/decimal"

// Efficiency buckets how much of the budget a build used.
type Efficiency string

const (
	EfficiencyExcellent Efficiency = "excellent"
	EfficiencyBalanced  Efficiency = "balanced"
	EfficiencyRemaining Efficiency = "remaining"
)

var (
	excellentAbove = decimal.NewFromInt(90)
	remainingBelow = decimal.NewFromInt(50)
)

// ClassifyEfficiency buckets a spent percentage. Both thresholds are strict:
// exactly 90 and exactly 50 are balanced.
func ClassifyEfficiency(spentPct decimal.Decimal) Efficiency {
	switch {
	case spentPct.GreaterThan(excellentAbove):
		return EfficiencyExcellent
	case spentPct.LessThan(remainingBelow):
		return EfficiencyRemaining
	default:
		return EfficiencyBalanced
	}
}

// Remark returns the sentence shown for e in summaries.
func (e Efficiency) Remark() string {
	switch e {
	case EfficiencyExcellent:
		return "Excellent use of budget: you invested almost everything you had."
	case EfficiencyRemaining:
		return "Significant remaining budget: consider where more investment would reduce harm."
	default:
		return "Balanced budget use: you kept a reserve while funding your priorities."
	}
}

// Summary is the final configuration view of a build.
type Summary struct {
	Budget       BudgetState
	SpentPercent decimal.Decimal
	Efficiency   Efficiency
	Selections   Selections
	InsightKeys  []string
}
