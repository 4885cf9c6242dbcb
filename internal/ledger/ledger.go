// Package ledger holds the authoritative budget and selection state of a
// build session. Every mutation validates first and applies second, so a
// rejected operation never leaves partial state behind.
package ledger

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/ethicsim/internal/model"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnavailable is returned when an option has no price at the current
	// tier or is not part of the catalog at all. The ledger is unchanged.
	ErrUnavailable = errors.New("option is not available at this budget tier")
	// ErrInsufficientBudget is returned when applying an operation would drive
	// the remaining budget below zero. The ledger is unchanged.
	ErrInsufficientBudget = errors.New("insufficient budget")
	// ErrInvalidState is returned when an operation's prerequisites are
	// missing, e.g. picking an option before a tier is chosen.
	ErrInvalidState = errors.New("invalid state for this operation")
)

// TierBudgets resolves the total budget bound to a tier.
type TierBudgets interface {
	Budget(tier model.Tier) decimal.Decimal
}

// Catalog is the static pricing data a ledger charges against.
type Catalog interface {
	Pricer
	TierBudgets
}

// Ledger tracks budget and active selections for one build session.
// It is not safe for concurrent use.
type Ledger struct {
	catalog Catalog

	budget model.BudgetState
	sel    model.Selections
}

// New returns an empty ledger charging against catalog.
func New(catalog Catalog) *Ledger {
	return &Ledger{catalog: catalog}
}

// Budget returns the current budget figures.
func (l *Ledger) Budget() model.BudgetState {
	return l.budget
}

// Remaining returns the unspent budget.
func (l *Ledger) Remaining() decimal.Decimal {
	return l.budget.Remaining
}

// Tier returns the tier chosen for this session, or TierNone.
func (l *Ledger) Tier() model.Tier {
	return l.budget.Tier
}

// Selections returns a copy of the active selections.
func (l *Ledger) Selections() model.Selections {
	s := l.sel.Clone()
	s.Tier = l.budget.Tier
	return s
}

// HasSelections reports whether any option or flag is active.
func (l *Ledger) HasSelections() bool {
	return !l.sel.Empty()
}

// Cost prices an option at the session tier.
func (l *Ledger) Cost(c model.Category, id model.OptionID) model.Cost {
	return l.catalog.Cost(c, id, l.budget.Tier)
}

// InitBudget starts a session at tier. Existing selections are only
// discarded when reset is true; otherwise ErrInvalidState is returned and
// nothing changes.
func (l *Ledger) InitBudget(tier model.Tier, reset bool) error {
	if !tier.Valid() {
		return fmt.Errorf("%w: unknown tier %q", ErrInvalidState, tier)
	}
	if l.HasSelections() && !reset {
		return fmt.Errorf("%w: selections exist, reset required to change tier", ErrInvalidState)
	}

	total := l.catalog.Budget(tier)
	l.budget = model.BudgetState{Tier: tier, Total: total, Remaining: total}
	l.sel = model.Selections{}
	return nil
}

// Reset clears the tier, the budget and every selection.
func (l *Ledger) Reset() {
	l.budget = model.BudgetState{}
	l.sel = model.Selections{}
}

// ToggleMultiSelect adds id to, or removes it from, a multi-select category.
// Adding charges the option's price; removing refunds the same price looked
// up at the same tier.
func (l *Ledger) ToggleMultiSelect(c model.Category, id model.OptionID) error {
	if l.budget.Tier == model.TierNone {
		return fmt.Errorf("%w: no budget tier chosen", ErrInvalidState)
	}
	if !c.MultiSelect() {
		return fmt.Errorf("%w: %s is single-select", ErrInvalidState, c)
	}

	cost := l.Cost(c, id)
	if !cost.Priced {
		return ErrUnavailable
	}

	if idx := indexOf(l.sel.Data, id); idx >= 0 {
		refunded := l.budget.Remaining.Add(cost.Amount)
		if refunded.GreaterThan(l.budget.Total) {
			return fmt.Errorf("%w: refund of %s exceeds total budget", ErrInvalidState, model.Key(c, id))
		}
		data := make([]model.OptionID, 0, len(l.sel.Data)-1)
		data = append(data, l.sel.Data[:idx]...)
		data = append(data, l.sel.Data[idx+1:]...)

		l.budget.Remaining = refunded
		l.sel.Data = data
		return nil
	}

	if cost.Amount.GreaterThan(l.budget.Remaining) {
		return ErrInsufficientBudget
	}
	l.budget.Remaining = l.budget.Remaining.Sub(cost.Amount)
	l.sel.Data = append(append([]model.OptionID(nil), l.sel.Data...), id)
	return nil
}

// SetSingleSelect makes id the active option of a single-select category.
// The previous option is refunded and the new one charged in one step, so a
// switch moves the remaining budget by exactly cost(old) - cost(new).
func (l *Ledger) SetSingleSelect(c model.Category, id model.OptionID) error {
	if l.budget.Tier == model.TierNone {
		return fmt.Errorf("%w: no budget tier chosen", ErrInvalidState)
	}
	slot := l.slot(c)
	if slot == nil {
		return fmt.Errorf("%w: %s is not single-select", ErrInvalidState, c)
	}

	newCost := l.Cost(c, id)
	if !newCost.Priced {
		return ErrUnavailable
	}
	if *slot == id {
		return nil
	}

	oldAmount := decimal.Zero
	if *slot != "" {
		oldCost := l.Cost(c, *slot)
		if oldCost.Priced {
			oldAmount = oldCost.Amount
		}
	}

	next := l.budget.Remaining.Add(oldAmount).Sub(newCost.Amount)
	if next.IsNegative() {
		return ErrInsufficientBudget
	}
	if next.GreaterThan(l.budget.Total) {
		return fmt.Errorf("%w: switch to %s exceeds total budget", ErrInvalidState, model.Key(c, id))
	}

	l.budget.Remaining = next
	*slot = id
	return nil
}

// SetAdaptToUser sets the cost-free personalisation flag.
func (l *Ledger) SetAdaptToUser(on bool) error {
	if l.budget.Tier == model.TierNone {
		return fmt.Errorf("%w: no budget tier chosen", ErrInvalidState)
	}
	l.sel.AdaptToUser = on
	return nil
}

func (l *Ledger) slot(c model.Category) *model.OptionID {
	switch c {
	case model.CategoryFiltering:
		return &l.sel.Filtering
	case model.CategoryBehavior:
		return &l.sel.Behavior
	case model.CategoryBias:
		return &l.sel.Bias
	}
	return nil
}

func indexOf(ids []model.OptionID, id model.OptionID) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
