// Package session is the surface a front-end drives: it combines the ledger,
// the step flow and the aggregator behind query functions and mutators that
// return the new state or a rejection reason.
package session

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/ethicsim/internal/config"
	"github.com/theirongolddev/ethicsim/internal/content"
	"github.com/theirongolddev/ethicsim/internal/flow"
	"github.com/theirongolddev/ethicsim/internal/ledger"
	"github.com/theirongolddev/ethicsim/internal/model"
	"github.com/theirongolddev/ethicsim/internal/pipeline"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Snapshot is the state after a mutator ran, whether it applied or not.
type Snapshot struct {
	Step       flow.Step
	Budget     model.BudgetState
	Selections model.Selections
}

// Session is one build session. It is driven from a single goroutine.
type Session struct {
	costs  config.CostTable
	ledger *ledger.Ledger
	flow   flow.Flow
	agg    pipeline.Aggregator
	log    zerolog.Logger
}

// New starts a session at the budget step.
func New(costs config.CostTable, tables content.Tables, log zerolog.Logger) *Session {
	return &Session{
		costs:  costs,
		ledger: ledger.New(costs),
		agg:    pipeline.NewAggregator(costs, tables),
		log:    log.With().Str("component", "session").Logger(),
	}
}

// Catalog returns the cost table the session charges against.
func (s *Session) Catalog() config.CostTable {
	return s.costs
}

// ─── Queries ────────────────────────────────────────────────────

// Cost prices an option at the session tier.
func (s *Session) Cost(c model.Category, id model.OptionID) model.Cost {
	return s.ledger.Cost(c, id)
}

// IsAvailable reports whether the option is priced at the session tier.
func (s *Session) IsAvailable(c model.Category, id model.OptionID) bool {
	return ledger.IsPriced(s.costs, c, id, s.ledger.Tier())
}

// IsSelected reports whether the option is part of the active selection.
func (s *Session) IsSelected(c model.Category, id model.OptionID) bool {
	return s.ledger.Selections().IsActive(c, id)
}

// CanAfford reports whether picking the option would be accepted. For
// single-select categories the budget held by the current choice counts as
// available, since switching refunds it.
func (s *Session) CanAfford(c model.Category, id model.OptionID) bool {
	sel := s.ledger.Selections()
	remaining := s.ledger.Remaining()
	if !c.MultiSelect() {
		for _, held := range sel.Active(c) {
			if cost := s.ledger.Cost(c, held); cost.Priced {
				remaining = remaining.Add(cost.Amount)
			}
		}
	}
	return ledger.IsAffordable(s.costs, c, id, s.ledger.Tier(), remaining, sel.IsActive(c, id))
}

// CurrentSelections returns a copy of the active selections.
func (s *Session) CurrentSelections() model.Selections {
	return s.ledger.Selections()
}

// RemainingBudget returns the unspent budget.
func (s *Session) RemainingBudget() decimal.Decimal {
	return s.ledger.Remaining()
}

// Budget returns the budget figures.
func (s *Session) Budget() model.BudgetState {
	return s.ledger.Budget()
}

// Step returns the active step.
func (s *Session) Step() flow.Step {
	return s.flow.Current()
}

// IsStepComplete reports whether the active step allows advancing.
func (s *Session) IsStepComplete() bool {
	return s.StepComplete(s.flow.Current())
}

// StepComplete implements flow.Completer.
func (s *Session) StepComplete(step flow.Step) bool {
	return flow.IsStepComplete(step, s.ledger.Selections())
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Step:       s.flow.Current(),
		Budget:     s.ledger.Budget(),
		Selections: s.ledger.Selections(),
	}
}

// ─── Mutators ───────────────────────────────────────────────────

// SelectTier chooses the budget tier. With selections already made, reset
// must be true to discard them.
func (s *Session) SelectTier(tier model.Tier, reset bool) (Snapshot, error) {
	err := s.ledger.InitBudget(tier, reset)
	return s.record("select_tier", "", "", err, func(e *zerolog.Event) {
		e.Str("tier", string(tier)).Bool("reset", reset)
	})
}

// ToggleDataSource adds or removes a training data source.
func (s *Session) ToggleDataSource(id model.OptionID) (Snapshot, error) {
	err := s.ledger.ToggleMultiSelect(model.CategoryData, id)
	return s.record("toggle", model.CategoryData, id, err, nil)
}

// SetFiltering picks the content filtering level.
func (s *Session) SetFiltering(id model.OptionID) (Snapshot, error) {
	return s.setSingle(model.CategoryFiltering, id)
}

// SetBehavior picks the interaction behavior.
func (s *Session) SetBehavior(id model.OptionID) (Snapshot, error) {
	return s.setSingle(model.CategoryBehavior, id)
}

// SetBias picks the bias handling strategy.
func (s *Session) SetBias(id model.OptionID) (Snapshot, error) {
	return s.setSingle(model.CategoryBias, id)
}

// Choose dispatches to the mutator for c.
func (s *Session) Choose(c model.Category, id model.OptionID) (Snapshot, error) {
	if c.MultiSelect() {
		return s.ToggleDataSource(id)
	}
	return s.setSingle(c, id)
}

// SetAdaptToUser toggles personalisation.
func (s *Session) SetAdaptToUser(on bool) (Snapshot, error) {
	err := s.ledger.SetAdaptToUser(on)
	return s.record("adapt_to_user", "", "", err, func(e *zerolog.Event) {
		e.Bool("on", on)
	})
}

// AdvanceStep moves to the next step when the current one is complete.
func (s *Session) AdvanceStep() (Snapshot, error) {
	from := s.flow.Current()
	err := s.flow.Advance(s)
	return s.record("advance", "", "", err, func(e *zerolog.Event) {
		e.Str("from", from.Title())
	})
}

// RetreatStep moves to the previous step. Selections are kept.
func (s *Session) RetreatStep() (Snapshot, error) {
	from := s.flow.Current()
	err := s.flow.Retreat()
	return s.record("retreat", "", "", err, func(e *zerolog.Event) {
		e.Str("from", from.Title())
	})
}

// Reset restarts the build: no tier, no selections, budget step.
func (s *Session) Reset() (Snapshot, error) {
	s.ledger.Reset()
	s.flow.Reset()
	return s.record("reset", "", "", nil, nil)
}

func (s *Session) setSingle(c model.Category, id model.OptionID) (Snapshot, error) {
	err := s.ledger.SetSingleSelect(c, id)
	return s.record("select", c, id, err, nil)
}

// record logs the outcome of a mutator and returns the resulting snapshot.
func (s *Session) record(op string, c model.Category, id model.OptionID, err error, fields func(*zerolog.Event)) (Snapshot, error) {
	var ev *zerolog.Event
	if err != nil {
		ev = s.log.Info().Err(err)
	} else {
		ev = s.log.Debug()
	}
	ev = ev.Str("op", op).Str("tier", string(s.ledger.Tier())).Str("remaining", s.ledger.Remaining().String())
	if c != "" {
		ev = ev.Str("category", string(c)).Str("option", string(id))
	}
	if fields != nil {
		fields(ev)
	}
	if err != nil {
		ev.Msg("operation rejected")
	} else {
		ev.Msg("operation applied")
	}
	return s.Snapshot(), err
}

// ─── Derived views ──────────────────────────────────────────────

// InsightKeys returns the content keys of the active selections.
func (s *Session) InsightKeys() []string {
	return pipeline.InsightKeys(s.ledger.Selections())
}

// Insights returns the ethical commentary for the active selections.
func (s *Session) Insights() []content.Insight {
	return s.agg.Insights(s.ledger.Selections())
}

// CategoryInsights returns the commentary for the current choices in c.
func (s *Session) CategoryInsights(c model.Category) []content.Insight {
	return s.agg.CategoryInsights(c, s.ledger.Selections())
}

// TradeOff returns the trade-off authored for the current choice in c.
func (s *Session) TradeOff(c model.Category) (content.TradeOff, bool) {
	return s.agg.TradeOff(c, s.ledger.Selections())
}

// TradeOffKey returns the lookup key for the current choice in c.
func (s *Session) TradeOffKey(c model.Category) (string, bool) {
	return s.agg.TradeOffKey(c, s.ledger.Selections())
}

// Summary returns the final configuration view.
func (s *Session) Summary() model.Summary {
	return s.agg.Summarize(s.ledger.Selections(), s.ledger.Budget())
}

// SummaryText renders the exportable plain-text summary.
func (s *Session) SummaryText() string {
	return s.agg.SummaryText(s.Summary())
}

// ─── Rejections ─────────────────────────────────────────────────

// Reason turns a rejection into a short message for the user.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ledger.ErrUnavailable):
		return "That option is not available at your budget tier."
	case errors.Is(err, ledger.ErrInsufficientBudget):
		return "Not enough budget left for that option."
	case errors.Is(err, flow.ErrIncomplete):
		return "Make a choice before moving on."
	case errors.Is(err, flow.ErrAtStart), errors.Is(err, flow.ErrAtEnd):
		return ""
	case errors.Is(err, ledger.ErrInvalidState):
		return "Choose a budget tier first."
	}
	return fmt.Sprintf("Unexpected error: %v", err)
}
