package ledger

import (
	"math/rand"
	"testing"

	"github.com/theirongolddev/ethicsim/internal/config"
	"github.com/theirongolddev/ethicsim/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func newLedger(t *testing.T, tier model.Tier) (*Ledger, config.CostTable) {
	t.Helper()
	table := config.DefaultCostTable()
	l := New(table)
	require.NoError(t, l.InitBudget(tier, false))
	return l, table
}

func assertRemaining(t *testing.T, l *Ledger, want int64) {
	t.Helper()
	assert.True(t, l.Remaining().Equal(dec(want)), "remaining = %s, want %d", l.Remaining(), want)
}

// assertConsistent recomputes the remaining budget from the cost table and
// checks both budget invariants.
func assertConsistent(t *testing.T, l *Ledger, table config.CostTable) {
	t.Helper()
	b := l.Budget()
	sel := l.Selections()

	spent := decimal.Zero
	for _, c := range model.Categories {
		for _, id := range sel.Active(c) {
			cost := table.Cost(c, id, b.Tier)
			require.True(t, cost.Priced, "active option %s is unpriced", model.Key(c, id))
			spent = spent.Add(cost.Amount)
		}
	}

	require.False(t, b.Remaining.IsNegative(), "remaining went negative: %s", b.Remaining)
	require.True(t, b.Remaining.LessThanOrEqual(b.Total), "remaining %s exceeds total %s", b.Remaining, b.Total)
	require.True(t, b.Total.Sub(spent).Equal(b.Remaining),
		"remaining %s != total %s - spent %s", b.Remaining, b.Total, spent)
}

func TestScenarioA_SmallTier(t *testing.T) {
	l, table := newLedger(t, model.TierSmall)
	assertRemaining(t, l, 50_000)

	require.NoError(t, l.ToggleMultiSelect(model.CategoryData, model.DataPublic))
	assertRemaining(t, l, 40_000)

	err := l.SetSingleSelect(model.CategoryFiltering, model.FilterStrict)
	require.ErrorIs(t, err, ErrUnavailable)
	assertRemaining(t, l, 40_000)
	assert.Empty(t, l.Selections().Filtering)

	require.NoError(t, l.SetSingleSelect(model.CategoryFiltering, model.FilterMinimal))
	assertRemaining(t, l, 39_500)
	assertConsistent(t, l, table)
}

func TestScenarioB_SwitchCostsTheDifference(t *testing.T) {
	l, table := newLedger(t, model.TierMedium)

	require.NoError(t, l.SetSingleSelect(model.CategoryBehavior, model.BehaviorDirective))
	assertRemaining(t, l, 420_000)

	require.NoError(t, l.SetSingleSelect(model.CategoryBehavior, model.BehaviorEmpathetic))
	assertRemaining(t, l, 400_000)
	assert.Equal(t, model.BehaviorEmpathetic, l.Selections().Behavior)
	assertConsistent(t, l, table)
}

func TestScenarioC_LargeTierBias(t *testing.T) {
	l, table := newLedger(t, model.TierLarge)

	require.NoError(t, l.SetSingleSelect(model.CategoryBias, model.BiasMinimize))
	assertRemaining(t, l, 3_500_000)
	assert.True(t, l.Budget().Spent().Equal(dec(1_500_000)))
	assertConsistent(t, l, table)
}

func TestScenarioD_DeselectRefundsExactly(t *testing.T) {
	l, table := newLedger(t, model.TierMedium)

	require.NoError(t, l.ToggleMultiSelect(model.CategoryData, model.DataSynthetic))
	before := l.Remaining()
	require.NoError(t, l.ToggleMultiSelect(model.CategoryData, model.DataPublic))
	charged := before.Sub(l.Remaining())
	assert.True(t, charged.Equal(dec(50_000)))

	require.NoError(t, l.ToggleMultiSelect(model.CategoryData, model.DataPublic))
	assert.True(t, l.Remaining().Equal(before), "refund must equal the original charge")
	assert.Equal(t, []model.OptionID{model.DataSynthetic}, l.Selections().Data)
	assertConsistent(t, l, table)
}

func TestToggleMultiSelect_Idempotence(t *testing.T) {
	for _, tier := range model.Tiers {
		l, table := newLedger(t, tier)
		start := l.Remaining()
		for _, o := range table.Options(model.CategoryData) {
			err := l.ToggleMultiSelect(model.CategoryData, o.ID)
			if err != nil {
				continue
			}
			require.NoError(t, l.ToggleMultiSelect(model.CategoryData, o.ID))
			assert.True(t, l.Remaining().Equal(start), "%s at %s drifted", o.ID, tier)
		}
		assert.Empty(t, l.Selections().Data)
	}
}

func TestSwitchCostLaw(t *testing.T) {
	table := config.DefaultCostTable()
	for _, tier := range model.Tiers {
		for _, c := range []model.Category{model.CategoryFiltering, model.CategoryBehavior, model.CategoryBias} {
			for _, a := range table.Options(c) {
				for _, b := range table.Options(c) {
					costA, costB := table.Cost(c, a.ID, tier), table.Cost(c, b.ID, tier)
					if !costA.Priced || !costB.Priced || a.ID == b.ID {
						continue
					}
					l := New(table)
					require.NoError(t, l.InitBudget(tier, false))
					require.NoError(t, l.SetSingleSelect(c, a.ID))
					before := l.Remaining()

					err := l.SetSingleSelect(c, b.ID)
					if err != nil {
						require.ErrorIs(t, err, ErrInsufficientBudget)
						assert.True(t, l.Remaining().Equal(before))
						continue
					}
					want := before.Add(costA.Amount).Sub(costB.Amount)
					assert.True(t, l.Remaining().Equal(want), "%s %s->%s at %s", c, a.ID, b.ID, tier)
				}
			}
		}
	}
}

func TestInsufficientBudget_NoPartialApplication(t *testing.T) {
	l, table := newLedger(t, model.TierSmall)

	// 10,000 + 20,000 + 5,000 leaves 15,000; the empathetic companion fits, then nothing big does.
	require.NoError(t, l.ToggleMultiSelect(model.CategoryData, model.DataPublic))
	require.NoError(t, l.ToggleMultiSelect(model.CategoryData, model.DataSynthetic))
	require.NoError(t, l.ToggleMultiSelect(model.CategoryData, model.DataUser))
	assertRemaining(t, l, 15_000)

	require.NoError(t, l.SetSingleSelect(model.CategoryBehavior, model.BehaviorEmpathetic))
	assertRemaining(t, l, 0)

	before := l.Selections()
	require.ErrorIs(t, l.SetSingleSelect(model.CategoryBias, model.BiasBasic), ErrInsufficientBudget)
	require.ErrorIs(t, l.SetSingleSelect(model.CategoryFiltering, model.FilterMinimal), ErrInsufficientBudget)
	assert.Equal(t, before, l.Selections())
	assertRemaining(t, l, 0)

	// Zero-cost options still fit into an exhausted budget.
	require.NoError(t, l.SetSingleSelect(model.CategoryBias, model.BiasIgnore))
	assertConsistent(t, l, table)
}

func TestUnavailableAndUnknownAreNoops(t *testing.T) {
	l, _ := newLedger(t, model.TierSmall)
	require.NoError(t, l.ToggleMultiSelect(model.CategoryData, model.DataPublic))
	before := l.Budget()
	beforeSel := l.Selections()

	require.ErrorIs(t, l.ToggleMultiSelect(model.CategoryData, model.DataCurated), ErrUnavailable)
	require.ErrorIs(t, l.ToggleMultiSelect(model.CategoryData, "telepathy"), ErrUnavailable)
	require.ErrorIs(t, l.SetSingleSelect(model.CategoryBias, model.BiasAudit), ErrUnavailable)
	require.ErrorIs(t, l.SetSingleSelect(model.CategoryFiltering, model.DataPublic), ErrUnavailable)

	assert.Equal(t, before, l.Budget())
	assert.Equal(t, beforeSel, l.Selections())
}

func TestInvalidState(t *testing.T) {
	l := New(config.DefaultCostTable())

	require.ErrorIs(t, l.ToggleMultiSelect(model.CategoryData, model.DataPublic), ErrInvalidState)
	require.ErrorIs(t, l.SetSingleSelect(model.CategoryFiltering, model.FilterMinimal), ErrInvalidState)
	require.ErrorIs(t, l.SetAdaptToUser(true), ErrInvalidState)
	require.ErrorIs(t, l.InitBudget("enormous", false), ErrInvalidState)

	require.NoError(t, l.InitBudget(model.TierSmall, false))
	require.ErrorIs(t, l.ToggleMultiSelect(model.CategoryBias, model.BiasBasic), ErrInvalidState)
	require.ErrorIs(t, l.SetSingleSelect(model.CategoryData, model.DataPublic), ErrInvalidState)
}

func TestInitBudget_RequiresExplicitReset(t *testing.T) {
	l, _ := newLedger(t, model.TierSmall)

	// Changing tier with nothing selected is fine.
	require.NoError(t, l.InitBudget(model.TierMedium, false))
	assertRemaining(t, l, 500_000)

	require.NoError(t, l.SetSingleSelect(model.CategoryBehavior, model.BehaviorDirective))
	require.ErrorIs(t, l.InitBudget(model.TierLarge, false), ErrInvalidState)
	assert.Equal(t, model.TierMedium, l.Tier())
	assertRemaining(t, l, 420_000)

	require.NoError(t, l.InitBudget(model.TierLarge, true))
	assert.Equal(t, model.TierLarge, l.Tier())
	assertRemaining(t, l, 5_000_000)
	assert.False(t, l.HasSelections())
}

func TestReset(t *testing.T) {
	l, _ := newLedger(t, model.TierLarge)
	require.NoError(t, l.SetAdaptToUser(true))
	require.NoError(t, l.ToggleMultiSelect(model.CategoryData, model.DataCurated))

	l.Reset()
	assert.Equal(t, model.TierNone, l.Tier())
	assert.True(t, l.Budget().Total.IsZero())
	assert.True(t, l.Remaining().IsZero())
	assert.False(t, l.HasSelections())
}

func TestSetSingleSelect_ReselectIsNoop(t *testing.T) {
	l, _ := newLedger(t, model.TierMedium)
	require.NoError(t, l.SetSingleSelect(model.CategoryFiltering, model.FilterModerate))
	before := l.Remaining()
	require.NoError(t, l.SetSingleSelect(model.CategoryFiltering, model.FilterModerate))
	assert.True(t, l.Remaining().Equal(before))
}

func TestAlreadySelectedBypassesAffordability(t *testing.T) {
	l, table := newLedger(t, model.TierSmall)

	require.NoError(t, l.ToggleMultiSelect(model.CategoryData, model.DataSynthetic)) // 20,000
	require.NoError(t, l.ToggleMultiSelect(model.CategoryData, model.DataPublic))    // 10,000
	require.NoError(t, l.SetSingleSelect(model.CategoryBehavior, model.BehaviorEmpathetic))
	assertRemaining(t, l, 5_000)

	// Synthetic data costs more than what is left, yet stays affordable while held.
	assert.False(t, IsAffordable(table, model.CategoryData, model.DataSynthetic, model.TierSmall, l.Remaining(), false))
	assert.True(t, IsAffordable(table, model.CategoryData, model.DataSynthetic, model.TierSmall, l.Remaining(), true))

	// The same holds for single-select categories.
	assert.True(t, IsAffordable(table, model.CategoryBehavior, model.BehaviorEmpathetic, model.TierSmall, dec(0), true))
}

func TestIsPriced(t *testing.T) {
	table := config.DefaultCostTable()
	assert.True(t, IsPriced(table, model.CategoryBias, model.BiasIgnore, model.TierSmall))
	assert.False(t, IsPriced(table, model.CategoryBias, model.BiasAudit, model.TierMedium))
	assert.False(t, IsPriced(table, model.CategoryBias, "nope", model.TierLarge))
	assert.False(t, IsAffordable(table, model.CategoryBias, model.BiasAudit, model.TierMedium, dec(10_000_000), false))
}

// TestRandomSequencesKeepInvariants drives the ledger with deterministic
// pseudo-random operations and recomputes the budget after every step.
func TestRandomSequencesKeepInvariants(t *testing.T) {
	table := config.DefaultCostTable()
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		l := New(table)
		require.NoError(t, l.InitBudget(model.Tiers[rng.Intn(len(model.Tiers))], false))

		for step := 0; step < 60; step++ {
			c := model.Categories[rng.Intn(len(model.Categories))]
			opts := table.Options(c)
			id := opts[rng.Intn(len(opts))].ID
			if rng.Intn(10) == 0 {
				id = "unknown"
			}

			beforeBudget, beforeSel := l.Budget(), l.Selections()
			var err error
			if c.MultiSelect() {
				err = l.ToggleMultiSelect(c, id)
			} else {
				err = l.SetSingleSelect(c, id)
			}
			if err != nil {
				assert.True(t, beforeBudget.Remaining.Equal(l.Remaining()), "rejected op changed budget")
				assert.Equal(t, beforeSel, l.Selections(), "rejected op changed selections")
			}
			assertConsistent(t, l, table)
		}
	}
}
