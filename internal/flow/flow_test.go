package flow

import (
	"testing"

	"github.com/theirongolddev/ethicsim/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type selCompleter struct{ sel model.Selections }

func (s *selCompleter) StepComplete(step Step) bool { return IsStepComplete(step, s.sel) }

func TestFlow_GatesForwardProgress(t *testing.T) {
	var f Flow
	c := &selCompleter{}

	require.ErrorIs(t, f.Advance(c), ErrIncomplete)
	assert.Equal(t, StepBudget, f.Current())

	c.sel.Tier = model.TierSmall
	require.NoError(t, f.Advance(c))
	assert.Equal(t, StepData, f.Current())

	require.ErrorIs(t, f.Advance(c), ErrIncomplete)
	c.sel.Data = []model.OptionID{model.DataPublic}
	require.NoError(t, f.Advance(c))

	require.ErrorIs(t, f.Advance(c), ErrIncomplete)
	c.sel.Filtering = model.FilterMinimal
	require.NoError(t, f.Advance(c))

	c.sel.Behavior = model.BehaviorNeutral
	require.NoError(t, f.Advance(c))

	require.ErrorIs(t, f.Advance(c), ErrIncomplete)
	c.sel.Bias = model.BiasIgnore
	require.NoError(t, f.Advance(c))
	assert.Equal(t, StepSummary, f.Current())

	require.ErrorIs(t, f.Advance(c), ErrAtEnd)
}

func TestFlow_RetreatIgnoresCompleteness(t *testing.T) {
	f := Flow{current: StepBias}
	for want := StepBehavior; want >= StepBudget; want-- {
		require.NoError(t, f.Retreat())
		assert.Equal(t, want, f.Current())
	}
	require.ErrorIs(t, f.Retreat(), ErrAtStart)

	f.current = StepSummary
	f.Reset()
	assert.Equal(t, StepBudget, f.Current())
}

func TestStep_Category(t *testing.T) {
	_, ok := StepBudget.Category()
	assert.False(t, ok)
	_, ok = StepSummary.Category()
	assert.False(t, ok)

	c, ok := StepFiltering.Category()
	assert.True(t, ok)
	assert.Equal(t, model.CategoryFiltering, c)
	assert.Equal(t, "Content Filtering", StepFiltering.Title())
	assert.Len(t, Steps, 6)
}
