package store

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/ethicsim/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := Open(filepath.Join(t.TempDir(), "nested", "reports.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func sampleSummary() model.Summary {
	b := model.BudgetState{
		Tier:      model.TierMedium,
		Total:     decimal.NewFromInt(500_000),
		Remaining: decimal.NewFromInt(290_000),
	}
	pct := b.SpentPercent()
	return model.Summary{
		Budget:       b,
		SpentPercent: pct,
		Efficiency:   model.ClassifyEfficiency(pct),
		Selections: model.Selections{
			Tier:        model.TierMedium,
			Data:        []model.OptionID{model.DataUser, model.DataPublic},
			Filtering:   model.FilterModerate,
			Behavior:    model.BehaviorNeutral,
			Bias:        model.BiasBasic,
			AdaptToUser: true,
		},
	}
}

func TestArchive_SaveAndGet(t *testing.T) {
	a := openArchive(t)

	r := NewReport(sampleSummary(), "summary text")
	r.ExportPath = "/tmp/ethicsim-report.txt"
	require.NoError(t, a.SaveReport(r))

	got, err := a.GetReport(r.ID.String())
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
	assert.Equal(t, model.TierMedium, got.Tier)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(500_000)))
	assert.True(t, got.Spent.Equal(decimal.NewFromInt(210_000)))
	assert.True(t, got.Remaining.Equal(decimal.NewFromInt(290_000)))
	assert.Equal(t, "42", got.SpentPercent.StringFixed(0))
	assert.Equal(t, model.EfficiencyRemaining, got.Efficiency)
	assert.Equal(t, "summary text", got.Text)
	assert.Equal(t, r.ExportPath, got.ExportPath)
	assert.WithinDuration(t, r.CreatedAt, got.CreatedAt, time.Microsecond)

	// Data keeps selection order.
	assert.Equal(t, []model.OptionID{model.DataUser, model.DataPublic}, got.Selections.Data)
	assert.Equal(t, model.FilterModerate, got.Selections.Filtering)
	assert.Equal(t, model.BehaviorNeutral, got.Selections.Behavior)
	assert.Equal(t, model.BiasBasic, got.Selections.Bias)
	assert.True(t, got.Selections.AdaptToUser)
}

func TestArchive_GetByPrefix(t *testing.T) {
	a := openArchive(t)
	r := NewReport(sampleSummary(), "x")
	require.NoError(t, a.SaveReport(r))

	got, err := a.GetReport(r.ID.String()[:8])
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)

	_, err = a.GetReport("does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArchive_GetRejectsWildcardsAndEmptyID(t *testing.T) {
	a := openArchive(t)
	require.NoError(t, a.SaveReport(NewReport(sampleSummary(), "one")))
	require.NoError(t, a.SaveReport(NewReport(sampleSummary(), "two")))

	for _, id := range []string{"", "  ", "____", "%", "a%"} {
		_, err := a.GetReport(id)
		assert.ErrorIs(t, err, ErrNotFound, "id %q", id)
	}
}

func TestArchive_GetIgnoresCase(t *testing.T) {
	a := openArchive(t)
	r := NewReport(sampleSummary(), "x")
	require.NoError(t, a.SaveReport(r))

	got, err := a.GetReport(strings.ToUpper(r.ID.String()[:8]))
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
}

func TestArchive_ListNewestFirst(t *testing.T) {
	a := openArchive(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		r := NewReport(sampleSummary(), "report")
		r.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, a.SaveReport(r))
	}

	all, err := a.ListReports(0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].CreatedAt.After(all[1].CreatedAt))
	assert.True(t, all[1].CreatedAt.After(all[2].CreatedAt))
	assert.Empty(t, all[0].Selections.Data, "listing skips selections")

	limited, err := a.ListReports(2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestArchive_EmptyList(t *testing.T) {
	a := openArchive(t)
	all, err := a.ListReports(10)
	require.NoError(t, err)
	assert.Empty(t, all)
}
