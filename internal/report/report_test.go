package report

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/ethicsim/internal/model"
	"github.com/theirongolddev/ethicsim/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 19, 14, 30, 5, 0, time.UTC)

func TestFileName(t *testing.T) {
	assert.Equal(t, "summary-medium-20261019-143005.txt", FileName(model.TierMedium, fixedNow))
	assert.Equal(t, "summary-none-20261019-143005.txt", FileName(model.TierNone, fixedNow))
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	path, err := Export(dir, model.TierSmall, "hello", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "summary-small-20261019-143005.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestWriteTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.txt")
	require.NoError(t, WriteTo(path, "text"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "text", string(data))
}

func TestShare_Clipboard(t *testing.T) {
	var copied string
	res, err := Share(func(s string) error { copied = s; return nil }, t.TempDir(), model.TierSmall, "summary", fixedNow)
	require.NoError(t, err)
	assert.True(t, res.Copied)
	assert.Empty(t, res.FallbackPath)
	assert.Equal(t, "summary", copied)
}

func TestShare_FallsBackToFile(t *testing.T) {
	dir := t.TempDir()
	res, err := Share(func(string) error { return ErrClipboardUnavailable }, dir, model.TierLarge, "summary", fixedNow)
	require.NoError(t, err)
	assert.False(t, res.Copied)
	assert.FileExists(t, res.FallbackPath)
	assert.Equal(t, dir, filepath.Dir(res.FallbackPath))
}

type fakeSaver struct {
	saved []store.Report
	err   error
}

func (f *fakeSaver) SaveReport(r store.Report) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, r)
	return nil
}

func TestArchive(t *testing.T) {
	s := model.Summary{
		Budget: model.BudgetState{
			Tier:      model.TierSmall,
			Total:     decimal.NewFromInt(50_000),
			Remaining: decimal.NewFromInt(10_000),
		},
		Efficiency: model.EfficiencyBalanced,
	}

	saver := &fakeSaver{}
	r, err := Archive(saver, s, "text", "/tmp/x.txt")
	require.NoError(t, err)
	require.Len(t, saver.saved, 1)
	assert.Equal(t, r.ID, saver.saved[0].ID)
	assert.Equal(t, "/tmp/x.txt", saver.saved[0].ExportPath)
	assert.True(t, saver.saved[0].Spent.Equal(decimal.NewFromInt(40_000)))

	_, err = Archive(nil, s, "text", "")
	assert.NoError(t, err)

	_, err = Archive(&fakeSaver{err: errors.New("disk full")}, s, "text", "")
	assert.ErrorContains(t, err, "disk full")
}
