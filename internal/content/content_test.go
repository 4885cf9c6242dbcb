package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsightsFor_OwnThenCommon(t *testing.T) {
	tables := Default()

	got := tables.InsightsFor("data-user")
	require.Len(t, got, 3)
	assert.Equal(t, "user-privacy", got[0].ID)
	assert.Equal(t, "transparency", got[1].ID)
	assert.Equal(t, "privacy-by-design", got[2].ID)

	assert.Empty(t, tables.InsightsFor("data-nothing"))
}

func TestTradeOff(t *testing.T) {
	tables := Default()

	to, ok := tables.TradeOff("bias-audit")
	require.True(t, ok)
	assert.NotEmpty(t, to.Pros)
	assert.NotEmpty(t, to.Cons)

	_, ok = tables.TradeOff("data-public,synthetic,curated")
	assert.False(t, ok)
}

func TestMatchGlossary(t *testing.T) {
	tables := Default()

	got := tables.MatchGlossary("bias*")
	require.Len(t, got, 2)
	assert.Equal(t, "bias", got[0].Term)
	assert.Equal(t, "bias audit", got[1].Term)

	assert.Len(t, tables.MatchGlossary(""), len(tables.Glossary))
	assert.Len(t, tables.MatchGlossary("*DATA"), 2, "matching ignores case")
	assert.Empty(t, tables.MatchGlossary("quantum*"))
}

func TestDefine(t *testing.T) {
	tables := Default()

	d, ok := tables.Define("Red Teaming")
	require.True(t, ok)
	assert.Contains(t, d, "attacking")

	_, ok = tables.Define("blockchain")
	assert.False(t, ok)
}
