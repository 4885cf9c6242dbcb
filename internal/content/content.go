// Package content holds the read-only explanatory tables shown alongside a
// build: ethical insights, trade-offs and the glossary.
package content

import (
	"sort"
	"strings"

	"github.com/ryanuber/go-glob"
)

// Insight is a short piece of ethical commentary.
type Insight struct {
	ID    string
	Title string
	Text  string
	// RelevantTo lists the selection keys a common insight applies to.
	RelevantTo []string
}

// TradeOff describes what a choice buys and what it costs beyond money.
type TradeOff struct {
	Pros []string
	Cons []string
}

// GlossaryEntry is one defined term.
type GlossaryEntry struct {
	Term       string
	Definition string
}

// Tables bundles the content a session consumes. All lookups are keyed by
// "category-option" strings.
type Tables struct {
	Insights  map[string][]Insight
	Common    []Insight
	TradeOffs map[string]TradeOff
	Glossary  map[string]string
}

// InsightsFor returns the insights for key: its own entries in table order,
// then common insights tagged with key.
func (t Tables) InsightsFor(key string) []Insight {
	out := append([]Insight(nil), t.Insights[key]...)
	for _, in := range t.Common {
		for _, rel := range in.RelevantTo {
			if rel == key {
				out = append(out, in)
				break
			}
		}
	}
	return out
}

// TradeOff looks up the trade-off authored for key.
func (t Tables) TradeOff(key string) (TradeOff, bool) {
	to, ok := t.TradeOffs[key]
	return to, ok
}

// Define returns the definition of term, ignoring case.
func (t Tables) Define(term string) (string, bool) {
	if d, ok := t.Glossary[term]; ok {
		return d, true
	}
	for k, d := range t.Glossary {
		if strings.EqualFold(k, term) {
			return d, true
		}
	}
	return "", false
}

// MatchGlossary returns the entries whose term matches a glob pattern such
// as "bias*", sorted by term. An empty pattern matches everything.
func (t Tables) MatchGlossary(pattern string) []GlossaryEntry {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if pattern == "" {
		pattern = "*"
	}

	var out []GlossaryEntry
	for term, def := range t.Glossary {
		if glob.Glob(pattern, strings.ToLower(term)) {
			out = append(out, GlossaryEntry{Term: term, Definition: def})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Term < out[j].Term })
	return out
}
