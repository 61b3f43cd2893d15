// Package catalog holds the browsing rules for the resource list: the
// filter state a visitor builds up, the predicate that applies it, feeling
// presets, the need facets on offer, display sections, and card views.
//
// Everything here is a pure function over an immutable record slice.
package catalog

import (
	"slices"
	"strings"

	"github.com/dalemusser/gentlelibrary/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
)

// Filter is the visitor's browsing state. Zero values mean "all": an empty
// Category, Price, Setup or Sensory does not constrain, and an empty Needs
// set matches every record.
type Filter struct {
	Search       string
	Category     models.Category
	Needs        []models.SupportNeed // set, kept in models.SupportNeeds order
	Price        models.PriceType
	Setup        models.Level
	Sensory      models.Level
	FeaturedOnly bool

	// Feeling is the key of the active preset, if any.
	Feeling string
}

// Active reports whether any constraint is set.
func (f Filter) Active() bool {
	return f.Search != "" || f.Category != "" || len(f.Needs) > 0 ||
		f.Price != "" || f.Setup != "" || f.Sensory != "" || f.FeaturedOnly
}

// HasNeed reports whether need is selected.
func (f Filter) HasNeed(need models.SupportNeed) bool {
	return slices.Contains(f.Needs, need)
}

// Matches reports whether r passes every constraint in f.
func (f Filter) Matches(r models.Resource) bool {
	return newMatcher(f).match(r)
}

// Apply returns the records that pass f, in their original order.
func (f Filter) Apply(rs []models.Resource) []models.Resource {
	m := newMatcher(f)
	out := make([]models.Resource, 0, len(rs))
	for _, r := range rs {
		if m.match(r) {
			out = append(out, r)
		}
	}
	return out
}

// matcher caches the folded search text across a pass over many records.
type matcher struct {
	f Filter
	q string
}

func newMatcher(f Filter) matcher {
	return matcher{f: f, q: foldQuery(f.Search)}
}

// foldQuery folds q like text.Fold but keeps its surrounding whitespace, so
// the search is a substring match on the text as typed.
func foldQuery(q string) string {
	core := strings.TrimSpace(q)
	if core == "" {
		return q
	}
	i := strings.Index(q, core)
	return q[:i] + text.Fold(core) + q[i+len(core):]
}

func (m matcher) match(r models.Resource) bool {
	f := m.f
	if m.q != "" &&
		!strings.Contains(text.Fold(r.Title), m.q) &&
		!strings.Contains(text.Fold(r.Description), m.q) &&
		!strings.Contains(text.Fold(r.Domain), m.q) {
		return false
	}
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if len(f.Needs) > 0 && !r.HasAnyNeed(f.Needs) {
		return false
	}
	if f.Price != "" && r.PriceType != f.Price {
		return false
	}
	if f.Setup != "" && r.SetupEffort != f.Setup {
		return false
	}
	if f.Sensory != "" && r.SensoryLoad != f.Sensory {
		return false
	}
	if f.FeaturedOnly && !r.Featured {
		return false
	}
	return true
}
