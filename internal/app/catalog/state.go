package catalog

import (
	"net/url"
	"slices"

	"github.com/dalemusser/gentlelibrary/internal/app/system/normalize"
	"github.com/dalemusser/gentlelibrary/internal/domain/models"
)

// Query parameter names used to carry a Filter in links and forms.
const (
	ParamSearch   = "q"
	ParamCategory = "category"
	ParamNeed     = "need"
	ParamPrice    = "price"
	ParamSetup    = "setup"
	ParamSensory  = "sensory"
	ParamFeatured = "featured"
	ParamPreset   = "preset"  // marks the active preset
	ParamFeeling  = "feeling" // selects a preset
)

// ParseQuery reads a Filter from query parameters. Unknown or "all"
// values leave a facet unconstrained.
//
// A known "feeling" selects that preset outright. Otherwise a "preset"
// marker stays active only while the selected needs still equal the
// preset's set.
func ParseQuery(v url.Values) Filter {
	f := Filter{
		Search:       v.Get(ParamSearch),
		FeaturedOnly: normalize.Truthy(v.Get(ParamFeatured)),
	}
	if c, ok := models.ParseCategory(v.Get(ParamCategory)); ok {
		f.Category = c
	}
	if p, ok := models.ParsePriceType(v.Get(ParamPrice)); ok {
		f.Price = p
	}
	if l, ok := models.ParseLevel(v.Get(ParamSetup)); ok {
		f.Setup = l
	}
	if l, ok := models.ParseLevel(v.Get(ParamSensory)); ok {
		f.Sensory = l
	}

	var needs []models.SupportNeed
	for _, raw := range v[ParamNeed] {
		if n, ok := models.ParseSupportNeed(raw); ok {
			needs = append(needs, n)
		}
	}
	f.Needs = canonicalNeeds(needs)

	if key := v.Get(ParamFeeling); key != "" {
		if _, ok := models.FeelingByKey(key); ok {
			return f.WithFeeling(key)
		}
	}
	if key := v.Get(ParamPreset); key != "" {
		if fe, ok := models.FeelingByKey(key); ok && slices.Equal(f.Needs, canonicalNeeds(fe.Needs)) {
			f.Feeling = key
		}
	}
	return f
}

// Values encodes f as query parameters. Unconstrained facets are omitted,
// so the zero Filter encodes to an empty set.
func (f Filter) Values() url.Values {
	v := url.Values{}
	if f.Search != "" {
		v.Set(ParamSearch, f.Search)
	}
	if f.Category != "" {
		v.Set(ParamCategory, string(f.Category))
	}
	for _, n := range f.Needs {
		v.Add(ParamNeed, string(n))
	}
	if f.Price != "" {
		v.Set(ParamPrice, string(f.Price))
	}
	if f.Setup != "" {
		v.Set(ParamSetup, string(f.Setup))
	}
	if f.Sensory != "" {
		v.Set(ParamSensory, string(f.Sensory))
	}
	if f.FeaturedOnly {
		v.Set(ParamFeatured, "1")
	}
	if f.Feeling != "" {
		v.Set(ParamPreset, f.Feeling)
	}
	return v
}

// URL returns base with f encoded as its query string.
func (f Filter) URL(base string) string {
	q := f.Values().Encode()
	if q == "" {
		return base
	}
	return base + "?" + q
}

// WithFeeling applies the preset named key: the need set is replaced by the
// preset's needs, the category goes back to all, and the preset becomes
// active. Other facets are kept. Unknown keys return f unchanged.
func (f Filter) WithFeeling(key string) Filter {
	fe, ok := models.FeelingByKey(key)
	if !ok {
		return f
	}
	f.Needs = canonicalNeeds(fe.Needs)
	f.Category = ""
	f.Feeling = fe.Key
	return f
}

// ToggleNeed adds or removes need. Editing needs by hand deactivates any
// preset.
func (f Filter) ToggleNeed(need models.SupportNeed) Filter {
	next := make([]models.SupportNeed, 0, len(f.Needs)+1)
	found := false
	for _, n := range f.Needs {
		if n == need {
			found = true
			continue
		}
		next = append(next, n)
	}
	if !found {
		next = append(next, need)
	}
	f.Needs = canonicalNeeds(next)
	f.Feeling = ""
	return f
}

// WithCategory selects a category; "" selects all.
func (f Filter) WithCategory(c models.Category) Filter {
	f.Category = c
	return f
}

// WithFeaturedOnly sets the featured-only toggle.
func (f Filter) WithFeaturedOnly(on bool) Filter {
	f.FeaturedOnly = on
	return f
}

// Clear returns the unconstrained filter.
func (f Filter) Clear() Filter {
	return Filter{}
}

// canonicalNeeds deduplicates needs and orders them as models.SupportNeeds.
func canonicalNeeds(needs []models.SupportNeed) []models.SupportNeed {
	if len(needs) == 0 {
		return nil
	}
	out := make([]models.SupportNeed, 0, len(needs))
	for _, n := range models.SupportNeeds {
		if slices.Contains(needs, n) {
			out = append(out, n)
		}
	}
	return out
}
