// internal/domain/models/resource.go
package models

// Resource is one curated support resource in the catalog.
//
// Records are produced by the builddata transformer and loaded read-only by
// the web app. Nothing mutates a Resource after generation; views filter and
// group slices of them.
type Resource struct {
	ID          string `json:"id"` // slug of Title, unique within the catalog
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"` // first sentence of WhyItHelps
	WhyItHelps  string `json:"why_it_helps"`

	Category     Category      `json:"category"`
	SupportNeeds []SupportNeed `json:"support_needs"` // deduplicated, source order
	SensoryLoad  Level         `json:"sensory_load"`
	SetupEffort  Level         `json:"setup_effort"`
	PriceType    PriceType     `json:"price_type"`
	Featured     bool          `json:"featured"`

	// Placeholders kept for the published format; never populated yet.
	AffiliateURL *string `json:"affiliate_url"`
	IsAffiliate  bool    `json:"is_affiliate"`

	Domain string `json:"domain"` // hostname without leading "www.", or "unknown"
}

// HasNeed reports whether the resource is tagged with need.
func (r Resource) HasNeed(need SupportNeed) bool {
	for _, n := range r.SupportNeeds {
		if n == need {
			return true
		}
	}
	return false
}

// HasAnyNeed reports whether the resource is tagged with at least one of needs.
func (r Resource) HasAnyNeed(needs []SupportNeed) bool {
	for _, n := range needs {
		if r.HasNeed(n) {
			return true
		}
	}
	return false
}
