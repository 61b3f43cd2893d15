package catalog

import "github.com/dalemusser/gentlelibrary/internal/domain/models"

// SectionKey identifies a display section.
type SectionKey string

// Sections in priority order. A record lands in the first one it fits.
const (
	SectionFeatured    SectionKey = "featured"
	SectionTime        SectionKey = "time"
	SectionGentleStart SectionKey = "gentle-start"
	SectionCommunity   SectionKey = "community"
	SectionOther       SectionKey = "other"
)

type sectionDef struct {
	key   SectionKey
	title string
	blurb string
	fits  func(models.Resource) bool
}

var sectionDefs = []sectionDef{
	{
		key:   SectionFeatured,
		title: "Featured",
		blurb: "Hand-picked favourites.",
		fits:  func(r models.Resource) bool { return r.Featured },
	},
	{
		key:   SectionTime,
		title: "Time & transitions",
		blurb: "For when time feels invisible or switching is hard.",
		fits: func(r models.Resource) bool {
			return r.HasNeed(models.NeedTimeBlindness) || r.HasNeed(models.NeedTransitioning)
		},
	},
	{
		key:   SectionGentleStart,
		title: "Getting started",
		blurb: "Low effort to try, or a way of working rather than a thing to buy.",
		fits: func(r models.Resource) bool {
			return r.SetupEffort == models.LevelLow || r.Category == models.CategoryMethod
		},
	},
	{
		key:   SectionCommunity,
		title: "Community",
		blurb: "People to work alongside.",
		fits:  func(r models.Resource) bool { return r.Category == models.CategoryCommunity },
	},
	{
		key:   SectionOther,
		title: "More to explore",
		fits:  func(models.Resource) bool { return true },
	},
}

// Section is one non-empty display group.
type Section struct {
	Key       SectionKey
	Title     string
	Blurb     string
	Resources []models.Resource
}

// SectionFor returns the section r belongs to.
func SectionFor(r models.Resource) SectionKey {
	for _, d := range sectionDefs {
		if d.fits(r) {
			return d.key
		}
	}
	return SectionOther
}

// Group partitions rs into sections in priority order. Every record appears
// in exactly one section, records keep their relative order, and empty
// sections are left out.
func Group(rs []models.Resource) []Section {
	buckets := make(map[SectionKey][]models.Resource, len(sectionDefs))
	for _, r := range rs {
		k := SectionFor(r)
		buckets[k] = append(buckets[k], r)
	}

	var out []Section
	for _, d := range sectionDefs {
		if len(buckets[d.key]) == 0 {
			continue
		}
		out = append(out, Section{
			Key:       d.key,
			Title:     d.title,
			Blurb:     d.blurb,
			Resources: buckets[d.key],
		})
	}
	return out
}
