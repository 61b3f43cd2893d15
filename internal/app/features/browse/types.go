// internal/app/features/browse/types.go
package browse

import (
	"net/http"

	"github.com/dalemusser/gentlelibrary/internal/app/catalog"
	"github.com/dalemusser/gentlelibrary/internal/app/system/viewdata"
	"github.com/dalemusser/gentlelibrary/internal/domain/models"
)

// basePath is where the catalog page is mounted; filter links are built
// against it.
const basePath = "/"

// Page states other than the normal result list.
const (
	stateOnboarding  = "onboarding"   // no generated data file
	stateNoResources = "no-resources" // data file holds zero records
	stateNoMatches   = "no-matches"   // filter excludes every record
)

type feelingLink struct {
	Key    string
	Emoji  string
	Label  string
	URL    string
	Active bool
}

type categoryLink struct {
	Value  string
	Label  string
	Glyph  string
	URL    string
	Active bool
}

type needChip struct {
	Value  string
	Label  string
	URL    string // toggles this need
	Active bool
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

type sectionVM struct {
	Key   string
	Title string
	Blurb string
	Cards []catalog.Card
}

// pageData is the view model for the catalog page.
type pageData struct {
	viewdata.BaseVM

	State string // "" or one of the state* constants

	// Current filter, as the form needs it.
	Search       string
	Category     string
	Needs        []string
	Preset       string
	FeaturedOnly bool

	Total   int
	Matched int

	Feelings   []feelingLink
	Categories []categoryLink
	NeedChips  []needChip
	Selected   []needChip // "Filtering by" chips; URL removes the need

	PriceOptions   []option
	SetupOptions   []option
	SensoryOptions []option
	AdvancedOpen   bool

	FeaturedURL   string // toggles featured-only
	FiltersActive bool
	ClearURL      string

	Sections []sectionVM

	// OOB marks the link groups for out-of-band swap on partial refreshes.
	OOB bool
}

// buildPage assembles the view model for f. It does not touch the response.
func (h *Handler) buildPage(r *http.Request, f catalog.Filter) pageData {
	data := pageData{
		BaseVM:        viewdata.NewBaseVM(r, "Browse"),
		Search:        f.Search,
		Category:      string(f.Category),
		Preset:        f.Feeling,
		FeaturedOnly:  f.FeaturedOnly,
		FiltersActive: f.Active(),
		ClearURL:      f.Clear().URL(basePath),
		FeaturedURL:   f.WithFeaturedOnly(!f.FeaturedOnly).URL(basePath),
		AdvancedOpen:  f.Price != "" || f.Setup != "" || f.Sensory != "",
	}
	for _, n := range f.Needs {
		data.Needs = append(data.Needs, string(n))
	}

	if h.Catalog == nil {
		data.State = stateOnboarding
		return data
	}

	all := h.Catalog.All()
	data.Total = len(all)
	if len(all) == 0 {
		data.State = stateNoResources
		return data
	}

	data.Feelings = feelingLinks(f)
	data.Categories = categoryLinks(f)
	data.NeedChips = needChips(f, catalog.AvailableNeeds(all))
	data.Selected = needChips(f, f.Needs)
	data.PriceOptions = priceOptions(f.Price)
	data.SetupOptions = levelOptions(f.Setup)
	data.SensoryOptions = levelOptions(f.Sensory)

	res := catalog.Browse(all, f)
	data.Matched = res.Matched
	if res.Matched == 0 {
		data.State = stateNoMatches
		return data
	}

	for _, s := range res.Sections {
		data.Sections = append(data.Sections, sectionVM{
			Key:   string(s.Key),
			Title: s.Title,
			Blurb: s.Blurb,
			Cards: catalog.NewCards(s.Resources, h.Cards),
		})
	}
	return data
}

func feelingLinks(f catalog.Filter) []feelingLink {
	out := make([]feelingLink, 0, len(models.Feelings))
	for _, fe := range models.Feelings {
		out = append(out, feelingLink{
			Key:    fe.Key,
			Emoji:  fe.Emoji,
			Label:  fe.Label,
			URL:    f.WithFeeling(fe.Key).URL(basePath),
			Active: f.Feeling == fe.Key,
		})
	}
	return out
}

func categoryLinks(f catalog.Filter) []categoryLink {
	out := make([]categoryLink, 0, len(models.Categories)+1)
	out = append(out, categoryLink{
		Label:  "All",
		URL:    f.WithCategory("").URL(basePath),
		Active: f.Category == "",
	})
	for _, c := range models.Categories {
		out = append(out, categoryLink{
			Value:  string(c),
			Label:  c.Label(),
			Glyph:  c.Glyph(),
			URL:    f.WithCategory(c).URL(basePath),
			Active: f.Category == c,
		})
	}
	return out
}

func needChips(f catalog.Filter, needs []models.SupportNeed) []needChip {
	out := make([]needChip, 0, len(needs))
	for _, n := range needs {
		out = append(out, needChip{
			Value:  string(n),
			Label:  n.Label(),
			URL:    f.ToggleNeed(n).URL(basePath),
			Active: f.HasNeed(n),
		})
	}
	return out
}

func priceOptions(cur models.PriceType) []option {
	out := []option{{Value: "", Label: "Any price", Selected: cur == ""}}
	for _, p := range models.PriceTypes {
		out = append(out, option{Value: string(p), Label: p.Label(), Selected: cur == p})
	}
	return out
}

func levelOptions(cur models.Level) []option {
	out := []option{{Value: "", Label: "Any", Selected: cur == ""}}
	for _, l := range models.Levels {
		out = append(out, option{Value: string(l), Label: l.Label(), Selected: cur == l})
	}
	return out
}
