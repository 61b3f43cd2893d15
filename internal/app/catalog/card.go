package catalog

import (
	"fmt"
	"net/url"

	"github.com/dalemusser/gentlelibrary/internal/app/system/normalize"
	"github.com/dalemusser/gentlelibrary/internal/domain/models"
)

// DefaultTagLimit is how many need tags an expanded card shows before
// summarising the rest as "+N more".
const DefaultTagLimit = 2

// CardOptions controls how cards are built.
type CardOptions struct {
	TagLimit    int
	IconPattern string // fmt pattern with one %s for the domain; "" disables icons
}

// Card is the display form of one record. The collapsed view shows Title,
// WhyItHelps and the link; expanding reveals Tags, MoreTags and Meta.
type Card struct {
	models.Resource

	IconURL       string // "" means show Glyph straight away
	Glyph         string
	CategoryLabel string

	Tags     []string
	MoreTags int
	Meta     []string // price, setup, sensory, domain
}

// NewCard builds the card for r.
func NewCard(r models.Resource, opts CardOptions) Card {
	limit := opts.TagLimit
	if limit <= 0 {
		limit = DefaultTagLimit
	}

	c := Card{
		Resource:      r,
		Glyph:         r.Category.Glyph(),
		CategoryLabel: r.Category.Label(),
		Meta: []string{
			r.PriceType.Label(),
			r.SetupEffort.Label() + " setup",
			r.SensoryLoad.Label() + " sensory",
			r.Domain,
		},
	}

	for i, n := range r.SupportNeeds {
		if i == limit {
			c.MoreTags = len(r.SupportNeeds) - limit
			break
		}
		c.Tags = append(c.Tags, n.Label())
	}

	if opts.IconPattern != "" && r.Domain != "" && r.Domain != normalize.UnknownDomain {
		c.IconURL = fmt.Sprintf(opts.IconPattern, url.QueryEscape(r.Domain))
	}
	return c
}

// NewCards builds cards for rs in order.
func NewCards(rs []models.Resource, opts CardOptions) []Card {
	out := make([]Card, len(rs))
	for i, r := range rs {
		out[i] = NewCard(r, opts)
	}
	return out
}
