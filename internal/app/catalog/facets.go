package catalog

import (
	"slices"

	"github.com/dalemusser/gentlelibrary/internal/app/system/textsort"
	"github.com/dalemusser/gentlelibrary/internal/domain/models"
)

// AvailableNeeds returns the distinct support needs that appear on at
// least one record, sorted by label.
func AvailableNeeds(rs []models.Resource) []models.SupportNeed {
	seen := make(map[models.SupportNeed]bool)
	var needs []models.SupportNeed
	for _, r := range rs {
		for _, n := range r.SupportNeeds {
			if !seen[n] {
				seen[n] = true
				needs = append(needs, n)
			}
		}
	}

	c := textsort.New()
	slices.SortFunc(needs, func(a, b models.SupportNeed) int {
		return c.Compare(a.Label(), b.Label())
	})
	return needs
}
