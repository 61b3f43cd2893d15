package transform

import (
	"slices"

	"github.com/dalemusser/gentlelibrary/internal/app/system/textsort"
	"github.com/dalemusser/gentlelibrary/internal/domain/models"
)

// Sort orders resources featured first, then by title using locale-aware
// collation. Equal titles keep their input order.
func Sort(rs []models.Resource) {
	c := textsort.New()
	slices.SortStableFunc(rs, func(a, b models.Resource) int {
		if a.Featured != b.Featured {
			if a.Featured {
				return -1
			}
			return 1
		}
		return c.Compare(a.Title, b.Title)
	})
}
