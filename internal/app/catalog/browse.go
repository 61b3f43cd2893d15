package catalog

import "github.com/dalemusser/gentlelibrary/internal/domain/models"

// Result is one filtered, grouped view over a record list.
type Result struct {
	Total    int // records before filtering
	Matched  int
	Sections []Section
}

// Browse filters rs with f and groups the matches for display.
func Browse(rs []models.Resource, f Filter) Result {
	matched := f.Apply(rs)
	return Result{
		Total:    len(rs),
		Matched:  len(matched),
		Sections: Group(matched),
	}
}
