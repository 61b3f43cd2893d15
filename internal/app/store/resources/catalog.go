// internal/app/store/resources/catalog.go
package resourcestore

import (
	"fmt"
	"slices"

	"github.com/dalemusser/gentlelibrary/internal/domain/models"
)

// Catalog is the loaded, read-only record list. It is built once at
// startup and handed to handlers; nothing mutates it afterwards, so it is
// safe to share between requests.
type Catalog struct {
	buildID   string
	resources []models.Resource
	byID      map[string]int
}

// NewCatalog validates an artifact and freezes its records.
func NewCatalog(a Artifact) (*Catalog, error) {
	c := &Catalog{
		buildID:   a.BuildID,
		resources: slices.Clone(a.Resources),
		byID:      make(map[string]int, len(a.Resources)),
	}
	for i, r := range c.resources {
		if err := validate(r); err != nil {
			return nil, fmt.Errorf("catalog record %d: %w", i, err)
		}
		if _, dup := c.byID[r.ID]; dup {
			return nil, fmt.Errorf("catalog record %d: duplicate id %q", i, r.ID)
		}
		c.byID[r.ID] = i
	}
	return c, nil
}

func validate(r models.Resource) error {
	switch {
	case r.ID == "":
		return fmt.Errorf("empty id")
	case !r.Category.Valid():
		return fmt.Errorf("%s: invalid category %q", r.ID, r.Category)
	case !validLevel(r.SensoryLoad):
		return fmt.Errorf("%s: invalid sensory_load %q", r.ID, r.SensoryLoad)
	case !validLevel(r.SetupEffort):
		return fmt.Errorf("%s: invalid setup_effort %q", r.ID, r.SetupEffort)
	case !slices.Contains(models.PriceTypes, r.PriceType):
		return fmt.Errorf("%s: invalid price_type %q", r.ID, r.PriceType)
	}
	for _, n := range r.SupportNeeds {
		if !n.Valid() {
			return fmt.Errorf("%s: invalid support need %q", r.ID, n)
		}
	}
	return nil
}

func validLevel(l models.Level) bool {
	return slices.Contains(models.Levels, l)
}

// BuildID identifies the export the catalog was generated from.
func (c *Catalog) BuildID() string { return c.buildID }

// Len returns the number of records.
func (c *Catalog) Len() int { return len(c.resources) }

// All returns the records in published order. The slice is a copy; the
// records themselves must be treated as read-only.
func (c *Catalog) All() []models.Resource {
	return slices.Clone(c.resources)
}

// ByID looks up a record by id.
func (c *Catalog) ByID(id string) (models.Resource, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Resource{}, false
	}
	return c.resources[i], true
}
