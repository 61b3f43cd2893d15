package catalog_test

import (
	"testing"

	"github.com/dalemusser/gentlelibrary/internal/app/catalog"
	"github.com/dalemusser/gentlelibrary/internal/domain/models"
	"github.com/dalemusser/gentlelibrary/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestAvailableNeeds(t *testing.T) {
	got := catalog.AvailableNeeds(testutil.SampleResources())
	want := []models.SupportNeed{
		models.NeedOverwhelm,      // Feeling overwhelmed
		models.NeedFollowThrough,  // Following through
		models.NeedLowEnergy,      // Low-energy days
		models.NeedPlanning,       // Planning & organization
		models.NeedDistraction,    // Reducing distractions
		models.NeedWorkingMemory,  // Remembering steps & details
		models.NeedTaskInitiation, // Starting tasks
		models.NeedFocus,          // Staying focused
		models.NeedTransitioning,  // Switching tasks
		models.NeedTimeBlindness,  // Time awareness
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AvailableNeeds() mismatch (-want +got):\n%s", diff)
	}
}

func TestAvailableNeeds_Empty(t *testing.T) {
	if got := catalog.AvailableNeeds(nil); len(got) != 0 {
		t.Errorf("AvailableNeeds(nil) = %v, want none", got)
	}
}
