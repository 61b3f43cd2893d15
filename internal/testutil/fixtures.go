package testutil

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	resourcestore "github.com/dalemusser/gentlelibrary/internal/app/store/resources"
	"github.com/dalemusser/gentlelibrary/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// SampleResources returns a small catalog in published order (featured
// first, then by title). It covers every display section:
//
//	focus-timer       featured
//	adhd-podcast      other (content, high effort)
//	focusmate         community
//	pomodoro          low effort or method (method, medium effort)
//	quiet-mode        low effort or method (tool, low effort)
//	transition-cards  time related
//	visual-clock      time related
func SampleResources() []models.Resource {
	return []models.Resource{
		{
			ID:           "focus-timer",
			Title:        "Focus Timer",
			URL:          "https://example.com/app",
			Description:  "Makes time visible.",
			WhyItHelps:   "Makes time visible. Gentle chimes mark each block.",
			Category:     models.CategoryTool,
			SupportNeeds: []models.SupportNeed{models.NeedTaskInitiation, models.NeedFocus},
			SensoryLoad:  models.LevelLow,
			SetupEffort:  models.LevelLow,
			PriceType:    models.PriceFreemium,
			Featured:     true,
			Domain:       "example.com",
		},
		{
			ID:           "adhd-podcast",
			Title:        "ADHD Podcast",
			URL:          "https://podcast.example.org/",
			Description:  "Stories from people who get it.",
			WhyItHelps:   "Stories from people who get it. Good for low days.",
			Category:     models.CategoryContent,
			SupportNeeds: []models.SupportNeed{models.NeedOverwhelm, models.NeedLowEnergy},
			SensoryLoad:  models.LevelHigh,
			SetupEffort:  models.LevelHigh,
			PriceType:    models.PriceFree,
			Domain:       "podcast.example.org",
		},
		{
			ID:           "focusmate",
			Title:        "Focusmate",
			URL:          "https://www.focusmate.example/",
			Description:  "Virtual body doubling sessions.",
			WhyItHelps:   "Virtual body doubling sessions. Someone else is working too.",
			Category:     models.CategoryCommunity,
			SupportNeeds: []models.SupportNeed{models.NeedTaskInitiation, models.NeedFollowThrough},
			SensoryLoad:  models.LevelMedium,
			SetupEffort:  models.LevelMedium,
			PriceType:    models.PriceFreemium,
			Domain:       "focusmate.example",
		},
		{
			ID:           "pomodoro",
			Title:        "Pomodoro Technique",
			URL:          "https://pomodoro.example/",
			Description:  "Work in short blocks.",
			WhyItHelps:   "Work in short blocks. Breaks are built in.",
			Category:     models.CategoryMethod,
			SupportNeeds: []models.SupportNeed{models.NeedFocus, models.NeedTaskInitiation},
			SensoryLoad:  models.LevelLow,
			SetupEffort:  models.LevelMedium,
			PriceType:    models.PriceFree,
			Domain:       "pomodoro.example",
		},
		{
			ID:           "quiet-mode",
			Title:        "Quiet Mode",
			URL:          "https://quiet.example/",
			Description:  "Hides busy page elements.",
			WhyItHelps:   "Hides busy page elements. One click to turn on.",
			Category:     models.CategoryTool,
			SupportNeeds: []models.SupportNeed{models.NeedDistraction},
			SensoryLoad:  models.LevelMedium,
			SetupEffort:  models.LevelLow,
			PriceType:    models.PriceFree,
			Domain:       "quiet.example",
		},
		{
			ID:           "transition-cards",
			Title:        "Transition Cards",
			URL:          "https://cards.example/",
			Description:  "Printable cue cards.",
			WhyItHelps:   "Printable cue cards. Keep one by the door.",
			Category:     models.CategoryPhysical,
			SupportNeeds: []models.SupportNeed{models.NeedTransitioning, models.NeedWorkingMemory, models.NeedPlanning},
			SensoryLoad:  models.LevelLow,
			SetupEffort:  models.LevelHigh,
			PriceType:    models.PricePaid,
			Domain:       "cards.example",
		},
		{
			ID:           "visual-clock",
			Title:        "Visual Clock",
			URL:          "https://clock.example/",
			Description:  "A clock that shows time draining away.",
			WhyItHelps:   "A clock that shows time draining away.",
			Category:     models.CategoryPhysical,
			SupportNeeds: []models.SupportNeed{models.NeedTimeBlindness},
			SensoryLoad:  models.LevelLow,
			SetupEffort:  models.LevelMedium,
			PriceType:    models.PricePaid,
			Domain:       "clock.example",
		},
	}
}

// SampleCatalog returns SampleResources frozen into a Catalog.
func SampleCatalog(t *testing.T) *resourcestore.Catalog {
	t.Helper()
	c, err := resourcestore.NewCatalog(resourcestore.NewArtifact("testdata/approved.csv", []byte("sample"), SampleResources()))
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return c
}

// EmptyCatalog returns a catalog with no records.
func EmptyCatalog(t *testing.T) *resourcestore.Catalog {
	t.Helper()
	c, err := resourcestore.NewCatalog(resourcestore.NewArtifact("testdata/approved.csv", nil, nil))
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return c
}

// WriteSampleArtifact writes the sample catalog to a temp dir and returns
// the file path.
func WriteSampleArtifact(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resources.json")
	a := resourcestore.NewArtifact("testdata/approved.csv", []byte("sample"), SampleResources())
	if err := resourcestore.WriteFile(path, a); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}
