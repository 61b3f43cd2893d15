package catalog_test

import (
	"net/url"
	"testing"

	"github.com/dalemusser/gentlelibrary/internal/app/catalog"
	"github.com/dalemusser/gentlelibrary/internal/domain/models"
	"github.com/google/go-cmp/cmp"
)

func parse(t *testing.T, raw string) catalog.Filter {
	t.Helper()
	v, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("ParseQuery(%q): %v", raw, err)
	}
	return catalog.ParseQuery(v)
}

func TestParseQuery(t *testing.T) {
	f := parse(t, "q=+timer+&category=Tool&need=focus&need=time_blindness&need=focus&need=bogus&price=free&setup=low&sensory=high&featured=1")

	want := catalog.Filter{
		Search:       " timer ",
		Category:     models.CategoryTool,
		Needs:        []models.SupportNeed{models.NeedTimeBlindness, models.NeedFocus},
		Price:        models.PriceFree,
		Setup:        models.LevelLow,
		Sensory:      models.LevelHigh,
		FeaturedOnly: true,
	}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Errorf("ParseQuery() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseQuery_AllAndUnknownMeanUnconstrained(t *testing.T) {
	f := parse(t, "category=all&price=all&setup=extreme&sensory=&featured=no")
	if f.Active() {
		t.Errorf("expected unconstrained filter, got %+v", f)
	}
}

func TestParseQuery_FeelingSelectsPreset(t *testing.T) {
	f := parse(t, "feeling=timeblind&category=tool&need=focus&price=paid")

	want := []models.SupportNeed{models.NeedTimeBlindness, models.NeedTransitioning}
	if diff := cmp.Diff(want, f.Needs); diff != "" {
		t.Errorf("needs mismatch (-want +got):\n%s", diff)
	}
	if f.Category != "" {
		t.Errorf("category = %q, want all", f.Category)
	}
	if f.Feeling != "timeblind" {
		t.Errorf("feeling = %q, want timeblind", f.Feeling)
	}
	if f.Price != models.PricePaid {
		t.Errorf("price = %q, other facets should be kept", f.Price)
	}
}

func TestParseQuery_UnknownFeelingIgnored(t *testing.T) {
	f := parse(t, "feeling=grumpy&category=tool")
	if f.Feeling != "" || f.Category != models.CategoryTool {
		t.Errorf("unknown feeling changed state: %+v", f)
	}
}

func TestParseQuery_PresetMarker(t *testing.T) {
	kept := parse(t, "preset=timeblind&need=transitioning&need=time_blindness&category=method")
	if kept.Feeling != "timeblind" {
		t.Errorf("preset with matching needs: feeling = %q, want timeblind", kept.Feeling)
	}
	if kept.Category != models.CategoryMethod {
		t.Errorf("preset marker should not reset category, got %q", kept.Category)
	}

	dropped := parse(t, "preset=timeblind&need=time_blindness")
	if dropped.Feeling != "" {
		t.Errorf("preset with edited needs: feeling = %q, want none", dropped.Feeling)
	}
}

func TestFilter_RoundTripsThroughValues(t *testing.T) {
	f := catalog.Filter{
		Search:       "focus timer",
		Category:     models.CategoryMethod,
		Price:        models.PriceFreemium,
		Setup:        models.LevelMedium,
		Sensory:      models.LevelLow,
		FeaturedOnly: true,
	}.WithFeeling("scattered").WithCategory(models.CategoryMethod)

	got := catalog.ParseQuery(f.Values())
	if diff := cmp.Diff(f, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_URL(t *testing.T) {
	if got := (catalog.Filter{}).URL("/"); got != "/" {
		t.Errorf("zero URL = %q, want /", got)
	}
	got := catalog.Filter{Category: models.CategoryTool, FeaturedOnly: true}.URL("/")
	if got != "/?category=tool&featured=1" {
		t.Errorf("URL = %q", got)
	}
}

func TestFilter_WithFeeling(t *testing.T) {
	base := catalog.Filter{
		Category: models.CategoryTool,
		Needs:    []models.SupportNeed{models.NeedPlanning},
		Search:   "x",
	}

	f := base.WithFeeling("timeblind")
	if diff := cmp.Diff([]models.SupportNeed{models.NeedTimeBlindness, models.NeedTransitioning}, f.Needs); diff != "" {
		t.Errorf("needs mismatch (-want +got):\n%s", diff)
	}
	if f.Category != "" || f.Feeling != "timeblind" || f.Search != "x" {
		t.Errorf("unexpected state %+v", f)
	}

	g := f.WithFeeling("stuck")
	if g.Feeling != "stuck" || !g.HasNeed(models.NeedTaskInitiation) || g.HasNeed(models.NeedTimeBlindness) {
		t.Errorf("switching preset: %+v", g)
	}

	if got := base.WithFeeling("nope"); got.Feeling != "" || got.Category != models.CategoryTool {
		t.Errorf("unknown preset changed state: %+v", got)
	}
}

func TestFilter_ToggleNeed(t *testing.T) {
	f := catalog.Filter{}.WithFeeling("overwhelmed")

	off := f.ToggleNeed(models.NeedLowEnergy)
	if off.HasNeed(models.NeedLowEnergy) {
		t.Error("ToggleNeed did not remove need")
	}
	if off.Feeling != "" {
		t.Errorf("manual toggle kept preset %q active", off.Feeling)
	}

	on := off.ToggleNeed(models.NeedFocus)
	if !on.HasNeed(models.NeedFocus) {
		t.Error("ToggleNeed did not add need")
	}
	if f.HasNeed(models.NeedFocus) || !f.HasNeed(models.NeedLowEnergy) {
		t.Error("ToggleNeed modified the receiver")
	}
}

func TestFilter_ClearDeactivatesPreset(t *testing.T) {
	f := catalog.Filter{Search: "x", FeaturedOnly: true}.WithFeeling("stuck").Clear()
	if f.Active() || f.Feeling != "" {
		t.Errorf("Clear() left state behind: %+v", f)
	}
}

func TestFeelingPresetsUseKnownNeeds(t *testing.T) {
	for _, fe := range models.Feelings {
		if len(fe.Needs) == 0 {
			t.Errorf("preset %s has no needs", fe.Key)
		}
		for _, n := range fe.Needs {
			if !n.Valid() {
				t.Errorf("preset %s uses unknown need %q", fe.Key, n)
			}
		}
	}
}
