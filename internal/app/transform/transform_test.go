package transform

import (
	"errors"
	"strings"
	"testing"

	"github.com/dalemusser/gentlelibrary/internal/app/system/csvutil"
	"github.com/dalemusser/gentlelibrary/internal/domain/models"
	"github.com/google/go-cmp/cmp"
)

const header = "Approved,Resource name,Link to the resource,What type is this?,What does this help with?,Why is this helpful?,Sensory Load (Optional),Setup effort (optional),Price type (Optional),Featured\n"

func run(t *testing.T, csv string) Result {
	t.Helper()
	res, err := Transform(strings.NewReader(csv), csvutil.DefaultOptions())
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	return res
}

func ids(rs []models.Resource) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func TestTransform_FocusTimerExample(t *testing.T) {
	csv := header +
		`TRUE,Focus Timer,https://example.com/app,App,"Starting tasks, Staying focused",Makes time visible. Try it daily.,,,,yes` + "\n"

	res := run(t, csv)
	if len(res.Resources) != 1 {
		t.Fatalf("got %d resources, want 1", len(res.Resources))
	}

	want := models.Resource{
		ID:           "focus-timer",
		Title:        "Focus Timer",
		URL:          "https://example.com/app",
		Description:  "Makes time visible.",
		WhyItHelps:   "Makes time visible. Try it daily.",
		Category:     models.CategoryTool,
		SupportNeeds: []models.SupportNeed{models.NeedTaskInitiation, models.NeedFocus},
		SensoryLoad:  models.LevelLow,
		SetupEffort:  models.LevelLow,
		PriceType:    models.PriceFreemium,
		Featured:     true,
		Domain:       "example.com",
	}
	if diff := cmp.Diff(want, res.Resources[0]); diff != "" {
		t.Errorf("resource mismatch (-want +got):\n%s", diff)
	}
}

func TestTransform_ApprovalFilter(t *testing.T) {
	csv := header +
		"false,Nope,https://a.example,App,,,,,,\n" +
		",Blank,https://b.example,App,,,,,,\n" +
		"no,Declined,https://c.example,App,,,,,,\n" +
		"Yes,Kept,https://d.example,App,,,,,,\n" +
		"1,Also Kept,https://e.example,App,,,,,,\n"

	res := run(t, csv)
	if diff := cmp.Diff([]string{"also-kept", "kept"}, ids(res.Resources)); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
	if len(res.Skipped) != 3 {
		t.Fatalf("got %d skips, want 3", len(res.Skipped))
	}
	for _, s := range res.Skipped {
		if s.Reason != ReasonNotApproved {
			t.Errorf("skip %+v reason = %q, want %q", s, s.Reason, ReasonNotApproved)
		}
	}
	if res.Skipped[0].Line != 2 {
		t.Errorf("first skip line = %d, want 2", res.Skipped[0].Line)
	}
}

func TestTransform_RequiresTitleAndURL(t *testing.T) {
	csv := header +
		"yes,,https://a.example,App,,,,,,\n" +
		"yes,No Link,,App,,,,,,\n" +
		"yes,Whole,https://c.example,App,,,,,,\n"

	res := run(t, csv)
	if diff := cmp.Diff([]string{"whole"}, ids(res.Resources)); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
	reasons := []string{res.Skipped[0].Reason, res.Skipped[1].Reason}
	if diff := cmp.Diff([]string{ReasonMissingTitle, ReasonMissingURL}, reasons); diff != "" {
		t.Errorf("reasons mismatch (-want +got):\n%s", diff)
	}
}

func TestTransform_DuplicateTitlesGetSuffixes(t *testing.T) {
	csv := header +
		"yes,Body Double,https://a.example,,,,,,,\n" +
		"yes,Body Double,https://b.example,,,,,,,\n" +
		"yes,body-double!,https://c.example,,,,,,,\n"

	res := run(t, csv)
	byURL := map[string]string{}
	for _, r := range res.Resources {
		byURL[r.URL] = r.ID
	}
	want := map[string]string{
		"https://a.example": "body-double",
		"https://b.example": "body-double-2",
		"https://c.example": "body-double-3",
	}
	if diff := cmp.Diff(want, byURL); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestTransform_SuffixDoesNotCollideWithLiteralTitle(t *testing.T) {
	csv := header +
		"yes,Timer,https://a.example,,,,,,,\n" +
		"yes,Timer 2,https://b.example,,,,,,,\n" +
		"yes,Timer,https://c.example,,,,,,,\n"

	res := run(t, csv)
	seen := map[string]bool{}
	for _, r := range res.Resources {
		if r.ID == "" {
			t.Errorf("resource %q has empty id", r.Title)
		}
		if seen[r.ID] {
			t.Errorf("duplicate id %q", r.ID)
		}
		seen[r.ID] = true
	}
	if !seen["timer-3"] {
		t.Errorf("expected second plain Timer to become timer-3, got %v", ids(res.Resources))
	}
}

func TestTransform_UnsluggableTitle(t *testing.T) {
	res := run(t, header+"yes,!!!,https://a.example,,,,,,,\n")
	if got := res.Resources[0].ID; got != fallbackSlug {
		t.Errorf("id = %q, want %q", got, fallbackSlug)
	}
}

func TestTransform_Ordering(t *testing.T) {
	csv := header +
		"yes,zebra notes,https://a.example,,,,,,,\n" +
		"yes,Apple Timer,https://b.example,,,,,,,\n" +
		"yes,Yoga,https://c.example,,,,,,,yes\n" +
		"yes,banana,https://d.example,,,,,,,\n" +
		"yes,Calm,https://e.example,,,,,,,TRUE\n"

	res := run(t, csv)
	var titles []string
	for _, r := range res.Resources {
		titles = append(titles, r.Title)
	}
	want := []string{"Calm", "Yoga", "Apple Timer", "banana", "zebra notes"}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestTransform_EnumDefaults(t *testing.T) {
	csv := header +
		"yes,A,https://a.example,,,,Not sure,HIGH,Paid,\n" +
		"yes,B,https://b.example,,,,bright,,gratis,\n"

	res := run(t, csv)
	a, b := res.Resources[0], res.Resources[1]

	if a.SensoryLoad != models.LevelLow || a.SetupEffort != models.LevelHigh || a.PriceType != models.PricePaid {
		t.Errorf("A enums = %s/%s/%s, want low/high/paid", a.SensoryLoad, a.SetupEffort, a.PriceType)
	}
	if b.SensoryLoad != models.DefaultSensoryLoad || b.SetupEffort != models.DefaultSetupEffort || b.PriceType != models.DefaultPriceType {
		t.Errorf("B enums = %s/%s/%s, want defaults", b.SensoryLoad, b.SetupEffort, b.PriceType)
	}
}

func TestTransform_HeaderCaseAndMissingColumns(t *testing.T) {
	csv := "APPROVED,resource name,LINK TO THE RESOURCE\r\n" +
		"true,Minimal,https://www.minimal.example/x\r\n"

	res := run(t, csv)
	r := res.Resources[0]
	if r.Domain != "minimal.example" {
		t.Errorf("domain = %q, want minimal.example", r.Domain)
	}
	if r.Category != models.DefaultCategory {
		t.Errorf("category = %q, want default", r.Category)
	}
	if r.Description != "" || r.WhyItHelps != "" {
		t.Errorf("expected empty description and rationale, got %q / %q", r.Description, r.WhyItHelps)
	}
	if len(r.SupportNeeds) != 0 {
		t.Errorf("support needs = %v, want none", r.SupportNeeds)
	}
}

func TestTransform_BadURLGetsUnknownDomain(t *testing.T) {
	res := run(t, header+"yes,Loose Link,example.com/thing,,,,,,,\n")
	if got := res.Resources[0].Domain; got != "unknown" {
		t.Errorf("domain = %q, want unknown", got)
	}
}

func TestTransform_StripsMarkupFromRationaleOnly(t *testing.T) {
	res := run(t, header+`yes,<Pomodoro> Tom &amp; Jerry,https://a.example,,,"<i>Helps</i> you plan & rest.",,,,`+"\n")
	r := res.Resources[0]
	if r.Title != "<Pomodoro> Tom &amp; Jerry" {
		t.Errorf("title = %q, want it unchanged", r.Title)
	}
	if r.ID != "pomodoro-tom-amp-jerry" {
		t.Errorf("id = %q, want pomodoro-tom-amp-jerry", r.ID)
	}
	if r.WhyItHelps != "Helps you plan & rest." {
		t.Errorf("why = %q", r.WhyItHelps)
	}
}

func TestTransform_UnicodeSpacesInTitle(t *testing.T) {
	res := run(t, header+"yes,Focus\u00a0Timer,https://a.example,,,,,,,\n")
	if got := res.Resources[0].ID; got != "focus-timer" {
		t.Errorf("id = %q, want focus-timer", got)
	}
}

func TestTransform_Deterministic(t *testing.T) {
	csv := header +
		"yes,Same,https://a.example,Podcast,Time awareness,One.,,,,\n" +
		"yes,Same,https://b.example,Book,Prioritizing,Two.,,,,\n" +
		"yes,Other,https://c.example,Group,,Three.,,,,yes\n"

	first := run(t, csv)
	second := run(t, csv)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("runs differ (-first +second):\n%s", diff)
	}
}

func TestTransform_NoRows(t *testing.T) {
	for name, in := range map[string]string{
		"empty":       "",
		"blank lines": "\n\n  \n",
		"header only": header,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Transform(strings.NewReader(in), csvutil.DefaultOptions())
			if !errors.Is(err, ErrNoRows) {
				t.Errorf("Transform() error = %v, want ErrNoRows", err)
			}
		})
	}
}

func TestTransform_AllRowsSkippedIsNotAnError(t *testing.T) {
	res := run(t, header+"no,Hidden,https://a.example,,,,,,,\n")
	if len(res.Resources) != 0 {
		t.Errorf("got %d resources, want 0", len(res.Resources))
	}
	if res.Rows != 1 {
		t.Errorf("rows = %d, want 1", res.Rows)
	}
	if got := res.Summary(); got != "0 of 1 rows published, 1 skipped" {
		t.Errorf("Summary() = %q", got)
	}
}
