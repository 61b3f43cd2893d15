package textsort

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"apple", "banana", -1},
		{"banana", "apple", 1},
		{"same", "same", 0},
		{"apple", "Banana", -1}, // case does not put capitals first
		{"éclair", "fudge", -1}, // accents sort with their base letter
	}
	for _, tt := range tests {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCollator_Sort(t *testing.T) {
	c := New()
	got := []string{"zebra", "Apple", "éclair", "banana"}
	slices.SortFunc(got, c.Compare)
	want := []string{"Apple", "banana", "éclair", "zebra"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sorted mismatch (-want +got):\n%s", diff)
	}
}
