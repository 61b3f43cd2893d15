package transform

import (
	"strconv"

	"github.com/dalemusser/gentlelibrary/internal/app/system/normalize"
)

// fallbackSlug names records whose title has no sluggable characters.
const fallbackSlug = "resource"

// idAssigner hands out slug ids, suffixing repeats with -2, -3, ... in the
// order titles are seen.
type idAssigner struct {
	counts map[string]int
	used   map[string]bool
}

func newIDAssigner() *idAssigner {
	return &idAssigner{counts: map[string]int{}, used: map[string]bool{}}
}

func (a *idAssigner) next(title string) string {
	base := normalize.Slug(title)
	if base == "" {
		base = fallbackSlug
	}
	for {
		a.counts[base]++
		id := base
		if n := a.counts[base]; n > 1 {
			id = base + "-" + strconv.Itoa(n)
		}
		// A literal title such as "Timer 2" can already own "timer-2".
		if !a.used[id] {
			a.used[id] = true
			return id
		}
	}
}
