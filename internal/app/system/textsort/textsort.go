// Package textsort orders display strings the way a reader expects rather
// than by byte value.
package textsort

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Compare collates a and b using English rules and returns -1, 0 or +1.
//
// A collate.Collator keeps internal buffers and is not safe for concurrent
// use, so each call builds its own.
func Compare(a, b string) int {
	return collate.New(language.English).CompareString(a, b)
}

// Collator wraps a reusable collator for sorting many strings in one pass.
// It must not be shared between goroutines.
type Collator struct {
	c *collate.Collator
}

// New returns a Collator using English rules.
func New() *Collator {
	return &Collator{c: collate.New(language.English)}
}

// Compare returns -1, 0 or +1.
func (c *Collator) Compare(a, b string) int {
	return c.c.CompareString(a, b)
}
