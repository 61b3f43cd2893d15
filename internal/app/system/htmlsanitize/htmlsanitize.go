// Package htmlsanitize strips markup from free text that arrives from
// spreadsheet exports before it is stored in the catalog.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// PlainText removes every HTML element from s and returns unescaped text
// with surrounding space trimmed. Templates escape the result again on
// output, so entities are decoded here rather than stored twice-escaped.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
