// Package normalize holds the small text rules applied to spreadsheet
// values when they become catalog records.
package normalize

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// UnknownDomain is the domain recorded for links that do not parse.
const UnknownDomain = "unknown"

// ExcerptLength is how many characters of rationale text are kept when no
// sentence boundary is found.
const ExcerptLength = 120

var (
	// \s is ASCII-only in RE2; spreadsheet text often carries NBSP and other
	// Unicode separators, which count as spaces here.
	slugStrip    = regexp.MustCompile(`[^\w\s\p{Z}\x{FEFF}-]`)
	slugCollapse = regexp.MustCompile(`[\s\p{Z}\x{FEFF}_-]+`)
	firstSent    = regexp.MustCompile(`^[^.!?]+[.!?]`)
)

// Slug lowercases s, drops everything but ASCII word characters, spaces
// (including Unicode separators) and hyphens, collapses runs of spaces,
// underscores and hyphens into one hyphen, and trims hyphens from both ends.
func Slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Domain returns the lowercase hostname of rawURL without a leading
// "www.". Links without a scheme and host, or that fail to parse, give
// UnknownDomain.
func Domain(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Scheme == "" || u.Hostname() == "" {
		return UnknownDomain
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// Truthy reports whether s is "true", "yes" or "1", ignoring case and
// surrounding space.
func Truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1":
		return true
	}
	return false
}

// FirstSentence returns text up to and including the first '.', '!' or
// '?'. Without a boundary (or when text opens with one) it returns the
// first ExcerptLength characters followed by "...".
func FirstSentence(text string) string {
	if m := firstSent.FindString(text); m != "" {
		return strings.TrimSpace(m)
	}
	return truncateRunes(text, ExcerptLength) + "..."
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
