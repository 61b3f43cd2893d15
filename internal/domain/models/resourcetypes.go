// internal/domain/models/resourcetypes.go
package models

import "strings"

// Category classifies what kind of thing a resource is.
type Category string

// Canonical category identifiers.
const (
	CategoryTool      Category = "tool"
	CategoryMethod    Category = "method"
	CategoryCommunity Category = "community"
	CategoryContent   Category = "content"
	CategoryPhysical  Category = "physical"
)

// Categories is the full set of categories in display order.
var Categories = []Category{
	CategoryTool,
	CategoryMethod,
	CategoryCommunity,
	CategoryContent,
	CategoryPhysical,
}

// DefaultCategory is used when the source type text matches no keyword.
const DefaultCategory = CategoryTool

var categoryLabels = map[Category]string{
	CategoryTool:      "Tool",
	CategoryMethod:    "Method",
	CategoryCommunity: "Community",
	CategoryContent:   "Content",
	CategoryPhysical:  "Physical",
}

// Glyphs shown in place of a site icon that failed to load.
var categoryGlyphs = map[Category]string{
	CategoryTool:      "🔧",
	CategoryMethod:    "📋",
	CategoryCommunity: "👥",
	CategoryContent:   "📚",
	CategoryPhysical:  "⏰",
}

// Label returns the human-facing name of the category.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Glyph returns the fallback icon for the category.
func (c Category) Glyph() string {
	if g, ok := categoryGlyphs[c]; ok {
		return g
	}
	return categoryGlyphs[DefaultCategory]
}

// Valid reports whether c is one of the canonical categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ParseCategory matches s case-insensitively against the canonical
// identifiers. ok is false when s is not a category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	return c, c.Valid()
}

// Level is an ordinal low/medium/high rating used for sensory load and
// setup effort.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Levels lists the ratings in ascending order.
var Levels = []Level{LevelLow, LevelMedium, LevelHigh}

// Defaults applied when the spreadsheet value is empty, "not sure", or
// unrecognized.
const (
	DefaultSensoryLoad = LevelLow
	DefaultSetupEffort = LevelLow
)

// Label returns the capitalized rating.
func (l Level) Label() string {
	return capitalize(string(l))
}

// ParseLevel matches s case-insensitively against the rating set.
func ParseLevel(s string) (Level, bool) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Levels {
		if l == v {
			return l, true
		}
	}
	return "", false
}

// ParseSensoryLoad parses a sensory load rating, falling back to
// DefaultSensoryLoad.
func ParseSensoryLoad(s string) Level {
	return parseLevelOr(s, DefaultSensoryLoad)
}

// ParseSetupEffort parses a setup effort rating, falling back to
// DefaultSetupEffort.
func ParseSetupEffort(s string) Level {
	return parseLevelOr(s, DefaultSetupEffort)
}

func parseLevelOr(s string, def Level) Level {
	if l, ok := ParseLevel(s); ok {
		return l
	}
	return def
}

// PriceType describes what a resource costs.
type PriceType string

const (
	PriceFree     PriceType = "free"
	PriceFreemium PriceType = "freemium"
	PricePaid     PriceType = "paid"
)

// PriceTypes lists the price types in display order.
var PriceTypes = []PriceType{PriceFree, PriceFreemium, PricePaid}

// DefaultPriceType is applied when the spreadsheet value is empty, "not
// sure", or unrecognized.
const DefaultPriceType = PriceFreemium

// Label returns the capitalized price type.
func (p PriceType) Label() string {
	return capitalize(string(p))
}

// ParsePriceType matches s case-insensitively against the price types.
func ParsePriceType(s string) (PriceType, bool) {
	p := PriceType(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range PriceTypes {
		if p == v {
			return p, true
		}
	}
	return "", false
}

// ParsePriceTypeOrDefault parses a price type, falling back to
// DefaultPriceType.
func ParsePriceTypeOrDefault(s string) PriceType {
	if p, ok := ParsePriceType(s); ok {
		return p
	}
	return DefaultPriceType
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
