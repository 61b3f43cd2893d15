// internal/domain/models/supportneeds.go
package models

import "strings"

// SupportNeed names a difficulty a resource helps with.
type SupportNeed string

const (
	NeedTimeBlindness        SupportNeed = "time_blindness"
	NeedTaskInitiation       SupportNeed = "task_initiation"
	NeedPrioritization       SupportNeed = "prioritization"
	NeedPlanning             SupportNeed = "planning"
	NeedWorkingMemory        SupportNeed = "working_memory"
	NeedFollowThrough        SupportNeed = "follow_through"
	NeedFocus                SupportNeed = "focus"
	NeedDistraction          SupportNeed = "distraction"
	NeedTransitioning        SupportNeed = "transitioning"
	NeedOverwhelm            SupportNeed = "overwhelm"
	NeedSensorySensitivity   SupportNeed = "sensory_sensitivity"
	NeedLowEnergy            SupportNeed = "low_energy"
	NeedAccessibilitySupport SupportNeed = "accessibility_support"
)

// SupportNeeds is the full set of support needs.
var SupportNeeds = []SupportNeed{
	NeedTimeBlindness,
	NeedTaskInitiation,
	NeedPrioritization,
	NeedPlanning,
	NeedWorkingMemory,
	NeedFollowThrough,
	NeedFocus,
	NeedDistraction,
	NeedTransitioning,
	NeedOverwhelm,
	NeedSensorySensitivity,
	NeedLowEnergy,
	NeedAccessibilitySupport,
}

var supportNeedLabels = map[SupportNeed]string{
	NeedTimeBlindness:        "Time awareness",
	NeedTaskInitiation:       "Starting tasks",
	NeedPrioritization:       "Prioritizing",
	NeedPlanning:             "Planning & organization",
	NeedWorkingMemory:        "Remembering steps & details",
	NeedFollowThrough:        "Following through",
	NeedFocus:                "Staying focused",
	NeedDistraction:          "Reducing distractions",
	NeedTransitioning:        "Switching tasks",
	NeedOverwhelm:            "Feeling overwhelmed",
	NeedSensorySensitivity:   "Sensory sensitivity",
	NeedLowEnergy:            "Low-energy days",
	NeedAccessibilitySupport: "Accessibility support",
}

// Label returns the phrase shown to visitors.
func (n SupportNeed) Label() string {
	if l, ok := supportNeedLabels[n]; ok {
		return l
	}
	return string(n)
}

// Valid reports whether n is a known support need.
func (n SupportNeed) Valid() bool {
	_, ok := supportNeedLabels[n]
	return ok
}

// ParseSupportNeed accepts a canonical identifier (case-insensitive).
func ParseSupportNeed(s string) (SupportNeed, bool) {
	n := SupportNeed(strings.ToLower(strings.TrimSpace(s)))
	return n, n.Valid()
}

// supportNeedPhrases maps the spreadsheet's "What does this help with?"
// answers (lowercased) to support needs. Synonymous spellings share a value.
var supportNeedPhrases = map[string]SupportNeed{
	"time awareness":                NeedTimeBlindness,
	"starting tasks":                NeedTaskInitiation,
	"prioritizing":                  NeedPrioritization,
	"planning & organization":       NeedPlanning,
	"planning and organization":     NeedPlanning,
	"remembering steps & details":   NeedWorkingMemory,
	"remembering steps and details": NeedWorkingMemory,
	"following through":             NeedFollowThrough,
	"staying focused":               NeedFocus,
	"reducing distractions":         NeedDistraction,
	"switching tasks":               NeedTransitioning,
	"feeling overwhelmed":           NeedOverwhelm,
	"sensory sensitivity":           NeedSensorySensitivity,
	"low-energy days":               NeedLowEnergy,
	"low energy days":               NeedLowEnergy,
	"accessibility support":         NeedAccessibilitySupport,
}

// SupportNeedForPhrase looks up a single answer phrase. The phrase is
// trimmed and lowercased before lookup.
func SupportNeedForPhrase(phrase string) (SupportNeed, bool) {
	n, ok := supportNeedPhrases[strings.ToLower(strings.TrimSpace(phrase))]
	return n, ok
}
