// internal/domain/models/feelings.go
package models

// Feeling is a one-click preset that stands in for how a visitor feels and
// expands to a fixed set of support needs.
type Feeling struct {
	Key   string
	Emoji string
	Label string
	Needs []SupportNeed
}

// Feelings lists the presets in display order.
var Feelings = []Feeling{
	{
		Key:   "overwhelmed",
		Emoji: "🌀",
		Label: "overwhelmed",
		Needs: []SupportNeed{NeedOverwhelm, NeedSensorySensitivity, NeedLowEnergy},
	},
	{
		Key:   "timeblind",
		Emoji: "⏰",
		Label: "time-blind",
		Needs: []SupportNeed{NeedTimeBlindness, NeedTransitioning},
	},
	{
		Key:   "stuck",
		Emoji: "🪨",
		Label: "stuck starting",
		Needs: []SupportNeed{NeedTaskInitiation, NeedPrioritization},
	},
	{
		Key:   "scattered",
		Emoji: "🫧",
		Label: "scattered",
		Needs: []SupportNeed{NeedFocus, NeedDistraction, NeedWorkingMemory},
	},
}

// FeelingByKey returns the preset with the given key.
func FeelingByKey(key string) (Feeling, bool) {
	for _, f := range Feelings {
		if f.Key == key {
			return f, true
		}
	}
	return Feeling{}, false
}
