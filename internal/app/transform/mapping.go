package transform

import (
	"strings"

	"github.com/dalemusser/gentlelibrary/internal/domain/models"
)

// categoryKeywords is checked in order; the first group with a substring
// hit decides the category.
var categoryKeywords = []struct {
	category models.Category
	words    []string
}{
	{models.CategoryTool, []string{"app", "software", "extension"}},
	{models.CategoryMethod, []string{"practice", "framework", "routine"}},
	{models.CategoryCommunity, []string{"group", "body doubling", "co-working"}},
	{models.CategoryContent, []string{"video", "podcast", "book", "newsletter"}},
	{models.CategoryPhysical, []string{"timer", "journal", "device"}},
}

// MapCategory classifies the free-text "type" answer by keyword. Text that
// matches nothing is a tool.
func MapCategory(typeText string) models.Category {
	t := strings.ToLower(strings.TrimSpace(typeText))
	for _, group := range categoryKeywords {
		for _, w := range group.words {
			if strings.Contains(t, w) {
				return group.category
			}
		}
	}
	return models.DefaultCategory
}

// MapSupportNeeds splits the "helps with" answer on commas and semicolons
// and maps each phrase to a support need. Unknown phrases are dropped and
// repeats keep their first position.
func MapSupportNeeds(helpsWith string) []models.SupportNeed {
	parts := strings.FieldsFunc(helpsWith, func(r rune) bool {
		return r == ',' || r == ';'
	})
	needs := make([]models.SupportNeed, 0, len(parts))
	seen := make(map[models.SupportNeed]bool, len(parts))
	for _, p := range parts {
		n, ok := models.SupportNeedForPhrase(p)
		if !ok || seen[n] {
			continue
		}
		seen[n] = true
		needs = append(needs, n)
	}
	return needs
}
