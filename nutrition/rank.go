package nutrition

import (
	"math"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
)

// Recommendation ranking deliberately favours traditional South Indian
// categories; the fixed ordering is a product requirement.
var categoryPriorities = map[string]int{
	"South Indian":  1,
	"Dal & Lentils": 2,
	"Rice & Grains": 3,
	"Vegetables":    4,
}

const fallbackCategoryPriority = 5

// CategoryPriority maps a category to its recommendation rank; unlisted
// categories share the lowest rank.
func CategoryPriority(category string) int {
	if p, ok := categoryPriorities[category]; ok {
		return p
	}
	return fallbackCategoryPriority
}

// IsPreferredCategory reports whether a category belongs to the prioritised
// pool that is ranked ahead of everything else.
func IsPreferredCategory(category string) bool {
	_, ok := categoryPriorities[category]
	return ok
}

// Density is the protein-per-calorie score used as the ranking tie-breaker.
// A zero-calorie food scores 0 rather than dividing by zero.
func Density(f *models.Food) float64 {
	if f.CaloriesPer100g == 0 {
		return 0
	}
	return math.Round(f.ProteinPer100g/f.CaloriesPer100g*100*100) / 100
}
