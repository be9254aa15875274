package nutrition

import "github.com/kishanbharadwajmg/Smart-Diet-Planner/models"

// Glycemic index thresholds. Foods at or below LowGIThreshold are considered
// diabetic-safe.
const (
	LowGIThreshold    = 55
	MediumGIThreshold = 70
)

// SuitableForDiabetic reports whether a food is low-GI. An unknown GI is
// treated as safe.
func SuitableForDiabetic(f *models.Food) bool {
	if f.GIIndex == nil {
		return true
	}
	return *f.GIIndex <= LowGIThreshold
}

// IsSuitable reports whether a food matches the user's diet-type preference,
// diabetic constraint and dislike list. The checks are independent
// AND-conditions, ordered cheapest first.
func IsSuitable(f *models.Food, u *models.User) bool {
	if u.FoodPreference == "Vegetarian" && f.FoodType != "Vegetarian" {
		return false
	}
	if u.FoodPreference == "Eggetarian" && f.FoodType == "Non-Vegetarian" {
		return false
	}
	if u.IsDiabetic && !SuitableForDiabetic(f) {
		return false
	}
	for _, id := range u.DislikedFoodIDs() {
		if id == f.ID {
			return false
		}
	}
	return true
}

// GICategory buckets a glycemic index into Low/Medium/High, or Unknown when
// the index is not recorded.
func GICategory(gi *int) string {
	switch {
	case gi == nil:
		return "Unknown"
	case *gi <= LowGIThreshold:
		return "Low"
	case *gi <= MediumGIThreshold:
		return "Medium"
	default:
		return "High"
	}
}
