package services

import (
	"sort"
	"strings"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/nutrition"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/repository"
	"gorm.io/gorm"
)

type FoodService struct {
	foods *repository.FoodRepository
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{foods: repository.NewFoodRepository(db)}
}

func (s *FoodService) Get(id uint) (*models.Food, error) {
	return s.foods.GetByID(id)
}

func (s *FoodService) Categories() ([]string, error) {
	return s.foods.Categories()
}

// Search runs the repository query (limit applied at the database), then
// post-filters by suitability when a user is given. The post-filter can
// shrink the result below the limit even when more suitable matches exist
// past the unfiltered slice; that ordering of operations is kept on purpose.
func (s *FoodService) Search(query, category, foodType string, limit int, user *models.User) ([]models.Food, error) {
	foods, err := s.foods.Search(repository.FoodSearchFilter{
		Query:    query,
		Category: category,
		FoodType: foodType,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return foods, nil
	}

	suitable := foods[:0]
	for i := range foods {
		if nutrition.IsSuitable(&foods[i], user) {
			suitable = append(suitable, foods[i])
		}
	}
	return suitable, nil
}

// mealTypeFilter returns the extra nutrient constraint for a meal slot, or
// nil when the slot imposes none. Matching is case-insensitive.
func mealTypeFilter(mealType string) func(*models.Food) bool {
	switch strings.ToLower(mealType) {
	case "breakfast", "mid-morning":
		return func(f *models.Food) bool { return f.FiberPer100g >= 1.5 }
	case "lunch", "dinner":
		return func(f *models.Food) bool { return f.ProteinPer100g >= 3 }
	case "evening snack", "late night":
		return func(f *models.Food) bool { return f.CaloriesPer100g <= 250 }
	}
	return nil
}

// Recommend builds the candidate set with the full suitability predicate
// applied once up front, pre-filters by meal slot, then ranks the preferred
// categories (South Indian first) by category priority and protein density,
// back-filling from the remaining categories when the preferred pool runs
// short. Never returns more than limit foods.
func (s *FoodService) Recommend(user *models.User, mealType string, limit int) ([]models.Food, error) {
	if limit <= 0 {
		limit = 10
	}

	active, err := s.foods.ListActive()
	if err != nil {
		return nil, err
	}

	slotOK := mealTypeFilter(mealType)
	var preferred, fallback []models.Food
	for i := range active {
		f := &active[i]
		if !nutrition.IsSuitable(f, user) {
			continue
		}
		if slotOK != nil && !slotOK(f) {
			continue
		}
		if nutrition.IsPreferredCategory(f.Category) {
			preferred = append(preferred, *f)
		} else {
			fallback = append(fallback, *f)
		}
	}

	sort.SliceStable(preferred, func(i, j int) bool {
		pi, pj := nutrition.CategoryPriority(preferred[i].Category), nutrition.CategoryPriority(preferred[j].Category)
		if pi != pj {
			return pi < pj
		}
		return nutrition.Density(&preferred[i]) > nutrition.Density(&preferred[j])
	})

	if len(preferred) > limit {
		preferred = preferred[:limit]
	}

	if len(preferred) < limit {
		sort.SliceStable(fallback, func(i, j int) bool {
			return nutrition.Density(&fallback[i]) > nutrition.Density(&fallback[j])
		})
		remaining := limit - len(preferred)
		if remaining > len(fallback) {
			remaining = len(fallback)
		}
		preferred = append(preferred, fallback[:remaining]...)
	}

	return preferred, nil
}
