package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/config"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/nutrition"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/repository"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/services"

	"github.com/gin-gonic/gin"
)

func foodPayload(f *models.Food) gin.H {
	return gin.H{
		"id":                 f.ID,
		"name":               f.Name,
		"name_hindi":         f.NameHindi,
		"category":           f.Category,
		"food_type":          f.FoodType,
		"calories_per_100g":  f.CaloriesPer100g,
		"protein_per_100g":   f.ProteinPer100g,
		"carbs_per_100g":     f.CarbsPer100g,
		"fat_per_100g":       f.FatPer100g,
		"serving_size_grams": f.ServingSizeGrams,
		"is_active":          f.IsActive,
		"serving_units":      nutrition.ServingUnits(f),
	}
}

// GET /foods/search?q=&category=&food_type=&limit=
func SearchFoods(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	svc := services.NewFoodService(config.DB)
	foods, err := svc.Search(c.Query("q"), c.Query("category"), c.Query("food_type"), limit, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(foods))
	for i := range foods {
		out = append(out, foodPayload(&foods[i]))
	}
	c.JSON(http.StatusOK, gin.H{"foods": out, "count": len(out)})
}

// GET /foods/categories
func ListCategories(c *gin.Context) {
	svc := services.NewFoodService(config.DB)
	categories, err := svc.Categories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"categories":      categories,
		"food_types":      models.FoodTypes(),
		"meal_types":      models.MealTypes,
		"activity_levels": nutrition.ActivityLevels(),
	})
}

// GET /foods/:id?quantity=150
func FoodDetail(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	svc := services.NewFoodService(config.DB)
	food, err := svc.Get(uint(id))
	if errors.Is(err, repository.ErrFoodNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	quantity, err := strconv.ParseFloat(c.DefaultQuery("quantity", "100"), 64)
	if err != nil || quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quantity"})
		return
	}

	payload := foodPayload(food)
	payload["fiber_per_100g"] = food.FiberPer100g
	payload["gi_index"] = food.GIIndex
	payload["gi_category"] = nutrition.GICategory(food.GIIndex)
	payload["description"] = food.Description
	payload["nutrition_density"] = nutrition.Density(food)
	payload["quantity_grams"] = quantity
	payload["nutrition"] = nutrition.Scale(food, quantity)
	payload["suitable_for_you"] = nutrition.IsSuitable(food, user)
	c.JSON(http.StatusOK, payload)
}
