package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/config"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/repository"

	"github.com/gin-gonic/gin"
)

type foodRequest struct {
	Name             string  `json:"name" binding:"required"`
	NameHindi        string  `json:"name_hindi"`
	Category         string  `json:"category" binding:"required"`
	FoodType         string  `json:"food_type" binding:"required"`
	CaloriesPer100g  float64 `json:"calories_per_100g" binding:"gte=0"`
	ProteinPer100g   float64 `json:"protein_per_100g" binding:"gte=0"`
	CarbsPer100g     float64 `json:"carbs_per_100g" binding:"gte=0"`
	FatPer100g       float64 `json:"fat_per_100g" binding:"gte=0"`
	FiberPer100g     float64 `json:"fiber_per_100g" binding:"gte=0"`
	GIIndex          *int    `json:"gi_index" binding:"omitempty,gte=0,lte=100"`
	Description      string  `json:"description"`
	ServingSizeGrams float64 `json:"serving_size_grams"`
}

func (r *foodRequest) apply(f *models.Food) {
	f.Name = r.Name
	f.NameHindi = r.NameHindi
	f.Category = r.Category
	f.FoodType = r.FoodType
	f.CaloriesPer100g = r.CaloriesPer100g
	f.ProteinPer100g = r.ProteinPer100g
	f.CarbsPer100g = r.CarbsPer100g
	f.FatPer100g = r.FatPer100g
	f.FiberPer100g = r.FiberPer100g
	f.GIIndex = r.GIIndex
	f.Description = r.Description
	if r.ServingSizeGrams > 0 {
		f.ServingSizeGrams = r.ServingSizeGrams
	}
}

// POST /admin/foods
func CreateFood(c *gin.Context) {
	var req foodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food := models.Food{IsActive: true, ServingSizeGrams: 100}
	req.apply(&food)

	repo := repository.NewFoodRepository(config.DB)
	if err := repo.Create(&food); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, foodPayload(&food))
}

// PUT /admin/foods/:id
func UpdateFood(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	var req foodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	repo := repository.NewFoodRepository(config.DB)
	food, err := repo.GetByID(uint(id))
	if errors.Is(err, repository.ErrFoodNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	req.apply(food)
	if err := repo.Update(food); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foodPayload(food))
}

// POST /admin/foods/:id/deactivate
func DeactivateFood(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	repo := repository.NewFoodRepository(config.DB)
	if err := repo.Deactivate(uint(id)); err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /admin/foods/:id — refused while logs still reference the food.
func DeleteFood(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	repo := repository.NewFoodRepository(config.DB)
	if err := repo.Delete(uint(id)); err != nil {
		switch {
		case errors.Is(err, repository.ErrFoodNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, repository.ErrFoodInUse):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
