package controllers

import (
	"errors"
	"math"
	"net/http"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/config"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/nutrition"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/repository"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/services"

	"github.com/gin-gonic/gin"
)

func currentUser(c *gin.Context) (*models.User, bool) {
	userID := c.GetUint("userID")
	user, err := repository.NewUserRepository(config.DB).GetByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return nil, false
	}
	return user, true
}

func userProfilePayload(u *models.User) gin.H {
	bmr := nutrition.BMR(u.WeightKg, u.HeightCm, u.Age, u.Gender)
	bmi := nutrition.BMI(u.WeightKg, u.HeightCm)
	return gin.H{
		"id":                 u.ID,
		"username":           u.Username,
		"email":              u.Email,
		"first_name":         u.FirstName,
		"last_name":          u.LastName,
		"age":                u.Age,
		"gender":             u.Gender,
		"height_cm":          u.HeightCm,
		"weight_kg":          u.WeightKg,
		"activity_level":     u.ActivityLevel,
		"food_preference":    u.FoodPreference,
		"is_diabetic":        u.IsDiabetic,
		"disliked_food_ids":  u.DislikedFoodIDs(),
		"daily_calorie_goal": u.DailyCalorieGoal,
		"protein_goal":       u.ProteinGoal,
		"carb_goal":          u.CarbGoal,
		"fat_goal":           u.FatGoal,
		"bmr":                math.Round(bmr),
		"tdee":               math.Round(nutrition.TDEE(bmr, u.ActivityLevel)),
		"bmi":                bmi,
		"bmi_category":       nutrition.BMICategory(bmi),
		"is_admin":           u.IsAdmin,
	}
}

func GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, userProfilePayload(user))
}

func UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		FirstName      string  `json:"first_name" binding:"required"`
		LastName       string  `json:"last_name" binding:"required"`
		Age            int     `json:"age" binding:"required,gte=13,lte=120"`
		Gender         string  `json:"gender" binding:"required"`
		HeightCm       float64 `json:"height_cm" binding:"required,gte=100,lte=250"`
		WeightKg       float64 `json:"weight_kg" binding:"required,gte=30,lte=300"`
		ActivityLevel  string  `json:"activity_level" binding:"required"`
		FoodPreference string  `json:"food_preference" binding:"required"`
		IsDiabetic     bool    `json:"is_diabetic"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewUserService(config.DB)
	updated, err := svc.UpdateProfile(user.ID, services.ProfileUpdate{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Age:            req.Age,
		Gender:         req.Gender,
		HeightCm:       req.HeightCm,
		WeightKg:       req.WeightKg,
		ActivityLevel:  req.ActivityLevel,
		FoodPreference: req.FoodPreference,
		IsDiabetic:     req.IsDiabetic,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, userProfilePayload(updated))
}

// PUT /user/goals
// Manual goal override; omitted fields keep their current value. Overrides
// last until the next profile edit recomputes goals.
func UpdateGoals(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		CalorieGoal *float64 `json:"calorie_goal" binding:"omitempty,gte=1000,lte=5000"`
		ProteinGoal *float64 `json:"protein_goal" binding:"omitempty,gt=0"`
		CarbGoal    *float64 `json:"carb_goal" binding:"omitempty,gt=0"`
		FatGoal     *float64 `json:"fat_goal" binding:"omitempty,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewUserService(config.DB)
	updated, err := svc.UpdateGoals(user.ID, services.GoalOverride{
		CalorieGoal: req.CalorieGoal,
		ProteinGoal: req.ProteinGoal,
		CarbGoal:    req.CarbGoal,
		FatGoal:     req.FatGoal,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, userProfilePayload(updated))
}

func UpdateDislikes(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		FoodIDs []uint `json:"food_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewUserService(config.DB)
	updated, err := svc.UpdateDislikes(user.ID, req.FoodIDs)
	if errors.Is(err, repository.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"disliked_food_ids": updated.DislikedFoodIDs()})
}
