package controllers

import (
	"errors"
	"net/http"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/config"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/services"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username       string  `json:"username" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Password       string  `json:"password" binding:"required,min=6"`
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

func Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewUserService(config.DB)
	user, err := svc.Register(services.RegisterInput{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
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
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, userProfilePayload(user))
}

func Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewAuthService(config.DB)
	user, token, err := svc.Authenticate(req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": userProfilePayload(user)})
}
