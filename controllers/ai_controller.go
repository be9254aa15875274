package controllers

import (
	"net/http"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/config"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/services"

	"github.com/gin-gonic/gin"
)

// GET /ai/diet-plan
func GetDietPlan(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	svc := services.NewAIService(config.DB)
	plan, err := svc.DietPlan(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// POST /ai/ask {"question": "..."}
func AskQuestion(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Question string `json:"question" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewAIService(config.DB)
	answer, err := svc.AnswerQuestion(req.Question, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, answer)
}
