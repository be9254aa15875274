package controllers

import (
	"errors"
	"net/http"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/config"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/repository"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/services"

	"github.com/gin-gonic/gin"
)

// GET /user/preferences
func ListPreferences(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	svc := services.NewPreferenceService(config.DB)
	grouped, err := svc.Grouped(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"preferences": grouped})
}

// POST /user/preferences
// Accepts a single value or a list of values for one preference type.
func AddPreference(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		PreferenceType   string   `json:"preference_type" binding:"required"`
		PreferenceValue  string   `json:"preference_value"`
		PreferenceValues []string `json:"preference_values"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewPreferenceService(config.DB)
	values := req.PreferenceValues
	if req.PreferenceValue != "" {
		values = append(values, req.PreferenceValue)
	}
	added, err := svc.BulkAdd(user.ID, req.PreferenceType, values)
	if errors.Is(err, services.ErrUnknownPreferenceType) || errors.Is(err, services.ErrEmptyPreferenceValue) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	grouped, err := svc.Grouped(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": len(added), "preferences": grouped})
}

// DELETE /user/preferences
func RemovePreference(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		PreferenceType  string `json:"preference_type" binding:"required"`
		PreferenceValue string `json:"preference_value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewPreferenceService(config.DB)
	err := svc.Remove(user.ID, req.PreferenceType, req.PreferenceValue)
	if errors.Is(err, repository.ErrPreferenceNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "preference removed"})
}
