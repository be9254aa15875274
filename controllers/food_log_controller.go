package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/config"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/repository"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/services"

	"github.com/gin-gonic/gin"
)

type logRequest struct {
	FoodID        uint    `json:"food_id" binding:"required"`
	QuantityGrams float64 `json:"quantity_grams" binding:"required,gt=0"`
	MealType      string  `json:"meal_type" binding:"required"`
	Notes         string  `json:"notes"`
	LogDate       string  `json:"log_date"` // YYYY-MM-DD, empty means today
}

func (r *logRequest) toInput() (services.LogInput, error) {
	in := services.LogInput{
		FoodID:        r.FoodID,
		QuantityGrams: r.QuantityGrams,
		MealType:      r.MealType,
		Notes:         r.Notes,
	}
	if r.LogDate != "" {
		d, err := time.Parse("2006-01-02", r.LogDate)
		if err != nil {
			return in, errors.New("invalid log_date, expected YYYY-MM-DD")
		}
		in.Date = d
	}
	return in, nil
}

func logPayload(l *models.FoodLog) gin.H {
	return gin.H{
		"id":             l.ID,
		"food_id":        l.FoodID,
		"food_name":      l.Food.Name,
		"food_name_hindi": l.Food.NameHindi,
		"quantity_grams": l.QuantityGrams,
		"meal_type":      l.MealType,
		"calories":       l.CaloriesConsumed,
		"protein":        l.ProteinConsumed,
		"carbs":          l.CarbsConsumed,
		"fat":            l.FatConsumed,
		"fiber":          l.FiberConsumed(),
		"date_logged":    l.DateLogged.Format("2006-01-02"),
		"time_logged":    l.TimeLogged.Format("15:04:05"),
		"notes":          l.Notes,
	}
}

// POST /logs
func LogFood(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req logRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewFoodLogService(config.DB)
	log, err := svc.Log(user.ID, in)
	if errors.Is(err, repository.ErrFoodNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, logPayload(log))
}

// GET /logs?date= | ?from=&to=&meal_type=
func ListLogs(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	svc := services.NewFoodLogService(config.DB)

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		logs, err := svc.ListByDate(user.ID, date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, logsPayload(logs))
		return
	}

	var filter repository.FoodLogFilter
	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
			return
		}
		filter.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
			return
		}
		filter.To = &to
	}
	filter.MealType = c.Query("meal_type")

	logs, err := svc.List(user.ID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logsPayload(logs))
}

func logsPayload(logs []models.FoodLog) gin.H {
	out := make([]gin.H, 0, len(logs))
	for i := range logs {
		out = append(out, logPayload(&logs[i]))
	}
	return gin.H{"logs": out, "count": len(out)}
}

// PUT /logs/:id
func UpdateLog(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	logID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}

	var req logRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewFoodLogService(config.DB)
	log, err := svc.Update(user.ID, uint(logID), in)
	if errors.Is(err, repository.ErrLogNotFound) || errors.Is(err, repository.ErrFoodNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logPayload(log))
}

// DELETE /logs/:id
func DeleteLog(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	logID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}

	svc := services.NewFoodLogService(config.DB)
	if err := svc.Delete(user.ID, uint(logID)); err != nil {
		if errors.Is(err, repository.ErrLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
