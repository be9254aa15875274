package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/config"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/services"

	"github.com/gin-gonic/gin"
)

func summaryPayload(s *models.DailySummary) gin.H {
	return gin.H{
		"date":               s.Date.Format("2006-01-02"),
		"total_calories":     s.TotalCalories,
		"total_protein":      s.TotalProtein,
		"total_carbs":        s.TotalCarbs,
		"total_fat":          s.TotalFat,
		"calorie_goal":       s.CalorieGoal,
		"protein_goal":       s.ProteinGoal,
		"carb_goal":          s.CarbGoal,
		"fat_goal":           s.FatGoal,
		"meals_logged":       s.MealsLogged,
		"calorie_percentage": s.CaloriePercentage(),
		"protein_percentage": s.ProteinPercentage(),
		"carb_percentage":    s.CarbPercentage(),
		"fat_percentage":     s.FatPercentage(),
		"calories_remaining": s.CaloriesRemaining(),
	}
}

// GET /dashboard?date=YYYY-MM-DD
func DashboardData(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	date := time.Now().UTC()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	sumSvc := services.NewSummaryService(config.DB)
	summary, err := sumSvc.GetOrCreate(user.ID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logSvc := services.NewFoodLogService(config.DB)
	logs, err := logSvc.ListByDate(user.ID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":             date.Format("2006-01-02"),
		"summary":          summaryPayload(summary),
		"calorie_progress": sumSvc.CalorieProgress(user, summary),
		"macro_progress":   sumSvc.MacroProgress(user, summary),
		"logs":             logsPayload(logs),
	})
}

// GET /dashboard/weekly?start=YYYY-MM-DD
func WeeklyChart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var start time.Time
	if startStr := c.Query("start"); startStr != "" {
		parsed, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start date"})
			return
		}
		start = parsed
	}

	sumSvc := services.NewSummaryService(config.DB)
	summaries, err := sumSvc.Weekly(user.ID, start)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(summaries))
	for i := range summaries {
		out = append(out, summaryPayload(&summaries[i]))
	}
	c.JSON(http.StatusOK, gin.H{"summaries": out, "count": len(out)})
}

// GET /dashboard/recommendations?meal_type=&limit=
func GetRecommendations(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	svc := services.NewFoodService(config.DB)
	foods, err := svc.Recommend(user, c.Query("meal_type"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(foods))
	for i := range foods {
		out = append(out, foodPayload(&foods[i]))
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": out, "count": len(out)})
}

// GET /dashboard/export?date_from=&date_to=
func ExportCSV(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var from, to time.Time
	if s := c.Query("date_from"); s != "" {
		if parsed, err := time.Parse("2006-01-02", s); err == nil {
			from = parsed
		}
	}
	if s := c.Query("date_to"); s != "" {
		if parsed, err := time.Parse("2006-01-02", s); err == nil {
			to = parsed
		}
	}

	filename := fmt.Sprintf("food_logs_%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename="+filename)

	svc := services.NewExportService(config.DB)
	if err := svc.WriteCSV(c.Writer, user.ID, from, to); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
}
