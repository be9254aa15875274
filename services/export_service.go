package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/repository"
	"gorm.io/gorm"
)

type ExportService struct {
	logs *repository.FoodLogRepository
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{logs: repository.NewFoodLogRepository(db)}
}

// WriteCSV streams a user's food logs for the date range as CSV. A zero from
// defaults to the trailing 30 days; a zero to defaults to today.
func (s *ExportService) WriteCSV(w io.Writer, userID uint, from, to time.Time) error {
	now := time.Now().UTC()
	if from.IsZero() {
		from = now.AddDate(0, 0, -30)
	}
	if to.IsZero() {
		to = now
	}

	logs, err := s.logs.List(userID, repository.FoodLogFilter{From: &from, To: &to})
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{
		"Date", "Time", "Meal Type", "Food Name", "Quantity (g)",
		"Calories", "Protein (g)", "Carbs (g)", "Fat (g)", "Notes",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range logs {
		l := &logs[i]
		row := []string{
			l.DateLogged.Format("2006-01-02"),
			l.TimeLogged.Format("15:04:05"),
			l.MealType,
			l.Food.Name,
			fmt.Sprintf("%g", l.QuantityGrams),
			fmt.Sprintf("%.1f", l.CaloriesConsumed),
			fmt.Sprintf("%.1f", l.ProteinConsumed),
			fmt.Sprintf("%.1f", l.CarbsConsumed),
			fmt.Sprintf("%.1f", l.FatConsumed),
			l.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
