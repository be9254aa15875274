package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// One row per (user, date). Totals are always a full recomputation from that
// day's food logs; goals are a snapshot of the user's goals at aggregation time.
type DailySummary struct {
	gorm.Model
	UserID uint      `gorm:"not null;uniqueIndex:idx_summary_user_date"`
	Date   time.Time `gorm:"not null;uniqueIndex:idx_summary_user_date"`

	TotalCalories float64 `gorm:"not null;default:0"`
	TotalProtein  float64 `gorm:"not null;default:0"`
	TotalCarbs    float64 `gorm:"not null;default:0"`
	TotalFat      float64 `gorm:"not null;default:0"`

	CalorieGoal float64 `gorm:"not null"`
	ProteinGoal float64 `gorm:"not null"`
	CarbGoal    float64 `gorm:"not null"`
	FatGoal     float64 `gorm:"not null"`

	MealsLogged int `gorm:"not null;default:0"`
}

func pct(consumed, goal float64) float64 {
	if goal == 0 {
		return 0
	}
	return math.Round(consumed/goal*100*10) / 10
}

func (s *DailySummary) CaloriePercentage() float64 { return pct(s.TotalCalories, s.CalorieGoal) }
func (s *DailySummary) ProteinPercentage() float64 { return pct(s.TotalProtein, s.ProteinGoal) }
func (s *DailySummary) CarbPercentage() float64    { return pct(s.TotalCarbs, s.CarbGoal) }
func (s *DailySummary) FatPercentage() float64     { return pct(s.TotalFat, s.FatGoal) }

func (s *DailySummary) CaloriesRemaining() float64 {
	return math.Max(0, s.CalorieGoal-s.TotalCalories)
}
