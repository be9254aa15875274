package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// Meal slots a log entry can belong to.
var MealTypes = []string{
	"Breakfast",
	"Mid-Morning",
	"Lunch",
	"Evening Snack",
	"Dinner",
	"Late Night",
}

// One consumed quantity of a food. The *_Consumed fields are a nutrition
// snapshot derived from the food's per-100g values at write time; they are
// re-derived atomically with every edit, never recomputed lazily.
type FoodLog struct {
	gorm.Model
	UserID uint `gorm:"index;not null"`
	FoodID uint `gorm:"index;not null"`
	Food   Food

	QuantityGrams float64 `gorm:"not null"` // > 0
	MealType      string  `gorm:"size:20;not null"`

	CaloriesConsumed float64 `gorm:"not null"`
	ProteinConsumed  float64 `gorm:"not null"`
	CarbsConsumed    float64 `gorm:"not null"`
	FatConsumed      float64 `gorm:"not null"`

	DateLogged time.Time `gorm:"index;not null"` // truncated to YYYY-MM-DD
	TimeLogged time.Time
	Notes      string `gorm:"type:text"`
}

// FiberConsumed is derived on read since fiber is not part of the snapshot.
// Requires the Food association to be loaded; reads as 0 otherwise.
func (l *FoodLog) FiberConsumed() float64 {
	if l.Food.ID == 0 {
		return 0
	}
	return math.Round(l.Food.FiberPer100g*l.QuantityGrams/100*10) / 10
}

// DateOnly truncates a timestamp to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
