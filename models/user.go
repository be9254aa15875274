package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username     string `gorm:"size:80;uniqueIndex;not null"`
	Email        string `gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:128;not null"`
	FirstName    string `gorm:"size:50;not null"`
	LastName     string `gorm:"size:50;not null"`

	Age            int     `gorm:"not null"`
	Gender         string  `gorm:"size:10;not null"` // "Male" | "Female" | "Other"
	HeightCm       float64 `gorm:"not null"`
	WeightKg       float64 `gorm:"not null"`
	ActivityLevel  string  `gorm:"size:20;not null;default:Sedentary"`
	FoodPreference string  `gorm:"size:20;not null;default:Vegetarian"` // "Vegetarian" | "Eggetarian" | "Non-Vegetarian"
	IsDiabetic     bool    `gorm:"not null;default:false"`

	// JSON array of food ids the user never wants recommended.
	DislikedFoods datatypes.JSON

	// Nil until first computed; recomputed on every profile edit, never left stale.
	DailyCalorieGoal *float64
	ProteinGoal      *float64
	CarbGoal         *float64
	FatGoal          *float64

	IsAdmin bool `gorm:"not null;default:false"`
}

// DislikedFoodIDs decodes the stored JSON list; malformed data reads as empty.
func (u *User) DislikedFoodIDs() []uint {
	if len(u.DislikedFoods) == 0 {
		return nil
	}
	var ids []uint
	if err := json.Unmarshal(u.DislikedFoods, &ids); err != nil {
		return nil
	}
	return ids
}

func (u *User) SetDislikedFoodIDs(ids []uint) {
	if ids == nil {
		ids = []uint{}
	}
	raw, _ := json.Marshal(ids)
	u.DislikedFoods = raw
}

func goalOr(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

func (u *User) CalorieGoalOr(def float64) float64 { return goalOr(u.DailyCalorieGoal, def) }
func (u *User) ProteinGoalOr(def float64) float64 { return goalOr(u.ProteinGoal, def) }
func (u *User) CarbGoalOr(def float64) float64    { return goalOr(u.CarbGoal, def) }
func (u *User) FatGoalOr(def float64) float64     { return goalOr(u.FatGoal, def) }
