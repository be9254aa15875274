package models

import "gorm.io/gorm"

// A catalog entry with per-100g nutrition. Deactivated via IsActive rather
// than deleted, so existing food logs keep a valid reference.
type Food struct {
	gorm.Model
	Name      string `gorm:"size:200;not null"`
	NameHindi string `gorm:"size:200"`
	Category  string `gorm:"size:50;not null"`
	FoodType  string `gorm:"size:20;not null;default:Vegetarian"` // "Vegetarian" | "Non-Vegetarian" | "Eggetarian"

	CaloriesPer100g float64 `gorm:"not null"`
	ProteinPer100g  float64 `gorm:"not null"`
	CarbsPer100g    float64 `gorm:"not null"`
	FatPer100g      float64 `gorm:"not null"`
	FiberPer100g    float64 `gorm:"not null;default:0"`

	// Glycemic index 0-100; nil means unknown and is treated as diabetic-safe.
	GIIndex *int

	Description      string  `gorm:"type:text"`
	ServingSizeGrams float64 `gorm:"default:100"`
	IsActive         bool    `gorm:"not null;default:true"`
}

func FoodTypes() []string {
	return []string{"Vegetarian", "Non-Vegetarian", "Eggetarian"}
}
