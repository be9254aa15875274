package models

import "gorm.io/gorm"

// Preference types a user can record against their diet.
var PreferenceTypes = []string{"allergy", "dislike", "medical"}

// A typed dietary restriction: an allergy, a free-text dislike or a medical
// restriction. Removal is a soft delete via IsActive so the history survives.
type UserPreference struct {
	gorm.Model
	UserID          uint   `gorm:"index;not null"`
	PreferenceType  string `gorm:"size:50;not null"` // "allergy" | "dislike" | "medical"
	PreferenceValue string `gorm:"size:200;not null"`
	IsActive        bool   `gorm:"not null;default:true"`
}

func IsPreferenceType(t string) bool {
	for _, known := range PreferenceTypes {
		if t == known {
			return true
		}
	}
	return false
}
