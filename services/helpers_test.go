package services

import (
	"testing"
	"time"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/config"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.AutoMigrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, mutate func(*models.User)) *models.User {
	t.Helper()
	user := &models.User{
		Username:       "asha",
		Email:          "asha@example.com",
		PasswordHash:   "x",
		FirstName:      "Asha",
		LastName:       "Rao",
		Age:            30,
		Gender:         "Female",
		HeightCm:       160,
		WeightKg:       58,
		ActivityLevel:  "Sedentary",
		FoodPreference: "Vegetarian",
	}
	user.SetDislikedFoodIDs(nil)
	if mutate != nil {
		mutate(user)
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedFood(t *testing.T, db *gorm.DB, mutate func(*models.Food)) *models.Food {
	t.Helper()
	food := &models.Food{
		Name:             "Plain Rice",
		Category:         "Rice & Grains",
		FoodType:         "Vegetarian",
		CaloriesPer100g:  130,
		ProteinPer100g:   2.7,
		CarbsPer100g:     28.2,
		FatPer100g:       0.3,
		FiberPer100g:     0.4,
		ServingSizeGrams: 150,
		IsActive:         true,
	}
	if mutate != nil {
		mutate(food)
	}
	require.NoError(t, db.Create(food).Error)
	return food
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}
