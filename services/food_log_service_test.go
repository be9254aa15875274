package services

import (
	"testing"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogDerivesNutritionSnapshot(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, nil)
	food := seedFood(t, db, nil) // 130 kcal / 2.7 protein / 28.2 carbs / 0.3 fat per 100g

	svc := NewFoodLogService(db)
	log, err := svc.Log(user.ID, LogInput{
		FoodID:        food.ID,
		QuantityGrams: 150,
		MealType:      "Lunch",
		Date:          day("2025-04-01"),
	})
	require.NoError(t, err)

	assert.Equal(t, 195.0, log.CaloriesConsumed)
	assert.Equal(t, 4.1, log.ProteinConsumed)
	assert.Equal(t, 42.3, log.CarbsConsumed)
	assert.InDelta(t, 0.5, log.FatConsumed, 0.001)
	assert.InDelta(t, 0.6, log.FiberConsumed(), 0.001)

	// Logging recomputed the day's summary.
	summary, err := NewSummaryService(db).GetByDate(user.ID, day("2025-04-01"))
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 195.0, summary.TotalCalories)
	assert.Equal(t, 1, summary.MealsLogged)
}

func TestLogMissingFood(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, nil)

	svc := NewFoodLogService(db)
	_, err := svc.Log(user.ID, LogInput{FoodID: 12345, QuantityGrams: 100, MealType: "Lunch"})
	assert.ErrorIs(t, err, repository.ErrFoodNotFound)
}

func TestUpdateReDerivesSnapshotWithEdit(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, nil)
	food := seedFood(t, db, nil)

	svc := NewFoodLogService(db)
	log, err := svc.Log(user.ID, LogInput{FoodID: food.ID, QuantityGrams: 100, MealType: "Lunch", Date: day("2025-04-02")})
	require.NoError(t, err)

	updated, err := svc.Update(user.ID, log.ID, LogInput{
		FoodID:        food.ID,
		QuantityGrams: 200,
		MealType:      "Dinner",
		Date:          day("2025-04-02"),
	})
	require.NoError(t, err)

	assert.Equal(t, 260.0, updated.CaloriesConsumed)
	assert.Equal(t, 5.4, updated.ProteinConsumed)
	assert.Equal(t, "Dinner", updated.MealType)

	summary, err := NewSummaryService(db).GetByDate(user.ID, day("2025-04-02"))
	require.NoError(t, err)
	assert.Equal(t, 260.0, summary.TotalCalories)
}

func TestUpdateAcrossDatesRecomputesBothSummaries(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, nil)
	food := seedFood(t, db, nil)

	svc := NewFoodLogService(db)
	log, err := svc.Log(user.ID, LogInput{FoodID: food.ID, QuantityGrams: 100, MealType: "Lunch", Date: day("2025-04-03")})
	require.NoError(t, err)

	_, err = svc.Update(user.ID, log.ID, LogInput{FoodID: food.ID, QuantityGrams: 100, MealType: "Lunch", Date: day("2025-04-04")})
	require.NoError(t, err)

	sumSvc := NewSummaryService(db)
	oldDay, err := sumSvc.GetByDate(user.ID, day("2025-04-03"))
	require.NoError(t, err)
	require.NotNil(t, oldDay)
	assert.Zero(t, oldDay.TotalCalories)
	assert.Zero(t, oldDay.MealsLogged)

	newDay, err := sumSvc.GetByDate(user.ID, day("2025-04-04"))
	require.NoError(t, err)
	require.NotNil(t, newDay)
	assert.Equal(t, 130.0, newDay.TotalCalories)
	assert.Equal(t, 1, newDay.MealsLogged)
}

func TestDeleteRecomputesSummary(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, nil)
	food := seedFood(t, db, nil)

	svc := NewFoodLogService(db)
	log, err := svc.Log(user.ID, LogInput{FoodID: food.ID, QuantityGrams: 100, MealType: "Lunch", Date: day("2025-04-05")})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(user.ID, log.ID))

	summary, err := NewSummaryService(db).GetByDate(user.ID, day("2025-04-05"))
	require.NoError(t, err)
	assert.Zero(t, summary.TotalCalories)
	assert.Zero(t, summary.MealsLogged)
}

func TestLogOwnershipScoped(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, nil)
	other := seedUser(t, db, func(u *models.User) {
		u.Username = "ravi"
		u.Email = "ravi@example.com"
	})
	food := seedFood(t, db, nil)

	svc := NewFoodLogService(db)
	log, err := svc.Log(owner.ID, LogInput{FoodID: food.ID, QuantityGrams: 100, MealType: "Lunch"})
	require.NoError(t, err)

	_, err = svc.Get(other.ID, log.ID)
	assert.ErrorIs(t, err, repository.ErrLogNotFound)
	err = svc.Delete(other.ID, log.ID)
	assert.ErrorIs(t, err, repository.ErrLogNotFound)
}

func TestDeleteFoodRefusedWhileReferenced(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, nil)
	food := seedFood(t, db, nil)

	svc := NewFoodLogService(db)
	log, err := svc.Log(user.ID, LogInput{FoodID: food.ID, QuantityGrams: 100, MealType: "Lunch"})
	require.NoError(t, err)

	foodRepo := repository.NewFoodRepository(db)
	assert.ErrorIs(t, foodRepo.Delete(food.ID), repository.ErrFoodInUse)

	// Deactivation remains available while referenced.
	require.NoError(t, foodRepo.Deactivate(food.ID))

	// After the referencing log goes away the delete succeeds.
	require.NoError(t, svc.Delete(user.ID, log.ID))
	assert.NoError(t, foodRepo.Delete(food.ID))
}
