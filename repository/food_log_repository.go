package repository

import (
	"errors"
	"time"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
	"gorm.io/gorm"
)

type FoodLogRepository struct {
	db *gorm.DB
}

func NewFoodLogRepository(db *gorm.DB) *FoodLogRepository {
	return &FoodLogRepository{db: db}
}

// GetByID scopes the lookup to the owning user; another user's log reads as
// not found.
func (r *FoodLogRepository) GetByID(userID, logID uint) (*models.FoodLog, error) {
	var log models.FoodLog
	err := r.db.Preload("Food").
		Where("id = ? AND user_id = ?", logID, userID).
		First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLogNotFound
	}
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *FoodLogRepository) Create(log *models.FoodLog) error {
	return r.db.Create(log).Error
}

func (r *FoodLogRepository) Update(log *models.FoodLog) error {
	return r.db.Save(log).Error
}

func (r *FoodLogRepository) Delete(log *models.FoodLog) error {
	return r.db.Delete(log).Error
}

// ListByDate returns one day's logs in logging order.
func (r *FoodLogRepository) ListByDate(userID uint, date time.Time) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	err := r.db.Preload("Food").
		Where("user_id = ? AND date_logged = ?", userID, models.DateOnly(date)).
		Order("time_logged asc").
		Find(&logs).Error
	return logs, err
}

type FoodLogFilter struct {
	From     *time.Time
	To       *time.Time
	MealType string
}

// List returns a user's logs newest first, optionally bounded by date range
// and meal type.
func (r *FoodLogRepository) List(userID uint, f FoodLogFilter) ([]models.FoodLog, error) {
	q := r.db.Preload("Food").Where("user_id = ?", userID)
	if f.From != nil {
		q = q.Where("date_logged >= ?", models.DateOnly(*f.From))
	}
	if f.To != nil {
		q = q.Where("date_logged <= ?", models.DateOnly(*f.To))
	}
	if f.MealType != "" {
		q = q.Where("meal_type = ?", f.MealType)
	}

	var logs []models.FoodLog
	err := q.Order("date_logged desc, time_logged desc").Find(&logs).Error
	return logs, err
}

func (r *FoodLogRepository) CountByFood(foodID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.FoodLog{}).Where("food_id = ?", foodID).Count(&count).Error
	return count, err
}
