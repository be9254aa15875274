package repository

import (
	"errors"
	"time"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
	"gorm.io/gorm"
)

type SummaryRepository struct {
	db *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// GetByUserAndDate returns (nil, nil) when no summary exists for the date;
// absence is an expected state, not an error.
func (r *SummaryRepository) GetByUserAndDate(userID uint, date time.Time) (*models.DailySummary, error) {
	var summary models.DailySummary
	err := r.db.Where("user_id = ? AND date = ?", userID, models.DateOnly(date)).
		First(&summary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *SummaryRepository) Create(summary *models.DailySummary) error {
	return r.db.Create(summary).Error
}

func (r *SummaryRepository) Update(summary *models.DailySummary) error {
	return r.db.Save(summary).Error
}

// ListRange returns the summaries between from and to inclusive, ascending by
// date. Dates without a summary are simply absent.
func (r *SummaryRepository) ListRange(userID uint, from, to time.Time) ([]models.DailySummary, error) {
	var summaries []models.DailySummary
	err := r.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, models.DateOnly(from), models.DateOnly(to)).
		Order("date asc").
		Find(&summaries).Error
	return summaries, err
}
