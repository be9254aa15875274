package repository

import (
	"errors"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
	"gorm.io/gorm"
)

type PreferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// ListActive returns a user's active preferences, optionally narrowed to one
// type, oldest first.
func (r *PreferenceRepository) ListActive(userID uint, preferenceType string) ([]models.UserPreference, error) {
	q := r.db.Where("user_id = ? AND is_active = ?", userID, true)
	if preferenceType != "" {
		q = q.Where("preference_type = ?", preferenceType)
	}
	var prefs []models.UserPreference
	err := q.Order("created_at asc, id asc").Find(&prefs).Error
	return prefs, err
}

// FindActive returns the matching active preference, or nil when absent.
func (r *PreferenceRepository) FindActive(userID uint, preferenceType, value string) (*models.UserPreference, error) {
	var pref models.UserPreference
	err := r.db.
		Where("user_id = ? AND preference_type = ? AND preference_value = ? AND is_active = ?",
			userID, preferenceType, value, true).
		First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

func (r *PreferenceRepository) Create(pref *models.UserPreference) error {
	return r.db.Create(pref).Error
}

// Deactivate soft-deletes a preference row.
func (r *PreferenceRepository) Deactivate(pref *models.UserPreference) error {
	pref.IsActive = false
	return r.db.Save(pref).Error
}
