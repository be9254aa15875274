package services

import (
	"errors"
	"strings"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/repository"
	"gorm.io/gorm"
)

var (
	ErrUnknownPreferenceType = errors.New("unknown preference type")
	ErrEmptyPreferenceValue  = errors.New("preference value must not be empty")
)

// PreferenceService manages typed dietary restrictions (allergies, free-text
// dislikes, medical restrictions) attached to a user.
type PreferenceService struct {
	prefs *repository.PreferenceRepository
	users *repository.UserRepository
}

func NewPreferenceService(db *gorm.DB) *PreferenceService {
	return &PreferenceService{
		prefs: repository.NewPreferenceRepository(db),
		users: repository.NewUserRepository(db),
	}
}

// Add records a preference. Re-adding an active duplicate returns the
// existing row instead of creating another.
func (s *PreferenceService) Add(userID uint, preferenceType, value string) (*models.UserPreference, error) {
	if !models.IsPreferenceType(preferenceType) {
		return nil, ErrUnknownPreferenceType
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, ErrEmptyPreferenceValue
	}
	if _, err := s.users.GetByID(userID); err != nil {
		return nil, err
	}

	existing, err := s.prefs.FindActive(userID, preferenceType, value)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	pref := &models.UserPreference{
		UserID:          userID,
		PreferenceType:  preferenceType,
		PreferenceValue: value,
		IsActive:        true,
	}
	if err := s.prefs.Create(pref); err != nil {
		return nil, err
	}
	return pref, nil
}

// BulkAdd records several values of one type, skipping blank entries.
func (s *PreferenceService) BulkAdd(userID uint, preferenceType string, values []string) ([]models.UserPreference, error) {
	var added []models.UserPreference
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		pref, err := s.Add(userID, preferenceType, v)
		if err != nil {
			return nil, err
		}
		added = append(added, *pref)
	}
	return added, nil
}

// Remove soft-deletes the matching active preference.
func (s *PreferenceService) Remove(userID uint, preferenceType, value string) error {
	pref, err := s.prefs.FindActive(userID, preferenceType, strings.TrimSpace(value))
	if err != nil {
		return err
	}
	if pref == nil {
		return repository.ErrPreferenceNotFound
	}
	return s.prefs.Deactivate(pref)
}

// Grouped returns the active preference values bucketed by type, with every
// known type present even when empty.
func (s *PreferenceService) Grouped(userID uint) (map[string][]string, error) {
	prefs, err := s.prefs.ListActive(userID, "")
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string, len(models.PreferenceTypes))
	for _, t := range models.PreferenceTypes {
		out[t] = []string{}
	}
	for i := range prefs {
		p := &prefs[i]
		out[p.PreferenceType] = append(out[p.PreferenceType], p.PreferenceValue)
	}
	return out, nil
}

// Values returns the active values of one type.
func (s *PreferenceService) Values(userID uint, preferenceType string) ([]string, error) {
	prefs, err := s.prefs.ListActive(userID, preferenceType)
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(prefs))
	for i := range prefs {
		values = append(values, prefs[i].PreferenceValue)
	}
	return values, nil
}
