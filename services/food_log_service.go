package services

import (
	"time"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/nutrition"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/repository"
	"gorm.io/gorm"
)

type FoodLogService struct {
	logs      *repository.FoodLogRepository
	foods     *repository.FoodRepository
	summaries *SummaryService
}

func NewFoodLogService(db *gorm.DB) *FoodLogService {
	return &FoodLogService{
		logs:      repository.NewFoodLogRepository(db),
		foods:     repository.NewFoodRepository(db),
		summaries: NewSummaryService(db),
	}
}

type LogInput struct {
	FoodID        uint
	QuantityGrams float64
	MealType      string
	Notes         string
	Date          time.Time // zero means today
}

// Log records a consumed quantity with a nutrition snapshot derived from the
// food's per-100g values, then recomputes the day's summary.
func (s *FoodLogService) Log(userID uint, in LogInput) (*models.FoodLog, error) {
	food, err := s.foods.GetByID(in.FoodID)
	if err != nil {
		return nil, err
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	nut := nutrition.Scale(food, in.QuantityGrams)
	log := &models.FoodLog{
		UserID:           userID,
		FoodID:           food.ID,
		QuantityGrams:    in.QuantityGrams,
		MealType:         in.MealType,
		CaloriesConsumed: nut.Calories,
		ProteinConsumed:  nut.Protein,
		CarbsConsumed:    nut.Carbs,
		FatConsumed:      nut.Fat,
		DateLogged:       models.DateOnly(date),
		TimeLogged:       time.Now().UTC(),
		Notes:            in.Notes,
	}

	if err := s.logs.Create(log); err != nil {
		return nil, err
	}
	if _, err := s.summaries.UpdateFromLogs(userID, log.DateLogged); err != nil {
		return nil, err
	}
	log.Food = *food
	return log, nil
}

// Update edits an entry and re-derives the nutrient snapshot atomically with
// the edit. When the edit moves the log to another date, both days' summaries
// are recomputed.
func (s *FoodLogService) Update(userID, logID uint, in LogInput) (*models.FoodLog, error) {
	log, err := s.logs.GetByID(userID, logID)
	if err != nil {
		return nil, err
	}
	oldDate := log.DateLogged

	food := &log.Food
	if in.FoodID != 0 && in.FoodID != log.FoodID {
		food, err = s.foods.GetByID(in.FoodID)
		if err != nil {
			return nil, err
		}
		log.FoodID = food.ID
	}

	log.QuantityGrams = in.QuantityGrams
	log.MealType = in.MealType
	log.Notes = in.Notes
	if !in.Date.IsZero() {
		log.DateLogged = models.DateOnly(in.Date)
	}

	nut := nutrition.Scale(food, log.QuantityGrams)
	log.CaloriesConsumed = nut.Calories
	log.ProteinConsumed = nut.Protein
	log.CarbsConsumed = nut.Carbs
	log.FatConsumed = nut.Fat

	if err := s.logs.Update(log); err != nil {
		return nil, err
	}

	if _, err := s.summaries.UpdateFromLogs(userID, log.DateLogged); err != nil {
		return nil, err
	}
	if !oldDate.Equal(log.DateLogged) {
		if _, err := s.summaries.UpdateFromLogs(userID, oldDate); err != nil {
			return nil, err
		}
	}
	log.Food = *food
	return log, nil
}

// Delete removes an entry and recomputes the affected day's summary.
func (s *FoodLogService) Delete(userID, logID uint) error {
	log, err := s.logs.GetByID(userID, logID)
	if err != nil {
		return err
	}
	if err := s.logs.Delete(log); err != nil {
		return err
	}
	_, err = s.summaries.UpdateFromLogs(userID, log.DateLogged)
	return err
}

func (s *FoodLogService) Get(userID, logID uint) (*models.FoodLog, error) {
	return s.logs.GetByID(userID, logID)
}

func (s *FoodLogService) ListByDate(userID uint, date time.Time) ([]models.FoodLog, error) {
	return s.logs.ListByDate(userID, date)
}

func (s *FoodLogService) List(userID uint, filter repository.FoodLogFilter) ([]models.FoodLog, error) {
	return s.logs.List(userID, filter)
}
