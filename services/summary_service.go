package services

import (
	"math"
	"time"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/nutrition"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/repository"
	"gorm.io/gorm"
)

type SummaryService struct {
	summaries *repository.SummaryRepository
	logs      *repository.FoodLogRepository
	users     *repository.UserRepository
}

func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{
		summaries: repository.NewSummaryRepository(db),
		logs:      repository.NewFoodLogRepository(db),
		users:     repository.NewUserRepository(db),
	}
}

// GetOrCreate returns the summary for the date, creating an empty one with
// the user's current goals snapshotted (stock defaults when the user has no
// goals computed yet). The user itself must exist.
func (s *SummaryService) GetOrCreate(userID uint, date time.Time) (*models.DailySummary, error) {
	summary, err := s.summaries.GetByUserAndDate(userID, date)
	if err != nil {
		return nil, err
	}
	if summary != nil {
		return summary, nil
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	summary = &models.DailySummary{
		UserID:      userID,
		Date:        models.DateOnly(date),
		CalorieGoal: user.CalorieGoalOr(nutrition.DefaultCalorieGoal),
		ProteinGoal: user.ProteinGoalOr(nutrition.DefaultProteinGoal),
		CarbGoal:    user.CarbGoalOr(nutrition.DefaultCarbGoal),
		FatGoal:     user.FatGoalOr(nutrition.DefaultFatGoal),
	}
	if err := s.summaries.Create(summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// UpdateFromLogs recomputes the summary as a full replacement from the day's
// log set. Idempotent: repeated calls with an unchanged log set produce the
// same row. Must be called after every log create/edit/delete.
func (s *SummaryService) UpdateFromLogs(userID uint, date time.Time) (*models.DailySummary, error) {
	summary, err := s.GetOrCreate(userID, date)
	if err != nil {
		return nil, err
	}

	logs, err := s.logs.ListByDate(userID, date)
	if err != nil {
		return nil, err
	}

	var calories, protein, carbs, fat float64
	for i := range logs {
		calories += logs[i].CaloriesConsumed
		protein += logs[i].ProteinConsumed
		carbs += logs[i].CarbsConsumed
		fat += logs[i].FatConsumed
	}

	summary.TotalCalories = round1(calories)
	summary.TotalProtein = round1(protein)
	summary.TotalCarbs = round1(carbs)
	summary.TotalFat = round1(fat)
	summary.MealsLogged = len(logs)

	if err := s.summaries.Update(summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// Weekly returns the summaries from start to start+6 inclusive, ascending.
// A zero start means the trailing seven days. Missing dates are absent, not
// zero-filled; callers handle the sparse series.
func (s *SummaryService) Weekly(userID uint, start time.Time) ([]models.DailySummary, error) {
	if start.IsZero() {
		start = time.Now().UTC().AddDate(0, 0, -6)
	}
	start = models.DateOnly(start)
	return s.summaries.ListRange(userID, start, start.AddDate(0, 0, 6))
}

type Progress struct {
	Consumed   float64 `json:"consumed"`
	Goal       float64 `json:"goal"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// CalorieProgress derives goal-vs-actual for a date; with no summary the
// whole goal is still remaining.
func (s *SummaryService) CalorieProgress(user *models.User, summary *models.DailySummary) Progress {
	goal := user.CalorieGoalOr(nutrition.DefaultCalorieGoal)
	if summary == nil {
		return Progress{Goal: goal, Remaining: goal}
	}
	return Progress{
		Consumed:   round1(summary.TotalCalories),
		Goal:       summary.CalorieGoal,
		Remaining:  round1(summary.CaloriesRemaining()),
		Percentage: summary.CaloriePercentage(),
	}
}

// MacroProgress returns the per-macro goal-vs-actual map for a date.
func (s *SummaryService) MacroProgress(user *models.User, summary *models.DailySummary) map[string]Progress {
	if summary == nil {
		return map[string]Progress{
			"protein": {Goal: user.ProteinGoalOr(nutrition.DefaultProteinGoal), Remaining: user.ProteinGoalOr(nutrition.DefaultProteinGoal)},
			"carbs":   {Goal: user.CarbGoalOr(nutrition.DefaultCarbGoal), Remaining: user.CarbGoalOr(nutrition.DefaultCarbGoal)},
			"fat":     {Goal: user.FatGoalOr(nutrition.DefaultFatGoal), Remaining: user.FatGoalOr(nutrition.DefaultFatGoal)},
		}
	}
	return map[string]Progress{
		"protein": {
			Consumed:   round1(summary.TotalProtein),
			Goal:       summary.ProteinGoal,
			Remaining:  math.Max(0, round1(summary.ProteinGoal-summary.TotalProtein)),
			Percentage: summary.ProteinPercentage(),
		},
		"carbs": {
			Consumed:   round1(summary.TotalCarbs),
			Goal:       summary.CarbGoal,
			Remaining:  math.Max(0, round1(summary.CarbGoal-summary.TotalCarbs)),
			Percentage: summary.CarbPercentage(),
		},
		"fat": {
			Consumed:   round1(summary.TotalFat),
			Goal:       summary.FatGoal,
			Remaining:  math.Max(0, round1(summary.FatGoal-summary.TotalFat)),
			Percentage: summary.FatPercentage(),
		},
	}
}

func (s *SummaryService) GetByDate(userID uint, date time.Time) (*models.DailySummary, error) {
	return s.summaries.GetByUserAndDate(userID, date)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
