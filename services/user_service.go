package services

import (
	"fmt"
	"math"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/nutrition"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/repository"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/utils"
	"gorm.io/gorm"
)

type UserService struct {
	users *repository.UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{users: repository.NewUserRepository(db)}
}

type RegisterInput struct {
	Username       string
	Email          string
	Password       string
	FirstName      string
	LastName       string
	Age            int
	Gender         string
	HeightCm       float64
	WeightKg       float64
	ActivityLevel  string
	FoodPreference string
	IsDiabetic     bool
}

// Register creates a user with goals computed immediately; a profile is never
// persisted without current goals.
func (s *UserService) Register(in RegisterInput) (*models.User, error) {
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:       in.Username,
		Email:          in.Email,
		PasswordHash:   hash,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Age:            in.Age,
		Gender:         in.Gender,
		HeightCm:       in.HeightCm,
		WeightKg:       in.WeightKg,
		ActivityLevel:  in.ActivityLevel,
		FoodPreference: in.FoodPreference,
		IsDiabetic:     in.IsDiabetic,
	}
	user.SetDislikedFoodIDs(nil)
	ApplyGoals(user)

	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

type ProfileUpdate struct {
	FirstName      string
	LastName       string
	Age            int
	Gender         string
	HeightCm       float64
	WeightKg       float64
	ActivityLevel  string
	FoodPreference string
	IsDiabetic     bool
}

// UpdateProfile applies physiological/preference changes and recomputes goals
// in the same write, so stored goals never go stale.
func (s *UserService) UpdateProfile(userID uint, upd ProfileUpdate) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = upd.FirstName
	user.LastName = upd.LastName
	user.Age = upd.Age
	user.Gender = upd.Gender
	user.HeightCm = upd.HeightCm
	user.WeightKg = upd.WeightKg
	user.ActivityLevel = upd.ActivityLevel
	user.FoodPreference = upd.FoodPreference
	user.IsDiabetic = upd.IsDiabetic
	ApplyGoals(user)

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

type GoalOverride struct {
	CalorieGoal *float64
	ProteinGoal *float64
	CarbGoal    *float64
	FatGoal     *float64
}

// UpdateGoals overrides computed goals with user-chosen values. Only the
// provided fields change; the override holds until the next profile edit,
// which recomputes all goals from physiology.
func (s *UserService) UpdateGoals(userID uint, o GoalOverride) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if o.CalorieGoal != nil {
		user.DailyCalorieGoal = o.CalorieGoal
	}
	if o.ProteinGoal != nil {
		user.ProteinGoal = o.ProteinGoal
	}
	if o.CarbGoal != nil {
		user.CarbGoal = o.CarbGoal
	}
	if o.FatGoal != nil {
		user.FatGoal = o.FatGoal
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateDislikes(userID uint, foodIDs []uint) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.SetDislikedFoodIDs(foodIDs)
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(userID uint) (*models.User, error) {
	return s.users.GetByID(userID)
}

// ApplyGoals recomputes the calorie goal (TDEE rounded to whole calories) and
// the macro gram targets from the user's current physiology.
func ApplyGoals(u *models.User) {
	bmr := nutrition.BMR(u.WeightKg, u.HeightCm, u.Age, u.Gender)
	calorieGoal := math.Round(nutrition.TDEE(bmr, u.ActivityLevel))
	macros := nutrition.MacroTargets(calorieGoal)

	u.DailyCalorieGoal = &calorieGoal
	u.ProteinGoal = &macros.Protein
	u.CarbGoal = &macros.Carbs
	u.FatGoal = &macros.Fat
}
