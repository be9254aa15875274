package services

import (
	"errors"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/repository"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/utils"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService struct {
	users *repository.UserRepository
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{users: repository.NewUserRepository(db)}
}

// Authenticate verifies the password and mints a bearer token. Lookup
// failures and bad passwords collapse into one error so callers cannot probe
// for usernames.
func (s *AuthService) Authenticate(username, password string) (*models.User, string, error) {
	user, err := s.users.GetByUsername(username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
