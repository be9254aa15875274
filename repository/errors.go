package repository

import "errors"

var (
	ErrFoodNotFound = errors.New("food not found")
	ErrUserNotFound = errors.New("user not found")
	ErrLogNotFound  = errors.New("food log not found")
	ErrFoodInUse    = errors.New("food is referenced by existing logs")

	ErrPreferenceNotFound = errors.New("preference not found")
)
