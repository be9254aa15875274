package repository

import (
	"errors"
	"strings"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
	"gorm.io/gorm"
)

// FoodRepository is the explicit query surface over the food catalog;
// callers never navigate ORM relationships.
type FoodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{db: db}
}

func (r *FoodRepository) GetByID(id uint) (*models.Food, error) {
	var food models.Food
	err := r.db.First(&food, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFoodNotFound
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *FoodRepository) Create(food *models.Food) error {
	return r.db.Create(food).Error
}

func (r *FoodRepository) Update(food *models.Food) error {
	return r.db.Save(food).Error
}

// Deactivate soft-deletes a food so search and recommendations stop
// returning it while existing logs keep their reference.
func (r *FoodRepository) Deactivate(id uint) error {
	res := r.db.Model(&models.Food{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrFoodNotFound
	}
	return nil
}

// Delete removes a food permanently. Refused with ErrFoodInUse while any
// food log still references it; logs are never cascade-deleted.
func (r *FoodRepository) Delete(id uint) error {
	var count int64
	if err := r.db.Model(&models.FoodLog{}).Where("food_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrFoodInUse
	}
	res := r.db.Delete(&models.Food{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrFoodNotFound
	}
	return nil
}

type FoodSearchFilter struct {
	Query    string
	Category string
	FoodType string
	Limit    int
}

// Search runs a case-insensitive substring match over name, localized name,
// category and description, optionally narrowed by exact category/food-type,
// ordered by name. Only active foods are returned.
func (r *FoodRepository) Search(f FoodSearchFilter) ([]models.Food, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}

	q := r.db.Where("is_active = ?", true)
	if f.Query != "" {
		term := "%" + strings.ToLower(f.Query) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(name_hindi) LIKE ? OR LOWER(category) LIKE ? OR LOWER(description) LIKE ?",
			term, term, term, term,
		)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.FoodType != "" {
		q = q.Where("food_type = ?", f.FoodType)
	}

	var foods []models.Food
	err := q.Order("name asc").Limit(limit).Find(&foods).Error
	return foods, err
}

func (r *FoodRepository) ListActive() ([]models.Food, error) {
	var foods []models.Food
	err := r.db.Where("is_active = ?", true).Order("name asc").Find(&foods).Error
	return foods, err
}

// Categories returns the distinct categories of active foods.
func (r *FoodRepository) Categories() ([]string, error) {
	var categories []string
	err := r.db.Model(&models.Food{}).
		Where("is_active = ?", true).
		Distinct("category").
		Order("category asc").
		Pluck("category", &categories).Error
	return categories, err
}
