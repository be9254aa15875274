// Package nutrition is the pure computation core: calorie/macro formulas,
// suitability predicates, recommendation ranking keys and serving-unit
// heuristics. No I/O, no database — everything here is a function of its
// arguments.
package nutrition

import (
	"math"
	"strings"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
)

// Macro ratios as a share of total calories, and energy per gram.
const (
	ProteinRatio = 0.25
	CarbRatio    = 0.45
	FatRatio     = 0.30

	ProteinCaloriesPerGram = 4
	CarbCaloriesPerGram    = 4
	FatCaloriesPerGram     = 9
)

// Goal defaults used when a user has no computed goals yet.
const (
	DefaultCalorieGoal = 2000
	DefaultProteinGoal = 50
	DefaultCarbGoal    = 200
	DefaultFatGoal     = 65
)

var activityMultipliers = map[string]float64{
	"Sedentary":         1.2,
	"Lightly Active":    1.375,
	"Moderately Active": 1.55,
	"Very Active":       1.725,
	"Extremely Active":  1.9,
}

func ActivityLevels() []string {
	return []string{"Sedentary", "Lightly Active", "Moderately Active", "Very Active", "Extremely Active"}
}

// BMR computes basal metabolic rate with the Mifflin-St Jeor equation.
// Inputs are passed through unclamped; validation is a boundary concern.
func BMR(weightKg, heightCm float64, age int, gender string) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if strings.EqualFold(gender, "Male") {
		return bmr + 5
	}
	return bmr - 161
}

// TDEE scales BMR by the activity multiplier. An unrecognised activity level
// falls back to the Sedentary multiplier.
func TDEE(bmr float64, activityLevel string) float64 {
	m, ok := activityMultipliers[activityLevel]
	if !ok {
		m = activityMultipliers["Sedentary"]
	}
	return bmr * m
}

type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// MacroTargets splits a calorie base into gram targets using the fixed
// 25/45/30 ratios.
func MacroTargets(calorieBase float64) Macros {
	return Macros{
		Protein: round1(calorieBase * ProteinRatio / ProteinCaloriesPerGram),
		Carbs:   round1(calorieBase * CarbRatio / CarbCaloriesPerGram),
		Fat:     round1(calorieBase * FatRatio / FatCaloriesPerGram),
	}
}

// BMI returns body mass index rounded to one decimal.
func BMI(weightKg, heightCm float64) float64 {
	h := heightCm / 100
	return round1(weightKg / (h * h))
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

type Nutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// Scale computes the nutrients in quantityGrams of a food from its per-100g
// profile. This is the single scaling routine used both for log snapshots
// and for display.
func Scale(f *models.Food, quantityGrams float64) Nutrients {
	m := quantityGrams / 100
	return Nutrients{
		Calories: round1(f.CaloriesPer100g * m),
		Protein:  round1(f.ProteinPer100g * m),
		Carbs:    round1(f.CarbsPer100g * m),
		Fat:      round1(f.FatPer100g * m),
		Fiber:    round1(f.FiberPer100g * m),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
