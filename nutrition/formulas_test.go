package nutrition

import (
	"testing"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
	"github.com/stretchr/testify/assert"
)

func TestBMRMifflinStJeor(t *testing.T) {
	// 10*70 + 6.25*170 - 5*30 + 5
	assert.InDelta(t, 1617.5, BMR(70, 170, 30, "Male"), 0.001)
	assert.InDelta(t, 1451.5, BMR(70, 170, 30, "Female"), 0.001)
	assert.InDelta(t, 1451.5, BMR(70, 170, 30, "Other"), 0.001)
}

func TestBMRMaleExceedsNonMaleBy166(t *testing.T) {
	male := BMR(82.5, 168, 44, "Male")
	female := BMR(82.5, 168, 44, "Female")
	assert.InDelta(t, 166, male-female, 0.001)
}

func TestBMRMonotonicity(t *testing.T) {
	base := BMR(70, 170, 30, "Male")
	assert.Greater(t, BMR(71, 170, 30, "Male"), base)
	assert.Greater(t, BMR(70, 171, 30, "Male"), base)
	assert.Less(t, BMR(70, 170, 31, "Male"), base)
}

func TestBMRImplausibleInputPassesThrough(t *testing.T) {
	// Validation is a boundary concern; a negative result is not an error.
	assert.Less(t, BMR(0, 0, 200, "Female"), 0.0)
}

func TestActivityLevelsEachMapToDistinctMultiplier(t *testing.T) {
	levels := ActivityLevels()
	assert.Len(t, levels, 5)
	seen := map[float64]bool{}
	for _, lvl := range levels {
		m := TDEE(1000, lvl)
		assert.False(t, seen[m], lvl)
		seen[m] = true
	}
}

func TestTDEEMultipliers(t *testing.T) {
	assert.InDelta(t, 1941.0, TDEE(1617.5, "Sedentary"), 0.001)
	assert.InDelta(t, 1617.5*1.375, TDEE(1617.5, "Lightly Active"), 0.001)
	assert.InDelta(t, 1617.5*1.55, TDEE(1617.5, "Moderately Active"), 0.001)
	assert.InDelta(t, 1617.5*1.725, TDEE(1617.5, "Very Active"), 0.001)
	assert.InDelta(t, 1617.5*1.9, TDEE(1617.5, "Extremely Active"), 0.001)
}

func TestTDEEUnknownActivityDefaultsToSedentary(t *testing.T) {
	assert.InDelta(t, TDEE(1500, "Sedentary"), TDEE(1500, "couch potato"), 0.001)
}

func TestMacroTargetsEnergyAddsUp(t *testing.T) {
	for _, base := range []float64{1200, 2000, 2750.5, 3200} {
		m := MacroTargets(base)
		total := m.Protein*ProteinCaloriesPerGram + m.Carbs*CarbCaloriesPerGram + m.Fat*FatCaloriesPerGram
		assert.InDelta(t, base, total, 1.0, "calorie base %v", base)
	}
}

func TestMacroTargetsRatios(t *testing.T) {
	m := MacroTargets(2000)
	assert.Equal(t, 125.0, m.Protein) // 2000*0.25/4
	assert.Equal(t, 225.0, m.Carbs)   // 2000*0.45/4
	assert.InDelta(t, 66.7, m.Fat, 0.001)
}

func TestBMICategories(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(17.0))
	assert.Equal(t, "Normal weight", BMICategory(22.0))
	assert.Equal(t, "Overweight", BMICategory(27.5))
	assert.Equal(t, "Obese", BMICategory(31.0))
}

func TestBMIValue(t *testing.T) {
	// 70 / 1.7^2 = 24.22...
	assert.Equal(t, 24.2, BMI(70, 170))
}

func TestScaleNutrition(t *testing.T) {
	food := &models.Food{
		CaloriesPer100g: 130,
		ProteinPer100g:  2.7,
		CarbsPer100g:    28.2,
		FatPer100g:      0.3,
		FiberPer100g:    0.4,
	}

	n := Scale(food, 150)
	assert.Equal(t, 195.0, n.Calories)
	assert.Equal(t, 4.1, n.Protein)
	assert.Equal(t, 42.3, n.Carbs)
	assert.InDelta(t, 0.5, n.Fat, 0.001)
	assert.InDelta(t, 0.6, n.Fiber, 0.001)
}

func TestScaleBy100ReturnsPer100gValues(t *testing.T) {
	food := &models.Food{CaloriesPer100g: 247.3, ProteinPer100g: 11.8, CarbsPer100g: 30.1, FatPer100g: 9.9, FiberPer100g: 2.5}
	n := Scale(food, 100)
	assert.Equal(t, food.CaloriesPer100g, n.Calories)
	assert.Equal(t, food.ProteinPer100g, n.Protein)
	assert.Equal(t, food.CarbsPer100g, n.Carbs)
	assert.Equal(t, food.FatPer100g, n.Fat)
	assert.Equal(t, food.FiberPer100g, n.Fiber)
}

func TestScaleIsLinear(t *testing.T) {
	food := &models.Food{CaloriesPer100g: 130, ProteinPer100g: 2.7, CarbsPer100g: 28.2, FatPer100g: 0.3}
	assert.Equal(t, 2*Scale(food, 100).Calories, Scale(food, 200).Calories)
}
