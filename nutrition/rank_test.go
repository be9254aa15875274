package nutrition

import (
	"testing"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
	"github.com/stretchr/testify/assert"
)

func TestCategoryPriorityOrdering(t *testing.T) {
	assert.Equal(t, 1, CategoryPriority("South Indian"))
	assert.Equal(t, 2, CategoryPriority("Dal & Lentils"))
	assert.Equal(t, 3, CategoryPriority("Rice & Grains"))
	assert.Equal(t, 4, CategoryPriority("Vegetables"))
	assert.Equal(t, 5, CategoryPriority("Sweets"))
	assert.Equal(t, 5, CategoryPriority(""))
}

func TestIsPreferredCategory(t *testing.T) {
	assert.True(t, IsPreferredCategory("South Indian"))
	assert.True(t, IsPreferredCategory("Vegetables"))
	assert.False(t, IsPreferredCategory("Snacks"))
}

func TestDensity(t *testing.T) {
	assert.Equal(t, 2.08, Density(&models.Food{ProteinPer100g: 2.7, CaloriesPer100g: 130}))
	// Zero-calorie foods score zero instead of dividing by zero.
	assert.Equal(t, 0.0, Density(&models.Food{ProteinPer100g: 5, CaloriesPer100g: 0}))
}
