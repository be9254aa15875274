package nutrition

import (
	"strings"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/models"
)

type ServingSpec struct {
	Unit             string    `json:"unit"` // "piece" | "cup" | "grams"
	GramsPerUnit     float64   `json:"grams_per_unit"`
	CommonQuantities []float64 `json:"common_quantities"`
}

type servingRule struct {
	keywords []string
	spec     ServingSpec
}

// Keyword rules are evaluated in order and the first match wins, so a name
// matching several groups ("Vegetable Biryani") resolves to the earliest one.
var servingRules = []servingRule{
	{
		keywords: []string{"idli", "dosa", "vada", "uttapam", "dhokla", "khandvi"},
		spec:     ServingSpec{Unit: "piece", GramsPerUnit: 30, CommonQuantities: []float64{1, 2, 3, 4, 5, 6}},
	},
	{
		keywords: []string{"rice", "biryani", "pulao", "kheer", "pongal"},
		spec:     ServingSpec{Unit: "cup", GramsPerUnit: 150, CommonQuantities: []float64{0.5, 1, 1.5, 2}},
	},
	{
		keywords: []string{"dal", "curry", "sabzi", "sambar", "rasam", "kadhi"},
		spec:     ServingSpec{Unit: "cup", GramsPerUnit: 200, CommonQuantities: []float64{0.5, 1, 1.5, 2}},
	},
	{
		keywords: []string{"roti", "chapati", "naan", "paratha", "puri", "kulcha"},
		spec:     ServingSpec{Unit: "piece", GramsPerUnit: 40, CommonQuantities: []float64{1, 2, 3, 4, 5, 6}},
	},
	{
		keywords: []string{"laddu", "halwa", "burfi", "gulab jamun", "rasgulla", "sweet"},
		spec:     ServingSpec{Unit: "piece", GramsPerUnit: 25, CommonQuantities: []float64{1, 2, 3, 4, 5, 6}},
	},
	{
		keywords: []string{"samosa", "pakora", "bhel", "chat", "namkeen"},
		spec:     ServingSpec{Unit: "piece", GramsPerUnit: 20, CommonQuantities: []float64{1, 2, 3, 4, 5, 10}},
	},
	{
		keywords: []string{"tea", "coffee", "juice", "milk", "drink"},
		spec:     ServingSpec{Unit: "cup", GramsPerUnit: 150, CommonQuantities: []float64{1, 1.5, 2, 2.5, 3}},
	},
}

// ServingUnits picks a natural serving unit for a food from its name, falling
// back to category rules and finally to plain grams.
func ServingUnits(f *models.Food) ServingSpec {
	name := strings.ToLower(f.Name)
	for _, rule := range servingRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.spec
			}
		}
	}
	switch f.Category {
	case "Vegetables":
		return ServingSpec{Unit: "cup", GramsPerUnit: 150, CommonQuantities: []float64{0.5, 1, 1.5, 2}}
	case "Fruits":
		return ServingSpec{Unit: "piece", GramsPerUnit: 100, CommonQuantities: []float64{0.5, 1, 1.5, 2, 3}}
	}
	return ServingSpec{Unit: "grams", GramsPerUnit: 1, CommonQuantities: []float64{50, 100, 150, 200, 250}}
}
