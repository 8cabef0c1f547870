package nutrition

import "github.com/alchemorsel/personal-chef/internal/domain/recipe"

// Reference daily intake for a 2000 kcal diet.
const (
	DailyCalories = 2000
	DailyProteinG = 50
	DailyCarbsG   = 300
	DailyFatG     = 65
	DailyFiberG   = 25
	DailySodiumMg = 2300
)

// DailyValue holds percentages of the reference daily intake
type DailyValue struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Fiber    int `json:"fiber"`
	Sodium   int `json:"sodium"`
}

// DailyValues expresses a per-serving record as daily value percentages
func DailyValues(n recipe.NutritionRecord) DailyValue {
	return DailyValue{
		Calories: percentOf(float64(n.Calories), DailyCalories),
		Protein:  percentOf(n.ProteinG, DailyProteinG),
		Carbs:    percentOf(n.CarbsG, DailyCarbsG),
		Fat:      percentOf(n.FatG, DailyFatG),
		Fiber:    percentOf(n.FiberG, DailyFiberG),
		Sodium:   percentOf(float64(n.SodiumMg), DailySodiumMg),
	}
}

func percentOf(v, reference float64) int {
	return roundInt(v / reference * 100)
}
