// Package nutrition aggregates per-ingredient nutrition into recipe totals,
// per-serving values and a calorie breakdown.
package nutrition

import (
	"cmp"
	"math"
	"slices"

	"github.com/alchemorsel/personal-chef/internal/domain/recipe"
)

// Empty returns the all-zero record used when no data is available
func Empty() recipe.NutritionRecord {
	return recipe.NutritionRecord{}
}

// Sum adds records field by field. Gram fields are rounded to one decimal
// after each addition.
func Sum(records ...recipe.NutritionRecord) recipe.NutritionRecord {
	var total recipe.NutritionRecord
	for _, r := range records {
		total = recipe.NutritionRecord{
			Calories: total.Calories + r.Calories,
			ProteinG: recipe.RoundGrams(total.ProteinG + r.ProteinG),
			CarbsG:   recipe.RoundGrams(total.CarbsG + r.CarbsG),
			FatG:     recipe.RoundGrams(total.FatG + r.FatG),
			FiberG:   recipe.RoundGrams(total.FiberG + r.FiberG),
			SugarG:   recipe.RoundGrams(total.SugarG + r.SugarG),
			SodiumMg: total.SodiumMg + r.SodiumMg,
		}
	}
	return total
}

// SumIngredients sums the nutrition of every ingredient
func SumIngredients(ingredients []recipe.Ingredient) recipe.NutritionRecord {
	records := make([]recipe.NutritionRecord, len(ingredients))
	for idx, ing := range ingredients {
		records[idx] = ing.Nutrition
	}
	return Sum(records...)
}

// PerServing divides a total across servings. A non-positive serving
// count returns the total unchanged.
func PerServing(total recipe.NutritionRecord, servings int) recipe.NutritionRecord {
	if servings <= 0 {
		return total
	}
	s := float64(servings)
	return recipe.NutritionRecord{
		Calories: roundInt(float64(total.Calories) / s),
		ProteinG: recipe.RoundGrams(total.ProteinG / s),
		CarbsG:   recipe.RoundGrams(total.CarbsG / s),
		FatG:     recipe.RoundGrams(total.FatG / s),
		FiberG:   recipe.RoundGrams(total.FiberG / s),
		SugarG:   recipe.RoundGrams(total.SugarG / s),
		SodiumMg: roundInt(float64(total.SodiumMg) / s),
	}
}

// BreakdownItem is one ingredient's share of the recipe calories
type BreakdownItem struct {
	IngredientName    string `json:"ingredient_name"`
	Calories          int    `json:"calories"`
	PercentageOfTotal int    `json:"percentage_of_total"`
}

// Breakdown lists the calorie contribution of each ingredient, largest
// first. Ingredients without calories are left out and equal percentages
// keep their input order.
func Breakdown(ingredients []recipe.Ingredient, total recipe.NutritionRecord) []BreakdownItem {
	items := make([]BreakdownItem, 0, len(ingredients))
	for _, ing := range ingredients {
		if ing.Nutrition.Calories <= 0 {
			continue
		}
		pct := 0
		if total.Calories > 0 {
			pct = roundInt(float64(ing.Nutrition.Calories) / float64(total.Calories) * 100)
		}
		items = append(items, BreakdownItem{
			IngredientName:    ing.Name(),
			Calories:          ing.Nutrition.Calories,
			PercentageOfTotal: pct,
		})
	}

	slices.SortStableFunc(items, func(a, b BreakdownItem) int {
		return cmp.Compare(b.PercentageOfTotal, a.PercentageOfTotal)
	})
	return items
}

// ScaleBreakdown rescales breakdown calories from original to desired
// servings. Percentages are ratios and stay as they are.
func ScaleBreakdown(items []BreakdownItem, original, desired int) []BreakdownItem {
	out := slices.Clone(items)
	if original <= 0 || desired <= 0 {
		return out
	}
	factor := float64(desired) / float64(original)
	for idx := range out {
		out[idx].Calories = roundInt(float64(out[idx].Calories) * factor)
	}
	return out
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
