package usda

import "strings"

// defaultGrams is assumed for one of any unit not listed below
const defaultGrams = 100

// gramsPerUnit approximates the weight of one unit. Volumes assume a
// density close to water; counts are rough averages.
var gramsPerUnit = map[string]float64{
	// Weight
	"g":        1,
	"gram":     1,
	"grams":    1,
	"kg":       1000,
	"kilogram": 1000,
	"oz":       28.35,
	"ounce":    28.35,
	"ounces":   28.35,
	"lb":       453.59,
	"lbs":      453.59,
	"pound":    453.59,
	"pounds":   453.59,

	// Volume
	"ml":          1,
	"milliliter":  1,
	"l":           1000,
	"liter":       1000,
	"cup":         240,
	"cups":        240,
	"tbsp":        15,
	"tablespoon":  15,
	"tablespoons": 15,
	"tsp":         5,
	"teaspoon":    5,
	"teaspoons":   5,
	"fl_oz":       30,
	"fl oz":       30,
	"fluid ounce": 30,

	// Count
	"piece":  100,
	"pieces": 100,
	"slice":  30,
	"slices": 30,
	"clove":  3,
	"cloves": 3,
	"bunch":  100,
	"head":   500,
	"large":  150,
	"medium": 100,
	"small":  50,
	"whole":  100,
}

// GramWeight estimates the weight in grams of quantity units
func GramWeight(quantity float64, unit string) float64 {
	grams, ok := gramsPerUnit[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		grams = defaultGrams
	}
	return quantity * grams
}
