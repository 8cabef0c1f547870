package recipe

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/alchemorsel/personal-chef/internal/domain/units"
)

// Value Objects - Immutable objects that describe aspects of the domain

// Category is the store section an ingredient is bought from
type Category string

const (
	CategoryProduce     Category = "produce"
	CategoryMeatSeafood Category = "meat_seafood"
	CategoryDairyEggs   Category = "dairy_eggs"
	CategoryBakery      Category = "bakery"
	CategoryFrozen      Category = "frozen"
	CategoryPantry      Category = "pantry"
	CategorySpices      Category = "spices"
)

// Section describes how a category is presented on a shopping list
type Section struct {
	Category Category
	Name     string
	Emoji    string
	Order    int
}

// sections is the fixed store layout, in walking order.
var sections = [...]Section{
	{Category: CategoryProduce, Name: "Produce", Emoji: "🥬", Order: 1},
	{Category: CategoryMeatSeafood, Name: "Meat & Seafood", Emoji: "🥩", Order: 2},
	{Category: CategoryDairyEggs, Name: "Dairy & Eggs", Emoji: "🥛", Order: 3},
	{Category: CategoryBakery, Name: "Bakery", Emoji: "🥖", Order: 4},
	{Category: CategoryFrozen, Name: "Frozen", Emoji: "🧊", Order: 5},
	{Category: CategoryPantry, Name: "Pantry", Emoji: "🥫", Order: 6},
	{Category: CategorySpices, Name: "Spices", Emoji: "🧂", Order: 7},
}

// LookupSection returns the section configuration for a category
func LookupSection(c Category) (Section, error) {
	for _, s := range sections {
		if s.Category == c {
			return s, nil
		}
	}
	return Section{}, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
}

// Categories returns every known category in section order
func Categories() []Category {
	out := make([]Category, len(sections))
	for i, s := range sections {
		out[i] = s.Category
	}
	return out
}

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	_, err := LookupSection(c)
	return err == nil
}

// NutritionRecord holds the nutrients of an ingredient or a recipe.
// Calories and sodium are whole numbers, the gram fields carry one decimal.
type NutritionRecord struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
	SugarG   float64 `json:"sugar_g"`
	SodiumMg int     `json:"sodium_mg"`
}

// IsEmpty reports whether every nutrient is zero
func (n NutritionRecord) IsEmpty() bool {
	return n == NutritionRecord{}
}

// RoundGrams rounds a gram value to one decimal place
func RoundGrams(v float64) float64 {
	return math.Round(v*10) / 10
}

// Ingredient is a recipe ingredient with its looked-up nutrition
type Ingredient struct {
	ID          string          `json:"id"`
	EnglishName string          `json:"englishName"`
	DisplayName string          `json:"displayName"`
	Quantity    float64         `json:"quantity"`
	Unit        string          `json:"unit"`
	Category    Category        `json:"category"`
	Notes       string          `json:"notes,omitempty"`
	Nutrition   NutritionRecord `json:"nutrition"`
}

// Validate validates the ingredient
func (i Ingredient) Validate() error {
	if strings.TrimSpace(i.EnglishName) == "" {
		return ErrIngredientNameRequired
	}
	if i.Quantity <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidQuantity, i.EnglishName)
	}
	if !i.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, i.Category)
	}
	return nil
}

// Name returns the display name, falling back to the English name
func (i Ingredient) Name() string {
	if i.DisplayName != "" {
		return i.DisplayName
	}
	return i.EnglishName
}

// Scaled returns a copy with the quantity rescaled between servings.
// Nutrition is left as recorded for the original quantity.
func (i Ingredient) Scaled(original, desired int) Ingredient {
	i.Quantity = units.Scale(i.Quantity, original, desired)
	return i
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// IngredientID builds the identifier of the ingredient at index,
// e.g. IngredientID(2, "Olive Oil") == "ing-2-olive-oil".
func IngredientID(index int, englishName string) string {
	slug := whitespaceRun.ReplaceAllString(strings.ToLower(englishName), "-")
	return fmt.Sprintf("ing-%d-%s", index, slug)
}

// Instruction represents a cooking instruction step
type Instruction struct {
	Step        int    `json:"step"`
	Text        string `json:"text"`
	TimeMinutes int    `json:"time_minutes,omitempty"`
	Tip         string `json:"tip,omitempty"`
}

// Substitution suggests a replacement for an ingredient
type Substitution struct {
	Original   string `json:"original"`
	Substitute string `json:"substitute"`
	Notes      string `json:"notes,omitempty"`
}

// Difficulty represents how hard a recipe is to cook
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is a known difficulty
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}
