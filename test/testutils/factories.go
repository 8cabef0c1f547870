// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"time"

	"github.com/alchemorsel/personal-chef/internal/domain/recipe"
	"github.com/brianvoe/gofakeit/v6"
)

var kitchenUnits = []string{"cup", "cups", "tbsp", "tsp", "g", "kg", "oz", "lb", "ml", "piece", "clove", "bunch", ""}

// IngredientFactory provides methods to create test ingredients
type IngredientFactory struct {
	faker *gofakeit.Faker
}

// NewIngredientFactory creates a new ingredient factory with seeded faker
func NewIngredientFactory(seed int64) *IngredientFactory {
	return &IngredientFactory{
		faker: gofakeit.New(seed),
	}
}

// Ingredient creates a valid ingredient with random nutrition
func (f *IngredientFactory) Ingredient() recipe.Ingredient {
	categories := recipe.Categories()
	name := f.faker.Fruit()
	if f.faker.Bool() {
		name = f.faker.Vegetable()
	}

	return recipe.Ingredient{
		EnglishName: name,
		DisplayName: name,
		Quantity:    f.faker.Float64Range(0.25, 12),
		Unit:        kitchenUnits[f.faker.IntRange(0, len(kitchenUnits)-1)],
		Category:    categories[f.faker.IntRange(0, len(categories)-1)],
		Nutrition:   f.Nutrition(),
	}
}

// Ingredients creates n ingredients with positional IDs
func (f *IngredientFactory) Ingredients(n int) []recipe.Ingredient {
	out := make([]recipe.Ingredient, n)
	for idx := range out {
		out[idx] = f.Ingredient()
		out[idx].ID = recipe.IngredientID(idx, out[idx].EnglishName)
	}
	return out
}

// Nutrition creates a plausible nutrition record
func (f *IngredientFactory) Nutrition() recipe.NutritionRecord {
	return recipe.NutritionRecord{
		Calories: f.faker.IntRange(0, 600),
		ProteinG: recipe.RoundGrams(f.faker.Float64Range(0, 40)),
		CarbsG:   recipe.RoundGrams(f.faker.Float64Range(0, 80)),
		FatG:     recipe.RoundGrams(f.faker.Float64Range(0, 30)),
		FiberG:   recipe.RoundGrams(f.faker.Float64Range(0, 10)),
		SugarG:   recipe.RoundGrams(f.faker.Float64Range(0, 20)),
		SodiumMg: f.faker.IntRange(0, 900),
	}
}

// RecipeBuilder provides a fluent interface for building test recipes
type RecipeBuilder struct {
	r recipe.Recipe
}

// NewRecipeBuilder creates a new recipe builder with default values
func NewRecipeBuilder() *RecipeBuilder {
	faker := gofakeit.New(time.Now().UnixNano())

	return &RecipeBuilder{
		r: recipe.Recipe{
			Name:            faker.Sentence(3),
			Description:     faker.Sentence(10),
			Cuisine:         "Italian",
			Servings:        4,
			PrepTimeMinutes: 15,
			CookTimeMinutes: 30,
			Difficulty:      recipe.DifficultyMedium,
			Ingredients:     []recipe.Ingredient{},
			Instructions: []recipe.Instruction{
				{Step: 1, Text: "Prepare the ingredients"},
				{Step: 2, Text: "Cook until done", TimeMinutes: 30},
			},
			Tags:        []string{"test", "recipe"},
			DietaryInfo: []string{"vegetarian"},
		},
	}
}

// WithName sets the recipe name
func (rb *RecipeBuilder) WithName(name string) *RecipeBuilder {
	rb.r.Name = name
	return rb
}

// WithServings sets the number of servings
func (rb *RecipeBuilder) WithServings(servings int) *RecipeBuilder {
	rb.r.Servings = servings
	return rb
}

// WithTimings sets prep and cook time in minutes
func (rb *RecipeBuilder) WithTimings(prep, cook int) *RecipeBuilder {
	rb.r.PrepTimeMinutes = prep
	rb.r.CookTimeMinutes = cook
	return rb
}

// WithIngredients appends ingredients
func (rb *RecipeBuilder) WithIngredients(ingredients ...recipe.Ingredient) *RecipeBuilder {
	rb.r.Ingredients = append(rb.r.Ingredients, ingredients...)
	return rb
}

// Build returns a copy of the built recipe
func (rb *RecipeBuilder) Build() *recipe.Recipe {
	out := rb.r
	out.Ingredients = append([]recipe.Ingredient(nil), rb.r.Ingredients...)
	return &out
}
