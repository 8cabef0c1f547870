// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/alchemorsel/personal-chef/internal/domain/nutrition"
	"github.com/alchemorsel/personal-chef/internal/domain/recipe"
)

// ChefService defines the tool-call use cases behind the recipe card.
// This is the primary port that HTTP handlers use.
type ChefService interface {
	// PresentRecipe enriches a generated recipe with nutrition and
	// returns it in the shape the recipe card renders.
	PresentRecipe(ctx context.Context, cmd PresentRecipeCommand) (*ToolResult, error)

	// ScaleRecipe rescales ingredients for the card's servings control
	// and unit-system toggle.
	ScaleRecipe(ctx context.Context, cmd ScaleRecipeCommand) (*ScaledRecipe, error)

	// GenerateShoppingList groups ingredients by store section.
	GenerateShoppingList(ctx context.Context, cmd ShoppingListCommand) (*ToolResult, error)

	// SendShoppingList emails a shopping list.
	SendShoppingList(ctx context.Context, cmd SendShoppingListCommand) (*ToolResult, error)
}

// Command objects for operations

// IngredientInput is an ingredient as produced by the recipe generator
type IngredientInput struct {
	EnglishName string          `json:"englishName" validate:"required"`
	DisplayName string          `json:"displayName"`
	Quantity    float64         `json:"quantity" validate:"gt=0"`
	Unit        string          `json:"unit"`
	Category    recipe.Category `json:"category" validate:"required,category"`
	Notes       string          `json:"notes,omitempty"`
}

// PresentRecipeCommand contains a generated recipe
type PresentRecipeCommand struct {
	Name            string                `json:"name" validate:"required"`
	Description     string                `json:"description"`
	Cuisine         string                `json:"cuisine"`
	Servings        int                   `json:"servings" validate:"gt=0"`
	PrepTimeMinutes int                   `json:"prep_time_minutes" validate:"gte=0"`
	CookTimeMinutes int                   `json:"cook_time_minutes" validate:"gte=0"`
	Difficulty      recipe.Difficulty     `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Ingredients     []IngredientInput     `json:"ingredients" validate:"required,min=1,dive"`
	Instructions    []recipe.Instruction  `json:"instructions"`
	Tags            []string              `json:"tags"`
	DietaryInfo     []string              `json:"dietary_info"`
	ChefTips        []string              `json:"chef_tips,omitempty"`
	Substitutions   []recipe.Substitution `json:"substitutions,omitempty"`
}

// ScaleRecipeCommand asks for ingredients at a different serving count,
// optionally displayed in another unit system.
type ScaleRecipeCommand struct {
	OriginalServings int                       `json:"original_servings" validate:"gt=0"`
	DesiredServings  int                       `json:"desired_servings" validate:"gt=0"`
	UnitSystem       string                    `json:"unit_system"`
	Ingredients      []recipe.Ingredient       `json:"ingredients" validate:"required,min=1,dive"`
	Breakdown        []nutrition.BreakdownItem `json:"nutrition_breakdown,omitempty"`
}

// ShoppingIngredientInput is an ingredient sent from the recipe card
type ShoppingIngredientInput struct {
	ID          string          `json:"id" validate:"required"`
	EnglishName string          `json:"englishName"`
	DisplayName string          `json:"displayName"`
	Quantity    float64         `json:"quantity" validate:"gt=0"`
	Unit        string          `json:"unit"`
	Category    recipe.Category `json:"category" validate:"required"`
}

// ShoppingListCommand contains the data to build a shopping list
type ShoppingListCommand struct {
	RecipeName       string                    `json:"recipe_name" validate:"required"`
	OriginalServings int                       `json:"original_servings" validate:"gt=0"`
	DesiredServings  int                       `json:"desired_servings" validate:"gt=0"`
	Ingredients      []ShoppingIngredientInput `json:"ingredients" validate:"dive"`
}

// EmailItem is a rendered shopping list line
type EmailItem struct {
	Display string `json:"display" validate:"required"`
	Checked bool   `json:"checked"`
}

// EmailSection is a shopping list section as shown on the card
type EmailSection struct {
	Name  string      `json:"name" validate:"required"`
	Emoji string      `json:"emoji"`
	Items []EmailItem `json:"items" validate:"dive"`
}

// SendShoppingListCommand contains the list to email
type SendShoppingListCommand struct {
	Email      string         `json:"email" validate:"required,email"`
	RecipeName string         `json:"recipe_name" validate:"required"`
	Servings   int            `json:"servings" validate:"gt=0"`
	Sections   []EmailSection `json:"sections" validate:"dive"`
}
