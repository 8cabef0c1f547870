package inbound

import (
	"github.com/alchemorsel/personal-chef/internal/domain/nutrition"
	"github.com/alchemorsel/personal-chef/internal/domain/recipe"
	"github.com/alchemorsel/personal-chef/internal/domain/units"
)

// Data Transfer Objects

// ContentBlock is a text block of a tool result
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolResult is the envelope every tool call returns. StructuredContent is
// what the chat model sees, Meta is only handed to the card.
type ToolResult struct {
	Content           []ContentBlock `json:"content"`
	StructuredContent any            `json:"structuredContent,omitempty"`
	Meta              any            `json:"_meta,omitempty"`
	IsError           bool           `json:"isError"`
}

// TextResult creates a successful result with a single text block
func TextResult(text string, structured any) *ToolResult {
	return &ToolResult{
		Content:           []ContentBlock{{Type: "text", Text: text}},
		StructuredContent: structured,
	}
}

// ErrorResult creates a failed result with a single text block
func ErrorResult(text string) *ToolResult {
	return &ToolResult{
		Content: []ContentBlock{{Type: "text", Text: text}},
		IsError: true,
	}
}

// Text returns the concatenated text content
func (r *ToolResult) Text() string {
	var out string
	for _, c := range r.Content {
		out += c.Text
	}
	return out
}

// RecipeSummary is the recipe overview given to the chat model
type RecipeSummary struct {
	Name                string                 `json:"name"`
	Description         string                 `json:"description"`
	Cuisine             string                 `json:"cuisine"`
	TotalTimeMinutes    int                    `json:"total_time_minutes"`
	TotalTime           string                 `json:"total_time"`
	Servings            int                    `json:"servings"`
	Difficulty          recipe.Difficulty      `json:"difficulty"`
	NutritionPerServing recipe.NutritionRecord `json:"nutrition_per_serving"`
	IngredientCount     int                    `json:"ingredient_count"`
	Tags                []string               `json:"tags"`
	DietaryInfo         []string               `json:"dietary_info"`
}

// RecipeMeta is the full payload handed to the recipe card
type RecipeMeta struct {
	Recipe              *recipe.Recipe            `json:"recipe"`
	NutritionTotal      recipe.NutritionRecord    `json:"nutrition_total"`
	NutritionPerServing recipe.NutritionRecord    `json:"nutrition_per_serving"`
	NutritionBreakdown  []nutrition.BreakdownItem `json:"nutrition_breakdown"`
	DailyValues         nutrition.DailyValue      `json:"daily_values"`
}

// ScaledIngredient is an ingredient ready for display at a serving count
type ScaledIngredient struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity float64         `json:"quantity"`
	Unit     string          `json:"unit"`
	Display  string          `json:"display"`
	Category recipe.Category `json:"category"`
	Notes    string          `json:"notes,omitempty"`
}

// ScaledRecipe is the result of rescaling a recipe
type ScaledRecipe struct {
	Servings            int                       `json:"servings"`
	ScaleFactor         float64                   `json:"scale_factor"`
	UnitSystem          units.System              `json:"unit_system"`
	Ingredients         []ScaledIngredient        `json:"ingredients"`
	NutritionPerServing recipe.NutritionRecord    `json:"nutrition_per_serving"`
	NutritionBreakdown  []nutrition.BreakdownItem `json:"nutrition_breakdown,omitempty"`
}

// EmailReceipt is the structured result of a sent shopping list
type EmailReceipt struct {
	Success bool   `json:"success"`
	Email   string `json:"email"`
}
