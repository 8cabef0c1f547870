// Package recipe contains the recipe data model shared by the scaling,
// nutrition and shopping-list logic.
package recipe

import (
	"fmt"
	"strings"
)

// Recipe is a generated recipe as handed to the recipe card.
type Recipe struct {
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Cuisine         string         `json:"cuisine"`
	Servings        int            `json:"servings"`
	PrepTimeMinutes int            `json:"prep_time_minutes"`
	CookTimeMinutes int            `json:"cook_time_minutes"`
	Difficulty      Difficulty     `json:"difficulty"`
	Ingredients     []Ingredient   `json:"ingredients"`
	Instructions    []Instruction  `json:"instructions"`
	Tags            []string       `json:"tags"`
	DietaryInfo     []string       `json:"dietary_info"`
	ChefTips        []string       `json:"chef_tips,omitempty"`
	Substitutions   []Substitution `json:"substitutions,omitempty"`
}

// Validate checks the recipe and each of its ingredients
func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}
	if r.Servings <= 0 {
		return ErrInvalidServings
	}
	if r.PrepTimeMinutes < 0 || r.CookTimeMinutes < 0 {
		return ErrNegativeTime
	}
	if !r.Difficulty.Valid() {
		return ErrInvalidDifficulty
	}
	if len(r.Ingredients) == 0 {
		return ErrNoIngredients
	}
	for idx, ing := range r.Ingredients {
		if err := ing.Validate(); err != nil {
			return fmt.Errorf("ingredient %d: %w", idx, err)
		}
	}
	return nil
}

// TotalTimeMinutes returns prep plus cook time
func (r *Recipe) TotalTimeMinutes() int {
	return r.PrepTimeMinutes + r.CookTimeMinutes
}

// AssignIngredientIDs gives every ingredient its positional identifier
func (r *Recipe) AssignIngredientIDs() {
	for idx := range r.Ingredients {
		r.Ingredients[idx].ID = IngredientID(idx, r.Ingredients[idx].EnglishName)
	}
}

