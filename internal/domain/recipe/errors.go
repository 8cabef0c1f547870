package recipe

import "errors"

// Domain errors for recipe operations

var (
	// Input contract errors
	ErrUnknownCategory        = errors.New("unknown ingredient category")
	ErrInvalidServings        = errors.New("servings must be greater than 0")
	ErrInvalidQuantity        = errors.New("ingredient quantity must be greater than 0")
	ErrIngredientNameRequired = errors.New("ingredient english name is required")
	ErrNameRequired           = errors.New("recipe name is required")
	ErrNoIngredients          = errors.New("recipe must have at least one ingredient")
	ErrInvalidDifficulty      = errors.New("difficulty must be easy, medium or hard")
	ErrNegativeTime           = errors.New("prep and cook time cannot be negative")
)
