package recipe

import (
	stderrors "errors"

	"github.com/alchemorsel/personal-chef/internal/domain/recipe"
	"github.com/alchemorsel/personal-chef/pkg/errors"
)

// domainError maps recipe domain errors onto application errors and wraps
// anything else as an internal error.
func domainError(err error) *errors.AppError {
	if err == nil {
		return nil
	}

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stderrors.Is(err, recipe.ErrUnknownCategory):
		return errors.NewAppError(errors.CodeUnknownCategory, "Unknown ingredient category", err.Error()).WithCause(err)
	case stderrors.Is(err, recipe.ErrInvalidServings):
		return errors.NewAppError(errors.CodeInvalidServings, "Invalid servings", err.Error()).WithCause(err)
	case stderrors.Is(err, recipe.ErrInvalidQuantity),
		stderrors.Is(err, recipe.ErrIngredientNameRequired),
		stderrors.Is(err, recipe.ErrNameRequired),
		stderrors.Is(err, recipe.ErrNoIngredients),
		stderrors.Is(err, recipe.ErrInvalidDifficulty),
		stderrors.Is(err, recipe.ErrNegativeTime):
		return errors.NewValidationError(err.Error()).WithCause(err)
	}

	return errors.NewInternalError("").WithCause(err)
}
