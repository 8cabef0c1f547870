package recipe

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/alchemorsel/personal-chef/internal/domain/recipe"
	"github.com/alchemorsel/personal-chef/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError(t *testing.T) {
	t.Run("UnknownCategory", func(t *testing.T) {
		err := fmt.Errorf("ingredient ing-0-soap: %w", recipe.ErrUnknownCategory)

		appErr := domainError(err)

		require.NotNil(t, appErr)
		assert.Equal(t, errors.CodeUnknownCategory, appErr.Code)
		assert.True(t, stderrors.Is(appErr, recipe.ErrUnknownCategory))
		assert.Contains(t, appErr.Details, "ing-0-soap")
	})

	t.Run("InvalidServings", func(t *testing.T) {
		assert.Equal(t, errors.CodeInvalidServings, domainError(recipe.ErrInvalidServings).Code)
	})

	t.Run("OtherDomainValidation", func(t *testing.T) {
		assert.Equal(t, errors.CodeValidationFailed, domainError(recipe.ErrNoIngredients).Code)
	})

	t.Run("AlreadyAppError_PassesThrough", func(t *testing.T) {
		original := errors.NewQuotaExceededError("email", 5)
		wrapped := fmt.Errorf("send: %w", original)

		assert.Same(t, original, domainError(wrapped))
	})

	t.Run("Unknown_IsInternal", func(t *testing.T) {
		assert.Equal(t, errors.CodeInternal, domainError(stderrors.New("boom")).Code)
		assert.Nil(t, domainError(nil))
	})
}
