package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_StatusCode(t *testing.T) {
	cases := map[ErrorCode]int{
		CodeValidationFailed:     http.StatusBadRequest,
		CodeUnknownCategory:      http.StatusBadRequest,
		CodeInvalidServings:      http.StatusBadRequest,
		CodeTooManyRequests:      http.StatusTooManyRequests,
		CodeQuotaExceeded:        http.StatusTooManyRequests,
		CodeServiceUnavailable:   http.StatusServiceUnavailable,
		CodeExternalServiceError: http.StatusBadGateway,
		CodeInternal:             http.StatusInternalServerError,
	}

	for code, status := range cases {
		t.Run(string(code), func(t *testing.T) {
			assert.Equal(t, status, NewAppError(code, "msg", "").StatusCode())
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("AppError_PassesThrough", func(t *testing.T) {
		original := NewQuotaExceededError("email", 5)
		wrapped := fmt.Errorf("send: %w", original)

		assert.Same(t, original, Wrap(wrapped, "ignored"))
		assert.True(t, Is(wrapped, CodeQuotaExceeded))
		assert.Equal(t, CodeQuotaExceeded, GetCode(wrapped))
	})

	t.Run("PlainError_IsInternal", func(t *testing.T) {
		appErr := Wrap(stderrors.New("boom"), "")

		assert.Equal(t, CodeInternal, appErr.Code)
		assert.Equal(t, "An unexpected error occurred", appErr.Message)
		assert.Nil(t, Wrap(nil, "x"))
	})
}

func TestFromValidator(t *testing.T) {
	type payload struct {
		Email    string `validate:"required,email"`
		Servings int    `validate:"gt=0"`
	}

	err := validator.New().Struct(payload{Email: "not-an-email", Servings: 0})
	appErr := FromValidator(err)

	require.NotNil(t, appErr)
	assert.Equal(t, CodeValidationFailed, appErr.Code)

	fields, ok := appErr.Metadata["validation_errors"].(ValidationErrors)
	require.True(t, ok)
	require.Len(t, fields, 2)
	assert.Equal(t, "email", fields[0].Tag)
	assert.Equal(t, "payload.Email must be a valid email address", fields[0].Message)
	assert.Equal(t, "payload.Servings must be greater than 0", fields[1].Message)
}

func TestToErrorResponse(t *testing.T) {
	appErr := NewValidationError("servings must be greater than 0").WithMetadata("field", "servings")

	resp := ToErrorResponse(appErr, "req-1")

	assert.Equal(t, CodeValidationFailed, resp.Error.Code)
	assert.Equal(t, "req-1", resp.Error.RequestID)
	assert.Equal(t, "servings", resp.Error.Metadata["field"])
	assert.NotEmpty(t, resp.Error.Timestamp)
}
