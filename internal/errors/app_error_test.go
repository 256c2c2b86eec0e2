package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAppError(t *testing.T) {

	t.Run("Success - wrapped app error is found", func(t *testing.T) {
		cause := errors.New("connection reset")
		wrapped := fmt.Errorf("saving cart: %w", StorageError("Failed to save cart").WithError(cause))

		appErr, ok := IsAppError(wrapped)

		require.True(t, ok)
		assert.Equal(t, ErrCodeStorageError, appErr.Code)
		assert.ErrorIs(t, wrapped, cause)
	})

	t.Run("Failure - plain error", func(t *testing.T) {
		appErr, ok := IsAppError(errors.New("boom"))

		assert.False(t, ok)
		assert.Nil(t, appErr)
	})
}

func TestFieldsError(t *testing.T) {
	appErr := FieldsError(map[string]string{
		"phone": "must look like (555) 123-4567",
		"email": "must be a valid email address",
	})

	assert.Equal(t, ErrCodeValidation, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	assert.Equal(t, "Invalid fields: email, phone", appErr.Message)
	assert.Len(t, appErr.Fields, 2)
}

func TestAddValidationError(t *testing.T) {
	appErr := AddValidationError("name", "is required")

	assert.Equal(t, "Invalid field 'name': is required", appErr.Error())
	assert.Equal(t, map[string]string{"name": "is required"}, appErr.Fields)
}

func TestRetryable(t *testing.T) {
	assert.True(t, SimulatedServiceError("Order placement").Retryable())
	assert.True(t, TooManyRequestsError("slow down").Retryable())
	assert.False(t, EmptyCartError().Retryable())
	assert.Equal(t, http.StatusServiceUnavailable, SimulatedServiceError("Sign in").StatusCode)
}
