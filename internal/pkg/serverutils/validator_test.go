package serverutils

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestValidateRequestPasses(t *testing.T) {
	err := ValidateRequest(registerPayload{
		Name:     "Taro",
		Email:    "taro@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
}

func TestValidateRequestCollectsFieldErrors(t *testing.T) {
	err := ValidateRequest(registerPayload{
		Name:     "T",
		Email:    "not-an-email",
		Password: "short",
	})
	require.Error(t, err)

	var apiErr *ApiError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, fiber.StatusBadRequest, apiErr.Status)
	require.Len(t, apiErr.Errors, 3)

	paths := make(map[string]string)
	for _, fe := range apiErr.Errors {
		paths[fe.Path] = fe.Message
	}
	assert.Contains(t, paths["name"], "at least 2")
	assert.Equal(t, "must be a valid email address", paths["email"])
	assert.Contains(t, paths["password"], "at least 6")
}

func TestValidateRequestRequiredMessage(t *testing.T) {
	err := ValidateRequest(registerPayload{})
	require.Error(t, err)

	var apiErr *ApiError
	require.True(t, errors.As(err, &apiErr))
	require.Len(t, apiErr.Errors, 3)
	assert.Equal(t, "name is required", apiErr.Errors[0].Message)
}
