package serverutils

import "github.com/gofiber/fiber/v2"

// FieldError is one validation failure in the registration-style error body.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ApiError is the error taxonomy surfaced by the HTTP layer. Handlers and
// services return it; the error-handler middleware maps it to a status and
// an {"error": ...} body ({message, errors} for validation failures).
type ApiError struct {
	Status  int
	Message string
	Errors  []FieldError
}

func (e *ApiError) Error() string {
	return e.Message
}

func ErrUnauthenticated() *ApiError {
	return &ApiError{Status: fiber.StatusUnauthorized, Message: "Unauthorized"}
}

func ErrForbidden(message string) *ApiError {
	return &ApiError{Status: fiber.StatusForbidden, Message: message}
}

func ErrNotFound(message string) *ApiError {
	return &ApiError{Status: fiber.StatusNotFound, Message: message}
}

func ErrInvalidInput(message string) *ApiError {
	return &ApiError{Status: fiber.StatusBadRequest, Message: message}
}

func ErrNoFieldsToUpdate() *ApiError {
	return &ApiError{Status: fiber.StatusBadRequest, Message: "No valid fields to update"}
}

func ErrTooManyRequests(message string) *ApiError {
	return &ApiError{Status: fiber.StatusTooManyRequests, Message: message}
}

func ErrValidation(fields []FieldError) *ApiError {
	return &ApiError{Status: fiber.StatusBadRequest, Message: "Invalid input", Errors: fields}
}

// ErrProvider covers upstream AI call failures. Surfaced as 500 with a
// generic message; the underlying cause stays in the logs.
func ErrProvider(message string) *ApiError {
	return &ApiError{Status: fiber.StatusInternalServerError, Message: message}
}
