package serverutils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"ai-chatapp-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	log := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "test.log"))

	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(log))
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestErrorHandlerMapsApiError(t *testing.T) {
	app := newTestApp(t)
	app.Get("/missing", func(c *fiber.Ctx) error {
		return ErrNotFound("Session not found")
	})

	status, body := doRequest(t, app, "GET", "/missing")

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Session not found", body["error"])
}

func TestErrorHandlerValidationBody(t *testing.T) {
	app := newTestApp(t)
	app.Get("/invalid", func(c *fiber.Ctx) error {
		return ErrValidation([]FieldError{
			{Path: "name", Message: "name is required"},
			{Path: "email", Message: "must be a valid email address"},
		})
	})

	status, body := doRequest(t, app, "GET", "/invalid")

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid input", body["message"])

	errs, ok := body["errors"].([]interface{})
	require.True(t, ok)
	require.Len(t, errs, 2)
	first := errs[0].(map[string]interface{})
	assert.Equal(t, "name", first["path"])
	assert.Equal(t, "name is required", first["message"])
}

func TestErrorHandlerHidesUnexpectedErrors(t *testing.T) {
	app := newTestApp(t)
	app.Get("/boom", func(c *fiber.Ctx) error {
		return assert.AnError
	})

	status, body := doRequest(t, app, "GET", "/boom")

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", body["error"])
}

func TestErrorHandlerPassesSuccessThrough(t *testing.T) {
	app := newTestApp(t)
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	status, body := doRequest(t, app, "GET", "/ok")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["ok"])
}
