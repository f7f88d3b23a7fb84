package serverutils

import (
	"errors"

	"ai-chatapp-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps errors returned by downstream handlers to the
// wire format. ApiError keeps its status and message; anything else is
// logged and becomes a generic 500, so handler bodies never leak internals.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var apiErr *ApiError
		if errors.As(err, &apiErr) {
			if len(apiErr.Errors) > 0 {
				return ctx.Status(apiErr.Status).JSON(fiber.Map{
					"message": apiErr.Message,
					"errors":  apiErr.Errors,
				})
			}
			return ctx.Status(apiErr.Status).JSON(fiber.Map{"error": apiErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		log.Error("HTTP", "Unhandled error", map[string]interface{}{
			"error":  err.Error(),
			"path":   ctx.Path(),
			"method": ctx.Method(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
