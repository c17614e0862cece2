package middleware

import (
	"errors"
	"fmt"

	"educare/apperr"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Success writes a 200 response with "success": true merged into payload.
func Success(c *fiber.Ctx, payload fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// Error writes {"error": message} with the given status.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// Fail maps err to a response. Application errors carry their own status and
// message; anything else is a 500 with the error text appended to
// "Server error <operation>".
func Fail(c *fiber.Ctx, log *zap.Logger, operation string, err error) error {
	var ae *apperr.AppError
	if errors.As(err, &ae) {
		return Error(c, ae.Status, ae.Error())
	}
	log.Error("request failed",
		zap.String("operation", operation),
		zap.String("path", c.Path()),
		zap.Error(err))
	return Error(c, fiber.StatusInternalServerError, fmt.Sprintf("Server error %s: %v", operation, err))
}

// ErrorHandler renders errors that escape handlers (routing misses, body
// limit, recovered panics) in the same envelope.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return Error(c, fe.Code, fe.Message)
		}
		return Fail(c, log, "handling request", err)
	}
}
