package handlers

import (
	"errors"

	"nyaay-saathi/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// statusAndMessage maps a service error to its HTTP status and the message
// shown to the client. Untagged errors are reported as internal failures with
// the given fallback message.
func statusAndMessage(err error, fallback string) (int, string) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		return fiber.StatusInternalServerError, fallback
	}

	switch svcErr.Kind {
	case service.KindValidation, service.KindConflict:
		return fiber.StatusBadRequest, svcErr.Message
	case service.KindNotFound:
		return fiber.StatusNotFound, svcErr.Message
	case service.KindUnauthorized:
		return fiber.StatusUnauthorized, svcErr.Message
	case service.KindExternalService:
		return fiber.StatusInternalServerError, svcErr.Error()
	default:
		return fiber.StatusInternalServerError, fallback
	}
}

func logFailure(logger *zap.Logger, status int, msg string, err error) {
	if status >= fiber.StatusInternalServerError {
		logger.Error(msg, zap.Error(err))
		return
	}
	logger.Debug(msg, zap.Error(err))
}

// respondError writes {"error": ...}.
func respondError(c *fiber.Ctx, logger *zap.Logger, err error, fallback string) error {
	status, msg := statusAndMessage(err, fallback)
	logFailure(logger, status, fallback, err)
	return c.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}

// respondFailure writes {"success": false, "message": ...}.
func respondFailure(c *fiber.Ctx, logger *zap.Logger, err error, fallback string) error {
	status, msg := statusAndMessage(err, fallback)
	logFailure(logger, status, fallback, err)
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": msg,
	})
}

func badRequest(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Invalid request body",
	})
}
