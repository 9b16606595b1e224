package utils

import (
	"errors"

	apperrors "github.com/geocoding-gateway/internal/pkg/errors"
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse - тело ответа с ошибкой: {"code": ..., "detail": ...}
type ErrorResponse = apperrors.AppError

// SendSuccess отдает data как есть, без обертки
func SendSuccess(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func SendError(c *fiber.Ctx, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(appErr)
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(apperrors.Internal(err))
}
