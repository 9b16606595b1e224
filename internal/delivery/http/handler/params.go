package handler

import (
	"fmt"
	"strconv"

	apperrors "github.com/geocoding-gateway/internal/pkg/errors"
	"github.com/geocoding-gateway/internal/pkg/validator"
	"github.com/gofiber/fiber/v2"
)

// queryInt читает опциональный целочисленный query параметр
func queryInt(c *fiber.Ctx, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.ErrInvalidRequest.WithMessage(fmt.Sprintf("%s must be an integer", key))
	}
	return &v, nil
}

// queryFloat читает опциональный query параметр с плавающей точкой
func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperrors.ErrInvalidRequest.WithMessage(fmt.Sprintf("%s must be a number", key))
	}
	return &v, nil
}

func queryString(c *fiber.Ctx, key string) *string {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	return &raw
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.ErrInvalidRequest.WithMessage("Invalid request body")
	}
	return nil
}

func validate(req interface{}) error {
	if err := validator.Validate(req); err != nil {
		return apperrors.ErrInvalidRequest.WithMessage(validator.Describe(err))
	}
	return nil
}
