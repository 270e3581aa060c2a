package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/habitmate/habitmate/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError maps the services' sentinel errors onto HTTP statuses.
// Anything unrecognized is treated as an internal failure without
// leaking the underlying error text.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case isValidationError(err):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return apiError(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrUserExists):
		return apiError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrHabitNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}

func isValidationError(err error) bool {
	validationErrors := []error{
		services.ErrNameRequired,
		services.ErrEmailRequired,
		services.ErrInvalidEmail,
		services.ErrPasswordRequired,
		services.ErrPasswordTooShort,
		services.ErrPasswordMismatch,
		services.ErrHabitNameEmpty,
		services.ErrInvalidFrequency,
		services.ErrInvalidCategory,
		services.ErrInvalidMood,
		services.ErrInvalidAmount,
		services.ErrInvalidGoal,
		services.ErrInvalidInterval,
		services.ErrInvalidQuietHours,
	}
	for _, candidate := range validationErrors {
		if errors.Is(err, candidate) {
			return true
		}
	}
	return false
}
