package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/habitmate/habitmate/internal/models"
)

func (handler *Handler) GetNotificationSettings(c *fiber.Ctx) error {
	handler.ensureDependencies()
	settings, err := handler.settingsService.NotificationSettings()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(settings)
}

func (handler *Handler) UpdateNotificationSettings(c *fiber.Ctx) error {
	var settings models.NotificationSettings
	if !parseBody(c, &settings) {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	if err := handler.settingsService.UpdateNotificationSettings(settings); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(settings)
}

func (handler *Handler) GetPreferences(c *fiber.Ctx) error {
	handler.ensureDependencies()
	preferences, err := handler.settingsService.Preferences()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(preferences)
}

func (handler *Handler) UpdatePreferences(c *fiber.Ctx) error {
	var preferences models.UserPreferences
	if !parseBody(c, &preferences) {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	if err := handler.settingsService.UpdatePreferences(preferences); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(preferences)
}

// ResetAllData wipes every stored slot and ends the session, since the
// account itself is part of the wiped data.
func (handler *Handler) ResetAllData(c *fiber.Ctx) error {
	handler.ensureDependencies()
	if err := handler.settingsService.ResetAllData(); err != nil {
		return serviceError(c, err)
	}
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
