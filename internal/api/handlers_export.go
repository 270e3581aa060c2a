package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/habitmate/habitmate/internal/services"
)

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	handler.ensureDependencies()

	user, _ := currentUser(c)
	habits, err := handler.repositories.Habits.LoadHabits()
	if err != nil {
		return serviceError(c, err)
	}
	moods, err := handler.repositories.Moods.LoadEntries()
	if err != nil {
		return serviceError(c, err)
	}
	hydration, err := handler.repositories.Hydration.Load()
	if err != nil {
		return serviceError(c, err)
	}

	summary := services.BuildExportSummary(user, habits, moods, hydration, handler.now())
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="habitmate-export.txt"`)
	return c.SendString(summary)
}
