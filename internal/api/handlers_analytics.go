package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/habitmate/habitmate/internal/services"
)

func (handler *Handler) GetAnalyticsOverview(c *fiber.Ctx) error {
	handler.ensureDependencies()

	habits, err := handler.repositories.Habits.LoadHabits()
	if err != nil {
		return serviceError(c, err)
	}
	entries, err := handler.repositories.Habits.LoadEntries()
	if err != nil {
		return serviceError(c, err)
	}
	moods, err := handler.repositories.Moods.LoadEntries()
	if err != nil {
		return serviceError(c, err)
	}

	analytics := services.BuildAnalytics(habits, entries, moods, handler.today(), handler.location)
	return c.JSON(analytics)
}

func (handler *Handler) GetWidget(c *fiber.Ctx) error {
	handler.ensureDependencies()

	habits, err := handler.repositories.Habits.LoadHabits()
	if err != nil {
		return serviceError(c, err)
	}
	entries, err := handler.repositories.Habits.LoadEntries()
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

	widget := services.BuildWidgetData(habits, entries, moods, hydration, handler.today(), handler.now())
	return c.JSON(widget)
}
