package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/habitmate/habitmate/internal/models"
	"github.com/habitmate/habitmate/internal/services"
)

func (handler *Handler) GetMoodEntries(c *fiber.Ctx) error {
	handler.ensureDependencies()
	entries, err := handler.moodService.Entries()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"entries": entries})
}

func (handler *Handler) LogMood(c *fiber.Ctx) error {
	var input moodInput
	if !parseBody(c, &input) {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	date, ok := handler.resolveDate(input.Date)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	handler.ensureDependencies()
	entry, err := handler.moodService.Log(input.Mood, input.Note, date, handler.now())
	if err != nil {
		return serviceError(c, err)
	}

	unlocked, err := handler.achievementService.CheckAndUnlock(handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"entry": entry, "unlockedAchievements": unlocked})
}

func (handler *Handler) GetMoodWeek(c *fiber.Ctx) error {
	handler.ensureDependencies()
	entries, err := handler.moodService.Entries()
	if err != nil {
		return serviceError(c, err)
	}

	today := handler.today()
	weekAgo := services.DateDaysAgo(7, today, handler.location)
	week := make([]models.MoodEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Date >= weekAgo {
			week = append(week, entry)
		}
	}

	return c.JSON(fiber.Map{
		"entries":          week,
		"averageIntensity": services.WeeklyMoodAverage(entries, today, handler.location),
		"mostFrequentMood": services.MostFrequentMood(week),
		"distribution":     services.MoodDistribution(week),
	})
}

func (handler *Handler) GetMoodForDate(c *fiber.Ctx) error {
	date, ok := handler.resolveDate(c.Params("date"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	handler.ensureDependencies()
	entry, err := handler.moodService.EntryForDate(date)
	if err != nil {
		return serviceError(c, err)
	}
	if entry == nil {
		return apiError(c, fiber.StatusNotFound, "no mood logged for date")
	}
	return c.JSON(entry)
}
