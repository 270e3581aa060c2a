package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/habitmate/habitmate/internal/services"
)

func (handler *Handler) GetHabits(c *fiber.Ctx) error {
	handler.ensureDependencies()
	habits, err := handler.repositories.Habits.LoadHabits()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"habits": habits})
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	var input habitInput
	if !parseBody(c, &input) {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	habit, err := handler.habitService.Create(services.HabitInput{
		Name:        input.Name,
		Description: input.Description,
		Frequency:   input.Frequency,
		Category:    input.Category,
	}, handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(habit)
}

func (handler *Handler) UpdateHabit(c *fiber.Ctx) error {
	var input habitInput
	if !parseBody(c, &input) {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	habit, err := handler.habitService.Update(c.Params("id"), services.HabitInput{
		Name:        input.Name,
		Description: input.Description,
		Frequency:   input.Frequency,
		Category:    input.Category,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(habit)
}

func (handler *Handler) SetHabitActive(c *fiber.Ctx) error {
	var input habitActiveInput
	if !parseBody(c, &input) {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	habit, err := handler.habitService.SetActive(c.Params("id"), input.Active)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(habit)
}

func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	handler.ensureDependencies()
	if err := handler.habitService.Delete(c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// CompleteHabit records the completion and immediately re-evaluates
// achievements so the response can surface any fresh unlocks.
func (handler *Handler) CompleteHabit(c *fiber.Ctx) error {
	var input entryDateInput
	if len(c.Body()) > 0 && !parseBody(c, &input) {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	date, ok := handler.resolveDate(input.Date)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	handler.ensureDependencies()
	entry, err := handler.habitService.Complete(c.Params("id"), date, handler.now())
	if err != nil {
		return serviceError(c, err)
	}

	unlocked, err := handler.achievementService.CheckAndUnlock(handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"entry": entry, "unlockedAchievements": unlocked})
}

func (handler *Handler) UncompleteHabit(c *fiber.Ctx) error {
	var input entryDateInput
	if len(c.Body()) > 0 && !parseBody(c, &input) {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	date, ok := handler.resolveDate(input.Date)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	handler.ensureDependencies()
	entry, err := handler.habitService.Uncomplete(c.Params("id"), date)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"entry": entry})
}

func (handler *Handler) GetHabitEntries(c *fiber.Ctx) error {
	handler.ensureDependencies()

	if habitID := c.Query("habitId"); habitID != "" {
		entries, err := handler.repositories.Habits.EntriesForHabit(habitID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"entries": entries})
	}

	if raw := c.Query("date"); raw != "" {
		date, ok := handler.resolveDate(raw)
		if !ok {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		entries, err := handler.repositories.Habits.EntriesForDate(date)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"entries": entries})
	}

	entries, err := handler.repositories.Habits.LoadEntries()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"entries": entries})
}
