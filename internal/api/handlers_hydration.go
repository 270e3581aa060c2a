package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetHydration(c *fiber.Ctx) error {
	handler.ensureDependencies()
	data, err := handler.hydrationService.Current()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(data)
}

func (handler *Handler) AddGlass(c *fiber.Ctx) error {
	handler.ensureDependencies()
	data, err := handler.hydrationService.AddGlass(handler.now())
	if err != nil {
		return serviceError(c, err)
	}

	unlocked, err := handler.achievementService.CheckAndUnlock(handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"hydration": data, "unlockedAchievements": unlocked})
}

func (handler *Handler) AddIntake(c *fiber.Ctx) error {
	var input intakeInput
	if !parseBody(c, &input) {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	data, err := handler.hydrationService.AddIntake(input.AmountMl, handler.now())
	if err != nil {
		return serviceError(c, err)
	}

	unlocked, err := handler.achievementService.CheckAndUnlock(handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"hydration": data, "unlockedAchievements": unlocked})
}

func (handler *Handler) SetHydrationGoal(c *fiber.Ctx) error {
	var input goalInput
	if !parseBody(c, &input) {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	data, err := handler.hydrationService.SetGoal(input.Goal)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(data)
}

func (handler *Handler) SetHydrationInterval(c *fiber.Ctx) error {
	var input intervalInput
	if !parseBody(c, &input) {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	data, err := handler.hydrationService.SetReminderInterval(input.Minutes)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(data)
}

func (handler *Handler) SetCustomIntake(c *fiber.Ctx) error {
	var input intakeInput
	if !parseBody(c, &input) {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	data, err := handler.hydrationService.SetCustomIntake(input.AmountMl)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(data)
}

func (handler *Handler) ResetHydration(c *fiber.Ctx) error {
	handler.ensureDependencies()
	data, err := handler.hydrationService.ResetDaily()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(data)
}
