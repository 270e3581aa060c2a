package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetAchievements(c *fiber.Ctx) error {
	handler.ensureDependencies()
	achievements, err := handler.achievementService.List()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"achievements": achievements})
}

func (handler *Handler) CheckAchievements(c *fiber.Ctx) error {
	handler.ensureDependencies()
	unlocked, err := handler.achievementService.CheckAndUnlock(handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"unlockedAchievements": unlocked})
}
