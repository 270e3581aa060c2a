package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetDailyQuote(c *fiber.Ctx) error {
	handler.ensureDependencies()
	quote, err := handler.quoteService.QuoteOfTheDay(handler.today())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(quote)
}
