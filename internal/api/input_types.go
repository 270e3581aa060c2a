package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/habitmate/habitmate/internal/services"
)

type registerInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

type habitInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Frequency   string `json:"frequency"`
	Category    string `json:"category"`
}

type habitActiveInput struct {
	Active bool `json:"active"`
}

type moodInput struct {
	Mood string `json:"mood"`
	Note string `json:"note"`
	Date string `json:"date"`
}

type intakeInput struct {
	AmountMl int `json:"amountMl"`
}

type goalInput struct {
	Goal int `json:"goal"`
}

type intervalInput struct {
	Minutes int `json:"minutes"`
}

type entryDateInput struct {
	Date string `json:"date"`
}

// resolveDate validates an optional YYYY-MM-DD value, substituting
// today when it is empty.
func (handler *Handler) resolveDate(raw string) (string, bool) {
	date := strings.TrimSpace(raw)
	if date == "" {
		return handler.today(), true
	}
	if _, err := services.ParseDate(date, handler.location); err != nil {
		return "", false
	}
	return date, true
}

func parseBody(c *fiber.Ctx, target interface{}) bool {
	return c.BodyParser(target) == nil
}
