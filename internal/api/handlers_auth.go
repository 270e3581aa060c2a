package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/habitmate/habitmate/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if !parseBody(c, &input) {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	user, err := handler.authService.Register(services.RegistrationInput{
		Name:            input.Name,
		Email:           input.Email,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	}, handler.now())
	if err != nil {
		return serviceError(c, err)
	}

	if err := handler.setAuthCookie(c, &user, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	user.PasswordHash = ""
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input loginInput
	if !parseBody(c, &input) {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	user, err := handler.authService.Login(input.Email, input.Password)
	if err != nil {
		return serviceError(c, err)
	}

	if err := handler.setAuthCookie(c, &user, input.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	user.PasswordHash = ""
	return c.JSON(user)
}

// Logout ends the session only. The account slot stays so the stored
// credentials can authenticate the next login.
func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	view := *user
	view.PasswordHash = ""
	return c.JSON(view)
}
