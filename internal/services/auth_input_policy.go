package services

import (
	"errors"
	"net/mail"
	"strings"
)

const minPasswordLength = 6

var (
	ErrNameRequired     = errors.New("name is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password too short")
	ErrPasswordMismatch = errors.New("password mismatch")
)

type RegistrationInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// NormalizeRegistration trims the fields and lowercases the email
// before validation.
func NormalizeRegistration(input RegistrationInput) RegistrationInput {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Password = strings.TrimSpace(input.Password)
	input.ConfirmPassword = strings.TrimSpace(input.ConfirmPassword)
	return input
}

func ValidateRegistration(input RegistrationInput) error {
	if input.Name == "" {
		return ErrNameRequired
	}
	if input.Email == "" {
		return ErrEmailRequired
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return ErrInvalidEmail
	}
	if input.Password == "" {
		return ErrPasswordRequired
	}
	if len(input.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if input.Password != input.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

func ValidateLogin(email string, password string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	if strings.TrimSpace(password) == "" {
		return ErrPasswordRequired
	}
	return nil
}
