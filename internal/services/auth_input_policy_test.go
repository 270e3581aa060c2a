package services

import (
	"errors"
	"testing"
)

func TestValidateRegistration(t *testing.T) {
	t.Parallel()

	valid := RegistrationInput{
		Name:            "Ada",
		Email:           "ada@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}

	tests := []struct {
		name    string
		mutate  func(input *RegistrationInput)
		wantErr error
	}{
		{name: "valid input", mutate: func(*RegistrationInput) {}},
		{name: "missing name", mutate: func(input *RegistrationInput) { input.Name = "" }, wantErr: ErrNameRequired},
		{name: "missing email", mutate: func(input *RegistrationInput) { input.Email = "" }, wantErr: ErrEmailRequired},
		{name: "malformed email", mutate: func(input *RegistrationInput) { input.Email = "not-an-email" }, wantErr: ErrInvalidEmail},
		{name: "missing password", mutate: func(input *RegistrationInput) { input.Password = ""; input.ConfirmPassword = "" }, wantErr: ErrPasswordRequired},
		{name: "short password", mutate: func(input *RegistrationInput) { input.Password = "abc"; input.ConfirmPassword = "abc" }, wantErr: ErrPasswordTooShort},
		{name: "mismatched confirmation", mutate: func(input *RegistrationInput) { input.ConfirmPassword = "other1" }, wantErr: ErrPasswordMismatch},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			input := valid
			testCase.mutate(&input)
			err := ValidateRegistration(NormalizeRegistration(input))
			if !errors.Is(err, testCase.wantErr) {
				t.Fatalf("expected %v, got %v", testCase.wantErr, err)
			}
		})
	}
}

func TestNormalizeRegistrationLowercasesEmail(t *testing.T) {
	t.Parallel()

	normalized := NormalizeRegistration(RegistrationInput{Email: "  Ada@Example.COM "})
	if normalized.Email != "ada@example.com" {
		t.Fatalf("expected normalized email, got %q", normalized.Email)
	}
}

func TestValidateLogin(t *testing.T) {
	t.Parallel()

	if err := ValidateLogin("", "secret1"); !errors.Is(err, ErrEmailRequired) {
		t.Fatalf("expected ErrEmailRequired, got %v", err)
	}
	if err := ValidateLogin("ada@example.com", " "); !errors.Is(err, ErrPasswordRequired) {
		t.Fatalf("expected ErrPasswordRequired, got %v", err)
	}
	if err := ValidateLogin("ada@example.com", "secret1"); err != nil {
		t.Fatalf("expected valid login input, got %v", err)
	}
}
