package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/habitmate/habitmate/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("an account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthUserRepository interface {
	Load() (*models.User, error)
	Save(user models.User) error
}

// AuthService manages the single local account. The stored user
// outlives sessions; only reset-all-data removes it.
type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func (service *AuthService) Register(input RegistrationInput, now time.Time) (models.User, error) {
	input = NormalizeRegistration(input)
	if err := ValidateRegistration(input); err != nil {
		return models.User{}, err
	}

	existing, err := service.users.Load()
	if err != nil {
		return models.User{}, err
	}
	if existing != nil {
		return models.User{}, ErrUserExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(passwordHash),
		CreatedAt:    now,
	}
	if err := service.users.Save(user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) Login(email string, password string) (models.User, error) {
	if err := ValidateLogin(email, password); err != nil {
		return models.User{}, err
	}

	user, err := service.users.Load()
	if err != nil {
		return models.User{}, err
	}
	if user == nil {
		return models.User{}, ErrInvalidCredentials
	}
	if normalizeEmail(email) != user.Email {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return *user, nil
}

func (service *AuthService) CurrentUser() (*models.User, error) {
	return service.users.Load()
}

func normalizeEmail(email string) string {
	return NormalizeRegistration(RegistrationInput{Email: email}).Email
}
