package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/habitmate/habitmate/internal/db"
	"github.com/habitmate/habitmate/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories       *db.Repositories
	authService        *services.AuthService
	habitService       *services.HabitService
	moodService        *services.MoodService
	hydrationService   *services.HydrationService
	achievementService *services.AchievementService
	quoteService       *services.QuoteService
	settingsService    *services.SettingsService
}

const (
	authCookieName = "habitmate_auth"
	contextUserKey = "current_user"
)

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type authClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}
