package api

import (
	"github.com/habitmate/habitmate/internal/db"
	"github.com/habitmate/habitmate/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.habitService = services.NewHabitService(handler.repositories.Habits)
	handler.moodService = services.NewMoodService(handler.repositories.Moods)
	handler.hydrationService = services.NewHydrationService(handler.repositories.Hydration)
	handler.achievementService = services.NewAchievementService(
		handler.repositories.Achievements,
		handler.repositories.Habits,
		handler.repositories.Moods,
		handler.repositories.Hydration,
	)
	handler.quoteService = services.NewQuoteService(handler.repositories.Settings)
	handler.settingsService = services.NewSettingsService(
		handler.repositories.Settings,
		handler.repositories.Users,
		handler.repositories.Store,
	)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil && handler.db != nil {
		handler.withDependencies(handler.db)
	}
}
