package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	habits := api.Group("/habits", handler.AuthRequired)
	habits.Get("", handler.GetHabits)
	habits.Post("", handler.CreateHabit)
	habits.Put("/:id", handler.UpdateHabit)
	habits.Patch("/:id/active", handler.SetHabitActive)
	habits.Delete("/:id", handler.DeleteHabit)
	habits.Post("/:id/complete", handler.CompleteHabit)
	habits.Post("/:id/uncomplete", handler.UncompleteHabit)
	habits.Get("/entries", handler.GetHabitEntries)

	mood := api.Group("/mood", handler.AuthRequired)
	mood.Get("", handler.GetMoodEntries)
	mood.Post("", handler.LogMood)
	mood.Get("/week", handler.GetMoodWeek)
	mood.Get("/:date", handler.GetMoodForDate)

	hydration := api.Group("/hydration", handler.AuthRequired)
	hydration.Get("", handler.GetHydration)
	hydration.Post("/glass", handler.AddGlass)
	hydration.Post("/intake", handler.AddIntake)
	hydration.Put("/goal", handler.SetHydrationGoal)
	hydration.Put("/interval", handler.SetHydrationInterval)
	hydration.Put("/custom-intake", handler.SetCustomIntake)
	hydration.Post("/reset", handler.ResetHydration)

	achievements := api.Group("/achievements", handler.AuthRequired)
	achievements.Get("", handler.GetAchievements)
	achievements.Post("/check", handler.CheckAchievements)

	analytics := api.Group("/analytics", handler.AuthRequired)
	analytics.Get("/overview", handler.GetAnalyticsOverview)

	api.Get("/widget", handler.AuthRequired, handler.GetWidget)
	api.Get("/quote", handler.AuthRequired, handler.GetDailyQuote)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Get("/notifications", handler.GetNotificationSettings)
	settings.Put("/notifications", handler.UpdateNotificationSettings)
	settings.Get("/preferences", handler.GetPreferences)
	settings.Put("/preferences", handler.UpdatePreferences)
	settings.Post("/reset", handler.ResetAllData)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/summary", handler.ExportSummary)
}
