package models

import "time"

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

type UserPreferences struct {
	Theme                string `json:"theme"`
	HydrationGoal        int    `json:"hydrationGoal"`
	ReminderInterval     int    `json:"reminderInterval"`
	SoundEnabled         bool   `json:"soundEnabled"`
	VibrationEnabled     bool   `json:"vibrationEnabled"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	BiometricEnabled     bool   `json:"biometricEnabled"`
	WeeklyReportEnabled  bool   `json:"weeklyReportEnabled"`
	OnboardingCompleted  bool   `json:"onboardingCompleted"`
}

func DefaultUserPreferences() UserPreferences {
	return UserPreferences{
		Theme:                ThemeSystem,
		HydrationGoal:        8,
		ReminderInterval:     60,
		SoundEnabled:         true,
		VibrationEnabled:     true,
		NotificationsEnabled: true,
		WeeklyReportEnabled:  true,
	}
}
