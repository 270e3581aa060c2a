package models

type NotificationSettings struct {
	HabitReminders           bool `json:"habitReminders"`
	HydrationReminders       bool `json:"hydrationReminders"`
	MoodCheckIns             bool `json:"moodCheckIns"`
	AchievementNotifications bool `json:"achievementNotifications"`
	WeeklyReports            bool `json:"weeklyReports"`
	QuietHoursStart          int  `json:"quietHoursStart"`
	QuietHoursEnd            int  `json:"quietHoursEnd"`
	SoundEnabled             bool `json:"soundEnabled"`
	VibrationEnabled         bool `json:"vibrationEnabled"`
}

func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		HabitReminders:           true,
		HydrationReminders:       true,
		MoodCheckIns:             true,
		AchievementNotifications: true,
		WeeklyReports:            true,
		QuietHoursStart:          22,
		QuietHoursEnd:            8,
		SoundEnabled:             true,
		VibrationEnabled:         true,
	}
}
