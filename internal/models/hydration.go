package models

import "time"

const (
	DefaultHydrationGoal    = 8
	DefaultReminderInterval = 60
	DefaultGlassVolumeMl    = 250
)

// HydrationData is a singleton record: one day's water intake measured
// in glasses of CustomIntakeMl each. GlassesToday is reset to zero by an
// explicit daily reset, never automatically.
type HydrationData struct {
	GlassesToday     int       `json:"glassesToday"`
	Goal             int       `json:"goal"`
	ReminderInterval int       `json:"reminderInterval"`
	LastReminderTime time.Time `json:"lastReminderTime"`
	LastGlassTime    time.Time `json:"lastGlassTime"`
	CustomIntakeMl   int       `json:"customIntakeMl"`
}

func DefaultHydrationData() HydrationData {
	return HydrationData{
		Goal:             DefaultHydrationGoal,
		ReminderInterval: DefaultReminderInterval,
		CustomIntakeMl:   DefaultGlassVolumeMl,
	}
}

func (data HydrationData) GoalReached() bool {
	return data.Goal > 0 && data.GlassesToday >= data.Goal
}
