package models

import "time"

const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

const (
	CategoryFocus    = "focus"
	CategoryFitness  = "fitness"
	CategoryRest     = "rest"
	CategoryLearning = "learning"
	CategoryHealth   = "health"
	CategoryGeneral  = "general"
)

type Habit struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Frequency        string    `json:"frequency"`
	Category         string    `json:"category"`
	CreatedAt        time.Time `json:"createdAt"`
	IsActive         bool      `json:"isActive"`
	Streak           int       `json:"streak"`
	BestStreak       int       `json:"bestStreak"`
	TotalCompletions int       `json:"totalCompletions"`
}

// HabitEntry records completion of one habit on one calendar day.
// Date uses the YYYY-MM-DD form; the store keeps at most one entry
// per (habit id, date) pair.
type HabitEntry struct {
	ID          string     `json:"id"`
	HabitID     string     `json:"habitId"`
	Date        string     `json:"date"`
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Note        string     `json:"note,omitempty"`
}

func IsValidFrequency(frequency string) bool {
	switch frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}

func IsValidCategory(category string) bool {
	switch category {
	case CategoryFocus, CategoryFitness, CategoryRest, CategoryLearning, CategoryHealth, CategoryGeneral:
		return true
	default:
		return false
	}
}
