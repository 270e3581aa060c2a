package models

import "time"

// AnalyticsData is a derived view, recomputed from the stored
// collections on every request and never persisted.
type AnalyticsData struct {
	WeeklyHabitCompletion float64        `json:"weeklyHabitCompletion"`
	WeeklyMoodAverage     float64        `json:"weeklyMoodAverage"`
	TotalHabitsCompleted  int            `json:"totalHabitsCompleted"`
	TotalDaysActive       int            `json:"totalDaysActive"`
	CurrentStreak         int            `json:"currentStreak"`
	LongestStreak         int            `json:"longestStreak"`
	MostFrequentMood      string         `json:"mostFrequentMood"`
	HabitsByCategory      map[string]int `json:"habitsByCategory"`
	MoodDistribution      map[string]int `json:"moodDistribution"`
}

// WidgetData is the compact summary rendered on the home-screen widget.
type WidgetData struct {
	HabitCompletionPercentage float64   `json:"habitCompletionPercentage"`
	HydrationPercentage       float64   `json:"hydrationPercentage"`
	TodayMood                 string    `json:"todayMood,omitempty"`
	NextHabit                 string    `json:"nextHabit"`
	LastUpdated               time.Time `json:"lastUpdated"`
}
