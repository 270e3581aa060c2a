package services

import (
	"time"

	"github.com/habitmate/habitmate/internal/models"
)

// Aggregation over the raw collections. Every function is pure: callers
// load the current collections and pass them in, nothing is cached.

func ActiveHabits(habits []models.Habit) []models.Habit {
	active := make([]models.Habit, 0, len(habits))
	for _, habit := range habits {
		if habit.IsActive {
			active = append(active, habit)
		}
	}
	return active
}

func CountCompleted(entries []models.HabitEntry) int {
	count := 0
	for _, entry := range entries {
		if entry.IsCompleted {
			count++
		}
	}
	return count
}

func entriesOn(entries []models.HabitEntry, date string) []models.HabitEntry {
	matched := make([]models.HabitEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Date == date {
			matched = append(matched, entry)
		}
	}
	return matched
}

// TodayProgress is the share of active habits completed on the given
// date, always within [0, 1] and exactly 0 without active habits.
func TodayProgress(habits []models.Habit, entries []models.HabitEntry, today string) float64 {
	active := ActiveHabits(habits)
	if len(active) == 0 {
		return 0
	}
	completed := CountCompleted(entriesOn(entries, today))
	progress := float64(completed) / float64(len(active))
	if progress > 1 {
		return 1
	}
	return progress
}

// CurrentStreak counts consecutive days, ending today, on which the
// number of completed entries reached the count of currently active
// habits. The backward scan is capped at the oldest stored entry date,
// so a fully satisfied history terminates at the data's own horizon.
func CurrentStreak(habits []models.Habit, entries []models.HabitEntry, today string, location *time.Location) int {
	active := ActiveHabits(habits)
	if len(active) == 0 || len(entries) == 0 {
		return 0
	}

	completedByDate := make(map[string]int, len(entries))
	oldest := entries[0].Date
	for _, entry := range entries {
		if entry.Date < oldest {
			oldest = entry.Date
		}
		if entry.IsCompleted {
			completedByDate[entry.Date]++
		}
	}

	streak := 0
	for date := today; date >= oldest; date = DateDaysAgo(1, date, location) {
		if completedByDate[date] < len(active) {
			break
		}
		streak++
	}
	return streak
}

// BestStreak is the maximum persisted best-streak counter, not a
// recomputation from entries.
func BestStreak(habits []models.Habit) int {
	best := 0
	for _, habit := range habits {
		if habit.BestStreak > best {
			best = habit.BestStreak
		}
	}
	return best
}

// WeeklyCompletion is completed entries within the last seven days over
// the active habit count times seven.
func WeeklyCompletion(habits []models.Habit, entries []models.HabitEntry, today string, location *time.Location) float64 {
	active := ActiveHabits(habits)
	if len(active) == 0 {
		return 0
	}

	weekAgo := DateDaysAgo(7, today, location)
	completed := 0
	for _, entry := range entries {
		if entry.Date >= weekAgo && entry.IsCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(active)*7)
}

func WeeklyMoodAverage(entries []models.MoodEntry, today string, location *time.Location) float64 {
	weekAgo := DateDaysAgo(7, today, location)
	sum := 0
	count := 0
	for _, entry := range entries {
		if entry.Date >= weekAgo {
			sum += entry.Intensity
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

// MostFrequentMood picks the mood with the highest entry count; ties go
// to the mood recorded earliest, and an empty history reads as neutral.
func MostFrequentMood(entries []models.MoodEntry) string {
	if len(entries) == 0 {
		return models.MoodNeutral
	}
	counts := make(map[string]int, len(entries))
	maxCount := 0
	for _, entry := range entries {
		counts[entry.Mood]++
		if counts[entry.Mood] > maxCount {
			maxCount = counts[entry.Mood]
		}
	}
	for _, entry := range entries {
		if counts[entry.Mood] == maxCount {
			return entry.Mood
		}
	}
	return models.MoodNeutral
}

func MoodDistribution(entries []models.MoodEntry) map[string]int {
	distribution := make(map[string]int, len(entries))
	for _, entry := range entries {
		distribution[entry.Mood]++
	}
	return distribution
}

// HabitsByCategory counts all habits per category, inactive included.
func HabitsByCategory(habits []models.Habit) map[string]int {
	byCategory := make(map[string]int, len(habits))
	for _, habit := range habits {
		byCategory[habit.Category]++
	}
	return byCategory
}

func DistinctEntryDates(entries []models.HabitEntry) int {
	dates := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		dates[entry.Date] = struct{}{}
	}
	return len(dates)
}

func DistinctMoodDates(entries []models.MoodEntry) int {
	dates := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		dates[entry.Date] = struct{}{}
	}
	return len(dates)
}

func BuildAnalytics(habits []models.Habit, entries []models.HabitEntry, moods []models.MoodEntry, today string, location *time.Location) models.AnalyticsData {
	return models.AnalyticsData{
		WeeklyHabitCompletion: WeeklyCompletion(habits, entries, today, location),
		WeeklyMoodAverage:     WeeklyMoodAverage(moods, today, location),
		TotalHabitsCompleted:  CountCompleted(entries),
		TotalDaysActive:       DistinctEntryDates(entries),
		CurrentStreak:         CurrentStreak(habits, entries, today, location),
		LongestStreak:         BestStreak(habits),
		MostFrequentMood:      MostFrequentMood(moods),
		HabitsByCategory:      HabitsByCategory(habits),
		MoodDistribution:      MoodDistribution(moods),
	}
}

// BuildWidgetData assembles the home-screen widget summary: today's
// completion and hydration shares, the latest mood logged today and the
// first active habit still open.
func BuildWidgetData(habits []models.Habit, entries []models.HabitEntry, moods []models.MoodEntry, hydration models.HydrationData, today string, now time.Time) models.WidgetData {
	todayEntries := entriesOn(entries, today)

	hydrationShare := 0.0
	if hydration.Goal > 0 {
		hydrationShare = float64(hydration.GlassesToday) / float64(hydration.Goal)
	}

	todayMood := ""
	var latest time.Time
	for _, entry := range moods {
		if entry.Date == today && (todayMood == "" || entry.Timestamp.After(latest)) {
			todayMood = entry.Mood
			latest = entry.Timestamp
		}
	}

	nextHabit := ""
	for _, habit := range ActiveHabits(habits) {
		completed := false
		for _, entry := range todayEntries {
			if entry.HabitID == habit.ID && entry.IsCompleted {
				completed = true
				break
			}
		}
		if !completed {
			nextHabit = habit.Name
			break
		}
	}

	return models.WidgetData{
		HabitCompletionPercentage: TodayProgress(habits, entries, today),
		HydrationPercentage:       hydrationShare,
		TodayMood:                 todayMood,
		NextHabit:                 nextHabit,
		LastUpdated:               now,
	}
}
