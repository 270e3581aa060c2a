package services

import (
	"time"

	"github.com/habitmate/habitmate/internal/models"
)

// EvaluateAchievements runs the fixed unlock rules over the current
// collections and returns the updated set plus the ids unlocked by this
// pass. Unlocks are one-way: an already unlocked achievement is never
// re-evaluated, re-stamped or re-locked, so the pass is idempotent.
func EvaluateAchievements(
	achievements []models.Achievement,
	habits []models.Habit,
	entries []models.HabitEntry,
	moods []models.MoodEntry,
	hydration models.HydrationData,
	now time.Time,
) ([]models.Achievement, []string) {
	totalCompletions := CountCompleted(entries)

	maxStreak := 0
	for _, habit := range habits {
		if habit.Streak > maxStreak {
			maxStreak = habit.Streak
		}
	}

	satisfied := map[string]bool{
		models.AchievementFirstHabit:  totalCompletions >= 1,
		models.AchievementWeekStreak:  maxStreak >= 7,
		models.AchievementMonthStreak: maxStreak >= 30,
		models.AchievementMoodTracker: DistinctMoodDates(moods) >= 7,
		models.AchievementHydration:   hydration.GoalReached(),
		models.AchievementHundred:     totalCompletions >= 100,
	}

	updated := make([]models.Achievement, len(achievements))
	copy(updated, achievements)

	unlocked := make([]string, 0, len(updated))
	for index := range updated {
		if updated[index].IsUnlocked || !satisfied[updated[index].ID] {
			continue
		}
		unlockedAt := now
		updated[index].IsUnlocked = true
		updated[index].UnlockedAt = &unlockedAt
		unlocked = append(unlocked, updated[index].ID)
	}

	return updated, unlocked
}
