package services

import (
	"time"

	"github.com/habitmate/habitmate/internal/models"
)

type AchievementRepository interface {
	Load() ([]models.Achievement, error)
	Save(achievements []models.Achievement) error
}

type AchievementHabitReader interface {
	LoadHabits() ([]models.Habit, error)
	LoadEntries() ([]models.HabitEntry, error)
}

type AchievementMoodReader interface {
	LoadEntries() ([]models.MoodEntry, error)
}

type AchievementHydrationReader interface {
	Load() (models.HydrationData, error)
}

type AchievementService struct {
	achievements AchievementRepository
	habits       AchievementHabitReader
	moods        AchievementMoodReader
	hydration    AchievementHydrationReader
}

func NewAchievementService(
	achievements AchievementRepository,
	habits AchievementHabitReader,
	moods AchievementMoodReader,
	hydration AchievementHydrationReader,
) *AchievementService {
	return &AchievementService{
		achievements: achievements,
		habits:       habits,
		moods:        moods,
		hydration:    hydration,
	}
}

func (service *AchievementService) List() ([]models.Achievement, error) {
	return service.achievements.Load()
}

// CheckAndUnlock loads the current collections, runs the unlock pass
// and persists the result when anything changed. It returns the ids
// newly unlocked by this call.
func (service *AchievementService) CheckAndUnlock(now time.Time) ([]string, error) {
	achievements, err := service.achievements.Load()
	if err != nil {
		return nil, err
	}
	habits, err := service.habits.LoadHabits()
	if err != nil {
		return nil, err
	}
	entries, err := service.habits.LoadEntries()
	if err != nil {
		return nil, err
	}
	moods, err := service.moods.LoadEntries()
	if err != nil {
		return nil, err
	}
	hydration, err := service.hydration.Load()
	if err != nil {
		return nil, err
	}

	updated, unlocked := EvaluateAchievements(achievements, habits, entries, moods, hydration, now)
	if len(unlocked) == 0 {
		return unlocked, nil
	}
	return unlocked, service.achievements.Save(updated)
}
