package db

import "gorm.io/gorm"

type Repositories struct {
	Store        *RecordStore
	Users        *UserRepository
	Habits       *HabitRepository
	Moods        *MoodRepository
	Hydration    *HydrationRepository
	Achievements *AchievementRepository
	Settings     *SettingsRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	store := NewRecordStore(database)
	return &Repositories{
		Store:        store,
		Users:        NewUserRepository(store),
		Habits:       NewHabitRepository(store),
		Moods:        NewMoodRepository(store),
		Hydration:    NewHydrationRepository(store),
		Achievements: NewAchievementRepository(store),
		Settings:     NewSettingsRepository(store),
	}
}
