package db

import "github.com/habitmate/habitmate/internal/models"

// AchievementRepository owns the achievements collection. Reading an
// empty or corrupt slot yields the fixed default set, all locked.
type AchievementRepository struct {
	store *RecordStore
}

func NewAchievementRepository(store *RecordStore) *AchievementRepository {
	return &AchievementRepository{store: store}
}

func (repo *AchievementRepository) Load() ([]models.Achievement, error) {
	var stored []models.Achievement
	found, err := repo.store.Load(slotAchievements, &stored)
	if err != nil || !found || len(stored) == 0 {
		return models.DefaultAchievements(), err
	}
	return stored, nil
}

func (repo *AchievementRepository) Save(achievements []models.Achievement) error {
	return repo.store.Save(slotAchievements, achievements)
}
