package db

import "github.com/habitmate/habitmate/internal/models"

type HydrationRepository struct {
	store *RecordStore
}

func NewHydrationRepository(store *RecordStore) *HydrationRepository {
	return &HydrationRepository{store: store}
}

func (repo *HydrationRepository) Load() (models.HydrationData, error) {
	var stored models.HydrationData
	found, err := repo.store.Load(slotHydrationData, &stored)
	if err != nil || !found {
		return models.DefaultHydrationData(), err
	}
	if stored.CustomIntakeMl <= 0 {
		stored.CustomIntakeMl = models.DefaultGlassVolumeMl
	}
	return stored, nil
}

func (repo *HydrationRepository) Save(data models.HydrationData) error {
	return repo.store.Save(slotHydrationData, data)
}
