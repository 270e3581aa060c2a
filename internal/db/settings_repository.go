package db

import "github.com/habitmate/habitmate/internal/models"

// SettingsRepository owns the singleton configuration slots and the
// last-shown daily quote.
type SettingsRepository struct {
	store *RecordStore
}

func NewSettingsRepository(store *RecordStore) *SettingsRepository {
	return &SettingsRepository{store: store}
}

func (repo *SettingsRepository) LoadNotificationSettings() (models.NotificationSettings, error) {
	var stored models.NotificationSettings
	found, err := repo.store.Load(slotNotificationSettings, &stored)
	if err != nil || !found {
		return models.DefaultNotificationSettings(), err
	}
	return stored, nil
}

func (repo *SettingsRepository) SaveNotificationSettings(settings models.NotificationSettings) error {
	return repo.store.Save(slotNotificationSettings, settings)
}

func (repo *SettingsRepository) LoadDailyQuote() (*models.DailyQuote, error) {
	var stored models.DailyQuote
	found, err := repo.store.Load(slotDailyQuote, &stored)
	if err != nil || !found {
		return nil, err
	}
	return &stored, nil
}

func (repo *SettingsRepository) SaveDailyQuote(quote models.DailyQuote) error {
	return repo.store.Save(slotDailyQuote, quote)
}
