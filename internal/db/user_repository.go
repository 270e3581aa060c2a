package db

import "github.com/habitmate/habitmate/internal/models"

// UserRepository owns the single account slot. The stored user persists
// across sessions; only the reset-all-data wipe removes it.
type UserRepository struct {
	store *RecordStore
}

func NewUserRepository(store *RecordStore) *UserRepository {
	return &UserRepository{store: store}
}

func (repo *UserRepository) Load() (*models.User, error) {
	var user models.User
	found, err := repo.store.Load(slotUser, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

func (repo *UserRepository) Save(user models.User) error {
	return repo.store.Save(slotUser, user)
}

func (repo *UserRepository) LoadPreferences() (models.UserPreferences, error) {
	var stored models.UserPreferences
	found, err := repo.store.Load(slotUserPreferences, &stored)
	if err != nil || !found {
		return models.DefaultUserPreferences(), err
	}
	return stored, nil
}

func (repo *UserRepository) SavePreferences(preferences models.UserPreferences) error {
	return repo.store.Save(slotUserPreferences, preferences)
}
