package db

import "github.com/habitmate/habitmate/internal/models"

// MoodRepository owns the mood entries collection. One entry per
// calendar date: UpsertByDate updates in place.
type MoodRepository struct {
	store *RecordStore
}

func NewMoodRepository(store *RecordStore) *MoodRepository {
	return &MoodRepository{store: store}
}

func (repo *MoodRepository) LoadEntries() ([]models.MoodEntry, error) {
	var stored []models.MoodEntry
	found, err := repo.store.Load(slotMoodEntries, &stored)
	if err != nil || !found {
		return []models.MoodEntry{}, err
	}
	return stored, nil
}

func (repo *MoodRepository) SaveEntries(entries []models.MoodEntry) error {
	return repo.store.Save(slotMoodEntries, entries)
}

func (repo *MoodRepository) UpsertByDate(entry models.MoodEntry) error {
	entries, err := repo.LoadEntries()
	if err != nil {
		return err
	}
	for index := range entries {
		if entries[index].Date == entry.Date {
			entry.ID = entries[index].ID
			entries[index] = entry
			return repo.SaveEntries(entries)
		}
	}
	return repo.SaveEntries(append(entries, entry))
}

func (repo *MoodRepository) EntriesForDate(date string) ([]models.MoodEntry, error) {
	entries, err := repo.LoadEntries()
	if err != nil {
		return nil, err
	}
	matched := make([]models.MoodEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Date == date {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}
