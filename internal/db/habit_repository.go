package db

import "github.com/habitmate/habitmate/internal/models"

// HabitRepository owns the habits collection and the habit entries
// collection. Entry writes go through UpsertEntry so the store never
// holds more than one entry per (habit id, date) pair.
type HabitRepository struct {
	store *RecordStore
}

func NewHabitRepository(store *RecordStore) *HabitRepository {
	return &HabitRepository{store: store}
}

func (repo *HabitRepository) LoadHabits() ([]models.Habit, error) {
	var stored []models.Habit
	found, err := repo.store.Load(slotHabits, &stored)
	if err != nil || !found {
		return []models.Habit{}, err
	}
	return stored, nil
}

func (repo *HabitRepository) SaveHabits(habits []models.Habit) error {
	return repo.store.Save(slotHabits, habits)
}

func (repo *HabitRepository) FindHabit(habitID string) (models.Habit, bool, error) {
	habits, err := repo.LoadHabits()
	if err != nil {
		return models.Habit{}, false, err
	}
	for _, habit := range habits {
		if habit.ID == habitID {
			return habit, true, nil
		}
	}
	return models.Habit{}, false, nil
}

// ReplaceHabit swaps the stored habit with the same id and rewrites the
// collection. It reports false when no habit matches.
func (repo *HabitRepository) ReplaceHabit(updated models.Habit) (bool, error) {
	habits, err := repo.LoadHabits()
	if err != nil {
		return false, err
	}
	for index := range habits {
		if habits[index].ID == updated.ID {
			habits[index] = updated
			return true, repo.SaveHabits(habits)
		}
	}
	return false, nil
}

// DeleteHabit removes the habit and every entry referencing it.
func (repo *HabitRepository) DeleteHabit(habitID string) (bool, error) {
	habits, err := repo.LoadHabits()
	if err != nil {
		return false, err
	}

	kept := make([]models.Habit, 0, len(habits))
	removed := false
	for _, habit := range habits {
		if habit.ID == habitID {
			removed = true
			continue
		}
		kept = append(kept, habit)
	}
	if !removed {
		return false, nil
	}
	if err := repo.SaveHabits(kept); err != nil {
		return false, err
	}

	entries, err := repo.LoadEntries()
	if err != nil {
		return false, err
	}
	keptEntries := make([]models.HabitEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.HabitID == habitID {
			continue
		}
		keptEntries = append(keptEntries, entry)
	}
	return true, repo.SaveEntries(keptEntries)
}

func (repo *HabitRepository) LoadEntries() ([]models.HabitEntry, error) {
	var stored []models.HabitEntry
	found, err := repo.store.Load(slotHabitEntries, &stored)
	if err != nil || !found {
		return []models.HabitEntry{}, err
	}
	return stored, nil
}

func (repo *HabitRepository) SaveEntries(entries []models.HabitEntry) error {
	return repo.store.Save(slotHabitEntries, entries)
}

// UpsertEntry replaces the entry with the same (habit id, date) pair or
// appends a new one, then rewrites the collection.
func (repo *HabitRepository) UpsertEntry(entry models.HabitEntry) error {
	entries, err := repo.LoadEntries()
	if err != nil {
		return err
	}
	for index := range entries {
		if entries[index].HabitID == entry.HabitID && entries[index].Date == entry.Date {
			entry.ID = entries[index].ID
			entries[index] = entry
			return repo.SaveEntries(entries)
		}
	}
	return repo.SaveEntries(append(entries, entry))
}

func (repo *HabitRepository) FindEntry(habitID string, date string) (models.HabitEntry, bool, error) {
	entries, err := repo.LoadEntries()
	if err != nil {
		return models.HabitEntry{}, false, err
	}
	for _, entry := range entries {
		if entry.HabitID == habitID && entry.Date == date {
			return entry, true, nil
		}
	}
	return models.HabitEntry{}, false, nil
}

func (repo *HabitRepository) EntriesForDate(date string) ([]models.HabitEntry, error) {
	entries, err := repo.LoadEntries()
	if err != nil {
		return nil, err
	}
	matched := make([]models.HabitEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Date == date {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

func (repo *HabitRepository) EntriesForHabit(habitID string) ([]models.HabitEntry, error) {
	entries, err := repo.LoadEntries()
	if err != nil {
		return nil, err
	}
	matched := make([]models.HabitEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.HabitID == habitID {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}
