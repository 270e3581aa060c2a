package services

import (
	"errors"
	"testing"
	"time"

	"github.com/habitmate/habitmate/internal/models"
)

// stubHabitRepository keeps habits and entries in memory with the same
// one-entry-per-habit-per-date contract as the persistent repository.
type stubHabitRepository struct {
	habits  []models.Habit
	entries []models.HabitEntry
}

func (stub *stubHabitRepository) LoadHabits() ([]models.Habit, error) {
	return append([]models.Habit(nil), stub.habits...), nil
}

func (stub *stubHabitRepository) SaveHabits(habits []models.Habit) error {
	stub.habits = append([]models.Habit(nil), habits...)
	return nil
}

func (stub *stubHabitRepository) FindHabit(habitID string) (models.Habit, bool, error) {
	for _, habit := range stub.habits {
		if habit.ID == habitID {
			return habit, true, nil
		}
	}
	return models.Habit{}, false, nil
}

func (stub *stubHabitRepository) ReplaceHabit(habit models.Habit) (bool, error) {
	for index := range stub.habits {
		if stub.habits[index].ID == habit.ID {
			stub.habits[index] = habit
			return true, nil
		}
	}
	return false, nil
}

func (stub *stubHabitRepository) DeleteHabit(habitID string) (bool, error) {
	kept := stub.habits[:0]
	removed := false
	for _, habit := range stub.habits {
		if habit.ID == habitID {
			removed = true
			continue
		}
		kept = append(kept, habit)
	}
	stub.habits = kept
	if removed {
		entries := stub.entries[:0]
		for _, entry := range stub.entries {
			if entry.HabitID != habitID {
				entries = append(entries, entry)
			}
		}
		stub.entries = entries
	}
	return removed, nil
}

func (stub *stubHabitRepository) LoadEntries() ([]models.HabitEntry, error) {
	return append([]models.HabitEntry(nil), stub.entries...), nil
}

func (stub *stubHabitRepository) UpsertEntry(entry models.HabitEntry) error {
	for index := range stub.entries {
		if stub.entries[index].HabitID == entry.HabitID && stub.entries[index].Date == entry.Date {
			entry.ID = stub.entries[index].ID
			stub.entries[index] = entry
			return nil
		}
	}
	stub.entries = append(stub.entries, entry)
	return nil
}

func (stub *stubHabitRepository) FindEntry(habitID string, date string) (models.HabitEntry, bool, error) {
	for _, entry := range stub.entries {
		if entry.HabitID == habitID && entry.Date == date {
			return entry, true, nil
		}
	}
	return models.HabitEntry{}, false, nil
}

func (stub *stubHabitRepository) EntriesForDate(date string) ([]models.HabitEntry, error) {
	var matched []models.HabitEntry
	for _, entry := range stub.entries {
		if entry.Date == date {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

func TestCreateHabitAppliesDefaults(t *testing.T) {
	t.Parallel()

	repo := &stubHabitRepository{}
	service := NewHabitService(repo)

	habit, err := service.Create(HabitInput{Name: "  Morning run  "}, time.Now())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if habit.Name != "Morning run" {
		t.Fatalf("expected trimmed name, got %q", habit.Name)
	}
	if habit.Frequency != models.FrequencyDaily {
		t.Fatalf("expected default frequency, got %q", habit.Frequency)
	}
	if habit.Category != models.CategoryGeneral {
		t.Fatalf("expected default category, got %q", habit.Category)
	}
	if !habit.IsActive {
		t.Fatal("expected a new habit to start active")
	}
	if habit.ID == "" {
		t.Fatal("expected a generated habit id")
	}
	if len(repo.habits) != 1 {
		t.Fatalf("expected the habit to be persisted, have %d", len(repo.habits))
	}
}

func TestCreateHabitValidatesInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   HabitInput
		wantErr error
	}{
		{"empty name", HabitInput{Name: "   "}, ErrHabitNameEmpty},
		{"unknown frequency", HabitInput{Name: "Read", Frequency: "hourly"}, ErrInvalidFrequency},
		{"unknown category", HabitInput{Name: "Read", Category: "finance"}, ErrInvalidCategory},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			service := NewHabitService(&stubHabitRepository{})
			if _, err := service.Create(test.input, time.Now()); !errors.Is(err, test.wantErr) {
				t.Fatalf("expected %v, got %v", test.wantErr, err)
			}
		})
	}
}

func TestCompleteAdvancesStreakCounters(t *testing.T) {
	t.Parallel()

	repo := &stubHabitRepository{habits: []models.Habit{{
		ID: "h1", Name: "Read", IsActive: true, Streak: 2, BestStreak: 5, TotalCompletions: 9,
	}}}
	service := NewHabitService(repo)

	entry, err := service.Complete("h1", testToday, time.Now())
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !entry.IsCompleted || entry.CompletedAt == nil {
		t.Fatalf("expected a completed entry with timestamp, got %#v", entry)
	}

	habit := repo.habits[0]
	if habit.Streak != 3 {
		t.Fatalf("expected streak 3, got %d", habit.Streak)
	}
	if habit.BestStreak != 5 {
		t.Fatalf("expected best streak to stay 5, got %d", habit.BestStreak)
	}
	if habit.TotalCompletions != 10 {
		t.Fatalf("expected total completions 10, got %d", habit.TotalCompletions)
	}
}

func TestCompleteRaisesBestStreak(t *testing.T) {
	t.Parallel()

	repo := &stubHabitRepository{habits: []models.Habit{{
		ID: "h1", Name: "Read", IsActive: true, Streak: 5, BestStreak: 5,
	}}}
	service := NewHabitService(repo)

	if _, err := service.Complete("h1", testToday, time.Now()); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if repo.habits[0].BestStreak != 6 {
		t.Fatalf("expected best streak 6, got %d", repo.habits[0].BestStreak)
	}
}

func TestCompleteTwiceOnSameDateKeepsOneEntry(t *testing.T) {
	t.Parallel()

	repo := &stubHabitRepository{habits: []models.Habit{{ID: "h1", Name: "Read", IsActive: true}}}
	service := NewHabitService(repo)

	if _, err := service.Complete("h1", testToday, time.Now()); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	if _, err := service.Complete("h1", testToday, time.Now()); err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if len(repo.entries) != 1 {
		t.Fatalf("expected one entry for the date, have %d", len(repo.entries))
	}
}

func TestUncompleteResetsStreakOnly(t *testing.T) {
	t.Parallel()

	repo := &stubHabitRepository{
		habits: []models.Habit{{
			ID: "h1", Name: "Read", IsActive: true, Streak: 4, BestStreak: 7, TotalCompletions: 20,
		}},
		entries: []models.HabitEntry{{ID: "e1", HabitID: "h1", Date: testToday, IsCompleted: true}},
	}
	service := NewHabitService(repo)

	entry, err := service.Uncomplete("h1", testToday)
	if err != nil {
		t.Fatalf("uncomplete: %v", err)
	}
	if entry.IsCompleted {
		t.Fatal("expected the entry to be marked incomplete")
	}
	if entry.ID != "e1" {
		t.Fatalf("expected the existing entry id to survive, got %q", entry.ID)
	}

	habit := repo.habits[0]
	if habit.Streak != 0 {
		t.Fatalf("expected streak reset, got %d", habit.Streak)
	}
	if habit.BestStreak != 7 || habit.TotalCompletions != 20 {
		t.Fatalf("expected best streak and totals untouched, got %#v", habit)
	}
}

func TestDeleteHabitReportsMissing(t *testing.T) {
	t.Parallel()

	service := NewHabitService(&stubHabitRepository{})
	if err := service.Delete("missing"); !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound, got %v", err)
	}
}

func TestSetActiveArchivesHabit(t *testing.T) {
	t.Parallel()

	repo := &stubHabitRepository{habits: []models.Habit{{ID: "h1", Name: "Read", IsActive: true}}}
	service := NewHabitService(repo)

	habit, err := service.SetActive("h1", false)
	if err != nil {
		t.Fatalf("set active: %v", err)
	}
	if habit.IsActive {
		t.Fatal("expected the habit to be archived")
	}
	if repo.habits[0].IsActive {
		t.Fatal("expected the archived state to be persisted")
	}
}
