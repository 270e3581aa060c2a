package services

import (
	"errors"
	"testing"
	"time"

	"github.com/habitmate/habitmate/internal/models"
)

type stubMoodRepository struct {
	entries []models.MoodEntry
}

func (stub *stubMoodRepository) LoadEntries() ([]models.MoodEntry, error) {
	return append([]models.MoodEntry(nil), stub.entries...), nil
}

func (stub *stubMoodRepository) UpsertByDate(entry models.MoodEntry) error {
	for index := range stub.entries {
		if stub.entries[index].Date == entry.Date {
			entry.ID = stub.entries[index].ID
			stub.entries[index] = entry
			return nil
		}
	}
	stub.entries = append(stub.entries, entry)
	return nil
}

func (stub *stubMoodRepository) EntriesForDate(date string) ([]models.MoodEntry, error) {
	var matched []models.MoodEntry
	for _, entry := range stub.entries {
		if entry.Date == date {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

func TestLogMoodDerivesIntensity(t *testing.T) {
	t.Parallel()

	repo := &stubMoodRepository{}
	service := NewMoodService(repo)

	entry, err := service.Log(" Happy ", "good day", testToday, time.Now())
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if entry.Mood != models.MoodHappy {
		t.Fatalf("expected normalized mood, got %q", entry.Mood)
	}
	if entry.Intensity != 10 {
		t.Fatalf("expected intensity 10 for happy, got %d", entry.Intensity)
	}
	if entry.Note != "good day" {
		t.Fatalf("expected note preserved, got %q", entry.Note)
	}
}

func TestLogMoodReplacesSameDayEntry(t *testing.T) {
	t.Parallel()

	repo := &stubMoodRepository{}
	service := NewMoodService(repo)

	first, err := service.Log(models.MoodSad, "", testToday, time.Now())
	if err != nil {
		t.Fatalf("first log: %v", err)
	}
	second, err := service.Log(models.MoodCalm, "", testToday, time.Now())
	if err != nil {
		t.Fatalf("second log: %v", err)
	}

	if len(repo.entries) != 1 {
		t.Fatalf("expected one entry for the date, have %d", len(repo.entries))
	}
	if second.ID != first.ID {
		t.Fatalf("expected the entry id to survive the update, got %q and %q", first.ID, second.ID)
	}
	if repo.entries[0].Mood != models.MoodCalm {
		t.Fatalf("expected the later mood stored, got %q", repo.entries[0].Mood)
	}
}

func TestLogMoodRejectsUnknownMood(t *testing.T) {
	t.Parallel()

	service := NewMoodService(&stubMoodRepository{})
	if _, err := service.Log("euphoric", "", testToday, time.Now()); !errors.Is(err, ErrInvalidMood) {
		t.Fatalf("expected ErrInvalidMood, got %v", err)
	}
}

func TestEntryForDate(t *testing.T) {
	t.Parallel()

	repo := &stubMoodRepository{entries: []models.MoodEntry{
		{ID: "m1", Mood: models.MoodCalm, Date: "2026-08-29"},
	}}
	service := NewMoodService(repo)

	entry, err := service.EntryForDate("2026-08-29")
	if err != nil {
		t.Fatalf("entry for date: %v", err)
	}
	if entry == nil || entry.ID != "m1" {
		t.Fatalf("expected the stored entry, got %#v", entry)
	}

	missing, err := service.EntryForDate(testToday)
	if err != nil {
		t.Fatalf("entry for date: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected no entry for an unlogged date, got %#v", missing)
	}
}
