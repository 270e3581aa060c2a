package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/habitmate/habitmate/internal/models"
)

var ErrInvalidMood = errors.New("invalid mood")

type MoodEntryRepository interface {
	LoadEntries() ([]models.MoodEntry, error)
	UpsertByDate(entry models.MoodEntry) error
	EntriesForDate(date string) ([]models.MoodEntry, error)
}

type MoodService struct {
	moods MoodEntryRepository
}

func NewMoodService(moods MoodEntryRepository) *MoodService {
	return &MoodService{moods: moods}
}

// Log records the mood for a date, updating in place when the date was
// already logged. Intensity always comes from the fixed mood mapping.
func (service *MoodService) Log(mood string, note string, date string, now time.Time) (models.MoodEntry, error) {
	mood = strings.ToLower(strings.TrimSpace(mood))
	if !models.IsValidMood(mood) {
		return models.MoodEntry{}, ErrInvalidMood
	}

	entry := models.MoodEntry{
		ID:        uuid.NewString(),
		Mood:      mood,
		Note:      strings.TrimSpace(note),
		Date:      date,
		Timestamp: now,
		Intensity: models.MoodIntensity(mood),
	}
	if err := service.moods.UpsertByDate(entry); err != nil {
		return models.MoodEntry{}, err
	}

	stored, err := service.moods.EntriesForDate(date)
	if err != nil || len(stored) == 0 {
		return entry, err
	}
	return stored[0], nil
}

func (service *MoodService) Entries() ([]models.MoodEntry, error) {
	return service.moods.LoadEntries()
}

func (service *MoodService) EntryForDate(date string) (*models.MoodEntry, error) {
	entries, err := service.moods.EntriesForDate(date)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}
