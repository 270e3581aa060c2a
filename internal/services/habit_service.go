package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/habitmate/habitmate/internal/models"
)

var (
	ErrHabitNotFound    = errors.New("habit not found")
	ErrHabitNameEmpty   = errors.New("habit name is required")
	ErrInvalidFrequency = errors.New("invalid frequency")
	ErrInvalidCategory  = errors.New("invalid category")
)

type HabitEntryRepository interface {
	LoadHabits() ([]models.Habit, error)
	SaveHabits(habits []models.Habit) error
	FindHabit(habitID string) (models.Habit, bool, error)
	ReplaceHabit(habit models.Habit) (bool, error)
	DeleteHabit(habitID string) (bool, error)
	LoadEntries() ([]models.HabitEntry, error)
	UpsertEntry(entry models.HabitEntry) error
	FindEntry(habitID string, date string) (models.HabitEntry, bool, error)
	EntriesForDate(date string) ([]models.HabitEntry, error)
}

type HabitService struct {
	habits HabitEntryRepository
}

func NewHabitService(habits HabitEntryRepository) *HabitService {
	return &HabitService{habits: habits}
}

type HabitInput struct {
	Name        string
	Description string
	Frequency   string
	Category    string
}

func validateHabitInput(input HabitInput) (HabitInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.Frequency = strings.ToLower(strings.TrimSpace(input.Frequency))
	input.Category = strings.ToLower(strings.TrimSpace(input.Category))

	if input.Name == "" {
		return input, ErrHabitNameEmpty
	}
	if input.Frequency == "" {
		input.Frequency = models.FrequencyDaily
	}
	if !models.IsValidFrequency(input.Frequency) {
		return input, ErrInvalidFrequency
	}
	if input.Category == "" {
		input.Category = models.CategoryGeneral
	}
	if !models.IsValidCategory(input.Category) {
		return input, ErrInvalidCategory
	}
	return input, nil
}

func (service *HabitService) Create(input HabitInput, now time.Time) (models.Habit, error) {
	input, err := validateHabitInput(input)
	if err != nil {
		return models.Habit{}, err
	}

	habits, err := service.habits.LoadHabits()
	if err != nil {
		return models.Habit{}, err
	}

	habit := models.Habit{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Frequency:   input.Frequency,
		Category:    input.Category,
		CreatedAt:   now,
		IsActive:    true,
	}
	if err := service.habits.SaveHabits(append(habits, habit)); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (service *HabitService) Update(habitID string, input HabitInput) (models.Habit, error) {
	input, err := validateHabitInput(input)
	if err != nil {
		return models.Habit{}, err
	}

	habit, found, err := service.habits.FindHabit(habitID)
	if err != nil {
		return models.Habit{}, err
	}
	if !found {
		return models.Habit{}, ErrHabitNotFound
	}

	habit.Name = input.Name
	habit.Description = input.Description
	habit.Frequency = input.Frequency
	habit.Category = input.Category

	if _, err := service.habits.ReplaceHabit(habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// SetActive archives or restores a habit. Entries are kept either way.
func (service *HabitService) SetActive(habitID string, active bool) (models.Habit, error) {
	habit, found, err := service.habits.FindHabit(habitID)
	if err != nil {
		return models.Habit{}, err
	}
	if !found {
		return models.Habit{}, ErrHabitNotFound
	}

	habit.IsActive = active
	if _, err := service.habits.ReplaceHabit(habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (service *HabitService) Delete(habitID string) error {
	removed, err := service.habits.DeleteHabit(habitID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrHabitNotFound
	}
	return nil
}

// Complete marks the habit done for the date and advances its streak
// counters: streak+1, best-streak raised to match, total completions+1.
func (service *HabitService) Complete(habitID string, date string, now time.Time) (models.HabitEntry, error) {
	habit, found, err := service.habits.FindHabit(habitID)
	if err != nil {
		return models.HabitEntry{}, err
	}
	if !found {
		return models.HabitEntry{}, ErrHabitNotFound
	}

	completedAt := now
	entry := models.HabitEntry{
		ID:          uuid.NewString(),
		HabitID:     habitID,
		Date:        date,
		IsCompleted: true,
		CompletedAt: &completedAt,
	}
	if err := service.habits.UpsertEntry(entry); err != nil {
		return models.HabitEntry{}, err
	}

	habit.Streak++
	if habit.Streak > habit.BestStreak {
		habit.BestStreak = habit.Streak
	}
	habit.TotalCompletions++
	if _, err := service.habits.ReplaceHabit(habit); err != nil {
		return models.HabitEntry{}, err
	}

	entry, _, err = service.habits.FindEntry(habitID, date)
	return entry, err
}

// Uncomplete clears the completion for the date and resets the habit's
// running streak to zero. Best streak and total completions are kept.
func (service *HabitService) Uncomplete(habitID string, date string) (models.HabitEntry, error) {
	habit, found, err := service.habits.FindHabit(habitID)
	if err != nil {
		return models.HabitEntry{}, err
	}
	if !found {
		return models.HabitEntry{}, ErrHabitNotFound
	}

	entry := models.HabitEntry{
		ID:          uuid.NewString(),
		HabitID:     habitID,
		Date:        date,
		IsCompleted: false,
	}
	if err := service.habits.UpsertEntry(entry); err != nil {
		return models.HabitEntry{}, err
	}

	habit.Streak = 0
	if _, err := service.habits.ReplaceHabit(habit); err != nil {
		return models.HabitEntry{}, err
	}

	entry, _, err = service.habits.FindEntry(habitID, date)
	return entry, err
}
