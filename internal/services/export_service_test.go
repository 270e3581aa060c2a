package services

import (
	"strings"
	"testing"
	"time"

	"github.com/habitmate/habitmate/internal/models"
)

func TestBuildExportSummary(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)
	user := &models.User{Name: "Ada", Email: "ada@example.com"}
	habits := []models.Habit{
		{Name: "Read", Frequency: models.FrequencyDaily, IsActive: true},
		{Name: "Swim", Frequency: models.FrequencyWeekly, IsActive: false},
	}
	moods := []models.MoodEntry{
		{Date: "2026-08-29", Mood: models.MoodCalm, Note: "quiet evening"},
		{Date: testToday, Mood: models.MoodHappy},
	}
	hydration := models.DefaultHydrationData()
	hydration.Goal = 10
	hydration.ReminderInterval = 45

	summary := BuildExportSummary(user, habits, moods, hydration, now)

	wantLines := []string{
		"=== HabitMate Data Export ===",
		"Export Date: 2026-08-30 10:30:00",
		"Name: Ada",
		"Email: ada@example.com",
		"=== Habits (2) ===",
		"- Read: daily (Active)",
		"- Swim: weekly (Inactive)",
		"=== Mood Entries (2) ===",
		"- 2026-08-29: calm - quiet evening",
		"- 2026-08-30: happy",
		"Daily Goal: 10 glasses",
		"Reminder Interval: 45 minutes",
		"=== End of Export ===",
	}
	for _, line := range wantLines {
		if !strings.Contains(summary, line) {
			t.Fatalf("missing line %q in summary:\n%s", line, summary)
		}
	}
}

func TestBuildExportSummaryWithoutUser(t *testing.T) {
	t.Parallel()

	summary := BuildExportSummary(nil, nil, nil, models.DefaultHydrationData(), time.Now())

	if !strings.Contains(summary, "Name: N/A") || !strings.Contains(summary, "Email: N/A") {
		t.Fatalf("expected N/A placeholders without a user:\n%s", summary)
	}
	if !strings.Contains(summary, "=== Habits (0) ===") {
		t.Fatalf("expected empty habit section:\n%s", summary)
	}
}
