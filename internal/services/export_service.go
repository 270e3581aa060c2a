package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/habitmate/habitmate/internal/models"
)

// BuildExportSummary renders a human-readable snapshot for sharing.
// The text is not re-importable; it mirrors the share-sheet export of
// the mobile app.
func BuildExportSummary(
	user *models.User,
	habits []models.Habit,
	moods []models.MoodEntry,
	hydration models.HydrationData,
	now time.Time,
) string {
	var builder strings.Builder

	builder.WriteString("=== HabitMate Data Export ===\n")
	fmt.Fprintf(&builder, "Export Date: %s\n\n", now.Format("2006-01-02 15:04:05"))

	builder.WriteString("=== User Information ===\n")
	fmt.Fprintf(&builder, "Name: %s\n", valueOrNA(user, func(u *models.User) string { return u.Name }))
	fmt.Fprintf(&builder, "Email: %s\n\n", valueOrNA(user, func(u *models.User) string { return u.Email }))

	fmt.Fprintf(&builder, "=== Habits (%d) ===\n", len(habits))
	for _, habit := range habits {
		state := "Inactive"
		if habit.IsActive {
			state = "Active"
		}
		fmt.Fprintf(&builder, "- %s: %s (%s)\n", habit.Name, habit.Frequency, state)
	}
	builder.WriteString("\n")

	fmt.Fprintf(&builder, "=== Mood Entries (%d) ===\n", len(moods))
	for _, entry := range moods {
		line := fmt.Sprintf("- %s: %s", entry.Date, entry.Mood)
		if entry.Note != "" {
			line += " - " + entry.Note
		}
		builder.WriteString(line + "\n")
	}
	builder.WriteString("\n")

	builder.WriteString("=== Hydration Data ===\n")
	fmt.Fprintf(&builder, "Daily Goal: %d glasses\n", hydration.Goal)
	fmt.Fprintf(&builder, "Reminder Interval: %d minutes\n\n", hydration.ReminderInterval)

	builder.WriteString("=== End of Export ===\n")
	return builder.String()
}

func valueOrNA(user *models.User, pick func(*models.User) string) string {
	if user == nil {
		return "N/A"
	}
	value := strings.TrimSpace(pick(user))
	if value == "" {
		return "N/A"
	}
	return value
}
