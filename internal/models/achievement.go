package models

import "time"

const (
	AchievementTypeStreak      = "streak"
	AchievementTypeCompletion  = "completion"
	AchievementTypeConsistency = "consistency"
	AchievementTypeMilestone   = "milestone"
	AchievementTypeSpecial     = "special"
)

const (
	AchievementCategoryHabits    = "habits"
	AchievementCategoryMood      = "mood"
	AchievementCategoryHydration = "hydration"
	AchievementCategoryGeneral   = "general"
)

const (
	AchievementFirstHabit  = "first_habit"
	AchievementWeekStreak  = "week_streak"
	AchievementMonthStreak = "month_streak"
	AchievementMoodTracker = "mood_tracker"
	AchievementHydration   = "hydration_hero"
	AchievementHundred     = "habit_100"
)

// Achievement is a one-way unlockable milestone. Once IsUnlocked is set
// it is never cleared, and UnlockedAt keeps the first unlock time.
type Achievement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Type        string     `json:"type"`
	Requirement int        `json:"requirement"`
	IsUnlocked  bool       `json:"isUnlocked"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
	Category    string     `json:"category"`
}

func DefaultAchievements() []Achievement {
	return []Achievement{
		{ID: AchievementFirstHabit, Title: "First Steps", Description: "Complete your first habit", Icon: "🎯", Type: AchievementTypeCompletion, Requirement: 1, Category: AchievementCategoryHabits},
		{ID: AchievementWeekStreak, Title: "Week Warrior", Description: "Complete habits for 7 days straight", Icon: "🔥", Type: AchievementTypeStreak, Requirement: 7, Category: AchievementCategoryHabits},
		{ID: AchievementMonthStreak, Title: "Monthly Master", Description: "Complete habits for 30 days straight", Icon: "👑", Type: AchievementTypeStreak, Requirement: 30, Category: AchievementCategoryHabits},
		{ID: AchievementMoodTracker, Title: "Mood Master", Description: "Log your mood for 7 days", Icon: "😊", Type: AchievementTypeConsistency, Requirement: 7, Category: AchievementCategoryMood},
		{ID: AchievementHydration, Title: "Hydration Hero", Description: "Meet your daily hydration goal for 7 days", Icon: "💧", Type: AchievementTypeConsistency, Requirement: 7, Category: AchievementCategoryHydration},
		{ID: AchievementHundred, Title: "Century Club", Description: "Complete 100 habits total", Icon: "💯", Type: AchievementTypeMilestone, Requirement: 100, Category: AchievementCategoryHabits},
	}
}
