package db

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot names of the persisted collections. Each slot holds one
// JSON-encoded value that is read and replaced wholesale.
const (
	slotUser                 = "user"
	slotHabits               = "habits"
	slotHabitEntries         = "habit_entries"
	slotMoodEntries          = "mood_entries"
	slotHydrationData        = "hydration_data"
	slotAchievements         = "achievements"
	slotDailyQuote           = "daily_quote"
	slotNotificationSettings = "notification_settings"
	slotUserPreferences      = "user_preferences"
)

type record struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (record) TableName() string {
	return "records"
}

// RecordStore persists named JSON-serialized collections. A slot that is
// missing, or whose stored text no longer decodes, reads as its default
// value; decode failures are collapsed by policy, never surfaced.
type RecordStore struct {
	database *gorm.DB
}

func NewRecordStore(database *gorm.DB) *RecordStore {
	return &RecordStore{database: database}
}

// Load decodes the slot into target. It reports false when the slot is
// absent or corrupt, leaving target untouched; the caller substitutes
// its documented default. Only database failures return an error.
func (store *RecordStore) Load(key string, target any) (bool, error) {
	var row record
	result := store.database.Where("key = ?", key).Limit(1).Find(&row)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	if err := json.Unmarshal([]byte(row.Value), target); err != nil {
		return false, nil
	}
	return true, nil
}

// Save encodes value and replaces the slot's previous contents.
func (store *RecordStore) Save(key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}

	row := record{Key: key, Value: string(encoded), UpdatedAt: time.Now()}
	return store.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}

func (store *RecordStore) Delete(key string) error {
	return store.database.Where("key = ?", key).Delete(&record{}).Error
}

// Clear removes every slot. Used by the reset-all-data flow.
func (store *RecordStore) Clear() error {
	return store.database.Exec(`DELETE FROM records`).Error
}
