package services

import (
	"errors"
	"testing"

	"github.com/habitmate/habitmate/internal/models"
)

type stubSettingsStore struct {
	settings    models.NotificationSettings
	preferences models.UserPreferences
	wiped       bool
}

func (stub *stubSettingsStore) LoadNotificationSettings() (models.NotificationSettings, error) {
	return stub.settings, nil
}

func (stub *stubSettingsStore) SaveNotificationSettings(settings models.NotificationSettings) error {
	stub.settings = settings
	return nil
}

func (stub *stubSettingsStore) LoadPreferences() (models.UserPreferences, error) {
	return stub.preferences, nil
}

func (stub *stubSettingsStore) SavePreferences(preferences models.UserPreferences) error {
	stub.preferences = preferences
	return nil
}

func (stub *stubSettingsStore) Clear() error {
	stub.wiped = true
	return nil
}

func TestUpdateNotificationSettingsValidatesQuietHours(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		start   int
		end     int
		wantErr error
	}{
		{"valid window", 22, 8, nil},
		{"start too high", 24, 8, ErrInvalidQuietHours},
		{"end negative", 22, -1, ErrInvalidQuietHours},
		{"disabled window", 0, 0, nil},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			store := &stubSettingsStore{settings: models.DefaultNotificationSettings()}
			service := NewSettingsService(store, store, store)

			settings := models.DefaultNotificationSettings()
			settings.QuietHoursStart = test.start
			settings.QuietHoursEnd = test.end

			err := service.UpdateNotificationSettings(settings)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected %v, got %v", test.wantErr, err)
			}
			if test.wantErr == nil && store.settings.QuietHoursStart != test.start {
				t.Fatalf("expected settings persisted, got %#v", store.settings)
			}
		})
	}
}

func TestUpdatePreferencesValidates(t *testing.T) {
	t.Parallel()

	store := &stubSettingsStore{preferences: models.DefaultUserPreferences()}
	service := NewSettingsService(store, store, store)

	bad := models.DefaultUserPreferences()
	bad.HydrationGoal = 0
	if err := service.UpdatePreferences(bad); !errors.Is(err, ErrInvalidGoal) {
		t.Fatalf("expected ErrInvalidGoal, got %v", err)
	}

	bad = models.DefaultUserPreferences()
	bad.ReminderInterval = 0
	if err := service.UpdatePreferences(bad); !errors.Is(err, ErrInvalidInterval) {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}

	good := models.DefaultUserPreferences()
	good.HydrationGoal = 12
	if err := service.UpdatePreferences(good); err != nil {
		t.Fatalf("update preferences: %v", err)
	}
	if store.preferences.HydrationGoal != 12 {
		t.Fatalf("expected preferences persisted, got %#v", store.preferences)
	}
}

func TestResetAllDataWipesStore(t *testing.T) {
	t.Parallel()

	store := &stubSettingsStore{}
	service := NewSettingsService(store, store, store)

	if err := service.ResetAllData(); err != nil {
		t.Fatalf("reset all data: %v", err)
	}
	if !store.wiped {
		t.Fatal("expected the store to be wiped")
	}
}
