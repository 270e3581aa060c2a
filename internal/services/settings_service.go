package services

import (
	"errors"

	"github.com/habitmate/habitmate/internal/models"
)

var ErrInvalidQuietHours = errors.New("quiet hours must be within 0-23")

type SettingsStore interface {
	LoadNotificationSettings() (models.NotificationSettings, error)
	SaveNotificationSettings(settings models.NotificationSettings) error
}

type PreferencesStore interface {
	LoadPreferences() (models.UserPreferences, error)
	SavePreferences(preferences models.UserPreferences) error
}

type DataWiper interface {
	Clear() error
}

type SettingsService struct {
	settings    SettingsStore
	preferences PreferencesStore
	wiper       DataWiper
}

func NewSettingsService(settings SettingsStore, preferences PreferencesStore, wiper DataWiper) *SettingsService {
	return &SettingsService{settings: settings, preferences: preferences, wiper: wiper}
}

func (service *SettingsService) NotificationSettings() (models.NotificationSettings, error) {
	return service.settings.LoadNotificationSettings()
}

func (service *SettingsService) UpdateNotificationSettings(settings models.NotificationSettings) error {
	if settings.QuietHoursStart < 0 || settings.QuietHoursStart > 23 ||
		settings.QuietHoursEnd < 0 || settings.QuietHoursEnd > 23 {
		return ErrInvalidQuietHours
	}
	return service.settings.SaveNotificationSettings(settings)
}

func (service *SettingsService) Preferences() (models.UserPreferences, error) {
	return service.preferences.LoadPreferences()
}

func (service *SettingsService) UpdatePreferences(preferences models.UserPreferences) error {
	if preferences.HydrationGoal <= 0 {
		return ErrInvalidGoal
	}
	if preferences.ReminderInterval <= 0 {
		return ErrInvalidInterval
	}
	return service.preferences.SavePreferences(preferences)
}

// ResetAllData wipes every stored slot, the user included. The caller
// is responsible for ending the session afterwards.
func (service *SettingsService) ResetAllData() error {
	return service.wiper.Clear()
}
