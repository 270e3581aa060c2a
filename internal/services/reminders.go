package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/habitmate/habitmate/internal/models"
)

const moodCheckInInterval = 6 * time.Hour

type ReminderSettingsReader interface {
	LoadNotificationSettings() (models.NotificationSettings, error)
}

type ReminderHydrationReader interface {
	Load() (models.HydrationData, error)
}

type ReminderPreferencesReader interface {
	LoadPreferences() (models.UserPreferences, error)
}

// ReminderService posts hydration and mood check-in reminders through a
// Telegram bot on a fixed tick. It only reads the stored settings; the
// tracked collections are never mutated from here.
type ReminderService struct {
	settings    ReminderSettingsReader
	hydration   ReminderHydrationReader
	preferences ReminderPreferencesReader
	botToken    string
	chatID      string
	enabled     bool
	location    *time.Location
	client      *http.Client
	mu          sync.Mutex
	lastSent    map[string]time.Time
}

func NewReminderService(
	settings ReminderSettingsReader,
	hydration ReminderHydrationReader,
	preferences ReminderPreferencesReader,
	location *time.Location,
) *ReminderService {
	botToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatID := os.Getenv("TELEGRAM_CHAT_ID")

	if location == nil {
		location = time.Local
	}

	return &ReminderService{
		settings:    settings,
		hydration:   hydration,
		preferences: preferences,
		botToken:    botToken,
		chatID:      chatID,
		enabled:     botToken != "" && chatID != "",
		location:    location,
		client: &http.Client{
			Timeout: 8 * time.Second,
		},
		lastSent: make(map[string]time.Time),
	}
}

func (service *ReminderService) Start(ctx context.Context) {
	if !service.enabled {
		return
	}

	ticker := time.NewTicker(time.Minute)
	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				service.run(ctx)
			}
		}
	}()
}

func (service *ReminderService) run(ctx context.Context) {
	preferences, err := service.preferences.LoadPreferences()
	if err != nil {
		log.Printf("reminders: load preferences failed: %v", err)
		return
	}
	if !preferences.NotificationsEnabled {
		return
	}

	settings, err := service.settings.LoadNotificationSettings()
	if err != nil {
		log.Printf("reminders: load notification settings failed: %v", err)
		return
	}

	now := time.Now().In(service.location)
	if InQuietHours(now.Hour(), settings.QuietHoursStart, settings.QuietHoursEnd) {
		return
	}

	if settings.HydrationReminders {
		service.maybeSendHydrationReminder(ctx, now)
	}
	if settings.MoodCheckIns {
		service.maybeSend(ctx, "mood", moodCheckInInterval, now,
			"HabitMate: how are you feeling? Take a moment to log your mood.")
	}
}

func (service *ReminderService) maybeSendHydrationReminder(ctx context.Context, now time.Time) {
	data, err := service.hydration.Load()
	if err != nil {
		log.Printf("reminders: load hydration data failed: %v", err)
		return
	}
	if data.GoalReached() {
		return
	}

	interval := time.Duration(data.ReminderInterval) * time.Minute
	if interval <= 0 {
		interval = models.DefaultReminderInterval * time.Minute
	}

	message := fmt.Sprintf("HabitMate: time for a glass of water! %d of %d glasses today.",
		data.GlassesToday, data.Goal)
	service.maybeSend(ctx, "hydration", interval, now, message)
}

func (service *ReminderService) maybeSend(ctx context.Context, kind string, interval time.Duration, now time.Time, message string) {
	if !service.shouldSend(kind, interval, now) {
		return
	}
	if err := service.sendTelegram(ctx, message); err != nil {
		log.Printf("reminders: send %s reminder failed: %v", kind, err)
	}
}

func (service *ReminderService) shouldSend(kind string, interval time.Duration, now time.Time) bool {
	service.mu.Lock()
	defer service.mu.Unlock()

	if sentAt, ok := service.lastSent[kind]; ok && now.Sub(sentAt) < interval {
		return false
	}
	service.lastSent[kind] = now
	return true
}

// InQuietHours reports whether hour falls inside the [start, end)
// window, wrapping past midnight when start > end. Equal bounds mean
// quiet hours are off.
func InQuietHours(hour int, start int, end int) bool {
	if start == end {
		return false
	}
	if start < end {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}

func (service *ReminderService) sendTelegram(ctx context.Context, message string) error {
	values := url.Values{}
	values.Set("chat_id", service.chatID)
	values.Set("text", message)

	endpoint := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", service.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := service.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
