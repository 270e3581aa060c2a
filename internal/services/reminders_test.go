package services

import (
	"testing"
	"time"
)

func TestInQuietHours(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		hour  int
		start int
		end   int
		want  bool
	}{
		{"inside simple window", 10, 9, 17, true},
		{"before simple window", 8, 9, 17, false},
		{"end hour is outside", 17, 9, 17, false},
		{"wrapping window late evening", 23, 22, 8, true},
		{"wrapping window early morning", 3, 22, 8, true},
		{"wrapping window midday", 12, 22, 8, false},
		{"equal bounds disable the window", 22, 22, 22, false},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := InQuietHours(test.hour, test.start, test.end)
			if got != test.want {
				t.Fatalf("InQuietHours(%d, %d, %d) = %v, want %v",
					test.hour, test.start, test.end, got, test.want)
			}
		})
	}
}

func TestShouldSendThrottlesByInterval(t *testing.T) {
	t.Parallel()

	service := &ReminderService{lastSent: make(map[string]time.Time)}
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	if !service.shouldSend("hydration", time.Hour, base) {
		t.Fatal("expected the first reminder to pass")
	}
	if service.shouldSend("hydration", time.Hour, base.Add(30*time.Minute)) {
		t.Fatal("expected a reminder inside the interval to be throttled")
	}
	if !service.shouldSend("hydration", time.Hour, base.Add(time.Hour)) {
		t.Fatal("expected a reminder after the interval to pass")
	}
	if !service.shouldSend("mood", time.Hour, base.Add(5*time.Minute)) {
		t.Fatal("expected different reminder kinds to throttle independently")
	}
}
