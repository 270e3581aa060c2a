package services

import (
	"testing"
	"time"
)

func TestDateDaysAgo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		days int
		from string
		want string
	}{
		{"zero days", 0, "2026-08-30", "2026-08-30"},
		{"one day", 1, "2026-08-30", "2026-08-29"},
		{"crosses month boundary", 30, "2026-08-30", "2026-07-31"},
		{"crosses year boundary", 60, "2026-01-15", "2025-11-16"},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := DateDaysAgo(test.days, test.from, time.UTC)
			if got != test.want {
				t.Fatalf("DateDaysAgo(%d, %q) = %q, want %q", test.days, test.from, got, test.want)
			}
		})
	}
}

func TestDateDaysAgoFallsBackToTodayOnBadInput(t *testing.T) {
	t.Parallel()

	want := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	got := DateDaysAgo(1, "not-a-date", time.UTC)
	if got != want {
		t.Fatalf("expected fallback from today, got %q want %q", got, want)
	}
}

func TestParseDateRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	if _, err := ParseDate("30/08/2026", time.UTC); err == nil {
		t.Fatal("expected an error for a malformed date")
	}

	parsed, err := ParseDate("2026-08-30", time.UTC)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if FormatDate(parsed) != "2026-08-30" {
		t.Fatalf("round trip mismatch: %q", FormatDate(parsed))
	}
}

func TestDateAtLocationTruncatesToMidnight(t *testing.T) {
	t.Parallel()

	value := time.Date(2026, 8, 30, 18, 45, 12, 0, time.UTC)
	got := DateAtLocation(value, time.UTC)
	want := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("DateAtLocation = %v, want %v", got, want)
	}
}
