package services

import (
	"errors"
	"testing"
	"time"

	"github.com/habitmate/habitmate/internal/models"
)

type stubHydrationRepository struct {
	data models.HydrationData
}

func (stub *stubHydrationRepository) Load() (models.HydrationData, error) {
	return stub.data, nil
}

func (stub *stubHydrationRepository) Save(data models.HydrationData) error {
	stub.data = data
	return nil
}

func TestAddGlassIncrementsAndStamps(t *testing.T) {
	t.Parallel()

	repo := &stubHydrationRepository{data: models.DefaultHydrationData()}
	service := NewHydrationService(repo)

	now := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	data, err := service.AddGlass(now)
	if err != nil {
		t.Fatalf("add glass: %v", err)
	}
	if data.GlassesToday != 1 {
		t.Fatalf("expected 1 glass, got %d", data.GlassesToday)
	}
	if !data.LastGlassTime.Equal(now) {
		t.Fatalf("expected last glass time %v, got %v", now, data.LastGlassTime)
	}
}

func TestAddIntakeRoundsUpToWholeGlasses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		amountMl    int
		intakeMl    int
		wantGlasses int
	}{
		{"exact glasses", 2000, 250, 8},
		{"partial glass rounds up", 300, 250, 2},
		{"below one glass", 100, 250, 1},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			data := models.DefaultHydrationData()
			data.CustomIntakeMl = test.intakeMl
			repo := &stubHydrationRepository{data: data}
			service := NewHydrationService(repo)

			updated, err := service.AddIntake(test.amountMl, time.Now())
			if err != nil {
				t.Fatalf("add intake: %v", err)
			}
			if updated.GlassesToday != test.wantGlasses {
				t.Fatalf("expected %d glasses, got %d", test.wantGlasses, updated.GlassesToday)
			}
		})
	}
}

func TestAddIntakeRejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()

	service := NewHydrationService(&stubHydrationRepository{data: models.DefaultHydrationData()})
	if _, err := service.AddIntake(0, time.Now()); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestHydrationSettersValidate(t *testing.T) {
	t.Parallel()

	service := NewHydrationService(&stubHydrationRepository{data: models.DefaultHydrationData()})

	if _, err := service.SetGoal(0); !errors.Is(err, ErrInvalidGoal) {
		t.Fatalf("expected ErrInvalidGoal, got %v", err)
	}
	if _, err := service.SetReminderInterval(-5); !errors.Is(err, ErrInvalidInterval) {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}
	if _, err := service.SetCustomIntake(0); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	data, err := service.SetGoal(10)
	if err != nil {
		t.Fatalf("set goal: %v", err)
	}
	if data.Goal != 10 {
		t.Fatalf("expected goal 10, got %d", data.Goal)
	}
}

func TestResetDailyKeepsConfiguration(t *testing.T) {
	t.Parallel()

	data := models.DefaultHydrationData()
	data.GlassesToday = 6
	data.Goal = 12
	repo := &stubHydrationRepository{data: data}
	service := NewHydrationService(repo)

	updated, err := service.ResetDaily()
	if err != nil {
		t.Fatalf("reset daily: %v", err)
	}
	if updated.GlassesToday != 0 {
		t.Fatalf("expected glasses reset, got %d", updated.GlassesToday)
	}
	if updated.Goal != 12 {
		t.Fatalf("expected goal kept, got %d", updated.Goal)
	}
}
