package services

import (
	"errors"
	"math"
	"time"

	"github.com/habitmate/habitmate/internal/models"
)

var (
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidGoal     = errors.New("goal must be positive")
	ErrInvalidInterval = errors.New("interval must be positive")
)

type HydrationDataRepository interface {
	Load() (models.HydrationData, error)
	Save(data models.HydrationData) error
}

type HydrationService struct {
	hydration HydrationDataRepository
}

func NewHydrationService(hydration HydrationDataRepository) *HydrationService {
	return &HydrationService{hydration: hydration}
}

func (service *HydrationService) Current() (models.HydrationData, error) {
	return service.hydration.Load()
}

func (service *HydrationService) AddGlass(now time.Time) (models.HydrationData, error) {
	data, err := service.hydration.Load()
	if err != nil {
		return models.HydrationData{}, err
	}
	data.GlassesToday++
	data.LastGlassTime = now
	return data, service.hydration.Save(data)
}

// AddIntake converts a millilitre amount into glasses, rounding up to
// whole glasses of CustomIntakeMl each.
func (service *HydrationService) AddIntake(amountMl int, now time.Time) (models.HydrationData, error) {
	if amountMl <= 0 {
		return models.HydrationData{}, ErrInvalidAmount
	}

	data, err := service.hydration.Load()
	if err != nil {
		return models.HydrationData{}, err
	}

	glasses := int(math.Ceil(float64(amountMl) / float64(data.CustomIntakeMl)))
	data.GlassesToday += glasses
	data.LastGlassTime = now
	return data, service.hydration.Save(data)
}

func (service *HydrationService) SetGoal(goal int) (models.HydrationData, error) {
	if goal <= 0 {
		return models.HydrationData{}, ErrInvalidGoal
	}
	data, err := service.hydration.Load()
	if err != nil {
		return models.HydrationData{}, err
	}
	data.Goal = goal
	return data, service.hydration.Save(data)
}

func (service *HydrationService) SetReminderInterval(minutes int) (models.HydrationData, error) {
	if minutes <= 0 {
		return models.HydrationData{}, ErrInvalidInterval
	}
	data, err := service.hydration.Load()
	if err != nil {
		return models.HydrationData{}, err
	}
	data.ReminderInterval = minutes
	return data, service.hydration.Save(data)
}

func (service *HydrationService) SetCustomIntake(amountMl int) (models.HydrationData, error) {
	if amountMl <= 0 {
		return models.HydrationData{}, ErrInvalidAmount
	}
	data, err := service.hydration.Load()
	if err != nil {
		return models.HydrationData{}, err
	}
	data.CustomIntakeMl = amountMl
	return data, service.hydration.Save(data)
}

// ResetDaily zeroes today's glass count. It is an explicit trigger;
// nothing rolls the counter over automatically at midnight.
func (service *HydrationService) ResetDaily() (models.HydrationData, error) {
	data, err := service.hydration.Load()
	if err != nil {
		return models.HydrationData{}, err
	}
	data.GlassesToday = 0
	return data, service.hydration.Save(data)
}
