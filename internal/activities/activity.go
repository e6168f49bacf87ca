package activities

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/fitness"
)

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrInvalidActivity  = errors.New("invalid activity")
)

// DefaultWeightKg is used for calorie estimates when the profile has no weight.
const DefaultWeightKg = 70.0

type Activity struct {
	ID              int                  `json:"id"`
	UserID          int                  `json:"user_id"`
	ActivityType    fitness.ActivityType `json:"activity_type"`
	DurationMinutes int                  `json:"duration_minutes"`
	DistanceKm      *float64             `json:"distance_km"`
	CaloriesBurned  int                  `json:"calories_burned"`
	Notes           string               `json:"notes"`
	CreatedAt       time.Time            `json:"created_at"`
}

// Normalize upper-cases the activity type and checks the field ranges.
func (a *Activity) Normalize() error {
	activityType, ok := fitness.ParseActivityType(string(a.ActivityType))
	if !ok {
		return fmt.Errorf("%w: unknown activity type [%s]", ErrInvalidActivity, a.ActivityType)
	}
	a.ActivityType = activityType

	if a.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration_minutes must be positive", ErrInvalidActivity)
	}
	if a.DistanceKm != nil && *a.DistanceKm < 0 {
		return fmt.Errorf("%w: distance_km must not be negative", ErrInvalidActivity)
	}
	if a.CaloriesBurned < 0 {
		return fmt.Errorf("%w: calories_burned must not be negative", ErrInvalidActivity)
	}
	return nil
}
