package biometrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/fitness"
)

var ErrInvalidLog = errors.New("invalid biometric log")

type Log struct {
	ID                   int       `json:"id"`
	UserID               int       `json:"user_id"`
	WeightKg             float64   `json:"weight_kg"`
	BodyFatPercentage    *float64  `json:"body_fat_percentage"`
	MuscleMassKg         *float64  `json:"muscle_mass_kg"`
	WaistCircumferenceCm *float64  `json:"waist_circumference_cm"`
	Notes                string    `json:"notes"`
	RecordedAt           time.Time `json:"recorded_at"`
}

func (l *Log) Validate() error {
	if l.WeightKg <= 0 {
		return fmt.Errorf("%w: weight_kg must be positive", ErrInvalidLog)
	}
	if l.BodyFatPercentage != nil && (*l.BodyFatPercentage < 0 || *l.BodyFatPercentage > 100) {
		return fmt.Errorf("%w: body_fat_percentage must be within [0, 100]", ErrInvalidLog)
	}
	if l.MuscleMassKg != nil && *l.MuscleMassKg < 0 {
		return fmt.Errorf("%w: muscle_mass_kg must not be negative", ErrInvalidLog)
	}
	if l.WaistCircumferenceCm != nil && *l.WaistCircumferenceCm < 0 {
		return fmt.Errorf("%w: waist_circumference_cm must not be negative", ErrInvalidLog)
	}
	return nil
}

// LogWithBMI is a log as returned to clients, BMI is derived from the profile height.
type LogWithBMI struct {
	Log
	BMI *float64 `json:"bmi"`
}

func WithBMI(l Log, heightCm *float64) LogWithBMI {
	res := LogWithBMI{Log: l}
	if heightCm == nil {
		return res
	}
	if bmi, ok := fitness.BMI(l.WeightKg, *heightCm); ok {
		res.BMI = &bmi
	}
	return res
}

// WeightPoint is one point of the weight trend.
type WeightPoint struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weight_kg"`
}
