package water

import (
	"errors"
	"time"

	"github.com/2beens/fittrack/internal/fitness"
	"github.com/2beens/fittrack/pkg"
)

var ErrInvalidIntake = errors.New("invalid water intake")

const (
	GlassML         = 250
	TargetGlasses   = 8
	DefaultTargetML = 2500
)

type Intake struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Milliliters int       `json:"milliliters"`
	Notes       string    `json:"notes"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// Summary describes a day of water intake in glasses.
type Summary struct {
	TotalML       int     `json:"total_ml"`
	Glasses       int     `json:"water_glasses"`
	TargetGlasses int     `json:"water_target_glasses"`
	Percentage    float64 `json:"percentage"`
}

func Summarize(totalML int) Summary {
	glasses := totalML / GlassML
	return Summary{
		TotalML:       totalML,
		Glasses:       glasses,
		TargetGlasses: TargetGlasses,
		Percentage:    fitness.Round1(float64(glasses) / TargetGlasses * 100),
	}
}

// TargetML is the daily target for the profile values, DefaultTargetML when
// it cannot be computed.
func TargetML(weightKg *float64, level fitness.ActivityLevel) int {
	if weightKg == nil {
		return DefaultTargetML
	}
	if target, ok := fitness.WaterTargetML(*weightKg, level); ok && target > 0 {
		return target
	}
	return DefaultTargetML
}

// DailyTotals sums intakes per calendar date in loc, keyed by pkg.DateLayout.
func DailyTotals(intakes []Intake, loc *time.Location) map[string]int {
	totals := make(map[string]int)
	for _, in := range intakes {
		totals[in.RecordedAt.In(loc).Format(pkg.DateLayout)] += in.Milliliters
	}
	return totals
}
