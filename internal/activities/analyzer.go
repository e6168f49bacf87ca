package activities

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/fitness"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

type activitiesLister interface {
	ListAll(ctx context.Context, params Params) ([]Activity, error)
}

type DayCalories struct {
	Date     string `json:"date"`
	Calories int    `json:"calories"`
}

type TypeBreakdown struct {
	ActivityType    fitness.ActivityType `json:"activity_type"`
	Count           int                  `json:"count"`
	Calories        int                  `json:"calories"`
	DurationMinutes int                  `json:"duration_minutes"`
}

type Analyzer struct {
	repo activitiesLister
}

func NewAnalyzer(repo activitiesLister) *Analyzer {
	return &Analyzer{
		repo: repo,
	}
}

// DailyCalories returns the calories of the last `days` days ending with
// today's date, oldest first. Days without activities are zero.
// Days are calendar days in today's location.
func (a *Analyzer) DailyCalories(ctx context.Context, userID int, today time.Time, days int) (_ []DayCalories, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.activities.daily-calories")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("days", days))

	if days <= 0 {
		return []DayCalories{}, nil
	}

	_, to := pkg.DayBounds(today)
	from := pkg.StartOfDay(today).AddDate(0, 0, -(days - 1))
	activities, err := a.repo.ListAll(ctx, Params{
		UserID: userID,
		From:   &from,
		To:     &to,
	})
	if err != nil {
		return nil, err
	}

	return DailyCaloriesSeries(activities, from, days), nil
}

// Breakdown groups all of the user's activities by type.
func (a *Analyzer) Breakdown(ctx context.Context, userID int) (_ []TypeBreakdown, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.activities.breakdown")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	activities, err := a.repo.ListAll(ctx, Params{UserID: userID})
	if err != nil {
		return nil, err
	}
	return BreakdownByType(activities), nil
}

// DailyCaloriesSeries buckets activities into `days` consecutive calendar days
// starting at from, in from's location.
func DailyCaloriesSeries(activities []Activity, from time.Time, days int) []DayCalories {
	loc := from.Location()
	series := make([]DayCalories, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i).Format(pkg.DateLayout)
		series[i] = DayCalories{Date: date}
		index[date] = i
	}
	for _, act := range activities {
		if i, ok := index[act.CreatedAt.In(loc).Format(pkg.DateLayout)]; ok {
			series[i].Calories += act.CaloriesBurned
		}
	}
	return series
}

// BreakdownByType lists only the types present, in the fixed type order.
func BreakdownByType(activities []Activity) []TypeBreakdown {
	byType := make(map[fitness.ActivityType]*TypeBreakdown)
	for _, act := range activities {
		tb, ok := byType[act.ActivityType]
		if !ok {
			tb = &TypeBreakdown{ActivityType: act.ActivityType}
			byType[act.ActivityType] = tb
		}
		tb.Count++
		tb.Calories += act.CaloriesBurned
		tb.DurationMinutes += act.DurationMinutes
	}

	breakdown := make([]TypeBreakdown, 0, len(byType))
	for _, at := range fitness.ActivityTypes {
		if tb, ok := byType[at]; ok {
			breakdown = append(breakdown, *tb)
		}
	}
	return breakdown
}

func Summarize(activities []Activity) Totals {
	var totals Totals
	for _, act := range activities {
		totals.Count++
		totals.Calories += act.CaloriesBurned
		totals.DurationMinutes += act.DurationMinutes
	}
	return totals
}

// StartHours returns the sorted distinct local hours of the given start times.
func StartHours(starts []time.Time, loc *time.Location) []int {
	var seen [24]bool
	for _, st := range starts {
		seen[st.In(loc).Hour()] = true
	}
	hours := make([]int, 0)
	for h, ok := range seen {
		if ok {
			hours = append(hours, h)
		}
	}
	return hours
}
