package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/achievements"
	"github.com/2beens/fittrack/internal/activities"
	"github.com/2beens/fittrack/internal/biometrics"
	"github.com/2beens/fittrack/internal/fitness"
	"github.com/2beens/fittrack/internal/goals"
	"github.com/2beens/fittrack/internal/meals"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/water"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=dashboard_test

type profileGetter interface {
	Get(ctx context.Context, userID int) (*profile.Profile, error)
}

type weightSource interface {
	Latest(ctx context.Context, userID int) (*biometrics.Log, error)
}

type weightTrender interface {
	WeightTrend(ctx context.Context, userID int, from time.Time) ([]biometrics.WeightPoint, error)
}

type activityStats interface {
	Totals(ctx context.Context, params activities.Params) (activities.Totals, error)
	List(ctx context.Context, params activities.ListParams) ([]activities.Activity, int, error)
}

type activityAnalyzer interface {
	DailyCalories(ctx context.Context, userID int, today time.Time, days int) ([]activities.DayCalories, error)
	Breakdown(ctx context.Context, userID int) ([]activities.TypeBreakdown, error)
}

type waterTotals interface {
	Total(ctx context.Context, userID int, from, to time.Time) (int, error)
}

type activeGoals interface {
	Active(ctx context.Context, userID, limit int) ([]goals.View, error)
}

type mealsOfDay interface {
	Today(ctx context.Context, userID int, now time.Time) (*meals.Day, error)
}

type Deps struct {
	Profiles   profileGetter
	Weights    weightSource
	WeightLog  weightTrender
	Activities activityStats
	Analyzer   activityAnalyzer
	Water      waterTotals
	Goals      activeGoals
	Meals      mealsOfDay
}

type Service struct {
	profiles   profileGetter
	weights    weightSource
	weightLog  weightTrender
	activities activityStats
	analyzer   activityAnalyzer
	water      waterTotals
	goals      activeGoals
	meals      mealsOfDay
}

func NewService(deps Deps) *Service {
	return &Service{
		profiles:   deps.Profiles,
		weights:    deps.Weights,
		weightLog:  deps.WeightLog,
		activities: deps.Activities,
		analyzer:   deps.Analyzer,
		water:      deps.Water,
		goals:      deps.Goals,
		meals:      deps.Meals,
	}
}

// profileOf returns an empty profile for users who never saved one.
func (s *Service) profileOf(ctx context.Context, userID int) (*profile.Profile, error) {
	p, err := s.profiles.Get(ctx, userID)
	if errors.Is(err, profile.ErrProfileNotFound) {
		return &profile.Profile{UserID: userID, ActivityLevel: fitness.ActivityLevelSedentary}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (s *Service) totals(ctx context.Context, userID int, from, to *time.Time) (activities.Totals, error) {
	return s.activities.Totals(ctx, activities.Params{
		UserID: userID,
		From:   from,
		To:     to,
	})
}

// Dashboard builds the overview of now's day, with days evaluated in now's location.
func (s *Service) Dashboard(ctx context.Context, userID int, now time.Time, goal fitness.NutritionGoal) (_ *Dashboard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.dashboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	p, err := s.profileOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		Metrics:            fitness.Compute(p.Snapshot(), goal, now),
		Goal:               goal,
		CurrentWeight:      p.WeightKg,
		WaterTarget:        water.TargetML(p.WeightKg, p.ActivityLevel),
		WaterTargetGlasses: water.TargetGlasses,
	}

	latest, err := s.weights.Latest(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("latest weight: %w", err)
	}
	if latest != nil {
		d.CurrentWeight = &latest.WeightKg
	}

	todayStart, tomorrow := pkg.DayBounds(now)
	yesterday := todayStart.AddDate(0, 0, -1)

	today, err := s.totals(ctx, userID, &todayStart, &tomorrow)
	if err != nil {
		return nil, err
	}
	d.TotalCaloriesToday = today.Calories
	d.TodayActivitiesCount = today.Count

	if d.TotalWaterToday, err = s.water.Total(ctx, userID, todayStart, tomorrow); err != nil {
		return nil, fmt.Errorf("water today: %w", err)
	}
	d.WaterPercentage = fitness.Round1(float64(d.TotalWaterToday) / float64(d.WaterTarget) * 100)
	d.WaterGlasses = water.Summarize(d.TotalWaterToday).Glasses

	if d.RecentActivities, _, err = s.activities.List(ctx, activities.ListParams{
		UserID: userID,
		Page:   1,
		Size:   recentActivitiesLimit,
	}); err != nil {
		return nil, fmt.Errorf("recent activities: %w", err)
	}

	if d.ActiveGoals, err = s.goals.Active(ctx, userID, activeGoalsLimit); err != nil {
		return nil, err
	}

	weekAgo := now.AddDate(0, 0, -weeklyDays)
	week, err := s.totals(ctx, userID, &weekAgo, nil)
	if err != nil {
		return nil, err
	}
	d.WeeklyStats = WeeklyStats{
		TotalWorkouts: week.Count,
		TotalCalories: week.Calories,
		TotalDuration: week.DurationMinutes,
	}

	monthStart := todayStart.AddDate(0, 0, 1-todayStart.Day())
	month, err := s.totals(ctx, userID, &monthStart, nil)
	if err != nil {
		return nil, err
	}
	d.MonthlyWorkoutsCount = month.Count

	day, err := s.meals.Today(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	d.Nutrition = day.Totals

	waterYesterday, err := s.water.Total(ctx, userID, yesterday, todayStart)
	if err != nil {
		return nil, fmt.Errorf("water yesterday: %w", err)
	}
	activitiesYesterday, err := s.totals(ctx, userID, &yesterday, &todayStart)
	if err != nil {
		return nil, err
	}
	d.DailyTip = achievements.DailyTip(waterYesterday, activitiesYesterday.Calories)

	return d, nil
}

// Progress returns the chart data: the weight trend of the last 30 days, the
// breakdown by activity type and the calories of the last 7 days.
func (s *Service) Progress(ctx context.Context, userID int, now time.Time) (_ *Progress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	trend, err := s.weightLog.WeightTrend(ctx, userID, now.AddDate(0, 0, -weightTrendDays))
	if err != nil {
		return nil, err
	}
	if len(trend) == 0 {
		p, err := s.profileOf(ctx, userID)
		if err != nil {
			return nil, err
		}
		if p.WeightKg != nil {
			trend = append(trend, biometrics.WeightPoint{
				Date:     now.Format(pkg.DateLayout),
				WeightKg: *p.WeightKg,
			})
		}
	}

	breakdown, err := s.analyzer.Breakdown(ctx, userID)
	if err != nil {
		return nil, err
	}

	daily, err := s.analyzer.DailyCalories(ctx, userID, now, caloriesSeriesDays)
	if err != nil {
		return nil, err
	}

	all, err := s.totals(ctx, userID, nil, nil)
	if err != nil {
		return nil, err
	}
	weekAgo := now.AddDate(0, 0, -weeklyDays)
	week, err := s.totals(ctx, userID, &weekAgo, nil)
	if err != nil {
		return nil, err
	}

	return &Progress{
		WeightTrend:       trend,
		ActivityBreakdown: breakdown,
		DailyCalories:     daily,
		Stats: ProgressStats{
			TotalActivities: all.Count,
			TotalCalories:   all.Calories,
			TotalDuration:   all.DurationMinutes,
			WeekCalories:    week.Calories,
			WeightChange:    WeightChange(trend),
		},
	}, nil
}
