package badges

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/achievements"
	"github.com/2beens/fittrack/internal/activities"
	"github.com/2beens/fittrack/internal/events"
	"github.com/2beens/fittrack/internal/goals"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/water"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=badges_test

const hydrationWindowDays = 7

type badgesRepo interface {
	Add(ctx context.Context, b *Badge) (bool, error)
	List(ctx context.Context, userID int) ([]Badge, error)
}

type activityHistory interface {
	ListAll(ctx context.Context, params activities.Params) ([]activities.Activity, error)
	Totals(ctx context.Context, params activities.Params) (activities.Totals, error)
	StartSlots(ctx context.Context, userID int) ([]time.Time, error)
}

type waterHistory interface {
	Since(ctx context.Context, userID int, from time.Time) ([]water.Intake, error)
}

type goalFinder interface {
	LatestActive(ctx context.Context, userID int, goalType goals.GoalType) (*goals.Goal, error)
}

type profileGetter interface {
	Get(ctx context.Context, userID int) (*profile.Profile, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, event events.Event)
}

type CheckResult struct {
	Awarded       []View `json:"awarded"`
	CurrentStreak int    `json:"current_streak"`
	TotalBadges   int    `json:"total_badges"`
}

type Status struct {
	CheckResult
	Badges   []View                  `json:"badges"`
	Progress []achievements.Progress `json:"progress"`
}

type Service struct {
	repo           badgesRepo
	activities     activityHistory
	water          waterHistory
	goals          goalFinder
	profiles       profileGetter
	publisher      eventPublisher
	metricsManager *metrics.Manager
}

func NewService(
	repo badgesRepo,
	activityRepo activityHistory,
	waterRepo waterHistory,
	goalRepo goalFinder,
	profiles profileGetter,
	publisher eventPublisher,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		activities:     activityRepo,
		water:          waterRepo,
		goals:          goalRepo,
		profiles:       profiles,
		publisher:      publisher,
		metricsManager: metricsManager,
	}
}

// Check awards every badge the user newly qualifies for as of now. Calendar
// days are evaluated in now's location.
func (s *Service) Check(ctx context.Context, userID int, now time.Time) (*CheckResult, error) {
	res, _, err := s.check(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	return &res.CheckResult, nil
}

// Status runs Check and adds the earned badges and the progress towards the
// countable ones.
func (s *Service) Status(ctx context.Context, userID int, now time.Time) (*Status, error) {
	res, ec, err := s.check(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	for _, v := range res.Awarded {
		ec.Earned[v.BadgeType] = true
	}
	res.Progress = achievements.BadgeProgress(ec.Earned, res.CurrentStreak, ec.TotalCalories)
	return res, nil
}

func (s *Service) check(ctx context.Context, userID int, now time.Time) (_ *Status, _ *achievements.EvaluationContext, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.badges.check")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	earned, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("list badges: %w", err)
	}

	ec, err := s.evaluationContext(ctx, userID, now, earned)
	if err != nil {
		return nil, nil, err
	}

	streak := ec.Streak()
	awarded := make([]View, 0)
	for _, bt := range achievements.EvaluateBadges(*ec) {
		b := &Badge{
			UserID:      userID,
			BadgeType:   bt,
			Description: achievements.Description(bt, streak, ec.TotalCalories),
			EarnedAt:    now,
		}
		added, err := s.repo.Add(ctx, b)
		if err != nil {
			return nil, nil, fmt.Errorf("add badge %s: %w", bt, err)
		}
		if !added {
			// awarded concurrently
			continue
		}

		log.Debugf("user %d earned badge %s", userID, bt)
		if s.metricsManager != nil {
			s.metricsManager.CounterBadgesAwarded.With(prometheus.Labels{"badge": string(bt)}).Inc()
		}
		s.publisher.Publish(ctx, events.NewBadgeAwardedEvent(events.BadgeAwarded{
			UserID:    userID,
			Badge:     string(bt),
			Streak:    streak,
			Timestamp: now,
		}))
		awarded = append(awarded, NewView(*b))
	}

	views := make([]View, 0, len(earned)+len(awarded))
	views = append(views, awarded...)
	for _, b := range earned {
		views = append(views, NewView(b))
	}

	return &Status{
		CheckResult: CheckResult{
			Awarded:       awarded,
			CurrentStreak: streak,
			TotalBadges:   len(views),
		},
		Badges: views,
	}, ec, nil
}

func (s *Service) evaluationContext(ctx context.Context, userID int, now time.Time, earned []Badge) (*achievements.EvaluationContext, error) {
	loc := now.Location()
	today := pkg.StartOfDay(now)

	ec := &achievements.EvaluationContext{
		Earned: make(map[achievements.BadgeType]bool, len(earned)),
		AsOf:   now,
	}
	for _, b := range earned {
		ec.Earned[b.BadgeType] = true
	}

	// one day more than the streak cap, so a capped streak is still visible
	from := today.AddDate(0, 0, -achievements.MaxStreakDays)
	recent, err := s.activities.ListAll(ctx, activities.Params{UserID: userID, From: &from})
	if err != nil {
		return nil, fmt.Errorf("recent activities: %w", err)
	}
	ec.ActivityDays = achievements.NewDaySet()
	for _, a := range recent {
		ec.ActivityDays.Add(a.CreatedAt.In(loc))
	}

	totals, err := s.activities.Totals(ctx, activities.Params{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("activity totals: %w", err)
	}
	ec.ActivityCount = totals.Count
	ec.TotalCalories = totals.Calories

	slots, err := s.activities.StartSlots(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("activity start slots: %w", err)
	}
	ec.WorkoutHours = activities.StartHours(slots, loc)

	waterDays, err := s.waterGoalDays(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	ec.WaterGoalMetDay = waterDays

	weightGoal, err := s.goals.LatestActive(ctx, userID, goals.GoalTypeWeight)
	if err != nil {
		return nil, fmt.Errorf("latest weight goal: %w", err)
	}
	if weightGoal != nil {
		ec.WeightGoal = &achievements.GoalState{
			TargetValue:  weightGoal.TargetValue,
			CurrentValue: weightGoal.CurrentValue,
		}
	}

	return ec, nil
}

// waterGoalDays returns the days of the hydration window on which the
// user drank at least their water target.
func (s *Service) waterGoalDays(ctx context.Context, userID int, today time.Time) (achievements.DaySet, error) {
	target := water.DefaultTargetML
	p, err := s.profiles.Get(ctx, userID)
	switch {
	case err == nil:
		target = water.TargetML(p.WeightKg, p.ActivityLevel)
	case !errors.Is(err, profile.ErrProfileNotFound):
		return nil, fmt.Errorf("get profile: %w", err)
	}

	from := today.AddDate(0, 0, -(hydrationWindowDays - 1))
	intakes, err := s.water.Since(ctx, userID, from)
	if err != nil {
		return nil, fmt.Errorf("water history: %w", err)
	}

	days := achievements.NewDaySet()
	for date, total := range water.DailyTotals(intakes, today.Location()) {
		if total < target {
			continue
		}
		day, err := time.ParseInLocation(pkg.DateLayout, date, today.Location())
		if err != nil {
			return nil, err
		}
		days.Add(day)
	}
	return days, nil
}
