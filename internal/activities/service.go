package activities

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/events"
	"github.com/2beens/fittrack/internal/fitness"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=activities_test

type activitiesRepo interface {
	Add(ctx context.Context, a Activity) (*Activity, error)
	Get(ctx context.Context, userID, id int) (*Activity, error)
	Update(ctx context.Context, a *Activity) error
	Delete(ctx context.Context, userID, id int) error
	List(ctx context.Context, params ListParams) ([]Activity, int, error)
}

type profileGetter interface {
	Get(ctx context.Context, userID int) (*profile.Profile, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, event events.Event)
}

type AddResult struct {
	Activity
	UsedDefaultWeight bool `json:"used_default_weight"`
}

type Service struct {
	repo           activitiesRepo
	profiles       profileGetter
	publisher      eventPublisher
	metricsManager *metrics.Manager
	Now            func() time.Time
}

func NewService(
	repo activitiesRepo,
	profiles profileGetter,
	publisher eventPublisher,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		profiles:       profiles,
		publisher:      publisher,
		metricsManager: metricsManager,
		Now:            time.Now,
	}
}

// weightFor returns the profile weight, or DefaultWeightKg and true when unknown.
func (s *Service) weightFor(ctx context.Context, userID int) (float64, bool) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, profile.ErrProfileNotFound) {
			log.Errorf("get profile weight for user %d: %s", userID, err)
		}
		return DefaultWeightKg, true
	}
	if p.WeightKg == nil || *p.WeightKg <= 0 {
		return DefaultWeightKg, true
	}
	return *p.WeightKg, false
}

// fillCalories estimates calories unless the client sent a positive value.
func (s *Service) fillCalories(ctx context.Context, a *Activity) (usedDefaultWeight bool) {
	if a.CaloriesBurned > 0 {
		return false
	}
	weight, usedDefault := s.weightFor(ctx, a.UserID)
	if calories, ok := fitness.CaloriesBurned(a.ActivityType, a.DurationMinutes, weight); ok {
		a.CaloriesBurned = calories
	}
	return usedDefault
}

func (s *Service) Add(ctx context.Context, a Activity) (_ *AddResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activities.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := a.Normalize(); err != nil {
		return nil, err
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.Now()
	}
	usedDefaultWeight := s.fillCalories(ctx, &a)

	added, err := s.repo.Add(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("add activity: %w", err)
	}
	span.SetAttributes(attribute.Int("activity.id", added.ID))

	if s.metricsManager != nil {
		s.metricsManager.CounterActivitiesLogged.With(prometheus.Labels{
			"type": string(added.ActivityType),
		}).Inc()
	}
	s.publisher.Publish(ctx, events.NewActivityLoggedEvent(events.ActivityLogged{
		UserID:          added.UserID,
		ActivityID:      added.ID,
		ActivityType:    string(added.ActivityType),
		DurationMinutes: added.DurationMinutes,
		Calories:        added.CaloriesBurned,
		Timestamp:       added.CreatedAt,
	}))

	return &AddResult{
		Activity:          *added,
		UsedDefaultWeight: usedDefaultWeight,
	}, nil
}

func (s *Service) Get(ctx context.Context, userID, id int) (*Activity, error) {
	return s.repo.Get(ctx, userID, id)
}

// Update recalculates calories when the client sends none.
func (s *Service) Update(ctx context.Context, a *Activity) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activities.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := a.Normalize(); err != nil {
		return err
	}
	s.fillCalories(ctx, a)
	return s.repo.Update(ctx, a)
}

func (s *Service) Delete(ctx context.Context, userID, id int) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, params ListParams) ([]Activity, int, error) {
	return s.repo.List(ctx, params)
}
