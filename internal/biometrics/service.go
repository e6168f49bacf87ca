package biometrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/events"
	"github.com/2beens/fittrack/internal/fitness"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=biometrics_test

type biometricsRepo interface {
	Add(ctx context.Context, l Log) (*Log, error)
	List(ctx context.Context, params ListParams) ([]Log, int, error)
	Since(ctx context.Context, userID int, from time.Time) ([]Log, error)
}

type profileStore interface {
	Get(ctx context.Context, userID int) (*profile.Profile, error)
	UpdateWeight(ctx context.Context, userID int, weightKg float64) error
}

type eventPublisher interface {
	Publish(ctx context.Context, event events.Event)
}

type Service struct {
	repo      biometricsRepo
	profiles  profileStore
	publisher eventPublisher
	Now       func() time.Time
}

func NewService(repo biometricsRepo, profiles profileStore, publisher eventPublisher) *Service {
	return &Service{
		repo:      repo,
		profiles:  profiles,
		publisher: publisher,
		Now:       time.Now,
	}
}

func (s *Service) heightOf(ctx context.Context, userID int) *float64 {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, profile.ErrProfileNotFound) {
			log.Errorf("get profile height for user %d: %s", userID, err)
		}
		return nil
	}
	return p.HeightCm
}

// Add stores the log and makes its weight the current profile weight.
func (s *Service) Add(ctx context.Context, l Log) (_ *LogWithBMI, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.biometrics.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := l.Validate(); err != nil {
		return nil, err
	}
	l.WeightKg = fitness.Round2(l.WeightKg)
	if l.RecordedAt.IsZero() {
		l.RecordedAt = s.Now()
	}

	added, err := s.repo.Add(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("add biometric log: %w", err)
	}
	span.SetAttributes(attribute.Int("biometric.id", added.ID))

	if err := s.profiles.UpdateWeight(ctx, added.UserID, added.WeightKg); err != nil {
		log.Errorf("update profile weight for user %d: %s", added.UserID, err)
	}

	s.publisher.Publish(ctx, events.NewWeightReportEvent(events.WeightReport{
		UserID:    added.UserID,
		LogID:     added.ID,
		WeightKg:  added.WeightKg,
		Timestamp: added.RecordedAt,
	}))

	res := WithBMI(*added, s.heightOf(ctx, added.UserID))
	return &res, nil
}

func (s *Service) List(ctx context.Context, params ListParams) (_ []LogWithBMI, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.biometrics.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	logs, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list biometrics: %w", err)
	}

	height := s.heightOf(ctx, params.UserID)
	res := make([]LogWithBMI, 0, len(logs))
	for _, l := range logs {
		res = append(res, WithBMI(l, height))
	}
	return res, total, nil
}

// WeightTrend returns the weights logged since from, dated in from's location.
func (s *Service) WeightTrend(ctx context.Context, userID int, from time.Time) (_ []WeightPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.biometrics.weight-trend")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	logs, err := s.repo.Since(ctx, userID, from)
	if err != nil {
		return nil, fmt.Errorf("weight trend: %w", err)
	}

	trend := make([]WeightPoint, 0, len(logs))
	for _, l := range logs {
		trend = append(trend, WeightPoint{
			Date:     l.RecordedAt.In(from.Location()).Format(pkg.DateLayout),
			WeightKg: l.WeightKg,
		})
	}
	return trend, nil
}
