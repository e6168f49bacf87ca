package water

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/events"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=water_test

type waterRepo interface {
	Add(ctx context.Context, in Intake) (*Intake, error)
	Total(ctx context.Context, userID int, from, to time.Time) (int, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, event events.Event)
}

type AddResult struct {
	Intake Intake `json:"intake"`
	Summary
}

type Service struct {
	repo      waterRepo
	publisher eventPublisher
}

func NewService(repo waterRepo, publisher eventPublisher) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
	}
}

// Add records the intake at now, one glass when no amount is given, and
// returns the summary of now's day in now's location.
func (s *Service) Add(ctx context.Context, in Intake, now time.Time) (_ *AddResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.water.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if in.Milliliters == 0 {
		in.Milliliters = GlassML
	}
	if in.Milliliters < 0 {
		return nil, fmt.Errorf("%w: milliliters must be positive", ErrInvalidIntake)
	}
	in.RecordedAt = now

	added, err := s.repo.Add(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("add water intake: %w", err)
	}
	span.SetAttributes(attribute.Int("water.id", added.ID))

	summary, err := s.Today(ctx, added.UserID, now)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.NewWaterLoggedEvent(events.WaterLogged{
		UserID:      added.UserID,
		Milliliters: added.Milliliters,
		TodayTotal:  summary.TotalML,
		Timestamp:   added.RecordedAt,
	}))

	return &AddResult{
		Intake:  *added,
		Summary: summary,
	}, nil
}

// Today summarizes the calendar day of now, in now's location.
func (s *Service) Today(ctx context.Context, userID int, now time.Time) (Summary, error) {
	from, to := pkg.DayBounds(now)
	total, err := s.repo.Total(ctx, userID, from, to)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(total), nil
}
