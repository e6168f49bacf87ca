package goals

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/events"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=goals_test

type goalsRepo interface {
	Add(ctx context.Context, g Goal) (*Goal, error)
	Get(ctx context.Context, userID, id int) (*Goal, error)
	Update(ctx context.Context, g *Goal) error
	Delete(ctx context.Context, userID, id int) error
	List(ctx context.Context, params ListParams) ([]Goal, int, error)
	Active(ctx context.Context, userID, limit int) ([]Goal, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, event events.Event)
}

type Service struct {
	repo      goalsRepo
	publisher eventPublisher
}

func NewService(repo goalsRepo, publisher eventPublisher) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *Service) Create(ctx context.Context, g Goal, today time.Time) (_ *View, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := g.Normalize(today); err != nil {
		return nil, err
	}

	added, err := s.repo.Add(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("add goal: %w", err)
	}
	span.SetAttributes(attribute.Int("goal.id", added.ID))

	s.publisher.Publish(ctx, events.NewGoalCreatedEvent(events.GoalCreated{
		UserID:      added.UserID,
		GoalID:      added.ID,
		GoalType:    string(added.GoalType),
		TargetValue: added.TargetValue,
		Timestamp:   added.CreatedAt,
	}))

	view := NewView(*added)
	return &view, nil
}

func (s *Service) Get(ctx context.Context, userID, id int) (*View, error) {
	g, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	view := NewView(*g)
	return &view, nil
}

func (s *Service) Update(ctx context.Context, g *Goal, today time.Time) (_ *View, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.goals.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal.id", g.ID))

	if err := g.Normalize(today); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	view := NewView(*g)
	return &view, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, params ListParams) ([]View, int, error) {
	goals, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list goals: %w", err)
	}
	return NewViews(goals), total, nil
}

func (s *Service) Active(ctx context.Context, userID, limit int) ([]View, error) {
	goals, err := s.repo.Active(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("active goals: %w", err)
	}
	return NewViews(goals), nil
}
