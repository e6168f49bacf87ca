package meals

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/events"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=meals_test

type mealsRepo interface {
	Add(ctx context.Context, m Meal) (*Meal, error)
	Between(ctx context.Context, userID int, from, to time.Time) ([]Meal, error)
	Delete(ctx context.Context, userID, id int) error
}

type eventPublisher interface {
	Publish(ctx context.Context, event events.Event)
}

type AddResult struct {
	Meal   Meal   `json:"meal"`
	Totals Totals `json:"totals"`
}

type Day struct {
	Meals  []Meal `json:"meals"`
	Totals Totals `json:"totals"`
}

type Service struct {
	repo      mealsRepo
	publisher eventPublisher
}

func NewService(repo mealsRepo, publisher eventPublisher) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
	}
}

// Add logs the meal at now and returns the nutrition totals of now's day.
func (s *Service) Add(ctx context.Context, m Meal, now time.Time) (_ *AddResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.meals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := m.Normalize(); err != nil {
		return nil, err
	}
	m.LoggedAt = now

	added, err := s.repo.Add(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("add meal: %w", err)
	}
	span.SetAttributes(attribute.Int("meal.id", added.ID))

	s.publisher.Publish(ctx, events.NewMealLoggedEvent(events.MealLogged{
		UserID:    added.UserID,
		MealID:    added.ID,
		MealType:  string(added.MealType),
		Calories:  added.Calories,
		Timestamp: added.LoggedAt,
	}))

	day, err := s.Today(ctx, added.UserID, now)
	if err != nil {
		return nil, err
	}
	return &AddResult{
		Meal:   *added,
		Totals: day.Totals,
	}, nil
}

// Today returns the meals of now's calendar day, in now's location.
func (s *Service) Today(ctx context.Context, userID int, now time.Time) (*Day, error) {
	from, to := pkg.DayBounds(now)
	meals, err := s.repo.Between(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("meals of the day: %w", err)
	}
	return &Day{
		Meals:  meals,
		Totals: Sum(meals),
	}, nil
}

func (s *Service) Delete(ctx context.Context, userID, id int) error {
	return s.repo.Delete(ctx, userID, id)
}
