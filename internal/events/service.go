package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=events_test

type eventsRepo interface {
	Add(ctx context.Context, event Event) (*Event, error)
	List(ctx context.Context, params ListParams) ([]Event, int, error)
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

const (
	sinkDB    = "db"
	sinkKafka = "kafka"
)

type Service struct {
	repo           eventsRepo
	writer         messageWriter
	metricsManager *metrics.Manager
	NewUUID        func() string
	Now            func() time.Time
}

// NewService creates the events service. writer may be nil, in which case
// events are only stored in the database.
func NewService(repo eventsRepo, writer messageWriter, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		writer:         writer,
		metricsManager: metricsManager,
		NewUUID:        func() string { return uuid.NewString() },
		Now:            time.Now,
	}
}

// Publish stores the event and forwards it to kafka. Failures are logged and
// counted only, they never fail the caller.
func (s *Service) Publish(ctx context.Context, event Event) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.events.publish")
	defer span.End()
	span.SetAttributes(
		attribute.String("event.type", event.Type.String()),
		attribute.Int("user.id", event.UserID),
	)

	if event.UUID == "" {
		event.UUID = s.NewUUID()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.Now()
	}
	if event.Data == nil {
		event.Data = map[string]string{}
	}

	stored, err := s.repo.Add(ctx, event)
	if err != nil {
		log.Errorf("publish event [%s] for user %d, store: %s", event.Type, event.UserID, err)
		span.RecordError(err)
		s.count(sinkDB, err)
	} else {
		event.ID = stored.ID
		s.count(sinkDB, nil)
	}

	if s.writer == nil {
		return
	}

	if err := s.writeToKafka(ctx, event); err != nil {
		log.Errorf("publish event [%s] for user %d, kafka: %s", event.Type, event.UserID, err)
		span.RecordError(err)
		s.count(sinkKafka, err)
		return
	}
	s.count(sinkKafka, nil)
}

func (s *Service) writeToKafka(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.UserID)),
		Value: value,
		Time:  event.Timestamp.UTC(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	})
}

func (s *Service) count(sink string, err error) {
	if s.metricsManager == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	s.metricsManager.CounterEventsPublished.With(prometheus.Labels{
		"sink":   sink,
		"result": result,
	}).Inc()
}

func (s *Service) List(ctx context.Context, params ListParams) (_ []Event, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.events.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	events, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	return events, total, nil
}

// Close flushes and closes the kafka writer, if any.
func (s *Service) Close() error {
	if s.writer == nil {
		return nil
	}
	return s.writer.Close()
}
