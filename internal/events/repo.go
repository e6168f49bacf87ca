package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

type ListParams struct {
	UserID int
	Type   *EventType
	Page   int
	Size   int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, event Event) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.events.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("event.type", event.Type.String()))

	dataJson, err := json.Marshal(event.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal event data: %w", err)
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO fitness_event (uuid, user_id, type, data, timestamp)
			VALUES ($1, $2, $3, $4, $5)
		RETURNING id;`,
		event.UUID, event.UserID, event.Type, dataJson, event.Timestamp,
	).Scan(&event.ID)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("event.id", event.ID))
	return &event, nil
}

func (r *Repo) Count(ctx context.Context, userID int, eventType *EventType) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.events.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	err = r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM fitness_event
		WHERE user_id = $1 AND ($2::text IS NULL OR type = $2);`,
		userID, eventType,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}

// List returns one page of the user's events, newest first, and the total count.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Event, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.events.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", params.UserID),
		attribute.Int("page", params.Page),
		attribute.Int("size", params.Size),
	)

	total, err = r.Count(ctx, params.UserID, params.Type)
	if err != nil {
		return nil, 0, err
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	rows, err := r.db.Query(
		ctx,
		`SELECT id, uuid::text, user_id, type, data, timestamp FROM fitness_event
		WHERE user_id = $1 AND ($2::text IS NULL OR type = $2)
		ORDER BY timestamp DESC, id DESC
		LIMIT $3 OFFSET $4;`,
		params.UserID, params.Type, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := make([]Event, 0, params.Size)
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.UUID, &e.UserID, &e.Type, &e.Data, &e.Timestamp); err != nil {
			return nil, 0, fmt.Errorf("rows scan: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return events, total, nil
}
