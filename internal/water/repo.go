package water

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, in Intake) (_ *Intake, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.water.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO water_intake (user_id, milliliters, notes, recorded_at)
				VALUES ($1, $2, $3, $4)
			RETURNING id;`,
		in.UserID, in.Milliliters, in.Notes, in.RecordedAt,
	).Scan(&in.ID)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("water.id", in.ID))
	return &in, nil
}

// Total sums the milliliters recorded in [from, to).
func (r *Repo) Total(ctx context.Context, userID int, from, to time.Time) (total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.water.total")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if err := r.db.QueryRow(
		ctx,
		`SELECT COALESCE(SUM(milliliters), 0) FROM water_intake
		WHERE user_id = $1 AND recorded_at >= $2 AND recorded_at < $3;`,
		userID, from, to,
	).Scan(&total); err != nil {
		return 0, fmt.Errorf("water total: %w", err)
	}
	return total, nil
}

// Since returns the intakes recorded at or after from, oldest first.
func (r *Repo) Since(ctx context.Context, userID int, from time.Time) (_ []Intake, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.water.since")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, milliliters, notes, recorded_at FROM water_intake
		WHERE user_id = $1 AND recorded_at >= $2
		ORDER BY recorded_at ASC, id ASC;`,
		userID, from,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var intakes []Intake
	for rows.Next() {
		var in Intake
		if err := rows.Scan(&in.ID, &in.UserID, &in.Milliliters, &in.Notes, &in.RecordedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		intakes = append(intakes, in)
	}
	return intakes, rows.Err()
}
