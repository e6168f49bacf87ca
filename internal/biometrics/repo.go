package biometrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

type ListParams struct {
	UserID int
	Page   int
	Size   int
}

const logColumns = `id, user_id, weight_kg::float8, body_fat_percentage::float8, muscle_mass_kg::float8,
	waist_circumference_cm::float8, notes, recorded_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanLog(row pgx.Row) (*Log, error) {
	l := &Log{}
	if err := row.Scan(
		&l.ID, &l.UserID, &l.WeightKg, &l.BodyFatPercentage, &l.MuscleMassKg, &l.WaistCircumferenceCm, &l.Notes, &l.RecordedAt,
	); err != nil {
		return nil, err
	}
	return l, nil
}

func (r *Repo) Add(ctx context.Context, l Log) (_ *Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.biometrics.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO biometric_log
				(user_id, weight_kg, body_fat_percentage, muscle_mass_kg, waist_circumference_cm, notes, recorded_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		l.UserID, l.WeightKg, l.BodyFatPercentage, l.MuscleMassKg, l.WaistCircumferenceCm, l.Notes, l.RecordedAt,
	).Scan(&l.ID)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("biometric.id", l.ID))
	return &l, nil
}

// Latest returns the most recent log, or nil when the user has none.
func (r *Repo) Latest(ctx context.Context, userID int) (_ *Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.biometrics.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	l, err := scanLog(r.db.QueryRow(
		ctx,
		`SELECT `+logColumns+` FROM biometric_log WHERE user_id = $1 ORDER BY recorded_at DESC, id DESC LIMIT 1;`,
		userID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest biometrics: %w", err)
	}
	return l, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Log, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.biometrics.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", params.UserID),
		attribute.Int("page", params.Page),
		attribute.Int("size", params.Size),
	)

	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM biometric_log WHERE user_id = $1;`,
		params.UserID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count biometrics: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+logColumns+` FROM biometric_log
		WHERE user_id = $1
		ORDER BY recorded_at DESC, id DESC
		LIMIT $2 OFFSET $3;`,
		params.UserID, params.Size, (params.Page-1)*params.Size,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	logs := make([]Log, 0, params.Size)
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("rows scan: %w", err)
		}
		logs = append(logs, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// Since returns the user's logs recorded at or after from, oldest first.
func (r *Repo) Since(ctx context.Context, userID int, from time.Time) (_ []Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.biometrics.since")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+logColumns+` FROM biometric_log
		WHERE user_id = $1 AND recorded_at >= $2
		ORDER BY recorded_at ASC, id ASC;`,
		userID, from,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []Log
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		logs = append(logs, *l)
	}
	return logs, rows.Err()
}
