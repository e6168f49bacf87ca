package activities

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

type Params struct {
	UserID int
	From   *time.Time
	To     *time.Time
}

type ListParams struct {
	UserID int
	Page   int
	Size   int
}

// Totals aggregates the activities matched by Params.
type Totals struct {
	Count           int `json:"count"`
	Calories        int `json:"calories"`
	DurationMinutes int `json:"duration_minutes"`
}

const activityColumns = `id, user_id, activity_type, duration_minutes, distance_km::float8, calories_burned, notes, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanActivity(row pgx.Row) (*Activity, error) {
	a := &Activity{}
	if err := row.Scan(
		&a.ID, &a.UserID, &a.ActivityType, &a.DurationMinutes, &a.DistanceKm, &a.CaloriesBurned, &a.Notes, &a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *Repo) Add(ctx context.Context, a Activity) (_ *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO activity
				(user_id, activity_type, duration_minutes, distance_km, calories_burned, notes, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		a.UserID, string(a.ActivityType), a.DurationMinutes, a.DistanceKm, a.CaloriesBurned, a.Notes, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("activity.id", a.ID))
	return &a, nil
}

func (r *Repo) Get(ctx context.Context, userID, id int) (_ *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	a, err := scanActivity(r.db.QueryRow(
		ctx,
		`SELECT `+activityColumns+` FROM activity WHERE id = $1 AND user_id = $2;`,
		id, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("query activity: %w", err)
	}
	return a, nil
}

func (r *Repo) Update(ctx context.Context, a *Activity) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", a.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE activity SET activity_type = $1, duration_minutes = $2, distance_km = $3, calories_burned = $4, notes = $5
		WHERE id = $6 AND user_id = $7;`,
		string(a.ActivityType), a.DurationMinutes, a.DistanceKm, a.CaloriesBurned, a.Notes, a.ID, a.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrActivityNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM activity WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrActivityNotFound
	}
	return nil
}

// List returns one page of the user's activities, newest first, and the total count.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Activity, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.list")
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
		`SELECT COUNT(*) FROM activity WHERE user_id = $1;`,
		params.UserID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count activities: %w", err)
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	rows, err := r.db.Query(
		ctx,
		`SELECT `+activityColumns+` FROM activity
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3;`,
		params.UserID, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	activities := make([]Activity, 0, params.Size)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("rows scan: %w", err)
		}
		activities = append(activities, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return activities, total, nil
}

// ListAll returns every matched activity, oldest first.
func (r *Repo) ListAll(ctx context.Context, params Params) (_ []Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.list.all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", params.UserID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+activityColumns+` FROM activity
		WHERE user_id = $1
			AND ($2::timestamptz IS NULL OR created_at >= $2)
			AND ($3::timestamptz IS NULL OR created_at < $3)
		ORDER BY created_at ASC, id ASC;`,
		params.UserID, params.From, params.To,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		activities = append(activities, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}

func (r *Repo) Totals(ctx context.Context, params Params) (_ Totals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.totals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", params.UserID))

	var totals Totals
	err = r.db.QueryRow(
		ctx,
		`SELECT COUNT(*), COALESCE(SUM(calories_burned), 0), COALESCE(SUM(duration_minutes), 0)
		FROM activity
		WHERE user_id = $1
			AND ($2::timestamptz IS NULL OR created_at >= $2)
			AND ($3::timestamptz IS NULL OR created_at < $3);`,
		params.UserID, params.From, params.To,
	).Scan(&totals.Count, &totals.Calories, &totals.DurationMinutes)
	if err != nil {
		return Totals{}, fmt.Errorf("activity totals: %w", err)
	}
	return totals, nil
}

// AllSince returns every activity with id greater than afterID, used by the backup.
func (r *Repo) AllSince(ctx context.Context, afterID int) (_ []Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.all.since")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("after.id", afterID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+activityColumns+` FROM activity WHERE id > $1 ORDER BY id ASC;`,
		afterID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		activities = append(activities, *a)
	}
	return activities, rows.Err()
}

// StartSlots returns the distinct 15 minute slots in which the user logged
// activities. Every UTC offset in use is a multiple of 15 minutes, so a slot
// falls into a single local hour in any time zone.
func (r *Repo) StartSlots(ctx context.Context, userID int) (_ []time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activities.start-slots")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT date_bin('15 minutes', created_at, TIMESTAMPTZ '2000-01-01 00:00:00+00') AS slot
		FROM activity
		WHERE user_id = $1
		ORDER BY slot;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []time.Time
	for rows.Next() {
		var slot time.Time
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}
