package goals

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

type ListParams struct {
	UserID int
	Status *Status
	Page   int
	Size   int
}

const goalColumns = `id, user_id, goal_type, title, target_value::float8, current_value::float8, unit,
	to_char(start_date, 'YYYY-MM-DD'), to_char(target_date, 'YYYY-MM-DD'), status, notes, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanGoal(row pgx.Row) (*Goal, error) {
	g := &Goal{}
	if err := row.Scan(
		&g.ID, &g.UserID, &g.GoalType, &g.Title, &g.TargetValue, &g.CurrentValue, &g.Unit,
		&g.StartDate, &g.TargetDate, &g.Status, &g.Notes, &g.CreatedAt, &g.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return g, nil
}

func scanGoals(rows pgx.Rows) ([]Goal, error) {
	defer rows.Close()
	goals := make([]Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		goals = append(goals, *g)
	}
	return goals, rows.Err()
}

func (r *Repo) Add(ctx context.Context, g Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO goal
				(user_id, goal_type, title, target_value, current_value, unit, start_date, target_date, status, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7::date, $8::date, $9, $10)
			RETURNING id, created_at, updated_at;`,
		g.UserID, string(g.GoalType), g.Title, g.TargetValue, g.CurrentValue, g.Unit,
		g.StartDate, g.TargetDate, string(g.Status), g.Notes,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("goal.id", g.ID))
	return &g, nil
}

func (r *Repo) Get(ctx context.Context, userID, id int) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	g, err := scanGoal(r.db.QueryRow(
		ctx,
		`SELECT `+goalColumns+` FROM goal WHERE id = $1 AND user_id = $2;`,
		id, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("query goal: %w", err)
	}
	return g, nil
}

func (r *Repo) Update(ctx context.Context, g *Goal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", g.ID))

	err = r.db.QueryRow(
		ctx,
		`UPDATE goal SET goal_type = $1, title = $2, target_value = $3, current_value = $4, unit = $5,
			start_date = $6::date, target_date = $7::date, status = $8, notes = $9, updated_at = now()
		WHERE id = $10 AND user_id = $11
		RETURNING created_at, updated_at;`,
		string(g.GoalType), g.Title, g.TargetValue, g.CurrentValue, g.Unit,
		g.StartDate, g.TargetDate, string(g.Status), g.Notes, g.ID, g.UserID,
	).Scan(&g.CreatedAt, &g.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrGoalNotFound
	}
	return err
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM goal WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// List returns one page of goals, newest first, optionally filtered by status.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Goal, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", params.UserID),
		attribute.Int("page", params.Page),
		attribute.Int("size", params.Size),
	)

	var status *string
	if params.Status != nil {
		s := string(*params.Status)
		status = &s
	}

	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM goal WHERE user_id = $1 AND ($2::text IS NULL OR status = $2);`,
		params.UserID, status,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count goals: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+goalColumns+` FROM goal
		WHERE user_id = $1 AND ($2::text IS NULL OR status = $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4;`,
		params.UserID, status, params.Size, (params.Page-1)*params.Size,
	)
	if err != nil {
		return nil, 0, err
	}

	goals, err := scanGoals(rows)
	if err != nil {
		return nil, 0, err
	}
	return goals, total, nil
}

// Active returns up to limit active goals, newest first. A limit <= 0 returns all of them.
func (r *Repo) Active(ctx context.Context, userID, limit int) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.active")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("limit", limit))

	var limitArg *int
	if limit > 0 {
		limitArg = &limit
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+goalColumns+` FROM goal
		WHERE user_id = $1 AND status = $2
		ORDER BY created_at DESC, id DESC
		LIMIT $3;`,
		userID, string(StatusActive), limitArg,
	)
	if err != nil {
		return nil, err
	}
	return scanGoals(rows)
}

// LatestActive returns the newest active goal of the type, nil when there is none.
func (r *Repo) LatestActive(ctx context.Context, userID int, goalType GoalType) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.latest-active")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.String("goal.type", string(goalType)))

	g, err := scanGoal(r.db.QueryRow(
		ctx,
		`SELECT `+goalColumns+` FROM goal
		WHERE user_id = $1 AND goal_type = $2 AND status = $3
		ORDER BY created_at DESC, id DESC
		LIMIT 1;`,
		userID, string(goalType), string(StatusActive),
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest goal: %w", err)
	}
	return g, nil
}
