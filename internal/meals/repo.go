package meals

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

func (r *Repo) Add(ctx context.Context, m Meal) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO meal
				(user_id, meal_type, food_name, calories, protein_g, carbs_g, fats_g, serving_size, notes, logged_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id;`,
		m.UserID, string(m.MealType), m.FoodName, m.Calories, m.ProteinG, m.CarbsG, m.FatsG, m.ServingSize, m.Notes, m.LoggedAt,
	).Scan(&m.ID)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("meal.id", m.ID))
	return &m, nil
}

// Between returns the meals logged in [from, to), oldest first.
func (r *Repo) Between(ctx context.Context, userID int, from, to time.Time) (_ []Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.between")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, meal_type, food_name, calories, protein_g::float8, carbs_g::float8, fats_g::float8,
			serving_size, notes, logged_at
		FROM meal
		WHERE user_id = $1 AND logged_at >= $2 AND logged_at < $3
		ORDER BY logged_at ASC, id ASC;`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meals := make([]Meal, 0)
	for rows.Next() {
		var m Meal
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.MealType, &m.FoodName, &m.Calories, &m.ProteinG, &m.CarbsG, &m.FatsG,
			&m.ServingSize, &m.Notes, &m.LoggedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		meals = append(meals, m)
	}
	return meals, rows.Err()
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM meal WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMealNotFound
	}
	return nil
}
