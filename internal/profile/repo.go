package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/fitness"
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

// Create inserts the empty profile of a freshly registered user.
func (r *Repo) Create(ctx context.Context, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO profile (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING;`,
		userID,
	)
	return err
}

func (r *Repo) Get(ctx context.Context, userID int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	p := &Profile{UserID: userID}
	var gender *string
	var activityLevel string
	err = r.db.QueryRow(
		ctx,
		`SELECT date_of_birth, gender, height_cm::float8, weight_kg::float8, activity_level, timezone, created_at, updated_at
		FROM profile WHERE user_id = $1;`,
		userID,
	).Scan(&p.DateOfBirth, &gender, &p.HeightCm, &p.WeightKg, &activityLevel, &p.Timezone, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}

	if gender != nil {
		g := fitness.Gender(*gender)
		p.Gender = &g
	}
	p.ActivityLevel = fitness.ActivityLevel(activityLevel)

	return p, nil
}

func (r *Repo) Update(ctx context.Context, p *Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", p.UserID))

	var gender *string
	if p.Gender != nil {
		g := string(*p.Gender)
		gender = &g
	}

	p.UpdatedAt = time.Now()
	tag, err := r.db.Exec(
		ctx,
		`UPDATE profile SET date_of_birth = $1, gender = $2, height_cm = $3, weight_kg = $4,
			activity_level = $5, timezone = $6, updated_at = $7
		WHERE user_id = $8;`,
		p.DateOfBirth, gender, p.HeightCm, p.WeightKg, string(p.ActivityLevel), p.Timezone, p.UpdatedAt, p.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// UpdateWeight stores the latest weight reported through biometrics.
func (r *Repo) UpdateWeight(ctx context.Context, userID int, weightKg float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.update.weight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE profile SET weight_kg = $1, updated_at = now() WHERE user_id = $2;`,
		weightKg, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}
