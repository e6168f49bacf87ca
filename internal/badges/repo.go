package badges

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
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

// Add stores the badge unless the user already has one of its type,
// in which case it returns false.
func (r *Repo) Add(ctx context.Context, b *Badge) (added bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.badges.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("badge.type", string(b.BadgeType)))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO badge (user_id, badge_type, description, earned_at)
				VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, badge_type) DO NOTHING
			RETURNING id;`,
		b.UserID, string(b.BadgeType), b.Description, b.EarnedAt,
	).Scan(&b.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List returns the user's badges, most recently earned first.
func (r *Repo) List(ctx context.Context, userID int) (_ []Badge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.badges.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, badge_type, description, earned_at FROM badge
		WHERE user_id = $1
		ORDER BY earned_at DESC, id DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	badges := make([]Badge, 0)
	for rows.Next() {
		var b Badge
		if err := rows.Scan(&b.ID, &b.UserID, &b.BadgeType, &b.Description, &b.EarnedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		badges = append(badges, b)
	}
	return badges, rows.Err()
}
