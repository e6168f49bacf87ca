package backup

import (
	"context"
	"errors"
	"strings"

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

// Last returns the most recent backup record, nil when no backup was made yet.
func (r *Repo) Last(ctx context.Context) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.backup.last")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		rec     Record
		fileIDs string
	)
	err = r.db.QueryRow(
		ctx,
		`SELECT id, activities_count, last_activity_id, drive_file_ids, created_at
		FROM activity_backup
		ORDER BY id DESC
		LIMIT 1;`,
	).Scan(&rec.ID, &rec.ActivitiesCount, &rec.LastActivityID, &fileIDs, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if fileIDs != "" {
		rec.DriveFileIDs = strings.Split(fileIDs, ",")
	}
	return &rec, nil
}

func (r *Repo) Add(ctx context.Context, rec *Record) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.backup.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("activities.count", rec.ActivitiesCount),
		attribute.Int("last.activity.id", rec.LastActivityID),
	)

	return r.db.QueryRow(
		ctx,
		`INSERT INTO activity_backup (activities_count, last_activity_id, drive_file_ids)
		VALUES ($1, $2, $3)
		RETURNING id, created_at;`,
		rec.ActivitiesCount, rec.LastActivityID, strings.Join(rec.DriveFileIDs, ","),
	).Scan(&rec.ID, &rec.CreatedAt)
}
