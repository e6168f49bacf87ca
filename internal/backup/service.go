package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/activities"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=backup_test

type activitiesSource interface {
	AllSince(ctx context.Context, afterID int) ([]activities.Activity, error)
}

type recordStore interface {
	Last(ctx context.Context) (*Record, error)
	Add(ctx context.Context, rec *Record) error
}

type fileStore interface {
	EnsureFolder(ctx context.Context) (string, error)
	Upload(ctx context.Context, folderID, name string, data []byte) (string, error)
}

type Service struct {
	activities activitiesSource
	records    recordStore
	files      fileStore
	chunkSize  int
}

func NewService(source activitiesSource, records recordStore, files fileStore, chunkSize int) *Service {
	return &Service{
		activities: source,
		records:    records,
		files:      files,
		chunkSize:  chunkSize,
	}
}

// Run backs up the activities created after the last backup.
// It returns nil when there was nothing new.
func (s *Service) Run(ctx context.Context, baseTime time.Time) (*Record, error) {
	last, err := s.records.Last(ctx)
	if err != nil {
		return nil, fmt.Errorf("get last backup: %w", err)
	}
	if last == nil {
		log.Println("no previous backups, creating initial backup ...")
		return s.backupSince(ctx, 0, "initial", baseTime)
	}
	log.Printf("last backup [%d] at %v, up to activity %d", last.ID, last.CreatedAt, last.LastActivityID)
	return s.backupSince(ctx, last.LastActivityID, "activities", baseTime)
}

// Reinit backs up every stored activity again, regardless of previous backups.
func (s *Service) Reinit(ctx context.Context, baseTime time.Time) (*Record, error) {
	log.Println("activities backup reinit starting ...")
	return s.backupSince(ctx, 0, "initial", baseTime)
}

func (s *Service) backupSince(ctx context.Context, afterID int, prefix string, baseTime time.Time) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.backup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("after.id", afterID))

	toBackup, err := s.activities.AllSince(ctx, afterID)
	if err != nil {
		return nil, fmt.Errorf("get activities to backup: %w", err)
	}
	if len(toBackup) == 0 {
		log.Println("no new activities to backup, done")
		return nil, nil
	}

	folderID, err := s.files.EnsureFolder(ctx)
	if err != nil {
		return nil, err
	}

	log.Printf(" ---- backing up %d activities after id %d", len(toBackup), afterID)

	baseName := fmt.Sprintf("%s-%s-after-%d", prefix, baseTime.Format("2006-01-02"), afterID)
	rec := &Record{
		ActivitiesCount: len(toBackup),
		LastActivityID:  toBackup[len(toBackup)-1].ID,
	}
	for i, chunk := range Chunk(toBackup, s.chunkSize) {
		name := fmt.Sprintf("%s_%d.json", baseName, i+1)
		data, err := json.Marshal(chunk)
		if err != nil {
			return nil, fmt.Errorf("%s: marshal activities: %w", name, err)
		}

		fileID, err := s.files.Upload(ctx, folderID, name, data)
		if err != nil {
			return nil, err
		}
		log.Printf("%s: backup file with %d activities saved: %s", name, len(chunk), fileID)
		rec.DriveFileIDs = append(rec.DriveFileIDs, fileID)
	}

	if err := s.records.Add(ctx, rec); err != nil {
		return nil, fmt.Errorf("save backup record: %w", err)
	}

	log.Printf("backup [%d] up to activity %d successfully saved", rec.ID, rec.LastActivityID)
	return rec, nil
}
