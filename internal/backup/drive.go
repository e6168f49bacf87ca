package backup

import (
	"bytes"
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const folderMimeType = "application/vnd.google-apps.folder"

// DriveStore keeps the backup files in a single Google Drive folder.
type DriveStore struct {
	service    *drive.Service
	folderName string
	// optional reader the uploaded files get shared with
	shareWith string
}

func NewDriveStore(ctx context.Context, credentialsJSON []byte, folderName, shareWith string) (*DriveStore, error) {
	// https://github.com/googleapis/google-api-go-client/blob/master/drive/v3/drive-gen.go
	driveService, err := drive.NewService(ctx, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve drive client: %w", err)
	}
	return &DriveStore{
		service:    driveService,
		folderName: folderName,
		shareWith:  shareWith,
	}, nil
}

// EnsureFolder returns the id of the backups folder, creating it when missing.
func (s *DriveStore) EnsureFolder(ctx context.Context) (string, error) {
	query := fmt.Sprintf("mimeType = '%s' and trashed = false and name = '%s'", folderMimeType, s.folderName)
	found, err := s.service.
		Files.List().
		Q(query).
		Fields("files(id, name)").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("unable to retrieve files: %w", err)
	}

	switch len(found.Files) {
	case 0:
		log.Printf("backups folder [%s] not found, creating ...", s.folderName)
	case 1:
		return found.Files[0].Id, nil
	default:
		log.Warnf("found %d backups folders named [%s], will take the first one: %s", len(found.Files), s.folderName, found.Files[0].Id)
		return found.Files[0].Id, nil
	}

	created, err := s.service.
		Files.Create(&drive.File{
			Name:     s.folderName,
			MimeType: folderMimeType,
		}).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("create backups folder: %w", err)
	}
	if err := s.share(ctx, created.Id); err != nil {
		return created.Id, fmt.Errorf("share backups folder: %w", err)
	}

	log.Printf("new backups folder created: %s", created.Id)
	return created.Id, nil
}

// Upload stores data as a JSON file in the folder and returns the file id.
func (s *DriveStore) Upload(ctx context.Context, folderID, name string, data []byte) (string, error) {
	file, err := s.service.
		Files.Create(&drive.File{
			Name:     name,
			MimeType: "application/json",
			Parents:  []string{folderID},
		}).
		Fields("id, parents").
		Media(bytes.NewReader(data)).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("%s: create file: %w", name, err)
	}
	if err := s.share(ctx, file.Id); err != nil {
		return file.Id, fmt.Errorf("%s: share file: %w", name, err)
	}
	return file.Id, nil
}

func (s *DriveStore) share(ctx context.Context, fileID string) error {
	if s.shareWith == "" {
		return nil
	}
	permission, err := s.service.Permissions.
		Create(fileID, &drive.Permission{
			EmailAddress: s.shareWith,
			Type:         "user",
			Role:         "reader",
		}).
		Context(ctx).
		Do()
	if err != nil {
		return err
	}
	log.Debugf("permission %s created for %s", permission.Id, fileID)
	return nil
}
