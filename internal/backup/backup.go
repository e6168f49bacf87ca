package backup

import "time"

// Record is one completed backup run. LastActivityID is where the next run continues from.
type Record struct {
	ID              int       `json:"id"`
	ActivitiesCount int       `json:"activities_count"`
	LastActivityID  int       `json:"last_activity_id"`
	DriveFileIDs    []string  `json:"drive_file_ids"`
	CreatedAt       time.Time `json:"created_at"`
}

// Chunk splits items into consecutive slices of at most size elements.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return nil
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for from := 0; from < len(items); from += size {
		to := min(from+size, len(items))
		chunks = append(chunks, items[from:to])
	}
	return chunks
}
