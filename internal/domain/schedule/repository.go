package schedule

import "context"

// SnapshotRepository persists whole named snapshots of the timetable.
// Replace swaps the stored record set wholesale; snapshots are never patched
// incrementally. Load returns an empty slice when nothing was stored under
// the name.
type SnapshotRepository interface {
	Replace(ctx context.Context, name string, records []Record) error
	Load(ctx context.Context, name string) ([]Record, error)
}
