package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"schedule_notification_bot/internal/domain/schedule"

	_ "github.com/lib/pq" // PostgreSQL driver
	gocache "github.com/patrickmn/go-cache"
)

// Custom errors
var ErrUnknownSnapshot = fmt.Errorf("unknown snapshot name")

// snapshotTables maps logical snapshot names onto their physical tables.
// Only the two known names are accepted, which also keeps the table name out
// of the caller's hands.
var snapshotTables = map[string]string{
	schedule.SnapshotOriginal: "original_schedule",
	schedule.SnapshotChanges:  "changes_schedule",
}

// PostgresSnapshotRepository stores whole timetable snapshots, one table per
// logical name. Reads go through an in-process cache that a Replace
// invalidates, since snapshots change only on uploads but are read on every
// schedule query.
type PostgresSnapshotRepository struct {
	db    *sql.DB
	cache *gocache.Cache
}

func NewPostgresSnapshotRepository(db *sql.DB, cacheTTL time.Duration) *PostgresSnapshotRepository {
	return &PostgresSnapshotRepository{
		db:    db,
		cache: gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// Replace swaps the snapshot's contents wholesale inside one transaction, so
// concurrent readers see either the fully-old or the fully-new record set.
func (r *PostgresSnapshotRepository) Replace(ctx context.Context, name string, records []schedule.Record) error {
	table, ok := snapshotTables[name]
	if !ok {
		return ErrUnknownSnapshot
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting snapshot replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
		return fmt.Errorf("error clearing snapshot %s: %w", name, err)
	}

	insert := fmt.Sprintf(`INSERT INTO %s (kun, jupliq, topar, pan, oqitiwshi, kabinet)
               VALUES ($1, $2, $3, $4, $5, $6)`, table)
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("error preparing snapshot insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, string(rec.Day), rec.Slot, rec.Group, rec.Subject, rec.Teacher, rec.Room); err != nil {
			return fmt.Errorf("error inserting snapshot record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing snapshot replace: %w", err)
	}

	r.cache.Delete(name)
	return nil
}

// Load returns the snapshot's records, or an empty slice when nothing was
// stored under the name.
func (r *PostgresSnapshotRepository) Load(ctx context.Context, name string) ([]schedule.Record, error) {
	table, ok := snapshotTables[name]
	if !ok {
		return nil, ErrUnknownSnapshot
	}

	if cached, ok := r.cache.Get(name); ok {
		if records, ok := cached.([]schedule.Record); ok {
			return records, nil
		}
	}

	query := fmt.Sprintf(`SELECT kun, jupliq, topar, pan, oqitiwshi, kabinet FROM %s ORDER BY id`, table)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error loading snapshot %s: %w", name, err)
	}
	defer rows.Close()

	records := make([]schedule.Record, 0)
	for rows.Next() {
		var rec schedule.Record
		var day string
		if err := rows.Scan(&day, &rec.Slot, &rec.Group, &rec.Subject, &rec.Teacher, &rec.Room); err != nil {
			return nil, fmt.Errorf("error scanning snapshot record: %w", err)
		}
		rec.Day = schedule.Day(day)
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshot %s: %w", name, err)
	}

	r.cache.Set(name, records, gocache.DefaultExpiration)
	return records, nil
}
