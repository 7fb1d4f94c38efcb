package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const (
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 25
	defaultConnMaxLifetime = 5 * time.Minute
	defaultConnMaxIdleTime = 1 * time.Minute
)

// NewPostgresConnection creates and returns a new PostgreSQL database connection.
// It also pings the database to ensure connectivity.
func NewPostgresConnection(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(defaultMaxOpenConns)
	db.SetMaxIdleConns(defaultMaxIdleConns)
	db.SetConnMaxLifetime(defaultConnMaxLifetime)
	db.SetConnMaxIdleTime(defaultConnMaxIdleTime)

	if err = db.Ping(); err != nil {
		db.Close() // Close the connection if ping fails
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// EnsureSchema creates the snapshot and user tables when they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS original_schedule (
			id SERIAL PRIMARY KEY,
			kun TEXT NOT NULL,
			jupliq INTEGER NOT NULL,
			topar TEXT NOT NULL,
			pan TEXT NOT NULL,
			oqitiwshi TEXT NOT NULL,
			kabinet TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS changes_schedule (
			id SERIAL PRIMARY KEY,
			kun TEXT NOT NULL,
			jupliq INTEGER NOT NULL,
			topar TEXT NOT NULL,
			pan TEXT NOT NULL,
			oqitiwshi TEXT NOT NULL,
			kabinet TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			user_id BIGINT PRIMARY KEY,
			role TEXT NOT NULL DEFAULT '',
			teacher_name TEXT NOT NULL DEFAULT '',
			group_name TEXT NOT NULL DEFAULT '',
			notifications BOOLEAN NOT NULL DEFAULT TRUE
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
