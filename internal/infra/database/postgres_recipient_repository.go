package database

import (
	"context"
	"database/sql"
	"fmt"

	"schedule_notification_bot/internal/domain/recipient"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// Custom errors
var ErrRecipientNotFound = fmt.Errorf("recipient not found")

type PostgresRecipientRepository struct {
	db *sql.DB
}

func NewPostgresRecipientRepository(db *sql.DB) *PostgresRecipientRepository {
	return &PostgresRecipientRepository{db: db}
}

// Save upserts the profile; profiles are created on first contact and only
// ever mutated afterwards, never deleted.
func (r *PostgresRecipientRepository) Save(ctx context.Context, p *recipient.Profile) error {
	query := `INSERT INTO users (user_id, role, teacher_name, group_name, notifications)
               VALUES ($1, $2, $3, $4, $5)
               ON CONFLICT (user_id) DO UPDATE
               SET role = EXCLUDED.role,
                   teacher_name = EXCLUDED.teacher_name,
                   group_name = EXCLUDED.group_name,
                   notifications = EXCLUDED.notifications`

	if _, err := r.db.ExecContext(ctx, query, p.UserID, string(p.Role), p.TeacherName, p.Group, p.Subscribed); err != nil {
		return fmt.Errorf("error saving recipient profile: %w", err)
	}
	return nil
}

func (r *PostgresRecipientRepository) Get(ctx context.Context, userID int64) (*recipient.Profile, error) {
	query := `SELECT user_id, role, teacher_name, group_name, notifications
               FROM users WHERE user_id = $1`
	p := &recipient.Profile{}
	var role string
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&p.UserID, &role, &p.TeacherName, &p.Group, &p.Subscribed)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRecipientNotFound
		}
		return nil, fmt.Errorf("error getting recipient profile: %w", err)
	}
	p.Role = recipient.Role(role)
	return p, nil
}

func (r *PostgresRecipientRepository) LoadAll(ctx context.Context) (map[int64]*recipient.Profile, error) {
	query := `SELECT user_id, role, teacher_name, group_name, notifications FROM users`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error loading recipient directory: %w", err)
	}
	defer rows.Close()

	directory := make(map[int64]*recipient.Profile)
	for rows.Next() {
		p := &recipient.Profile{}
		var role string
		if err := rows.Scan(&p.UserID, &role, &p.TeacherName, &p.Group, &p.Subscribed); err != nil {
			return nil, fmt.Errorf("error scanning recipient profile: %w", err)
		}
		p.Role = recipient.Role(role)
		directory[p.UserID] = p
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recipient directory: %w", err)
	}
	return directory, nil
}
