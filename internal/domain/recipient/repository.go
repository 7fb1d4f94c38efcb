package recipient

import "context"

// Repository defines the operations for persisting and retrieving profiles.
type Repository interface {
	Save(ctx context.Context, profile *Profile) error
	Get(ctx context.Context, userID int64) (*Profile, error)
	LoadAll(ctx context.Context) (map[int64]*Profile, error)
}
