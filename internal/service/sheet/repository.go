package sheet

import (
	"context"

	"github.com/kapu/akin-sheet-go/internal/domain"
)

// ProfileRepository persists the singleton profile row.
type ProfileRepository interface {
	// FindProfile returns nil, nil when the row has never been written.
	FindProfile(ctx context.Context, id string) (*ProfileRow, error)
	// UpsertProfile atomically inserts the row or replaces every column of the
	// existing one except created_at.
	UpsertProfile(ctx context.Context, row ProfileRow) error
}

// CollectionRepository persists the rows of one collection kind.
type CollectionRepository[T domain.Record] interface {
	// List returns every row ordered by name (byte-wise), then id.
	List(ctx context.Context) ([]T, error)
	// Find returns nil, nil when id does not exist.
	Find(ctx context.Context, id string) (*T, error)
	Exists(ctx context.Context, id string) (bool, error)
	Insert(ctx context.Context, item T) error
	// Replace overwrites every mutable column of item.ID; a missing id is a no-op.
	Replace(ctx context.Context, item T) error
	// Delete removes id; a missing id is a no-op.
	Delete(ctx context.Context, id string) error
}
