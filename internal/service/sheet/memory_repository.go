package sheet

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/kapu/akin-sheet-go/internal/domain"
	"github.com/kapu/akin-sheet-go/pkg/errors"
)

// MemoryProfileRepository keeps the profile row in process memory. It mirrors
// the SQL repository's semantics and is used by tests and the import dry run.
type MemoryProfileRepository struct {
	mu   sync.RWMutex
	rows map[string]ProfileRow
}

func NewMemoryProfileRepository() *MemoryProfileRepository {
	return &MemoryProfileRepository{rows: make(map[string]ProfileRow)}
}

func (r *MemoryProfileRepository) FindProfile(ctx context.Context, id string) (*ProfileRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *MemoryProfileRepository) UpsertProfile(ctx context.Context, row ProfileRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.rows[row.ID]; ok {
		row.CreatedAt = existing.CreatedAt
	}
	r.rows[row.ID] = row
	return nil
}

// MemoryCollectionRepository keeps one collection kind in process memory.
type MemoryCollectionRepository[T domain.Record] struct {
	table string

	mu    sync.RWMutex
	items map[string]T
}

func NewMemoryCollectionRepository[T domain.Record](table string) *MemoryCollectionRepository[T] {
	return &MemoryCollectionRepository[T]{
		table: table,
		items: make(map[string]T),
	}
}

func (r *MemoryCollectionRepository[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	items := make([]T, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	r.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		if items[i].RecordName() != items[j].RecordName() {
			return items[i].RecordName() < items[j].RecordName()
		}
		return items[i].RecordID() < items[j].RecordID()
	})
	return items, nil
}

func (r *MemoryCollectionRepository[T]) Find(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r *MemoryCollectionRepository[T]) Exists(ctx context.Context, id string) (bool, error) {
	item, err := r.Find(ctx, id)
	return item != nil, err
}

func (r *MemoryCollectionRepository[T]) Insert(ctx context.Context, item T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.RecordID()]; ok {
		return errors.NewStoreError("failed to insert row", "insert", r.table,
			fmt.Errorf("duplicate id %q", item.RecordID()))
	}
	r.items[item.RecordID()] = item
	return nil
}

func (r *MemoryCollectionRepository[T]) Replace(ctx context.Context, item T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.RecordID()]; ok {
		r.items[item.RecordID()] = item
	}
	return nil
}

func (r *MemoryCollectionRepository[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
