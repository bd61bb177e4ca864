package sheet

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kapu/akin-sheet-go/internal/domain"
	"github.com/kapu/akin-sheet-go/pkg/errors"
	"go.uber.org/zap"
)

// Kind parametrizes a CollectionStore with one collection's rules.
type Kind[T domain.Record, In any] struct {
	Name     string
	Table    string
	IDPrefix string
	// Missing lists the required fields absent from input, in declaration order.
	Missing func(In) []string
	// Build turns input into a full row with the given id.
	Build func(id string, in In) T
}

// CollectionStore is CRUD over one child table. Rows are independent of each
// other and of the profile.
type CollectionStore[T domain.Record, In any] struct {
	kind   Kind[T, In]
	repo   CollectionRepository[T]
	newID  func() string
	logger *zap.Logger
}

func NewCollectionStore[T domain.Record, In any](kind Kind[T, In], repo CollectionRepository[T], logger *zap.Logger) *CollectionStore[T, In] {
	return &CollectionStore[T, In]{
		kind: kind,
		repo: repo,
		newID: func() string {
			return kind.IDPrefix + "-" + uuid.NewString()
		},
		logger: logger.With(zap.String("kind", kind.Name)),
	}
}

func (s *CollectionStore[T, In]) Kind() string {
	return s.kind.Name
}

// List returns every row ordered by name.
func (s *CollectionStore[T, In]) List(ctx context.Context) ([]T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.kind.Name, err)
	}
	return items, nil
}

// Create validates input, assigns a fresh id and returns the stored row.
func (s *CollectionStore[T, In]) Create(ctx context.Context, in In) (T, error) {
	var zero T

	if missing := s.kind.Missing(in); len(missing) > 0 {
		return zero, errors.NewValidationError(s.kind.Name, missing)
	}

	id := s.newID()
	if err := s.repo.Insert(ctx, s.kind.Build(id, in)); err != nil {
		return zero, fmt.Errorf("create %s: %w", s.kind.Name, err)
	}

	created, err := s.reread(ctx, id)
	if err != nil {
		return zero, err
	}
	s.logger.Info("Collection item created", zap.String("id", id), zap.String("name", created.RecordName()))
	return created, nil
}

// Update replaces every mutable field of id. Unknown ids fail with NotFoundError.
func (s *CollectionStore[T, In]) Update(ctx context.Context, id string, in In) (T, error) {
	var zero T

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return zero, fmt.Errorf("update %s: %w", s.kind.Name, err)
	}
	if !exists {
		return zero, errors.NewNotFoundError(s.kind.Name, id)
	}
	if missing := s.kind.Missing(in); len(missing) > 0 {
		return zero, errors.NewValidationError(s.kind.Name, missing)
	}

	if err := s.repo.Replace(ctx, s.kind.Build(id, in)); err != nil {
		return zero, fmt.Errorf("update %s: %w", s.kind.Name, err)
	}

	updated, err := s.repo.Find(ctx, id)
	if err != nil {
		return zero, fmt.Errorf("update %s: %w", s.kind.Name, err)
	}
	if updated == nil {
		// Deleted between the existence probe and the write.
		return zero, errors.NewNotFoundError(s.kind.Name, id)
	}
	s.logger.Info("Collection item updated", zap.String("id", id))
	return *updated, nil
}

// Delete removes id. Deleting an unknown id succeeds.
func (s *CollectionStore[T, In]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s: %w", s.kind.Name, err)
	}
	s.logger.Info("Collection item deleted", zap.String("id", id))
	return nil
}

func (s *CollectionStore[T, In]) reread(ctx context.Context, id string) (T, error) {
	var zero T
	item, err := s.repo.Find(ctx, id)
	if err != nil {
		return zero, fmt.Errorf("create %s: %w", s.kind.Name, err)
	}
	if item == nil {
		return zero, errors.NewStoreError(s.kind.Name+" missing after write", "create", s.kind.Table, nil)
	}
	return *item, nil
}
