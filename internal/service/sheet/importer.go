package sheet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/kapu/akin-sheet-go/internal/domain"
	"github.com/kapu/akin-sheet-go/pkg/errors"
	"go.uber.org/zap"
)

// Document is the portable form of a whole sheet used by the import tool.
// It mirrors the composite state, but items carry no ids.
type Document struct {
	Profile   *domain.ProfileInput  `json:"profile"`
	Abilities []domain.AbilityInput `json:"abilities"`
	Virtues   []domain.TraitInput   `json:"virtues"`
	Flaws     []domain.TraitInput   `json:"flaws"`
}

func DecodeDocument(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode sheet document: %w", err)
	}
	return &doc, nil
}

type ImportOptions struct {
	// Replace deletes every existing collection item before importing.
	Replace bool
}

type ImportResult struct {
	Profile   bool
	Abilities int
	Virtues   int
	Flaws     int
	Deleted   int
}

// Validate checks every item before anything is written. The first invalid
// item is reported with its position.
func (d *Document) Validate() error {
	if err := validateAll("abilities", AbilityKind(), d.Abilities); err != nil {
		return err
	}
	if err := validateAll("virtues", VirtueKind(), d.Virtues); err != nil {
		return err
	}
	return validateAll("flaws", FlawKind(), d.Flaws)
}

func validateAll[T domain.Record, In any](section string, kind Kind[T, In], items []In) error {
	for i, in := range items {
		if missing := kind.Missing(in); len(missing) > 0 {
			return fmt.Errorf("%s[%d]: %w", section, i, errors.NewValidationError(kind.Name, missing))
		}
	}
	return nil
}

// Import writes doc into s. The document is validated up front; a store failure
// midway leaves the items written so far in place.
func Import(ctx context.Context, s *Sheet, doc *Document, opts ImportOptions, logger *zap.Logger) (*ImportResult, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	result := &ImportResult{}
	if opts.Replace {
		deleted, err := clearSheet(ctx, s)
		if err != nil {
			return nil, err
		}
		result.Deleted = deleted
		logger.Info("Existing collection items removed", zap.Int("count", deleted))
	}

	if doc.Profile != nil {
		if _, err := s.Profile.Upsert(ctx, *doc.Profile); err != nil {
			return nil, err
		}
		result.Profile = true
	}

	var err error
	if result.Abilities, err = createAll(ctx, s.Abilities, doc.Abilities); err != nil {
		return nil, err
	}
	if result.Virtues, err = createAll(ctx, s.Virtues, doc.Virtues); err != nil {
		return nil, err
	}
	if result.Flaws, err = createAll(ctx, s.Flaws, doc.Flaws); err != nil {
		return nil, err
	}

	logger.Info("Sheet imported",
		zap.Bool("profile", result.Profile),
		zap.Int("abilities", result.Abilities),
		zap.Int("virtues", result.Virtues),
		zap.Int("flaws", result.Flaws),
	)
	return result, nil
}

func createAll[T domain.Record, In any](ctx context.Context, store *CollectionStore[T, In], items []In) (int, error) {
	for i, in := range items {
		if _, err := store.Create(ctx, in); err != nil {
			return i, err
		}
	}
	return len(items), nil
}

func clearSheet(ctx context.Context, s *Sheet) (int, error) {
	total := 0
	for _, clearFn := range []func(context.Context) (int, error){
		clearStore(s.Abilities),
		clearStore(s.Virtues),
		clearStore(s.Flaws),
	} {
		n, err := clearFn(ctx)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func clearStore[T domain.Record, In any](store *CollectionStore[T, In]) func(context.Context) (int, error) {
	return func(ctx context.Context) (int, error) {
		items, err := store.List(ctx)
		if err != nil {
			return 0, err
		}
		for _, item := range items {
			if err := store.Delete(ctx, item.RecordID()); err != nil {
				return 0, err
			}
		}
		return len(items), nil
	}
}
