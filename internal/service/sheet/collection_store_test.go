package sheet

import (
	"context"
	"strings"
	"testing"

	"github.com/kapu/akin-sheet-go/internal/domain"
	"github.com/kapu/akin-sheet-go/pkg/errors"
	"go.uber.org/zap"
)

func TestAbilityCreateAssignsIDAndSortsByName(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			store := NewCollectionStore(AbilityKind(), b.open(t).Abilities, zap.NewNop())

			for _, name := range []string{"Latin", "awareness lore", "Artes Liberales"} {
				if _, err := store.Create(ctx, domain.AbilityInput{Name: name, Value: ptr(1)}); err != nil {
					t.Fatalf("Create(%s) error = %v", name, err)
				}
			}

			created, err := store.Create(ctx, domain.AbilityInput{Name: "Awareness", Value: ptr(3)})
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if !strings.HasPrefix(created.ID, "abil-") || len(created.ID) <= len("abil-") {
				t.Fatalf("unexpected id %q", created.ID)
			}
			if created.Specialty != nil {
				t.Fatalf("specialty = %v, want nil", *created.Specialty)
			}
			if created.Value != 3 {
				t.Fatalf("value = %d, want 3", created.Value)
			}

			items, err := store.List(ctx)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			var names []string
			for _, item := range items {
				names = append(names, item.Name)
			}
			want := []string{"Artes Liberales", "Awareness", "Latin", "awareness lore"}
			if strings.Join(names, "|") != strings.Join(want, "|") {
				t.Fatalf("order = %v, want %v", names, want)
			}
		})
	}
}

func TestCreateRejectsMissingFieldsWithoutWriting(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			repos := b.open(t)
			abilities := NewCollectionStore(AbilityKind(), repos.Abilities, zap.NewNop())
			flaws := NewCollectionStore(FlawKind(), repos.Flaws, zap.NewNop())

			_, err := abilities.Create(ctx, domain.AbilityInput{Name: "   "})
			var validation *errors.ValidationError
			if !asValidation(err, &validation) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if strings.Join(validation.Fields, ",") != "name,value" {
				t.Fatalf("fields = %v", validation.Fields)
			}

			_, err = flaws.Create(ctx, domain.TraitInput{Name: "Blatant Gift"})
			if !asValidation(err, &validation) || strings.Join(validation.Fields, ",") != "description" {
				t.Fatalf("expected description to be reported, got %v", err)
			}

			if items, _ := abilities.List(ctx); len(items) != 0 {
				t.Fatalf("abilities were written: %v", items)
			}
			if items, _ := flaws.List(ctx); len(items) != 0 {
				t.Fatalf("flaws were written: %v", items)
			}
		})
	}
}

func TestVirtueMajorFlagRoundTripsAsBoolean(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			store := NewCollectionStore(VirtueKind(), b.open(t).Virtues, zap.NewNop())

			created, err := store.Create(ctx, domain.TraitInput{
				Name:        "Gentle Gift",
				Description: "Your Gift does not disturb people or animals.",
				IsMajor:     ptr(true),
				Page:        ptr(44),
			})
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if !created.IsMajor || created.Page == nil || *created.Page != 44 {
				t.Fatalf("unexpected created virtue: %+v", created)
			}
			if !strings.HasPrefix(created.ID, "virt-") {
				t.Fatalf("unexpected id %q", created.ID)
			}

			updated, err := store.Update(ctx, created.ID, domain.TraitInput{
				Name:        "Gentle Gift",
				Description: created.Description,
				IsMajor:     ptr(false),
			})
			if err != nil {
				t.Fatalf("Update() error = %v", err)
			}
			if updated.IsMajor || updated.ID != created.ID {
				t.Fatalf("unexpected updated virtue: %+v", updated)
			}
			if updated.Page != nil {
				t.Fatalf("omitted page must be cleared, got %d", *updated.Page)
			}

			items, err := store.List(ctx)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(items) != 1 || items[0].IsMajor != false {
				t.Fatalf("list = %+v", items)
			}
		})
	}
}

func TestUpdateUnknownIDIsNotFound(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			store := NewCollectionStore(AbilityKind(), b.open(t).Abilities, zap.NewNop())

			existing, err := store.Create(ctx, domain.AbilityInput{Name: "Magic Theory", Value: ptr(5)})
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}

			_, err = store.Update(ctx, "abil-missing", domain.AbilityInput{Name: "Ghost", Value: ptr(1)})
			if !errors.IsNotFound(err) {
				t.Fatalf("expected NotFoundError, got %v", err)
			}

			items, _ := store.List(ctx)
			if len(items) != 1 || items[0] != existing {
				t.Fatalf("store changed: %+v", items)
			}
		})
	}
}

func TestUpdateReplacesOmittedSpecialty(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			store := NewCollectionStore(AbilityKind(), b.open(t).Abilities, zap.NewNop())

			created, err := store.Create(ctx, domain.AbilityInput{Name: "Awareness", Value: ptr(3), Specialty: ptr("alertness")})
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if created.Specialty == nil || *created.Specialty != "alertness" {
				t.Fatalf("specialty not stored: %+v", created)
			}

			updated, err := store.Update(ctx, created.ID, domain.AbilityInput{Name: "Awareness", Value: ptr(4)})
			if err != nil {
				t.Fatalf("Update() error = %v", err)
			}
			if updated.Value != 4 || updated.Specialty != nil {
				t.Fatalf("expected whole-row replace, got %+v", updated)
			}

			_, err = store.Update(ctx, created.ID, domain.AbilityInput{Name: "Awareness"})
			if !errors.IsValidation(err) {
				t.Fatalf("expected ValidationError for missing value, got %v", err)
			}
			items, _ := store.List(ctx)
			if len(items) != 1 || items[0].Value != 4 {
				t.Fatalf("invalid update must not write: %+v", items)
			}
		})
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			store := NewCollectionStore(FlawKind(), b.open(t).Flaws, zap.NewNop())

			kept, err := store.Create(ctx, domain.TraitInput{Name: "Ability Block", Description: "Martial abilities"})
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}

			if err := store.Delete(ctx, "flaw-does-not-exist"); err != nil {
				t.Fatalf("Delete(unknown) error = %v", err)
			}
			items, _ := store.List(ctx)
			if len(items) != 1 || items[0].ID != kept.ID {
				t.Fatalf("list changed after deleting unknown id: %+v", items)
			}

			for i := 0; i < 2; i++ {
				if err := store.Delete(ctx, kept.ID); err != nil {
					t.Fatalf("Delete() attempt %d error = %v", i+1, err)
				}
			}
			if items, _ := store.List(ctx); len(items) != 0 {
				t.Fatalf("expected empty list, got %+v", items)
			}
		})
	}
}

func asValidation(err error, target **errors.ValidationError) bool {
	v, ok := err.(*errors.ValidationError)
	if ok {
		*target = v
	}
	return ok
}

// racingDelete removes the row right after the existence check succeeds.
type racingDelete[T domain.Record] struct {
	CollectionRepository[T]
}

func (r racingDelete[T]) Exists(ctx context.Context, id string) (bool, error) {
	exists, err := r.CollectionRepository.Exists(ctx, id)
	if exists {
		_ = r.CollectionRepository.Delete(ctx, id)
	}
	return exists, err
}

func TestUpdateOfConcurrentlyDeletedItemIsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCollectionRepository[domain.Ability]("akin_abilities")
	store := NewCollectionStore(AbilityKind(), repo, zap.NewNop())

	created, err := store.Create(ctx, domain.AbilityInput{Name: "Awareness", Value: ptr(3)})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	racing := NewCollectionStore(AbilityKind(), racingDelete[domain.Ability]{repo}, zap.NewNop())
	_, err = racing.Update(ctx, created.ID, domain.AbilityInput{Name: "Awareness", Value: ptr(4)})
	if !errors.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if errors.IsStore(err) {
		t.Fatalf("a vanished row is not a store failure: %v", err)
	}
	if items, _ := store.List(ctx); len(items) != 0 {
		t.Fatalf("replace must not resurrect the row: %+v", items)
	}
}
