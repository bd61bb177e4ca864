package sheet

import (
	"context"

	"github.com/kapu/akin-sheet-go/internal/domain"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Aggregator composes the profile and the three collections into one view.
type Aggregator struct {
	profiles  *ProfileStore
	abilities *AbilityStore
	virtues   *TraitStore
	flaws     *TraitStore
	logger    *zap.Logger
}

func NewAggregator(profiles *ProfileStore, abilities *AbilityStore, virtues, flaws *TraitStore, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		profiles:  profiles,
		abilities: abilities,
		virtues:   virtues,
		flaws:     flaws,
		logger:    logger,
	}
}

// ReadAll issues the four reads concurrently. Any failure fails the whole read.
func (a *Aggregator) ReadAll(ctx context.Context) (*domain.CompositeState, error) {
	var (
		profile   *domain.CharacterProfile
		abilities []domain.Ability
		virtues   []domain.Virtue
		flaws     []domain.Flaw
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) (err error) {
		profile, err = a.profiles.Read(ctx)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		abilities, err = a.abilities.List(ctx)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		virtues, err = a.virtues.List(ctx)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		flaws, err = a.flaws.List(ctx)
		return err
	})

	if err := p.Wait(); err != nil {
		a.logger.Error("Failed to aggregate character state", zap.Error(err))
		return nil, err
	}

	return &domain.CompositeState{
		Profile:   profile,
		Abilities: nonNil(abilities),
		Virtues:   nonNil(virtues),
		Flaws:     nonNil(flaws),
	}, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
