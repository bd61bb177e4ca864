// Package sheet is the character-state store: the singleton profile, the
// ability/virtue/flaw collections and the composite read over all of them.
package sheet

import (
	"github.com/kapu/akin-sheet-go/internal/constants"
	"github.com/kapu/akin-sheet-go/internal/domain"
	"github.com/kapu/akin-sheet-go/internal/service/database"
	"go.uber.org/zap"
)

// Sheet bundles the stores that serve one character.
type Sheet struct {
	Profile   *ProfileStore
	Abilities *AbilityStore
	Virtues   *TraitStore
	Flaws     *TraitStore
	State     *Aggregator
}

// Repositories is the storage backend a Sheet is built on.
type Repositories struct {
	Profile   ProfileRepository
	Abilities CollectionRepository[domain.Ability]
	Virtues   CollectionRepository[domain.Trait]
	Flaws     CollectionRepository[domain.Trait]
}

func New(repos Repositories, profileID string, logger *zap.Logger) *Sheet {
	profiles := NewProfileStore(repos.Profile, NewProfileCodec(logger.Named("codec")), profileID, logger.Named("profile"))
	abilities := NewCollectionStore(AbilityKind(), repos.Abilities, logger.Named("collection"))
	virtues := NewCollectionStore(VirtueKind(), repos.Virtues, logger.Named("collection"))
	flaws := NewCollectionStore(FlawKind(), repos.Flaws, logger.Named("collection"))

	return &Sheet{
		Profile:   profiles,
		Abilities: abilities,
		Virtues:   virtues,
		Flaws:     flaws,
		State:     NewAggregator(profiles, abilities, virtues, flaws, logger.Named("aggregator")),
	}
}

// SQLRepositories returns repositories backed by an open database service.
func SQLRepositories(svc database.Service, logger *zap.Logger) Repositories {
	repoLogger := logger.Named("sql")
	return Repositories{
		Profile:   NewSQLProfileRepository(svc, repoLogger),
		Abilities: NewSQLCollectionRepository(svc, AbilityTable(), repoLogger),
		Virtues:   NewSQLCollectionRepository(svc, TraitTable(constants.Tables.Virtues), repoLogger),
		Flaws:     NewSQLCollectionRepository(svc, TraitTable(constants.Tables.Flaws), repoLogger),
	}
}

// MemoryRepositories returns empty in-process repositories.
func MemoryRepositories() Repositories {
	return Repositories{
		Profile:   NewMemoryProfileRepository(),
		Abilities: NewMemoryCollectionRepository[domain.Ability](constants.Tables.Abilities),
		Virtues:   NewMemoryCollectionRepository[domain.Trait](constants.Tables.Virtues),
		Flaws:     NewMemoryCollectionRepository[domain.Trait](constants.Tables.Flaws),
	}
}
