package sheet

import (
	"github.com/kapu/akin-sheet-go/internal/constants"
	"github.com/kapu/akin-sheet-go/internal/domain"
	"github.com/kapu/akin-sheet-go/internal/util"
)

type (
	AbilityStore = CollectionStore[domain.Ability, domain.AbilityInput]
	TraitStore   = CollectionStore[domain.Trait, domain.TraitInput]
)

func AbilityKind() Kind[domain.Ability, domain.AbilityInput] {
	return Kind[domain.Ability, domain.AbilityInput]{
		Name:     "ability",
		Table:    constants.Tables.Abilities,
		IDPrefix: constants.IDPrefixes.Ability,
		Missing: func(in domain.AbilityInput) []string {
			var missing []string
			if util.IsBlank(in.Name) {
				missing = append(missing, "name")
			}
			if in.Value == nil {
				missing = append(missing, "value")
			}
			return missing
		},
		Build: func(id string, in domain.AbilityInput) domain.Ability {
			return domain.Ability{
				ID:        id,
				Name:      in.Name,
				Value:     *in.Value,
				Specialty: copyPtr(in.Specialty),
			}
		},
	}
}

func VirtueKind() Kind[domain.Trait, domain.TraitInput] {
	return traitKind("virtue", constants.Tables.Virtues, constants.IDPrefixes.Virtue)
}

func FlawKind() Kind[domain.Trait, domain.TraitInput] {
	return traitKind("flaw", constants.Tables.Flaws, constants.IDPrefixes.Flaw)
}

func traitKind(name, table, prefix string) Kind[domain.Trait, domain.TraitInput] {
	return Kind[domain.Trait, domain.TraitInput]{
		Name:     name,
		Table:    table,
		IDPrefix: prefix,
		Missing: func(in domain.TraitInput) []string {
			var missing []string
			if util.IsBlank(in.Name) {
				missing = append(missing, "name")
			}
			if util.IsBlank(in.Description) {
				missing = append(missing, "description")
			}
			return missing
		},
		Build: func(id string, in domain.TraitInput) domain.Trait {
			t := domain.Trait{
				ID:          id,
				Name:        in.Name,
				Description: in.Description,
				Page:        copyPtr(in.Page),
			}
			if in.IsMajor != nil {
				t.IsMajor = *in.IsMajor
			}
			return t
		},
	}
}

func copyPtr[V any](p *V) *V {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
