package sheet

import (
	"database/sql"

	"github.com/kapu/akin-sheet-go/internal/constants"
	"github.com/kapu/akin-sheet-go/internal/domain"
)

func AbilityTable() Table[domain.Ability] {
	return Table[domain.Ability]{
		Name:    constants.Tables.Abilities,
		Columns: []string{"id", "name", "value", "specialty"},
		Scan: func(s rowScanner) (domain.Ability, error) {
			var (
				a         domain.Ability
				value     int64
				specialty sql.NullString
			)
			if err := s.Scan(&a.ID, &a.Name, &value, &specialty); err != nil {
				return domain.Ability{}, err
			}
			a.Value = int(value)
			if specialty.Valid {
				a.Specialty = &specialty.String
			}
			return a, nil
		},
		Values: func(a domain.Ability) []any {
			var specialty sql.NullString
			if a.Specialty != nil {
				specialty = sql.NullString{String: *a.Specialty, Valid: true}
			}
			return []any{a.ID, a.Name, int64(a.Value), specialty}
		},
	}
}

// TraitTable maps virtues or flaws; is_major is stored as 0/1.
func TraitTable(name string) Table[domain.Trait] {
	return Table[domain.Trait]{
		Name:    name,
		Columns: []string{"id", "name", "description", "is_major", "page"},
		Scan: func(s rowScanner) (domain.Trait, error) {
			var (
				t       domain.Trait
				isMajor int64
				page    sql.NullInt64
			)
			if err := s.Scan(&t.ID, &t.Name, &t.Description, &isMajor, &page); err != nil {
				return domain.Trait{}, err
			}
			t.IsMajor = isMajor != 0
			if page.Valid {
				p := int(page.Int64)
				t.Page = &p
			}
			return t, nil
		},
		Values: func(t domain.Trait) []any {
			var isMajor int64
			if t.IsMajor {
				isMajor = 1
			}
			var page sql.NullInt64
			if t.Page != nil {
				page = sql.NullInt64{Int64: int64(*t.Page), Valid: true}
			}
			return []any{t.ID, t.Name, t.Description, isMajor, page}
		},
	}
}
