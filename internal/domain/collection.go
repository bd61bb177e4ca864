package domain

// Record is a row of one of the child collections.
type Record interface {
	RecordID() string
	RecordName() string
}

type Ability struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Value     int     `json:"value"`
	Specialty *string `json:"specialty"`
}

func (a Ability) RecordID() string   { return a.ID }
func (a Ability) RecordName() string { return a.Name }

type AbilityInput struct {
	Name      string  `json:"name"`
	Value     *int    `json:"value"`
	Specialty *string `json:"specialty"`
}

// Trait is the shared shape of virtues and flaws.
type Trait struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsMajor     bool   `json:"is_major"`
	Page        *int   `json:"page"`
}

func (t Trait) RecordID() string   { return t.ID }
func (t Trait) RecordName() string { return t.Name }

type (
	Virtue = Trait
	Flaw   = Trait
)

type TraitInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsMajor     *bool  `json:"is_major"`
	Page        *int   `json:"page"`
}
