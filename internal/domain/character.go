package domain

import "time"

// DefaultProfileID is the well-known identity of the singleton character sheet.
const DefaultProfileID = "akin"

// CharacteristicKeys are the eight ability-score keys, in sheet order.
var CharacteristicKeys = []string{"int", "per", "str", "sta", "pre", "com", "dex", "qik"}

// ArtKeys are the fifteen magic-art keys: five techniques followed by ten forms.
var ArtKeys = []string{
	"creo", "intellego", "muto", "perdo", "rego",
	"animal", "aquam", "auram", "corpus", "herbam",
	"ignem", "imaginem", "mentem", "terram", "vim",
}

// AttributeSet maps a fixed key set to integer scores.
type AttributeSet map[string]int

// NewAttributeSet returns a set holding every key with a zero score.
func NewAttributeSet(keys []string) AttributeSet {
	set := make(AttributeSet, len(keys))
	for _, key := range keys {
		set[key] = 0
	}
	return set
}

func DefaultCharacteristics() AttributeSet {
	return NewAttributeSet(CharacteristicKeys)
}

func DefaultArts() AttributeSet {
	return NewAttributeSet(ArtKeys)
}

// CharacterProfile is the typed read model of the singleton profile row.
type CharacterProfile struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	House           string       `json:"house"`
	Age             *int         `json:"age"`
	Characteristics AttributeSet `json:"characteristics"`
	Arts            AttributeSet `json:"arts"`
	Spells          string       `json:"spells"`
	Notes           string       `json:"notes"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// ProfileInput is the body of a profile upsert. Every field is optional;
// nil means "not supplied" and is replaced by the encode-time default.
type ProfileInput struct {
	Name            *string      `json:"name"`
	House           *string      `json:"house"`
	Age             *int         `json:"age"`
	Characteristics AttributeSet `json:"characteristics"`
	Arts            AttributeSet `json:"arts"`
	Spells          *string      `json:"spells"`
	Notes           *string      `json:"notes"`
}

// CompositeState is the read-only aggregate returned by the primary read.
// Profile is nil only when the singleton row has never been written.
type CompositeState struct {
	Profile   *CharacterProfile `json:"profile"`
	Abilities []Ability         `json:"abilities"`
	Virtues   []Virtue          `json:"virtues"`
	Flaws     []Flaw            `json:"flaws"`
}
