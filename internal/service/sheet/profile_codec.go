package sheet

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/kapu/akin-sheet-go/internal/domain"
	"github.com/kapu/akin-sheet-go/internal/util"
	"github.com/kapu/akin-sheet-go/pkg/errors"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

const (
	attrCharacteristics = "characteristics"
	attrArts            = "arts"
)

// ProfileRow is the persisted shape of the singleton profile.
type ProfileRow struct {
	ID                  string
	Name                sql.NullString
	House               sql.NullString
	Age                 sql.NullInt64
	CharacteristicsJSON sql.NullString
	ArtsJSON            sql.NullString
	Spells              sql.NullString
	Notes               sql.NullString
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ProfileCodec converts between CharacterProfile and ProfileRow. Defaults for
// the structured attributes are applied on decode only; encode records what
// the caller supplied.
type ProfileCodec struct {
	logger *zap.Logger
}

func NewProfileCodec(logger *zap.Logger) *ProfileCodec {
	return &ProfileCodec{logger: logger}
}

// Encode builds the row written by an upsert. Both timestamps are set to now;
// the repository keeps the original created_at when the row already exists.
func (c *ProfileCodec) Encode(id string, input domain.ProfileInput, now time.Time) (ProfileRow, error) {
	row := ProfileRow{
		ID:        id,
		Name:      sql.NullString{String: util.StringOr(input.Name, ""), Valid: true},
		House:     sql.NullString{String: util.StringOr(input.House, ""), Valid: true},
		Spells:    sql.NullString{String: util.StringOr(input.Spells, ""), Valid: true},
		Notes:     sql.NullString{String: util.StringOr(input.Notes, ""), Valid: true},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Age != nil {
		row.Age = sql.NullInt64{Int64: int64(*input.Age), Valid: true}
	}

	var err error
	if row.CharacteristicsJSON, err = encodeAttributes(input.Characteristics); err != nil {
		return ProfileRow{}, fmt.Errorf("encode %s: %w", attrCharacteristics, err)
	}
	if row.ArtsJSON, err = encodeAttributes(input.Arts); err != nil {
		return ProfileRow{}, fmt.Errorf("encode %s: %w", attrArts, err)
	}
	return row, nil
}

func encodeAttributes(set domain.AttributeSet) (sql.NullString, error) {
	if set == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(set)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

// Decode materializes a profile from its row. A nil row decodes to nil.
func (c *ProfileCodec) Decode(row *ProfileRow) *domain.CharacterProfile {
	if row == nil {
		return nil
	}

	profile := &domain.CharacterProfile{
		ID:              row.ID,
		Name:            row.Name.String,
		House:           row.House.String,
		Characteristics: c.decodeAttributes(attrCharacteristics, row.CharacteristicsJSON, domain.CharacteristicKeys),
		Arts:            c.decodeAttributes(attrArts, row.ArtsJSON, domain.ArtKeys),
		Spells:          row.Spells.String,
		Notes:           row.Notes.String,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
	if row.Age.Valid {
		age := int(row.Age.Int64)
		profile.Age = &age
	}
	return profile
}

func (c *ProfileCodec) decodeAttributes(attribute string, blob sql.NullString, keys []string) domain.AttributeSet {
	if !blob.Valid || strings.TrimSpace(blob.String) == "" {
		return domain.NewAttributeSet(keys)
	}

	set, err := parseAttributes(blob.String, keys)
	if err != nil {
		c.logger.Warn("Structured attribute unreadable, using defaults",
			zap.String("attribute", attribute),
			zap.Error(errors.NewDecodeError(attribute, err)),
		)
		return domain.NewAttributeSet(keys)
	}
	return set
}

// parseAttributes reads a serialized map onto the fixed key set. Missing keys
// and nulls score 0, unknown keys are dropped, and any value that is not a
// whole number within int range rejects the whole blob.
func parseAttributes(blob string, keys []string) (domain.AttributeSet, error) {
	dec := json.NewDecoder(strings.NewReader(blob))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if err := dec.Decode(new(json.RawMessage)); err != io.EOF {
		return nil, fmt.Errorf("trailing data after attribute map")
	}
	if raw == nil {
		return nil, fmt.Errorf("blob is null")
	}

	set := domain.NewAttributeSet(keys)
	for _, key := range keys {
		value, ok := raw[key]
		if !ok || value == nil {
			continue
		}
		n, err := attributeValue(value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		set[key] = n
	}
	return set, nil
}

// attributeValue accepts JSON numbers that are whole (2 or 2.0) and decimal
// numeric strings. Fractions, exponents, booleans and out-of-range numbers
// are rejected.
func attributeValue(value any) (int, error) {
	switch v := value.(type) {
	case json.Number:
		// JSON number text has no leading zeros or hex prefix, so cast's
		// base-0 parse is decimal here; it also trims a zero fraction.
		n, err := cast.ToInt64E(v.String())
		if err != nil {
			return 0, fmt.Errorf("not a whole number: %s", v)
		}
		if n < math.MinInt || n > math.MaxInt {
			return 0, fmt.Errorf("out of range: %s", v)
		}
		return int(n), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 0)
		if err != nil {
			return 0, fmt.Errorf("not a decimal integer: %q", v)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}
