package sheet

import (
	"context"
	"database/sql"
	"time"

	"github.com/kapu/akin-sheet-go/internal/constants"
	"github.com/kapu/akin-sheet-go/internal/service/database"
	"github.com/kapu/akin-sheet-go/internal/util"
	"github.com/kapu/akin-sheet-go/pkg/errors"
	"go.uber.org/zap"
)

type SQLProfileRepository struct {
	run    sqlRunner
	logger *zap.Logger
}

func NewSQLProfileRepository(svc database.Service, logger *zap.Logger) *SQLProfileRepository {
	return &SQLProfileRepository{
		run:    newSQLRunner(svc, logger),
		logger: logger,
	}
}

// FindProfile retrieves the profile row by its fixed identity
func (r *SQLProfileRepository) FindProfile(ctx context.Context, id string) (*ProfileRow, error) {
	query := `
		SELECT id, name, house, age, characteristics_json, arts_json,
		       spells, notes, created_at, updated_at
		FROM ` + constants.Tables.Profile + `
		WHERE id = ?
	`

	var (
		row       ProfileRow
		createdAt sql.NullString
		updatedAt sql.NullString
	)

	err := r.run.queryRow(ctx, query, id).Scan(
		&row.ID, &row.Name, &row.House, &row.Age, &row.CharacteristicsJSON, &row.ArtsJSON,
		&row.Spells, &row.Notes, &createdAt, &updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewStoreError("failed to query profile", "find", constants.Tables.Profile, err)
	}

	row.CreatedAt = r.parseTimestamp("created_at", createdAt)
	row.UpdatedAt = r.parseTimestamp("updated_at", updatedAt)
	return &row, nil
}

func (r *SQLProfileRepository) parseTimestamp(column string, value sql.NullString) (t time.Time) {
	if !value.Valid {
		return t
	}
	parsed, err := util.ParseTimestamp(value.String)
	if err != nil {
		r.logger.Warn("Unreadable profile timestamp", zap.String("column", column), zap.String("value", value.String))
		return t
	}
	return parsed
}

// UpsertProfile writes the whole row in a single INSERT ... ON CONFLICT statement.
func (r *SQLProfileRepository) UpsertProfile(ctx context.Context, row ProfileRow) error {
	query := `
		INSERT INTO ` + constants.Tables.Profile + ` (
			id, name, house, age, characteristics_json, arts_json,
			spells, notes, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			house = excluded.house,
			age = excluded.age,
			characteristics_json = excluded.characteristics_json,
			arts_json = excluded.arts_json,
			spells = excluded.spells,
			notes = excluded.notes,
			updated_at = excluded.updated_at
	`

	_, err := r.run.exec(ctx, query,
		row.ID, row.Name, row.House, row.Age, row.CharacteristicsJSON, row.ArtsJSON,
		row.Spells, row.Notes, util.FormatTimestamp(row.CreatedAt), util.FormatTimestamp(row.UpdatedAt),
	)
	if err != nil {
		return errors.NewStoreError("failed to upsert profile", "upsert", constants.Tables.Profile, err)
	}
	return nil
}
