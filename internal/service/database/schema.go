package database

import (
	"context"
	"sync"

	"github.com/kapu/akin-sheet-go/internal/constants"
	"github.com/kapu/akin-sheet-go/pkg/errors"
	"go.uber.org/zap"
)

// Schema guarantees the sheet tables exist. EnsureReady does its work once per
// process; later calls return the first outcome.
type Schema struct {
	svc    Service
	logger *zap.Logger

	once sync.Once
	err  error
}

func NewSchema(svc Service, logger *zap.Logger) *Schema {
	return &Schema{svc: svc, logger: logger}
}

func schemaStatements() []struct{ table, ddl string } {
	return []struct{ table, ddl string }{
		{constants.Tables.Profile, `
			CREATE TABLE IF NOT EXISTS ` + constants.Tables.Profile + ` (
				id TEXT PRIMARY KEY,
				name TEXT,
				house TEXT,
				age INTEGER,
				characteristics_json TEXT,
				arts_json TEXT,
				spells TEXT,
				notes TEXT,
				created_at TEXT NOT NULL,
				updated_at TEXT NOT NULL
			)`},
		{constants.Tables.Abilities, `
			CREATE TABLE IF NOT EXISTS ` + constants.Tables.Abilities + ` (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				value INTEGER NOT NULL,
				specialty TEXT
			)`},
		{constants.Tables.Virtues, traitDDL(constants.Tables.Virtues)},
		{constants.Tables.Flaws, traitDDL(constants.Tables.Flaws)},
	}
}

func traitDDL(table string) string {
	return `
			CREATE TABLE IF NOT EXISTS ` + table + ` (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				description TEXT NOT NULL,
				is_major INTEGER NOT NULL DEFAULT 0,
				page INTEGER
			)`
}

func (s *Schema) EnsureReady(ctx context.Context) error {
	s.once.Do(func() {
		s.err = s.create(ctx)
	})
	return s.err
}

func (s *Schema) create(ctx context.Context) error {
	db := s.svc.DB()
	for _, stmt := range schemaStatements() {
		if _, err := db.ExecContext(ctx, stmt.ddl); err != nil {
			s.logger.Error("Failed to ensure table", zap.String("table", stmt.table), zap.Error(err))
			return errors.NewStoreError("schema not ready", "ensure_schema", stmt.table, err)
		}
	}
	s.logger.Info("Schema ready",
		zap.String("dialect", s.svc.Dialect().Name),
		zap.Int("tables", len(schemaStatements())),
	)
	return nil
}
