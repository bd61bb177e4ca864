package sheet

import (
	"context"
	"database/sql"

	"github.com/kapu/akin-sheet-go/internal/service/database"
	"go.uber.org/zap"
)

// sqlRunner rebinds and logs every statement before handing it to database/sql.
type sqlRunner struct {
	db      *sql.DB
	dialect database.Dialect
	logger  *zap.Logger
}

func newSQLRunner(svc database.Service, logger *zap.Logger) sqlRunner {
	return sqlRunner{db: svc.DB(), dialect: svc.Dialect(), logger: logger}
}

func (r sqlRunner) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	query = r.dialect.Rebind(query)
	r.logger.Debug("SQL exec", zap.String("sql", query), zap.Any("args", args))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("SQL exec failed", zap.String("sql", query), zap.Any("args", args), zap.Error(err))
	}
	return res, err
}

func (r sqlRunner) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	query = r.dialect.Rebind(query)
	r.logger.Debug("SQL query", zap.String("sql", query), zap.Any("args", args))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("SQL query failed", zap.String("sql", query), zap.Any("args", args), zap.Error(err))
	}
	return rows, err
}

func (r sqlRunner) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	query = r.dialect.Rebind(query)
	r.logger.Debug("SQL query row", zap.String("sql", query), zap.Any("args", args))
	return r.db.QueryRowContext(ctx, query, args...)
}
