package sheet

import (
	"context"
	"database/sql"
	"strings"

	"github.com/kapu/akin-sheet-go/internal/domain"
	"github.com/kapu/akin-sheet-go/internal/service/database"
	"github.com/kapu/akin-sheet-go/pkg/errors"
	"go.uber.org/zap"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// Table describes how one collection kind maps onto its SQL table.
// Columns[0] must be the primary key and Values must follow Columns order.
type Table[T domain.Record] struct {
	Name    string
	Columns []string
	Scan    func(rowScanner) (T, error)
	Values  func(T) []any
}

type SQLCollectionRepository[T domain.Record] struct {
	table  Table[T]
	run    sqlRunner
	logger *zap.Logger

	selectAll string
	selectOne string
	exists    string
	insert    string
	update    string
	remove    string
}

func NewSQLCollectionRepository[T domain.Record](svc database.Service, table Table[T], logger *zap.Logger) *SQLCollectionRepository[T] {
	cols := strings.Join(table.Columns, ", ")
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(table.Columns)), ", ")

	sets := make([]string, 0, len(table.Columns)-1)
	for _, col := range table.Columns[1:] {
		sets = append(sets, col+" = ?")
	}

	return &SQLCollectionRepository[T]{
		table:     table,
		run:       newSQLRunner(svc, logger),
		logger:    logger,
		selectAll: "SELECT " + cols + " FROM " + table.Name + " ORDER BY " + svc.Dialect().OrderBy("name") + ", id ASC",
		selectOne: "SELECT " + cols + " FROM " + table.Name + " WHERE id = ?",
		exists:    "SELECT 1 FROM " + table.Name + " WHERE id = ?",
		insert:    "INSERT INTO " + table.Name + " (" + cols + ") VALUES (" + placeholders + ")",
		update:    "UPDATE " + table.Name + " SET " + strings.Join(sets, ", ") + " WHERE id = ?",
		remove:    "DELETE FROM " + table.Name + " WHERE id = ?",
	}
}

func (r *SQLCollectionRepository[T]) List(ctx context.Context) ([]T, error) {
	rows, err := r.run.query(ctx, r.selectAll)
	if err != nil {
		return nil, r.storeError("failed to list rows", "list", err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := r.table.Scan(rows)
		if err != nil {
			return nil, r.storeError("failed to scan row", "list", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, r.storeError("failed to iterate rows", "list", err)
	}
	return items, nil
}

func (r *SQLCollectionRepository[T]) Find(ctx context.Context, id string) (*T, error) {
	item, err := r.table.Scan(r.run.queryRow(ctx, r.selectOne, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, r.storeError("failed to query row", "find", err)
	}
	return &item, nil
}

func (r *SQLCollectionRepository[T]) Exists(ctx context.Context, id string) (bool, error) {
	var one int
	err := r.run.queryRow(ctx, r.exists, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, r.storeError("failed to probe row", "exists", err)
	}
	return true, nil
}

func (r *SQLCollectionRepository[T]) Insert(ctx context.Context, item T) error {
	if _, err := r.run.exec(ctx, r.insert, r.table.Values(item)...); err != nil {
		return r.storeError("failed to insert row", "insert", err)
	}
	return nil
}

func (r *SQLCollectionRepository[T]) Replace(ctx context.Context, item T) error {
	values := r.table.Values(item)
	args := make([]any, 0, len(values))
	args = append(args, values[1:]...)
	args = append(args, values[0])
	if _, err := r.run.exec(ctx, r.update, args...); err != nil {
		return r.storeError("failed to update row", "update", err)
	}
	return nil
}

func (r *SQLCollectionRepository[T]) Delete(ctx context.Context, id string) error {
	if _, err := r.run.exec(ctx, r.remove, id); err != nil {
		return r.storeError("failed to delete row", "delete", err)
	}
	return nil
}

func (r *SQLCollectionRepository[T]) storeError(message, operation string, err error) error {
	return errors.NewStoreError(message, operation, r.table.Name, err)
}
