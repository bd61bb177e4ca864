package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/kapu/akin-sheet-go/internal/constants"
	"go.uber.org/zap"
)

func TestRebind(t *testing.T) {
	query := "UPDATE t SET name=?, note='why?' WHERE id=?"

	if got := SQLite.Rebind(query); got != query {
		t.Fatalf("sqlite rebind changed query: %q", got)
	}
	want := "UPDATE t SET name=$1, note='why?' WHERE id=$2"
	if got := Postgres.Rebind(query); got != want {
		t.Fatalf("postgres rebind = %q, want %q", got, want)
	}
}

func TestOrderBy(t *testing.T) {
	if got := SQLite.OrderBy("name"); got != "name COLLATE BINARY ASC" {
		t.Fatalf("sqlite order by = %q", got)
	}
	if got := Postgres.OrderBy("name"); got != `name COLLATE "C" ASC` {
		t.Fatalf("postgres order by = %q", got)
	}
}

func openTestSQLite(t *testing.T) *SQLiteService {
	t.Helper()
	svc, err := NewSQLiteService(SQLiteConfig{Path: filepath.Join(t.TempDir(), "nested", "akin.db")}, zap.NewNop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func TestSchemaEnsureReadyIsIdempotent(t *testing.T) {
	svc := openTestSQLite(t)
	ctx := context.Background()

	schema := NewSchema(svc, zap.NewNop())
	if err := schema.EnsureReady(ctx); err != nil {
		t.Fatalf("first EnsureReady: %v", err)
	}
	if err := schema.EnsureReady(ctx); err != nil {
		t.Fatalf("second EnsureReady: %v", err)
	}
	if err := NewSchema(svc, zap.NewNop()).EnsureReady(ctx); err != nil {
		t.Fatalf("EnsureReady on existing tables: %v", err)
	}

	for _, table := range []string{
		constants.Tables.Profile,
		constants.Tables.Abilities,
		constants.Tables.Virtues,
		constants.Tables.Flaws,
	} {
		var name string
		err := svc.DB().QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}
}

func TestSchemaReportsStoreErrorOnClosedDB(t *testing.T) {
	svc := openTestSQLite(t)
	_ = svc.Close()

	err := NewSchema(svc, zap.NewNop()).EnsureReady(context.Background())
	if err == nil {
		t.Fatalf("expected error on closed database")
	}
}

func TestNewSQLiteServiceRequiresPath(t *testing.T) {
	if _, err := NewSQLiteService(SQLiteConfig{Path: "  "}, zap.NewNop()); err == nil {
		t.Fatalf("expected error for blank path")
	}
}
