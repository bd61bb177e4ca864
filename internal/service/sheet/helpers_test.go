package sheet

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/kapu/akin-sheet-go/internal/service/database"
	"go.uber.org/zap"
)

type backend struct {
	name string
	open func(t *testing.T) Repositories
}

func backends() []backend {
	return []backend{
		{name: "memory", open: func(*testing.T) Repositories { return MemoryRepositories() }},
		{name: "sqlite", open: func(t *testing.T) Repositories { return SQLRepositories(openSQLite(t), zap.NewNop()) }},
	}
}

func openSQLite(t *testing.T) database.Service {
	t.Helper()
	svc, err := database.NewSQLiteService(database.SQLiteConfig{Path: filepath.Join(t.TempDir(), "akin.db")}, zap.NewNop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })

	if err := database.NewSchema(svc, zap.NewNop()).EnsureReady(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return svc
}

// stepClock advances by step on every call.
type stepClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

func newStepClock() *stepClock {
	return &stepClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), step: time.Second}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(c.step)
	return c.t
}

func ptr[V any](v V) *V {
	return &v
}
