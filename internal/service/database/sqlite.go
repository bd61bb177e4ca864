package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kapu/akin-sheet-go/internal/constants"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLiteService is an embedded SQLite connection, the local stand-in for the
// libSQL database the sheet was first deployed on.
type SQLiteService struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

type SQLiteConfig struct {
	Path         string
	MaxOpenConns int
	MaxIdleConns int
}

func (cfg SQLiteConfig) dsn() string {
	busy := constants.DatabaseConfig.BusyTimeout.Milliseconds()
	return fmt.Sprintf("%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
		filepath.Clean(cfg.Path), busy)
}

func NewSQLiteService(cfg SQLiteConfig, logger *zap.Logger) (*SQLiteService, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if dir := filepath.Dir(filepath.Clean(cfg.Path)); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	applyPoolLimits(db, cfg.MaxOpenConns, cfg.MaxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), constants.DatabaseConfig.ConnectTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite: %w", err)
	}

	logger.Info("SQLite opened", zap.String("path", cfg.Path))

	return &SQLiteService{
		db:     db,
		path:   cfg.Path,
		logger: logger,
	}, nil
}

func (s *SQLiteService) DB() *sql.DB {
	return s.db
}

func (s *SQLiteService) Dialect() Dialect {
	return SQLite
}

func (s *SQLiteService) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteService) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
