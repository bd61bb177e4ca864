package app

import (
	"context"
	"fmt"

	"github.com/kapu/akin-sheet-go/internal/config"
	sheethttp "github.com/kapu/akin-sheet-go/internal/http"
	"github.com/kapu/akin-sheet-go/internal/service/database"
	"github.com/kapu/akin-sheet-go/internal/service/sheet"
	"go.uber.org/zap"
)

// Container bundles assembled services for constructing runtime components
// like the HTTP server and the import/export tools.
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	DB     database.Service
	Sheet  *sheet.Sheet

	closers []func()
}

// NewServer instantiates the HTTP server over the pre-built sheet.
func (c *Container) NewServer() (*sheethttp.Server, error) {
	if c == nil || c.Sheet == nil {
		return nil, fmt.Errorf("sheet not initialized")
	}
	return sheethttp.NewServer(c.Config.HTTP.Addr(), sheethttp.RouterConfig{
		Sheet:          c.Sheet,
		DB:             c.DB,
		AllowedOrigins: c.Config.HTTP.AllowedOrigins,
		Logger:         c.Logger,
	}), nil
}

// Close releases everything Build opened, in reverse order.
func (c *Container) Close() {
	if c == nil {
		return
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

// Build opens the configured database, makes sure the schema exists and wires
// the sheet stores on top of it. A schema failure aborts the build.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	db, err := OpenDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}
	closers = append(closers, func() {
		_ = db.Close()
	})

	if err := database.NewSchema(db, logger.Named("schema")).EnsureReady(ctx); err != nil {
		return nil, fmt.Errorf("failed to prepare schema: %w", err)
	}

	s := sheet.New(sheet.SQLRepositories(db, logger), cfg.Sheet.ProfileID, logger)
	logger.Info("Character sheet ready",
		zap.String("driver", db.Dialect().Name),
		zap.String("profile_id", s.Profile.ProfileID()),
	)

	return &Container{
		Config:  cfg,
		Logger:  logger,
		DB:      db,
		Sheet:   s,
		closers: closers,
	}, nil
}

// OpenDatabase connects to the backend selected by cfg.Database.Driver.
func OpenDatabase(cfg *config.Config, logger *zap.Logger) (database.Service, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		svc, err := database.NewPostgresService(database.PostgresConfig{
			Host:         cfg.Postgres.Host,
			Port:         cfg.Postgres.Port,
			User:         cfg.Postgres.User,
			Password:     cfg.Postgres.Password,
			Database:     cfg.Postgres.Database,
			SSLMode:      cfg.Postgres.SSLMode,
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres service: %w", err)
		}
		return svc, nil
	case config.DriverSQLite:
		svc, err := database.NewSQLiteService(database.SQLiteConfig{
			Path:         cfg.SQLite.Path,
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create sqlite service: %w", err)
		}
		return svc, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}
