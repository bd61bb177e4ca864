package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/kapu/akin-sheet-go/internal/app"
	"github.com/kapu/akin-sheet-go/internal/config"
	"github.com/kapu/akin-sheet-go/internal/constants"
	"github.com/kapu/akin-sheet-go/internal/util"
	"go.uber.org/zap"
)

var pretty = flag.Bool("pretty", false, "Indent the JSON output")

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger, err := util.NewCLILogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ServerConfig.BuildTimeout)
	err = run(ctx, cfg, logger, os.Stdout, *pretty)
	cancel()
	_ = logger.Sync()
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}
}

// run returns instead of exiting so the store is always closed.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, out io.Writer, pretty bool) error {
	container, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open sheet store: %w", err)
	}
	defer container.Close()

	state, err := container.Sheet.State.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("read sheet: %w", err)
	}

	enc := json.NewEncoder(out)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(state); err != nil {
		return fmt.Errorf("write sheet: %w", err)
	}
	return nil
}
