package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kapu/akin-sheet-go/internal/app"
	"github.com/kapu/akin-sheet-go/internal/config"
	"github.com/kapu/akin-sheet-go/internal/constants"
	"github.com/kapu/akin-sheet-go/internal/service/sheet"
	"github.com/kapu/akin-sheet-go/internal/util"
	"go.uber.org/zap"
)

// CLI flags
var (
	file    = flag.String("file", "", "Path to the sheet JSON document")
	dryRun  = flag.Bool("dry-run", false, "Validate and import into memory without touching the database")
	replace = flag.Bool("replace", false, "Delete existing abilities, virtues and flaws before importing")
)

type options struct {
	file    string
	dryRun  bool
	replace bool
}

func main() {
	flag.Parse()

	if *file == "" {
		log.Fatal("-file is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ServerConfig.BuildTimeout)
	err = run(ctx, cfg, logger, options{file: *file, dryRun: *dryRun, replace: *replace})
	cancel()
	_ = logger.Sync()
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}
}

// run returns instead of exiting so the store is always closed.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts options) error {
	f, err := os.Open(opts.file)
	if err != nil {
		return fmt.Errorf("open %s: %w", opts.file, err)
	}
	doc, err := sheet.DecodeDocument(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.file, err)
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("document validation failed: %w", err)
	}
	log.Printf("✓ Loaded %s (abilities=%d virtues=%d flaws=%d)", opts.file, len(doc.Abilities), len(doc.Virtues), len(doc.Flaws))

	var target *sheet.Sheet
	if opts.dryRun {
		log.Println("[DRY RUN MODE] No database changes will be made")
		target = sheet.New(sheet.MemoryRepositories(), cfg.Sheet.ProfileID, logger)
	} else {
		container, err := app.Build(ctx, cfg, logger)
		if err != nil {
			return fmt.Errorf("open sheet store: %w", err)
		}
		defer container.Close()
		target = container.Sheet
	}

	result, err := sheet.Import(ctx, target, doc, sheet.ImportOptions{Replace: opts.replace}, logger)
	if err != nil {
		return err
	}

	log.Printf("✓ Import completed: profile=%t abilities=%d virtues=%d flaws=%d deleted=%d",
		result.Profile, result.Abilities, result.Virtues, result.Flaws, result.Deleted)
	return nil
}
