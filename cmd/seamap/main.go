// Package main provides the seamap binary entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/custodia-labs/seamap/internal/adapters/driven/config/file"
	"github.com/custodia-labs/seamap/internal/adapters/driven/dataset/csvfile"
	"github.com/custodia-labs/seamap/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/seamap/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/seamap/internal/adapters/driving/cli"
	"github.com/custodia-labs/seamap/internal/core/domain"
	"github.com/custodia-labs/seamap/internal/core/services"
	"github.com/custodia-labs/seamap/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(openServices)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// openServices opens the config file and the configured initiative store.
func openServices(opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	logger.Debug("dataset backend: %s", settings.Dataset.Backend)

	if settings.Dataset.Backend == domain.DatasetBackendMemory {
		store := memory.NewInitiativeStore()
		seedMemoryStore(store, settings.Dataset.Path)
		return &cli.Services{Store: store, Settings: settingsService}, nil
	}

	db, err := sqlite.NewStore(opts.DataDir)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	logger.Debug("database: %s", db.Path())

	return &cli.Services{
		Store:    db.InitiativeStore(),
		Settings: settingsService,
		Close:    db.Close,
	}, nil
}

// seedMemoryStore imports the CSV at path. A missing or unreadable file
// leaves the store empty so settings can still be changed.
func seedMemoryStore(store *memory.InitiativeStore, path string) {
	if path == "" {
		logger.Warn("memory backend without dataset.path: no initiatives loaded")
		return
	}
	dataset := services.NewDatasetService(services.NewEventBus(), store, csvfile.NewSource(path))
	if _, err := dataset.Import(context.Background()); err != nil {
		logger.Warn("loading %s: %v", path, err)
	}
}
