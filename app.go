package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"katalog/internal/config"
	"katalog/internal/handlers"
	"katalog/internal/middleware"
	"katalog/internal/persistence"
	"katalog/internal/repositories"
	"katalog/internal/services"
	"katalog/pkg/console"
	"katalog/pkg/logger"

	"go.uber.org/zap"
)

// dataMenuKey is where the data management sub-menu sits on the main menu.
const dataMenuKey = "10"

// App holds the wired components of the catalog console.
type App struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *services.ProductService
	menu    *console.Menu

	shutdownOnce sync.Once
	shutdownErr  error
}

// NewApp builds every component from cfg.
func NewApp(cfg *config.Config) (*App, error) {
	log, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
		Filename: cfg.LogPath(),
		Stderr:   cfg.Logger.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// --- Initialize Repositories ---
	productRepo := repositories.NewMemoryProductRepository()
	store := persistence.NewFileStore(cfg.DataDir, cfg.SnapshotFile, log)

	// --- Initialize Services ---
	productService := services.NewProductService(productRepo, store, log)

	// --- Initialize Handlers ---
	menu := console.New("Electronics Catalog")
	menu.Use(middleware.Recover(log), middleware.Logger(log.Named("console")))
	handlers.NewProductHandler(productService).RegisterRoutes(menu)
	handlers.NewDataHandler(productService, cfg.CSVFile).RegisterRoutes(menu, dataMenuKey)

	return &App{
		cfg:     cfg,
		logger:  log,
		service: productService,
		menu:    menu,
	}, nil
}

// Start loads the saved catalog. An unreadable snapshot leaves the catalog
// empty; only a data directory that cannot be created is fatal. On first run
// the sample catalog is seeded when enabled.
func (a *App) Start(out io.Writer) error {
	n, err := a.service.LoadSnapshot()
	switch {
	case errors.Is(err, persistence.ErrDataDir):
		return err
	case err != nil:
		fmt.Fprintf(out, "Warning: the saved catalog could not be read (%v). Starting with an empty catalog.\n", err)
		return nil
	}
	a.logger.Info("catalog loaded", zap.Int("products", n), zap.String("data_dir", a.cfg.DataDir))

	if n == 0 && a.cfg.SeedSampleData {
		seeded, err := a.service.SeedSampleData()
		if err != nil {
			fmt.Fprintf(out, "Warning: sample data not fully saved: %v\n", err)
		}
		a.logger.Info("first run, sample catalog added", zap.Int("products", seeded))
	}
	return nil
}

// Run starts the app and serves the menu on in and out until the user
// exits or the input ends.
func (a *App) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if err := a.Start(out); err != nil {
		return err
	}
	fmt.Fprintf(out, "%d products in the catalog.\n", a.service.Statistics().Count)

	if err := a.menu.Run(ctx, console.NewCtx(in, out)); err != nil {
		return err
	}
	fmt.Fprintln(out, "Goodbye.")
	return nil
}

// Shutdown writes a final snapshot and flushes the log. Only the first call
// does any work; later calls return its result. A snapshot that could not be
// loaded is left on disk untouched unless the catalog was saved since.
func (a *App) Shutdown() error {
	a.shutdownOnce.Do(func() {
		a.shutdownErr = a.saveOnExit()
		_ = a.logger.Sync()
	})
	return a.shutdownErr
}

func (a *App) saveOnExit() error {
	if a.service.SnapshotUnreadable() {
		a.logger.Warn("unreadable snapshot kept, nothing saved on exit")
		return nil
	}
	if err := a.service.SaveSnapshot(); err != nil {
		a.logger.Error("final snapshot failed", zap.Error(err))
		return err
	}
	a.logger.Info("catalog saved on exit")
	return nil
}
