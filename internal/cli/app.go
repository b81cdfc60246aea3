// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"time"

	"github.com/bnema/kioskclock/internal/application/usecase"
	"github.com/bnema/kioskclock/internal/cli/styles"
	"github.com/bnema/kioskclock/internal/domain/build"
	"github.com/bnema/kioskclock/internal/infrastructure/config"
	"github.com/bnema/kioskclock/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/kioskclock/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Use cases
	ListHistoryUC  *usecase.ListLeaseHistoryUseCase
	PruneHistoryUC *usecase.PruneLeaseHistoryUseCase

	// Opened on first history access only; most commands never touch it.
	db *sqlite.LazyDB

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	cfg, mgr := loadConfig()

	theme := styles.NewTheme(cfg)

	logger, logCleanup, _ := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(cfg.Logging.Level), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{Enabled: false, WriteToStderr: true},
	)
	ctx := logging.WithContext(context.Background(), logger)

	lazy := sqlite.NewLazyDB(cfg.Database.Path)
	historyRepo := sqlite.NewLazyLeaseHistoryRepository(lazy)

	return &App{
		Config:         cfg,
		Manager:        mgr,
		Theme:          theme,
		BuildInfo:      build.Default(),
		ListHistoryUC:  usecase.NewListLeaseHistoryUseCase(historyRepo),
		PruneHistoryUC: usecase.NewPruneLeaseHistoryUseCase(historyRepo, nil),
		db:             lazy,
		ctx:            ctx,
		logCleanup:     logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// SetCtx replaces the application context, e.g. after building the daemon logger.
func (a *App) SetCtx(ctx context.Context) {
	a.ctx = ctx
}

// StatusClient returns a client for the configured daemon endpoint.
func (a *App) StatusClient() *StatusClient {
	return NewStatusClient(a.Config.Server.Listen, 2*time.Second)
}

// loadConfig loads configuration from standard locations. The manager is
// nil when loading failed and defaults are in use.
func loadConfig() (*config.Config, *config.Manager) {
	mgr, err := config.NewManager()
	if err != nil {
		return config.DefaultConfig(), nil
	}

	if err := mgr.Load(); err != nil {
		return config.DefaultConfig(), nil
	}

	return mgr.Get(), mgr
}
