package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/kioskclock/internal/application/port"
	"github.com/bnema/kioskclock/internal/application/usecase"
	"github.com/bnema/kioskclock/internal/domain/entity"
	"github.com/bnema/kioskclock/internal/domain/repository"
	"github.com/bnema/kioskclock/internal/infrastructure/config"
	"github.com/bnema/kioskclock/internal/infrastructure/feed"
	"github.com/bnema/kioskclock/internal/infrastructure/httpapi"
	"github.com/bnema/kioskclock/internal/infrastructure/idle"
	"github.com/bnema/kioskclock/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/kioskclock/internal/logging"
)

type service struct {
	name string
	run  func(ctx context.Context) error
}

// Daemon owns one display session: a single keep-alive manager and the
// trigger sources feeding it.
type Daemon struct {
	Manager *usecase.KeepAwakeUseCase

	prune         *usecase.PruneLeaseHistoryUseCase
	retentionDays int
	services      []service
	closers       []func() error
	timer         *StartupTimer
}

func newDaemon(manager *usecase.KeepAwakeUseCase) *Daemon {
	return &Daemon{Manager: manager, timer: NewStartupTimer(nil)}
}

func (d *Daemon) addService(name string, run func(ctx context.Context) error) {
	d.services = append(d.services, service{name: name, run: run})
}

// NewBackends builds the configured wake-lock backends, in order, on conn.
// A nil conn yields backends that report themselves unsupported.
func NewBackends(conn *dbus.Conn, cfg config.WakeLockConfig) []port.WakeLockPlatform {
	backends := make([]port.WakeLockPlatform, 0, len(cfg.Backends))
	for _, name := range cfg.Backends {
		switch name {
		case config.BackendPortal:
			backends = append(backends, idle.NewPortalPlatform(conn, cfg.Reason))
		case config.BackendScreenSaver:
			backends = append(backends, idle.NewScreenSaverPlatform(conn, cfg.AppID, cfg.Reason))
		}
	}
	return backends
}

// ConnectBus opens the session bus. Failure is logged and yields nil: the
// daemon still runs, with every backend unsupported.
func ConnectBus(ctx context.Context) *dbus.Conn {
	conn, err := idle.ConnectSessionBus(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("session bus unavailable, screen may sleep")
		return nil
	}
	return conn
}

// NewDaemon builds the daemon from configuration. When mgr is non-nil its
// file is watched and the log level follows edits.
func NewDaemon(ctx context.Context, cfg *config.Config, mgr *config.Manager) (*Daemon, error) {
	timer := NewStartupTimer(nil)

	conn := ConnectBus(ctx)
	timer.Mark("bus")

	var history *sqlite.LazyDB
	var repo repository.LeaseHistoryRepository
	if cfg.History.Enabled {
		history = sqlite.NewLazyDB(cfg.Database.Path)
		repo = sqlite.NewLazyLeaseHistoryRepository(history)
	}

	chain := idle.NewChainPlatform(NewBackends(conn, cfg.WakeLock)...)
	d := newDaemon(usecase.NewKeepAwakeUseCase(chain, repo, nil))
	d.timer = timer

	if history != nil {
		d.prune = usecase.NewPruneLeaseHistoryUseCase(repo, nil)
		d.retentionDays = cfg.History.RetentionDays
		d.closers = append(d.closers, history.Close)
	}
	if conn != nil {
		d.closers = append(d.closers, conn.Close)
		watcher := idle.NewVisibilityWatcher(conn, d.Manager)
		d.addService("visibility", func(ctx context.Context) error {
			// Losing screensaver signals only loses a trigger source.
			if err := watcher.Run(ctx); err != nil {
				logging.FromContext(ctx).Warn().Err(err).Msg("visibility watcher stopped")
			}
			<-ctx.Done()
			return nil
		})
	}

	if cfg.Server.Enabled {
		var finance port.FinanceFeedSource
		if cfg.Feeds.FinancePath != "" {
			finance = feed.NewFinanceFile(cfg.Feeds.FinancePath)
		}
		server := httpapi.New(httpapi.Config{
			Listen:            cfg.Server.Listen,
			InteractionRate:   cfg.Server.InteractionRate,
			InteractionBurst:  cfg.Server.InteractionBurst,
			FinanceStaleAfter: cfg.FinanceStaleAfter(),
		}, d.Manager, finance, nil)
		d.addService("httpapi", server.Start)
	}

	if mgr != nil {
		mgr.OnConfigChange(func(c *config.Config) {
			zerolog.SetGlobalLevel(logging.ParseLevel(c.Logging.Level))
		})
		if err := mgr.Watch(); err != nil {
			d.Close()
			return nil, fmt.Errorf("watch config: %w", err)
		}
	}

	return d, nil
}

// Run acquires the wake lock for the session, serves triggers until ctx is
// done, then releases. It returns the first service failure.
func (d *Daemon) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)

	g, gctx := errgroup.WithContext(ctx)

	if d.prune != nil {
		g.Go(func() error {
			pruneCtx := logging.WithComponent(gctx, "history")
			if _, err := d.prune.Execute(pruneCtx, d.retentionDays); err != nil {
				log.Warn().Err(err).Msg("failed to prune lease history")
			}
			return nil
		})
	}

	// Process start is the mount of the display session.
	d.Manager.HandleTrigger(logging.WithComponent(ctx, "daemon"), entity.TriggerMount)
	d.timer.Mark("first_acquire")
	d.timer.Log(ctx)

	for _, svc := range d.services {
		g.Go(func() error {
			svcCtx := logging.WithComponent(gctx, svc.name)
			if err := svc.run(svcCtx); err != nil {
				return fmt.Errorf("%s: %w", svc.name, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		return nil
	})

	err := g.Wait()

	d.Manager.HandleTrigger(logging.WithComponent(context.WithoutCancel(ctx), "daemon"), entity.TriggerUnmount)
	log.Info().Bool("held", d.Manager.IsHeld()).Msg("display session ended")

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// Close releases the bus connection and database.
func (d *Daemon) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		_ = d.closers[i]()
	}
	d.closers = nil
}
