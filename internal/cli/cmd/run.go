package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/kioskclock/internal/bootstrap"
	"github.com/bnema/kioskclock/internal/logging"
)

var (
	runListen   string
	runNoServer bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the wake-lock daemon",
	Long: `Run holds the screen wake lock for one display session.

The lock is requested at startup, re-requested whenever the display becomes
visible again or is touched, and released on SIGINT/SIGTERM.

The trigger API has no authentication and answers any origin, so keep
--listen on a loopback address.

Examples:
  kioskclock run
  kioskclock run --listen 127.0.0.1:8123
  kioskclock run --no-server`,
	RunE: runDaemon,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runListen, "listen", "", "override the HTTP trigger API address (keep it on loopback)")
	runCmd.Flags().BoolVar(&runNoServer, "no-server", false, "disable the HTTP trigger API")
}

func runDaemon(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	cfg := app.Config
	if runListen != "" {
		cfg.Server.Listen = runListen
	}
	if runNoServer {
		cfg.Server.Enabled = false
	}

	logger, logCleanup, err := bootstrap.NewLogger(cfg.Logging)
	defer logCleanup()
	if err != nil {
		logger.Warn().Err(err).Msg("file logging unavailable, logging to stderr only")
	}

	ctx := logging.WithContext(context.Background(), logger)
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	app.SetCtx(ctx)

	logger.Info().
		Str("version", app.BuildInfo.Version).
		Str("config", configFileOf(app.Manager)).
		Msg("starting kioskclock")

	daemon, err := bootstrap.NewDaemon(ctx, cfg, app.Manager)
	if err != nil {
		return fmt.Errorf("build daemon: %w", err)
	}
	defer daemon.Close()

	if err := daemon.Run(ctx); err != nil {
		return err
	}
	logger.Info().Msg("kioskclock stopped")
	return nil
}
