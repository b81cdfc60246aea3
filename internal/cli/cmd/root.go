// Package cmd provides Cobra CLI commands for kioskclock.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/kioskclock/internal/cli"
	"github.com/bnema/kioskclock/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "kioskclock",
		Short: "Keep a kiosk clock display awake",
		Long: `kioskclock keeps the screen of a kiosk clock display from sleeping.

It holds a single screen wake lock while the display page is shown and
re-acquires it whenever the page becomes visible again or the user
touches the screen.

Features:
  - XDG desktop portal and org.freedesktop.ScreenSaver backends
  - Local HTTP trigger API plus a drop-in script for the display page
  - Lease history in SQLite
  - Finance feed freshness checks

Use 'kioskclock run' to start the daemon, or explore the subcommands to
inspect a running one.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			if buildInfo.Version != "" {
				app.BuildInfo = buildInfo
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
