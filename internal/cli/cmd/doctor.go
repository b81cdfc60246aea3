package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/kioskclock/internal/application/port"
	"github.com/bnema/kioskclock/internal/application/usecase"
	"github.com/bnema/kioskclock/internal/bootstrap"
	"github.com/bnema/kioskclock/internal/cli/styles"
	"github.com/bnema/kioskclock/internal/infrastructure/feed"
	"github.com/bnema/kioskclock/internal/infrastructure/idle"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check wake-lock backends and the finance feed",
	Long: `Doctor checks what the daemon needs to keep the screen awake.

It reports:
- whether the session bus is reachable
- which configured wake-lock backends are available
- whether the finance feed loads and is fresh

Exits non-zero when no backend is available.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	cfg := app.Config

	conn := bootstrap.ConnectBus(ctx)
	if conn != nil {
		defer conn.Close()
	}

	var financeSrc port.FinanceFeedSource
	if cfg.Feeds.FinancePath != "" {
		financeSrc = feed.NewFinanceFile(cfg.Feeds.FinancePath)
	}

	uc := usecase.NewRunDoctorUseCase(bootstrap.NewBackends(conn, cfg.WakeLock), financeSrc, cfg.FinanceStaleAfter(), nil)
	out := uc.Execute(ctx)

	report := styles.DoctorReport{OverallOK: out.OK}
	if conn != nil {
		report.Bus = idle.SessionBusAddress()
	}
	for _, b := range out.Backends {
		report.Backends = append(report.Backends, styles.DoctorBackendCheck{Name: b.Name, Supported: b.Supported})
	}
	if out.Feed != nil {
		report.Feed = &styles.DoctorFeedReport{
			Location:  out.Feed.Location,
			Loaded:    out.Feed.Loaded,
			Error:     out.Feed.Error,
			Items:     out.Feed.Items,
			UpdatedAt: out.Feed.UpdatedAt,
			Status:    out.Feed.Status,
			Stale:     out.Feed.Stale,
		}
	}

	fmt.Println(styles.NewDoctorRenderer(app.Theme).Render(report))

	if !out.OK {
		return fmt.Errorf("no wake-lock backend available")
	}
	return nil
}
