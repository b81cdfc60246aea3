package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/kioskclock/internal/cli/model"
)

const defaultWatchInterval = 2 * time.Second

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the daemon's wake-lock state live",
	Long:  `Poll the running daemon and redraw its wake-lock state until you quit.`,
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchInterval, "interval", defaultWatchInterval, "poll interval")
}

func runWatch(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if watchInterval <= 0 {
		return fmt.Errorf("--interval must be positive")
	}

	client := app.StatusClient()
	m := model.NewWatchModel(app.Ctx(), app.Theme, client.Addr(), client.WakeLock, watchInterval)

	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}
