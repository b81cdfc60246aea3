package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/kioskclock/internal/cli/styles"
)

var (
	historyJSON  bool
	historyLimit int
	pruneDays    int
)

const defaultHistoryLimit = 20

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent wake-lock leases",
	Long: `List the most recent wake-lock leases, newest first, with the backend that
granted them, the trigger that requested them, and how they ended.`,
	RunE: runHistory,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete ended leases older than a number of days",
	Long: `Delete ended leases older than --days. Defaults to history.retention_days
from the config file. Active leases are never removed.`,
	RunE: runHistoryPrune,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyPruneCmd)

	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().IntVar(&historyLimit, "limit", defaultHistoryLimit, "maximum leases to show")
	historyPruneCmd.Flags().IntVar(&pruneDays, "days", 0, "retention in days (0 uses the configured value)")
}

type historyJSONEntry struct {
	ID         string     `json:"id"`
	Backend    string     `json:"backend"`
	Trigger    string     `json:"trigger"`
	AcquiredAt time.Time  `json:"acquired_at"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	EndReason  string     `json:"end_reason,omitempty"`
	HeldSecs   float64    `json:"held_seconds"`
}

func runHistory(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	now := time.Now()
	out, err := app.ListHistoryUC.Execute(app.Ctx(), historyLimit, now)
	if err != nil {
		return err
	}

	if historyJSON {
		entries := make([]historyJSONEntry, 0, len(out.Records))
		for _, r := range out.Records {
			entries = append(entries, historyJSONEntry{
				ID:         r.ID,
				Backend:    r.Backend,
				Trigger:    r.Trigger,
				AcquiredAt: r.AcquiredAt,
				EndedAt:    r.EndedAt,
				EndReason:  string(r.EndReason),
				HeldSecs:   r.Duration(now).Seconds(),
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	renderer := styles.NewHistoryRenderer(app.Theme)
	fmt.Println(renderer.Render(out.Records, out.TotalHeld, out.Revoked, now))
	return nil
}

func runHistoryPrune(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	days := pruneDays
	if days <= 0 {
		days = app.Config.History.RetentionDays
	}
	if days <= 0 {
		fmt.Println(app.Theme.Subtle.Render("Retention disabled, nothing to prune"))
		return nil
	}

	deleted, err := app.PruneHistoryUC.Execute(app.Ctx(), days)
	if err != nil {
		return err
	}

	fmt.Println(app.Theme.SuccessStyle.Render(fmt.Sprintf("%s Deleted %d lease(s) older than %d days", styles.IconCheck, deleted, days)))
	return nil
}
