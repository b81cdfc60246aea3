package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/kioskclock/internal/cli/styles"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the running daemon holds the wake lock",
	Long: `Query the running daemon over its HTTP API and print the wake-lock state.

Exits non-zero when the daemon cannot be reached.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output as JSON")
}

func runStatus(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	client := app.StatusClient()
	view, err := client.WakeLock(app.Ctx())
	renderer := styles.NewStatusRenderer(app.Theme)

	if err != nil {
		if !statusJSON {
			fmt.Println(renderer.RenderUnreachable(client.Addr(), err))
		}
		return fmt.Errorf("daemon unreachable: %w", err)
	}

	if statusJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	fmt.Println(renderer.Render(view, time.Now()))
	return nil
}
