package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/kioskclock/internal/cli/styles"
	"github.com/bnema/kioskclock/internal/infrastructure/desktop"
)

var autostartCmd = &cobra.Command{
	Use:   "autostart",
	Short: "Manage starting the daemon with the display session",
	Long: `Show whether an XDG autostart entry launches 'kioskclock run' at login.

Examples:
  kioskclock autostart
  kioskclock autostart install
  kioskclock autostart remove`,
	RunE: runAutostartStatus,
}

var autostartInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the autostart entry",
	RunE:  runAutostartInstall,
}

var autostartRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the autostart entry",
	RunE:  runAutostartRemove,
}

func init() {
	rootCmd.AddCommand(autostartCmd)
	autostartCmd.AddCommand(autostartInstallCmd)
	autostartCmd.AddCommand(autostartRemoveCmd)
}

func newAutostart() (*desktop.Autostart, error) {
	dir, err := desktop.DefaultAutostartDir()
	if err != nil {
		return nil, err
	}
	return desktop.NewAutostart(dir), nil
}

func runAutostartStatus(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	a, err := newAutostart()
	if err != nil {
		return err
	}

	status, err := a.Status(app.Ctx())
	if err != nil {
		return err
	}

	t := app.Theme
	if status.Installed {
		fmt.Println(t.SuccessStyle.Render(styles.IconCheck+" Autostart enabled") + " " + t.Subtle.Render(status.EntryPath))
	} else {
		fmt.Println(t.WarningStyle.Render(styles.IconX+" Autostart disabled") + " " + t.Subtle.Render("run 'kioskclock autostart install'"))
	}
	return nil
}

func runAutostartInstall(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	a, err := newAutostart()
	if err != nil {
		return err
	}

	path, err := a.Install(app.Ctx())
	if err != nil {
		return err
	}
	fmt.Println(app.Theme.SuccessStyle.Render(styles.IconCheck+" Installed") + " " + app.Theme.Subtle.Render(path))
	return nil
}

func runAutostartRemove(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	a, err := newAutostart()
	if err != nil {
		return err
	}

	if err := a.Remove(app.Ctx()); err != nil {
		return err
	}
	fmt.Println(app.Theme.SuccessStyle.Render(styles.IconCheck + " Autostart entry removed"))
	return nil
}
