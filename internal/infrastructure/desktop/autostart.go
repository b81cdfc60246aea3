// Package desktop provides desktop session integration for Linux (XDG).
package desktop

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/bnema/kioskclock/internal/application/port"
	"github.com/bnema/kioskclock/internal/logging"
)

const (
	appName        = "kioskclock"
	entryFileName  = "kioskclock.desktop"
	filePerm       = 0o644
	dirPerm        = 0o755
	autostartDelay = 5
)

// entryTemplate is the freedesktop.org autostart entry format.
// %s placeholder for executable path.
const entryTemplate = `[Desktop Entry]
Version=1.1
Type=Application
Name=Kiosk Clock
Comment=Keep the kiosk clock display awake
Exec=%s run
Terminal=false
NoDisplay=true
X-GNOME-Autostart-enabled=true
X-GNOME-Autostart-Delay=%d
`

// Autostart implements port.Autostart with an XDG autostart entry.
type Autostart struct {
	dir      string
	execPath func() (string, error)
}

var _ port.Autostart = (*Autostart)(nil)

// NewAutostart creates an adapter writing entries into dir.
func NewAutostart(dir string) *Autostart {
	return &Autostart{dir: dir, execPath: executablePath}
}

// DefaultAutostartDir returns $XDG_CONFIG_HOME/autostart.
func DefaultAutostartDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "autostart"), nil
}

// executablePath returns the path to the kioskclock executable.
func executablePath() (string, error) {
	execPath, err := os.Executable()
	if err == nil {
		if resolved, symlinkErr := filepath.EvalSymlinks(execPath); symlinkErr == nil {
			execPath = resolved
		}
		return execPath, nil
	}

	path, err := exec.LookPath(appName)
	if err != nil {
		return "", fmt.Errorf("cannot find %s executable: %w", appName, err)
	}
	return path, nil
}

func (a *Autostart) entryPath() string {
	return filepath.Join(a.dir, entryFileName)
}

// Status checks whether the autostart entry exists.
func (a *Autostart) Status(ctx context.Context) (*port.AutostartStatus, error) {
	status := &port.AutostartStatus{EntryPath: a.entryPath()}

	if _, err := os.Stat(status.EntryPath); err == nil {
		status.Installed = true
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("stat autostart entry: %w", err)
	}

	if execPath, err := a.execPath(); err == nil {
		status.ExecutablePath = execPath
	}

	logging.FromContext(ctx).Debug().
		Bool("installed", status.Installed).
		Str("entry_path", status.EntryPath).
		Str("exec_path", status.ExecutablePath).
		Msg("autostart status")

	return status, nil
}

// Install writes the autostart entry pointing at the running executable.
func (a *Autostart) Install(ctx context.Context) (string, error) {
	execPath, err := a.execPath()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(a.dir, dirPerm); err != nil {
		return "", fmt.Errorf("create autostart dir: %w", err)
	}

	path := a.entryPath()
	content := fmt.Sprintf(entryTemplate, execPath, autostartDelay)
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return "", fmt.Errorf("write autostart entry: %w", err)
	}

	logging.FromContext(ctx).Info().Str("path", path).Msg("autostart entry installed")
	return path, nil
}

// Remove deletes the autostart entry. A missing entry is not an error.
func (a *Autostart) Remove(ctx context.Context) error {
	log := logging.FromContext(ctx)
	path := a.entryPath()

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", path).Msg("autostart entry not found (already removed)")
			return nil
		}
		return fmt.Errorf("remove autostart entry: %w", err)
	}

	log.Info().Str("path", path).Msg("autostart entry removed")
	return nil
}
