package desktop

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAutostart(t *testing.T) *Autostart {
	t.Helper()
	a := NewAutostart(filepath.Join(t.TempDir(), "autostart"))
	a.execPath = func() (string, error) { return "/usr/bin/kioskclock", nil }
	return a
}

func TestAutostart_InstallStatusRemove(t *testing.T) {
	ctx := context.Background()
	a := newTestAutostart(t)

	status, err := a.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.Installed)
	assert.Equal(t, "/usr/bin/kioskclock", status.ExecutablePath)

	path, err := a.Install(ctx)
	require.NoError(t, err)
	assert.Equal(t, status.EntryPath, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Exec=/usr/bin/kioskclock run")
	assert.Contains(t, string(data), "X-GNOME-Autostart-Delay=5")

	status, err = a.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.Installed)

	require.NoError(t, a.Remove(ctx))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, a.Remove(ctx), "removing twice is a no-op")
}

func TestAutostart_InstallWithoutExecutable(t *testing.T) {
	a := newTestAutostart(t)
	a.execPath = func() (string, error) { return "", errors.New("not found") }

	_, err := a.Install(context.Background())
	require.EqualError(t, err, "not found")
}

func TestDefaultAutostartDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	dir, err := DefaultAutostartDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg-config/autostart", dir)
}
