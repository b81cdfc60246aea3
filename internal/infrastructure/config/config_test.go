package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateXDG points every XDG directory at a fresh temp dir.
func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func loadManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())
	return m
}

func TestDefaultConfig_IsValid(t *testing.T) {
	isolateXDG(t)
	cfg := DefaultConfig()
	normalizeConfig(cfg)

	assert.NoError(t, validateConfig(cfg))
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{BackendPortal, BackendScreenSaver}, cfg.WakeLock.Backends)
	assert.Equal(t, "127.0.0.1:7788", cfg.Server.Listen)
	assert.Equal(t, time.Hour, cfg.FinanceStaleAfter())
}

func TestSetDefaults(t *testing.T) {
	isolateXDG(t)
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
	assert.Equal(t, 5, mgr.viper.GetInt("server.interaction_burst"))
	assert.Equal(t, "1h0m0s", mgr.viper.GetString("feeds.stale_after"))
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)

	m := loadManager(t)
	cfg := m.Get()

	configFile := filepath.Join(root, "config", "kioskclock", "config.toml")
	assert.FileExists(t, configFile)
	assert.FileExists(t, filepath.Join(root, "config", "kioskclock", "config.schema.json"))
	assert.Equal(t, configFile, m.GetConfigFile())

	assert.Equal(t, filepath.Join(root, "data", "kioskclock", "kioskclock.sqlite"), cfg.Database.Path)
	assert.Equal(t, filepath.Join(root, "data", "kioskclock", "finance.json"), cfg.Feeds.FinancePath)
	assert.True(t, cfg.Server.Enabled)
	assert.Equal(t, 90, cfg.History.RetentionDays)
}

func TestManager_LoadReadsFile(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", "kioskclock")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[logging]
level = "DEBUG"
format = "json"

[wake_lock]
backends = ["screensaver", "portal", "screensaver"]

[server]
listen = "0.0.0.0:9000"

[feeds]
stale_after = "30m"
`), 0o600))

	cfg := loadManager(t).Get()

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, []string{BackendScreenSaver, BackendPortal}, cfg.WakeLock.Backends)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Listen)
	assert.Equal(t, 30*time.Minute, cfg.FinanceStaleAfter())
	// Untouched keys keep their defaults.
	assert.Equal(t, 5, cfg.Server.InteractionBurst)
}

func TestManager_EnvOverrides(t *testing.T) {
	isolateXDG(t)
	t.Setenv("KIOSKCLOCK_SERVER_LISTEN", "127.0.0.1:8123")
	t.Setenv("KIOSKCLOCK_LOG_LEVEL", "warn")

	cfg := loadManager(t).Get()

	assert.Equal(t, "127.0.0.1:8123", cfg.Server.Listen)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestManager_LoadRejectsInvalidFile(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", "kioskclock")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[wake_lock]
backends = ["logind"]
`), 0o600))

	m, err := NewManager()
	require.NoError(t, err)
	err = m.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wake_lock.backends")
}

func TestManager_ReloadNotifiesCallbacks(t *testing.T) {
	root := isolateXDG(t)
	m := loadManager(t)

	var got *Config
	m.OnConfigChange(func(c *Config) { got = c })

	configFile := filepath.Join(root, "config", "kioskclock", "config.toml")
	require.NoError(t, os.WriteFile(configFile, []byte("[history]\nretention_days = 3\n"), 0o600))
	require.NoError(t, m.Reload())

	require.NotNil(t, got)
	assert.Equal(t, 3, got.History.RetentionDays)
	assert.Equal(t, 3, m.Get().History.RetentionDays)
}

func TestManager_ReloadKeepsPreviousOnError(t *testing.T) {
	root := isolateXDG(t)
	m := loadManager(t)

	configFile := filepath.Join(root, "config", "kioskclock", "config.toml")
	require.NoError(t, os.WriteFile(configFile, []byte("[history]\nretention_days = -1\n"), 0o600))

	assert.Error(t, m.Reload())
	assert.Equal(t, 90, m.Get().History.RetentionDays)
}

func TestManager_GetReturnsCopy(t *testing.T) {
	isolateXDG(t)
	m := loadManager(t)

	cfg := m.Get()
	cfg.WakeLock.Backends[0] = "mutated"

	assert.Equal(t, BackendPortal, m.Get().WakeLock.Backends[0])
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "kioskclock configuration", doc["title"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"logging", "database", "wake_lock", "server", "history", "feeds", "appearance"} {
		assert.Contains(t, props, key)
	}
}
