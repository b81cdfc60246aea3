package config

import (
	"path/filepath"
	"time"

	"github.com/bnema/kioskclock/internal/domain/entity"
)

const (
	defaultMaxLogAgeDays     = 7
	defaultListen            = "127.0.0.1:7788"
	defaultInteractionRate   = 2.0 // per second
	defaultInteractionBurst  = 5
	defaultRetentionDays     = 90
	defaultWakeLockReason    = "Kiosk clock display"
	defaultAppID             = "kioskclock"
	defaultAccent            = "#4A90E2"
	defaultFinanceFeedName   = "finance.json"
	defaultFinanceStaleAfter = entity.DefaultFinanceStaleAfter
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	var logDir, financePath string
	if dir, err := GetLogDir(); err == nil {
		logDir = dir
	}
	if dir, err := GetDataDir(); err == nil {
		financePath = filepath.Join(dir, defaultFinanceFeedName)
	}

	return &Config{
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			MaxAge:        defaultMaxLogAgeDays,
			LogDir:        logDir,
			EnableFileLog: false,
		},
		WakeLock: WakeLockConfig{
			Backends: []string{BackendPortal, BackendScreenSaver},
			Reason:   defaultWakeLockReason,
			AppID:    defaultAppID,
		},
		Server: ServerConfig{
			Enabled:          true,
			Listen:           defaultListen,
			InteractionRate:  defaultInteractionRate,
			InteractionBurst: defaultInteractionBurst,
		},
		History: HistoryConfig{
			Enabled:       true,
			RetentionDays: defaultRetentionDays,
		},
		Feeds: FeedsConfig{
			FinancePath: financePath,
			StaleAfter:  defaultFinanceStaleAfter.String(),
		},
		Appearance: AppearanceConfig{
			Accent: defaultAccent,
		},
	}
}

// FinanceStaleAfter returns the parsed feed staleness threshold, falling
// back to the default for an invalid value.
func (c *Config) FinanceStaleAfter() time.Duration {
	d, err := time.ParseDuration(c.Feeds.StaleAfter)
	if err != nil || d <= 0 {
		return defaultFinanceStaleAfter
	}
	return d
}
