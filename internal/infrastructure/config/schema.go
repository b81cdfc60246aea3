package config

// Config represents the complete configuration for kioskclock.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	// WakeLock selects and labels the idle inhibition backends.
	WakeLock WakeLockConfig `mapstructure:"wake_lock" toml:"wake_lock" json:"wake_lock"`
	// Server is the local trigger API the kiosk page talks to.
	Server  ServerConfig  `mapstructure:"server" toml:"server" json:"server"`
	History HistoryConfig `mapstructure:"history" toml:"history" json:"history"`
	// Feeds points at the data documents the page renders.
	Feeds      FeedsConfig      `mapstructure:"feeds" toml:"feeds" json:"feeds"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	MaxAge int    `mapstructure:"max_age" toml:"max_age" json:"max_age" jsonschema:"minimum=0"`

	// File output configuration
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
}

// DatabaseConfig holds the lease history database location.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/kioskclock/kioskclock.sqlite when empty.
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// Wake-lock backend names.
const (
	BackendPortal      = "portal"
	BackendScreenSaver = "screensaver"
)

// WakeLockConfig controls how the display is kept awake.
type WakeLockConfig struct {
	// Backends are tried in order until one grants a lease.
	Backends []string `mapstructure:"backends" toml:"backends" json:"backends" jsonschema:"uniqueItems=true"`
	// Reason is shown by desktops that list active inhibitors.
	Reason string `mapstructure:"reason" toml:"reason" json:"reason"`
	// AppID identifies the application to the screensaver service.
	AppID string `mapstructure:"app_id" toml:"app_id" json:"app_id"`
}

// ServerConfig controls the HTTP trigger API.
type ServerConfig struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	Listen  string `mapstructure:"listen" toml:"listen" json:"listen"`
	// InteractionRate caps interaction triggers per second.
	InteractionRate  float64 `mapstructure:"interaction_rate" toml:"interaction_rate" json:"interaction_rate" jsonschema:"exclusiveMinimum=0"`
	InteractionBurst int     `mapstructure:"interaction_burst" toml:"interaction_burst" json:"interaction_burst" jsonschema:"minimum=1"`
}

// HistoryConfig controls lease history retention.
type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	// RetentionDays prunes ended leases older than this at startup; 0 keeps everything.
	RetentionDays int `mapstructure:"retention_days" toml:"retention_days" json:"retention_days" jsonschema:"minimum=0"`
}

// FeedsConfig locates the data feeds.
type FeedsConfig struct {
	FinancePath string `mapstructure:"finance_path" toml:"finance_path" json:"finance_path"`
	// StaleAfter is a Go duration string ("1h", "90m").
	StaleAfter string `mapstructure:"stale_after" toml:"stale_after" json:"stale_after"`
}

// AppearanceConfig styles the CLI output.
type AppearanceConfig struct {
	// Accent is a #rrggbb color.
	Accent string `mapstructure:"accent" toml:"accent" json:"accent" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
}
