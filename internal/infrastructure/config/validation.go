package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/bnema/kioskclock/internal/domain/validation"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateWakeLock(config)...)
	validationErrors = append(validationErrors, validateServer(config)...)
	validationErrors = append(validationErrors, validateHistory(config)...)
	validationErrors = append(validationErrors, validateFeeds(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	return validationErrors
}

func validateWakeLock(config *Config) []string {
	var validationErrors []string
	if len(config.WakeLock.Backends) == 0 {
		validationErrors = append(validationErrors, "wake_lock.backends must list at least one backend")
	}
	for _, b := range config.WakeLock.Backends {
		switch b {
		case BackendPortal, BackendScreenSaver:
		default:
			validationErrors = append(validationErrors,
				fmt.Sprintf("wake_lock.backends: unknown backend %q (valid: %s, %s)", b, BackendPortal, BackendScreenSaver))
		}
	}
	if strings.TrimSpace(config.WakeLock.AppID) == "" {
		validationErrors = append(validationErrors, "wake_lock.app_id cannot be empty")
	}
	return validationErrors
}

func validateServer(config *Config) []string {
	if !config.Server.Enabled {
		return nil
	}

	var validationErrors []string
	if _, _, err := net.SplitHostPort(config.Server.Listen); err != nil {
		validationErrors = append(validationErrors,
			fmt.Sprintf("server.listen must be host:port (got: %q)", config.Server.Listen))
	}
	if config.Server.InteractionRate <= 0 {
		validationErrors = append(validationErrors, "server.interaction_rate must be positive")
	}
	if config.Server.InteractionBurst < 1 {
		validationErrors = append(validationErrors, "server.interaction_burst must be at least 1")
	}
	return validationErrors
}

func validateHistory(config *Config) []string {
	if config.History.RetentionDays < 0 {
		return []string{"history.retention_days must be non-negative"}
	}
	return nil
}

func validateFeeds(config *Config) []string {
	if config.Feeds.StaleAfter == "" {
		return nil
	}
	d, err := time.ParseDuration(config.Feeds.StaleAfter)
	if err != nil || d <= 0 {
		return []string{fmt.Sprintf("feeds.stale_after must be a positive duration (got: %q)", config.Feeds.StaleAfter)}
	}
	return nil
}

func validateAppearance(config *Config) []string {
	if config.Appearance.Accent != "" && !validation.IsHexColor(config.Appearance.Accent) {
		return []string{fmt.Sprintf("appearance.accent must be a #rrggbb color (got: %s)", config.Appearance.Accent)}
	}
	return nil
}
