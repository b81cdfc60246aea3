package bootstrap

import (
	"github.com/rs/zerolog"

	"github.com/bnema/kioskclock/internal/infrastructure/config"
	"github.com/bnema/kioskclock/internal/logging"
)

// NewLogger builds the process logger from configuration. The level is
// applied globally so config reloads can change it later.
func NewLogger(cfg config.LoggingConfig) (zerolog.Logger, func(), error) {
	zerolog.SetGlobalLevel(logging.ParseLevel(cfg.Level))

	logCfg := logging.DefaultConfig()
	logCfg.Level = zerolog.TraceLevel
	logCfg.Format = cfg.Format
	logCfg.TimeFormat = "15:04:05.000"

	return logging.NewWithFile(logCfg, logging.FileConfig{
		Enabled:       cfg.EnableFileLog,
		Dir:           cfg.LogDir,
		MaxAgeDays:    cfg.MaxAge,
		WriteToStderr: true,
	})
}
