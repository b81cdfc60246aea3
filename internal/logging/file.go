package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// FileConfig controls the optional rotating log file.
type FileConfig struct {
	Enabled       bool
	Dir           string
	MaxAgeDays    int
	WriteToStderr bool
}

// NewWithFile creates a logger that writes to stderr and, when enabled, to a
// rotating file. The returned cleanup closes the file.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	var stderr io.Writer = os.Stderr
	if !fileCfg.WriteToStderr && fileCfg.Enabled {
		stderr = io.Discard
	}

	if !fileCfg.Enabled {
		return NewWithWriter(cfg, stderr), func() {}, nil
	}

	rotator, err := NewLogRotator(RotatorConfig{
		Dir:        fileCfg.Dir,
		MaxSizeMB:  10,
		MaxBackups: 5,
		MaxAgeDays: fileCfg.MaxAgeDays,
		Compress:   true,
	})
	if err != nil {
		return NewWithWriter(cfg, os.Stderr), func() {}, err
	}

	// The file always receives JSON regardless of the console format.
	consoleOut := stderr
	if cfg.Format == "console" {
		consoleOut = zerolog.ConsoleWriter{Out: stderr, TimeFormat: cfg.TimeFormat}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(consoleOut, rotator)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()

	return logger, func() { _ = rotator.Close() }, nil
}
