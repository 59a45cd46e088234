// Package log builds the application logger from the logging section of
// the settings file. The resolver itself never logs; logging lives in
// the host layers around it.
package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects level, encoding, and destination for the logger.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	File   string // log file path; empty means stderr
}

// DefaultConfig returns the standard logging configuration.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "text"}
}

// New creates a logger from the configuration.
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var encoding string
	switch cfg.Format {
	case "", "text":
		encoding = "console"
	case "json":
		encoding = "json"
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	output := "stderr"
	if cfg.File != "" {
		output = cfg.File
	}

	zcfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         encoding,
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}
	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// Nop returns a logger that discards everything. Used in tests and as
// the default before configuration is loaded.
func Nop() *zap.Logger {
	return zap.NewNop()
}
