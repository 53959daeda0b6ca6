// Package logging builds zap loggers from a level name.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LevelDebug logs every path touched by repository operations.
	LevelDebug = "debug"

	LevelInfo = "info"

	// LevelWarn is the CLI default: successful commands stay silent.
	LevelWarn = "warn"

	// LevelNone disables logging.
	LevelNone = "none"
)

// GetLogger returns a zap logger writing to stderr at the given level.
func GetLogger(level string) (*zap.Logger, error) {
	if level == LevelNone {
		return zap.NewNop(), nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	return cfg.Build()
}
