package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a JSON logger in production and a console logger
// everywhere else.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	fields := zap.Fields(
		zap.String("service", ServiceName),
		zap.String("environment", cfg.Env),
	)

	if cfg.Env == "production" {
		prod := zap.NewProductionConfig()
		prod.Level = zap.NewAtomicLevelAt(level)
		prod.EncoderConfig.TimeKey = "timestamp"
		prod.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		return prod.Build(fields)
	}

	dev := zap.NewDevelopmentConfig()
	dev.Level = zap.NewAtomicLevelAt(level)
	dev.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return dev.Build(fields)
}
