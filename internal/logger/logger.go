// Package logger builds the process zap logger and passes request-scoped
// children through context.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "posedex"

// NewLogger returns the logger for env. prod emits JSON keyed for Cloud Logging
// (message, severity, time). local and dev emit colored console lines.
// A non-empty level ("debug", "info", "warn", "error") replaces the env default.
func NewLogger(env string, level ...string) (*zap.Logger, error) {
	cfg, err := configFor(env)
	if err != nil {
		return nil, err
	}
	if len(level) > 0 && level[0] != "" {
		lvl, err := zapcore.ParseLevel(level[0])
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	l, err := cfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l, nil
}

func configFor(env string) (zap.Config, error) {
	switch env {
	case "prod":
		cfg := zap.NewProductionConfig()
		enc := &cfg.EncoderConfig
		enc.MessageKey, enc.LevelKey, enc.TimeKey = "message", "severity", "time"
		enc.EncodeLevel = zapcore.CapitalLevelEncoder
		enc.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		cfg.InitialFields = map[string]any{"service": serviceName}
		return cfg, nil
	case "local", "dev":
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg, nil
	}
	return zap.Config{}, fmt.Errorf("logger: unknown environment %q", env)
}
