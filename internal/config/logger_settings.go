package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log level constants
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log format constants
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// LoggerSettings holds the log level and output encoding.
type LoggerSettings struct {
	Level  string `validate:"required,oneof=debug info warning error"`
	Format string `validate:"required,oneof=console json"`
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}
	return nil
}

// Build creates a zap logger writing to stderr.
func (s *LoggerSettings) Build() (*zap.Logger, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	if s.Format == LogFormatConsole {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(s.Level))
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case LogLevelDebug:
		return zapcore.DebugLevel
	case LogLevelWarning:
		return zapcore.WarnLevel
	case LogLevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
