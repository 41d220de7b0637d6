package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "TUIKIT_LOG_LEVEL"

// LogFileEnvVar names a file that receives log output. A full-screen
// program owns stdout, so logs default to stderr.
const LogFileEnvVar = "TUIKIT_LOG_FILE"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks TUIKIT_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	output := os.Getenv(LogFileEnvVar)
	if output == "" {
		output = "stderr"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// ParseLevel maps a level name to a zap level. Unknown names fall back to
// info, since asking for a level at all means the caller wants output.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// InitializeFromEnv initializes the logger from the TUIKIT_LOG_LEVEL
// environment variable. Logging stays silent unless it is set.
func InitializeFromEnv() error {
	return Initialize("")
}

// SetLogger replaces the global logger. Passing nil restores silent mode.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogSortChange logs a table sort transition.
func LogSortChange(dataIndex string, ascending bool) {
	Debug("Sort changed",
		zap.String("data_index", dataIndex),
		zap.String("direction", directionName(ascending)),
	)
}

// LogSortIgnored logs a sort request on a column that cannot be sorted.
func LogSortIgnored(columnKey string) {
	Debug("Sort request ignored",
		zap.String("column", columnKey),
		zap.String("reason", "column not sortable"),
	)
}

// LogSelectionChange logs a selection transition.
func LogSelectionChange(action string, selected, total int) {
	Debug("Selection changed",
		zap.String("action", action),
		zap.Int("selected", selected),
		zap.Int("total", total),
	)
}

// LogFieldEvent logs a field interaction. The text itself is never logged,
// only its length, since fields may hold passwords.
func LogFieldEvent(label string, event string, length int) {
	Debug("Field event",
		zap.String("field", label),
		zap.String("event", event),
		zap.Int("length", length),
	)
}

func directionName(ascending bool) string {
	if ascending {
		return "ascending"
	}
	return "descending"
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
