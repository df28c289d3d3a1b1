package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "NUMBERSTEPPER_LOG_LEVEL"

// LogFileEnvVar names a file that receives log output. The interactive
// stepper owns stdout, so logs go to stderr when this is unset.
const LogFileEnvVar = "NUMBERSTEPPER_LOG_FILE"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks NUMBERSTEPPER_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		zapLevel = zapcore.InfoLevel
	}

	output := "stderr"
	if path := os.Getenv(LogFileEnvVar); path != "" {
		output = path
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built

	return nil
}

// InitializeFromEnv initializes the logger from NUMBERSTEPPER_LOG_LEVEL.
func InitializeFromEnv() error {
	return Initialize("")
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
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

// LogValueCommitted logs a change of the committed stepper value
func LogValueCommitted(previous, value float64, notified bool) {
	Debug("Value committed",
		zap.Float64("previous", previous),
		zap.Float64("value", value),
		zap.Bool("notified", notified),
	)
}

// LogConfigFallback logs a configuration option that could not be decoded
// and was replaced by its default.
func LogConfigFallback(option string, raw string, err error) {
	Warn("Ignoring malformed option, using default",
		zap.String("option", option),
		zap.String("raw", raw),
		zap.Error(err),
	)
}

// LogKeyboardTransition logs a soft keyboard visibility change
func LogKeyboardTransition(visible bool, rootBottom, frameBottom int, threshold float64) {
	Debug("Keyboard visibility changed",
		zap.Bool("visible", visible),
		zap.Int("root_bottom", rootBottom),
		zap.Int("frame_bottom", frameBottom),
		zap.Float64("threshold", threshold),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
