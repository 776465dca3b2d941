package log

import (
	"go.uber.org/zap"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for cache hits, misses and other per-call details.
	LogDebug LogLevel = "debug"
)

// Fields converts a loosely typed field map into zap fields.
func Fields(fields map[string]interface{}) []zap.Field {
	zf := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		if err, ok := v.(error); ok {
			zf = append(zf, zap.NamedError(k, err))
			continue
		}
		zf = append(zf, zap.Any(k, v))
	}
	return zf
}

// Log writes msg with the given level and structured fields.
// A nil logger discards the message.
func Log(logger *zap.Logger, level LogLevel, msg string, fields map[string]interface{}) {
	if logger == nil {
		return
	}
	zf := Fields(fields)
	switch level {
	case LogInfo:
		logger.Info(msg, zf...)
	case LogWarn:
		logger.Warn(msg, zf...)
	case LogError:
		logger.Error(msg, zf...)
	case LogDebug:
		logger.Debug(msg, zf...)
	default:
		logger.Info(msg, zf...)
	}
}

// OrNop returns logger, or a no-op logger when it is nil.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
