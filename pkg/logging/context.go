package logging

import (
	"context"

	"github.com/go-logr/logr"
)

// contextKey is the type for context keys
type contextKey string

// loggerKey is the context key for the logger
const loggerKey contextKey = "logger"

// FromContext returns the logger from the context
// If no logger is found, returns the global logger
func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return GetGlobalLogger()
	}

	if logger, ok := ctx.Value(loggerKey).(*Logger); ok {
		return logger
	}

	return GetGlobalLogger()
}

// IntoContext returns a new context with the logger
func IntoContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LogrFromContext returns a logr.Logger from the context
// This is useful for controller-runtime compatibility
func LogrFromContext(ctx context.Context) logr.Logger {
	return FromContext(ctx).Logger()
}

// WithContext returns a new logger with context-specific values
// This is useful for adding request-specific information to logs
func WithContext(ctx context.Context, keysAndValues ...interface{}) *Logger {
	return FromContext(ctx).WithValues(keysAndValues...)
}

// ContextWithLogger creates a new context with a named logger
// This is useful for creating component-specific loggers
func ContextWithLogger(ctx context.Context, name string) context.Context {
	logger := FromContext(ctx).WithName(name)
	return IntoContext(ctx, logger)
}

// LoggerForSwitch returns a logger scoped to one virtual switch instance.
func LoggerForSwitch(switchID string) *Logger {
	return GetGlobalLogger().WithName("switch").WithValues(
		"switch_id", switchID,
	)
}

// LoggerForValidator returns a logger scoped to one metadata-validator
// entry point (pre_create, post_set, ...).
func LoggerForValidator(operation string) *Logger {
	return GetGlobalLogger().WithName("validator").WithValues(
		"operation", operation,
	)
}

// LoggerForObject returns a logger scoped to one object type, used by
// the shadow database and entry-point dispatch.
func LoggerForObject(objectType string) *Logger {
	return GetGlobalLogger().WithValues(
		"object_type", objectType,
	)
}

// LoggerForDriver returns a logger for the virtual-switch driver.
func LoggerForDriver(profile string) *Logger {
	return GetGlobalLogger().WithName("vs").WithValues(
		"profile", profile,
	)
}
