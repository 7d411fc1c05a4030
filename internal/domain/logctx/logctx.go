// Package logctx carries a per-call logger and correlation id through context.Context.
package logctx

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing the correlation id in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing a call-scoped logger in context.
	KeyLogger ContextKey = "logger"
)

// GetRequestID extracts the correlation id from ctx, or "" when none was set.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the correlation id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// Begin tags ctx with a fresh correlation id and a logger that carries it.
// The presentation layer calls it once per user action.
func Begin(ctx context.Context, base *slog.Logger) context.Context {
	requestID := uuid.NewString()
	ctx = WithRequestID(ctx, requestID)
	if base != nil {
		ctx = WithLogger(ctx, base.With(slog.String("request_id", requestID)))
	}

	return ctx
}

// GetLogger extracts the call-scoped logger from ctx.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the call-scoped logger from ctx.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
