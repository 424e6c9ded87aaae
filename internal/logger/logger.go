package logger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey string

const (
	tickIDKey    ctxKey = "tickID"
	requestIDKey ctxKey = "requestID"
)

// GenerateTickID creates a new UUID to trace one tick (or one request)
// through the logs.
func GenerateTickID() string {
	return uuid.NewString()
}

// WithTickID returns a new context carrying the tick ID.
func WithTickID(ctx context.Context, tickID string) context.Context {
	return context.WithValue(ctx, tickIDKey, tickID)
}

// TickIDFromContext extracts the tick ID from the context, if present.
func TickIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(tickIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// GenerateRequestID creates a new UUID to trace one HTTP request through
// the logs.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a new context carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID from the context, if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id, true
	}
	return "", false
}

// FromContext returns a logger scoped with whichever correlation IDs the
// context carries.
func FromContext(ctx context.Context) *slog.Logger {
	log := slog.Default()
	if id, ok := TickIDFromContext(ctx); ok {
		log = log.With("tick_id", id)
	}
	if id, ok := RequestIDFromContext(ctx); ok {
		log = log.With("request_id", id)
	}
	return log
}

// Convenience helpers on the default logger.

func Info(msg string, args ...any)  { slog.Default().Info(msg, args...) }
func Warn(msg string, args ...any)  { slog.Default().Warn(msg, args...) }
func Error(msg string, args ...any) { slog.Default().Error(msg, args...) }
