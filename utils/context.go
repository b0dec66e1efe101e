package utils

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type traceIDKey struct{}

const TraceIDHeader = "X-Trace-ID"

func GenerateTraceID() string {
	return uuid.NewString()
}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

func TraceIDFromContext(ctx context.Context) string {
	if traceID, ok := ctx.Value(traceIDKey{}).(string); ok {
		return traceID
	}
	return ""
}

// LoggerFromContext returns Logger tagged with the request's trace id, if any.
func LoggerFromContext(ctx context.Context) zerolog.Logger {
	traceID := TraceIDFromContext(ctx)
	if traceID == "" {
		return Logger
	}
	return Logger.With().Str("trace_id", traceID).Logger()
}
