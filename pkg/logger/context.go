package logger

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// With attaches fields to the logger carried by ctx and returns the
// derived context. Handlers and middleware use it to stamp request
// scoped attributes like trace_id and user_id.
func With(ctx context.Context, fields ...any) context.Context {
	return context.WithValue(ctx, ctxKey{}, From(ctx).With(fields...))
}

// From extracts the request-scoped logger, falling back to the
// process-wide one when ctx carries none.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return LoggerWrapper()
}
