package ctxutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/kyunghoonkook/directional/nanoid"
)

type ctxKey string

const (
	TraceIDKey   = "trace_id"
	RequestIDKey = "request_id"
	userIDKey    = "user_id"
)

// GetValue retrieves a value from the context.
func GetValue(ctx context.Context, key string) any {
	return ctx.Value(ctxKey(key))
}

// SetValue sets a value to the context.
func SetValue(ctx context.Context, key string, val any) context.Context {
	return context.WithValue(ctx, ctxKey(key), val)
}

func getString(ctx context.Context, key string) string {
	if v, ok := GetValue(ctx, key).(string); ok {
		return v
	}
	return ""
}

// SetUserID sets user id to context.Context.
func SetUserID(ctx context.Context, uid string) context.Context {
	return SetValue(ctx, userIDKey, uid)
}

// GetUserID gets user id from context.Context.
func GetUserID(ctx context.Context) string {
	return getString(ctx, userIDKey)
}

// GetTraceID gets trace id from context.Context.
func GetTraceID(ctx context.Context) string {
	return getString(ctx, TraceIDKey)
}

// SetTraceID sets trace id to context.Context.
func SetTraceID(ctx context.Context, traceID string) context.Context {
	return SetValue(ctx, TraceIDKey, traceID)
}

// EnsureTraceID ensures that a trace ID exists in the context.
func EnsureTraceID(ctx context.Context) (context.Context, string) {
	if traceID := GetTraceID(ctx); traceID != "" {
		return ctx, traceID
	}
	traceID := uuid.NewString()
	return SetTraceID(ctx, traceID), traceID
}

// GetRequestID gets the outgoing request id from context.Context.
func GetRequestID(ctx context.Context) string {
	return getString(ctx, RequestIDKey)
}

// EnsureRequestID returns a context carrying a request id, generating one if needed.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id := GetRequestID(ctx); id != "" {
		return ctx, id
	}
	id := nanoid.RequestID()
	return SetValue(ctx, RequestIDKey, id), id
}
