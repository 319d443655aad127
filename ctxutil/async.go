package ctxutil

import (
	"context"
	"time"
)

// DefaultAsyncTimeout bounds side effects that must finish even when the
// triggering context is already cancelled.
const DefaultAsyncTimeout = 5 * time.Second

// WithAsyncContext creates a context detached from parent cancellation that
// keeps parent values such as the trace id.
func WithAsyncContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout == 0 {
		timeout = DefaultAsyncTimeout
	}
	return context.WithTimeout(context.WithoutCancel(parent), timeout)
}
