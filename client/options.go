package client

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// TokenSource supplies the bearer token for outgoing requests.
type TokenSource interface {
	Token(ctx context.Context) string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func(ctx context.Context) string

func (f TokenFunc) Token(ctx context.Context) string { return f(ctx) }

// Config transport settings
type Config struct {
	BaseURL string
	Timeout time.Duration
	Breaker *Breaker // nil disables the circuit breaker
}

// Breaker circuit breaker settings
type Breaker struct {
	MaxRequests uint32
	Interval    time.Duration
	Timeout     time.Duration
}

// Option configures a Client
type Option func(*Client)

// WithTokenSource sets where bearer tokens come from
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithHTTPClient replaces the underlying http client, its Timeout is overwritten
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithUnauthorizedHandler sets the hook invoked on every 401 response
func WithUnauthorizedHandler(fn func(ctx context.Context)) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// WithTracer overrides the tracer used for request spans
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}
