package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/kyunghoonkook/directional/consts"
	"github.com/kyunghoonkook/directional/ctxutil"
	"github.com/kyunghoonkook/directional/ecode"
	"github.com/kyunghoonkook/directional/logging/logger"
	"github.com/kyunghoonkook/directional/logging/observes"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
)

// maxBodySize caps how much of a response body is read
const maxBodySize = 8 << 20

// Client is the configured request pipeline shared by every api call.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	breaker *gobreaker.CircuitBreaker
	tracer  trace.Tracer

	mu             sync.RWMutex
	onUnauthorized func(ctx context.Context)
}

// New creates a client for cfg
func New(cfg *Config, opts ...Option) *Client {
	if cfg == nil {
		cfg = &Config{}
	}
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
	if c.baseURL == "" {
		c.baseURL = consts.DefaultBaseURL
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	c.http.Timeout = cfg.Timeout
	if c.http.Timeout <= 0 {
		c.http.Timeout = consts.DefaultTimeout
	}
	if c.tracer == nil {
		c.tracer = observes.Tracer()
	}
	if cfg.Breaker != nil {
		c.breaker = newBreaker(cfg.Breaker)
	}
	return c
}

func newBreaker(b *Breaker) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "directional-api",
		MaxRequests: b.MaxRequests,
		Interval:    b.Interval,
		Timeout:     b.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		IsSuccessful: func(err error) bool {
			switch ecode.CodeOf(err) {
			case ecode.NetworkErr, ecode.ServerErr:
				return false
			}
			return true
		},
	})
}

// BaseURL returns the api root
func (c *Client) BaseURL() string { return c.baseURL }

// SetUnauthorizedHandler replaces the 401 hook
func (c *Client) SetUnauthorizedHandler(fn func(ctx context.Context)) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

// Get sends a GET with params encoded from its url tags and decodes the response into out
func (c *Client) Get(ctx context.Context, path string, params any, out any) error {
	return c.Do(ctx, http.MethodGet, path, params, nil, out)
}

// Post sends body as JSON
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Patch sends body as JSON
func (c *Client) Patch(ctx context.Context, path string, body any, out any) error {
	return c.Do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete sends a DELETE
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, out)
}

// Do executes a request. Every failure is returned as *ecode.Error.
func (c *Client) Do(ctx context.Context, method, path string, params, body, out any) error {
	ctx, span := c.tracer.Start(ctx, "client."+method+" "+path, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	if id := observes.TraceIDFromContext(ctx); id != "" {
		ctx = ctxutil.SetTraceID(ctx, id)
	} else {
		ctx, _ = ctxutil.EnsureTraceID(ctx)
	}
	ctx, requestID := ctxutil.EnsureRequestID(ctx)

	req, err := c.newRequest(ctx, method, path, params, body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	req.Header.Set(consts.RequestIDKey, requestID)
	span.SetAttributes(
		semconv.HTTPMethodKey.String(method),
		semconv.HTTPURLKey.String(req.URL.String()),
		attribute.String("request.id", requestID),
	)

	start := time.Now()
	status, data, err := c.execute(req)
	entry := logger.EntryWithFields(ctx, logrus.Fields{
		"method":     method,
		"path":       path,
		"status":     status,
		"request_id": requestID,
		"duration":   time.Since(start).String(),
	})
	if status > 0 {
		span.SetAttributes(semconv.HTTPStatusCodeKey.Int(status))
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		entry.WithError(err).Warn("request failed")
		if ecode.Is(err, ecode.AuthExpired) {
			c.unauthorized(ctx)
		}
		return err
	}
	entry.Debug("request completed")

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return ecode.Wrap(ecode.Unknown, fmt.Errorf("decode %s %s: %w", method, path, err))
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, params, body any) (*http.Request, error) {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if params != nil {
		values, err := query.Values(params)
		if err != nil {
			return nil, ecode.Wrap(ecode.Unknown, fmt.Errorf("encode query: %w", err))
		}
		if encoded := values.Encode(); encoded != "" {
			u += "?" + encoded
		}
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, ecode.Wrap(ecode.Unknown, fmt.Errorf("encode body: %w", err))
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, ecode.Wrap(ecode.Unknown, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set(consts.ContentTypeKey, consts.ContentTypeJSON)
	req.Header.Set("Accept", consts.ContentTypeJSON)
	if c.tokens != nil {
		if token := c.tokens.Token(ctx); token != "" {
			req.Header.Set(consts.AuthorizationKey, consts.BearerKey+token)
		}
	}
	return req, nil
}

type result struct {
	status int
	data   []byte
}

// execute runs the round trip through the breaker when one is configured
func (c *Client) execute(req *http.Request) (int, []byte, error) {
	if c.breaker == nil {
		r, err := c.roundTrip(req)
		return r.status, r.data, err
	}

	v, err := c.breaker.Execute(func() (any, error) {
		r, err := c.roundTrip(req)
		return r, err
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return 0, nil, ecode.Wrap(ecode.NetworkErr, err)
	}
	r, _ := v.(result)
	return r.status, r.data, err
}

func (c *Client) roundTrip(req *http.Request) (result, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return result{}, ecode.Wrap(ecode.NetworkErr, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return result{status: resp.StatusCode}, ecode.Wrap(ecode.NetworkErr, err)
	}
	r := result{status: resp.StatusCode, data: data}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return r, nil
	}
	return r, ecode.FromStatus(resp.StatusCode, bodyMessage(data))
}

// bodyMessage extracts the server supplied message, "" when the body has none
func bodyMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Message
}

func (c *Client) unauthorized(ctx context.Context) {
	c.mu.RLock()
	fn := c.onUnauthorized
	c.mu.RUnlock()
	if fn != nil {
		fn(ctx)
	}
}
