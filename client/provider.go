package client

import (
	"github.com/google/wire"
	"github.com/kyunghoonkook/directional/config"
	"go.opentelemetry.io/otel/trace"
)

// ProviderSet is the wire provider set for the client package
var ProviderSet = wire.NewSet(ProvideClient)

// ProvideClient creates the client for the api section. The breaker is only
// installed when enabled.
func ProvideClient(api *config.API, breaker *config.Breaker, tokens TokenSource, tracer trace.Tracer) *Client {
	cfg := &Config{BaseURL: api.BaseURL, Timeout: api.Timeout}
	if breaker != nil && breaker.Enabled {
		cfg.Breaker = &Breaker{
			MaxRequests: breaker.MaxRequests,
			Interval:    breaker.Interval,
			Timeout:     breaker.Timeout,
		}
	}
	return New(cfg, WithTokenSource(tokens), WithTracer(tracer))
}
