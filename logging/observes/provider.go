package observes

import (
	"context"
	"time"

	"github.com/google/wire"
	"go.opentelemetry.io/otel/trace"
)

// ProviderSet is the wire provider set for tracing
var ProviderSet = wire.NewSet(ProvideTracer)

// shutdownTimeout bounds the final span flush
const shutdownTimeout = 5 * time.Second

// ProvideTracer installs the tracer provider and returns the package tracer.
// The cleanup flushes and shuts the provider down.
func ProvideTracer(opt *TracerOption) (trace.Tracer, func(), error) {
	shutdown, err := NewTracer(opt)
	if err != nil {
		return nil, nil, err
	}
	return Tracer(), func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = shutdown(ctx)
	}, nil
}
