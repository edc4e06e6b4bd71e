package event

import (
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type options struct {
	rand   io.Reader
	logger *slog.Logger
	tracer trace.TracerProvider
	meter  metric.MeterProvider
}

// Option configures an Event created by New.
type Option func(*options)

// WithRandSource sets the source handler IDs are drawn from. It defaults to
// crypto/rand.Reader; anything else trades guessability for determinism and
// should be confined to tests. The reader is only used under the event's
// lock, so it does not have to be safe for concurrent use.
func WithRandSource(r io.Reader) Option {
	return func(o *options) {
		o.rand = r
	}
}

// WithLogger sets the logger recovered panics are reported to. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTracerProvider overrides the global otel tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracer = tp
	}
}

// WithMeterProvider overrides the global otel meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		o.meter = mp
	}
}
