package event

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationScope = "github.com/florian1345/concurrent-event"

// telemetry holds the otel instruments of one Event. Providers default to the
// otel globals, which are no-ops unless the host program installs an SDK.
type telemetry struct {
	tracer     trace.Tracer
	emissions  metric.Int64Counter
	panics     metric.Int64Counter
	duration   metric.Float64Histogram
	registered metric.Int64UpDownCounter
}

func newTelemetry(tp trace.TracerProvider, mp metric.MeterProvider) *telemetry {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	m := mp.Meter(instrumentationScope)

	t := &telemetry{tracer: tp.Tracer(instrumentationScope)}
	var err error
	if t.emissions, err = m.Int64Counter("event.emissions",
		metric.WithDescription("Total emissions, by outcome"),
	); err != nil {
		t.emissions = metricnoop.Int64Counter{}
	}
	if t.panics, err = m.Int64Counter("event.handler.panics",
		metric.WithDescription("Total handler invocations that panicked"),
	); err != nil {
		t.panics = metricnoop.Int64Counter{}
	}
	if t.duration, err = m.Float64Histogram("event.emit.duration",
		metric.WithDescription("Wall-clock time from emit until every handler returned"),
		metric.WithUnit("ms"),
	); err != nil {
		t.duration = metricnoop.Float64Histogram{}
	}
	if t.registered, err = m.Int64UpDownCounter("event.handlers.registered",
		metric.WithDescription("Handlers currently registered"),
	); err != nil {
		t.registered = metricnoop.Int64UpDownCounter{}
	}
	return t
}

func (t *telemetry) start(ctx context.Context, handlers int) (context.Context, trace.Span, time.Time) {
	ctx, span := t.tracer.Start(ctx, "event.emit",
		trace.WithAttributes(attribute.Int("event.handlers", handlers)),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	return ctx, span, time.Now()
}

// done ends span and records the outcome of one emission.
func (t *telemetry) done(ctx context.Context, span trace.Span, start time.Time, failed []*PanicError) {
	defer span.End()

	outcome := "ok"
	if len(failed) > 0 {
		outcome = "panic"
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	t.duration.Record(ctx, float64(time.Since(start))/float64(time.Millisecond), attrs)
	t.emissions.Add(ctx, 1, attrs)

	if len(failed) == 0 {
		return
	}
	t.panics.Add(ctx, int64(len(failed)))
	for _, perr := range failed {
		span.RecordError(perr, trace.WithAttributes(attribute.String("event.handler", perr.ID.String())))
	}
	span.SetStatus(codes.Error, errors.Join(asErrors(failed)...).Error())
}

func asErrors(failed []*PanicError) []error {
	errs := make([]error, len(failed))
	for i, perr := range failed {
		errs[i] = perr
	}
	return errs
}
