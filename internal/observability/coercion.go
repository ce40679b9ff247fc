package observability

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/aelexs/utctime/pkg/utctime"
)

// CoercionMetricName is the counter incremented for every coerced input.
const CoercionMetricName = "utctime.coercions"

// CoercionLogger returns a utctime.CoercionFunc that logs a warning naming
// the original kind of the coerced time.
func CoercionLogger(ctx context.Context, logger *slog.Logger) utctime.CoercionFunc {
	logger = WithTraceID(ctx, logger)
	return func(original utctime.Kind) {
		logger.WarnContext(ctx, "coerced non-UTC timestamp",
			slog.String("original_kind", original.String()),
		)
	}
}

// CoercionCounter counts coercions by original kind.
type CoercionCounter struct {
	ctx     context.Context
	counter metric.Int64Counter
}

// NewCoercionCounter registers the coercion counter on meter.
func NewCoercionCounter(ctx context.Context, meter metric.Meter) (*CoercionCounter, error) {
	counter, err := meter.Int64Counter(CoercionMetricName,
		metric.WithDescription("Number of non-UTC timestamps coerced to UTC"),
		metric.WithUnit("{timestamp}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create coercion counter: %w", err)
	}
	return &CoercionCounter{ctx: ctx, counter: counter}, nil
}

// Observe records one coercion. It has the utctime.CoercionFunc signature.
func (c *CoercionCounter) Observe(original utctime.Kind) {
	c.counter.Add(c.ctx, 1, metric.WithAttributes(attribute.String("kind", original.String())))
}
