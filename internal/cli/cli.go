// Package cli implements the utctime command: conversions between RFC 3339
// timestamps, epoch offsets and tick counts.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/aelexs/utctime/internal/config"
	"github.com/aelexs/utctime/internal/observability"
	"github.com/aelexs/utctime/pkg/utctime"
)

const (
	serviceVersion     = "0.1.0"
	instrumentationKey = "github.com/aelexs/utctime/internal/cli"
)

// ErrUsage is returned for a missing or unknown command or a wrong number
// of arguments.
var ErrUsage = errors.New("invalid usage")

// Options configures Run. Zero values select production defaults.
type Options struct {
	// Provider supplies the current instant. Nil uses utctime.SystemProvider.
	Provider utctime.Provider

	// Config overrides environment configuration when non-nil.
	Config *config.Config

	Stdout io.Writer
	Stderr io.Writer
}

// env is the per-invocation state shared by command handlers.
type env struct {
	cfg      *config.Config
	provider utctime.Provider
	logger   *slog.Logger
	coerced  []utctime.CoercionFunc
	out      io.Writer
}

// Run executes one command. args excludes the program name.
func Run(ctx context.Context, args []string, opts Options) error {
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}
	if opts.Stderr == nil {
		opts.Stderr = io.Discard
	}
	if opts.Provider == nil {
		opts.Provider = utctime.SystemProvider
	}

	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.Load(ctx)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	logger := observability.InitLogger(observability.LogConfig{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		ServiceName: cfg.OTEL.Service,
		Environment: cfg.Environment,
	}, opts.Stderr)

	// --- Startup order: tracer -> metrics ---

	tracerProvider, err := observability.InitTracer(ctx, observability.TracerConfig{
		ServiceName:    cfg.OTEL.Service,
		ServiceVersion: serviceVersion,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTEL.Endpoint,
	})
	if err != nil {
		return fmt.Errorf("initialize tracer: %w", err)
	}

	metricsProvider, err := observability.InitMetrics(ctx, observability.MetricsConfig{
		ServiceName:    cfg.OTEL.Service,
		ServiceVersion: serviceVersion,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTEL.Endpoint,
	})
	if err != nil {
		if shutdownErr := tracerProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("failed to flush traces", slog.String("error", shutdownErr.Error()))
		}
		return fmt.Errorf("initialize metrics: %w", err)
	}

	defer func() {
		if shutdownErr := observability.ShutdownAll(context.WithoutCancel(ctx), metricsProvider, tracerProvider); shutdownErr != nil {
			logger.Error("failed to flush telemetry", slog.String("error", shutdownErr.Error()))
		}
	}()

	counter, err := observability.NewCoercionCounter(ctx, metricsProvider.Meter(instrumentationKey))
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", ErrUsage)
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	if len(args)-1 != cmd.args {
		return fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrUsage, args[0], cmd.args, len(args)-1)
	}

	ctx, span := tracerProvider.Tracer(instrumentationKey).Start(ctx, "utctime."+args[0])
	defer span.End()
	span.SetAttributes(attribute.Bool("utctime.strict", cfg.Input.Strict))

	logger = observability.WithTraceID(ctx, logger)
	e := &env{
		cfg:      cfg,
		provider: opts.Provider,
		logger:   logger,
		coerced:  []utctime.CoercionFunc{observability.CoercionLogger(ctx, logger), counter.Observe},
		out:      opts.Stdout,
	}

	if err := cmd.run(e, args[1:]); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	logger.Debug("command completed", slog.String("command", args[0]))
	return nil
}

// parseInstant parses an RFC 3339 timestamp. Non-UTC input is rejected in
// strict mode and coerced otherwise.
func (e *env) parseInstant(s string) (utctime.Instant, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return utctime.Instant{}, fmt.Errorf("parse %q: %w", s, err)
	}
	if e.cfg.Input.Strict {
		return utctime.New(t)
	}
	return utctime.Coerce(t, e.coerced...), nil
}

// printInstant writes t as an instant. Times without a tick representation
// fail with utctime.ErrOutOfRange.
func (e *env) printInstant(t time.Time) error {
	i, err := utctime.New(t)
	if err != nil {
		return err
	}
	return e.println(i)
}

// Write errors on stdout are returned to the caller; a closed pipe is a
// failed command.
func (e *env) println(v any) error {
	_, err := fmt.Fprintln(e.out, v)
	return err
}
