package observability

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Shutdowner is implemented by TracerProvider and MetricsProvider.
type Shutdowner interface {
	Shutdown(ctx context.Context) error
}

// ShutdownAll flushes every provider concurrently and returns the first
// error. Nil entries are skipped. A failing provider does not cancel the
// others.
func ShutdownAll(ctx context.Context, providers ...Shutdowner) error {
	var g errgroup.Group
	for _, p := range providers {
		p := p
		if p == nil {
			continue
		}
		g.Go(func() error {
			return p.Shutdown(ctx)
		})
	}
	return g.Wait()
}
