package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fastygo/taskboard/pkg/metrics"
)

// Dispatcher funnels every call into the store through one lock, so the
// store itself can stay single-threaded while callers run concurrently.
type Dispatcher struct {
	mu      sync.Mutex
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewDispatcher(logger *zap.Logger, m *metrics.Metrics) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		logger:  logger,
		metrics: m,
	}
}

// Exec runs fn exclusively. A context that is already done is rejected before
// the lock is taken; once fn starts it runs to completion.
func (d *Dispatcher) Exec(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	started := time.Now()
	if err := ctx.Err(); err != nil {
		d.metrics.Observe(name, started, err)
		return err
	}

	err := d.locked(ctx, fn)

	d.metrics.Observe(name, started, err)
	if err != nil {
		d.logger.Debug("store operation failed", zap.String("operation", name), zap.Error(err))
	} else {
		d.logger.Debug("store operation", zap.String("operation", name), zap.Duration("elapsed", time.Since(started)))
	}
	return err
}

func (d *Dispatcher) locked(ctx context.Context, fn func(ctx context.Context) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return fn(ctx)
}

// Query is Exec for operations that produce a value.
func Query[T any](ctx context.Context, d *Dispatcher, name string, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := d.Exec(ctx, name, func(ctx context.Context) error {
		var err error
		out, err = fn(ctx)
		return err
	})
	return out, err
}
