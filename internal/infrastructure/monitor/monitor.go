package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/fastygo/taskboard/repository"
)

const pingTimeout = 3 * time.Second

// Monitor periodically pings the storage backend and keeps the last result.
type Monitor struct {
	pinger repository.Pinger
	driver string

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	cron     *cron.Cron
	logger   *zap.Logger
}

func New(pinger repository.Pinger, driver string, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		pinger:   pinger,
		driver:   driver,
		status:   Status{Driver: driver},
		interval: interval,
		cron:     cron.New(),
		logger:   logger,
	}
}

// Start runs one check synchronously and schedules the rest.
func (m *Monitor) Start() error {
	m.Refresh()
	if _, err := m.cron.AddFunc(fmt.Sprintf("@every %s", m.interval), m.Refresh); err != nil {
		return fmt.Errorf("schedule storage check: %w", err)
	}
	m.cron.Start()
	return nil
}

// Stop waits for a running check to finish or ctx to expire.
func (m *Monitor) Stop(ctx context.Context) error {
	done := m.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Storage
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) Refresh() {
	status := Status{Driver: m.driver, LastCheck: time.Now().UTC()}
	if err := m.check(); err != nil {
		status.Error = err.Error()
		m.logger.Warn("storage check failed", zap.String("driver", m.driver), zap.Error(err))
	} else {
		status.Storage = true
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}

func (m *Monitor) check() error {
	if m.pinger == nil {
		return fmt.Errorf("no pinger for driver %q", m.driver)
	}
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return m.pinger.Ping(ctx)
}
