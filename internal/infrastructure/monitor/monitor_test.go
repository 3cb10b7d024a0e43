package monitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/taskboard/repository/memory"
)

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("connection refused") }

func TestMonitor_HealthyBackend(t *testing.T) {
	m := New(memory.NewBlobStore(), "memory", time.Hour, nil)
	require.NoError(t, m.Start())
	t.Cleanup(func() { _ = m.Stop(context.Background()) })

	status := m.GetStatus()
	assert.True(t, m.IsOnline())
	assert.Equal(t, "memory", status.Driver)
	assert.Empty(t, status.Error)
	assert.False(t, status.LastCheck.IsZero())
}

func TestMonitor_FailingBackend(t *testing.T) {
	m := New(failingPinger{}, "redis", time.Hour, nil)
	m.Refresh()

	status := m.GetStatus()
	assert.False(t, m.IsOnline())
	assert.Equal(t, "connection refused", status.Error)
}

func TestMonitor_NoPinger(t *testing.T) {
	m := New(nil, "bolt", 0, nil)
	m.Refresh()

	assert.False(t, m.IsOnline())
	assert.Contains(t, m.GetStatus().Error, "bolt")
}
