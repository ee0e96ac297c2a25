package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ZombieSpawned()
		m.ZombieKilled()
		m.ZombieReached()
		m.ShotFired()
	})
}

// TestMetricsCollect 每个计数器独立累计，Collect 读出总数
func TestMetricsCollect(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)
	defer m.Shutdown(context.Background())

	totals, err := m.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Totals{}, totals)

	for i := 0; i < 3; i++ {
		m.ZombieSpawned()
	}
	m.ZombieKilled()
	m.ZombieReached()
	m.ZombieReached()
	for i := 0; i < 4; i++ {
		m.ShotFired()
	}

	totals, err = m.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Totals{
		ZombiesSpawned: 3,
		ZombiesKilled:  1,
		ZombiesReached: 2,
		ShotsFired:     4,
	}, totals)

	// 累计值，重复读取不清零
	m.ShotFired()
	totals, err = m.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), totals.ShotsFired)
	assert.Equal(t, int64(3), totals.ZombiesSpawned)
}

func TestMetricsMeterProvider(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)
	assert.NotNil(t, m.MeterProvider())
	assert.NoError(t, m.Shutdown(context.Background()))
}
