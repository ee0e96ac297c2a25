package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

const instrumentationName = "github.com/decker502/zombiehunt/pkg/game"

// 计数器名称
const (
	metricZombiesSpawned = "game.zombies.spawned"
	metricZombiesKilled  = "game.zombies.killed"
	metricZombiesReached = "game.zombies.reached"
	metricShotsFired     = "game.shots.fired"
)

// Metrics 一局游戏的计数指标
// 计数器由 SDK MeterProvider 提供，通过 ManualReader 在会话结束时读取总数
type Metrics struct {
	provider *sdkmetric.MeterProvider
	reader   *sdkmetric.ManualReader

	zombiesSpawned metric.Int64Counter
	zombiesKilled  metric.Int64Counter
	zombiesReached metric.Int64Counter
	shotsFired     metric.Int64Counter
}

// Totals 会话结束时的计数汇总
type Totals struct {
	ZombiesSpawned int64
	ZombiesKilled  int64
	ZombiesReached int64
	ShotsFired     int64
}

// NewMetrics 创建 MeterProvider、ManualReader 和计数器
func NewMetrics() (*Metrics, error) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m := provider.Meter(instrumentationName)

	metrics := &Metrics{
		provider: provider,
		reader:   reader,
	}

	var err error
	metrics.zombiesSpawned, err = m.Int64Counter(
		metricZombiesSpawned,
		metric.WithDescription("Total zombies spawned"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating spawned counter: %w", err)
	}

	metrics.zombiesKilled, err = m.Int64Counter(
		metricZombiesKilled,
		metric.WithDescription("Total zombies destroyed by bullets"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating killed counter: %w", err)
	}

	metrics.zombiesReached, err = m.Int64Counter(
		metricZombiesReached,
		metric.WithDescription("Total zombies that reached the gun line"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating reached counter: %w", err)
	}

	metrics.shotsFired, err = m.Int64Counter(
		metricShotsFired,
		metric.WithDescription("Total bullets fired"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating shots counter: %w", err)
	}

	return metrics, nil
}

// MeterProvider 返回底层 MeterProvider，可注册为全局 provider
func (m *Metrics) MeterProvider() metric.MeterProvider {
	return m.provider
}

// ZombieSpawned 记录僵尸生成
func (m *Metrics) ZombieSpawned() {
	if m != nil {
		m.zombiesSpawned.Add(context.Background(), 1)
	}
}

// ZombieKilled 记录僵尸被击中
func (m *Metrics) ZombieKilled() {
	if m != nil {
		m.zombiesKilled.Add(context.Background(), 1)
	}
}

// ZombieReached 记录僵尸到达枪口
func (m *Metrics) ZombieReached() {
	if m != nil {
		m.zombiesReached.Add(context.Background(), 1)
	}
}

// ShotFired 记录开火
func (m *Metrics) ShotFired() {
	if m != nil {
		m.shotsFired.Add(context.Background(), 1)
	}
}

// Collect 从 ManualReader 读取当前累计值
func (m *Metrics) Collect(ctx context.Context) (Totals, error) {
	var totals Totals
	var rm metricdata.ResourceMetrics
	if err := m.reader.Collect(ctx, &rm); err != nil {
		return totals, fmt.Errorf("collecting metrics: %w", err)
	}

	for _, scope := range rm.ScopeMetrics {
		for _, md := range scope.Metrics {
			sum, ok := md.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			var value int64
			for _, dp := range sum.DataPoints {
				value += dp.Value
			}
			switch md.Name {
			case metricZombiesSpawned:
				totals.ZombiesSpawned = value
			case metricZombiesKilled:
				totals.ZombiesKilled = value
			case metricZombiesReached:
				totals.ZombiesReached = value
			case metricShotsFired:
				totals.ShotsFired = value
			}
		}
	}
	return totals, nil
}

// Shutdown 关闭 MeterProvider
func (m *Metrics) Shutdown(ctx context.Context) error {
	if err := m.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down meter provider: %w", err)
	}
	return nil
}
