package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/CraftLedger_Go/internal/cache"
)

// SSEStats is the part of the SSE hub exported as gauges
type SSEStats interface {
	ClientCount() int
	Dropped() int64
}

// RegisterStateCollectors exposes cache and change feed state read at scrape time.
// Either source may be nil.
func RegisterStateCollectors(reg prometheus.Registerer, c *cache.QueryCache, hub SSEStats) error {
	var collectors []prometheus.Collector

	if c != nil {
		collectors = append(collectors,
			prometheus.NewCounterFunc(prometheus.CounterOpts{
				Name: MetricNameCacheHits,
				Help: HelpTextCacheHits,
			}, func() float64 { return float64(c.GetStats().Hits) }),
			prometheus.NewCounterFunc(prometheus.CounterOpts{
				Name: MetricNameCacheMisses,
				Help: HelpTextCacheMisses,
			}, func() float64 { return float64(c.GetStats().Misses) }),
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Name: MetricNameCacheEntries,
				Help: HelpTextCacheEntries,
			}, func() float64 { return float64(c.GetStats().Size) }),
		)
	}

	if hub != nil {
		collectors = append(collectors,
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Name: MetricNameSSEClients,
				Help: HelpTextSSEClients,
			}, func() float64 { return float64(hub.ClientCount()) }),
			prometheus.NewCounterFunc(prometheus.CounterOpts{
				Name: MetricNameSSEDropped,
				Help: HelpTextSSEDropped,
			}, func() float64 { return float64(hub.Dropped()) }),
		)
	}

	for _, col := range collectors {
		if err := reg.Register(col); err != nil {
			return fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return nil
}
