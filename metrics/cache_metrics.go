package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type CacheMetricsCollector struct {
	Hits     *prometheus.CounterVec
	Misses   *prometheus.CounterVec
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
	HitRatio *prometheus.GaugeVec
}

var (
	globalCollector *CacheMetricsCollector
	collectorOnce   sync.Once
)

func getCollector() *CacheMetricsCollector {
	collectorOnce.Do(func() {
		globalCollector = &CacheMetricsCollector{
			Hits: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weatherdash_cache_hits_total",
					Help: "The total number of forecast cache hits",
				},
				[]string{"cache_type"},
			),
			Misses: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weatherdash_cache_misses_total",
					Help: "The total number of forecast cache misses",
				},
				[]string{"cache_type"},
			),
			Requests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weatherdash_cache_requests_total",
					Help: "The total number of forecast cache requests",
				},
				[]string{"cache_type"},
			),
			Latency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "weatherdash_cache_duration_seconds",
					Help:    "Forecast cache operation duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"cache_type", "operation"},
			),
			HitRatio: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Name: "weatherdash_cache_hit_ratio",
					Help: "Forecast cache hit ratio (hits/total requests)",
				},
				[]string{"cache_type"},
			),
		}
	})
	return globalCollector
}

// CacheStats is a point-in-time view of one cache's counters.
type CacheStats struct {
	Hits   int64
	Misses int64
	Total  int64
}

// CacheMetrics tracks hit/miss counters for one cache backend and
// mirrors them into the Prometheus collector.
type CacheMetrics struct {
	cacheType string
	hits      int64
	misses    int64
	total     int64
	collector *CacheMetricsCollector
	mu        sync.RWMutex
}

func NewCacheMetrics(cacheType string) *CacheMetrics {
	return &CacheMetrics{
		cacheType: cacheType,
		collector: getCollector(),
	}
}

func (m *CacheMetrics) RecordHit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hits++
	m.total++
	m.collector.Hits.WithLabelValues(m.cacheType).Inc()
	m.collector.Requests.WithLabelValues(m.cacheType).Inc()
	m.updateHitRatio()
}

func (m *CacheMetrics) RecordMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.misses++
	m.total++
	m.collector.Misses.WithLabelValues(m.cacheType).Inc()
	m.collector.Requests.WithLabelValues(m.cacheType).Inc()
	m.updateHitRatio()
}

// ObserveLatency records the duration of one cache operation in seconds.
func (m *CacheMetrics) ObserveLatency(operation string, seconds float64) {
	m.collector.Latency.WithLabelValues(m.cacheType, operation).Observe(seconds)
}

func (m *CacheMetrics) Stats() CacheStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return CacheStats{
		Hits:   m.hits,
		Misses: m.misses,
		Total:  m.total,
	}
}

func (m *CacheMetrics) updateHitRatio() {
	if m.total == 0 {
		return
	}
	m.collector.HitRatio.WithLabelValues(m.cacheType).Set(float64(m.hits) / float64(m.total))
}
