package providers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"weatherdash.app/metrics"
	"weatherdash.app/models"
	"weatherdash.app/providers/cache"
)

// ForecastCacheProxy caches the three payload-returning operations of a
// ForecastProvider. Autocomplete lookups pass straight through: they are
// keystroke-scoped and not worth a cache slot.
type ForecastCacheProxy struct {
	realProvider ForecastProvider
	cache        cache.ForecastCacheInterface
	cacheTTL     time.Duration
	metrics      *metrics.CacheMetrics
}

// NewForecastCacheProxy creates a caching proxy around a provider.
func NewForecastCacheProxy(realProvider ForecastProvider, forecastCache cache.ForecastCacheInterface, cacheTTL time.Duration, cacheMetrics *metrics.CacheMetrics) *ForecastCacheProxy {
	return &ForecastCacheProxy{
		realProvider: realProvider,
		cache:        forecastCache,
		cacheTTL:     cacheTTL,
		metrics:      cacheMetrics,
	}
}

func (p *ForecastCacheProxy) SearchLocations(ctx context.Context, query string) ([]models.SearchLocation, error) {
	return p.realProvider.SearchLocations(ctx, query)
}

func (p *ForecastCacheProxy) GetForecastByCity(ctx context.Context, city string) (*models.ForecastResponse, error) {
	return p.cached(fmt.Sprintf("forecast:%s", city), func() (*models.ForecastResponse, error) {
		return p.realProvider.GetForecastByCity(ctx, city)
	})
}

func (p *ForecastCacheProxy) GetForecastByCoordinates(ctx context.Context, lat, lon float64) (*models.ForecastResponse, error) {
	return p.cached(fmt.Sprintf("forecast:%s", coordinateQuery(lat, lon)), func() (*models.ForecastResponse, error) {
		return p.realProvider.GetForecastByCoordinates(ctx, lat, lon)
	})
}

func (p *ForecastCacheProxy) GetHistory(ctx context.Context, query, date string) (*models.ForecastResponse, error) {
	return p.cached(fmt.Sprintf("history:%s:%s", query, date), func() (*models.ForecastResponse, error) {
		return p.realProvider.GetHistory(ctx, query, date)
	})
}

func (p *ForecastCacheProxy) cached(key string, fetch func() (*models.ForecastResponse, error)) (*models.ForecastResponse, error) {
	start := time.Now()
	if cachedResponse, found := p.cache.Get(key); found {
		slog.Info("cache hit", "key", key)
		p.metrics.RecordHit()
		p.metrics.ObserveLatency("get", time.Since(start).Seconds())
		return cachedResponse, nil
	}

	slog.Info("cache miss", "key", key)
	p.metrics.RecordMiss()

	response, err := fetch()
	if err != nil {
		return nil, err
	}

	p.cache.Set(key, response, p.cacheTTL)
	return response, nil
}

func coordinateQuery(lat, lon float64) string {
	return fmt.Sprintf("%f,%f", lat, lon)
}

var _ ForecastProvider = (*ForecastCacheProxy)(nil)
