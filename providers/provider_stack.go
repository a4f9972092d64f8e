package providers

import (
	"fmt"
	"time"

	"weatherdash.app/config"
	"weatherdash.app/metrics"
	"weatherdash.app/providers/cache"
)

// NewForecastCacheFromConfig creates the configured cache backend for
// forecast payloads.
func NewForecastCacheFromConfig(cfg *config.CacheConfig) (cache.ForecastCacheInterface, error) {
	switch cfg.Type {
	case "memory":
		return cache.NewForecastCache(cache.NewMemoryCache()), nil
	case "redis":
		return cache.NewRedisCache(&cache.RedisCacheConfig{
			Addr:         cfg.RedisAddr,
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
	default:
		return nil, fmt.Errorf("unknown cache type %q", cfg.Type)
	}
}

// NewProviderStack assembles the decorated WeatherAPI.com provider:
// logging closest to the wire, then the circuit breaker, the rate
// limiter, and the cache proxy outermost so cache hits skip the whole
// stack.
func NewProviderStack(weatherCfg *config.WeatherConfig, forecastCache cache.ForecastCacheInterface) ForecastProvider {
	var provider ForecastProvider = NewWeatherAPIProvider(weatherCfg)

	if weatherCfg.EnableLogging {
		provider = NewLoggingProvider(provider, NewSlogRequestLogger("WeatherAPI"))
	}

	provider = NewBreakerProvider(provider)

	if weatherCfg.RequestsPerSecond > 0 {
		provider = NewRateLimitedProvider(provider, weatherCfg.RequestsPerSecond, weatherCfg.Burst)
	}

	if forecastCache != nil {
		ttl := time.Duration(weatherCfg.CacheTTLMinutes) * time.Minute
		provider = NewForecastCacheProxy(provider, forecastCache, ttl, metrics.NewCacheMetrics("forecast"))
	}

	return provider
}
