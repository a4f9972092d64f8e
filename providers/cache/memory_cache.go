package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"weatherdash.app/models"
)

// GenericCacheInterface defines generic byte-level cache operations
type GenericCacheInterface interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
	Clear(ctx context.Context)
}

// ForecastCacheInterface defines the interface for caching upstream
// forecast payloads
type ForecastCacheInterface interface {
	Get(key string) (*models.ForecastResponse, bool)
	Set(key string, value *models.ForecastResponse, ttl time.Duration)
	Delete(key string)
	Clear()
}

type cacheEntry struct {
	Data      []byte
	ExpiresAt time.Time
}

type MemoryCache struct {
	data   map[string]cacheEntry
	mutex  sync.RWMutex
	ticker *time.Ticker
	stopCh chan struct{}
}

func NewMemoryCache() GenericCacheInterface {
	cache := &MemoryCache{
		data:   make(map[string]cacheEntry),
		ticker: time.NewTicker(5 * time.Minute),
		stopCh: make(chan struct{}),
	}

	go cache.cleanup()
	return cache
}

func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, exists := c.data[key]
	if !exists {
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		return nil, false
	}

	return entry.Data, true
}

func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if value == nil {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = cacheEntry{
		Data:      value,
		ExpiresAt: time.Now().Add(ttl),
	}
}

func (c *MemoryCache) Delete(ctx context.Context, key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
}

func (c *MemoryCache) Clear(ctx context.Context) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data = make(map[string]cacheEntry)
}

func (c *MemoryCache) cleanup() {
	for {
		select {
		case <-c.ticker.C:
			c.removeExpiredEntries()
		case <-c.stopCh:
			c.ticker.Stop()
			return
		}
	}
}

func (c *MemoryCache) removeExpiredEntries() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := time.Now()
	for key, entry := range c.data {
		if now.After(entry.ExpiresAt) {
			delete(c.data, key)
		}
	}
}

// ForecastCache wraps a generic cache with forecast-payload operations
type ForecastCache struct {
	cache GenericCacheInterface
}

func NewForecastCache(cache GenericCacheInterface) ForecastCacheInterface {
	return &ForecastCache{
		cache: cache,
	}
}

func (f *ForecastCache) Get(key string) (*models.ForecastResponse, bool) {
	data, found := f.cache.Get(context.Background(), key)
	if !found {
		return nil, false
	}

	var forecast models.ForecastResponse
	if err := json.Unmarshal(data, &forecast); err != nil {
		return nil, false
	}

	return &forecast, true
}

func (f *ForecastCache) Set(key string, value *models.ForecastResponse, ttl time.Duration) {
	if value == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	f.cache.Set(context.Background(), key, data, ttl)
}

func (f *ForecastCache) Delete(key string) {
	f.cache.Delete(context.Background(), key)
}

func (f *ForecastCache) Clear() {
	f.cache.Clear(context.Background())
}
