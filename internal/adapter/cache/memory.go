package cache

import (
	"sync"
	"time"

	"rate-aggregator/internal/domain/model"
	"rate-aggregator/pkg/logger"
)

// MemoryCache is a TTL keyed store of rate samples. A single coarse lock
// over the map is enough: every operation is O(1) and never touches the
// network. Expired entries are evicted lazily on the read that discovers
// them; the optional ClearExpired sweep is observationally equivalent for
// callers.
type MemoryCache struct {
	mutex    sync.RWMutex
	samples  map[string]model.RateSample
	cacheTTL time.Duration
	log      *logger.Logger
}

func NewMemoryCache(cacheTTL time.Duration, log *logger.Logger) *MemoryCache {
	return &MemoryCache{
		samples:  make(map[string]model.RateSample),
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// Get returns the cached sample for the pair, or absent when the pair was
// never set or its sample has aged past the TTL.
func (c *MemoryCache) Get(pair model.CurrencyPair) (model.RateSample, bool) {
	key := pair.CacheKey()

	c.mutex.RLock()
	sample, found := c.samples[key]
	c.mutex.RUnlock()

	if !found {
		c.log.Debug("Cache miss", "key", key)
		return model.RateSample{}, false
	}

	if time.Since(sample.FetchedAt) >= c.cacheTTL {
		c.log.Debug("Cache entry expired", "key", key)
		c.evict(key, sample.FetchedAt)
		return model.RateSample{}, false
	}

	c.log.Debug("Cache hit", "key", key)
	return sample, true
}

// Set stores value for the pair with the current time as its fetch
// timestamp, replacing any previous sample wholesale.
func (c *MemoryCache) Set(pair model.CurrencyPair, value float64) {
	key := pair.CacheKey()

	c.mutex.Lock()
	c.samples[key] = model.RateSample{
		Value:     value,
		FetchedAt: time.Now(),
	}
	c.mutex.Unlock()

	c.log.Debug("Cache set", "key", key)
}

// evict removes an expired entry unless a concurrent Set already replaced
// it with a fresher sample.
func (c *MemoryCache) evict(key string, fetchedAt time.Time) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if current, ok := c.samples[key]; ok && current.FetchedAt.Equal(fetchedAt) {
		delete(c.samples, key)
	}
}

// ClearExpired drops every entry older than the TTL and returns how many
// were removed.
func (c *MemoryCache) ClearExpired() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	removed := 0
	for key, sample := range c.samples {
		if time.Since(sample.FetchedAt) >= c.cacheTTL {
			delete(c.samples, key)
			removed++
		}
	}

	if removed > 0 {
		c.log.Info("Cleared expired cache entries", "count", removed)
	}
	return removed
}
