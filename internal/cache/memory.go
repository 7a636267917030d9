package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache implements in-memory result caching
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(key string) (string, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(string), true
	}
	return "", false
}

// Set stores a value in the cache with the given TTL
func (c *MemoryCache) Set(key string, value string, ttl time.Duration) {
	c.cache.Set(key, value, ttl)
}

// Clear removes all values from the cache
func (c *MemoryCache) Clear() {
	c.cache.Flush()
}
