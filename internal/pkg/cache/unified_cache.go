package cache

import (
	"strings"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// CacheMetrics tracks cache performance
type CacheMetrics struct {
	Hits      int64
	Misses    int64
	Sets      int64
	Evictions int64
}

// UnifiedCache is a typed view over a go-cache store.
// A zero ttl keeps entries until they are deleted.
type UnifiedCache[T any] struct {
	store  *gocache.Cache
	ttl    time.Duration
	name   string // For logging/debugging
	logger *zap.Logger

	hits      atomic.Int64
	misses    atomic.Int64
	sets      atomic.Int64
	evictions atomic.Int64
	onEvict   atomic.Pointer[func(key string, value T)]
}

// NewUnifiedCache creates a new generic cache with specified TTL and name
func NewUnifiedCache[T any](ttl time.Duration, name string, logger *zap.Logger) *UnifiedCache[T] {
	if logger == nil {
		logger = zap.NewNop()
	}

	expiration, cleanup := gocache.NoExpiration, time.Duration(0)
	if ttl > 0 {
		expiration, cleanup = ttl, ttl/2 // janitor runs twice per TTL period
	}

	c := &UnifiedCache[T]{
		store:  gocache.New(expiration, cleanup),
		ttl:    ttl,
		name:   name,
		logger: logger,
	}
	c.store.OnEvicted(c.evicted)
	return c
}

// OnEvicted registers fn to run when an entry expires or is deleted.
func (c *UnifiedCache[T]) OnEvicted(fn func(key string, value T)) {
	c.onEvict.Store(&fn)
}

func (c *UnifiedCache[T]) evicted(key string, raw interface{}) {
	c.evictions.Add(1)
	value, _ := raw.(T)
	if fn := c.onEvict.Load(); fn != nil {
		(*fn)(key, value)
	}
}

// Set stores an item in the cache with the given key
func (c *UnifiedCache[T]) Set(key string, value T) {
	c.store.Set(key, value, gocache.DefaultExpiration)
	c.sets.Add(1)

	c.logger.Debug("Cache set",
		zap.String("cache", c.name),
		zap.String("key", key),
		zap.Duration("ttl", c.ttl),
	)
}

// Get retrieves an item from the cache
func (c *UnifiedCache[T]) Get(key string) (T, bool) {
	raw, found := c.store.Get(key)
	if !found {
		c.misses.Add(1)
		var zero T
		c.logger.Debug("Cache miss",
			zap.String("cache", c.name),
			zap.String("key", key),
		)
		return zero, false
	}

	value, ok := raw.(T)
	if !ok {
		c.misses.Add(1)
		c.logger.Warn("Cache entry has unexpected type",
			zap.String("cache", c.name),
			zap.String("key", key),
		)
		return value, false
	}

	c.hits.Add(1)
	return value, true
}

// Touch re-stores an existing entry so its expiration starts over.
func (c *UnifiedCache[T]) Touch(key string) bool {
	value, ok := c.Get(key)
	if !ok {
		return false
	}
	c.store.Set(key, value, gocache.DefaultExpiration)
	return true
}

// Delete removes an item from the cache
func (c *UnifiedCache[T]) Delete(key string) {
	c.store.Delete(key)
	c.logger.Debug("Cache delete",
		zap.String("cache", c.name),
		zap.String("key", key),
	)
}

// GetMetrics returns current cache metrics
func (c *UnifiedCache[T]) GetMetrics() CacheMetrics {
	return CacheMetrics{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Sets:      c.sets.Load(),
		Evictions: c.evictions.Load(),
	}
}

// Size returns the number of items in the cache, expired ones included until the janitor runs.
func (c *UnifiedCache[T]) Size() int {
	return c.store.ItemCount()
}

// Key joins key components with ':'.
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}
