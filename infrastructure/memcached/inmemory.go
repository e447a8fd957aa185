package memcached

import (
	"context"
	"sync"
	"time"

	"elasticonf/domain/config"
	cfgerrors "elasticonf/pkg/errors"
)

// InMemoryCache is a ports.Cache backed by a map, used by tests and the CLI
// dry-run path where no memcached server is reachable.
type InMemoryCache struct {
	name       config.CacheName
	expiration config.Expiration
	allowClear bool

	mu    sync.RWMutex
	items map[string]inMemoryItem
}

type inMemoryItem struct {
	value     []byte
	expiresAt time.Time
}

// NewInMemoryCache creates an in-memory cache with the definition's policy
func NewInMemoryCache(def config.CacheDefinition) *InMemoryCache {
	return &InMemoryCache{
		name:       def.Name,
		expiration: def.Expiration,
		allowClear: def.AllowClear,
		items:      make(map[string]inMemoryItem),
	}
}

// Name implements ports.Cache
func (c *InMemoryCache) Name() string {
	return c.name.String()
}

// AllowClear implements ports.Cache
func (c *InMemoryCache) AllowClear() bool {
	return c.allowClear
}

// Get implements ports.Cache
func (c *InMemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, exists := c.items[key]
	if !exists {
		return nil, false, nil
	}
	if !item.expiresAt.IsZero() && time.Now().After(item.expiresAt) {
		return nil, false, nil
	}
	return item.value, true, nil
}

// Set implements ports.Cache. Expiration zero means no expiry, matching
// memcached semantics.
func (c *InMemoryCache) Set(ctx context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if c.expiration > 0 {
		expiresAt = time.Now().Add(time.Duration(c.expiration.Seconds()) * time.Second)
	}

	c.items[key] = inMemoryItem{value: value, expiresAt: expiresAt}
	return nil
}

// Delete implements ports.Cache
func (c *InMemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
	return nil
}

// Clear implements ports.Cache, honoring the allowClear policy
func (c *InMemoryCache) Clear(ctx context.Context) error {
	if !c.allowClear {
		return cfgerrors.NewForbiddenError("cache '" + c.Name() + "' does not allow clearing")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]inMemoryItem)
	return nil
}
