package memcached

import (
	"context"
	"errors"

	"github.com/bradfitz/gomemcache/memcache"

	"elasticonf/domain/config"
	cfgerrors "elasticonf/pkg/errors"
	"elasticonf/pkg/observability"
)

// Cache adapts a gomemcache client to the ports.Cache interface, applying
// the definition's expiration and allowClear policy.
type Cache struct {
	name       config.CacheName
	expiration config.Expiration
	allowClear bool
	client     *memcache.Client
	metrics    *observability.Metrics
}

func newCache(def config.CacheDefinition, client *memcache.Client, metrics *observability.Metrics) *Cache {
	return &Cache{
		name:       def.Name,
		expiration: def.Expiration,
		allowClear: def.AllowClear,
		client:     client,
		metrics:    metrics,
	}
}

// Name implements ports.Cache
func (c *Cache) Name() string {
	return c.name.String()
}

// AllowClear implements ports.Cache
func (c *Cache) AllowClear() bool {
	return c.allowClear
}

// Get implements ports.Cache. A miss is not an error.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	item, err := c.client.Get(key)
	if err != nil {
		if errors.Is(err, memcache.ErrCacheMiss) {
			c.metrics.RecordMiss(ctx, c.Name())
			return nil, false, nil
		}
		return nil, false, cfgerrors.NewExternalError("memcached", err)
	}

	c.metrics.RecordHit(ctx, c.Name())
	return item.Value, true, nil
}

// Set implements ports.Cache, storing with the definition's expiration
func (c *Cache) Set(ctx context.Context, key string, value []byte) error {
	err := c.client.Set(&memcache.Item{
		Key:        key,
		Value:      value,
		Expiration: int32(c.expiration.Seconds()),
	})
	if err != nil {
		return cfgerrors.NewExternalError("memcached", err)
	}
	return nil
}

// Delete implements ports.Cache. Deleting an absent key is not an error.
func (c *Cache) Delete(ctx context.Context, key string) error {
	err := c.client.Delete(key)
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		return cfgerrors.NewExternalError("memcached", err)
	}
	return nil
}

// Clear implements ports.Cache, honoring the allowClear policy
func (c *Cache) Clear(ctx context.Context) error {
	if !c.allowClear {
		return cfgerrors.NewForbiddenError("cache '" + c.Name() + "' does not allow clearing")
	}

	if err := c.client.FlushAll(); err != nil {
		return cfgerrors.NewExternalError("memcached", err)
	}

	c.metrics.RecordClear(ctx, c.Name())
	return nil
}
