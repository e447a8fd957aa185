// Package ports defines the interfaces between the configuration layer and
// the infrastructure that constructs and backs the caches.
package ports

import (
	"context"

	"elasticonf/domain/config"
)

// AddressProvider yields the server addresses a cache client connects to.
// Implementations are either static (literal configured address) or resolve
// an ElastiCache cluster id through the cloud provider API.
type AddressProvider interface {
	Addresses(ctx context.Context) ([]config.Endpoint, error)
}

// Cache is the operational surface of one constructed cache
type Cache interface {
	// Name returns the cache name from its definition
	Name() string

	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// Clear flushes the cache. It fails with a forbidden error when the
	// definition did not set allowClear.
	Clear(ctx context.Context) error

	// AllowClear reports whether Clear is permitted
	AllowClear() bool
}

// ClientFactory constructs a cache from a validated definition and a
// resolved address provider.
type ClientFactory interface {
	Create(ctx context.Context, def config.CacheDefinition, provider AddressProvider) (Cache, error)
}

// CacheManager owns the ordered cache collection built from a manager
// definition.
type CacheManager interface {
	// Cache looks up a cache by name
	Cache(name string) (Cache, error)

	// CacheNames returns the cache names in declaration order
	CacheNames() []string

	// ClearAll clears every cache that permits clearing
	ClearAll(ctx context.Context) error
}
