// Package services contains the runtime cache manager built from a parsed
// and validated manager definition.
package services

import (
	"context"

	"go.uber.org/zap"

	"elasticonf/application/ports"
	"elasticonf/pkg/errors"
)

// CacheManager is the constructed counterpart of a ManagerDefinition: the
// ordered collection of live caches.
type CacheManager struct {
	caches map[string]ports.Cache
	order  []string
	logger *zap.Logger
}

// NewCacheManager creates a manager over the given caches.
// Order is preserved from the definition.
func NewCacheManager(caches []ports.Cache, logger *zap.Logger) (*CacheManager, error) {
	byName := make(map[string]ports.Cache, len(caches))
	order := make([]string, 0, len(caches))

	for _, c := range caches {
		name := c.Name()
		if _, exists := byName[name]; exists {
			return nil, errors.NewValidationError("duplicate cache name '" + name + "'")
		}
		byName[name] = c
		order = append(order, name)
	}

	return &CacheManager{
		caches: byName,
		order:  order,
		logger: logger,
	}, nil
}

// Cache looks up a cache by name
func (m *CacheManager) Cache(name string) (ports.Cache, error) {
	cache, ok := m.caches[name]
	if !ok {
		return nil, errors.NewNotFoundError("cache '" + name + "'")
	}
	return cache, nil
}

// CacheNames returns the cache names in declaration order
func (m *CacheManager) CacheNames() []string {
	names := make([]string, len(m.order))
	copy(names, m.order)
	return names
}

// ClearAll clears every cache that permits clearing. Caches with
// allowClear=false are skipped and logged, not treated as failures.
func (m *CacheManager) ClearAll(ctx context.Context) error {
	for _, name := range m.order {
		cache := m.caches[name]
		if !cache.AllowClear() {
			m.logger.Info("skipping clear for protected cache", zap.String("cache", name))
			continue
		}
		if err := cache.Clear(ctx); err != nil {
			return errors.Wrapf(err, "clearing cache '%s'", name)
		}
	}
	return nil
}
