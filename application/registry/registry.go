// Package registry holds parsed definitions and externally supplied caches,
// the scope against which duplicate declarations and cache-ref lookups are
// checked.
package registry

import (
	"sync"

	"go.uber.org/zap"

	"elasticonf/application/ports"
	"elasticonf/domain/config"
	"elasticonf/pkg/errors"
)

// Registry is the definition registry for one configuration scope.
// Loading is single-threaded, but lookups may happen from anywhere once the
// application is up, so access is guarded.
type Registry struct {
	mu       sync.RWMutex
	managers map[string]*config.ManagerDefinition
	caches   map[string]ports.Cache
	logger   *zap.Logger
}

// NewRegistry creates an empty registry
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		managers: make(map[string]*config.ManagerDefinition),
		caches:   make(map[string]ports.Cache),
		logger:   logger,
	}
}

// RegisterManager registers the manager definition under config.ManagerID.
// A second registration in the same scope is a configuration error and the
// first registration is left untouched.
func (r *Registry) RegisterManager(def *config.ManagerDefinition) error {
	return r.RegisterManagerAt(def, "", 0)
}

// RegisterManagerAt is RegisterManager with the offending element location
// attached to the duplicate error.
func (r *Registry) RegisterManagerAt(def *config.ManagerDefinition, element string, line int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.managers[config.ManagerID]; exists {
		return errors.NewDuplicateManagerError(element, line)
	}

	r.managers[config.ManagerID] = def
	r.logger.Info("registered cache manager definition",
		zap.String("id", config.ManagerID),
		zap.Int("entries", len(def.Entries)),
	)
	return nil
}

// Manager returns the registered manager definition
func (r *Registry) Manager() (*config.ManagerDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.managers[config.ManagerID]
	return def, ok
}

// RegisterCache registers an externally constructed cache so that cache-ref
// entries can resolve it by name.
func (r *Registry) RegisterCache(cache ports.Cache) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := cache.Name()
	if _, exists := r.caches[name]; exists {
		return errors.NewValidationError("cache '" + name + "' is already registered")
	}

	r.caches[name] = cache
	r.logger.Debug("registered cache", zap.String("name", name))
	return nil
}

// Cache resolves a cache-ref placeholder by name
func (r *Registry) Cache(name string) (ports.Cache, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cache, ok := r.caches[name]
	return cache, ok
}
