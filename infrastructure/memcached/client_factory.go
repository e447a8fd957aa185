// Package memcached constructs gomemcache-backed caches from validated
// definitions.
package memcached

import (
	"context"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"go.uber.org/zap"

	"elasticonf/application/ports"
	"elasticonf/domain/config"
	cfgerrors "elasticonf/pkg/errors"
	"elasticonf/pkg/observability"
)

// ClientFactory builds memcached clients for cache definitions
type ClientFactory struct {
	dialTimeout time.Duration
	logger      *zap.Logger
	metrics     *observability.Metrics
}

// NewClientFactory creates a factory
func NewClientFactory(dialTimeout time.Duration, logger *zap.Logger, metrics *observability.Metrics) *ClientFactory {
	return &ClientFactory{
		dialTimeout: dialTimeout,
		logger:      logger,
		metrics:     metrics,
	}
}

// Create implements ports.ClientFactory. The provider is resolved here, once,
// at construction time.
func (f *ClientFactory) Create(ctx context.Context, def config.CacheDefinition, provider ports.AddressProvider) (ports.Cache, error) {
	endpoints, err := provider.Addresses(ctx)
	if err != nil {
		return nil, cfgerrors.Wrapf(err, "resolving addresses for cache '%s'", def.Name)
	}

	servers := make([]string, len(endpoints))
	for i, e := range endpoints {
		servers[i] = e.String()
	}

	serverList := new(memcache.ServerList)
	if err := serverList.SetServers(servers...); err != nil {
		return nil, cfgerrors.NewValidationError("invalid server address for cache '" + def.Name.String() + "'").WithCause(err)
	}

	client := memcache.NewFromSelector(serverList)
	client.Timeout = f.dialTimeout

	f.logger.Info("constructed cache",
		zap.String("cache", def.Name.String()),
		zap.Strings("servers", servers),
		zap.Int64("expiration", def.Expiration.Seconds()),
		zap.Bool("allowClear", def.AllowClear),
		zap.Bool("consistentHashing", def.Client.ConsistentHashing),
	)

	return newCache(def, client, f.metrics), nil
}
