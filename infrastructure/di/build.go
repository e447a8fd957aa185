package di

import (
	"context"

	"go.uber.org/zap"

	"elasticonf/application/ports"
	"elasticonf/application/registry"
	"elasticonf/application/services"
	cachecfg "elasticonf/domain/config"
	"elasticonf/infrastructure/elasticache"
	cfgerrors "elasticonf/pkg/errors"
	"elasticonf/pkg/observability"
)

// BuildDeps are the collaborators BuildCacheManager constructs caches with
type BuildDeps struct {
	Registry *registry.Registry
	Factory  ports.ClientFactory
	Resolver elasticache.DescribeCacheClustersAPI
	Logger   *zap.Logger
	Tracer   *observability.Tracer
}

// BuildCacheManager turns a parsed manager definition into a live cache
// manager with explicit, ordered construction: references resolve through
// the registry, cluster entries through the ElastiCache API, static entries
// through their literal address. The first failure aborts with an error
// naming the cache.
func BuildCacheManager(ctx context.Context, def *cachecfg.ManagerDefinition, deps BuildDeps) (ports.CacheManager, error) {
	caches := make([]ports.Cache, 0, len(def.Entries))

	for _, entry := range def.Entries {
		switch e := entry.(type) {
		case cachecfg.CacheReference:
			cache, ok := deps.Registry.Cache(e.Ref)
			if !ok {
				return nil, cfgerrors.NewNotFoundError("referenced cache '" + e.Ref + "'")
			}
			caches = append(caches, cache)

		case cachecfg.CacheDefinition:
			provider, err := addressProvider(e, deps)
			if err != nil {
				return nil, err
			}
			cache, err := deps.Factory.Create(ctx, e, provider)
			if err != nil {
				return nil, cfgerrors.Wrapf(err, "constructing cache '%s'", e.Name)
			}
			caches = append(caches, cache)

		default:
			return nil, cfgerrors.NewInternalError("unsupported manager entry type")
		}
	}

	return services.NewCacheManager(caches, deps.Logger)
}

// addressProvider selects the resolution strategy for a definition
func addressProvider(def cachecfg.CacheDefinition, deps BuildDeps) (ports.AddressProvider, error) {
	switch def.Source {
	case cachecfg.SourceStatic:
		return elasticache.NewStaticAddressProvider(def.Address), nil
	case cachecfg.SourceCluster:
		if deps.Resolver == nil {
			return nil, cfgerrors.NewInternalError("no ElastiCache client configured for cluster cache '" + def.Name.String() + "'")
		}
		return elasticache.NewClusterAddressProvider(deps.Resolver, def.Cluster, deps.Logger, deps.Tracer), nil
	default:
		return nil, cfgerrors.NewInternalError("unknown address source '" + string(def.Source) + "'")
	}
}
