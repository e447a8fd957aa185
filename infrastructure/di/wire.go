//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"elasticonf/application/registry"
	"elasticonf/infrastructure/config"
	"elasticonf/infrastructure/elasticache"
	"elasticonf/infrastructure/memcached"
	"elasticonf/infrastructure/xmlconfig"
	"elasticonf/pkg/observability"
)

// Container holds the collaborators needed to load a configuration and
// build the cache manager from it.
type Container struct {
	Settings *config.Settings
	Logger   *zap.Logger
	Parser   *xmlconfig.Parser
	Registry *registry.Registry
	Factory  *memcached.ClientFactory
	Resolver elasticache.DescribeCacheClustersAPI
	Metrics  *observability.Metrics
	Tracer   *observability.Tracer
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideElastiCacheClient,
	ProvideCloudWatchClient,
	ProvideMetrics,
	ProvideTracer,
	ProvideRegistry,
	ProvideParser,
	ProvideClientFactory,
	ProvideResolverAPI,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, settings *config.Settings) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
