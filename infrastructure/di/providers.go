package di

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awselasticache "github.com/aws/aws-sdk-go-v2/service/elasticache"
	"go.uber.org/zap"

	"elasticonf/application/registry"
	"elasticonf/infrastructure/config"
	"elasticonf/infrastructure/elasticache"
	"elasticonf/infrastructure/memcached"
	"elasticonf/infrastructure/xmlconfig"
	"elasticonf/pkg/observability"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(settings *config.Settings) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if settings.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, settings *config.Settings) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(settings.AWSRegion),
	)
}

// ProvideElastiCacheClient creates an ElastiCache client
func ProvideElastiCacheClient(awsCfg aws.Config) *awselasticache.Client {
	return awselasticache.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideMetrics creates the cache metrics publisher. Metrics are disabled
// unless the settings enable them.
func ProvideMetrics(client *awscloudwatch.Client, settings *config.Settings, logger *zap.Logger) *observability.Metrics {
	if !settings.EnableMetrics {
		return observability.NewMetrics(settings.MetricNamespace, nil, logger)
	}
	return observability.NewMetrics(settings.MetricNamespace, client, logger)
}

// ProvideTracer creates the tracer
func ProvideTracer(settings *config.Settings) *observability.Tracer {
	if !settings.EnableTracing {
		return nil
	}
	return observability.NewTracer("elasticonf")
}

// ProvideRegistry creates the definition registry
func ProvideRegistry(logger *zap.Logger) *registry.Registry {
	return registry.NewRegistry(logger)
}

// ProvideParser creates the XML configuration parser
func ProvideParser(logger *zap.Logger) *xmlconfig.Parser {
	return xmlconfig.NewParser(logger)
}

// ProvideClientFactory creates the memcached client factory
func ProvideClientFactory(settings *config.Settings, logger *zap.Logger, metrics *observability.Metrics) *memcached.ClientFactory {
	return memcached.NewClientFactory(settings.DialTimeout, logger, metrics)
}

// ProvideResolverAPI exposes the ElastiCache client under the narrow
// interface the address provider consumes.
func ProvideResolverAPI(client *awselasticache.Client) elasticache.DescribeCacheClustersAPI {
	return client
}
