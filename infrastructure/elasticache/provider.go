// Package elasticache resolves cache cluster ids to memcached node
// endpoints through the AWS ElastiCache API.
package elasticache

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticache"
	"github.com/aws/aws-sdk-go-v2/service/elasticache/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	"elasticonf/domain/config"
	cfgerrors "elasticonf/pkg/errors"
	"elasticonf/pkg/observability"
)

// DescribeCacheClustersAPI is the ElastiCache surface the provider needs
type DescribeCacheClustersAPI interface {
	DescribeCacheClusters(ctx context.Context, params *elasticache.DescribeCacheClustersInput, optFns ...func(*elasticache.Options)) (*elasticache.DescribeCacheClustersOutput, error)
}

// ClusterAddressProvider resolves one cluster id to the endpoints of its
// cache nodes.
type ClusterAddressProvider struct {
	api       DescribeCacheClustersAPI
	clusterID config.ClusterID
	logger    *zap.Logger
	tracer    *observability.Tracer
}

// NewClusterAddressProvider creates a provider for the given cluster
func NewClusterAddressProvider(api DescribeCacheClustersAPI, clusterID config.ClusterID, logger *zap.Logger, tracer *observability.Tracer) *ClusterAddressProvider {
	return &ClusterAddressProvider{
		api:       api,
		clusterID: clusterID,
		logger:    logger,
		tracer:    tracer,
	}
}

// Addresses implements ports.AddressProvider
func (p *ClusterAddressProvider) Addresses(ctx context.Context) ([]config.Endpoint, error) {
	var endpoints []config.Endpoint

	err := p.tracer.TraceFunction(ctx, "elasticache.DescribeCacheClusters", func(ctx context.Context) error {
		out, err := p.api.DescribeCacheClusters(ctx, &elasticache.DescribeCacheClustersInput{
			CacheClusterId:    aws.String(p.clusterID.String()),
			ShowCacheNodeInfo: aws.Bool(true),
		})
		if err != nil {
			return p.classify(err)
		}

		if len(out.CacheClusters) == 0 {
			return cfgerrors.NewNotFoundError("cache cluster '" + p.clusterID.String() + "'")
		}

		cluster := out.CacheClusters[0]
		for _, node := range cluster.CacheNodes {
			if node.Endpoint == nil || node.Endpoint.Address == nil {
				continue
			}
			address := fmt.Sprintf("%s:%d", aws.ToString(node.Endpoint.Address), aws.ToInt32(node.Endpoint.Port))
			endpoint, err := config.NewEndpoint(address)
			if err != nil {
				return cfgerrors.NewExternalError("elasticache", err)
			}
			endpoints = append(endpoints, endpoint)
		}

		if len(endpoints) == 0 {
			return cfgerrors.NewNotFoundError("cache nodes for cluster '" + p.clusterID.String() + "'")
		}

		p.logger.Debug("resolved cache cluster",
			zap.String("cluster", p.clusterID.String()),
			zap.Int("nodes", len(endpoints)),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return endpoints, nil
}

// classify maps AWS API failures onto the configuration error taxonomy
func (p *ClusterAddressProvider) classify(err error) error {
	var notFound *types.CacheClusterNotFoundFault
	if errors.As(err, &notFound) {
		return cfgerrors.NewNotFoundError("cache cluster '" + p.clusterID.String() + "'").WithCause(err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		p.logger.Warn("elasticache API error",
			zap.String("cluster", p.clusterID.String()),
			zap.String("code", apiErr.ErrorCode()),
		)
	}

	return cfgerrors.NewExternalError("elasticache", err)
}

// StaticAddressProvider returns the literal address from the configuration
type StaticAddressProvider struct {
	endpoint config.Endpoint
}

// NewStaticAddressProvider creates a provider over a fixed endpoint
func NewStaticAddressProvider(endpoint config.Endpoint) *StaticAddressProvider {
	return &StaticAddressProvider{endpoint: endpoint}
}

// Addresses implements ports.AddressProvider
func (p *StaticAddressProvider) Addresses(ctx context.Context) ([]config.Endpoint, error) {
	return []config.Endpoint{p.endpoint}, nil
}
