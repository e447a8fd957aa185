package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"
)

// MetricsAPI is the CloudWatch surface the publisher needs
type MetricsAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Metrics publishes cache counters to CloudWatch. A nil client disables
// publishing, which keeps tests and dry runs free of AWS calls.
type Metrics struct {
	namespace string
	client    MetricsAPI
	logger    *zap.Logger
}

// NewMetrics creates a metrics publisher
func NewMetrics(namespace string, client MetricsAPI, logger *zap.Logger) *Metrics {
	return &Metrics{
		namespace: namespace,
		client:    client,
		logger:    logger,
	}
}

// RecordHit records a cache hit
func (m *Metrics) RecordHit(ctx context.Context, cacheName string) {
	m.putCount(ctx, "CacheHit", cacheName)
}

// RecordMiss records a cache miss
func (m *Metrics) RecordMiss(ctx context.Context, cacheName string) {
	m.putCount(ctx, "CacheMiss", cacheName)
}

// RecordClear records a cache flush
func (m *Metrics) RecordClear(ctx context.Context, cacheName string) {
	m.putCount(ctx, "CacheClear", cacheName)
}

func (m *Metrics) putCount(ctx context.Context, metricName, cacheName string) {
	if m == nil || m.client == nil {
		return
	}

	_, err := m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String(metricName),
				Value:      aws.Float64(1),
				Unit:       types.StandardUnitCount,
				Timestamp:  aws.Time(time.Now()),
				Dimensions: []types.Dimension{
					{
						Name:  aws.String("CacheName"),
						Value: aws.String(cacheName),
					},
				},
			},
		},
	})
	if err != nil && m.logger != nil {
		// Metrics are best effort; never fail a cache operation over them
		m.logger.Warn("failed to publish metric",
			zap.String("metric", metricName),
			zap.String("cache", cacheName),
			zap.Error(err),
		)
	}
}
