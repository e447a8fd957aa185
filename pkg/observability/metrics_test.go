package observability

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCloudWatch struct {
	inputs []*cloudwatch.PutMetricDataInput
}

func (f *fakeCloudWatch) PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	f.inputs = append(f.inputs, params)
	return &cloudwatch.PutMetricDataOutput{}, nil
}

func TestMetricsPublish(t *testing.T) {
	cw := &fakeCloudWatch{}
	m := NewMetrics("ElastiConf/test", cw, zap.NewNop())

	ctx := context.Background()
	m.RecordHit(ctx, "sessions")
	m.RecordMiss(ctx, "sessions")
	m.RecordClear(ctx, "catalog")

	require.Len(t, cw.inputs, 3)
	assert.Equal(t, "ElastiConf/test", aws.ToString(cw.inputs[0].Namespace))
	assert.Equal(t, "CacheHit", aws.ToString(cw.inputs[0].MetricData[0].MetricName))
	assert.Equal(t, "CacheMiss", aws.ToString(cw.inputs[1].MetricData[0].MetricName))
	assert.Equal(t, "CacheClear", aws.ToString(cw.inputs[2].MetricData[0].MetricName))
	assert.Equal(t, "sessions", aws.ToString(cw.inputs[0].MetricData[0].Dimensions[0].Value))
}

func TestMetricsDisabled(t *testing.T) {
	m := NewMetrics("ElastiConf/test", nil, zap.NewNop())

	// No client configured: publishing is a no-op, never a panic
	m.RecordHit(context.Background(), "sessions")

	var nilMetrics *Metrics
	nilMetrics.RecordMiss(context.Background(), "sessions")
}
