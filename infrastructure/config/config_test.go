package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	for _, key := range []string{"ENVIRONMENT", "MEMCACHED_DIAL_TIMEOUT_MS", "METRIC_NAMESPACE", "ENABLE_METRICS"} {
		t.Setenv(key, "")
	}

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, "development", s.Environment)
	assert.True(t, s.IsDevelopment())
	assert.False(t, s.IsProduction())
	assert.Equal(t, 500*time.Millisecond, s.DialTimeout)
	assert.Equal(t, "ElastiConf", s.MetricNamespace)
	assert.False(t, s.EnableMetrics)
}

func TestLoadSettingsFromEnv(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("AWS_REGION", "eu-central-1")
	t.Setenv("MEMCACHED_DIAL_TIMEOUT_MS", "2000")
	t.Setenv("ENABLE_METRICS", "true")

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.True(t, s.IsProduction())
	assert.Equal(t, "eu-central-1", s.AWSRegion)
	assert.Equal(t, 2*time.Second, s.DialTimeout)
	assert.True(t, s.EnableMetrics)
}

func TestValidateRejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("MEMCACHED_DIAL_TIMEOUT_MS", "0")

	_, err := LoadSettings()
	assert.Error(t, err)
}
