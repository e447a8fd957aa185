// Package config loads runtime settings from the environment. The cache
// topology itself comes from the XML document, not from here.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Settings holds all runtime configuration
type Settings struct {
	// AWS configuration
	AWSRegion string

	Environment string

	// Memcached client configuration
	DialTimeout time.Duration

	// Observability
	LogLevel        string
	MetricNamespace string
	EnableMetrics   bool
	EnableTracing   bool
}

// LoadSettings loads configuration from environment variables
func LoadSettings() (*Settings, error) {
	s := &Settings{
		AWSRegion:   getEnv("AWS_REGION", "us-west-2"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DialTimeout: time.Duration(getEnvInt("MEMCACHED_DIAL_TIMEOUT_MS", 500)) * time.Millisecond,

		LogLevel:        getEnv("LOG_LEVEL", "info"),
		MetricNamespace: getEnv("METRIC_NAMESPACE", "ElastiConf"),
		EnableMetrics:   getEnvBool("ENABLE_METRICS", false),
		EnableTracing:   getEnvBool("ENABLE_TRACING", false),
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks if all required configuration is present
func (s *Settings) Validate() error {
	if s.Environment == "production" {
		if s.AWSRegion == "" {
			return fmt.Errorf("AWS_REGION is required in production")
		}
	}
	if s.DialTimeout <= 0 {
		return fmt.Errorf("MEMCACHED_DIAL_TIMEOUT_MS must be positive")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (s *Settings) IsDevelopment() bool {
	return s.Environment == "development"
}

// IsProduction checks if running in production mode
func (s *Settings) IsProduction() bool {
	return s.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
