package config

import (
	"errors"
	"net"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// CacheName is a value object identifying a cache within a manager.
// Value objects are immutable and have no identity beyond their value.
type CacheName string

// NewCacheName creates a CacheName from a raw attribute value
func NewCacheName(s string) (CacheName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("cache name cannot be blank")
	}
	return CacheName(s), nil
}

// String returns the string representation of the CacheName
func (n CacheName) String() string {
	return string(n)
}

// Endpoint is a memcached server address in host:port form
type Endpoint string

// NewEndpoint creates an Endpoint from a raw attribute value
func NewEndpoint(s string) (Endpoint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("address cannot be blank")
	}
	host, port, err := net.SplitHostPort(s)
	if err != nil {
		return "", errors.New("address must be in host:port form")
	}
	if host == "" {
		return "", errors.New("address host cannot be empty")
	}
	if p, err := strconv.Atoi(port); err != nil || p < 1 || p > 65535 {
		return "", errors.New("address port must be between 1 and 65535")
	}
	return Endpoint(s), nil
}

// String returns the string representation of the Endpoint
func (e Endpoint) String() string {
	return string(e)
}

// clusterIDPattern follows the ElastiCache cluster naming rules: letters,
// digits and hyphens, starting with a letter, at most 50 characters.
var clusterIDPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]{0,49}$`)

// ClusterID identifies an ElastiCache cache cluster whose node addresses are
// resolved through the cloud provider API.
type ClusterID string

// NewClusterID creates a ClusterID from a raw attribute value
func NewClusterID(s string) (ClusterID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("cache cluster id cannot be blank")
	}
	if !clusterIDPattern.MatchString(s) {
		return "", errors.New("cache cluster id must start with a letter and contain only letters, digits and hyphens (max 50 chars)")
	}
	return ClusterID(s), nil
}

// String returns the string representation of the ClusterID
func (c ClusterID) String() string {
	return string(c)
}

// Expiration is a cache entry time-to-live in seconds
type Expiration int64

// ParseExpiration parses an expiration attribute value.
// The value must be a base-10 non-negative integer.
func ParseExpiration(s string) (Expiration, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errors.New("expiration must be an integer number of seconds")
	}
	if v < 0 {
		return 0, errors.New("expiration cannot be negative")
	}
	return Expiration(v), nil
}

// Seconds returns the expiration as int64 seconds
func (e Expiration) Seconds() int64 {
	return int64(e)
}

// ParseAllowClear parses the allowClear attribute. The flag is true iff the
// value equals "true" ignoring case; any other value yields false.
func ParseAllowClear(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

// NewDefinitionID generates a unique id for an anonymous cache definition
func NewDefinitionID() string {
	return "cache#" + uuid.New().String()
}
