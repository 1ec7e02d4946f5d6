package storage

import (
	"strings"
	"time"
)

// Config holds connection settings for the S3-compatible store that keeps
// inventory snapshots.
type Config struct {
	// Endpoint is host:port of the store. A leading http:// or https:// is ignored.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the snapshot objects.
	Bucket string `mapstructure:"bucket" default:"inventory"`
	Region string `mapstructure:"region" default:""`
	// CreateBucket allows EnsureBucket to create a missing bucket instead of failing.
	CreateBucket bool `mapstructure:"create_bucket" default:"true"`
	// TimeoutSeconds bounds dialing, TLS handshakes and response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Host returns Endpoint without its scheme.
func (c Config) Host() string {
	host := strings.TrimPrefix(c.Endpoint, "http://")
	return strings.TrimPrefix(host, "https://")
}

// Timeout returns TimeoutSeconds as a duration, falling back to 30 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
