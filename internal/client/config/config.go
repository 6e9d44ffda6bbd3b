package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/roster/internal/client/store"
)

// Config holds runtime settings for the roster CLI.
//
// Units: RequestTimeout is a time.Duration (e.g., 5*time.Second).
type Config struct {
	StoreKind string
	LogLevel  string

	// local store
	DBPath string

	// remote store
	ServerEndpointAddr string
	APIKey             string
	RequestTimeout     time.Duration

	// s3 store
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Prefix    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoreKind = string(store.KindLocal)
	c.LogLevel = "warn"
	c.DBPath = "roster.db"
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 5 * time.Second
	c.S3Region = "us-east-1"
	c.S3Prefix = "roster/"
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	switch store.Kind(c.StoreKind) {
	case store.KindLocal:
		if c.DBPath == "" {
			return errors.New("local store needs a database path")
		}
	case store.KindS3:
		if c.S3Bucket == "" {
			return errors.New("s3 store needs a bucket")
		}
	case store.KindRemote:
		if c.ServerEndpointAddr == "" {
			return errors.New("remote store needs a server address")
		}
	default:
		return fmt.Errorf("unknown store kind %q (want local, s3 or remote)", c.StoreKind)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
