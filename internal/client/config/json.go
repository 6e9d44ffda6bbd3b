package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/roster/internal/flagx"
	"github.com/dmitrijs2005/roster/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the timeout either as a
// string like "3s" or as integer nanoseconds.
type JsonConfig struct {
	StoreKind          string         `json:"store"`
	LogLevel           string         `json:"log_level"`
	DBPath             string         `json:"db_path"`
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	APIKey             string         `json:"api_key"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	S3Bucket           string         `json:"s3_bucket"`
	S3Region           string         `json:"s3_region"`
	S3Endpoint         string         `json:"s3_endpoint"`
	S3AccessKey        string         `json:"s3_access_key"`
	S3SecretKey        string         `json:"s3_secret_key"`
	S3Prefix           string         `json:"s3_prefix"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from -c / -config or $ROSTER_CONFIG (see
// flagx.ConfigFile). Without a path nothing happens. Keys that are absent or
// empty in the file keep their current value. Read and unmarshal errors
// panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.StoreKind, jc.StoreKind)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.DBPath, jc.DBPath)
	overlay(&cfg.ServerEndpointAddr, jc.ServerEndpointAddr)
	overlay(&cfg.APIKey, jc.APIKey)
	overlay(&cfg.S3Bucket, jc.S3Bucket)
	overlay(&cfg.S3Region, jc.S3Region)
	overlay(&cfg.S3Endpoint, jc.S3Endpoint)
	overlay(&cfg.S3AccessKey, jc.S3AccessKey)
	overlay(&cfg.S3SecretKey, jc.S3SecretKey)
	overlay(&cfg.S3Prefix, jc.S3Prefix)
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
