// Package config loads runtime configuration for the roster CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c / -config or the
//     ROSTER_CONFIG environment variable.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "3s" or integer nanoseconds. S3 credentials are only read from
// the file; when they are absent the AWS default credential chain applies.
//
//	{
//	  "store": "s3",
//	  "log_level": "info",
//	  "db_path": "roster.db",
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "api_key": "eyJhbGciOi...",
//	  "request_timeout": "5s",
//	  "s3_bucket": "roster",
//	  "s3_region": "us-east-1",
//	  "s3_endpoint": "http://localhost:9000",
//	  "s3_access_key": "minioadmin",
//	  "s3_secret_key": "minioadmin",
//	  "s3_prefix": "roster/"
//	}
package config
