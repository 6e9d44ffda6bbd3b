package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/roster/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   store kind: local, s3 or remote
//	-d string   SQLite file of the local store
//	-a string   address and port of the roster server
//	-k string   API key for the roster server
//	-t int      per-request timeout of the remote store (in seconds)
//	-b string   S3 bucket
//	-e string   S3 endpoint (MinIO and other S3-compatible services)
//	-l string   log level: debug, info, warn or error
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-d", "-a", "-k", "-t", "-b", "-e", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoreKind, "s", cfg.StoreKind, "store kind: local, s3 or remote")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path to the local SQLite database")
	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "API key for the server")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Endpoint, "e", cfg.S3Endpoint, "S3 endpoint URL")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
