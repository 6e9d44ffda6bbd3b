package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "remote flags",
			args: []string{"cmd", "-s", "remote", "-a", "127.0.0.1:9090", "-k", "key", "-t", "10", "-l", "debug"},
			expected: &Config{
				StoreKind:          "remote",
				ServerEndpointAddr: "127.0.0.1:9090",
				APIKey:             "key",
				RequestTimeout:     10 * time.Second,
				LogLevel:           "debug",
			},
		},
		{
			name: "s3 flags ignore foreign ones",
			args: []string{"cmd", "-x", "1", "-s=s3", "-b", "roster", "-e", "http://localhost:9000", "-d", "other.db"},
			expected: &Config{
				StoreKind:  "s3",
				S3Bucket:   "roster",
				S3Endpoint: "http://localhost:9000",
				DBPath:     "other.db",
			},
		},
		{name: "incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
