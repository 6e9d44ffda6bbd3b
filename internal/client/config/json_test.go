package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Setenv("ROSTER_CONFIG", "")

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"store":                "s3",
		"server_endpoint_addr": "www.example:9000",
		"request_timeout":      "10s",
		"s3_bucket":            "roster",
		"s3_access_key":        "minio",
		"s3_secret_key":        "secret",
	})
	pathEnv := writeTempJSON(t, dir, "env.json", map[string]any{
		"db_path":         "env.db",
		"request_timeout": 2000000000,
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "s3", cfg.StoreKind)
		assert.Equal(t, "www.example:9000", cfg.ServerEndpointAddr)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "roster", cfg.S3Bucket)
		assert.Equal(t, "minio", cfg.S3AccessKey)
		assert.Equal(t, "secret", cfg.S3SecretKey)
		assert.Equal(t, "roster.db", cfg.DBPath, "absent keys keep defaults")
	})

	t.Run("loads from env when no flag", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv("ROSTER_CONFIG", pathEnv)

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "env.db", cfg.DBPath)
		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			ServerEndpointAddr: "defaults:1234",
			RequestTimeout:     42 * time.Second,
		}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.ServerEndpointAddr)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "nope.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Setenv("ROSTER_CONFIG", "")

	path := writeTempJSON(t, "", "", map[string]any{"store": "remote", "api_key": "from-json"})
	os.Args = []string{"testbin", "-c", path, "-k", "from-flag"}

	cfg := LoadConfig()
	assert.Equal(t, "remote", cfg.StoreKind)
	assert.Equal(t, "from-flag", cfg.APIKey)
}
