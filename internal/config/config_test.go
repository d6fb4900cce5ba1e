package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"crudapi/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into an empty directory so stray .env files do not leak in.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("DB_DSN", "")
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("RATE_LIMIT_RPS", "")
	t.Setenv("TRUST_PROXY", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, storage.DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "crudapi.db", cfg.Storage.DSN)
	assert.Equal(t, storage.DefaultQueryTimeout, cfg.Storage.QueryTimeout)
	assert.Equal(t, int64(1<<20), cfg.HTTP.MaxBodyBytes)
	assert.Zero(t, cfg.HTTP.RateLimitRPS, "rate limiting is opt-in")
	assert.False(t, cfg.HTTP.TrustProxy)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "crudapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":9000"
storage:
  driver: bolt
  dsn: /var/lib/crudapi/data.bolt
  query_timeout: 2s
log:
  level: debug
  format: json
http:
  rate_limit_rps: 3
  cors_origins: [https://a.example]
`), 0o644))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("DB_DSN", "")
	t.Setenv("APP_ADDR", ":7000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://b.example, https://c.example")
	t.Setenv("TRUST_PROXY", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, storage.DriverBolt, cfg.Storage.Driver)
	assert.Equal(t, "/var/lib/crudapi/data.bolt", cfg.Storage.DSN)
	assert.Equal(t, 2*time.Second, cfg.Storage.QueryTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 3.0, cfg.HTTP.RateLimitRPS)
	assert.Equal(t, 20, cfg.HTTP.RateLimitBurst)
	assert.Equal(t, []string{"https://b.example", "https://c.example"}, cfg.HTTP.CORSOrigins)
	assert.True(t, cfg.HTTP.TrustProxy)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown driver", env: map[string]string{"STORAGE_DRIVER": "oracle"}},
		{name: "bad duration", env: map[string]string{"DB_QUERY_TIMEOUT": "soon"}},
		{name: "bad body limit", env: map[string]string{"MAX_BODY_BYTES": "lots"}},
		{name: "negative body limit", env: map[string]string{"MAX_BODY_BYTES": "-1"}},
		{name: "bad burst", env: map[string]string{"RATE_LIMIT_BURST": "1.5"}},
		{name: "bad trust proxy", env: map[string]string{"TRUST_PROXY": "maybe"}},
		{name: "missing file", env: map[string]string{"CONFIG_FILE": "/nonexistent/crudapi.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t)
			t.Setenv("CONFIG_FILE", "")
			t.Setenv("STORAGE_DRIVER", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DB_DSN=from_file\nLOG_FORMAT=json\n"), 0o644))
	t.Setenv("DB_DSN", "from_env")
	t.Setenv("LOG_FORMAT", "")
	require.NoError(t, os.Unsetenv("LOG_FORMAT"))

	LoadEnvFiles()

	assert.Equal(t, "from_env", os.Getenv("DB_DSN"))
	assert.Equal(t, "json", os.Getenv("LOG_FORMAT"))
}
