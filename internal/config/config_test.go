package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{"CONFIG_PATH", "SERVER_HOST", "SERVER_PORT", "SERVER_ENV", "DATABASE_URL", "DATABASE_NAME"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Address())
	assert.Equal(t, "mongodb://127.0.0.1:27017", cfg.Database.URL)
	assert.Equal(t, "staynest", cfg.Database.Name)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.Validation.AllowUnknown)
}

func TestLoadConfig_File(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeConfig(t, `
server:
  host: 127.0.0.1
  port: 9090
  env: production
  shutdown_timeout: 3s
database:
  url: mongodb://db:27017
  name: staynest_test
validation:
  allow_unknown: true
`))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Address())
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "mongodb://db:27017", cfg.Database.URL)
	assert.Equal(t, "staynest_test", cfg.Database.Name)
	assert.Equal(t, 10*time.Second, cfg.Database.Timeout)
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.Validation.AllowUnknown)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeConfig(t, "server:\n  port: 9090\n"))
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("SERVER_ENV", "production")
	t.Setenv("DATABASE_URL", "mongodb://override:27017")
	t.Setenv("DATABASE_NAME", "other")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, "mongodb://override:27017", cfg.Database.URL)
	assert.Equal(t, "other", cfg.Database.Name)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("explicit file missing", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", writeConfig(t, "server: [unterminated"))
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("empty file keeps defaults", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", writeConfig(t, ""))
		t.Setenv("SERVER_PORT", "")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
	})

	t.Run("bad port", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", writeConfig(t, ""))
		t.Setenv("SERVER_PORT", "eighty")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
