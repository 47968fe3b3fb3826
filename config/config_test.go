package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "promptlens", cfg.App.Name)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.Equal(t, []string{"./data"}, cfg.Data.Paths)
	assert.Equal(t, 10, cfg.Analyze.UserLimit)
	assert.NotEmpty(t, cfg.Data.CacheDir)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "promptlens.yaml")
	content := `server:
  port: 9100
  host: 127.0.0.1
analyze:
  user_limit: 25
data:
  paths:
    - /tmp/records
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 25, cfg.Analyze.UserLimit)
	assert.Equal(t, []string{"/tmp/records"}, cfg.Data.Paths)
	// Untouched keys keep their defaults.
	assert.Equal(t, "info", cfg.App.LogLevel)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PROMPTLENS_SERVER_PORT", "9200")
	t.Setenv("PROMPTLENS_APP_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9200, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := DefaultConfig()
	assert.NoError(t, Validate(valid))

	cfg := DefaultConfig()
	cfg.Server.Port = 0
	assert.Error(t, Validate(cfg))

	cfg = DefaultConfig()
	cfg.Server.Port = 70000
	assert.Error(t, Validate(cfg))

	cfg = DefaultConfig()
	cfg.Analyze.UserLimit = -1
	assert.Error(t, Validate(cfg))

	cfg = DefaultConfig()
	cfg.Data.Paths = nil
	assert.Error(t, Validate(cfg))

	cfg = DefaultConfig()
	cfg.Data.Paths = []string{" "}
	assert.Error(t, Validate(cfg))

	cfg = DefaultConfig()
	cfg.App.LogLevel = "loud"
	assert.Error(t, Validate(cfg))
}
