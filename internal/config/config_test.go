package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_DefaultsWithoutEnvFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://manara-service.rabeh.sy", cfg.Upstream.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.RequestTimeout)
	assert.Equal(t, FilterModeClient, cfg.Upstream.FilterMode)
	assert.Equal(t, DataSourceRemote, cfg.Upstream.DataSource)
	assert.True(t, cfg.Breaker.Enabled)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "manara_session", cfg.Session.CookieName)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 34.8021, cfg.Map.CenterLat)
	assert.Equal(t, 38.9968, cfg.Map.CenterLon)
	assert.Equal(t, 7, cfg.Map.Zoom)
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
}

func TestLoadFrom_EnvFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "API_PORT=9090\nUPSTREAM_BASE_URL=http://upstream.local/\nDATA_SOURCE=mock\nREDIS_ENABLED=true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("UPSTREAM_FILTER_MODE", "SERVER")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "http://upstream.local", cfg.Upstream.BaseURL)
	assert.Equal(t, DataSourceMock, cfg.Upstream.DataSource)
	assert.Equal(t, FilterModeServer, cfg.Upstream.FilterMode)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
}

func TestLoadFrom_RejectsUnknownModes(t *testing.T) {
	t.Run("data source", func(t *testing.T) {
		t.Setenv("DATA_SOURCE", "sqlite")
		_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DATA_SOURCE")
	})

	t.Run("filter mode", func(t *testing.T) {
		t.Setenv("UPSTREAM_FILTER_MODE", "both")
		_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "UPSTREAM_FILTER_MODE")
	})
}
