package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holidaze/internal/api"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HOLIDAZE_HOME", "")
	t.Setenv("HOLIDAZE_API_BASE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, api.DefaultBaseURL, cfg.APIBase)
	assert.Equal(t, ".holidaze", filepath.Base(cfg.Home))
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 5.0, cfg.RateLimit)
	assert.Equal(t, 256, cfg.CacheSize)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	home := t.TempDir()
	t.Setenv("HOLIDAZE_HOME", home)
	t.Setenv("HOLIDAZE_API_BASE", "http://localhost:9999")
	t.Setenv("HOLIDAZE_API_KEY", "key")
	t.Setenv("HOLIDAZE_HTTP_TIMEOUT", "2s")
	t.Setenv("HOLIDAZE_CACHE_SIZE", "0")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, home, cfg.Home)
	assert.Equal(t, "http://localhost:9999", cfg.APIBase)
	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, 2*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 1, cfg.CacheSize)
}

func TestLoadConfig_BadDuration(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOLIDAZE_HTTP_TIMEOUT", "soon")

	_, err := LoadConfig()
	assert.ErrorIs(t, err, ErrParsingConfig)
}
