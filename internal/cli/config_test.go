package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("~", ".lmsctl", "cache.db"), cfg.Cache.Path)
	assert.True(t, cfg.Output.Colors)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadConfig_File(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "lmsctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
cache:
  path: /tmp/lms/cache.db
output:
  colors: false
logging:
  level: debug
`), 0o600))

	cfg, err := LoadConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/lms/cache.db", cfg.Cache.Path)
	assert.False(t, cfg.Output.Colors)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LMSCTL_CACHE_PATH", "/var/tmp/lms.db")
	t.Setenv("LMSCTL_LOGGING_LEVEL", "error")

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "/var/tmp/lms.db", cfg.Cache.Path)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := LoadConfig(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("LMSCTL_LOGGING_LEVEL", "chatty")
	_, err = LoadConfig(viper.New(), "")
	assert.ErrorContains(t, err, "invalid logging level")
}

func TestConfig_CachePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := (&Config{Cache: CacheConfig{Path: "~/.lmsctl/cache.db"}}).CachePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".lmsctl", "cache.db"), got)

	got, err = (&Config{Cache: CacheConfig{Path: "/abs/cache.db"}}).CachePath()
	require.NoError(t, err)
	assert.Equal(t, "/abs/cache.db", got)
}
