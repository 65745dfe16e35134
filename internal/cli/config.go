// Package cli implements lmsctl, the terminal rendition of the dashboard.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the lmsctl configuration.
type Config struct {
	Cache   CacheConfig   `mapstructure:"cache"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CacheConfig locates the local persistent cache.
type CacheConfig struct {
	Path string `mapstructure:"path"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Colors bool `mapstructure:"colors"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig reads .lmsctl.yaml (or cfgFile) and LMSCTL_* variables into v.
func LoadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".lmsctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/lmsctl")
	}

	v.SetEnvPrefix("LMSCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("cache.path", filepath.Join("~", ".lmsctl", "cache.db"))
	v.SetDefault("output.colors", true)
	v.SetDefault("logging.level", "warn")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid logging level: %s (must be debug, info, warn, or error)", cfg.Logging.Level)
	}
	if cfg.Cache.Path == "" {
		return nil, fmt.Errorf("cache.path cannot be empty")
	}
	return &cfg, nil
}

// CachePath resolves a leading ~ in the configured cache path.
func (c *Config) CachePath() (string, error) {
	path := c.Cache.Path
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return path, nil
}
