// Package config loads runtime settings for the degrees command from an
// optional YAML file, DEGREES_* environment variables and defaults, and
// builds the zap logger.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix namespaces environment overrides, e.g. DEGREES_DATASET=small.
const EnvPrefix = "DEGREES"

// Config holds the application's configuration.
type Config struct {
	DataRoot  string `mapstructure:"DATA_ROOT"`
	Dataset   string `mapstructure:"DATASET"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	Workers   int    `mapstructure:"WORKERS"`
	CacheSize int    `mapstructure:"CACHE_SIZE"`
	MaxDepth  int    `mapstructure:"MAX_DEPTH"`
}

// Defaults returns the values used when neither file nor environment sets a key.
func Defaults() Config {
	return Config{
		DataRoot:  "data",
		Dataset:   "large",
		LogLevel:  "info",
		Workers:   4,
		CacheSize: 1024,
		MaxDepth:  0,
	}
}

// DatasetDir is the directory holding the CSV tables.
func (c *Config) DatasetDir() string {
	return filepath.Join(c.DataRoot, c.Dataset)
}

// Validate reports out-of-range values.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Dataset) == "":
		return fmt.Errorf("%w: DATASET is empty", ErrInvalidConfig)
	case c.Workers < 0:
		return fmt.Errorf("%w: WORKERS cannot be negative (%d)", ErrInvalidConfig, c.Workers)
	case c.CacheSize < 0:
		return fmt.Errorf("%w: CACHE_SIZE cannot be negative (%d)", ErrInvalidConfig, c.CacheSize)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: MAX_DEPTH cannot be negative (%d)", ErrInvalidConfig, c.MaxDepth)
	}
	return nil
}

// Load reads configuration. If path is empty, degrees.yaml is looked up in
// "." and "./config" and a missing file is not an error; an explicit path
// must exist. Environment variables override the file.
func Load(path string, logger *zap.Logger) (*Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("degrees")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("DATA_ROOT", d.DataRoot)
	v.SetDefault("DATASET", d.Dataset)
	v.SetDefault("LOG_LEVEL", d.LogLevel)
	v.SetDefault("WORKERS", d.Workers)
	v.SetDefault("CACHE_SIZE", d.CacheSize)
	v.SetDefault("MAX_DEPTH", d.MaxDepth)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
		logger.Debug("No config file found, using defaults/env vars")
	} else {
		logger.Debug("Config file loaded", zap.String("file", v.ConfigFileUsed()))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
