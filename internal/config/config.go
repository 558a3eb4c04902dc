// Package config loads debtree's optional TOML configuration file.
//
// The file lives at ~/.config/debtree/config.toml (or under
// $XDG_CONFIG_HOME) and provides defaults that command-line flags override:
//
//	repo = "http://deb.debian.org/debian/dists/stable/main/binary-amd64"
//	filter = ""
//
//	[cache]
//	backend = "file"          # file, redis, none
//	redis_addr = "localhost:6379"
//	ttl = "24h"
//
// A missing file is not an error; it yields the built-in defaults.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/debtree/pkg/errors"
)

// appName is used for the config and cache directory names.
const appName = "debtree"

// Cache backends selectable via the config file.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// DefaultCacheTTL bounds how long a fetched package index is reused.
const DefaultCacheTTL = 24 * time.Hour

// Config holds the user-facing settings.
type Config struct {
	Repo   string      `toml:"repo"`   // default repository URL or file path
	Filter string      `toml:"filter"` // default substring filter
	Cache  CacheConfig `toml:"cache"`
}

// CacheConfig selects and tunes the index cache backend.
type CacheConfig struct {
	Backend   string `toml:"backend"`    // file, redis, none
	RedisAddr string `toml:"redis_addr"` // host:port for the redis backend
	TTL       string `toml:"ttl"`        // Go duration string, e.g. "24h"
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Cache: CacheConfig{
			Backend:   BackendFile,
			RedisAddr: "localhost:6379",
		},
	}
}

// Load reads the config file at path, falling back to defaults when the file
// doesn't exist. An unparsable file or invalid settings are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q (want file, redis, or none)", c.Cache.Backend)
	}
	if _, err := c.Cache.TTLDuration(); err != nil {
		return err
	}
	return nil
}

// TTLDuration parses the configured cache TTL, defaulting to
// [DefaultCacheTTL] when unset.
func (c CacheConfig) TTLDuration() (time.Duration, error) {
	if c.TTL == "" {
		return DefaultCacheTTL, nil
	}
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid cache ttl %q", c.TTL)
	}
	return d, nil
}

// Path returns the config file location, honoring XDG_CONFIG_HOME.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// CacheDir returns the cache directory using the XDG standard
// (~/.cache/debtree/).
func CacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
