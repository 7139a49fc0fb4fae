// Package config loads genum settings from a TOML file.
//
// Every key is optional: Load starts from Default and overlays whatever the
// file sets, so a missing file or an empty one yields the defaults.
//
//	[enumerate]
//	from = 1
//	to = 9
//	output = "groups.txt"
//
//	[cache]
//	backend = "file"   # none | file | redis | mongo
//	dir = ""           # empty: the user cache directory
//	ttl = "720h"       # empty: entries never expire
//
//	[cache.redis]
//	addr = "localhost:6379"
//
//	[cache.mongo]
//	uri = "mongodb://localhost:27017"
//	database = "genum"
//	collection = "groups"
//
//	[server]
//	addr = ":8080"
//	max_order = 10
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"time"

	"github.com/BurntSushi/toml"
)

// Cache backends.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full configuration.
type Config struct {
	Enumerate EnumerateConfig `toml:"enumerate"`
	Cache     CacheConfig     `toml:"cache"`
	Server    ServerConfig    `toml:"server"`
}

// EnumerateConfig drives the enumerate command.
type EnumerateConfig struct {
	From   int    `toml:"from"`
	To     int    `toml:"to"`
	Output string `toml:"output"`
}

// CacheConfig selects and configures the catalog store.
type CacheConfig struct {
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir"`
	TTL     string      `toml:"ttl"`
	Redis   RedisConfig `toml:"redis"`
	Mongo   MongoConfig `toml:"mongo"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig configures the mongo backend.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr     string `toml:"addr"`
	MaxOrder int    `toml:"max_order"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Enumerate: EnumerateConfig{From: 1, To: 9, Output: "groups.txt"},
		Cache: CacheConfig{
			Backend: BackendFile,
			Redis:   RedisConfig{Addr: "localhost:6379"},
			Mongo: MongoConfig{
				URI:        "mongodb://localhost:27017",
				Database:   "genum",
				Collection: "groups",
			},
		},
		Server: ServerConfig{Addr: ":8080", MaxOrder: 10},
	}
}

// Load reads path over the defaults and validates the result. An empty path
// or a missing file yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data, cfg)
}

// Parse decodes TOML data over base and validates the result.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	var errs []error
	if c.Enumerate.From < 1 {
		errs = append(errs, fmt.Errorf("enumerate.from=%d < 1", c.Enumerate.From))
	}
	if c.Enumerate.To < c.Enumerate.From {
		errs = append(errs, fmt.Errorf("enumerate.to=%d < from=%d", c.Enumerate.To, c.Enumerate.From))
	}
	backends := []string{BackendNone, BackendFile, BackendRedis, BackendMongo}
	if !slices.Contains(backends, c.Cache.Backend) {
		errs = append(errs, fmt.Errorf("cache.backend=%q not in %v", c.Cache.Backend, backends))
	}
	if _, err := c.CacheTTL(); err != nil {
		errs = append(errs, err)
	}
	if c.Server.MaxOrder < 1 {
		errs = append(errs, fmt.Errorf("server.max_order=%d < 1", c.Server.MaxOrder))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// CacheTTL parses cache.ttl; empty means no expiry (0).
func (c Config) CacheTTL() (time.Duration, error) {
	if c.Cache.TTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil {
		return 0, fmt.Errorf("cache.ttl: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("cache.ttl=%s is negative", d)
	}

	return d, nil
}
