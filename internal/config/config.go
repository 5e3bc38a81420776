// Package config loads process configuration: defaults, an optional YAML
// file, a .env file and DNDM_ environment overrides, in that order of
// increasing precedence.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/errors"
)

// EnvPrefix prefixes every environment override, e.g. DNDM_REDIS_ADDRESS
const EnvPrefix = "DNDM"

// Catalog sources
const (
	CatalogSourceBuiltin = "builtin"
	CatalogSourceFile    = "file"
	CatalogSourceAPI     = "api"
)

// ServerConfig holds gRPC listener settings
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the ":port" listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// RedisConfig holds character storage settings
type RedisConfig struct {
	Address     string        `mapstructure:"address"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	PoolSize    int           `mapstructure:"pool_size"`
	UseTLS      bool          `mapstructure:"use_tls"`
	PingTimeout time.Duration `mapstructure:"ping_timeout"`
}

// CatalogConfig selects where reference data comes from
type CatalogConfig struct {
	// Source is one of builtin, file or api
	Source         string        `mapstructure:"source"`
	Dir            string        `mapstructure:"dir"`
	APIBaseURL     string        `mapstructure:"api_base_url"`
	HTTPTimeout    time.Duration `mapstructure:"http_timeout"`
	CacheTTL       time.Duration `mapstructure:"cache_ttl"`
	MaxConcurrency int           `mapstructure:"max_concurrency"`
}

// DiceConfig holds ability score roll settings
type DiceConfig struct {
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// LogConfig holds structured logging settings
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	// Format is text or json
	Format string `mapstructure:"format"`
}

// SlogLevel maps Level onto slog, defaulting to info
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config is the top-level process configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Dice    DiceConfig    `mapstructure:"dice"`
	Log     LogConfig     `mapstructure:"log"`
}

// Validate checks every setting and reports all violations at once
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		vb.InvalidField("server.port", fmt.Sprintf("must be 1-65535, got %d", c.Server.Port))
	}
	if c.Server.ShutdownTimeout < 0 {
		vb.InvalidField("server.shutdown_timeout", "must not be negative")
	}

	errors.ValidateRequired("redis.address", c.Redis.Address, vb)
	if c.Redis.PoolSize < 0 {
		vb.InvalidField("redis.pool_size", "must not be negative")
	}

	errors.ValidateEnum("catalog.source", c.Catalog.Source,
		[]string{CatalogSourceBuiltin, CatalogSourceFile, CatalogSourceAPI}, vb)
	if c.Catalog.Source == CatalogSourceFile && c.Catalog.Dir == "" {
		vb.RequiredField("catalog.dir")
	}
	if c.Catalog.Source == CatalogSourceAPI && c.Catalog.APIBaseURL == "" {
		vb.RequiredField("catalog.api_base_url")
	}
	if c.Catalog.MaxConcurrency < 0 {
		vb.InvalidField("catalog.max_concurrency", "must not be negative")
	}

	if c.Dice.SessionTTL < 0 {
		vb.InvalidField("dice.session_ttl", "must not be negative")
	}

	errors.ValidateEnum("log.level", strings.ToLower(c.Log.Level),
		[]string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("log.format", c.Log.Format, []string{"text", "json"}, vb)

	return vb.Build()
}

// New returns a viper instance with defaults and environment overrides set.
// Callers bind flags onto it before calling FromViper.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// LoadDotEnv loads a .env file into the process environment. A missing file
// is not an error; existing variables are never overwritten.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var present []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			present = append(present, p)
		}
	}
	if len(present) == 0 {
		return nil
	}
	if err := godotenv.Load(present...); err != nil {
		return errors.Wrapf(err, "failed to load %s", strings.Join(present, ", "))
	}
	return nil
}

// Load reads the optional YAML file at path, applies environment overrides
// and validates the result
func Load(path string) (*Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}
	return FromViper(v)
}

// FromViper builds a Config from an already configured viper instance
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults registers the default for every key
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 50051)
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.use_tls", false)
	v.SetDefault("redis.ping_timeout", "5s")

	v.SetDefault("catalog.source", CatalogSourceBuiltin)
	v.SetDefault("catalog.dir", "")
	v.SetDefault("catalog.api_base_url", "https://www.dnd5eapi.co/api/2014/")
	v.SetDefault("catalog.http_timeout", "30s")
	v.SetDefault("catalog.cache_ttl", "24h")
	v.SetDefault("catalog.max_concurrency", 8)

	v.SetDefault("dice.session_ttl", "15m")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}
