// Package config loads CLI settings from flags, environment and an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultFile is read from the working directory when no --config is given.
const DefaultFile = ".specdoc.yaml"

// EnvPrefix prefixes every environment variable, e.g. SPECDOC_SCHEMA or SPECDOC_REDIS_ADDR.
const EnvPrefix = "SPECDOC"

// Config holds every setting of the specdoc CLI.
type Config struct {
	Schema       string   `mapstructure:"schema"`
	Descriptions string   `mapstructure:"descriptions"`
	Document     Document `mapstructure:"document"`
	Output       string   `mapstructure:"output"`
	Format       string   `mapstructure:"format"`
	LogLevel     string   `mapstructure:"log_level"`
	LogJSON      bool     `mapstructure:"log_json"`
	Port         int      `mapstructure:"port"`
	Redis        Redis    `mapstructure:"redis"`
	Store        string   `mapstructure:"store"`
}

// Document overrides the prose of the markdown reference. Empty fields keep the defaults.
type Document struct {
	Title  string `mapstructure:"title"`
	Intro  string `mapstructure:"intro"`
	Footer string `mapstructure:"footer"`
}

// Redis configures the shared artifact store.
type Redis struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"`
}

var defaults = map[string]any{
	"schema":          "schema.yaml",
	"descriptions":    "",
	"document.title":  "",
	"document.intro":  "",
	"document.footer": "",
	"output":          "",
	"format":          "markdown",
	"log_level":       "info",
	"log_json":        false,
	"port":            8080,
	"redis.addr":      "",
	"redis.password":  "",
	"redis.db":        0,
	"redis.prefix":    "specdoc:",
	"redis.ttl":       time.Duration(0),
	"store":           "",
}

// New returns a viper instance with defaults and environment binding in place.
func New() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds each flag present in flags to its config key.
// keys maps config keys to flag names.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	return nil
}

// Load reads cfgFile, or DefaultFile when it exists, and decodes the merged settings.
// An explicit cfgFile must exist.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	file := cfgFile
	if file == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			file = DefaultFile
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values viper cannot type-check.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.Redis.TTL < 0 {
		return errors.New("redis ttl must not be negative")
	}
	return nil
}
