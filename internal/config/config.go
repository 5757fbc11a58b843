// Package config loads service settings from an optional .env file, an
// optional YAML file and PAWFECT_ prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "PAWFECT"
	configFileEnvName = "PAWFECT_CONFIG_FILE"
)

// Store backends.
const (
	BackendSpanner = "spanner"
	BackendMemory  = "memory"
)

type Store struct {
	Backend         string `mapstructure:"backend"`
	SpannerDatabase string `mapstructure:"spanner_database"`
	// SeedFile is a fixtures file loaded at startup; empty skips seeding.
	SeedFile string `mapstructure:"seed_file"`
}

type Fetch struct {
	RetryAttempts int           `mapstructure:"retry_attempts"`
	RetryDelay    time.Duration `mapstructure:"retry_delay"`
}

type Catalog struct {
	AffiliateTag string `mapstructure:"affiliate_tag"`
}

type Config struct {
	HTTPAddr        string        `mapstructure:"http_addr"`
	GRPCAddr        string        `mapstructure:"grpc_addr"`
	LogLevel        string        `mapstructure:"log_level"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Store           Store         `mapstructure:"store"`
	Fetch           Fetch         `mapstructure:"fetch"`
	Catalog         Catalog       `mapstructure:"catalog"`
}

var defaults = map[string]any{
	"http_addr":              ":8080",
	"grpc_addr":              ":9090",
	"log_level":              "info",
	"shutdown_timeout":       10 * time.Second,
	"store.backend":          BackendSpanner,
	"store.spanner_database": "projects/test-project/instances/dev-instance/databases/pawfect-catalog-db",
	"store.seed_file":        "",
	"fetch.retry_attempts":   3,
	"fetch.retry_delay":      time.Second,
	"catalog.affiliate_tag":  "",
}

// Load parses --config from args and loads the configuration.
// PAWFECT_CONFIG_FILE overrides the flag.
func Load(args []string) (Config, error) {
	flags := pflag.NewFlagSet("pawfect", pflag.ContinueOnError)
	path := flags.String("config", "", "path to a YAML config file")
	if err := flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("failed to parse flags: %w", err)
	}
	if env, ok := os.LookupEnv(configFileEnvName); ok {
		*path = env
	}
	return LoadFile(*path)
}

// LoadFile loads the configuration with an optional YAML file; empty path
// means defaults and environment only.
func LoadFile(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.UnmarshalExact(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c Config) Validate() error {
	var errs []error
	switch c.Store.Backend {
	case BackendMemory:
	case BackendSpanner:
		if c.Store.SpannerDatabase == "" {
			errs = append(errs, errors.New("store.spanner_database is required for the spanner backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("store.backend must be %q or %q, got %q", BackendSpanner, BackendMemory, c.Store.Backend))
	}
	if c.Fetch.RetryAttempts < 1 {
		errs = append(errs, errors.New("fetch.retry_attempts must be at least 1"))
	}
	if c.Fetch.RetryDelay <= 0 {
		errs = append(errs, errors.New("fetch.retry_delay must be positive"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("shutdown_timeout must be positive"))
	}
	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("http_addr is required"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
