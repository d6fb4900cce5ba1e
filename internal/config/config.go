// Package config loads service configuration from an optional YAML file,
// .env files and the process environment, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"crudapi/internal/logger"
	"crudapi/internal/storage"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr    string         `yaml:"addr"`
	Storage storage.Config `yaml:"storage"`
	Log     logger.Options `yaml:"log"`
	HTTP    HTTP           `yaml:"http"`
}

// HTTP holds the request-handling limits.
type HTTP struct {
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
	RateLimitRPS    float64       `yaml:"rate_limit_rps"`
	RateLimitBurst  int           `yaml:"rate_limit_burst"`
	CORSOrigins     []string      `yaml:"cors_origins"`
	EnableHSTS      bool          `yaml:"enable_hsts"`
	TrustProxy      bool          `yaml:"trust_proxy"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

func Default() Config {
	return Config{
		Addr: ":8080",
		Storage: storage.Config{
			Driver:       storage.DriverSQLite,
			QueryTimeout: storage.DefaultQueryTimeout,
		},
		Log: logger.Options{Level: "info", Format: "text"},
		HTTP: HTTP{
			MaxBodyBytes:    1 << 20,
			RateLimitBurst:  20,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// LoadEnvFiles reads .env and .env.local into the environment without
// overriding variables that are already set.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load builds the configuration: defaults, then CONFIG_FILE, then environment.
func Load() (Config, error) {
	LoadEnvFiles()

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.readFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = storage.DefaultDSN(cfg.Storage.Driver)
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Addr = getEnv("APP_ADDR", c.Addr)
	c.Storage.Driver = getEnv("STORAGE_DRIVER", c.Storage.Driver)
	c.Storage.DSN = getEnv("DB_DSN", c.Storage.DSN)
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)
	c.Log.File = getEnv("LOG_FILE", c.Log.File)
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		c.HTTP.CORSOrigins = splitList(v)
	}

	var err error
	if c.Storage.QueryTimeout, err = envDuration("DB_QUERY_TIMEOUT", c.Storage.QueryTimeout); err != nil {
		return err
	}
	if c.HTTP.ShutdownTimeout, err = envDuration("SHUTDOWN_TIMEOUT", c.HTTP.ShutdownTimeout); err != nil {
		return err
	}
	if c.HTTP.MaxBodyBytes, err = envParse("MAX_BODY_BYTES", c.HTTP.MaxBodyBytes, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	}); err != nil {
		return err
	}
	if c.HTTP.RateLimitRPS, err = envParse("RATE_LIMIT_RPS", c.HTTP.RateLimitRPS, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	}); err != nil {
		return err
	}
	if c.HTTP.RateLimitBurst, err = envParse("RATE_LIMIT_BURST", c.HTTP.RateLimitBurst, strconv.Atoi); err != nil {
		return err
	}
	if c.HTTP.EnableHSTS, err = envParse("ENABLE_HSTS", c.HTTP.EnableHSTS, strconv.ParseBool); err != nil {
		return err
	}
	if c.HTTP.TrustProxy, err = envParse("TRUST_PROXY", c.HTTP.TrustProxy, strconv.ParseBool); err != nil {
		return err
	}
	return nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case storage.DriverMemory, storage.DriverSQLite, storage.DriverPostgres, storage.DriverBolt:
	default:
		return fmt.Errorf("%w: %q", storage.ErrUnknownDriver, c.Storage.Driver)
	}
	if c.HTTP.MaxBodyBytes < 0 {
		return fmt.Errorf("MAX_BODY_BYTES must not be negative")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	return envParse(key, def, time.ParseDuration)
}

func envParse[T any](key string, def T, parse func(string) (T, error)) (T, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	parsed, err := parse(v)
	if err != nil {
		return def, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return parsed, nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
