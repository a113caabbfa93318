// Package config loads service and CLI settings from defaults, an optional
// config file, I18NEXT_* environment variables and bound command flags.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable: I18NEXT_LANGUAGE,
// I18NEXT_S3_BUCKET, I18NEXT_HTTP_ADDR, ...
const EnvPrefix = "I18NEXT"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all settings.
type Config struct {
	Language       string `mapstructure:"language"`
	Fallback       string `mapstructure:"fallback"`
	Source         string `mapstructure:"source"`
	Namespace      string `mapstructure:"namespace"`
	S3             S3     `mapstructure:"s3"`
	Log            Log    `mapstructure:"log"`
	HTTP           HTTP   `mapstructure:"http"`
	RecursionLimit int    `mapstructure:"recursion_limit"`
}

// S3 configures the bucket source used for "s3://bucket/pattern" sources.
type S3 struct {
	AccessKey   string `mapstructure:"access_key"`
	SecretKey   string `mapstructure:"secret_key"`
	Endpoint    string `mapstructure:"endpoint"`
	Region      string `mapstructure:"region"`
	Concurrency int    `mapstructure:"concurrency"`
	PathStyle   bool   `mapstructure:"path_style"`
}

// Log configures the logger.
type Log struct {
	Level             string `mapstructure:"level"`
	Format            string `mapstructure:"format"`
	SentryDSN         string `mapstructure:"sentry_dsn"`
	SentryEnvironment string `mapstructure:"sentry_environment"`
}

// HTTP configures the translation service.
type HTTP struct {
	Addr              string        `mapstructure:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

// SetDefaults registers every key with its default so environment
// variables are seen by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("language", "en")
	v.SetDefault("fallback", "dev")
	v.SetDefault("source", "./locales/__lng__/__ns__.json")
	v.SetDefault("namespace", "")
	v.SetDefault("recursion_limit", 10)

	v.SetDefault("s3.access_key", "")
	v.SetDefault("s3.secret_key", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.concurrency", 8)
	v.SetDefault("s3.path_style", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.sentry_dsn", "")
	v.SetDefault("log.sentry_environment", "production")

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_header_timeout", 5*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
}

// Load reads configuration into a Config. file may be empty; a missing
// file named explicitly is an error.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %q: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required settings.
func (c *Config) Validate() error {
	if c.Language == "" {
		return fmt.Errorf("%w: language is required", ErrInvalidConfig)
	}
	if c.Source == "" {
		return fmt.Errorf("%w: source is required", ErrInvalidConfig)
	}
	if c.RecursionLimit < 1 {
		return fmt.Errorf("%w: recursion_limit must be positive", ErrInvalidConfig)
	}
	if _, _, isS3, err := c.S3Source(); isS3 && err != nil {
		return err
	}
	return nil
}

// S3Source splits an "s3://bucket/pattern" source. isS3 is false for file
// system sources.
func (c *Config) S3Source() (bucket, pattern string, isS3 bool, err error) {
	if !strings.HasPrefix(c.Source, "s3://") {
		return "", "", false, nil
	}
	u, err := url.Parse(c.Source)
	if err != nil {
		return "", "", true, fmt.Errorf("%w: source: %v", ErrInvalidConfig, err)
	}
	pattern = strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || pattern == "" {
		return "", "", true, fmt.Errorf("%w: source must look like s3://bucket/pattern", ErrInvalidConfig)
	}
	return u.Host, pattern, true, nil
}
