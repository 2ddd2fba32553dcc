// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jonathan/job-ats/internal/fetch"
	"github.com/jonathan/job-ats/internal/types"
)

const (
	// EnvPrefix prefixes every environment override, e.g. ATS_DATABASE_URL
	EnvPrefix = "ATS"
	// FileName is the config file looked up in the working directory
	FileName = "ats_agent"
)

// Config represents the CLI configuration. Values come from defaults, an
// optional config file, ATS_* environment variables and bound flags, in
// increasing order of precedence.
type Config struct {
	DatabaseURL  string         `mapstructure:"database_url" json:"database_url,omitempty"`
	CachePath    string         `mapstructure:"cache_path" json:"cache_path,omitempty"`
	CacheTTL     time.Duration  `mapstructure:"cache_ttl" json:"cache_ttl" validate:"gte=0"`
	FetchTimeout time.Duration  `mapstructure:"fetch_timeout" json:"fetch_timeout" validate:"gt=0"`
	FetchRPS     float64        `mapstructure:"fetch_rps" json:"fetch_rps" validate:"gte=0"`
	UserAgent    string         `mapstructure:"user_agent" json:"user_agent" validate:"required"`
	TaxonomyPath string         `mapstructure:"taxonomy_path" json:"taxonomy_path,omitempty" validate:"omitempty,file"`
	Concurrency  int            `mapstructure:"concurrency" json:"concurrency" validate:"gte=1,lte=64"`
	Weights      *types.Weights `mapstructure:"weights" json:"weights,omitempty"`
	Verbose      bool           `mapstructure:"verbose" json:"verbose"`
	JSONLogs     bool           `mapstructure:"json_logs" json:"json_logs"`
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	return Config{
		CacheTTL:     fetch.DefaultCacheTTL,
		FetchTimeout: fetch.DefaultTimeout,
		FetchRPS:     1,
		UserAgent:    fetch.DefaultUserAgent,
		Concurrency:  4,
	}
}

var validate = validator.New()

// weightKeys are bound to the environment individually because weights has no default
var weightKeys = []string{"keywords", "sections", "length", "experience", "formatting"}

// Load reads configuration into v. A nil v gets a fresh viper instance; pass
// one with bound flags to let flags override file and environment values.
// An empty path looks for ats_agent.(yaml|json) in the working directory and
// tolerates its absence; an explicit path must exist.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	defaults := DefaultConfig()
	v.SetDefault("database_url", defaults.DatabaseURL)
	v.SetDefault("cache_path", defaults.CachePath)
	v.SetDefault("cache_ttl", defaults.CacheTTL)
	v.SetDefault("fetch_timeout", defaults.FetchTimeout)
	v.SetDefault("fetch_rps", defaults.FetchRPS)
	v.SetDefault("user_agent", defaults.UserAgent)
	v.SetDefault("taxonomy_path", defaults.TaxonomyPath)
	v.SetDefault("concurrency", defaults.Concurrency)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("json_logs", defaults.JSONLogs)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range weightKeys {
		if err := v.BindEnv("weights." + key); err != nil {
			return nil, fmt.Errorf("failed to bind weights.%s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(FileName)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("'%s' failed %s", fieldName(fe), fe.Tag()))
			}
			return fmt.Errorf("config error: %s: %w", strings.Join(msgs, "; "), err)
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// fieldName maps a validator namespace like Config.Weights.Length to weights.length
func fieldName(fe validator.FieldError) string {
	ns := strings.TrimPrefix(fe.StructNamespace(), "Config.")
	parts := strings.Split(ns, ".")
	for i, p := range parts {
		parts[i] = toSnake(p)
	}
	return strings.Join(parts, ".")
}

func toSnake(s string) string {
	switch s {
	case "DatabaseURL":
		return "database_url"
	case "CacheTTL":
		return "cache_ttl"
	case "FetchRPS":
		return "fetch_rps"
	case "JSONLogs":
		return "json_logs"
	}
	var sb strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				sb.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// FetchOptions returns fetch client options for this configuration
func (c *Config) FetchOptions() *fetch.Options {
	opts := fetch.DefaultOptions()
	opts.Timeout = c.FetchTimeout
	opts.UserAgent = c.UserAgent
	opts.RequestsPerSecond = c.FetchRPS
	return opts
}
