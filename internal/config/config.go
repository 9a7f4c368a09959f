// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jonathan/job-fit-scorer/internal/cache"
	"github.com/jonathan/job-fit-scorer/internal/gate"
	"github.com/jonathan/job-fit-scorer/internal/penalty"
	"github.com/jonathan/job-fit-scorer/internal/scoring"
)

// EnvPrefix prefixes every environment override, e.g. FITSCORE_SCORING_MODE
const EnvPrefix = "FITSCORE"

// Config is loaded from an optional YAML/JSON file and FITSCORE_* environment variables.
// Missing values take the defaults from Defaults.
type Config struct {
	ScoringMode string          `json:"scoring_mode" mapstructure:"scoring_mode"` // standard or lenient
	Gate        gate.Config     `json:"gate" mapstructure:",squash"`
	Weights     scoring.Weights `json:"weights" mapstructure:"weights"`

	CacheBackend  string        `json:"cache_backend" mapstructure:"cache_backend"` // memory, redis or none
	CacheTTL      time.Duration `json:"cache_ttl" mapstructure:"cache_ttl"`
	RedisAddr     string        `json:"redis_addr,omitempty" mapstructure:"redis_addr"`
	RedisPassword string        `json:"-" mapstructure:"redis_password"`
	RedisDB       int           `json:"redis_db,omitempty" mapstructure:"redis_db"`

	DatabaseURL string `json:"-" mapstructure:"database_url"` // PostgreSQL connection URL

	Port          int  `json:"port" mapstructure:"port"`
	MaxConcurrent int  `json:"max_concurrent" mapstructure:"max_concurrent"`
	LogJSON       bool `json:"log_json" mapstructure:"log_json"`
	Debug         bool `json:"debug" mapstructure:"debug"`
}

// Defaults returns the configuration used when nothing is set
func Defaults() Config {
	return Config{
		ScoringMode:   penalty.ModeStandard,
		Gate:          gate.DefaultConfig(),
		Weights:       scoring.DefaultWeights(),
		CacheBackend:  cache.BackendMemory,
		CacheTTL:      cache.DefaultTTL,
		RedisAddr:     "localhost:6379",
		Port:          8080,
		MaxConcurrent: 4,
	}
}

// Option customizes the viper instance before the config is decoded, e.g. to bind CLI flags
type Option func(v *viper.Viper) error

// BindFlag binds a CLI flag to a config key. The flag wins only when set on the command line.
func BindFlag(key string, flag *pflag.Flag) Option {
	return func(v *viper.Viper) error {
		if flag == nil {
			return fmt.Errorf("no flag to bind for %q", key)
		}
		return v.BindPFlag(key, flag)
	}
}

// Load reads the config file at path (skipped when empty), applies FITSCORE_* environment
// overrides and options, and validates the result.
func Load(path string, opts ...Option) (*Config, error) {
	v := viper.New()
	setDefaults(v, Defaults())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, fmt.Errorf("failed to apply config option: %w", err)
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

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("scoring_mode", d.ScoringMode)
	v.SetDefault("max_missing_critical", d.Gate.MaxMissingCritical)
	v.SetDefault("min_experience_ratio", d.Gate.MinExperienceRatio)
	v.SetDefault("min_skill_score", d.Gate.MinSkillScore)
	v.SetDefault("weights.skills", d.Weights.Skills)
	v.SetDefault("weights.experience", d.Weights.Experience)
	v.SetDefault("weights.projects", d.Weights.Projects)
	v.SetDefault("weights.education", d.Weights.Education)
	v.SetDefault("weights.job_title", d.Weights.JobTitle)
	v.SetDefault("cache_backend", d.CacheBackend)
	v.SetDefault("cache_ttl", d.CacheTTL)
	v.SetDefault("redis_addr", d.RedisAddr)
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("database_url", "")
	v.SetDefault("port", d.Port)
	v.SetDefault("max_concurrent", d.MaxConcurrent)
	v.SetDefault("log_json", false)
	v.SetDefault("debug", false)
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if _, err := penalty.ForMode(c.ScoringMode); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := c.Gate.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := c.Weights.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	switch c.CacheBackend {
	case cache.BackendMemory, cache.BackendRedis, cache.BackendNone:
	default:
		return fmt.Errorf("config error: 'cache_backend' must be memory, redis or none, got %q", c.CacheBackend)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("config error: 'cache_ttl' must be positive")
	}
	if c.CacheBackend == cache.BackendRedis && c.RedisAddr == "" {
		return fmt.Errorf("config error: 'redis_addr' is required for the redis cache")
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535")
	}
	if c.MaxConcurrent < 1 {
		return fmt.Errorf("config error: 'max_concurrent' must be at least 1")
	}

	return nil
}
