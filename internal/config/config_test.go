package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Defaults(), *cfg)
}

func TestLoad_YAMLFile(t *testing.T) {
	content := `
scoring_mode: lenient
max_missing_critical: 1
min_experience_ratio: 0.6
cache_backend: none
cache_ttl: 30s
port: 9090
weights:
  skills: 0.4
  experience: 0.2
  projects: 0.2
  education: 0.1
  job_title: 0.1
`
	path := filepath.Join(t.TempDir(), "fitscore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "lenient", cfg.ScoringMode)
	assert.Equal(t, 1, cfg.Gate.MaxMissingCritical)
	assert.Equal(t, 0.6, cfg.Gate.MinExperienceRatio)
	assert.Equal(t, 0.3, cfg.Gate.MinSkillScore)
	assert.Equal(t, "none", cfg.CacheBackend)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 0.4, cfg.Weights.Skills)
	assert.Equal(t, 4, cfg.MaxConcurrent)
}

func TestLoad_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitscore.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"max_concurrent": 8, "debug": true}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.MaxConcurrent)
	assert.True(t, cfg.Debug)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FITSCORE_SCORING_MODE", "lenient")
	t.Setenv("FITSCORE_MIN_SKILL_SCORE", "0.5")
	t.Setenv("FITSCORE_CACHE_TTL", "2m")
	t.Setenv("FITSCORE_DATABASE_URL", "postgres://localhost/fitscore")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "lenient", cfg.ScoringMode)
	assert.Equal(t, 0.5, cfg.Gate.MinSkillScore)
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "postgres://localhost/fitscore", cfg.DatabaseURL)
}

func TestLoad_Option(t *testing.T) {
	cfg, err := Load("", func(v *viper.Viper) error {
		v.Set("port", 7000)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
}

func TestLoad_BindFlag(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("mode", "", "")
	fs.Int("port", 9000, "")
	require.NoError(t, fs.Parse([]string{"--mode", "lenient"}))

	cfg, err := Load("", BindFlag("scoring_mode", fs.Lookup("mode")), BindFlag("port", fs.Lookup("port")))
	require.NoError(t, err)
	assert.Equal(t, "lenient", cfg.ScoringMode)
	assert.Equal(t, 8080, cfg.Port, "unset flag keeps the config default")

	_, err = Load("", BindFlag("port", fs.Lookup("missing")))
	assert.Error(t, err)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load("/nonexistent/path/fitscore.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("FITSCORE_SCORING_MODE", "strict")

	cfg, err := Load("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "unknown scoring mode")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults are valid", func(c *Config) {}, ""},
		{"bad gate ratio", func(c *Config) { c.Gate.MinExperienceRatio = 1.5 }, "min_experience_ratio"},
		{"weights off", func(c *Config) { c.Weights.Skills = 0.9 }, "config error"},
		{"bad cache backend", func(c *Config) { c.CacheBackend = "memcached" }, "cache_backend"},
		{"zero ttl", func(c *Config) { c.CacheTTL = 0 }, "cache_ttl"},
		{"redis without addr", func(c *Config) { c.CacheBackend = "redis"; c.RedisAddr = "" }, "redis_addr"},
		{"bad port", func(c *Config) { c.Port = 70000 }, "port"},
		{"no concurrency", func(c *Config) { c.MaxConcurrent = 0 }, "max_concurrent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
