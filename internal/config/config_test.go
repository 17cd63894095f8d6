package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "becky.db", cfg.Database.Filename)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 5*time.Second, cfg.Database.WriteTimeout)
	assert.Equal(t, 100*time.Millisecond, cfg.Timer.SamplerInterval)
	assert.Equal(t, 60*time.Second, cfg.Application.Timeout)
	assert.False(t, cfg.Application.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_GetDatabasePath(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = "/tmp/becky"
	cfg.Database.Filename = "test.db"

	assert.Equal(t, filepath.Join("/tmp/becky", "test.db"), cfg.GetDatabasePath())
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Setenv("BM_DB_DIR", "/var/becky")
	t.Setenv("BM_DB_FILENAME", "other.db")
	t.Setenv("BM_TIMER_SAMPLER_INTERVAL", "250ms")
	t.Setenv("BM_APP_VERBOSE", "true")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/var/becky", cfg.Database.Dir)
	assert.Equal(t, "other.db", cfg.Database.Filename)
	assert.Equal(t, 250*time.Millisecond, cfg.Timer.SamplerInterval)
	assert.True(t, cfg.Application.Verbose)
}

func TestConfig_LoadFromEnvironment_IgnoresInvalid(t *testing.T) {
	t.Setenv("BM_TIMER_SAMPLER_INTERVAL", "not-a-duration")
	t.Setenv("BM_APP_VERBOSE", "not-a-bool")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, 100*time.Millisecond, cfg.Timer.SamplerInterval)
	assert.False(t, cfg.Application.Verbose)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		errField string
	}{
		{
			name:     "empty database dir",
			mutate:   func(c *Config) { c.Database.Dir = "" },
			errField: "database.dir",
		},
		{
			name:     "empty database filename",
			mutate:   func(c *Config) { c.Database.Filename = "" },
			errField: "database.filename",
		},
		{
			name:     "non-positive query timeout",
			mutate:   func(c *Config) { c.Database.QueryTimeout = 0 },
			errField: "database.query_timeout",
		},
		{
			name:     "non-positive sampler interval",
			mutate:   func(c *Config) { c.Timer.SamplerInterval = 0 },
			errField: "timer.sampler_interval",
		},
		{
			name:     "non-positive app timeout",
			mutate:   func(c *Config) { c.Application.Timeout = -time.Second },
			errField: "application.timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			configErr, ok := err.(*ConfigError)
			require.True(t, ok)
			assert.Equal(t, tt.errField, configErr.Field)
		})
	}
}

func TestCreateTestRepository(t *testing.T) {
	repo, err := CreateTestRepository()
	require.NoError(t, err)
	defer repo.Close()
}
