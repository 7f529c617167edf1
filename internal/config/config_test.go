package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allEnvVars = []string{
	EnvPort, EnvLogLevel, EnvLogFormat, EnvEnvironment, EnvServiceName, EnvVersion,
	EnvPaytablePath, EnvPoolTargetCount, EnvBuildWorkers, EnvBuildChunkSize, EnvRNGSeed,
	EnvRTPTolerance, EnvEvalCacheSize, EnvEvalCacheTTL, EnvBuildOnStart, EnvSchemaVersion,
	EnvAPIKey, EnvTrustedProxies,
}

// clearEnvVars blanks every variable Load reads. Empty values fall back to
// defaults, and t.Setenv restores the originals after the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range allEnvVars {
		t.Setenv(k, "")
	}
}

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvLogLevel, DefaultLogLevel)
		t.Setenv(EnvLogFormat, DefaultLogFormat)
		t.Setenv(EnvEnvironment, DefaultEnvironment)
		t.Setenv(EnvPaytablePath, ConfigPathPaytable)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultPort, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, ConfigPathPaytable, cfg.PaytablePath)
		assert.Equal(t, DefaultPoolTargetCount, cfg.PoolTargetCount)
		assert.Equal(t, DefaultBuildWorkers, cfg.BuildWorkers)
		assert.True(t, cfg.BuildOnStart)
		assert.Zero(t, cfg.RNGSeed)
		assert.Equal(t, DefaultEvalCacheTTL, cfg.EvalCacheTTL)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvPort, "3000")
		t.Setenv(EnvLogLevel, "debug")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "production")
		t.Setenv(EnvPaytablePath, "/etc/slot/paytable.json")
		t.Setenv(EnvPoolTargetCount, "500")
		t.Setenv(EnvBuildWorkers, "8")
		t.Setenv(EnvBuildChunkSize, "250")
		t.Setenv(EnvRNGSeed, "12345")
		t.Setenv(EnvRTPTolerance, "0.25")
		t.Setenv(EnvEvalCacheSize, "100")
		t.Setenv(EnvEvalCacheTTL, "30s")
		t.Setenv(EnvBuildOnStart, "false")
		t.Setenv(EnvAPIKey, "secret")
		t.Setenv(EnvTrustedProxies, "10.0.0.1, ,10.0.0.2")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, "/etc/slot/paytable.json", cfg.PaytablePath)
		assert.Equal(t, 500, cfg.PoolTargetCount)
		assert.Equal(t, 8, cfg.BuildWorkers)
		assert.Equal(t, 250, cfg.BuildChunkSize)
		assert.Equal(t, uint64(12345), cfg.RNGSeed)
		assert.InDelta(t, 0.25, cfg.RTPTolerance, 1e-12)
		assert.Equal(t, 100, cfg.EvalCacheSize)
		assert.Equal(t, 30*time.Second, cfg.EvalCacheTTL)
		assert.Equal(t, "secret", cfg.APIKey)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.False(t, cfg.BuildOnStart)
	})

	t.Run("returns error for invalid numbers", func(t *testing.T) {
		tests := []struct {
			key, value string
		}{
			{EnvPort, "not-a-number"},
			{EnvPoolTargetCount, "1.5"},
			{EnvRNGSeed, "-1"},
			{EnvRTPTolerance, "abc"},
			{EnvEvalCacheTTL, "10"},
			{EnvBuildOnStart, "maybe"},
		}
		for _, tt := range tests {
			t.Run(tt.key, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv(EnvPaytablePath, ConfigPathPaytable)
				t.Setenv(tt.key, tt.value)

				cfg, err := Load()

				assert.Error(t, err)
				assert.Nil(t, cfg)
				assert.Contains(t, err.Error(), tt.key)
			})
		}
	})

	t.Run("returns error for out of range values", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvPaytablePath, ConfigPathPaytable)
		t.Setenv(EnvPoolTargetCount, "0")
		t.Setenv(EnvBuildWorkers, "1000")

		cfg, err := Load()

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), EnvPoolTargetCount)
		assert.Contains(t, err.Error(), EnvBuildWorkers)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:            8080,
			PaytablePath:    ConfigPathPaytable,
			PoolTargetCount: 100,
			BuildWorkers:    4,
			BuildChunkSize:  1000,
			RTPTolerance:    0.1,
			EvalCacheSize:   10,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"port too high", func(c *Config) { c.Port = 70000 }, EnvPort},
		{"empty paytable path", func(c *Config) { c.PaytablePath = "" }, EnvPaytablePath},
		{"zero chunk", func(c *Config) { c.BuildChunkSize = 0 }, EnvBuildChunkSize},
		{"zero tolerance", func(c *Config) { c.RTPTolerance = 0 }, EnvRTPTolerance},
		{"zero cache", func(c *Config) { c.EvalCacheSize = 0 }, EnvEvalCacheSize},
		{"negative ttl", func(c *Config) { c.EvalCacheTTL = -time.Second }, EnvEvalCacheTTL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
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
