package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	// APIKey guards /api/v1. Empty disables the check.
	APIKey         string
	TrustedProxies []string

	PaytablePath    string
	PoolTargetCount int
	BuildWorkers    int
	BuildChunkSize  int
	BuildOnStart    bool
	// RNGSeed of zero seeds every source from the OS.
	RNGSeed      uint64
	RTPTolerance float64

	EvalCacheSize int
	EvalCacheTTL  time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:    getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:  getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:  getEnv(EnvServiceName, DefaultServiceName),
		Version:      getEnv(EnvVersion, DefaultVersion),
		PaytablePath: getEnv(EnvPaytablePath, ConfigPathPaytable),
		APIKey:       getEnv(EnvAPIKey, ""),
	}
	cfg.TrustedProxies = splitList(getEnv(EnvTrustedProxies, ""))

	var errs []error
	cfg.Port = parseEnv(EnvPort, DefaultPort, strconv.Atoi, &errs)
	cfg.PoolTargetCount = parseEnv(EnvPoolTargetCount, DefaultPoolTargetCount, strconv.Atoi, &errs)
	cfg.BuildWorkers = parseEnv(EnvBuildWorkers, DefaultBuildWorkers, strconv.Atoi, &errs)
	cfg.BuildChunkSize = parseEnv(EnvBuildChunkSize, DefaultBuildChunkSize, strconv.Atoi, &errs)
	cfg.BuildOnStart = parseEnv(EnvBuildOnStart, true, strconv.ParseBool, &errs)
	cfg.RNGSeed = parseEnv(EnvRNGSeed, uint64(0), parseUint, &errs)
	cfg.RTPTolerance = parseEnv(EnvRTPTolerance, DefaultRTPTolerance, parseFloat, &errs)
	cfg.EvalCacheSize = parseEnv(EnvEvalCacheSize, DefaultEvalCacheSize, strconv.Atoi, &errs)
	cfg.EvalCacheTTL = parseEnv(EnvEvalCacheTTL, DefaultEvalCacheTTL, time.ParseDuration, &errs)
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("%s must be in [1, 65535], got %d", EnvPort, c.Port))
	}
	if c.PaytablePath == "" {
		errs = append(errs, fmt.Errorf("%s must not be empty", EnvPaytablePath))
	}
	if c.PoolTargetCount < 1 || c.PoolTargetCount > MaxPoolTargetCount {
		errs = append(errs, fmt.Errorf("%s must be in [1, %d], got %d", EnvPoolTargetCount, MaxPoolTargetCount, c.PoolTargetCount))
	}
	if c.BuildWorkers < 1 || c.BuildWorkers > MaxBuildWorkers {
		errs = append(errs, fmt.Errorf("%s must be in [1, %d], got %d", EnvBuildWorkers, MaxBuildWorkers, c.BuildWorkers))
	}
	if c.BuildChunkSize < 1 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", EnvBuildChunkSize, c.BuildChunkSize))
	}
	if c.RTPTolerance <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %g", EnvRTPTolerance, c.RTPTolerance))
	}
	if c.EvalCacheSize < 1 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", EnvEvalCacheSize, c.EvalCacheSize))
	}
	if c.EvalCacheTTL < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative, got %s", EnvEvalCacheTTL, c.EvalCacheTTL))
	}
	return errors.Join(errs...)
}

// IsProduction reports whether the service runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// parseEnv parses key with parse, returning def when the variable is unset
// or empty. Parse failures are collected into errs.
func parseEnv[T any](key string, def T, parse func(string) (T, error), errs *[]error) T {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def
	}
	v, err := parse(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s value %q: %w", key, raw, err))
		return def
	}
	return v
}

// splitList parses a comma separated list, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
