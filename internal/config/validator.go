package config

import (
	"fmt"
	"os"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// ValidateEnv checks that the .env schema version, when set, matches
// expectations
func ValidateEnv() error {
	schemaVersion, ok := os.LookupEnv(EnvSchemaVersion)
	if !ok {
		return nil
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("%s mismatch: expected %s, got %s - your .env file may be outdated", EnvSchemaVersion, ExpectedEnvSchemaVersion, schemaVersion)
	}
	return nil
}

// ValidateEnvWithWarnings checks the environment and returns warnings for
// settings that are legal but risky for the loaded configuration
func ValidateEnvWithWarnings(cfg *Config) ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	if cfg.IsProduction() && cfg.RNGSeed != 0 {
		warnings = append(warnings, "RNG_SEED is set in production - spins are predictable to anyone who knows the seed")
	}
	if cfg.IsProduction() && cfg.APIKey == "" {
		warnings = append(warnings, "API_KEY is empty in production - the admin and build endpoints are unauthenticated")
	}
	if cfg.IsProduction() && !cfg.BuildOnStart {
		warnings = append(warnings, "BUILD_ON_START is false - spins fail until pools are built through the API")
	}
	if cfg.PoolTargetCount < DefaultPoolTargetCount {
		warnings = append(warnings, fmt.Sprintf("POOL_TARGET_COUNT=%d is below %d - pooled RTP will be noisy", cfg.PoolTargetCount, DefaultPoolTargetCount))
	}
	return warnings, nil
}
