package config

import "time"

const (
	// Configuration file paths
	ConfigPathPaytable = "configs/paytable.json"
	ConfigPathEnvFile  = ".env"
)

// Defaults
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "slotforge"
	DefaultVersion         = "dev"
	DefaultPoolTargetCount = 100
	DefaultBuildWorkers    = 4
	DefaultBuildChunkSize  = 1000
	DefaultRTPTolerance    = 0.1
	DefaultEvalCacheSize   = 4096
	DefaultEvalCacheTTL    = 10 * time.Minute
	DefaultShutdownTimeout = 15 * time.Second
)

// Limits
const (
	MaxPoolTargetCount = 1_000_000
	MaxBuildWorkers    = 256
)

// Environment variable names
const (
	EnvPort            = "PORT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvEnvironment     = "ENVIRONMENT"
	EnvServiceName     = "SERVICE_NAME"
	EnvVersion         = "VERSION"
	EnvPaytablePath    = "PAYTABLE_PATH"
	EnvPoolTargetCount = "POOL_TARGET_COUNT"
	EnvBuildWorkers    = "BUILD_WORKERS"
	EnvBuildChunkSize  = "BUILD_CHUNK_SIZE"
	EnvRNGSeed         = "RNG_SEED"
	EnvRTPTolerance    = "RTP_TOLERANCE"
	EnvEvalCacheSize   = "EVAL_CACHE_SIZE"
	EnvEvalCacheTTL    = "EVAL_CACHE_TTL"
	EnvBuildOnStart    = "BUILD_ON_START"
	EnvSchemaVersion   = "ENV_SCHEMA_VERSION"
	EnvAPIKey          = "API_KEY"
	EnvTrustedProxies  = "TRUSTED_PROXIES"
)
