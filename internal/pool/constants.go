package pool

// Sampling budget
const (
	// AttemptMultiplier bounds a bucket at target*AttemptMultiplier evaluations.
	AttemptMultiplier = 100
	DefaultChunkSize  = 1000
	// MaxTargetCount keeps per-bucket allocations and the attempt budget bounded.
	MaxTargetCount = 1_000_000
)

// Warning messages
const (
	WarnMsgUnreachable = "no boards landed in [%g, %g] after %d attempts; bucket is likely unreachable with the current symbols and paylines"
	WarnMsgUnderfilled = "filled %d of %d boards in [%g, %g] after %d attempts; widen the range or adjust symbol payouts"
)

// Error context
const (
	ErrContextBucket = "bucket %q"
)

// Log messages
const (
	LogMsgBuildStarted  = "Pool build started"
	LogMsgBuildComplete = "Pool build complete"
	LogMsgBucketWarning = "Pool bucket under target"
	LogMsgBuildAborted  = "Pool build aborted"
)

// Log field keys
const (
	LogFieldGeneration = "generation"
	LogFieldOutcome    = "outcome"
	LogFieldBuckets    = "buckets"
	LogFieldTarget     = "target"
	LogFieldGenerated  = "generated"
	LogFieldAttempts   = "attempts"
	LogFieldSeed       = "seed"
	LogFieldSeverity   = "severity"
	LogFieldBoards     = "boards"
	LogFieldSuccess    = "success"
	LogFieldDuration   = "duration"
	LogFieldError      = "error"
)
