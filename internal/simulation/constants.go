package simulation

// Defaults
const (
	DefaultChunkSize = 1000
	MaxSpins         = 10_000_000
)

// Log messages
const (
	LogMsgRunStarted  = "Simulation started"
	LogMsgRunComplete = "Simulation complete"
	LogMsgRunAborted  = "Simulation aborted"
)

// Log field keys
const (
	LogFieldRunID   = "run_id"
	LogFieldSpins   = "spins"
	LogFieldDone    = "completed"
	LogFieldBaseBet = "base_bet"
	LogFieldRTP     = "rtp"
	LogFieldError   = "error"
)

// Error context
const (
	ErrContextSpin = "spin %d"
)
