package engine

import "time"

// Defaults
const (
	DefaultTargetCount = 100
	DefaultWorkers     = 4
	DefaultQueueSize   = 64
	DefaultCacheSize   = 4096
	DefaultCacheTTL    = 10 * time.Minute
)

// Log messages
const (
	LogMsgSnapshotInstalled = "Paytable snapshot installed"
	LogMsgPoolsPublished    = "Pools published"
	LogMsgBuildStale        = "Pool build discarded; configuration changed"
	LogMsgBuildSuperseded   = "Pool build discarded; a concurrent build published first"
	LogMsgBuildFailed       = "Pool build failed"
)

// Log field keys
const (
	LogFieldGeneration = "generation"
	LogFieldReason     = "reason"
	LogFieldBoards     = "boards"
	LogFieldSuccess    = "success"
	LogFieldError      = "error"
)

// Snapshot change reasons
const (
	ReasonSymbols  = "symbols"
	ReasonPaylines = "paylines"
	ReasonOutcomes = "outcomes"
	ReasonBoard    = "board"
	ReasonPaytable = "paytable"
)
