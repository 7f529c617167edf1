package rtp

// Defaults
const (
	DefaultTolerance     = 0.1
	DefaultHistogramBins = 10
	DefaultSampleChunk   = 1000
)

// Coverage thresholds, as shares of samples
const (
	CoverageOKShare  = 0.05
	CoverageLowShare = 0.01
)

// Coverage levels
const (
	CoverageOK   Coverage = "ok"
	CoverageLow  Coverage = "low"
	CoverageNone Coverage = "none"
)

// Log messages
const (
	LogMsgRTPDivergence = "Theoretical and actual RTP diverge"
	LogMsgEmptyBucket   = "RTP bucket has no pooled boards"
)

// Log field keys
const (
	LogFieldTheoretical = "theoretical"
	LogFieldActual      = "actual"
	LogFieldDifference  = "difference"
	LogFieldTolerance   = "tolerance"
	LogFieldOutcome     = "outcome"
)
