package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"

	// Operation error messages
	ErrMsgSpinFailed         = "Failed to settle spin"
	ErrMsgBuildPoolsFailed   = "Failed to build pools"
	ErrMsgLoadPaytableFailed = "Failed to load paytable"
	ErrMsgActualRTPFailed    = "Failed to compute actual RTP"
	ErrMsgDistributionFailed = "Failed to sample distribution"
	ErrMsgSimulationFailed   = "Failed to run simulation"
	ErrMsgReadBodyFailed     = "Failed to read request body"
)

// Success messages for API responses
const (
	MsgPaytableLoaded = "Paytable loaded; pools cleared"
)
