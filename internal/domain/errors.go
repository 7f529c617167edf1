package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Configuration errors
	ErrMsgEmptySymbolCatalog     = "symbol catalog is empty"
	ErrMsgNoOutcomesAvailable    = "no outcomes available"
	ErrMsgInvalidBoardDimensions = "invalid board dimensions"
	ErrMsgInvalidMultiplierRange = "invalid multiplier range"
	ErrMsgInvalidPaytable        = "invalid paytable"
	ErrMsgInvalidTargetCount     = "count out of range"
	ErrMsgInvalidBaseBet         = "base bet must be positive"

	// Runtime unavailability
	ErrMsgPoolsNotBuilt        = "pools not built"
	ErrMsgPoolEmptyForOutcome  = "pool empty for outcome"
	ErrMsgBuildAborted         = "pool build aborted"
	ErrMsgStaleGeneration      = "configuration changed during build"
	ErrMsgBuildSuperseded      = "a concurrent build published first"
	ErrMsgInvariantViolation   = "internal invariant violated"
	ErrMsgSimulationIncomplete = "simulation stopped before completion"
)

// Engine errors. Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
var (
	ErrEmptySymbolCatalog     = errors.New(ErrMsgEmptySymbolCatalog)
	ErrNoOutcomesAvailable    = errors.New(ErrMsgNoOutcomesAvailable)
	ErrInvalidBoardDimensions = errors.New(ErrMsgInvalidBoardDimensions)
	ErrInvalidMultiplierRange = errors.New(ErrMsgInvalidMultiplierRange)
	ErrInvalidPaytable        = errors.New(ErrMsgInvalidPaytable)
	ErrInvalidTargetCount     = errors.New(ErrMsgInvalidTargetCount)
	ErrInvalidBaseBet         = errors.New(ErrMsgInvalidBaseBet)

	ErrPoolsNotBuilt        = errors.New(ErrMsgPoolsNotBuilt)
	ErrPoolEmptyForOutcome  = errors.New(ErrMsgPoolEmptyForOutcome)
	ErrBuildAborted         = errors.New(ErrMsgBuildAborted)
	ErrStaleGeneration      = errors.New(ErrMsgStaleGeneration)
	ErrBuildSuperseded      = errors.New(ErrMsgBuildSuperseded)
	ErrInvariantViolation   = errors.New(ErrMsgInvariantViolation)
	ErrSimulationIncomplete = errors.New(ErrMsgSimulationIncomplete)
)

// IsConfigError reports whether err must be fixed by the caller before retrying.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrEmptySymbolCatalog) ||
		errors.Is(err, ErrNoOutcomesAvailable) ||
		errors.Is(err, ErrInvalidBoardDimensions) ||
		errors.Is(err, ErrInvalidMultiplierRange) ||
		errors.Is(err, ErrInvalidPaytable) ||
		errors.Is(err, ErrInvalidTargetCount) ||
		errors.Is(err, ErrInvalidBaseBet)
}
