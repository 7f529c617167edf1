package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/slotforge/internal/domain"
	"github.com/osse101/slotforge/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the mapped status and message.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err, "status", status)
	} else {
		log.Warn(opName, "error", err, "status", status)
	}
	respondJSON(w, status, ErrorResponse{Error: msg})
}

// User-facing error messages for engine errors
const (
	ErrMsgGenericServerError        = "Something went wrong"
	ErrMsgUnknownError              = "Unknown error"
	ErrMsgInvalidConfigError        = "Invalid paytable configuration"
	ErrMsgInvalidBaseBetError       = "Base bet must be positive"
	ErrMsgInvalidTargetError        = "Count is out of range"
	ErrMsgPoolsNotBuiltError        = "Pools are not built yet. Build pools and try again."
	ErrMsgPoolEmptyError            = "The drawn outcome has no boards. Rebuild pools or adjust the paytable."
	ErrMsgStaleGenerationError      = "The paytable changed during the build. Build again."
	ErrMsgBuildSupersededError      = "Another build published pools first. They are current."
	ErrMsgBuildAbortedError         = "The build was cancelled"
	ErrMsgSimulationIncompleteError = "The simulation stopped before completion"
	ErrMsgRequestCancelledError     = "The request was cancelled or timed out"
	ErrMsgInvariantViolationErr     = "Internal consistency check failed"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidBaseBet):
		return http.StatusBadRequest, ErrMsgInvalidBaseBetError
	case errors.Is(err, domain.ErrInvalidTargetCount):
		return http.StatusBadRequest, ErrMsgInvalidTargetError
	case domain.IsConfigError(err):
		return http.StatusUnprocessableEntity, ErrMsgInvalidConfigError
	case errors.Is(err, domain.ErrPoolsNotBuilt):
		return http.StatusServiceUnavailable, ErrMsgPoolsNotBuiltError
	case errors.Is(err, domain.ErrPoolEmptyForOutcome):
		return http.StatusServiceUnavailable, ErrMsgPoolEmptyError
	case errors.Is(err, domain.ErrStaleGeneration):
		return http.StatusConflict, ErrMsgStaleGenerationError
	case errors.Is(err, domain.ErrBuildSuperseded):
		return http.StatusConflict, ErrMsgBuildSupersededError
	case errors.Is(err, domain.ErrBuildAborted):
		return http.StatusServiceUnavailable, ErrMsgBuildAbortedError
	case errors.Is(err, domain.ErrSimulationIncomplete):
		return http.StatusServiceUnavailable, ErrMsgSimulationIncompleteError
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrMsgRequestCancelledError
	case errors.Is(err, domain.ErrInvariantViolation):
		return http.StatusInternalServerError, ErrMsgInvariantViolationErr
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
