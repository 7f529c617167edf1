package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/slotforge/internal/catalog"
	"github.com/osse101/slotforge/internal/domain"
	"github.com/osse101/slotforge/internal/logger"
	"github.com/osse101/slotforge/internal/pool"
	"github.com/osse101/slotforge/internal/rtp"
	"github.com/osse101/slotforge/internal/simulation"
)

// Request limits
const (
	MaxPaytableBytes   = 1 << 20
	DefaultSampleCount = 10_000
)

// Query parameters
const (
	QueryParamTarget  = "target"
	QueryParamOutcome = "outcome"
)

// SlotService is the engine surface the HTTP API drives.
type SlotService interface {
	Spin(ctx context.Context, baseBet decimal.Decimal) (domain.SpinResult, error)
	BuildPools(ctx context.Context, target int, progress func(pool.Progress)) (*pool.BuildResult, error)
	PoolStatuses() []domain.PoolStatus
	IsReady() bool
	LoadPaytable(pt *catalog.Paytable) error
	Theoretical() domain.RTPBreakdown
	Actual(ctx context.Context) (domain.RTPBreakdown, error)
	Compare(ctx context.Context) (rtp.Comparison, error)
	Distribution(ctx context.Context, n, bins int, seed uint64) (rtp.DistributionReport, error)
	Simulate(ctx context.Context, opts simulation.Options) (*simulation.Report, error)
}

// SlotsHandler handles slot engine HTTP requests
type SlotsHandler struct {
	service       SlotService
	loader        catalog.Loader
	defaultTarget int
}

// NewSlotsHandler creates a new slots handler
func NewSlotsHandler(service SlotService, loader catalog.Loader, defaultTarget int) *SlotsHandler {
	return &SlotsHandler{
		service:       service,
		loader:        loader,
		defaultTarget: defaultTarget,
	}
}

// SpinRequest represents a request to spin
type SpinRequest struct {
	BaseBet decimal.Decimal `json:"baseBet" validate:"gt=0"`
}

// HandleSpin settles one spin
// @Summary Settle a spin
// @Description Draws an outcome, picks a pooled board and pays it against the base bet
// @Tags spin
// @Accept json
// @Produce json
// @Param request body SpinRequest true "Spin request"
// @Success 200 {object} domain.SpinResult
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Pools not built"
// @Router /spin [post]
func (h *SlotsHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	var req SpinRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spin"); err != nil {
		return
	}

	result, err := h.service.Spin(r.Context(), req.BaseBet)
	if err != nil {
		respondServiceError(w, r, ErrMsgSpinFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// PoolsResponse reports pool state
type PoolsResponse struct {
	Ready    bool                `json:"ready"`
	Statuses []domain.PoolStatus `json:"statuses"`
}

// HandleGetPools returns per-outcome pool statuses, optionally narrowed to
// one outcome with ?outcome=
// @Summary Pool status
// @Tags pools
// @Produce json
// @Param outcome query string false "Outcome id"
// @Success 200 {object} PoolsResponse
// @Router /pools [get]
func (h *SlotsHandler) HandleGetPools(w http.ResponseWriter, r *http.Request) {
	statuses := h.service.PoolStatuses()
	if id := GetOptionalQueryParam(r, QueryParamOutcome, ""); id != "" {
		filtered := make([]domain.PoolStatus, 0, 1)
		for _, st := range statuses {
			if st.OutcomeID == id {
				filtered = append(filtered, st)
			}
		}
		statuses = filtered
	}
	respondJSON(w, http.StatusOK, PoolsResponse{
		Ready:    h.service.IsReady(),
		Statuses: statuses,
	})
}

// BuildPoolsRequest represents a pool build request. Zero target uses the
// configured default.
type BuildPoolsRequest struct {
	TargetCount int `json:"targetCount" validate:"gte=0,lte=1000000"`
}

// BuildPoolsResponse summarises a published build
type BuildPoolsResponse struct {
	Success  bool                 `json:"success"`
	Seed     uint64               `json:"seed"`
	Duration string               `json:"duration"`
	Boards   int                  `json:"boards"`
	Statuses []domain.PoolStatus  `json:"statuses"`
	Warnings []domain.PoolWarning `json:"warnings,omitempty"`
}

// HandleBuildPools rebuilds and publishes pools
// @Summary Build pools
// @Description Fills every outcome bucket by rejection sampling and publishes the result
// @Tags pools
// @Accept json
// @Produce json
// @Param request body BuildPoolsRequest false "Build request"
// @Param target query int false "Boards per outcome when the body omits one"
// @Success 200 {object} BuildPoolsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Configuration changed during build"
// @Failure 503 {object} ErrorResponse "Build aborted"
// @Router /pools/build [post]
func (h *SlotsHandler) HandleBuildPools(w http.ResponseWriter, r *http.Request) {
	var req BuildPoolsRequest
	if r.ContentLength != 0 {
		if err := DecodeAndValidateRequest(r, w, &req, "Build pools"); err != nil {
			return
		}
	}
	target := req.TargetCount
	if target == 0 {
		var ok bool
		if target, ok = GetOptionalIntQueryParam(r, w, QueryParamTarget, h.defaultTarget); !ok {
			return
		}
		if target < 0 || target > pool.MaxTargetCount {
			logger.FromContext(r.Context()).Warn(fmt.Sprintf(ErrMsgInvalidQueryParam, QueryParamTarget), "value", target)
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, QueryParamTarget))
			return
		}
	}

	res, err := h.service.BuildPools(r.Context(), target, nil)
	if err != nil {
		respondServiceError(w, r, ErrMsgBuildPoolsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, BuildPoolsResponse{
		Success:  res.Success,
		Seed:     res.Seed,
		Duration: res.Duration.Round(time.Millisecond).String(),
		Boards:   res.Set.TotalBoards(),
		Statuses: res.Statuses,
		Warnings: res.Warnings,
	})
}

// HandlePutPaytable replaces the whole paytable. Pools are cleared and must
// be rebuilt.
// @Summary Replace paytable
// @Tags paytable
// @Accept json
// @Produce json
// @Param request body object true "Paytable document"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} DataResponse "Paytable failed validation"
// @Router /paytable [put]
func (h *SlotsHandler) HandlePutPaytable(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxPaytableBytes))
	if err != nil {
		log.Warn(ErrMsgReadBodyFailed, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgReadBodyFailed)
		return
	}

	pt, err := h.loader.Parse(body)
	if err != nil {
		log.Warn(ErrMsgLoadPaytableFailed, "error", err)
		respondJSON(w, http.StatusUnprocessableEntity, DataResponse{
			Message: ErrMsgInvalidConfigError,
			Data:    err.Error(),
		})
		return
	}

	if err := h.service.LoadPaytable(pt); err != nil {
		respondServiceError(w, r, ErrMsgLoadPaytableFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPaytableLoaded})
}

// HandleTheoreticalRTP returns the closed-form RTP
// @Summary Theoretical RTP
// @Tags rtp
// @Produce json
// @Success 200 {object} domain.RTPBreakdown
// @Router /rtp/theoretical [get]
func (h *SlotsHandler) HandleTheoreticalRTP(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Theoretical())
}

// ActualRTPResponse pairs pooled RTP with its consistency check
type ActualRTPResponse struct {
	Actual     domain.RTPBreakdown `json:"actual"`
	Comparison rtp.Comparison      `json:"comparison"`
}

// HandleActualRTP returns the RTP implied by the published pools
// @Summary Actual RTP
// @Description RTP of the published pools compared against the closed form
// @Tags rtp
// @Produce json
// @Success 200 {object} ActualRTPResponse
// @Failure 503 {object} ErrorResponse "Pools not built"
// @Router /rtp/actual [get]
func (h *SlotsHandler) HandleActualRTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actual, err := h.service.Actual(ctx)
	if err != nil {
		respondServiceError(w, r, ErrMsgActualRTPFailed, err)
		return
	}
	cmp, err := h.service.Compare(ctx)
	if err != nil {
		respondServiceError(w, r, ErrMsgActualRTPFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, ActualRTPResponse{Actual: actual, Comparison: cmp})
}

// DistributionRequest asks for a Monte Carlo score distribution
type DistributionRequest struct {
	Samples int    `json:"samples" validate:"gte=0,lte=1000000"`
	Bins    int    `json:"bins" validate:"gte=0,lte=1000"`
	Seed    uint64 `json:"seed"`
}

// HandleDistribution samples random boards
// @Summary Score distribution
// @Tags rtp
// @Accept json
// @Produce json
// @Param request body DistributionRequest true "Sampling options"
// @Success 200 {object} rtp.DistributionReport
// @Failure 400 {object} ErrorResponse
// @Router /rtp/distribution [post]
func (h *SlotsHandler) HandleDistribution(w http.ResponseWriter, r *http.Request) {
	var req DistributionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Distribution"); err != nil {
		return
	}
	if req.Samples == 0 {
		req.Samples = DefaultSampleCount
	}

	report, err := h.service.Distribution(r.Context(), req.Samples, req.Bins, req.Seed)
	if err != nil {
		respondServiceError(w, r, ErrMsgDistributionFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// SimulateRequest configures a simulation run
type SimulateRequest struct {
	Spins       int             `json:"spins" validate:"gte=1,lte=10000000"`
	BaseBet     decimal.Decimal `json:"baseBet" validate:"gt=0"`
	KeepRecords bool            `json:"keepRecords"`
}

// HandleSimulate runs a simulation and returns its report
// @Summary Run simulation
// @Tags simulation
// @Accept json
// @Produce json
// @Param request body SimulateRequest true "Simulation options"
// @Success 200 {object} simulation.Report
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Pools not built"
// @Router /simulate [post]
func (h *SlotsHandler) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Simulate"); err != nil {
		return
	}

	report, err := h.service.Simulate(r.Context(), simulation.Options{
		Spins:       req.Spins,
		BaseBet:     req.BaseBet,
		KeepRecords: req.KeepRecords,
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgSimulationFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}
