// Package spin settles a single spin against the published pools.
package spin

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/osse101/slotforge/internal/domain"
	"github.com/osse101/slotforge/internal/logger"
	"github.com/osse101/slotforge/internal/metrics"
	"github.com/osse101/slotforge/internal/payout"
	"github.com/osse101/slotforge/internal/pool"
	"github.com/osse101/slotforge/internal/rng"
)

// Log messages
const (
	LogMsgSpinSettled = "Spin settled"
)

// Log field keys
const (
	LogFieldSpinID  = "spin_id"
	LogFieldOutcome = "outcome"
	LogFieldScore   = "score"
	LogFieldBoard   = "board_index"
)

// Spinner settles spins. Executor is the production implementation.
type Spinner interface {
	Spin(ctx context.Context, baseBet decimal.Decimal) (domain.SpinResult, error)
}

// Executor draws an outcome, then a board from that outcome's pool, and
// evaluates it with the tables the pool was built from. The RNG is shared
// and guarded, so an Executor is safe for concurrent use.
type Executor struct {
	store *pool.Store
	cache *payout.Cache

	mu  sync.Mutex
	src rng.Source
}

// NewExecutor creates an Executor. cache may be nil.
func NewExecutor(store *pool.Store, cache *payout.Cache, src rng.Source) *Executor {
	if src == nil {
		src = rng.New()
	}
	return &Executor{store: store, cache: cache, src: src}
}

// IsReady reports whether at least one pool can serve a spin.
func (e *Executor) IsReady() bool {
	return e.store.IsReady()
}

// Spin settles one spin for baseBet.
func (e *Executor) Spin(ctx context.Context, baseBet decimal.Decimal) (domain.SpinResult, error) {
	if !baseBet.IsPositive() {
		return domain.SpinResult{}, fmt.Errorf("%w: %s", domain.ErrInvalidBaseBet, baseBet)
	}

	set := e.store.Load()
	if !set.IsReady() {
		return domain.SpinResult{}, domain.ErrPoolsNotBuilt
	}
	tables := set.Tables()

	outcome, bucket, index, err := e.draw(set)
	if err != nil {
		return domain.SpinResult{}, err
	}

	b, _ := set.Board(bucket, index)
	win := e.evaluate(set, bucket, index)

	result := domain.SpinResult{
		SpinID:      uuid.NewString(),
		OutcomeID:   outcome.ID,
		OutcomeName: outcome.Name,
		BoardIndex:  index,
		Board:       b,
		Win:         win,
		BaseBet:     baseBet,
		CashWin:     decimal.NewFromFloat(win.TotalScore).Mul(baseBet),
		Generation:  tables.Generation,
	}

	metrics.SpinsTotal.WithLabelValues(outcome.ID).Inc()
	metrics.SpinScore.Observe(win.TotalScore)
	logger.FromContext(ctx).Debug(LogMsgSpinSettled,
		LogFieldSpinID, result.SpinID,
		LogFieldOutcome, outcome.ID,
		LogFieldBoard, index,
		LogFieldScore, win.TotalScore)
	return result, nil
}

// draw performs the only two random choices of a spin under the RNG lock.
func (e *Executor) draw(set *pool.Set) (domain.Outcome, int, int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	outcome, bucket, err := set.Tables().Outcomes.DrawWeighted(e.src)
	if err != nil {
		return domain.Outcome{}, 0, 0, err
	}
	size := set.Size(bucket)
	if size == 0 {
		return domain.Outcome{}, 0, 0, fmt.Errorf("%w: %s", domain.ErrPoolEmptyForOutcome, outcome.ID)
	}
	return outcome, bucket, e.src.IntN(size), nil
}

func (e *Executor) evaluate(set *pool.Set, bucket, index int) domain.WinBreakdown {
	gen := set.ID()
	if e.cache != nil {
		if win, ok := e.cache.Get(gen, bucket, index); ok {
			metrics.EvalCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
			return win
		}
		metrics.EvalCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()
	}

	tables := set.Tables()
	b, _ := set.Board(bucket, index)
	win := payout.Evaluate(b, tables.Paylines, tables.Symbols)
	if e.cache != nil {
		e.cache.Set(gen, bucket, index, win)
	}
	return win
}
