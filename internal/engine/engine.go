// Package engine is the caller-owned entry point: it holds the active
// paytable snapshot and the pools built from it, and routes spins, RTP
// analysis and simulations through them.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/slotforge/internal/catalog"
	"github.com/osse101/slotforge/internal/domain"
	"github.com/osse101/slotforge/internal/logger"
	"github.com/osse101/slotforge/internal/metrics"
	"github.com/osse101/slotforge/internal/payout"
	"github.com/osse101/slotforge/internal/pool"
	"github.com/osse101/slotforge/internal/rng"
	"github.com/osse101/slotforge/internal/rtp"
	"github.com/osse101/slotforge/internal/simulation"
	"github.com/osse101/slotforge/internal/spin"
	"github.com/osse101/slotforge/internal/worker"
)

// Options configure an Engine.
type Options struct {
	// Seed makes builds and spins reproducible. Zero seeds from the OS.
	Seed      uint64
	Workers   int
	ChunkSize int
	CacheSize int
	// CacheTTL of zero disables expiry.
	CacheTTL  time.Duration
	Tolerance float64
}

// Engine owns one paytable and its pools. It is safe for concurrent use.
type Engine struct {
	opts     Options
	snapshot atomic.Pointer[Snapshot]
	store    *pool.Store
	cache    *payout.Cache
	workers  *worker.Pool
	builder  *pool.Builder
	executor *spin.Executor

	// mu serialises snapshot changes against pool publication.
	mu sync.Mutex
}

// New creates an Engine for pt. Pools start empty; call BuildPools.
func New(pt *catalog.Paytable, opts Options) (*Engine, error) {
	snap, err := snapshotFrom(pt, 1)
	if err != nil {
		return nil, err
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = rtp.DefaultTolerance
	}

	src := rng.New()
	if opts.Seed != 0 {
		src = rng.NewSeeded(opts.Seed)
	}

	e := &Engine{
		opts:    opts,
		store:   pool.NewStore(),
		cache:   payout.NewCache(opts.CacheSize, opts.CacheTTL),
		workers: worker.NewPool(opts.Workers, DefaultQueueSize),
	}
	e.workers.Start()
	e.builder = pool.NewBuilder(e.workers)
	e.executor = spin.NewExecutor(e.store, e.cache, src)
	e.install(snap, ReasonPaytable)
	return e, nil
}

// Close stops the build workers. Pools already published stay readable.
func (e *Engine) Close() {
	e.workers.Stop()
}

// Shutdown is Close bounded by ctx. In-flight builds keep running if ctx
// expires first.
func (e *Engine) Shutdown(ctx context.Context) error {
	return e.workers.Shutdown(ctx)
}

// Snapshot returns the active configuration.
func (e *Engine) Snapshot() *Snapshot {
	return e.snapshot.Load()
}

// install swaps in snap and drops pools built from the previous one.
// The caller holds mu, except during construction.
func (e *Engine) install(snap *Snapshot, reason string) {
	e.snapshot.Store(snap)
	e.store.Clear()
	e.cache.Clear()
	metrics.PoolBoards.Reset()
	metrics.ConfigGeneration.Set(float64(snap.Generation))
	logger.Info(LogMsgSnapshotInstalled, LogFieldGeneration, snap.Generation, LogFieldReason, reason)
}

func (e *Engine) update(reason string, fn func(*Snapshot)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.install(e.snapshot.Load().with(fn), reason)
}

// ReplaceSymbols installs a new symbol catalog and clears pools.
func (e *Engine) ReplaceSymbols(symbols []domain.Symbol) error {
	c, err := catalog.FromSymbols(symbols)
	if err != nil {
		return err
	}
	e.update(ReasonSymbols, func(s *Snapshot) { s.Symbols = c })
	return nil
}

// ReplacePaylines installs new paylines and clears pools. An empty set
// restores the default lines for the current board.
func (e *Engine) ReplacePaylines(patterns []domain.PaylinePattern) error {
	var (
		t   *catalog.PaylineTable
		err error
	)
	if len(patterns) == 0 {
		b := e.Snapshot().Board
		t, err = catalog.DefaultPaylines(b.Cols, b.Rows, catalog.DefaultLineCount)
	} else {
		t, err = catalog.NewPaylineTable(patterns)
	}
	if err != nil {
		return err
	}
	e.update(ReasonPaylines, func(s *Snapshot) { s.Paylines = t })
	return nil
}

// ReplaceOutcomes installs a new outcome table and clears pools.
func (e *Engine) ReplaceOutcomes(outcomes []domain.Outcome) error {
	t, err := catalog.NewOutcomeTable(outcomes)
	if err != nil {
		return err
	}
	e.update(ReasonOutcomes, func(s *Snapshot) { s.Outcomes = t })
	return nil
}

// SetBoard changes the board shape. Paylines are regenerated for the new
// shape keeping the current line count.
func (e *Engine) SetBoard(cfg domain.BoardConfig) error {
	if !cfg.Valid() {
		return fmt.Errorf("%w: %dx%d", domain.ErrInvalidBoardDimensions, cfg.Cols, cfg.Rows)
	}
	lines, err := catalog.DefaultPaylines(cfg.Cols, cfg.Rows, e.Snapshot().Paylines.Len())
	if err != nil {
		return err
	}
	e.update(ReasonBoard, func(s *Snapshot) {
		s.Board = cfg
		s.Paylines = lines
	})
	return nil
}

// LoadPaytable replaces the whole configuration at once.
func (e *Engine) LoadPaytable(pt *catalog.Paytable) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	snap, err := snapshotFrom(pt, e.snapshot.Load().Generation+1)
	if err != nil {
		return err
	}
	e.install(snap, ReasonPaytable)
	return nil
}

func snapshotFrom(pt *catalog.Paytable, generation uint64) (*Snapshot, error) {
	if pt == nil || pt.Symbols == nil || pt.Symbols.Len() == 0 {
		return nil, domain.ErrEmptySymbolCatalog
	}
	if !pt.Board.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", domain.ErrInvalidBoardDimensions, pt.Board.Cols, pt.Board.Rows)
	}
	if pt.Outcomes == nil {
		return nil, domain.ErrNoOutcomesAvailable
	}
	if err := pt.Outcomes.Validate(); err != nil {
		return nil, err
	}
	lines := pt.Paylines
	if lines == nil {
		var err error
		if lines, err = catalog.DefaultPaylines(pt.Board.Cols, pt.Board.Rows, catalog.DefaultLineCount); err != nil {
			return nil, err
		}
	}
	return &Snapshot{
		Board:      pt.Board,
		Symbols:    pt.Symbols,
		Paylines:   lines,
		Outcomes:   pt.Outcomes,
		Generation: generation,
	}, nil
}

// BuildPools fills target boards per outcome from the active snapshot and
// publishes them. If the snapshot changes before the build finishes, the
// result is discarded and ErrStaleGeneration returned. If a concurrent build
// of the same snapshot publishes first, ErrBuildSuperseded is returned and
// its pools stay live.
func (e *Engine) BuildPools(ctx context.Context, target int, progress func(pool.Progress)) (*pool.BuildResult, error) {
	snap := e.Snapshot()
	prev := e.store.Load()
	log := logger.FromContext(ctx)

	res, err := e.builder.Build(ctx, snap.Tables(), target, pool.Options{
		Seed:      e.opts.Seed,
		ChunkSize: e.opts.ChunkSize,
		Progress:  progress,
	})
	if err != nil {
		result := metrics.ResultError
		if errors.Is(err, domain.ErrBuildAborted) {
			result = metrics.ResultAborted
		}
		metrics.PoolBuildsTotal.WithLabelValues(result).Inc()
		log.Warn(LogMsgBuildFailed, LogFieldGeneration, snap.Generation, LogFieldError, err)
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.snapshot.Load() != snap {
		metrics.PoolBuildsTotal.WithLabelValues(metrics.ResultStale).Inc()
		log.Warn(LogMsgBuildStale, LogFieldGeneration, snap.Generation)
		return nil, fmt.Errorf("%w: built generation %d", domain.ErrStaleGeneration, snap.Generation)
	}
	// Snapshot changes clear the store under mu, so a failed swap here means
	// another build of this snapshot won.
	if !e.store.PublishIf(prev, res.Set) {
		metrics.PoolBuildsTotal.WithLabelValues(metrics.ResultSuperseded).Inc()
		log.Warn(LogMsgBuildSuperseded, LogFieldGeneration, snap.Generation)
		return nil, fmt.Errorf("%w: generation %d", domain.ErrBuildSuperseded, snap.Generation)
	}

	result := metrics.ResultSuccess
	if !res.Success {
		result = metrics.ResultWarning
	}
	metrics.PoolBuildsTotal.WithLabelValues(result).Inc()
	metrics.PoolBuildDuration.Observe(res.Duration.Seconds())
	metrics.PoolBoards.Reset()
	for _, st := range res.Statuses {
		metrics.PoolBoards.WithLabelValues(st.OutcomeID).Set(float64(st.Generated))
	}
	log.Info(LogMsgPoolsPublished,
		LogFieldGeneration, snap.Generation,
		LogFieldBoards, res.Set.TotalBoards(),
		LogFieldSuccess, res.Success)
	return res, nil
}

// IsReady reports whether spins can be served.
func (e *Engine) IsReady() bool {
	return e.store.IsReady()
}

// PoolStatuses reports the published pools, or empty statuses for every
// outcome of the active snapshot when nothing is published.
func (e *Engine) PoolStatuses() []domain.PoolStatus {
	if set := e.store.Load(); set != nil {
		return set.Statuses()
	}
	outcomes := e.Snapshot().Outcomes.Outcomes()
	out := make([]domain.PoolStatus, len(outcomes))
	for i, o := range outcomes {
		out[i] = domain.PoolStatus{OutcomeID: o.ID, Name: o.Name}
	}
	return out
}

// Spin settles one spin.
func (e *Engine) Spin(ctx context.Context, baseBet decimal.Decimal) (domain.SpinResult, error) {
	return e.executor.Spin(ctx, baseBet)
}

// Theoretical is the closed-form RTP of the active snapshot.
func (e *Engine) Theoretical() domain.RTPBreakdown {
	s := e.Snapshot()
	return rtp.Theoretical(s.Outcomes, s.Symbols, s.Board)
}

// Actual is the RTP implied by the published pools.
func (e *Engine) Actual(ctx context.Context) (domain.RTPBreakdown, error) {
	return rtp.FromPools(ctx, e.store.Load())
}

// Compare checks the published pools against the closed form of the
// snapshot they were built from.
func (e *Engine) Compare(ctx context.Context) (rtp.Comparison, error) {
	set := e.store.Load()
	actual, err := rtp.FromPools(ctx, set)
	if err != nil {
		return rtp.Comparison{}, err
	}
	t := set.Tables()
	return rtp.Compare(ctx, rtp.Theoretical(t.Outcomes, t.Symbols, t.Board), actual, e.opts.Tolerance), nil
}

// Distribution samples n random boards from the active snapshot. A zero
// seed draws a fresh one.
func (e *Engine) Distribution(ctx context.Context, n, bins int, seed uint64) (rtp.DistributionReport, error) {
	src := rng.New()
	if seed != 0 {
		src = rng.NewSeeded(seed)
	}
	return rtp.Distribution(ctx, e.Snapshot().Tables(), n, bins, src)
}

// Simulate plays spins through the executor. When opts.TriggerCount is
// zero the scatter's minimum count is used.
func (e *Engine) Simulate(ctx context.Context, opts simulation.Options) (*simulation.Report, error) {
	if !e.IsReady() {
		return nil, domain.ErrPoolsNotBuilt
	}
	if opts.TriggerCount == 0 {
		if s, ok := e.Snapshot().Symbols.Scatter(); ok {
			opts.TriggerCount = s.Scatter.MinCount
		}
	}
	return simulation.Run(ctx, e.executor, opts)
}
