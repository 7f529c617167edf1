// Package pool fills per-outcome board pools by bounded rejection sampling
// and publishes them as immutable generations.
package pool

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/slotforge/internal/board"
	"github.com/osse101/slotforge/internal/domain"
	"github.com/osse101/slotforge/internal/logger"
	"github.com/osse101/slotforge/internal/metrics"
	"github.com/osse101/slotforge/internal/payout"
	"github.com/osse101/slotforge/internal/rng"
	"github.com/osse101/slotforge/internal/worker"
)

// Progress is reported at chunk boundaries of each bucket.
type Progress struct {
	OutcomeID   string
	Bucket      int
	Generated   int
	Target      int
	Attempts    int
	MaxAttempts int
}

// Options tune a build.
type Options struct {
	// Seed makes the build reproducible. Zero draws a fresh seed.
	Seed uint64
	// ChunkSize is the number of attempts between cancellation checks.
	ChunkSize int
	// Progress, when set, is called serially from the building goroutines.
	Progress func(Progress)
}

// BuildResult is the outcome of one build. Set is ready to publish.
type BuildResult struct {
	Set      *Set
	Statuses []domain.PoolStatus
	Warnings []domain.PoolWarning
	Success  bool
	Seed     uint64
	Duration time.Duration
}

// Builder runs bucket fills on a worker pool. A nil pool fills buckets
// sequentially on the calling goroutine.
type Builder struct {
	workers *worker.Pool
}

// NewBuilder creates a Builder.
func NewBuilder(workers *worker.Pool) *Builder {
	return &Builder{workers: workers}
}

type bucketResult struct {
	boards   []domain.Board
	stats    []BoardStat
	attempts int
}

// Build samples target boards for every outcome in tables. Configuration
// errors are returned before any sampling. Shortfalls are reported as
// warnings, never as errors. Cancelling ctx returns ErrBuildAborted and no Set.
func (b *Builder) Build(ctx context.Context, tables Tables, target int, opts Options) (*BuildResult, error) {
	if err := validate(tables, target); err != nil {
		return nil, err
	}

	chunk := opts.ChunkSize
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rng.FreshSeed()
	}

	log := logger.FromContext(ctx)
	start := time.Now()
	n := tables.Outcomes.Len()
	log.Info(LogMsgBuildStarted,
		LogFieldGeneration, tables.Generation,
		LogFieldBuckets, n,
		LogFieldTarget, target,
		LogFieldSeed, seed)

	var progressMu sync.Mutex
	report := func(p Progress) {
		if opts.Progress == nil {
			return
		}
		progressMu.Lock()
		defer progressMu.Unlock()
		opts.Progress(p)
	}

	results := make([]bucketResult, n)
	jobs := make([]worker.Job, n)
	for i := 0; i < n; i++ {
		jobs[i] = worker.JobFunc(func(ctx context.Context) error {
			res, err := fillBucket(ctx, tables, i, target, chunk, rng.Derive(seed, i), report)
			results[i] = res
			return err
		})
	}

	if err := b.run(ctx, jobs); err != nil {
		if ctx.Err() != nil {
			log.Warn(LogMsgBuildAborted, LogFieldGeneration, tables.Generation, LogFieldError, err)
			return nil, fmt.Errorf("%w: %w", domain.ErrBuildAborted, ctx.Err())
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrInvariantViolation, err)
	}

	res := assemble(tables, target, seed, results)
	res.Duration = time.Since(start)
	if err := verify(res.Set); err != nil {
		return nil, err
	}

	for _, w := range res.Warnings {
		log.Warn(LogMsgBucketWarning,
			LogFieldOutcome, w.OutcomeID,
			LogFieldSeverity, w.Severity,
			LogFieldGenerated, w.Generated,
			LogFieldTarget, w.Target)
	}
	log.Info(LogMsgBuildComplete,
		LogFieldGeneration, tables.Generation,
		LogFieldBoards, res.Set.TotalBoards(),
		LogFieldSuccess, res.Success,
		LogFieldDuration, res.Duration)
	return res, nil
}

func (b *Builder) run(ctx context.Context, jobs []worker.Job) error {
	if b.workers != nil {
		return b.workers.Run(ctx, jobs...)
	}
	var errs []error
	for _, j := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := j.Process(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func validate(t Tables, target int) error {
	if t.Symbols == nil || t.Symbols.Len() == 0 {
		return domain.ErrEmptySymbolCatalog
	}
	if !t.Board.Valid() {
		return fmt.Errorf("%w: %dx%d", domain.ErrInvalidBoardDimensions, t.Board.Cols, t.Board.Rows)
	}
	if t.Outcomes == nil {
		return domain.ErrNoOutcomesAvailable
	}
	if err := t.Outcomes.Validate(); err != nil {
		return err
	}
	if target < 1 || target > MaxTargetCount {
		return fmt.Errorf("%w: %d not in [1, %d]", domain.ErrInvalidTargetCount, target, MaxTargetCount)
	}
	return nil
}

// fillBucket is the bounded rejection sampler for one outcome.
func fillBucket(ctx context.Context, t Tables, idx, target, chunk int, src rng.Source, report func(Progress)) (bucketResult, error) {
	o := t.Outcomes.At(idx)
	maxAttempts := target * AttemptMultiplier
	res := bucketResult{
		boards: make([]domain.Board, 0, target),
		stats:  make([]BoardStat, 0, target),
	}
	scratch := domain.NewBoard(t.Board.Cols, t.Board.Rows)

	for len(res.boards) < target && res.attempts < maxAttempts {
		end := min(res.attempts+chunk, maxAttempts)
		for len(res.boards) < target && res.attempts < end {
			board.SampleInto(scratch, t.Symbols, src)
			res.attempts++
			score := payout.Score(scratch, t.Paylines, t.Symbols)
			if !o.Range.Contains(score) {
				continue
			}
			accepted := board.Clone(scratch)
			win := payout.Evaluate(accepted, t.Paylines, t.Symbols)
			res.boards = append(res.boards, accepted)
			res.stats = append(res.stats, BoardStat{
				Score:         win.TotalScore,
				LineTotal:     win.LineTotal,
				ScatterPayout: win.ScatterPayout,
				ScatterCount:  win.ScatterCount,
			})
		}

		if err := ctx.Err(); err != nil {
			return res, err
		}
		report(Progress{
			OutcomeID:   o.ID,
			Bucket:      idx,
			Generated:   len(res.boards),
			Target:      target,
			Attempts:    res.attempts,
			MaxAttempts: maxAttempts,
		})
	}

	metrics.PoolAttemptsTotal.WithLabelValues(o.ID).Add(float64(res.attempts))
	return res, nil
}

// assemble packs bucket results into one arena and derives statuses.
func assemble(t Tables, target int, seed uint64, results []bucketResult) *BuildResult {
	total := 0
	for _, r := range results {
		total += len(r.boards)
	}

	set := &Set{
		id:       setSeq.Add(1),
		tables:   t,
		boards:   make([]domain.Board, 0, total),
		stats:    make([]BoardStat, 0, total),
		spans:    make([]span, len(results)),
		statuses: make([]domain.PoolStatus, len(results)),
		seed:     seed,
		builtAt:  time.Now(),
	}
	res := &BuildResult{Set: set, Success: true, Seed: seed}

	for i, r := range results {
		o := t.Outcomes.At(i)
		start := len(set.boards)
		set.boards = append(set.boards, r.boards...)
		set.stats = append(set.stats, r.stats...)
		set.spans[i] = span{start: start, end: len(set.boards)}

		status := domain.PoolStatus{
			OutcomeID: o.ID,
			Name:      o.Name,
			Generated: len(r.boards),
			Target:    target,
			Attempts:  r.attempts,
			IsFull:    len(r.boards) >= target,
		}
		if w, ok := shortfall(o, status); ok {
			status.Warning = w.Message
			res.Warnings = append(res.Warnings, w)
			res.Success = false
		}
		set.statuses[i] = status
	}

	res.Statuses = set.Statuses()
	return res
}

// verify re-checks the bucket invariant over the whole arena.
func verify(s *Set) error {
	for i := 0; i < s.NumBuckets(); i++ {
		o := s.tables.Outcomes.At(i)
		for _, st := range s.Bucket(i).Stats {
			if !o.Range.Contains(st.Score) {
				return fmt.Errorf("%w: "+ErrContextBucket+": score %g outside [%g, %g]",
					domain.ErrInvariantViolation, o.ID, st.Score, o.Range.Min, o.Range.Max)
			}
		}
	}
	return nil
}

func shortfall(o domain.Outcome, s domain.PoolStatus) (domain.PoolWarning, bool) {
	switch {
	case s.Generated == 0:
		return domain.PoolWarning{
			OutcomeID: o.ID,
			Severity:  domain.WarningHard,
			Generated: 0,
			Target:    s.Target,
			Message:   fmt.Sprintf(WarnMsgUnreachable, o.Range.Min, o.Range.Max, s.Attempts),
		}, true
	case s.Generated < s.Target:
		return domain.PoolWarning{
			OutcomeID: o.ID,
			Severity:  domain.WarningSoft,
			Generated: s.Generated,
			Target:    s.Target,
			Message:   fmt.Sprintf(WarnMsgUnderfilled, s.Generated, s.Target, o.Range.Min, o.Range.Max, s.Attempts),
		}, true
	}
	return domain.PoolWarning{}, false
}
