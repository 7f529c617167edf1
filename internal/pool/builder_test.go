package pool

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/slotforge/internal/catalog"
	"github.com/osse101/slotforge/internal/domain"
	"github.com/osse101/slotforge/internal/payout"
	"github.com/osse101/slotforge/internal/testing/leaktest"
	fx "github.com/osse101/slotforge/internal/testing/slotfixture"
	"github.com/osse101/slotforge/internal/worker"
)

const testSeed = 20240601

func tablesFrom(pt *catalog.Paytable, generation uint64) Tables {
	return Tables{
		Board:      pt.Board,
		Symbols:    pt.Symbols,
		Paylines:   pt.Paylines,
		Outcomes:   pt.Outcomes,
		Generation: generation,
	}
}

func startWorkers(t *testing.T) *worker.Pool {
	t.Helper()
	w := worker.NewPool(3, 8)
	w.Start()
	t.Cleanup(w.Stop)
	return w
}

func TestBuild_EveryBoardInsideItsBucket(t *testing.T) {
	tables := tablesFrom(fx.Classic(), 1)
	res, err := NewBuilder(startWorkers(t)).Build(context.Background(), tables, 50, Options{Seed: testSeed})
	require.NoError(t, err)

	set := res.Set
	require.Equal(t, tables.Outcomes.Len(), set.NumBuckets())
	for i := 0; i < set.NumBuckets(); i++ {
		o := tables.Outcomes.At(i)
		bucket := set.Bucket(i)
		assert.Equal(t, o.ID, bucket.OutcomeID)
		assert.LessOrEqual(t, len(bucket.Boards), 50)
		assert.Equal(t, 50, bucket.Capacity)
		for j, b := range bucket.Boards {
			win := payout.Evaluate(b, tables.Paylines, tables.Symbols)
			assert.True(t, o.Range.Contains(win.TotalScore), "%s board %d scored %v", o.ID, j, win.TotalScore)
			assert.Equal(t, win.TotalScore, bucket.Stats[j].Score)
			assert.Equal(t, win.ScatterCount, bucket.Stats[j].ScatterCount)
		}
	}
}

func TestBuild_TerminatesOnUnreachableBucket(t *testing.T) {
	const target = 5
	tables := tablesFrom(fx.Unreachable(), 1)

	res, err := NewBuilder(nil).Build(context.Background(), tables, target, Options{Seed: testSeed, ChunkSize: 64})
	require.NoError(t, err)

	assert.False(t, res.Success)
	require.Len(t, res.Statuses, 2)

	loss := res.Statuses[0]
	assert.True(t, loss.IsFull)
	assert.Empty(t, loss.Warning)

	jackpot := res.Statuses[1]
	assert.Equal(t, 0, jackpot.Generated)
	assert.False(t, jackpot.IsFull)
	assert.Equal(t, target*AttemptMultiplier, jackpot.Attempts)
	assert.NotEmpty(t, jackpot.Warning)

	require.Len(t, res.Warnings, 1)
	assert.Equal(t, domain.WarningHard, res.Warnings[0].Severity)
	assert.Equal(t, "JACKPOT", res.Warnings[0].OutcomeID)

	assert.Equal(t, 0, res.Set.Size(1))
	assert.True(t, res.Set.IsReady(), "other buckets stay usable")
}

func TestBuild_AttemptBudget(t *testing.T) {
	res, err := NewBuilder(nil).Build(context.Background(), tablesFrom(fx.Classic(), 1), 20, Options{Seed: testSeed})
	require.NoError(t, err)
	for _, s := range res.Statuses {
		assert.LessOrEqual(t, s.Attempts, 20*AttemptMultiplier, s.OutcomeID)
		assert.GreaterOrEqual(t, s.Attempts, s.Generated, s.OutcomeID)
	}
}

func TestBuild_SoftWarning(t *testing.T) {
	st := domain.PoolStatus{OutcomeID: "X", Generated: 3, Target: 10, Attempts: 1000}
	w, ok := shortfall(domain.Outcome{ID: "X", Range: domain.MultiplierRange{Min: 1, Max: 2}}, st)
	require.True(t, ok)
	assert.Equal(t, domain.WarningSoft, w.Severity)
	assert.Contains(t, w.Message, "widen the range")

	_, ok = shortfall(domain.Outcome{ID: "X"}, domain.PoolStatus{Generated: 10, Target: 10})
	assert.False(t, ok)
}

func TestBuild_SeededIsReproducible(t *testing.T) {
	tables := tablesFrom(fx.Consistency(), 1)
	workers := startWorkers(t)

	first, err := NewBuilder(workers).Build(context.Background(), tables, 30, Options{Seed: testSeed})
	require.NoError(t, err)
	second, err := NewBuilder(nil).Build(context.Background(), tables, 30, Options{Seed: testSeed})
	require.NoError(t, err)

	assert.Equal(t, first.Seed, second.Seed)
	assert.Equal(t, first.Statuses, second.Statuses)
	for i := 0; i < first.Set.NumBuckets(); i++ {
		assert.Equal(t, first.Set.Bucket(i).Boards, second.Set.Bucket(i).Boards)
	}
}

func TestBuild_AbortPublishesNothing(t *testing.T) {
	store := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	opts := Options{
		Seed:      testSeed,
		ChunkSize: 10,
		Progress: func(p Progress) {
			calls++
			cancel()
		},
	}

	res, err := NewBuilder(startWorkers(t)).Build(ctx, tablesFrom(fx.Classic(), 1), 500, opts)
	require.ErrorIs(t, err, domain.ErrBuildAborted)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
	assert.Positive(t, calls)
	assert.Nil(t, store.Load())
}

func TestBuild_ProgressReportsChunks(t *testing.T) {
	var seen []Progress
	opts := Options{Seed: testSeed, ChunkSize: 100, Progress: func(p Progress) { seen = append(seen, p) }}

	_, err := NewBuilder(nil).Build(context.Background(), tablesFrom(fx.Unreachable(), 1), 2, opts)
	require.NoError(t, err)

	var jackpot []Progress
	for _, p := range seen {
		if p.OutcomeID == "JACKPOT" {
			jackpot = append(jackpot, p)
		}
	}
	require.Len(t, jackpot, 2, "200 attempts in chunks of 100")
	assert.Equal(t, 100, jackpot[0].Attempts)
	assert.Equal(t, 200, jackpot[1].Attempts)
	assert.Equal(t, 200, jackpot[1].MaxAttempts)
}

func TestBuild_ConfigErrors(t *testing.T) {
	good := tablesFrom(fx.Classic(), 1)

	noSymbols := good
	noSymbols.Symbols = nil

	badBoard := good
	badBoard.Board = domain.BoardConfig{Cols: 2, Rows: 3}

	noOutcomes := good
	noOutcomes.Outcomes = nil

	tests := []struct {
		name    string
		tables  Tables
		target  int
		wantErr error
	}{
		{name: "empty catalog", tables: noSymbols, target: 10, wantErr: domain.ErrEmptySymbolCatalog},
		{name: "invalid board", tables: badBoard, target: 10, wantErr: domain.ErrInvalidBoardDimensions},
		{name: "no outcomes", tables: noOutcomes, target: 10, wantErr: domain.ErrNoOutcomesAvailable},
		{name: "zero target", tables: good, target: 0, wantErr: domain.ErrInvalidTargetCount},
		{name: "target over limit", tables: good, target: MaxTargetCount + 1, wantErr: domain.ErrInvalidTargetCount},
		{name: "target near max int", tables: good, target: math.MaxInt / 10, wantErr: domain.ErrInvalidTargetCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewBuilder(nil).Build(context.Background(), tt.tables, tt.target, Options{Seed: 1})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, res)
		})
	}
}

func TestBuild_NoGoroutineLeak(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		w := worker.NewPool(4, 4)
		w.Start()
		_, err := NewBuilder(w).Build(context.Background(), tablesFrom(fx.Consistency(), 1), 10, Options{})
		assert.NoError(t, err)
		w.Stop()
	})
}
