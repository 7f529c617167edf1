// Package simulation plays many spins against a Spinner and summarises the
// money flow.
package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/osse101/slotforge/internal/domain"
	"github.com/osse101/slotforge/internal/logger"
	"github.com/osse101/slotforge/internal/metrics"
	"github.com/osse101/slotforge/internal/spin"
)

// Progress is reported after each chunk of spins.
type Progress struct {
	Completed int
	Total     int
}

// Options configure a run.
type Options struct {
	Spins     int
	BaseBet   decimal.Decimal
	ChunkSize int
	// TriggerCount is the scatter count that counts as a trigger. Zero
	// counts any paying scatter.
	TriggerCount int
	KeepRecords  bool
	Progress     func(Progress)
}

// Summary aggregates a run.
type Summary struct {
	Spins               int             `json:"spins"`
	TotalBet            decimal.Decimal `json:"totalBet"`
	TotalWin            decimal.Decimal `json:"totalWin"`
	Profit              decimal.Decimal `json:"profit"`
	RTP                 float64         `json:"rtp"`
	HitRate             float64         `json:"hitRate"`
	AvgWin              decimal.Decimal `json:"avgWin"`
	MaxWin              decimal.Decimal `json:"maxWin"`
	LineWin             decimal.Decimal `json:"lineWin"`
	ScatterWin          decimal.Decimal `json:"scatterWin"`
	ScatterTriggers     int             `json:"scatterTriggers"`
	ScatterCount        int             `json:"scatterCount"`
	OutcomeDistribution map[string]int  `json:"outcomeDistribution"`
	// Breakdown is the RTP split derived from the totals above.
	Breakdown domain.RTPBreakdown `json:"breakdown"`
}

// Report is the result of a run. Records is empty unless KeepRecords is set.
type Report struct {
	RunID    string              `json:"runId"`
	Summary  Summary             `json:"summary"`
	Records  []domain.SpinRecord `json:"records,omitempty"`
	Aborted  bool                `json:"aborted"`
	Duration time.Duration       `json:"duration"`
}

// Run plays opts.Spins spins. ctx is checked between chunks; on cancellation
// the partial report is returned with Aborted set, together with the
// context error.
func Run(ctx context.Context, s spin.Spinner, opts Options) (*Report, error) {
	if opts.Spins < 1 || opts.Spins > MaxSpins {
		return nil, fmt.Errorf("%w: spins must be in [1, %d]", domain.ErrInvalidTargetCount, MaxSpins)
	}
	if !opts.BaseBet.IsPositive() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidBaseBet, opts.BaseBet)
	}
	chunk := opts.ChunkSize
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}

	log := logger.FromContext(ctx)
	report := &Report{RunID: uuid.NewString()}
	if opts.KeepRecords {
		report.Records = make([]domain.SpinRecord, 0, opts.Spins)
	}
	acc := newAccumulator()
	start := time.Now()
	log.Info(LogMsgRunStarted,
		LogFieldRunID, report.RunID,
		LogFieldSpins, opts.Spins,
		LogFieldBaseBet, opts.BaseBet.String())

	done := 0
	for done < opts.Spins {
		if err := ctx.Err(); err != nil {
			return abort(ctx, report, acc, start, err)
		}

		first := done
		end := min(done+chunk, opts.Spins)
		for ; done < end; done++ {
			res, err := s.Spin(ctx, opts.BaseBet)
			if err != nil {
				report.Summary = acc.summary()
				report.Duration = time.Since(start)
				return report, fmt.Errorf(ErrContextSpin+": %w", done, err)
			}
			rec := acc.add(res, opts.TriggerCount)
			rec.Index = done
			if opts.KeepRecords {
				report.Records = append(report.Records, rec)
			}
		}
		metrics.SimulationSpins.Add(float64(end - first))

		if opts.Progress != nil {
			opts.Progress(Progress{Completed: done, Total: opts.Spins})
		}
	}

	report.Summary = acc.summary()
	report.Duration = time.Since(start)
	log.Info(LogMsgRunComplete,
		LogFieldRunID, report.RunID,
		LogFieldDone, done,
		LogFieldRTP, report.Summary.RTP)
	return report, nil
}

func abort(ctx context.Context, report *Report, acc *accumulator, start time.Time, err error) (*Report, error) {
	report.Summary = acc.summary()
	report.Aborted = true
	report.Duration = time.Since(start)
	logger.FromContext(ctx).Warn(LogMsgRunAborted,
		LogFieldRunID, report.RunID,
		LogFieldDone, report.Summary.Spins,
		LogFieldError, err)
	return report, fmt.Errorf("%w: %w", domain.ErrSimulationIncomplete, err)
}
