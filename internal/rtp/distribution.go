package rtp

import (
	"context"
	"fmt"

	"github.com/osse101/slotforge/internal/board"
	"github.com/osse101/slotforge/internal/domain"
	"github.com/osse101/slotforge/internal/payout"
	"github.com/osse101/slotforge/internal/pool"
	"github.com/osse101/slotforge/internal/rng"
	"github.com/osse101/slotforge/internal/utils"
)

// Coverage classifies how often random boards land in an outcome's range.
type Coverage string

// Bin is one histogram bucket. Upper is exclusive except on the last bin.
type Bin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
	Share float64 `json:"share"`
}

// OutcomeCoverage is the share of random boards inside an outcome's range.
type OutcomeCoverage struct {
	OutcomeID string   `json:"outcomeId"`
	Hits      int      `json:"hits"`
	Share     float64  `json:"share"`
	Level     Coverage `json:"level"`
}

// DistributionReport summarises scores of independent random boards.
type DistributionReport struct {
	Samples   int               `json:"samples"`
	Min       float64           `json:"min"`
	Max       float64           `json:"max"`
	Mean      float64           `json:"mean"`
	StdDev    float64           `json:"stdDev"`
	HitRate   float64           `json:"hitRate"`
	Histogram []Bin             `json:"histogram"`
	Coverage  []OutcomeCoverage `json:"coverage"`
}

// Distribution evaluates n uniform random boards. ctx is checked between
// chunks of samples.
func Distribution(ctx context.Context, t pool.Tables, n, bins int, src rng.Source) (DistributionReport, error) {
	if t.Symbols == nil || t.Symbols.Len() == 0 {
		return DistributionReport{}, domain.ErrEmptySymbolCatalog
	}
	if !t.Board.Valid() {
		return DistributionReport{}, fmt.Errorf("%w: %dx%d", domain.ErrInvalidBoardDimensions, t.Board.Cols, t.Board.Rows)
	}
	if n < 1 {
		return DistributionReport{}, fmt.Errorf("%w: samples must be positive", domain.ErrInvalidTargetCount)
	}
	if bins <= 0 {
		bins = DefaultHistogramBins
	}

	scores := make([]float64, 0, n)
	scratch := domain.NewBoard(t.Board.Cols, t.Board.Rows)
	for len(scores) < n {
		if err := ctx.Err(); err != nil {
			return DistributionReport{}, err
		}
		end := min(len(scores)+DefaultSampleChunk, n)
		for len(scores) < end {
			board.SampleInto(scratch, t.Symbols, src)
			scores = append(scores, payout.Score(scratch, t.Paylines, t.Symbols))
		}
	}

	report := Summarize(scores, bins)
	if t.Outcomes != nil {
		report.Coverage = OutcomeCoverages(scores, t.Outcomes.Outcomes())
	}
	return report, nil
}

// Summarize computes moments and the histogram of scores.
func Summarize(scores []float64, bins int) DistributionReport {
	lo, hi := utils.MinMax(scores)
	mean := utils.Mean(scores)
	hits := 0
	for _, s := range scores {
		if s > 0 {
			hits++
		}
	}
	return DistributionReport{
		Samples:   len(scores),
		Min:       lo,
		Max:       hi,
		Mean:      mean,
		StdDev:    utils.StdDev(scores, mean),
		HitRate:   utils.Ratio(float64(hits), float64(len(scores))),
		Histogram: Histogram(scores, bins),
	}
}

// Histogram splits [min, max] into equal-width bins. The last bin includes
// max. When every score is equal there is a single bin.
func Histogram(scores []float64, bins int) []Bin {
	if len(scores) == 0 {
		return nil
	}
	lo, hi := utils.MinMax(scores)
	if lo == hi || bins <= 1 {
		return []Bin{{Lower: lo, Upper: hi, Count: len(scores), Share: 1}}
	}

	width := (hi - lo) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i].Lower = lo + float64(i)*width
		out[i].Upper = lo + float64(i+1)*width
	}
	out[bins-1].Upper = hi

	for _, s := range scores {
		i := int((s - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		out[i].Count++
	}
	for i := range out {
		out[i].Share = float64(out[i].Count) / float64(len(scores))
	}
	return out
}

// OutcomeCoverages reports, per outcome, the share of scores in its range.
func OutcomeCoverages(scores []float64, outcomes []domain.Outcome) []OutcomeCoverage {
	out := make([]OutcomeCoverage, len(outcomes))
	for i, o := range outcomes {
		hits := 0
		for _, s := range scores {
			if o.Range.Contains(s) {
				hits++
			}
		}
		share := utils.Ratio(float64(hits), float64(len(scores)))
		out[i] = OutcomeCoverage{OutcomeID: o.ID, Hits: hits, Share: share, Level: Classify(share)}
	}
	return out
}

// Classify maps a coverage share to ok (>= 5%), low (>= 1%) or none.
func Classify(share float64) Coverage {
	switch {
	case share >= CoverageOKShare:
		return CoverageOK
	case share >= CoverageLowShare:
		return CoverageLow
	default:
		return CoverageNone
	}
}
