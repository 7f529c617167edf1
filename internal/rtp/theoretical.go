// Package rtp derives return-to-player figures: closed form from outcome
// weights, Monte Carlo from random boards, and actual from pools or
// simulation statistics.
package rtp

import (
	"github.com/osse101/slotforge/internal/catalog"
	"github.com/osse101/slotforge/internal/domain"
)

// Theoretical computes the bucket-weighted RTP. Outcome ranges bound the
// whole board score, so the weighted midpoints are reported as line RTP and
// the closed form attributes nothing to scatter. The binomial scatter view of
// unconditioned boards is reported separately and never folded into totals.
func Theoretical(outcomes *catalog.OutcomeTable, symbols *catalog.SymbolCatalog, board domain.BoardConfig) domain.RTPBreakdown {
	var out domain.RTPBreakdown
	if outcomes == nil || outcomes.TotalWeight() <= 0 {
		return out
	}

	out.Buckets = make([]domain.BucketContribution, outcomes.Len())
	for i := 0; i < outcomes.Len(); i++ {
		o := outcomes.At(i)
		p := outcomes.Probability(i)
		c := domain.BucketContribution{
			OutcomeID:    o.ID,
			Probability:  p,
			AvgScore:     o.Range.Midpoint(),
			Contribution: p * o.Range.Midpoint() * 100,
		}
		out.Buckets[i] = c
		out.LineRTP += c.Contribution
	}

	if symbols != nil {
		scatter := ScatterOdds(symbols, board.Cells())
		out.TriggerProbability = scatter.TriggerProbability
		out.ExpectedCount = scatter.ExpectedCount
		out.EstimatedScatterRTP = scatter.ExpectedPayout * 100
	}
	out.TotalRTP = out.LineRTP + out.ScatterRTP
	out.AvgPerUnit = out.TotalRTP / 100
	return out
}

// ScatterEstimate is the binomial view of the driving scatter symbol.
type ScatterEstimate struct {
	SymbolID           string
	Probability        float64
	Cells              int
	MinCount           int
	TriggerProbability float64
	ExpectedCount      float64
	// ExpectedPayout is the mean scatter award per spin in bet multiples.
	ExpectedPayout float64
}

// ScatterOdds treats each of cells positions as an independent draw that
// lands the scatter with probability appearanceWeight / totalWeight.
func ScatterOdds(symbols *catalog.SymbolCatalog, cells int) ScatterEstimate {
	s, ok := symbols.Scatter()
	if !ok || cells <= 0 {
		return ScatterEstimate{}
	}

	p := 0.0
	if total := symbols.TotalWeight(); total > 0 {
		p = s.AppearanceWeight / total
	}
	est := ScatterEstimate{
		SymbolID:           s.ID,
		Probability:        p,
		Cells:              cells,
		MinCount:           s.Scatter.MinCount,
		TriggerProbability: BinomialAtLeast(cells, s.Scatter.MinCount, p),
		ExpectedCount:      float64(cells) * p,
	}
	for k, pk := range BinomialPMF(cells, p) {
		est.ExpectedPayout += pk * s.Scatter.PayoutFor(k)
	}
	return est
}
