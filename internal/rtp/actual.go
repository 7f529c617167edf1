package rtp

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/osse101/slotforge/internal/domain"
	"github.com/osse101/slotforge/internal/logger"
	"github.com/osse101/slotforge/internal/pool"
	"github.com/osse101/slotforge/internal/utils"
)

// FromPools weights each bucket's mean pooled score by its draw probability.
// Buckets without boards contribute nothing and are flagged Missing.
func FromPools(ctx context.Context, set *pool.Set) (domain.RTPBreakdown, error) {
	if set == nil {
		return domain.RTPBreakdown{}, domain.ErrPoolsNotBuilt
	}

	tables := set.Tables()
	minCount := 0
	if s, ok := tables.Symbols.Scatter(); ok {
		minCount = s.Scatter.MinCount
	}

	var out domain.RTPBreakdown
	out.Buckets = make([]domain.BucketContribution, set.NumBuckets())
	for i := 0; i < set.NumBuckets(); i++ {
		o := tables.Outcomes.At(i)
		p := tables.Outcomes.Probability(i)
		stats := set.Bucket(i).Stats

		c := domain.BucketContribution{OutcomeID: o.ID, Probability: p, Boards: len(stats)}
		if len(stats) == 0 {
			c.Missing = true
			out.Buckets[i] = c
			if p > 0 {
				logger.FromContext(ctx).Warn(LogMsgEmptyBucket, LogFieldOutcome, o.ID)
			}
			continue
		}

		var score, line, scatter, count, triggers float64
		for _, st := range stats {
			score += st.Score
			line += st.LineTotal
			scatter += st.ScatterPayout
			count += float64(st.ScatterCount)
			if minCount > 0 && st.ScatterCount >= minCount {
				triggers++
			}
		}
		n := float64(len(stats))
		c.AvgScore = score / n
		c.Contribution = p * c.AvgScore * 100
		out.Buckets[i] = c

		out.TotalRTP += c.Contribution
		out.LineRTP += p * line / n * 100
		out.ScatterRTP += p * scatter / n * 100
		out.ExpectedCount += p * count / n
		out.TriggerProbability += p * triggers / n
	}
	out.AvgPerUnit = out.TotalRTP / 100
	return out, nil
}

// SpinStats are the running totals a simulation accumulates.
type SpinStats struct {
	Spins           int             `json:"spins"`
	TotalBet        decimal.Decimal `json:"totalBet"`
	TotalWin        decimal.Decimal `json:"totalWin"`
	LineWin         decimal.Decimal `json:"lineWin"`
	ScatterWin      decimal.Decimal `json:"scatterWin"`
	ScatterTriggers int             `json:"scatterTriggers"`
	ScatterCount    int             `json:"scatterCount"`
}

// FromStats derives RTP from accumulated spin totals.
func FromStats(s SpinStats) domain.RTPBreakdown {
	if s.Spins == 0 || !s.TotalBet.IsPositive() {
		return domain.RTPBreakdown{}
	}
	pct := func(d decimal.Decimal) float64 {
		return d.Div(s.TotalBet).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}
	return domain.RTPBreakdown{
		LineRTP:            pct(s.LineWin),
		ScatterRTP:         pct(s.ScatterWin),
		TotalRTP:           pct(s.TotalWin),
		TriggerProbability: utils.Ratio(float64(s.ScatterTriggers), float64(s.Spins)),
		ExpectedCount:      utils.Ratio(float64(s.ScatterCount), float64(s.Spins)),
		AvgPerUnit:         s.TotalWin.Div(s.TotalBet).InexactFloat64(),
	}
}
