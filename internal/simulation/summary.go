package simulation

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/slotforge/internal/domain"
	"github.com/osse101/slotforge/internal/rtp"
)

type accumulator struct {
	stats      rtp.SpinStats
	hits       int
	maxWin     decimal.Decimal
	cumulative decimal.Decimal
	outcomes   map[string]int
}

func newAccumulator() *accumulator {
	return &accumulator{outcomes: make(map[string]int)}
}

// add folds one spin into the totals and returns its record.
func (a *accumulator) add(res domain.SpinResult, triggerCount int) domain.SpinRecord {
	bet := res.BaseBet
	win := res.CashWin
	profit := win.Sub(bet)
	a.cumulative = a.cumulative.Add(profit)

	a.stats.Spins++
	a.stats.TotalBet = a.stats.TotalBet.Add(bet)
	a.stats.TotalWin = a.stats.TotalWin.Add(win)
	a.stats.LineWin = a.stats.LineWin.Add(decimal.NewFromFloat(res.Win.LineTotal).Mul(bet))
	a.stats.ScatterWin = a.stats.ScatterWin.Add(decimal.NewFromFloat(res.Win.ScatterPayout).Mul(bet))
	a.stats.ScatterCount += res.Win.ScatterCount
	if triggered(res.Win, triggerCount) {
		a.stats.ScatterTriggers++
	}
	if win.IsPositive() {
		a.hits++
	}
	if win.GreaterThan(a.maxWin) {
		a.maxWin = win
	}
	a.outcomes[res.OutcomeID]++

	return domain.SpinRecord{
		OutcomeID:        res.OutcomeID,
		Win:              win,
		Bet:              bet,
		Profit:           profit,
		CumulativeProfit: a.cumulative,
	}
}

func triggered(w domain.WinBreakdown, triggerCount int) bool {
	if triggerCount > 0 {
		return w.ScatterCount >= triggerCount
	}
	return w.ScatterPayout > 0
}

func (a *accumulator) summary() Summary {
	s := Summary{
		Spins:               a.stats.Spins,
		TotalBet:            a.stats.TotalBet,
		TotalWin:            a.stats.TotalWin,
		Profit:              a.stats.TotalWin.Sub(a.stats.TotalBet),
		MaxWin:              a.maxWin,
		LineWin:             a.stats.LineWin,
		ScatterWin:          a.stats.ScatterWin,
		ScatterTriggers:     a.stats.ScatterTriggers,
		ScatterCount:        a.stats.ScatterCount,
		OutcomeDistribution: make(map[string]int, len(a.outcomes)),
		Breakdown:           rtp.FromStats(a.stats),
	}
	for id, n := range a.outcomes {
		s.OutcomeDistribution[id] = n
	}
	s.RTP = s.Breakdown.TotalRTP
	if a.stats.Spins > 0 {
		s.HitRate = float64(a.hits) / float64(a.stats.Spins)
	}
	if a.hits > 0 {
		s.AvgWin = a.stats.TotalWin.Div(decimal.NewFromInt(int64(a.hits)))
	}
	return s
}

// Stats returns the raw totals behind the summary.
func (s Summary) Stats() rtp.SpinStats {
	return rtp.SpinStats{
		Spins:           s.Spins,
		TotalBet:        s.TotalBet,
		TotalWin:        s.TotalWin,
		LineWin:         s.LineWin,
		ScatterWin:      s.ScatterWin,
		ScatterTriggers: s.ScatterTriggers,
		ScatterCount:    s.ScatterCount,
	}
}

// Format renders the summary as human readable lines using the number
// conventions of tag.
func (s Summary) Format(tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("spins: %d\n", s.Spins) +
		p.Sprintf("total bet: %s\n", s.TotalBet.StringFixed(2)) +
		p.Sprintf("total win: %s\n", s.TotalWin.StringFixed(2)) +
		p.Sprintf("profit: %s\n", s.Profit.StringFixed(2)) +
		p.Sprintf("rtp: %.3f%%\n", s.RTP) +
		p.Sprintf("hit rate: %.2f%%\n", s.HitRate*100) +
		p.Sprintf("max win: %s\n", s.MaxWin.StringFixed(2)) +
		p.Sprintf("scatter triggers: %d\n", s.ScatterTriggers)
}
