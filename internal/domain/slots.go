package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SymbolKind tags a symbol's scoring behaviour.
type SymbolKind string

const (
	SymbolKindNormal  SymbolKind = "normal"
	SymbolKindWild    SymbolKind = "wild"
	SymbolKindScatter SymbolKind = "scatter"
)

// Minimum run length that can pay on a line, and the highest tier defined.
const (
	MinLineMatch = 3
	MaxLineMatch = 5
)

// PayoutTiers holds line multipliers for runs of 3, 4 and 5.
type PayoutTiers struct {
	Match3 float64 `json:"match3" validate:"gte=0"`
	Match4 float64 `json:"match4" validate:"gte=0"`
	Match5 float64 `json:"match5" validate:"gte=0"`
}

// For returns the multiplier for a run. Runs longer than 5 reuse the 5 tier.
func (p PayoutTiers) For(run int) float64 {
	switch {
	case run < MinLineMatch:
		return 0
	case run == 3:
		return p.Match3
	case run == 4:
		return p.Match4
	default:
		return p.Match5
	}
}

// WildRule describes what a wild may stand in for.
type WildRule struct {
	CanReplaceNormal  bool `json:"canReplaceNormal"`
	CanReplaceSpecial bool `json:"canReplaceSpecial"`
}

// Substitutes reports whether the wild may count toward a run of target.
func (w WildRule) Substitutes(target Symbol) bool {
	if target.Kind == SymbolKindNormal {
		return w.CanReplaceNormal
	}
	return w.CanReplaceSpecial
}

// ScatterRule pays by total count on the board.
type ScatterRule struct {
	MinCount      int             `json:"minCount"`
	PayoutByCount map[int]float64 `json:"payoutByCount"`
}

// PayoutFor returns the scatter multiplier for an exact count.
// Counts below MinCount, or without a configured tier, pay nothing.
func (s ScatterRule) PayoutFor(count int) float64 {
	if count < s.MinCount {
		return 0
	}
	return s.PayoutByCount[count]
}

// Symbol is a resolved catalog entry. Wild is set only for wild symbols and
// Scatter only for scatter symbols.
type Symbol struct {
	ID               string       `json:"id"`
	Kind             SymbolKind   `json:"kind"`
	Payouts          PayoutTiers  `json:"payouts"`
	AppearanceWeight float64      `json:"appearanceWeight"`
	Wild             *WildRule    `json:"wild,omitempty"`
	Scatter          *ScatterRule `json:"scatter,omitempty"`
}

func (s Symbol) IsWild() bool    { return s.Kind == SymbolKindWild }
func (s Symbol) IsScatter() bool { return s.Kind == SymbolKindScatter }

// Cell addresses a board position.
type Cell struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// PaylinePattern is an ordered left-to-right cell sequence.
type PaylinePattern struct {
	ID    int    `json:"id"`
	Cells []Cell `json:"cells"`
}

// MultiplierRange is an inclusive score interval.
type MultiplierRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether score lies in [Min, Max].
func (r MultiplierRange) Contains(score float64) bool {
	return score >= r.Min && score <= r.Max
}

// Midpoint is the range centre used by theoretical RTP.
func (r MultiplierRange) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

// Valid reports whether the range is non-negative and ordered.
func (r MultiplierRange) Valid() bool {
	return r.Min >= 0 && r.Max >= 0 && r.Min <= r.Max
}

// Outcome is a weighted multiplier bucket.
type Outcome struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Range  MultiplierRange `json:"multiplierRange"`
	Weight float64         `json:"weight"`
}

// BoardConfig is the board shape.
type BoardConfig struct {
	Cols int `json:"cols" validate:"gte=3,lte=10"`
	Rows int `json:"rows" validate:"gte=1,lte=10"`
}

// Valid reports whether the shape can carry a payable line.
func (c BoardConfig) Valid() bool {
	return c.Cols >= MinLineMatch && c.Rows >= 1
}

// Cells is the number of positions on the board.
func (c BoardConfig) Cells() int {
	return c.Cols * c.Rows
}

// Board is a grid of symbol ids indexed Grid[col][row].
type Board struct {
	Grid [][]string `json:"grid"`
}

// NewBoard allocates an empty cols x rows board.
func NewBoard(cols, rows int) Board {
	grid := make([][]string, cols)
	for c := range grid {
		grid[c] = make([]string, rows)
	}
	return Board{Grid: grid}
}

func (b Board) Cols() int { return len(b.Grid) }

func (b Board) Rows() int {
	if len(b.Grid) == 0 {
		return 0
	}
	return len(b.Grid[0])
}

// InBounds reports whether c addresses a board position.
func (b Board) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < len(b.Grid) && c.Row >= 0 && c.Row < len(b.Grid[c.Col])
}

// At returns the symbol id at c. The caller checks bounds.
func (b Board) At(c Cell) string {
	return b.Grid[c.Col][c.Row]
}

// Count returns how many cells hold id.
func (b Board) Count(id string) int {
	n := 0
	for _, col := range b.Grid {
		for _, s := range col {
			if s == id {
				n++
			}
		}
	}
	return n
}

// Key is a stable textual form used for logging and cache diagnostics.
func (b Board) Key() string {
	cols := make([]string, len(b.Grid))
	for i, col := range b.Grid {
		cols[i] = strings.Join(col, ",")
	}
	return strings.Join(cols, "|")
}

// LineWin is one paying payline.
type LineWin struct {
	LineID     int     `json:"lineId"`
	Symbol     string  `json:"symbol"`
	MatchCount int     `json:"matchCount"`
	Payout     float64 `json:"payout"`
	Cells      []Cell  `json:"cells"`
}

// WinBreakdown is the full evaluation of one board.
type WinBreakdown struct {
	LineWins      []LineWin `json:"lineWins"`
	BestLine      *LineWin  `json:"bestLine,omitempty"`
	ScatterSymbol string    `json:"scatterSymbol,omitempty"`
	ScatterCount  int       `json:"scatterCount"`
	ScatterPayout float64   `json:"scatterPayout"`
	LineTotal     float64   `json:"lineTotal"`
	TotalScore    float64   `json:"totalScore"`
}

// IsWin reports whether the board pays anything.
func (w WinBreakdown) IsWin() bool {
	return w.TotalScore > 0
}

// PoolStatus reports how a bucket's rejection sampling went.
type PoolStatus struct {
	OutcomeID string `json:"outcomeId"`
	Name      string `json:"name"`
	Generated int    `json:"generated"`
	Target    int    `json:"target"`
	Attempts  int    `json:"attempts"`
	IsFull    bool   `json:"isFull"`
	Warning   string `json:"warning,omitempty"`
}

// WarningSeverity classifies a pool build shortfall.
type WarningSeverity string

const (
	WarningHard WarningSeverity = "hard"
	WarningSoft WarningSeverity = "soft"
)

// PoolWarning is a structured sampling shortfall.
type PoolWarning struct {
	OutcomeID string          `json:"outcomeId"`
	Severity  WarningSeverity `json:"severity"`
	Generated int             `json:"generated"`
	Target    int             `json:"target"`
	Message   string          `json:"message"`
}

// SpinResult is the packet returned to the presentation layer.
type SpinResult struct {
	SpinID      string          `json:"spinId"`
	OutcomeID   string          `json:"outcomeId"`
	OutcomeName string          `json:"outcomeName"`
	BoardIndex  int             `json:"boardIndex"`
	Board       Board           `json:"board"`
	Win         WinBreakdown    `json:"win"`
	BaseBet     decimal.Decimal `json:"baseBet"`
	CashWin     decimal.Decimal `json:"cashWin"`
	Generation  uint64          `json:"generation"`
}

// SpinRecord is the per-spin row handed to reporting.
type SpinRecord struct {
	Index            int             `json:"index"`
	OutcomeID        string          `json:"outcomeId"`
	Win              decimal.Decimal `json:"win"`
	Bet              decimal.Decimal `json:"bet"`
	Profit           decimal.Decimal `json:"profit"`
	CumulativeProfit decimal.Decimal `json:"cumulativeProfit"`
}

// BucketContribution is one outcome's share of an RTP figure.
type BucketContribution struct {
	OutcomeID    string  `json:"outcomeId"`
	Probability  float64 `json:"probability"`
	AvgScore     float64 `json:"avgScore"`
	Contribution float64 `json:"contribution"`
	Boards       int     `json:"boards"`
	Missing      bool    `json:"missing,omitempty"`
}

// RTPBreakdown is a derived RTP report. RTP figures are percentages.
// TotalRTP is always LineRTP + ScatterRTP.
type RTPBreakdown struct {
	LineRTP            float64              `json:"lineRTP"`
	ScatterRTP         float64              `json:"scatterRTP"`
	TotalRTP           float64              `json:"totalRTP"`
	TriggerProbability float64              `json:"triggerProbability"`
	ExpectedCount      float64              `json:"expectedCount"`
	AvgPerUnit         float64              `json:"avgPerUnit"`
	Buckets            []BucketContribution `json:"buckets,omitempty"`
	// EstimatedScatterRTP is the binomial scatter pay of unconditioned random
	// boards. It is informational and not part of TotalRTP.
	EstimatedScatterRTP float64 `json:"estimatedScatterRTP,omitempty"`
}
