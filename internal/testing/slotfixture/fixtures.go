// Package slotfixture holds paytables shared by engine tests and benchmarks.
package slotfixture

import (
	"github.com/osse101/slotforge/internal/catalog"
	"github.com/osse101/slotforge/internal/domain"
)

// Symbol ids used by the fixtures.
const (
	SymA       = "A"
	SymB       = "B"
	SymC       = "C"
	SymD       = "D"
	SymE       = "E"
	SymWild    = "W"
	SymScatter = "S"
)

// Outcome ids used by the fixtures.
const (
	OutcomeLoss = "LOSS"
	OutcomeWin  = "WIN"
)

// Normal returns a normal symbol with the given tiers and weight 1.
func Normal(id string, m3, m4, m5 float64) domain.Symbol {
	return domain.Symbol{
		ID:               id,
		Kind:             domain.SymbolKindNormal,
		Payouts:          domain.PayoutTiers{Match3: m3, Match4: m4, Match5: m5},
		AppearanceWeight: 1,
	}
}

// Wild returns a wild symbol that replaces normal symbols only.
func Wild(id string) domain.Symbol {
	return domain.Symbol{
		ID:               id,
		Kind:             domain.SymbolKindWild,
		AppearanceWeight: 1,
		Wild:             &domain.WildRule{CanReplaceNormal: true},
	}
}

// Scatter returns a scatter symbol paying {3:5, 4:20, 5:100} from 3 up.
func Scatter(id string) domain.Symbol {
	return domain.Symbol{
		ID:               id,
		Kind:             domain.SymbolKindScatter,
		AppearanceWeight: 1,
		Scatter: &domain.ScatterRule{
			MinCount:      3,
			PayoutByCount: map[int]float64{3: 5, 4: 20, 5: 100},
		},
	}
}

// Symbols is the seven-symbol set: five normals, a wild and a scatter.
func Symbols() []domain.Symbol {
	return []domain.Symbol{
		Normal(SymA, 1, 2, 5),
		Normal(SymB, 0.5, 1, 2),
		Normal(SymC, 0.5, 1, 2),
		Normal(SymD, 0.2, 0.5, 1),
		Normal(SymE, 0.2, 0.5, 1),
		Wild(SymWild),
		Scatter(SymScatter),
	}
}

// Classic is a 5x3 board with the 20 default lines and three win buckets.
func Classic() *catalog.Paytable {
	board := domain.BoardConfig{Cols: 5, Rows: 3}
	lines, err := catalog.DefaultPaylines(board.Cols, board.Rows, catalog.DefaultLineCount)
	if err != nil {
		panic(err)
	}
	return &catalog.Paytable{
		Board:    board,
		Symbols:  mustSymbols(Symbols()),
		Paylines: lines,
		Outcomes: mustOutcomes([]domain.Outcome{
			{ID: OutcomeLoss, Name: "Loss", Range: domain.MultiplierRange{Min: 0, Max: 0}, Weight: 60},
			{ID: "SMALL", Name: "Small", Range: domain.MultiplierRange{Min: 0.1, Max: 4.9}, Weight: 35},
			{ID: "BIG", Name: "Big", Range: domain.MultiplierRange{Min: 5, Max: 200}, Weight: 5},
		}),
	}
}

// Consistency is the RTP cross-check paytable: 5x3, one middle-row line,
// LOSS [0,0] weight 90 and WIN [5,5] weight 10. Theoretical RTP is 50%.
func Consistency() *catalog.Paytable {
	board := domain.BoardConfig{Cols: 5, Rows: 3}
	lines, err := catalog.DefaultPaylines(board.Cols, board.Rows, 1)
	if err != nil {
		panic(err)
	}
	return &catalog.Paytable{
		Board:    board,
		Symbols:  mustSymbols(Symbols()),
		Paylines: lines,
		Outcomes: mustOutcomes([]domain.Outcome{
			{ID: OutcomeLoss, Name: "Loss", Range: domain.MultiplierRange{Min: 0, Max: 0}, Weight: 90},
			{ID: OutcomeWin, Name: "Win", Range: domain.MultiplierRange{Min: 5, Max: 5}, Weight: 10},
		}),
	}
}

// Unreachable adds a bucket no board can land in.
func Unreachable() *catalog.Paytable {
	pt := Consistency()
	pt.Outcomes = mustOutcomes([]domain.Outcome{
		{ID: OutcomeLoss, Name: "Loss", Range: domain.MultiplierRange{Min: 0, Max: 0}, Weight: 90},
		{ID: "JACKPOT", Name: "Jackpot", Range: domain.MultiplierRange{Min: 10000, Max: 20000}, Weight: 10},
	})
	return pt
}

// BoardFromRows builds a board from row-major strings, one symbol id per cell.
func BoardFromRows(rows ...[]string) domain.Board {
	b := domain.NewBoard(len(rows[0]), len(rows))
	for r, row := range rows {
		for c, id := range row {
			b.Grid[c][r] = id
		}
	}
	return b
}

// Fill returns a cols x rows board filled with id.
func Fill(cols, rows int, id string) domain.Board {
	b := domain.NewBoard(cols, rows)
	for c := range b.Grid {
		for r := range b.Grid[c] {
			b.Grid[c][r] = id
		}
	}
	return b
}

func mustSymbols(symbols []domain.Symbol) *catalog.SymbolCatalog {
	c, err := catalog.FromSymbols(symbols)
	if err != nil {
		panic(err)
	}
	return c
}

func mustOutcomes(outcomes []domain.Outcome) *catalog.OutcomeTable {
	t, err := catalog.NewOutcomeTable(outcomes)
	if err != nil {
		panic(err)
	}
	return t
}
