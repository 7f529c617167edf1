// Package payout scores boards: left-to-right payline runs with wild
// substitution plus a count-based scatter award.
package payout

import (
	"github.com/osse101/slotforge/internal/catalog"
	"github.com/osse101/slotforge/internal/domain"
)

// Evaluate computes the full win breakdown for a board. It has no side
// effects; identical inputs always give identical breakdowns.
func Evaluate(b domain.Board, lines *catalog.PaylineTable, symbols *catalog.SymbolCatalog) domain.WinBreakdown {
	var out domain.WinBreakdown

	if lines != nil {
		for _, p := range lines.Patterns() {
			win, ok := evaluateLine(b, p, symbols, true)
			if !ok {
				continue
			}
			out.LineWins = append(out.LineWins, win)
			out.LineTotal += win.Payout
			if out.BestLine == nil || win.Payout > out.BestLine.Payout {
				best := win
				out.BestLine = &best
			}
		}
	}

	if scatter, ok := symbols.Scatter(); ok {
		out.ScatterSymbol = scatter.ID
		out.ScatterCount = b.Count(scatter.ID)
		out.ScatterPayout = scatter.Scatter.PayoutFor(out.ScatterCount)
	}

	out.TotalScore = out.LineTotal + out.ScatterPayout
	return out
}

// Score returns Evaluate(...).TotalScore without building the breakdown.
func Score(b domain.Board, lines *catalog.PaylineTable, symbols *catalog.SymbolCatalog) float64 {
	total := 0.0
	if lines != nil {
		for _, p := range lines.Patterns() {
			if win, ok := evaluateLine(b, p, symbols, false); ok {
				total += win.Payout
			}
		}
	}
	if scatter, ok := symbols.Scatter(); ok {
		total += scatter.Scatter.PayoutFor(b.Count(scatter.ID))
	}
	return total
}

// evaluateLine scores one payline. ok is false when the line does not pay.
func evaluateLine(b domain.Board, p domain.PaylinePattern, symbols *catalog.SymbolCatalog, withCells bool) (domain.LineWin, bool) {
	var cellBuf [8]domain.Cell
	cells := cellBuf[:0]
	for _, c := range p.Cells {
		if b.InBounds(c) {
			cells = append(cells, c)
		}
	}
	if len(cells) < domain.MinLineMatch {
		return domain.LineWin{}, false
	}

	target, found := lineTarget(b, cells, symbols)
	if !found {
		return domain.LineWin{}, false
	}

	run := 0
	for _, c := range cells {
		id := b.At(c)
		if id == target.ID {
			run++
			continue
		}
		sym, known := symbols.Lookup(id)
		if !known || !sym.IsWild() || !sym.Wild.Substitutes(target) {
			break
		}
		run++
	}

	if run < domain.MinLineMatch {
		return domain.LineWin{}, false
	}
	payout := target.Payouts.For(run)
	if payout <= 0 {
		return domain.LineWin{}, false
	}

	win := domain.LineWin{
		LineID:     p.ID,
		Symbol:     target.ID,
		MatchCount: run,
		Payout:     payout,
	}
	if withCells {
		win.Cells = append([]domain.Cell(nil), cells[:run]...)
	}
	return win, true
}

// lineTarget is the first symbol on the line that is neither wild nor
// scatter. An unknown id becomes a target that never pays.
func lineTarget(b domain.Board, cells []domain.Cell, symbols *catalog.SymbolCatalog) (domain.Symbol, bool) {
	for _, c := range cells {
		id := b.At(c)
		sym, known := symbols.Lookup(id)
		if !known {
			return domain.Symbol{ID: id, Kind: domain.SymbolKindNormal}, true
		}
		if !sym.IsWild() && !sym.IsScatter() {
			return sym, true
		}
	}
	return domain.Symbol{}, false
}
