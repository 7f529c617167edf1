// Package board draws random boards from a symbol catalog.
package board

import (
	"fmt"

	"github.com/osse101/slotforge/internal/catalog"
	"github.com/osse101/slotforge/internal/domain"
	"github.com/osse101/slotforge/internal/rng"
)

// Sample fills a cols x rows board, drawing every cell uniformly by catalog
// index. Appearance weights are not consulted.
func Sample(symbols *catalog.SymbolCatalog, cols, rows int, src rng.Source) (domain.Board, error) {
	if symbols == nil || symbols.Len() == 0 {
		return domain.Board{}, domain.ErrEmptySymbolCatalog
	}
	if cols <= 0 || rows <= 0 {
		return domain.Board{}, fmt.Errorf("%w: %dx%d", domain.ErrInvalidBoardDimensions, cols, rows)
	}

	b := domain.NewBoard(cols, rows)
	SampleInto(b, symbols, src)
	return b, nil
}

// SampleInto refills an existing board in place. Inputs are assumed valid.
func SampleInto(b domain.Board, symbols *catalog.SymbolCatalog, src rng.Source) {
	n := symbols.Len()
	for c := range b.Grid {
		col := b.Grid[c]
		for r := range col {
			col[r] = symbols.At(src.IntN(n)).ID
		}
	}
}

// Clone deep-copies a board.
func Clone(b domain.Board) domain.Board {
	out := domain.Board{Grid: make([][]string, len(b.Grid))}
	for c, col := range b.Grid {
		out.Grid[c] = append([]string(nil), col...)
	}
	return out
}
