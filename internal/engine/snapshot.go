package engine

import (
	"github.com/osse101/slotforge/internal/catalog"
	"github.com/osse101/slotforge/internal/domain"
	"github.com/osse101/slotforge/internal/pool"
)

// Snapshot is one immutable configuration. Every change installs a new
// Snapshot with the next generation number.
type Snapshot struct {
	Board      domain.BoardConfig
	Symbols    *catalog.SymbolCatalog
	Paylines   *catalog.PaylineTable
	Outcomes   *catalog.OutcomeTable
	Generation uint64
}

// Tables is the snapshot in the form pool builds consume.
func (s *Snapshot) Tables() pool.Tables {
	return pool.Tables{
		Board:      s.Board,
		Symbols:    s.Symbols,
		Paylines:   s.Paylines,
		Outcomes:   s.Outcomes,
		Generation: s.Generation,
	}
}

// with returns a copy carrying the next generation.
func (s *Snapshot) with(fn func(*Snapshot)) *Snapshot {
	next := *s
	fn(&next)
	next.Generation = s.Generation + 1
	return &next
}
