package pool

import (
	"sync/atomic"
	"time"

	"github.com/osse101/slotforge/internal/catalog"
	"github.com/osse101/slotforge/internal/domain"
)

// Tables is the configuration a pool generation was sampled from.
type Tables struct {
	Board      domain.BoardConfig
	Symbols    *catalog.SymbolCatalog
	Paylines   *catalog.PaylineTable
	Outcomes   *catalog.OutcomeTable
	Generation uint64
}

// BoardStat is the evaluation summary kept alongside each pooled board.
type BoardStat struct {
	Score         float64
	LineTotal     float64
	ScatterPayout float64
	ScatterCount  int
}

// Bucket is a read-only view of one outcome's pool inside a Set.
type Bucket struct {
	OutcomeID string
	Boards    []domain.Board
	Stats     []BoardStat
	Capacity  int
}

type span struct {
	start, end int
}

// Set is one immutable generation of pools: a single arena of boards with
// an outcome-indexed range into it. A Set is never modified once published.
type Set struct {
	id       uint64
	tables   Tables
	boards   []domain.Board
	stats    []BoardStat
	spans    []span
	statuses []domain.PoolStatus
	seed     uint64
	builtAt  time.Time
}

// setSeq numbers sets process-wide so two builds of the same configuration
// generation are still told apart.
var setSeq atomic.Uint64

// ID identifies this pool generation. It increases with every build.
func (s *Set) ID() uint64 { return s.id }

// Generation is the configuration generation the set was sampled from.
func (s *Set) Generation() uint64 { return s.tables.Generation }

func (s *Set) Tables() Tables     { return s.tables }
func (s *Set) Seed() uint64       { return s.seed }
func (s *Set) BuiltAt() time.Time { return s.builtAt }

// NumBuckets is the number of outcomes the set was built for.
func (s *Set) NumBuckets() int { return len(s.spans) }

// Bucket returns the pool view for outcome index i.
func (s *Set) Bucket(i int) Bucket {
	sp := s.spans[i]
	return Bucket{
		OutcomeID: s.tables.Outcomes.At(i).ID,
		Boards:    s.boards[sp.start:sp.end:sp.end],
		Stats:     s.stats[sp.start:sp.end:sp.end],
		Capacity:  s.statuses[i].Target,
	}
}

// Size returns how many boards outcome i holds.
func (s *Set) Size(i int) int {
	return s.spans[i].end - s.spans[i].start
}

// Board returns board j of outcome i.
func (s *Set) Board(i, j int) (domain.Board, BoardStat) {
	k := s.spans[i].start + j
	return s.boards[k], s.stats[k]
}

// TotalBoards is the arena size.
func (s *Set) TotalBoards() int { return len(s.boards) }

// Statuses returns a copy of the per-bucket build statuses.
func (s *Set) Statuses() []domain.PoolStatus {
	out := make([]domain.PoolStatus, len(s.statuses))
	copy(out, s.statuses)
	return out
}

// IsReady reports whether at least one pool holds a board.
func (s *Set) IsReady() bool {
	return s != nil && len(s.boards) > 0
}
