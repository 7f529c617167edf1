package catalog

import (
	"fmt"

	"github.com/osse101/slotforge/internal/domain"
)

// Row sequences for the reference 5-column boards, top row = 0.
var (
	threeRowLines = [][]int{
		{1, 1, 1, 1, 1}, {0, 0, 0, 0, 0}, {2, 2, 2, 2, 2}, {0, 1, 2, 1, 0}, {2, 1, 0, 1, 2},
		{0, 0, 1, 2, 2}, {2, 2, 1, 0, 0}, {1, 0, 0, 0, 1}, {1, 2, 2, 2, 1}, {1, 0, 1, 2, 1},
		{1, 2, 1, 0, 1}, {0, 1, 1, 1, 0}, {2, 1, 1, 1, 2}, {0, 1, 0, 1, 0}, {2, 1, 2, 1, 2},
		{1, 1, 0, 1, 1}, {1, 1, 2, 1, 1}, {0, 0, 2, 0, 0}, {2, 2, 0, 2, 2}, {0, 2, 2, 2, 0},
	}
	fourRowLines = [][]int{
		{1, 1, 1, 1, 1}, {2, 2, 2, 2, 2}, {0, 0, 0, 0, 0}, {3, 3, 3, 3, 3}, {0, 1, 2, 1, 0},
		{3, 2, 1, 2, 3}, {1, 2, 3, 2, 1}, {2, 1, 0, 1, 2}, {0, 0, 1, 2, 3}, {3, 3, 2, 1, 0},
		{1, 0, 0, 0, 1}, {2, 3, 3, 3, 2}, {0, 1, 0, 1, 0}, {3, 2, 3, 2, 3}, {1, 2, 1, 2, 1},
		{2, 1, 2, 1, 2}, {0, 0, 1, 0, 0}, {3, 3, 2, 3, 3}, {1, 1, 0, 1, 1}, {2, 2, 3, 2, 2},
	}
)

// PaylineTable is an immutable ordered set of payline patterns.
type PaylineTable struct {
	patterns []domain.PaylinePattern
}

// NewPaylineTable copies patterns into a table. Cells that fall outside a
// board are clipped at evaluation time, so only structural checks apply here.
func NewPaylineTable(patterns []domain.PaylinePattern) (*PaylineTable, error) {
	t := &PaylineTable{patterns: make([]domain.PaylinePattern, len(patterns))}
	seen := make(map[int]struct{}, len(patterns))
	for i, p := range patterns {
		if len(p.Cells) == 0 {
			return nil, fmt.Errorf("%w: payline %d has no cells", domain.ErrInvalidPaytable, p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate payline id %d", domain.ErrInvalidPaytable, p.ID)
		}
		seen[p.ID] = struct{}{}
		cells := make([]domain.Cell, len(p.Cells))
		copy(cells, p.Cells)
		t.patterns[i] = domain.PaylinePattern{ID: p.ID, Cells: cells}
	}
	return t, nil
}

// DefaultPaylines returns count lines for a cols x rows board.
func DefaultPaylines(cols, rows, count int) (*PaylineTable, error) {
	if cols < domain.MinLineMatch || rows < 1 {
		return nil, fmt.Errorf("%w: %dx%d", domain.ErrInvalidBoardDimensions, cols, rows)
	}

	var base [][]int
	switch {
	case rows == 3:
		base = threeRowLines
	case rows >= 4:
		base = fourRowLines
	default:
		for r := 0; r < rows; r++ {
			base = append(base, []int{r})
		}
	}

	patterns := make([]domain.PaylinePattern, 0, len(base))
	for i, seq := range base {
		patterns = append(patterns, fromRows(i+1, seq, cols))
	}
	t := &PaylineTable{patterns: patterns}
	return t.Regenerate(count, cols, rows), nil
}

// fromRows stretches a row sequence across cols, repeating the last row.
func fromRows(id int, seq []int, cols int) domain.PaylinePattern {
	cells := make([]domain.Cell, cols)
	for c := range cells {
		r := seq[len(seq)-1]
		if c < len(seq) {
			r = seq[c]
		}
		cells[c] = domain.Cell{Col: c, Row: r}
	}
	return domain.PaylinePattern{ID: id, Cells: cells}
}

// MiddleRowPattern is the straight line through row rows/2.
func MiddleRowPattern(id, cols, rows int) domain.PaylinePattern {
	return fromRows(id, []int{rows / 2}, cols)
}

// Regenerate returns a table of exactly count lines: the first count
// patterns when shrinking, or this table padded with middle-row lines.
func (t *PaylineTable) Regenerate(count, cols, rows int) *PaylineTable {
	if count < 0 {
		count = 0
	}
	out := &PaylineTable{patterns: make([]domain.PaylinePattern, 0, count)}
	nextID := 1
	for i := 0; i < len(t.patterns) && i < count; i++ {
		out.patterns = append(out.patterns, t.patterns[i])
		if t.patterns[i].ID >= nextID {
			nextID = t.patterns[i].ID + 1
		}
	}
	for len(out.patterns) < count {
		out.patterns = append(out.patterns, MiddleRowPattern(nextID, cols, rows))
		nextID++
	}
	return out
}

func (t *PaylineTable) Len() int { return len(t.patterns) }

// Patterns returns the table's patterns. Callers must not modify them.
func (t *PaylineTable) Patterns() []domain.PaylinePattern { return t.patterns }
