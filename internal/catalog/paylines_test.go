package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/slotforge/internal/domain"
)

func TestDefaultPaylines(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		count      int
		wantMaxRow int
	}{
		{name: "5x3 twenty lines", cols: 5, rows: 3, count: 20, wantMaxRow: 2},
		{name: "5x4 twenty lines", cols: 5, rows: 4, count: 20, wantMaxRow: 3},
		{name: "5x3 ten lines", cols: 5, rows: 3, count: 10, wantMaxRow: 2},
		{name: "6x3 stretched", cols: 6, rows: 3, count: 20, wantMaxRow: 2},
		{name: "5x1 single row", cols: 5, rows: 1, count: 3, wantMaxRow: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := DefaultPaylines(tt.cols, tt.rows, tt.count)
			require.NoError(t, err)
			require.Equal(t, tt.count, table.Len())

			maxRow := 0
			for _, p := range table.Patterns() {
				assert.Len(t, p.Cells, tt.cols)
				for c, cell := range p.Cells {
					assert.Equal(t, c, cell.Col)
					if cell.Row > maxRow {
						maxRow = cell.Row
					}
				}
			}
			assert.Equal(t, tt.wantMaxRow, maxRow)
		})
	}
}

func TestDefaultPaylines_InvalidDimensions(t *testing.T) {
	_, err := DefaultPaylines(2, 3, 20)
	assert.ErrorIs(t, err, domain.ErrInvalidBoardDimensions)

	_, err = DefaultPaylines(5, 0, 20)
	assert.ErrorIs(t, err, domain.ErrInvalidBoardDimensions)
}

func TestPaylineTable_Regenerate(t *testing.T) {
	table, err := DefaultPaylines(5, 3, 5)
	require.NoError(t, err)

	shrunk := table.Regenerate(2, 5, 3)
	require.Equal(t, 2, shrunk.Len())
	assert.Equal(t, table.Patterns()[:2], shrunk.Patterns())

	grown := table.Regenerate(8, 5, 3)
	require.Equal(t, 8, grown.Len())
	assert.Equal(t, table.Patterns(), grown.Patterns()[:5])
	for i, p := range grown.Patterns()[5:] {
		assert.Equal(t, 6+i, p.ID)
		for _, cell := range p.Cells {
			assert.Equal(t, 1, cell.Row, "padding uses the middle row")
		}
	}

	assert.Equal(t, 0, table.Regenerate(-1, 5, 3).Len())
}

func TestMiddleRowPattern_FourRows(t *testing.T) {
	p := MiddleRowPattern(1, 5, 4)
	for _, cell := range p.Cells {
		assert.Equal(t, 2, cell.Row)
	}
}

func TestNewPaylineTable_Errors(t *testing.T) {
	_, err := NewPaylineTable([]domain.PaylinePattern{{ID: 1}})
	assert.ErrorIs(t, err, domain.ErrInvalidPaytable)

	line := domain.PaylinePattern{ID: 1, Cells: []domain.Cell{{Col: 0, Row: 0}}}
	_, err = NewPaylineTable([]domain.PaylinePattern{line, line})
	assert.ErrorIs(t, err, domain.ErrInvalidPaytable)
}
