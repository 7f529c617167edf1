package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayoutTiersFor(t *testing.T) {
	tiers := PayoutTiers{Match3: 1, Match4: 2, Match5: 5}

	tests := []struct {
		run  int
		want float64
	}{
		{0, 0},
		{2, 0},
		{3, 1},
		{4, 2},
		{5, 5},
		{7, 5},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("run=%d", tt.run), func(t *testing.T) {
			assert.Equal(t, tt.want, tiers.For(tt.run))
		})
	}
}

func TestScatterRulePayoutFor(t *testing.T) {
	rule := ScatterRule{MinCount: 3, PayoutByCount: map[int]float64{3: 5, 4: 20, 5: 100}}

	assert.Equal(t, 0.0, rule.PayoutFor(2), "below minimum")
	assert.Equal(t, 5.0, rule.PayoutFor(3))
	assert.Equal(t, 100.0, rule.PayoutFor(5))
	assert.Equal(t, 0.0, rule.PayoutFor(6), "no tier configured")
}

func TestWildRuleSubstitutes(t *testing.T) {
	normal := Symbol{ID: "A", Kind: SymbolKindNormal}
	scatter := Symbol{ID: "S", Kind: SymbolKindScatter}

	w := WildRule{CanReplaceNormal: true}
	assert.True(t, w.Substitutes(normal))
	assert.False(t, w.Substitutes(scatter))

	w = WildRule{CanReplaceSpecial: true}
	assert.False(t, w.Substitutes(normal))
	assert.True(t, w.Substitutes(scatter))
}

func TestMultiplierRange(t *testing.T) {
	r := MultiplierRange{Min: 0.1, Max: 4.9}

	assert.True(t, r.Contains(0.1))
	assert.True(t, r.Contains(4.9))
	assert.False(t, r.Contains(0))
	assert.False(t, r.Contains(5))
	assert.InDelta(t, 2.5, r.Midpoint(), 1e-12)
	assert.True(t, r.Valid())

	assert.False(t, MultiplierRange{Min: 5, Max: 1}.Valid())
	assert.False(t, MultiplierRange{Min: -1, Max: 1}.Valid())
	assert.True(t, MultiplierRange{}.Valid(), "zero-width loss bucket")
}

func TestBoard(t *testing.T) {
	b := NewBoard(5, 3)
	for c := range b.Grid {
		for r := range b.Grid[c] {
			b.Grid[c][r] = "A"
		}
	}
	b.Grid[2][1] = "S"
	b.Grid[4][0] = "S"

	assert.Equal(t, 5, b.Cols())
	assert.Equal(t, 3, b.Rows())
	assert.Equal(t, 2, b.Count("S"))
	assert.Equal(t, 13, b.Count("A"))
	assert.Equal(t, "S", b.At(Cell{Col: 2, Row: 1}))
	assert.True(t, b.InBounds(Cell{Col: 4, Row: 2}))
	assert.False(t, b.InBounds(Cell{Col: 5, Row: 0}))
	assert.False(t, b.InBounds(Cell{Col: 0, Row: -1}))
	assert.Equal(t, "A,A,A|A,A,A|A,S,A|A,A,A|S,A,A", b.Key())
	assert.Equal(t, 0, Board{}.Rows())
}

func TestBoardConfig(t *testing.T) {
	assert.True(t, BoardConfig{Cols: 5, Rows: 3}.Valid())
	assert.False(t, BoardConfig{Cols: 2, Rows: 3}.Valid())
	assert.False(t, BoardConfig{Cols: 5, Rows: 0}.Valid())
	assert.Equal(t, 20, BoardConfig{Cols: 5, Rows: 4}.Cells())
}

func TestIsConfigError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{ErrEmptySymbolCatalog, true},
		{fmt.Errorf("%w: LOSS", ErrInvalidMultiplierRange), true},
		{ErrInvalidBaseBet, true},
		{ErrPoolsNotBuilt, false},
		{ErrStaleGeneration, false},
		{ErrInvariantViolation, false},
		{nil, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsConfigError(tt.err), "%v", tt.err)
	}
}
