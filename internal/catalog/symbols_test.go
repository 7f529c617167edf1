package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/slotforge/internal/domain"
)

func TestRawSymbol_Resolve_ScatterPrecedence(t *testing.T) {
	tests := []struct {
		name        string
		raw         RawSymbol
		wantMin     int
		wantPayouts map[int]float64
	}{
		{
			name: "current field only",
			raw: RawSymbol{ID: "S", Type: domain.SymbolKindScatter, AppearanceWeight: 1,
				ScatterPayoutConfig: &RawScatterConfig{MinCount: 3, PayoutByCount: map[string]float64{"3": 5}}},
			wantMin:     3,
			wantPayouts: map[int]float64{3: 5},
		},
		{
			name: "current field wins over deprecated",
			raw: RawSymbol{ID: "S", Type: domain.SymbolKindScatter, AppearanceWeight: 1,
				ScatterPayoutConfig: &RawScatterConfig{MinCount: 4, PayoutByCount: map[string]float64{"4": 20}},
				ScatterConfig:       &RawScatterConfig{MinCount: 2, PayoutByCount: map[string]float64{"2": 1}}},
			wantMin:     4,
			wantPayouts: map[int]float64{4: 20},
		},
		{
			name: "deprecated field used when current missing",
			raw: RawSymbol{ID: "S", Type: domain.SymbolKindScatter, AppearanceWeight: 1,
				ScatterConfig: &RawScatterConfig{MinCount: 2, PayoutByCount: map[string]float64{"2": 1}}},
			wantMin:     2,
			wantPayouts: map[int]float64{2: 1},
		},
		{
			name: "trigger min count fills a missing min count",
			raw: RawSymbol{ID: "S", Type: domain.SymbolKindScatter, AppearanceWeight: 1,
				ScatterPayoutConfig: &RawScatterConfig{PayoutByCount: map[string]float64{"4": 8}},
				FSTriggerConfig:     &RawTriggerConfig{MinCount: 4}},
			wantMin:     4,
			wantPayouts: map[int]float64{4: 8},
		},
		{
			name: "default min count",
			raw: RawSymbol{ID: "S", Type: domain.SymbolKindScatter, AppearanceWeight: 1,
				ScatterPayoutConfig: &RawScatterConfig{PayoutByCount: map[string]float64{"3": 1}}},
			wantMin:     DefaultScatterMinCount,
			wantPayouts: map[int]float64{3: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sym, err := tt.raw.Resolve()
			require.NoError(t, err)
			require.NotNil(t, sym.Scatter)
			assert.Nil(t, sym.Wild)
			assert.Equal(t, tt.wantMin, sym.Scatter.MinCount)
			assert.Equal(t, tt.wantPayouts, sym.Scatter.PayoutByCount)
		})
	}
}

func TestRawSymbol_Resolve_Variants(t *testing.T) {
	wild, err := RawSymbol{ID: "W", Type: domain.SymbolKindWild, AppearanceWeight: 1,
		ScatterPayoutConfig: &RawScatterConfig{PayoutByCount: map[string]float64{"3": 1}}}.Resolve()
	require.NoError(t, err)
	require.NotNil(t, wild.Wild)
	assert.True(t, wild.Wild.CanReplaceNormal, "wild without config replaces normals")
	assert.Nil(t, wild.Scatter, "scatter table on a wild is dropped")

	normal, err := RawSymbol{ID: "A", Type: domain.SymbolKindNormal, AppearanceWeight: 1,
		WildConfig: &domain.WildRule{CanReplaceNormal: true}}.Resolve()
	require.NoError(t, err)
	assert.Nil(t, normal.Wild)
	assert.Nil(t, normal.Scatter)

	_, err = RawSymbol{ID: "S", Type: domain.SymbolKindScatter, AppearanceWeight: 1,
		ScatterPayoutConfig: &RawScatterConfig{PayoutByCount: map[string]float64{"three": 1}}}.Resolve()
	assert.ErrorIs(t, err, domain.ErrInvalidPaytable)

	_, err = RawSymbol{ID: "X", Type: "bonus", AppearanceWeight: 1}.Resolve()
	assert.ErrorIs(t, err, domain.ErrInvalidPaytable)
}

func TestSymbolCatalog_FirstScatterWins(t *testing.T) {
	first := domain.Symbol{ID: "S1", Kind: domain.SymbolKindScatter, AppearanceWeight: 1,
		Scatter: &domain.ScatterRule{MinCount: 3, PayoutByCount: map[int]float64{3: 5}}}
	second := domain.Symbol{ID: "S2", Kind: domain.SymbolKindScatter, AppearanceWeight: 1,
		Scatter: &domain.ScatterRule{MinCount: 3, PayoutByCount: map[int]float64{3: 50}}}
	bare := domain.Symbol{ID: "S0", Kind: domain.SymbolKindScatter, AppearanceWeight: 1}

	c, err := FromSymbols([]domain.Symbol{bare, first, second})
	require.NoError(t, err)

	s, ok := c.Scatter()
	require.True(t, ok)
	assert.Equal(t, "S1", s.ID)
}

func TestSymbolCatalog_Errors(t *testing.T) {
	_, err := FromSymbols(nil)
	assert.ErrorIs(t, err, domain.ErrEmptySymbolCatalog)

	a := domain.Symbol{ID: "A", Kind: domain.SymbolKindNormal, AppearanceWeight: 1}
	_, err = FromSymbols([]domain.Symbol{a, a})
	assert.ErrorIs(t, err, domain.ErrInvalidPaytable)

	_, err = FromSymbols([]domain.Symbol{{ID: "Z", Kind: domain.SymbolKindNormal}})
	assert.ErrorIs(t, err, domain.ErrInvalidPaytable)

	_, err = FromSymbols([]domain.Symbol{{ID: "W", Kind: domain.SymbolKindWild, AppearanceWeight: 1}})
	assert.ErrorIs(t, err, domain.ErrInvalidPaytable)
}

func TestSymbolCatalog_Accessors(t *testing.T) {
	c, err := FromSymbols([]domain.Symbol{
		{ID: "A", Kind: domain.SymbolKindNormal, AppearanceWeight: 3},
		{ID: "B", Kind: domain.SymbolKindNormal, AppearanceWeight: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.InDelta(t, 4.0, c.TotalWeight(), 1e-12)
	b, ok := c.Lookup("B")
	require.True(t, ok)
	assert.Equal(t, "B", b.ID)
	_, ok = c.Lookup("Q")
	assert.False(t, ok)
	_, ok = c.Scatter()
	assert.False(t, ok)

	copied := c.Symbols()
	copied[0].ID = "mutated"
	assert.Equal(t, "A", c.At(0).ID)
}
