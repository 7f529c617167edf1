package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanAndStdDev(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		wantMean float64
		wantSD   float64
	}{
		{name: "empty", values: nil},
		{name: "constant", values: []float64{5, 5, 5}, wantMean: 5, wantSD: 0},
		{name: "two points", values: []float64{0, 10}, wantMean: 5, wantSD: 5},
		{name: "classic", values: []float64{2, 4, 4, 4, 5, 5, 7, 9}, wantMean: 5, wantSD: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean := Mean(tt.values)
			assert.InDelta(t, tt.wantMean, mean, 1e-12)
			assert.InDelta(t, tt.wantSD, StdDev(tt.values, mean), 1e-12)
		})
	}
}

func TestMinMax(t *testing.T) {
	lo, hi := MinMax([]float64{3, -1, 8, 0})
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 8.0, hi)

	lo, hi = MinMax(nil)
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.5, Ratio(1, 2))
	assert.Equal(t, 0.0, Ratio(1, 0))
}

func TestRoundTo(t *testing.T) {
	assert.InDelta(t, 50.12, RoundTo(50.1234, 2), 1e-12)
	assert.InDelta(t, 50.0, RoundTo(49.99999, 3), 1e-12)
	assert.InDelta(t, 1.0, RoundTo(0.5, 0), 1e-12)
}
