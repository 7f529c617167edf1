package rtp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinomialPMF_SumsToOne(t *testing.T) {
	for _, p := range []float64{0, 0.1, 1.0 / 7, 0.5, 1} {
		pmf := BinomialPMF(15, p)
		sum := 0.0
		for _, v := range pmf {
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "p=%v", p)
		assert.Len(t, pmf, 16)
	}
}

func TestBinomialPMF_KnownValues(t *testing.T) {
	pmf := BinomialPMF(4, 0.5)
	assert.InDeltaSlice(t, []float64{1.0 / 16, 4.0 / 16, 6.0 / 16, 4.0 / 16, 1.0 / 16}, pmf, 1e-12)
}

func TestBinomialAtLeast(t *testing.T) {
	tests := []struct {
		name string
		n, k int
		p    float64
		want float64
	}{
		{"k zero is certain", 5, 0, 0.3, 1},
		{"k above n is impossible", 5, 6, 0.3, 0},
		{"all heads", 3, 3, 0.5, 0.125},
		{"at least two of four fair", 4, 2, 0.5, 11.0 / 16},
		{"zero probability", 10, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, BinomialAtLeast(tt.n, tt.k, tt.p), 1e-12)
		})
	}
}
