package rtp

import "math"

// BinomialPMF returns P(X = k) for every k in [0, n] with X ~ Bin(n, p).
// Coefficients are accumulated iteratively, C(n, j+1) = C(n, j)(n-j)/(j+1),
// which stays exact in float64 for reel-sized n.
func BinomialPMF(n int, p float64) []float64 {
	if n < 0 {
		return nil
	}
	p = math.Max(0, math.Min(1, p))
	q := 1 - p

	pmf := make([]float64, n+1)
	coeff := 1.0
	for j := 0; j <= n; j++ {
		pmf[j] = coeff * math.Pow(p, float64(j)) * math.Pow(q, float64(n-j))
		coeff = coeff * float64(n-j) / float64(j+1)
	}
	return pmf
}

// BinomialAtLeast returns P(X >= k) for X ~ Bin(n, p).
func BinomialAtLeast(n, k int, p float64) float64 {
	if k <= 0 {
		return 1
	}
	if k > n {
		return 0
	}
	sum := 0.0
	for _, v := range BinomialPMF(n, p)[k:] {
		sum += v
	}
	return math.Min(sum, 1)
}
