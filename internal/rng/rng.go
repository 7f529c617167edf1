// Package rng provides the injectable random sources used by sampling, draws
// and simulations. Sources are not safe for concurrent use; each goroutine
// owns its own.
package rng

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source is the randomness the engine consumes.
type Source interface {
	// IntN returns a uniform int in [0, n). n must be positive.
	IntN(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// golden ratio increment used to split derived streams
const streamIncrement = 0x9e3779b97f4a7c15

type pcgSource struct {
	r *rand.Rand
}

func (s *pcgSource) IntN(n int) int    { return s.r.IntN(n) }
func (s *pcgSource) Float64() float64 { return s.r.Float64() }

// New returns a source seeded from the operating system.
func New() Source {
	return NewSeeded(FreshSeed())
}

// NewSeeded returns a reproducible PCG source.
func NewSeeded(seed uint64) Source {
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed^streamIncrement))}
}

// Derive returns the source for stream index of a seeded run. Two calls with
// the same arguments yield identical sequences regardless of call order.
func Derive(seed uint64, index int) Source {
	s := seed + uint64(index+1)*streamIncrement
	return &pcgSource{r: rand.New(rand.NewPCG(s, mix(s)))}
}

// FreshSeed reads a seed from crypto/rand, falling back to the runtime source.
func FreshSeed() uint64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return rand.Uint64()
	}
	return binary.BigEndian.Uint64(buf[:])
}

// splitmix64 finaliser
func mix(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
