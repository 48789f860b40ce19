// Package random wraps a single seeded PRNG behind the draw primitives the
// generators need. All draws for a run go through one Source, so output is a
// pure function of the seed and the call order.
package random

import (
	"fmt"
	"math/rand"
)

type Source struct {
	rng *rand.Rand
}

func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Float64 draws uniformly from [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Uniform draws uniformly from [lo, hi).
func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// IntBetween draws uniformly from the inclusive range [lo, hi].
func (s *Source) IntBetween(lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("random: invalid range [%d, %d]", lo, hi))
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Chance reports true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Read fills p with pseudo-random bytes. It exists so the Source can stand
// in for crypto/rand when deriving record identifiers.
func (s *Source) Read(p []byte) (int, error) {
	return s.rng.Read(p)
}

// Choice picks one element uniformly.
func Choice[T any](s *Source, items []T) T {
	return items[s.rng.Intn(len(items))]
}

// Sample picks n distinct elements, preserving draw order. n must not exceed
// len(items).
func Sample[T any](s *Source, items []T, n int) []T {
	idx := s.rng.Perm(len(items))[:n]
	out := make([]T, n)
	for i, j := range idx {
		out[i] = items[j]
	}
	return out
}

// WeightedChoice picks one element with probability proportional to its
// weight. Weights must be non-negative and sum to a positive value.
func WeightedChoice[T any](s *Source, items []T, weights []float64) T {
	if len(items) != len(weights) {
		panic("random: items and weights length mismatch")
	}
	total := 0.0
	for _, w := range weights {
		total += w
	}
	target := s.rng.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if target < acc {
			return items[i]
		}
	}
	return items[len(items)-1]
}
