// Package random provides the seeded random source shared by every
// generation phase.
package random

import (
	"math"
	"math/rand"
)

// Source is a deterministic random source. It is not safe for concurrent use;
// a generation run owns exactly one.
type Source struct {
	rng *rand.Rand
}

// New creates a source seeded with the given value.
func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform integer in [0, n).
func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

// Uniform returns a uniform integer in the half-open range [lo, hi).
// It panics if hi <= lo.
func (s *Source) Uniform(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo)
}

// Gaussian returns a normally distributed value with the given mean and
// standard deviation.
func (s *Source) Gaussian(mean, stddev float64) float64 {
	return mean + stddev*s.rng.NormFloat64()
}

// GaussianInt samples Gaussian and truncates the result toward zero.
func (s *Source) GaussianInt(mean, stddev float64) int {
	return int(s.Gaussian(mean, stddev))
}

// Poisson returns a Poisson distributed value with the given rate using
// Knuth's multiplication method. lambda must be positive and small enough
// that exp(-lambda) does not underflow.
func (s *Source) Poisson(lambda float64) int {
	limit := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		p *= s.rng.Float64()
		if p <= limit {
			return k
		}
		k++
	}
}
