package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := New(2018)
	b := New(2018)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uniform(2, 78), b.Uniform(2, 78), "uniform draw %d", i)
		require.Equal(t, a.GaussianInt(5, 4), b.GaussianInt(5, 4), "gaussian draw %d", i)
		require.Equal(t, a.Poisson(25), b.Poisson(25), "poisson draw %d", i)
	}
}

func TestUniformStaysInRange(t *testing.T) {
	s := New(1)
	for i := 0; i < 1000; i++ {
		v := s.Uniform(2, 38)
		assert.GreaterOrEqual(t, v, 2)
		assert.Less(t, v, 38)
	}
}

func TestUniformSingleValue(t *testing.T) {
	s := New(7)
	assert.Equal(t, 5, s.Uniform(5, 6))
}

func TestUniformPanicsOnEmptyRange(t *testing.T) {
	s := New(7)
	assert.Panics(t, func() { s.Uniform(3, 3) })
}

func TestGaussianMean(t *testing.T) {
	s := New(42)
	const n = 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += s.Gaussian(25, 5)
	}
	assert.InDelta(t, 25.0, sum/n, 0.25)
}

func TestGaussianIntTruncatesTowardZero(t *testing.T) {
	s := New(3)
	for i := 0; i < 1000; i++ {
		v := s.GaussianInt(0, 0.1)
		assert.Equal(t, 0, v, "|x| < 1 must truncate to zero")
	}
}

func TestPoissonMean(t *testing.T) {
	s := New(99)
	const n = 20000
	sum := 0
	for i := 0; i < n; i++ {
		v := s.Poisson(25)
		require.GreaterOrEqual(t, v, 0)
		sum += v
	}
	assert.InDelta(t, 25.0, float64(sum)/n, 0.3)
}
