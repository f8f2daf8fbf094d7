package ring_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/luckyring/ring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRandom_Determinism locks the fixed-seed contract: (5, 10, 50)
// yields the same sequence on every run.
func TestNewRandom_Determinism(t *testing.T) {
	first, err := ring.NewRandom(5, 10, 50)
	require.NoError(t, err)
	require.Equal(t, 5, first.Len())
	requireRing(t, first)

	assert.Equal(t, []int{12, 19, 11, 14, 40}, first.Values(), "seed 42 sequence is pinned")

	for i := 0; i < 3; i++ {
		again, err := ring.NewRandom(5, 10, 50)
		require.NoError(t, err)
		assert.Equal(t, first.Values(), again.Values(), "run %d", i)
	}

	withDefault, err := ring.NewRandom(5, 10, 50, ring.WithSeed(ring.DefaultSeed))
	require.NoError(t, err)
	assert.Equal(t, first.Values(), withDefault.Values())

	zeroSeed, err := ring.NewRandom(5, 10, 50, ring.WithSeed(0))
	require.NoError(t, err)
	assert.Equal(t, first.Values(), zeroSeed.Values(), "seed 0 keeps the default")
}

// TestNewRandom_Bounds checks every value stays in [lo, hi].
func TestNewRandom_Bounds(t *testing.T) {
	l, err := ring.NewRandom(500, -3, 3)
	require.NoError(t, err)
	seen := map[int]bool{}
	for _, v := range l.Values() {
		assert.GreaterOrEqual(t, v, -3)
		assert.LessOrEqual(t, v, 3)
		seen[v] = true
	}
	assert.Len(t, seen, 7, "500 draws over 7 values should hit each one")
}

// TestNewRandom_Degenerate covers n == 0, lo == hi and full-width ranges.
func TestNewRandom_Degenerate(t *testing.T) {
	l, err := ring.NewRandom(0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())

	l8, err := ring.NewRandom[int8](4, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, []int8{5, 5, 5, 5}, l8.Values())

	u, err := ring.NewRandom[uint64](3, 0, math.MaxUint64)
	require.NoError(t, err)
	assert.Equal(t, 3, u.Len())

	s, err := ring.NewRandom[int64](3, math.MinInt64, math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
}

// TestNewRandom_SeedChangesSequence verifies the seed actually feeds the draw.
func TestNewRandom_SeedChangesSequence(t *testing.T) {
	a, err := ring.NewRandom(16, 0, 1<<30)
	require.NoError(t, err)
	b, err := ring.NewRandom(16, 0, 1<<30, ring.WithSeed(7))
	require.NoError(t, err)
	assert.NotEqual(t, a.Values(), b.Values())
}

// TestNewRandom_InvalidRange rejects negative counts and inverted bounds.
func TestNewRandom_InvalidRange(t *testing.T) {
	_, err := ring.NewRandom(-1, 0, 1)
	assert.ErrorIs(t, err, ring.ErrInvalidRange)

	_, err = ring.NewRandom(3, 10, 5)
	assert.ErrorIs(t, err, ring.ErrInvalidRange)
}
