package random

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := New(7)
	b := New(7)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Float64(), b.Float64())
		require.Equal(t, a.IntBetween(1, 1000), b.IntBetween(1, 1000))
	}
}

func TestUniformStaysInRange(t *testing.T) {
	src := New(1)
	for i := 0; i < 1000; i++ {
		v := src.Uniform(2.5, 7.5)
		require.GreaterOrEqual(t, v, 2.5)
		require.Less(t, v, 7.5)
	}
}

func TestIntBetweenInclusive(t *testing.T) {
	src := New(2)

	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := src.IntBetween(3, 5)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 5)
		seen[v] = true
	}
	require.Len(t, seen, 3)

	require.Equal(t, 9, src.IntBetween(9, 9))
}

func TestIntBetweenPanicsOnInvertedRange(t *testing.T) {
	src := New(3)
	require.Panics(t, func() { src.IntBetween(5, 4) })
}

func TestChanceBounds(t *testing.T) {
	src := New(4)
	for i := 0; i < 100; i++ {
		require.False(t, src.Chance(0))
		require.True(t, src.Chance(1))
	}
}

func TestSampleReturnsDistinctElements(t *testing.T) {
	src := New(5)
	items := []string{"a", "b", "c", "d", "e", "f"}

	for i := 0; i < 50; i++ {
		out := Sample(src, items, 3)
		require.Len(t, out, 3)

		seen := map[string]bool{}
		for _, v := range out {
			require.Contains(t, items, v)
			require.False(t, seen[v], "duplicate element %q in sample", v)
			seen[v] = true
		}
	}
}

func TestWeightedChoiceSkipsZeroWeights(t *testing.T) {
	src := New(6)
	items := []string{"never", "always"}
	weights := []float64{0, 1}

	for i := 0; i < 200; i++ {
		require.Equal(t, "always", WeightedChoice(src, items, weights))
	}
}

func TestWeightedChoiceRespectsWeights(t *testing.T) {
	src := New(7)
	items := []string{"heavy", "light"}
	weights := []float64{0.9, 0.1}

	counts := map[string]int{}
	for i := 0; i < 2000; i++ {
		counts[WeightedChoice(src, items, weights)]++
	}
	require.Greater(t, counts["heavy"], counts["light"]*4)
}

func TestReadIsDeterministic(t *testing.T) {
	a := New(8)
	b := New(8)

	bufA := make([]byte, 16)
	bufB := make([]byte, 16)

	nA, errA := a.Read(bufA)
	nB, errB := b.Read(bufB)

	require.NoError(t, errA)
	require.NoError(t, errB)
	require.Equal(t, 16, nA)
	require.Equal(t, 16, nB)
	require.Equal(t, bufA, bufB)
}
