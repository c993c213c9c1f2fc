package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samples = 10_000

func frequencies[T comparable](t *testing.T, g Generator[T], seed int64) map[T]float64 {
	t.Helper()
	values, err := Take(g, NewContext(seed), samples)
	require.NoError(t, err)
	freq := make(map[T]float64)
	for _, v := range values {
		freq[v] += 1.0 / samples
	}
	return freq
}

func TestWeighted_SelectionLaw(t *testing.T) {
	g := WeightedValues(
		WeightedValue[string]{Weight: 1, Value: "a"},
		WeightedValue[string]{Weight: 2, Value: "b"},
		WeightedValue[string]{Weight: 7, Value: "c"},
	)
	freq := frequencies(t, g, 2024)

	assert.InDelta(t, 0.1, freq["a"], 0.02)
	assert.InDelta(t, 0.2, freq["b"], 0.02)
	assert.InDelta(t, 0.7, freq["c"], 0.02)
}

func TestWeighted_DrawsFromChosenGenerator(t *testing.T) {
	g := Weighted(
		Weigh(1, From(0, 10)),
		Weigh(1, From(100, 110)),
	)
	values, err := Take(g, NewContext(8), 200)
	require.NoError(t, err)
	for _, v := range values {
		require.True(t, (v >= 0 && v < 10) || (v >= 100 && v < 110), "unexpected %d", v)
	}
}

func TestWeighted_RejectsNonPositiveWeights(t *testing.T) {
	requirePrecondition(t, func() { WeightedValues(WeightedValue[string]{Weight: 0, Value: "v"}) })
	requirePrecondition(t, func() { WeightedValues(WeightedValue[string]{Weight: -1, Value: "v"}) })
	requirePrecondition(t, func() {
		Weighted(Weigh(3, Constant(1)), Weigh(0, Constant(2)))
	})
	requirePrecondition(t, func() { Weighted[int]() })
}

func TestOne_UniformLaw(t *testing.T) {
	freq := frequencies(t, One(Constant(0), Constant(1)), 99)
	assert.InDelta(t, 0.5, freq[0], 0.02)
	assert.InDelta(t, 0.5, freq[1], 0.02)
}

func TestOneOf_CoversAll(t *testing.T) {
	freq := frequencies(t, OneOf("x", "y", "z", "w"), 5)
	require.Len(t, freq, 4)
	for v, f := range freq {
		assert.InDeltaf(t, 0.25, f, 0.02, "value %q", v)
	}

	requirePrecondition(t, func() { OneOf[int]() })
	requirePrecondition(t, func() { One[int]() })
}

func TestEither_ProbabilityLaw(t *testing.T) {
	for _, p := range []float64{0.1, 0.3, 0.5, 0.85} {
		freq := frequencies(t, Either(Constant("left"), Constant("right"), p), 17)
		assert.InDeltaf(t, p, freq["right"], 0.02, "p=%v", p)
	}
}

func TestEither_Extremes(t *testing.T) {
	freq := frequencies(t, Either(Constant("left"), Constant("right"), 0), 1)
	assert.InDelta(t, 1.0, freq["left"], 1e-9)
	assert.Zero(t, freq["right"])

	freq = frequencies(t, Either(Constant("left"), Constant("right"), 1), 1)
	assert.Zero(t, freq["left"])
}

func TestEither_RejectsInvalidProbability(t *testing.T) {
	requirePrecondition(t, func() { Either(Constant(1), Constant(2), -0.1) })
	requirePrecondition(t, func() { Either(Constant(1), Constant(2), 1.5) })
}

func TestPointer_NilChance(t *testing.T) {
	values, err := Take(Pointer(Int(), 0.25), NewContext(12), samples)
	require.NoError(t, err)
	nils := 0
	for _, v := range values {
		if v == nil {
			nils++
		}
	}
	assert.InDelta(t, 0.25, float64(nils)/samples, 0.02)
}

func TestPick_CopiesInput(t *testing.T) {
	values := []string{"a", "b"}
	g := Pick(values)
	values[0] = "mutated"

	got, err := Take(g, NewContext(1), 100)
	require.NoError(t, err)
	assert.NotContains(t, got, "mutated")
}
