package gen

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffle_IsPermutation(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6}
	perms, err := Take(Shuffle(in), NewContext(9), 200)
	require.NoError(t, err)

	distinct := make(map[string]bool)
	for _, p := range perms {
		sorted := slices.Clone(p)
		slices.Sort(sorted)
		require.Equal(t, in, sorted)
		distinct[fmtInts(p)] = true
	}
	assert.Greater(t, len(distinct), 100)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, in, "input must not be modified")
}

func TestSample_Distinct(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e"}
	values, err := Take(Sample(in, 3), NewContext(1), 500)
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, v := range values {
		require.Len(t, v, 3)
		assert.Len(t, uniq(v), 3)
		for _, s := range v {
			seen[s]++
		}
	}
	assert.Len(t, seen, len(in))
}

func TestSampleOf_Bounds(t *testing.T) {
	in := []int{10, 20, 30, 40}
	values, err := Take(SampleOf(in, 1, 3), NewContext(5), 300)
	require.NoError(t, err)
	lengths := make(map[int]bool)
	for _, v := range values {
		assert.GreaterOrEqual(t, len(v), 1)
		assert.LessOrEqual(t, len(v), 3)
		lengths[len(v)] = true
	}
	assert.Len(t, lengths, 3)

	empty, err := Take(Sample([]int{}, 0), NewContext(5), 3)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{}, {}, {}}, empty)
}

func TestSample_Preconditions(t *testing.T) {
	requirePrecondition(t, func() { Sample([]int{1}, 2) })
	requirePrecondition(t, func() { Sample([]int{1}, -1) })
	requirePrecondition(t, func() { SampleOf([]int{1, 2}, 2, 1) })
	requirePrecondition(t, func() { SampleOf([]int{1, 2}, 0, 3) })
}

func fmtInts(xs []int) string {
	b := make([]byte, 0, len(xs))
	for _, x := range xs {
		b = append(b, byte('0'+x))
	}
	return string(b)
}

func uniq[T comparable](xs []T) map[T]bool {
	m := make(map[T]bool)
	for _, x := range xs {
		m[x] = true
	}
	return m
}
