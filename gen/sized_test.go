package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tree struct {
	children []tree
}

func (t tree) depth() int {
	d := 0
	for _, c := range t.children {
		d = max(d, c.depth())
	}
	return d + 1
}

func treeGen() Generator[tree] {
	return Sized(func(size int) Generator[tree] {
		if size == 0 {
			return Constant(tree{})
		}
		return Map(SliceOfN(Shrunk(treeGen()), 1, 3), func(children []tree) tree {
			return tree{children: children}
		})
	})
}

func TestShrunk_BoundsRecursion(t *testing.T) {
	trees, err := Take(treeGen(), NewContext(13), 50)
	require.NoError(t, err)
	// 30 -> 15 -> 7 -> 3 -> 1 -> 0
	for _, tr := range trees {
		assert.Equal(t, 6, tr.depth())
	}
}

func TestSliceOf_RespectsSize(t *testing.T) {
	values, err := Take(SliceOf(Int()), NewContext(2).WithSize(5), 300)
	require.NoError(t, err)
	longest := 0
	for _, v := range values {
		require.LessOrEqual(t, len(v), 5)
		for _, n := range v {
			require.InDelta(t, 0, n, 5)
		}
		longest = max(longest, len(v))
	}
	assert.Equal(t, 5, longest)
}

func TestResize_RestoresCallerSize(t *testing.T) {
	ctx := NewContext(4).WithSize(9)
	v, after := Resize(SliceOf(Bool()), 2).Generate(ctx)
	assert.LessOrEqual(t, len(v), 2)
	assert.Equal(t, 9, after.Size)
}

func TestSliceOfN_InvalidBounds(t *testing.T) {
	requirePrecondition(t, func() { SliceOfN(Int(), 3, 1) })
	requirePrecondition(t, func() { SliceOfN(Int(), -1, 1) })
}

func TestMapOf_SizeBound(t *testing.T) {
	maps, err := Take(MapOf(From(0, 1000), String()), NewContext(6).WithSize(8), 100)
	require.NoError(t, err)
	for _, m := range maps {
		require.LessOrEqual(t, len(m), 8)
	}
}

func TestContext_Split(t *testing.T) {
	ctx := NewContext(42).WithSize(7).WithIterations(3)
	parent, child := ctx.Split()
	assert.Equal(t, int64(42), parent.OriginalSeed)
	assert.Equal(t, int64(42), child.OriginalSeed)
	assert.Equal(t, 7, child.Size)
	assert.NotEqual(t, parent.Source, child.Source)
}

func TestContext_FilterBudget(t *testing.T) {
	assert.Equal(t, 10_000, NewContext(1).FilterBudget())
	assert.Equal(t, 100, NewContext(1).WithIterations(0).FilterBudget())
	assert.Equal(t, 3, NewContext(1).WithMaxFilterRetries(3).FilterBudget())
}

func TestDefaultContext(t *testing.T) {
	ctx := DefaultContext()
	assert.Equal(t, DefaultSize, ctx.Size)
	assert.Equal(t, DefaultIterations, ctx.Iterations)
	assert.Equal(t, NewContext(ctx.OriginalSeed).Source, ctx.Source)
}

func TestFloat64Range(t *testing.T) {
	values, err := Take(Float64Range(-2.5, 4), NewContext(10), 1000)
	require.NoError(t, err)
	for _, v := range values {
		require.GreaterOrEqual(t, v, -2.5)
		require.Less(t, v, 4.0)
	}
	requirePrecondition(t, func() { Float64Range(1, 1) })
	requirePrecondition(t, func() { Float64Range(2, 1) })
}
