package gen

// Shuffle yields permutations of values. values is copied.
func Shuffle[T any](values []T) Generator[[]T] {
	values = append([]T(nil), values...)
	return Sample(values, len(values))
}

// Sample yields n distinct elements of values (distinct by position), in
// random order. Panics with ErrPrecondition unless 0 <= n <= len(values).
func Sample[T any](values []T, n int) Generator[[]T] {
	if n < 0 || n > len(values) {
		precondition("Sample of %d from %d values", n, len(values))
	}
	values = append([]T(nil), values...)
	return New(func(ctx Context) ([]T, Context) {
		// Partial Fisher-Yates over indices.
		indices := make([]int, len(values))
		for i := range indices {
			indices[i] = i
		}
		result := make([]T, n)
		for i := range n {
			var j uint64
			j, ctx = ctx.Draw(uint64(len(indices) - i))
			k := i + int(j)
			indices[i], indices[k] = indices[k], indices[i]
			result[i] = values[indices[i]]
		}
		return result, ctx
	})
}

// SampleOf yields between minN and maxN distinct elements of values.
func SampleOf[T any](values []T, minN, maxN int) Generator[[]T] {
	if minN < 0 || minN > maxN || maxN > len(values) {
		precondition("SampleOf bounds [%d, %d] invalid for %d values", minN, maxN, len(values))
	}
	return FlatMap(InRange(minN, maxN), func(n int) Generator[[]T] {
		return Sample(values, n)
	})
}
