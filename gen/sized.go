package gen

// Sized builds a generator from the current size hint.
func Sized[T any](f func(size int) Generator[T]) Generator[T] {
	return New(func(ctx Context) (T, Context) {
		return f(ctx.Size).Generate(ctx)
	})
}

// Resize runs g with a fixed size hint. The returned Context carries the
// caller's size again.
func Resize[T any](g Generator[T], size int) Generator[T] {
	return Scale(g, func(int) int { return size })
}

// Scale runs g with the size hint transformed by f.
func Scale[T any](g Generator[T], f func(size int) int) Generator[T] {
	return New(func(ctx Context) (T, Context) {
		size := ctx.Size
		v, ctx := g.Generate(ctx.WithSize(f(size)))
		return v, ctx.WithSize(size)
	})
}

// Shrunk halves the size hint for g. Recursive generators wrap their
// self-reference in Shrunk so nesting depth is bounded by log2(size).
func Shrunk[T any](g Generator[T]) Generator[T] {
	return Scale(g, func(size int) int { return size / 2 })
}
