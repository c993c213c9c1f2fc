package gen

import "iter"

// Take draws n values from g. n <= 0 means ctx.Iterations.
//
// Value i is drawn from the i-th split of ctx's source, so the sequence
// depends only on ctx and g. The same ctx always yields the same values.
// A Filter running out of retries aborts the whole call with ErrExhausted.
func Take[T any](g Generator[T], ctx Context, n int) ([]T, error) {
	var values []T
	err := ForEach(g, ctx, n, func(v T) error {
		values = append(values, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

// ForEach draws values one at a time and hands them to body, stopping at
// the first error body returns. n <= 0 means ctx.Iterations.
// No value is drawn after body fails.
func ForEach[T any](g Generator[T], ctx Context, n int, body func(T) error) error {
	if n <= 0 {
		n = ctx.Iterations
	}

	for range n {
		var draw Context
		ctx, draw = ctx.Split()
		v, err := generate(g, draw)
		if err != nil {
			return err
		}
		if err := body(v); err != nil {
			return err
		}
	}
	return nil
}

// generate draws one value, turning exhaustion into an error. Panics from
// the caller's body are not recovered here.
func generate[T any](g Generator[T], ctx Context) (v T, err error) {
	defer recoverExhausted(&err)
	v, _ = g.Generate(ctx)
	return v, nil
}

// All is the iterator form of Take. Exhaustion panics with *ExhaustedError
// since an iterator has no error channel.
func All[T any](g Generator[T], ctx Context, n int) iter.Seq[T] {
	if n <= 0 {
		n = ctx.Iterations
	}
	return func(yield func(T) bool) {
		ctx := ctx
		for range n {
			var draw Context
			ctx, draw = ctx.Split()
			v, _ := g.Generate(draw)
			if !yield(v) {
				return
			}
		}
	}
}
