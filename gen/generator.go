// Package gen provides composable, reproducible generators of test data.
//
// A Generator[T] is a pure recipe: given a Context it returns a value and the
// advanced Context. Generators never mutate their inputs, so they can be
// declared once at package scope and reused by any number of runs.
//
// Basic usage:
//
//	var toppings = gen.Map(gen.From(0, 2), func(i int) string {
//	    return []string{"cheese", "pepperoni"}[i]
//	})
//
//	values, err := gen.Take(toppings, gen.NewContext(42), 5)
package gen

import "golang.org/x/exp/constraints"

// Generator describes how to produce a T from a Context.
type Generator[T any] struct {
	fn func(Context) (T, Context)
}

// New wraps fn as a Generator. fn must be deterministic in its Context and
// return the Context it advanced.
func New[T any](fn func(Context) (T, Context)) Generator[T] {
	if fn == nil {
		precondition("New called with nil function")
	}
	return Generator[T]{fn: fn}
}

// Generate draws one value.
func (g Generator[T]) Generate(ctx Context) (T, Context) {
	if g.fn == nil {
		precondition("Generate called on zero Generator")
	}
	return g.fn(ctx)
}

// Constant always yields v and consumes no randomness.
func Constant[T any](v T) Generator[T] {
	return New(func(ctx Context) (T, Context) {
		return v, ctx
	})
}

// From yields integers uniformly from the half-open range [lo, hi).
// Panics with ErrPrecondition if the range is empty.
func From[I constraints.Integer](lo, hi I) Generator[I] {
	if hi <= lo {
		precondition("From range [%v, %v) is empty", lo, hi)
	}
	span := uint64(hi) - uint64(lo)
	return New(func(ctx Context) (I, Context) {
		v, ctx := ctx.Draw(span)
		return lo + I(v), ctx
	})
}

// InRange yields integers uniformly from the closed range [lo, hi].
// Panics with ErrPrecondition if lo > hi.
func InRange[I constraints.Integer](lo, hi I) Generator[I] {
	if hi < lo {
		precondition("InRange range [%v, %v] is empty", lo, hi)
	}
	span := uint64(hi) - uint64(lo) + 1
	return New(func(ctx Context) (I, Context) {
		if span == 0 {
			// The range covers all 64 bits.
			v, ctx := ctx.Next()
			return lo + I(v), ctx
		}
		v, ctx := ctx.Draw(span)
		return lo + I(v), ctx
	})
}

// Map transforms every value g produces. It consumes exactly the randomness g does.
func Map[T, U any](g Generator[T], f func(T) U) Generator[U] {
	return New(func(ctx Context) (U, Context) {
		v, ctx := g.Generate(ctx)
		return f(v), ctx
	})
}

// FlatMap draws from g, then from the generator f returns for that value.
// The second draw continues from the Context the first one advanced.
func FlatMap[T, U any](g Generator[T], f func(T) Generator[U]) Generator[U] {
	return New(func(ctx Context) (U, Context) {
		v, ctx := g.Generate(ctx)
		return f(v).Generate(ctx)
	})
}

// Filter draws from g until pred accepts a value. Each retry continues from
// the advanced Context. After ctx.FilterBudget() rejections the draw fails
// with ErrExhausted.
func Filter[T any](g Generator[T], pred func(T) bool) Generator[T] {
	return New(func(ctx Context) (T, Context) {
		budget := ctx.FilterBudget()
		for range budget {
			var v T
			v, ctx = g.Generate(ctx)
			if pred(v) {
				return v, ctx
			}
		}
		panic(&ExhaustedError{Retries: budget})
	})
}
