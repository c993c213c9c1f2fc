package gen

import (
	"math"
	"slices"
)

// eitherScale is the fixed denominator Either uses to turn a probability
// into integer weights.
const eitherScale = 10_000

// WeightedGenerator pairs a generator with its relative likelihood.
type WeightedGenerator[T any] struct {
	Weight int
	Gen    Generator[T]
}

// WeightedValue pairs a constant value with its relative likelihood.
type WeightedValue[T any] struct {
	Weight int
	Value  T
}

// Weigh is shorthand for WeightedGenerator{Weight: w, Gen: g}.
func Weigh[T any](w int, g Generator[T]) WeightedGenerator[T] {
	return WeightedGenerator[T]{Weight: w, Gen: g}
}

// Weighted picks one of choices with probability Weight/sum(Weights) and
// draws from it. Panics with ErrPrecondition if choices is empty or any
// weight is not positive.
func Weighted[T any](choices ...WeightedGenerator[T]) Generator[T] {
	if len(choices) == 0 {
		precondition("Weighted called with no choices")
	}
	var total uint64
	for i, c := range choices {
		if c.Weight <= 0 {
			precondition("Weighted weight %d at index %d must be positive", c.Weight, i)
		}
		total += uint64(c.Weight)
	}
	choices = slices.Clone(choices)

	return New(func(ctx Context) (T, Context) {
		roll, ctx := ctx.Draw(total)
		var cumulative uint64
		for _, c := range choices {
			cumulative += uint64(c.Weight)
			if roll < cumulative {
				return c.Gen.Generate(ctx)
			}
		}
		// roll < total, so the loop always returns.
		panic("gen: Weighted roll out of range")
	})
}

// WeightedValues is Weighted over constants.
func WeightedValues[T any](values ...WeightedValue[T]) Generator[T] {
	choices := make([]WeightedGenerator[T], len(values))
	for i, v := range values {
		choices[i] = WeightedGenerator[T]{Weight: v.Weight, Gen: Constant(v.Value)}
	}
	return Weighted(choices...)
}

// One picks one of gens uniformly and draws from it.
func One[T any](gens ...Generator[T]) Generator[T] {
	if len(gens) == 0 {
		precondition("One called with no generators")
	}
	choices := make([]WeightedGenerator[T], len(gens))
	for i, g := range gens {
		choices[i] = Weigh(1, g)
	}
	return Weighted(choices...)
}

// OneOf picks one of values uniformly.
func OneOf[T any](values ...T) Generator[T] {
	if len(values) == 0 {
		precondition("OneOf called with no values")
	}
	gens := make([]Generator[T], len(values))
	for i, v := range values {
		gens[i] = Constant(v)
	}
	return One(gens...)
}

// Either draws from right with probability rightProbability, otherwise
// from left. Panics with ErrPrecondition unless 0 <= rightProbability <= 1.
func Either[T any](left, right Generator[T], rightProbability float64) Generator[T] {
	if math.IsNaN(rightProbability) || rightProbability < 0 || rightProbability > 1 {
		precondition("Either probability %v outside [0, 1]", rightProbability)
	}
	rightWeight := int(math.Round(rightProbability * eitherScale))
	switch {
	case rightWeight == 0:
		return left
	case rightWeight == eitherScale:
		return right
	}
	return Weighted(
		Weigh(eitherScale-rightWeight, left),
		Weigh(rightWeight, right),
	)
}
