package bsongen

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/magaliet/genything/gen"
)

const maxFields = 8

func asAny[T any](g gen.Generator[T]) gen.Generator[any] {
	return gen.Map(g, func(v T) any { return v })
}

// Value yields BSON values: scalars, arrays (bson.A) and nested documents
// (bson.D). Each level of nesting halves the size, and at size 1 or less
// only scalars are produced.
func Value() gen.Generator[any] {
	return gen.Sized(func(size int) gen.Generator[any] {
		scalar := gen.One(
			asAny(gen.Int64()),
			asAny(gen.Map(gen.Int(), func(n int) int32 { return int32(n) })),
			asAny(gen.String()),
			asAny(gen.Bool()),
			asAny(gen.Float64()),
			asAny(ObjectID()),
			asAny(Timestamp(365*24*time.Hour)),
			gen.Constant[any](nil),
		)
		if size <= 1 {
			return scalar
		}
		array := gen.Map(gen.SliceOf(Value()), func(vs []any) any { return bson.A(vs) })
		nested := gen.One(asAny(Document()), array)
		return gen.Weighted(
			gen.Weigh(3, scalar),
			gen.Weigh(1, gen.Shrunk(nested)),
		)
	})
}

// Document yields documents of up to min(size, 8) fields with distinct
// identifier keys.
func Document() gen.Generator[bson.D] {
	key := gen.Resize(gen.Identifier(), 8)
	return gen.New(func(ctx gen.Context) (bson.D, gen.Context) {
		n, ctx := gen.InRange(0, min(ctx.Size, maxFields)).Generate(ctx)
		doc := make(bson.D, 0, n)
		seen := make(map[string]bool, n)
		for range n {
			var (
				k string
				v any
			)
			k, ctx = key.Generate(ctx)
			v, ctx = Value().Generate(ctx)
			if seen[k] {
				continue
			}
			seen[k] = true
			doc = append(doc, bson.E{Key: k, Value: v})
		}
		return doc, ctx
	})
}

// Depth returns the nesting depth of a document or array value. Scalars
// have depth 0.
func Depth(v any) int {
	var inner []any
	switch v := v.(type) {
	case bson.D:
		for _, e := range v {
			inner = append(inner, e.Value)
		}
	case bson.A:
		inner = v
	default:
		return 0
	}
	deepest := 0
	for _, x := range inner {
		deepest = max(deepest, Depth(x))
	}
	return deepest + 1
}
