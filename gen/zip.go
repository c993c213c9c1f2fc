package gen

// Tuple2 holds one value from each of 2 generators, in draw order.
type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

// Unpack returns the tuple's values.
func (t Tuple2[A, B]) Unpack() (A, B) {
	return t.V1, t.V2
}

// Tuple3 holds one value from each of 3 generators, in draw order.
type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// Unpack returns the tuple's values.
func (t Tuple3[A, B, C]) Unpack() (A, B, C) {
	return t.V1, t.V2, t.V3
}

// Tuple4 holds one value from each of 4 generators, in draw order.
type Tuple4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// Unpack returns the tuple's values.
func (t Tuple4[A, B, C, D]) Unpack() (A, B, C, D) {
	return t.V1, t.V2, t.V3, t.V4
}

// Tuple5 holds one value from each of 5 generators, in draw order.
type Tuple5[A, B, C, D, E any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

// Unpack returns the tuple's values.
func (t Tuple5[A, B, C, D, E]) Unpack() (A, B, C, D, E) {
	return t.V1, t.V2, t.V3, t.V4, t.V5
}

// Tuple6 holds one value from each of 6 generators, in draw order.
type Tuple6[A, B, C, D, E, F any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
}

// Unpack returns the tuple's values.
func (t Tuple6[A, B, C, D, E, F]) Unpack() (A, B, C, D, E, F) {
	return t.V1, t.V2, t.V3, t.V4, t.V5, t.V6
}

// Tuple7 holds one value from each of 7 generators, in draw order.
type Tuple7[A, B, C, D, E, F, G any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
}

// Unpack returns the tuple's values.
func (t Tuple7[A, B, C, D, E, F, G]) Unpack() (A, B, C, D, E, F, G) {
	return t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7
}

// Tuple8 holds one value from each of 8 generators, in draw order.
type Tuple8[A, B, C, D, E, F, G, H any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
	V8 H
}

// Unpack returns the tuple's values.
func (t Tuple8[A, B, C, D, E, F, G, H]) Unpack() (A, B, C, D, E, F, G, H) {
	return t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8
}

// Tuple9 holds one value from each of 9 generators, in draw order.
type Tuple9[A, B, C, D, E, F, G, H, I any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
	V8 H
	V9 I
}

// Unpack returns the tuple's values.
func (t Tuple9[A, B, C, D, E, F, G, H, I]) Unpack() (A, B, C, D, E, F, G, H, I) {
	return t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8, t.V9
}

// Tuple10 holds one value from each of 10 generators, in draw order.
type Tuple10[A, B, C, D, E, F, G, H, I, J any] struct {
	V1  A
	V2  B
	V3  C
	V4  D
	V5  E
	V6  F
	V7  G
	V8  H
	V9  I
	V10 J
}

// Unpack returns the tuple's values.
func (t Tuple10[A, B, C, D, E, F, G, H, I, J]) Unpack() (A, B, C, D, E, F, G, H, I, J) {
	return t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8, t.V9, t.V10
}

// Zip2 draws from each generator left to right, threading the Context.
func Zip2[A, B any](g1 Generator[A], g2 Generator[B]) Generator[Tuple2[A, B]] {
	return New(func(ctx Context) (Tuple2[A, B], Context) {
		var t Tuple2[A, B]
		t.V1, ctx = g1.Generate(ctx)
		t.V2, ctx = g2.Generate(ctx)
		return t, ctx
	})
}

// Zip3 draws from each generator left to right, threading the Context.
func Zip3[A, B, C any](g1 Generator[A], g2 Generator[B], g3 Generator[C]) Generator[Tuple3[A, B, C]] {
	return New(func(ctx Context) (Tuple3[A, B, C], Context) {
		var t Tuple3[A, B, C]
		t.V1, ctx = g1.Generate(ctx)
		t.V2, ctx = g2.Generate(ctx)
		t.V3, ctx = g3.Generate(ctx)
		return t, ctx
	})
}

// Zip4 draws from each generator left to right, threading the Context.
func Zip4[A, B, C, D any](g1 Generator[A], g2 Generator[B], g3 Generator[C], g4 Generator[D]) Generator[Tuple4[A, B, C, D]] {
	return New(func(ctx Context) (Tuple4[A, B, C, D], Context) {
		var t Tuple4[A, B, C, D]
		t.V1, ctx = g1.Generate(ctx)
		t.V2, ctx = g2.Generate(ctx)
		t.V3, ctx = g3.Generate(ctx)
		t.V4, ctx = g4.Generate(ctx)
		return t, ctx
	})
}

// Zip5 draws from each generator left to right, threading the Context.
func Zip5[A, B, C, D, E any](g1 Generator[A], g2 Generator[B], g3 Generator[C], g4 Generator[D], g5 Generator[E]) Generator[Tuple5[A, B, C, D, E]] {
	return New(func(ctx Context) (Tuple5[A, B, C, D, E], Context) {
		var t Tuple5[A, B, C, D, E]
		t.V1, ctx = g1.Generate(ctx)
		t.V2, ctx = g2.Generate(ctx)
		t.V3, ctx = g3.Generate(ctx)
		t.V4, ctx = g4.Generate(ctx)
		t.V5, ctx = g5.Generate(ctx)
		return t, ctx
	})
}

// Zip6 draws from each generator left to right, threading the Context.
func Zip6[A, B, C, D, E, F any](g1 Generator[A], g2 Generator[B], g3 Generator[C], g4 Generator[D], g5 Generator[E], g6 Generator[F]) Generator[Tuple6[A, B, C, D, E, F]] {
	return New(func(ctx Context) (Tuple6[A, B, C, D, E, F], Context) {
		var t Tuple6[A, B, C, D, E, F]
		t.V1, ctx = g1.Generate(ctx)
		t.V2, ctx = g2.Generate(ctx)
		t.V3, ctx = g3.Generate(ctx)
		t.V4, ctx = g4.Generate(ctx)
		t.V5, ctx = g5.Generate(ctx)
		t.V6, ctx = g6.Generate(ctx)
		return t, ctx
	})
}

// Zip7 draws from each generator left to right, threading the Context.
func Zip7[A, B, C, D, E, F, G any](g1 Generator[A], g2 Generator[B], g3 Generator[C], g4 Generator[D], g5 Generator[E], g6 Generator[F], g7 Generator[G]) Generator[Tuple7[A, B, C, D, E, F, G]] {
	return New(func(ctx Context) (Tuple7[A, B, C, D, E, F, G], Context) {
		var t Tuple7[A, B, C, D, E, F, G]
		t.V1, ctx = g1.Generate(ctx)
		t.V2, ctx = g2.Generate(ctx)
		t.V3, ctx = g3.Generate(ctx)
		t.V4, ctx = g4.Generate(ctx)
		t.V5, ctx = g5.Generate(ctx)
		t.V6, ctx = g6.Generate(ctx)
		t.V7, ctx = g7.Generate(ctx)
		return t, ctx
	})
}

// Zip8 draws from each generator left to right, threading the Context.
func Zip8[A, B, C, D, E, F, G, H any](g1 Generator[A], g2 Generator[B], g3 Generator[C], g4 Generator[D], g5 Generator[E], g6 Generator[F], g7 Generator[G], g8 Generator[H]) Generator[Tuple8[A, B, C, D, E, F, G, H]] {
	return New(func(ctx Context) (Tuple8[A, B, C, D, E, F, G, H], Context) {
		var t Tuple8[A, B, C, D, E, F, G, H]
		t.V1, ctx = g1.Generate(ctx)
		t.V2, ctx = g2.Generate(ctx)
		t.V3, ctx = g3.Generate(ctx)
		t.V4, ctx = g4.Generate(ctx)
		t.V5, ctx = g5.Generate(ctx)
		t.V6, ctx = g6.Generate(ctx)
		t.V7, ctx = g7.Generate(ctx)
		t.V8, ctx = g8.Generate(ctx)
		return t, ctx
	})
}

// Zip9 draws from each generator left to right, threading the Context.
func Zip9[A, B, C, D, E, F, G, H, I any](g1 Generator[A], g2 Generator[B], g3 Generator[C], g4 Generator[D], g5 Generator[E], g6 Generator[F], g7 Generator[G], g8 Generator[H], g9 Generator[I]) Generator[Tuple9[A, B, C, D, E, F, G, H, I]] {
	return New(func(ctx Context) (Tuple9[A, B, C, D, E, F, G, H, I], Context) {
		var t Tuple9[A, B, C, D, E, F, G, H, I]
		t.V1, ctx = g1.Generate(ctx)
		t.V2, ctx = g2.Generate(ctx)
		t.V3, ctx = g3.Generate(ctx)
		t.V4, ctx = g4.Generate(ctx)
		t.V5, ctx = g5.Generate(ctx)
		t.V6, ctx = g6.Generate(ctx)
		t.V7, ctx = g7.Generate(ctx)
		t.V8, ctx = g8.Generate(ctx)
		t.V9, ctx = g9.Generate(ctx)
		return t, ctx
	})
}

// Zip10 draws from each generator left to right, threading the Context.
func Zip10[A, B, C, D, E, F, G, H, I, J any](g1 Generator[A], g2 Generator[B], g3 Generator[C], g4 Generator[D], g5 Generator[E], g6 Generator[F], g7 Generator[G], g8 Generator[H], g9 Generator[I], g10 Generator[J]) Generator[Tuple10[A, B, C, D, E, F, G, H, I, J]] {
	return New(func(ctx Context) (Tuple10[A, B, C, D, E, F, G, H, I, J], Context) {
		var t Tuple10[A, B, C, D, E, F, G, H, I, J]
		t.V1, ctx = g1.Generate(ctx)
		t.V2, ctx = g2.Generate(ctx)
		t.V3, ctx = g3.Generate(ctx)
		t.V4, ctx = g4.Generate(ctx)
		t.V5, ctx = g5.Generate(ctx)
		t.V6, ctx = g6.Generate(ctx)
		t.V7, ctx = g7.Generate(ctx)
		t.V8, ctx = g8.Generate(ctx)
		t.V9, ctx = g9.Generate(ctx)
		t.V10, ctx = g10.Generate(ctx)
		return t, ctx
	})
}
