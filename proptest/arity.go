package proptest

import "github.com/magaliet/genything/gen"

// Check2 checks body against 2 independently drawn values.
func Check2[A, B any](t TestingT, name string, cfg Config, g1 gen.Generator[A], g2 gen.Generator[B], body func(*T, A, B)) Outcome[gen.Tuple2[A, B]] {
	t.Helper()
	return Check(t, name, cfg, gen.Zip2(g1, g2), func(pt *T, v gen.Tuple2[A, B]) {
		body(pt, v.V1, v.V2)
	})
}

// Check3 checks body against 3 independently drawn values.
func Check3[A, B, C any](t TestingT, name string, cfg Config, g1 gen.Generator[A], g2 gen.Generator[B], g3 gen.Generator[C], body func(*T, A, B, C)) Outcome[gen.Tuple3[A, B, C]] {
	t.Helper()
	return Check(t, name, cfg, gen.Zip3(g1, g2, g3), func(pt *T, v gen.Tuple3[A, B, C]) {
		body(pt, v.V1, v.V2, v.V3)
	})
}

// Check4 checks body against 4 independently drawn values.
func Check4[A, B, C, D any](t TestingT, name string, cfg Config, g1 gen.Generator[A], g2 gen.Generator[B], g3 gen.Generator[C], g4 gen.Generator[D], body func(*T, A, B, C, D)) Outcome[gen.Tuple4[A, B, C, D]] {
	t.Helper()
	return Check(t, name, cfg, gen.Zip4(g1, g2, g3, g4), func(pt *T, v gen.Tuple4[A, B, C, D]) {
		body(pt, v.V1, v.V2, v.V3, v.V4)
	})
}

// Check5 checks body against 5 independently drawn values.
func Check5[A, B, C, D, E any](t TestingT, name string, cfg Config, g1 gen.Generator[A], g2 gen.Generator[B], g3 gen.Generator[C], g4 gen.Generator[D], g5 gen.Generator[E], body func(*T, A, B, C, D, E)) Outcome[gen.Tuple5[A, B, C, D, E]] {
	t.Helper()
	return Check(t, name, cfg, gen.Zip5(g1, g2, g3, g4, g5), func(pt *T, v gen.Tuple5[A, B, C, D, E]) {
		body(pt, v.V1, v.V2, v.V3, v.V4, v.V5)
	})
}

// Check6 checks body against 6 independently drawn values.
func Check6[A, B, C, D, E, F any](t TestingT, name string, cfg Config, g1 gen.Generator[A], g2 gen.Generator[B], g3 gen.Generator[C], g4 gen.Generator[D], g5 gen.Generator[E], g6 gen.Generator[F], body func(*T, A, B, C, D, E, F)) Outcome[gen.Tuple6[A, B, C, D, E, F]] {
	t.Helper()
	return Check(t, name, cfg, gen.Zip6(g1, g2, g3, g4, g5, g6), func(pt *T, v gen.Tuple6[A, B, C, D, E, F]) {
		body(pt, v.V1, v.V2, v.V3, v.V4, v.V5, v.V6)
	})
}

// Check7 checks body against 7 independently drawn values.
func Check7[A, B, C, D, E, F, G any](t TestingT, name string, cfg Config, g1 gen.Generator[A], g2 gen.Generator[B], g3 gen.Generator[C], g4 gen.Generator[D], g5 gen.Generator[E], g6 gen.Generator[F], g7 gen.Generator[G], body func(*T, A, B, C, D, E, F, G)) Outcome[gen.Tuple7[A, B, C, D, E, F, G]] {
	t.Helper()
	return Check(t, name, cfg, gen.Zip7(g1, g2, g3, g4, g5, g6, g7), func(pt *T, v gen.Tuple7[A, B, C, D, E, F, G]) {
		body(pt, v.V1, v.V2, v.V3, v.V4, v.V5, v.V6, v.V7)
	})
}

// Check8 checks body against 8 independently drawn values.
func Check8[A, B, C, D, E, F, G, H any](t TestingT, name string, cfg Config, g1 gen.Generator[A], g2 gen.Generator[B], g3 gen.Generator[C], g4 gen.Generator[D], g5 gen.Generator[E], g6 gen.Generator[F], g7 gen.Generator[G], g8 gen.Generator[H], body func(*T, A, B, C, D, E, F, G, H)) Outcome[gen.Tuple8[A, B, C, D, E, F, G, H]] {
	t.Helper()
	return Check(t, name, cfg, gen.Zip8(g1, g2, g3, g4, g5, g6, g7, g8), func(pt *T, v gen.Tuple8[A, B, C, D, E, F, G, H]) {
		body(pt, v.V1, v.V2, v.V3, v.V4, v.V5, v.V6, v.V7, v.V8)
	})
}

// Check9 checks body against 9 independently drawn values.
func Check9[A, B, C, D, E, F, G, H, I any](t TestingT, name string, cfg Config, g1 gen.Generator[A], g2 gen.Generator[B], g3 gen.Generator[C], g4 gen.Generator[D], g5 gen.Generator[E], g6 gen.Generator[F], g7 gen.Generator[G], g8 gen.Generator[H], g9 gen.Generator[I], body func(*T, A, B, C, D, E, F, G, H, I)) Outcome[gen.Tuple9[A, B, C, D, E, F, G, H, I]] {
	t.Helper()
	return Check(t, name, cfg, gen.Zip9(g1, g2, g3, g4, g5, g6, g7, g8, g9), func(pt *T, v gen.Tuple9[A, B, C, D, E, F, G, H, I]) {
		body(pt, v.V1, v.V2, v.V3, v.V4, v.V5, v.V6, v.V7, v.V8, v.V9)
	})
}

// Check10 checks body against 10 independently drawn values.
func Check10[A, B, C, D, E, F, G, H, I, J any](t TestingT, name string, cfg Config, g1 gen.Generator[A], g2 gen.Generator[B], g3 gen.Generator[C], g4 gen.Generator[D], g5 gen.Generator[E], g6 gen.Generator[F], g7 gen.Generator[G], g8 gen.Generator[H], g9 gen.Generator[I], g10 gen.Generator[J], body func(*T, A, B, C, D, E, F, G, H, I, J)) Outcome[gen.Tuple10[A, B, C, D, E, F, G, H, I, J]] {
	t.Helper()
	return Check(t, name, cfg, gen.Zip10(g1, g2, g3, g4, g5, g6, g7, g8, g9, g10), func(pt *T, v gen.Tuple10[A, B, C, D, E, F, G, H, I, J]) {
		body(pt, v.V1, v.V2, v.V3, v.V4, v.V5, v.V6, v.V7, v.V8, v.V9, v.V10)
	})
}
