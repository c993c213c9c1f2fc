package gen

import "strings"

// Charsets for string generation
const (
	CharsetAlpha      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetAlphaLower = "abcdefghijklmnopqrstuvwxyz"
	CharsetDigits     = "0123456789"
	CharsetAlphaNum   = CharsetAlpha + CharsetDigits
	CharsetHex        = "0123456789abcdef"
	CharsetPrintable  = CharsetAlphaNum + " !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// =============================================================================
// Scalars
// =============================================================================

// Bool yields true and false with equal probability.
func Bool() Generator[bool] {
	return Map(From(0, 2), func(i int) bool { return i == 1 })
}

// Int yields ints in [-size, size].
func Int() Generator[int] {
	return Sized(func(size int) Generator[int] {
		return InRange(-size, size)
	})
}

// Int64 yields any int64.
func Int64() Generator[int64] {
	return New(func(ctx Context) (int64, Context) {
		v, ctx := ctx.Next()
		return int64(v), ctx
	})
}

// Float64 yields values in [0.0, 1.0).
func Float64() Generator[float64] {
	return New(func(ctx Context) (float64, Context) {
		return ctx.Float64()
	})
}

// Float64Range yields values in [lo, hi).
func Float64Range(lo, hi float64) Generator[float64] {
	if !(lo < hi) {
		precondition("Float64Range range [%v, %v) is empty", lo, hi)
	}
	return Map(Float64(), func(f float64) float64 { return lo + f*(hi-lo) })
}

// =============================================================================
// Strings
// =============================================================================

// StringFrom yields strings of length [0, size] over charset.
func StringFrom(charset string) Generator[string] {
	if charset == "" {
		precondition("StringFrom called with empty charset")
	}
	char := From(0, len(charset))
	return Map(SliceOf(char), func(idx []int) string {
		var sb strings.Builder
		sb.Grow(len(idx))
		for _, i := range idx {
			sb.WriteByte(charset[i])
		}
		return sb.String()
	})
}

// String yields printable ASCII strings of length [0, size].
func String() Generator[string] {
	return StringFrom(CharsetPrintable)
}

// Identifier yields a lowercase letter followed by up to size-1 lowercase
// alphanumerics.
func Identifier() Generator[string] {
	return Compose(func(b *Builder) string {
		head := Draw(b, OneOf([]byte(CharsetAlphaLower)...))
		tail := Draw(b, Scale(StringFrom(CharsetAlphaLower+CharsetDigits), func(n int) int {
			return max(n-1, 0)
		}))
		return string(head) + tail
	})
}

// =============================================================================
// Collections
// =============================================================================

// SliceOf yields slices of length [0, size].
func SliceOf[T any](g Generator[T]) Generator[[]T] {
	return Sized(func(size int) Generator[[]T] {
		return SliceOfN(g, 0, size)
	})
}

// SliceOfN yields slices of length [minLen, maxLen].
func SliceOfN[T any](g Generator[T], minLen, maxLen int) Generator[[]T] {
	if minLen < 0 || minLen > maxLen {
		precondition("SliceOfN bounds [%d, %d] are invalid", minLen, maxLen)
	}
	length := InRange(minLen, maxLen)
	return New(func(ctx Context) ([]T, Context) {
		n, ctx := length.Generate(ctx)
		result := make([]T, n)
		for i := range result {
			result[i], ctx = g.Generate(ctx)
		}
		return result, ctx
	})
}

// MapOf yields maps with up to size entries. Duplicate keys collapse, so
// the map may be smaller.
func MapOf[K comparable, V any](key Generator[K], val Generator[V]) Generator[map[K]V] {
	return Map(SliceOf(Zip2(key, val)), func(entries []Tuple2[K, V]) map[K]V {
		m := make(map[K]V, len(entries))
		for _, e := range entries {
			m[e.V1] = e.V2
		}
		return m
	})
}

// Pick yields elements of values uniformly.
func Pick[T any](values []T) Generator[T] {
	if len(values) == 0 {
		precondition("Pick called with empty slice")
	}
	values = append([]T(nil), values...)
	return Map(From(0, len(values)), func(i int) T { return values[i] })
}

// Pointer yields nil with probability nilChance, otherwise a pointer to a
// value drawn from g.
func Pointer[T any](g Generator[T], nilChance float64) Generator[*T] {
	some := Map(g, func(v T) *T { return &v })
	return Either(some, Constant[*T](nil), nilChance)
}
