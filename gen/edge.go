package gen

import "math"

var edgeInts = []int{
	0, 1, -1,
	127, -128, 255, 256, 65535, 65536,
	math.MaxInt32, math.MinInt32,
	math.MaxInt, math.MinInt,
}

var edgeStrings = []string{
	"", " ", "  ", "\t", "\n", "\r\n",
	"'", "''", `"`, `""`, `\`, `\\`,
	"it's", `say "hello"`, "line1\nline2", "col1\tcol2",
	"NULL", "null", "true", "false",
	"0", "-1", "123.456",
	"日本語", "中文", "🎉", "hello🎉world",
	"<script>", "--", "/**/", "; DROP TABLE users;", "SELECT * FROM",
	"\x00", "\xff\xfe",
}

// Bytes yields byte slices of length [0, size].
func Bytes() Generator[[]byte] {
	return Map(SliceOf(From(0, 256)), func(ints []int) []byte {
		b := make([]byte, len(ints))
		for i, v := range ints {
			b[i] = byte(v)
		}
		return b
	})
}

// EdgeCaseInt yields a boundary value half of the time and an Int otherwise.
func EdgeCaseInt() Generator[int] {
	return Either(Int(), OneOf(edgeInts...), 0.5)
}

// EdgeCaseString yields a known troublemaker (quotes, control characters,
// multi-byte runes, SQL fragments) 70% of the time and a String otherwise.
func EdgeCaseString() Generator[string] {
	return Either(String(), OneOf(edgeStrings...), 0.7)
}
