// Package bsongen generates BSON documents and values for tests against
// document stores. Every generator draws from a gen.Context, so a seed
// reproduces the same documents, ObjectIDs and timestamps.
package bsongen

import (
	"encoding/binary"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magaliet/genything/gen"
)

// Epoch anchors generated timestamps so they do not depend on the clock.
var Epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

var (
	tags       = []string{"MongoDB", "Benchmark", "CMS", "Database", "Performance", "WebApp", "Scalability", "Indexing", "Query Optimization", "Sharding"}
	authors    = []string{"Alice Example", "John Doe", "Maria Sample", "Max Mustermann", "Sophie Miller", "Liam Johnson", "Emma Brown", "Noah Davis", "Olivia Wilson", "William Martinez"}
	categories = []string{"Tech", "Business", "Science", "Health", "Sports", "Education"}
	lorem      = []string{
		"Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
		"Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.",
		"Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat.",
		"Duis aute irure dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur.",
		"Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt mollit anim id est laborum.",
	}
)

// ObjectID yields ObjectIDs from 12 random bytes.
func ObjectID() gen.Generator[primitive.ObjectID] {
	return gen.New(func(ctx gen.Context) (primitive.ObjectID, gen.Context) {
		var id primitive.ObjectID
		var buf [16]byte
		hi, ctx := ctx.Next()
		lo, ctx := ctx.Next()
		binary.BigEndian.PutUint64(buf[:8], hi)
		binary.BigEndian.PutUint64(buf[8:], lo)
		copy(id[:], buf[:12])
		return id, ctx
	})
}

// Timestamp yields times in (Epoch-span, Epoch], truncated to the
// millisecond precision BSON stores.
func Timestamp(span time.Duration) gen.Generator[time.Time] {
	ms := span.Milliseconds()
	if ms <= 0 {
		return gen.Constant(Epoch)
	}
	return gen.Map(gen.From(int64(0), ms), func(back int64) time.Time {
		return Epoch.Add(-time.Duration(back) * time.Millisecond)
	})
}

// Binary yields byte slices of length [0, size].
func Binary() gen.Generator[[]byte] {
	return gen.SliceOf(gen.Map(gen.From(0, 256), func(b int) byte { return byte(b) }))
}

// Lorem yields filler text of exactly n bytes, with an occasional tag
// mixed in.
func Lorem(n int) gen.Generator[string] {
	word := gen.Either(gen.OneOf(lorem...), gen.OneOf(tags...), 0.1)
	return gen.New(func(ctx gen.Context) (string, gen.Context) {
		var sb strings.Builder
		for sb.Len() < n {
			var s string
			s, ctx = word.Generate(ctx)
			sb.WriteString(s)
			sb.WriteByte(' ')
		}
		return sb.String()[:n], ctx
	})
}

// Simple yields small documents {rnd, v}.
func Simple() gen.Generator[bson.D] {
	return gen.Map(gen.Int64(), func(n int64) bson.D {
		return bson.D{{Key: "rnd", Value: n}, {Key: "v", Value: int32(1)}}
	})
}

// Article yields blog-post documents. Content length scales with size.
func Article() gen.Generator[bson.D] {
	return gen.Compose(func(b *gen.Builder) bson.D {
		contentLen := 20 * (b.Size() + 1)
		return bson.D{
			{Key: "_id", Value: gen.Draw(b, ObjectID())},
			{Key: "rnd", Value: gen.Draw(b, gen.Int64())},
			{Key: "v", Value: int32(1)},
			{Key: "title", Value: gen.Draw(b, Lorem(30))},
			{Key: "author", Value: gen.Draw(b, gen.OneOf(authors...))},
			{Key: "co_authors", Value: gen.Draw(b, gen.SampleOf(authors, 1, 3))},
			{Key: "summary", Value: gen.Draw(b, Lorem(100))},
			{Key: "content", Value: gen.Draw(b, Lorem(contentLen))},
			{Key: "tags", Value: gen.Draw(b, gen.SampleOf(tags, 4, 6))},
			{Key: "category", Value: gen.Draw(b, gen.OneOf(categories...))},
			{Key: "timestamp", Value: gen.Draw(b, Timestamp(2*365*24*time.Hour))},
			{Key: "views", Value: gen.Draw(b, gen.From(0, 10000))},
			{Key: "comments", Value: gen.Draw(b, gen.From(0, 500))},
			{Key: "likes", Value: gen.Draw(b, gen.From(0, 1000))},
			{Key: "shares", Value: gen.Draw(b, gen.From(0, 200))},
		}
	})
}

// Query yields find filters matching the fields of Article.
func Query() gen.Generator[bson.D] {
	byAuthor := gen.Map(gen.OneOf(authors...), func(a string) bson.D {
		return bson.D{{Key: "author", Value: a}}
	})
	byTag := gen.Map(gen.OneOf(tags...), func(t string) bson.D {
		return bson.D{{Key: "tags", Value: bson.D{{Key: "$elemMatch", Value: bson.D{{Key: "$eq", Value: t}}}}}}
	})
	since := gen.Map(Timestamp(365*24*time.Hour), func(ts time.Time) bson.D {
		return bson.D{{Key: "timestamp", Value: bson.D{{Key: "$gt", Value: ts}}}}
	})
	text := gen.Map(gen.OneOf(tags...), func(t string) bson.D {
		return bson.D{{Key: "$text", Value: bson.D{{Key: "$search", Value: t}}}}
	})
	return gen.One(byAuthor, byTag, since, text)
}
