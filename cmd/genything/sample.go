package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magaliet/genything/cli"
	"github.com/magaliet/genything/gen"
	"github.com/magaliet/genything/gen/bsongen"
	"github.com/magaliet/genything/internal/config"
	"github.com/magaliet/genything/nanoid"
	"github.com/magaliet/genything/random"
)

// sampler draws n values and renders each on one line.
type sampler struct {
	desc   string
	render func(ctx gen.Context, n int) ([]string, error)
}

func renderWith[T any](g gen.Generator[T], format func(T) (string, error)) func(gen.Context, int) ([]string, error) {
	return func(ctx gen.Context, n int) ([]string, error) {
		values, err := gen.Take(g, ctx, n)
		if err != nil {
			return nil, err
		}
		lines := make([]string, len(values))
		for i, v := range values {
			if lines[i], err = format(v); err != nil {
				return nil, err
			}
		}
		return lines, nil
	}
}

func plain[T any](v T) (string, error) { return fmt.Sprint(v), nil }

func quoted(s string) (string, error) { return strconv.Quote(s), nil }

func extJSON(doc bson.D) (string, error) {
	out, err := bson.MarshalExtJSON(doc, false, false)
	return string(out), err
}

var samplers = map[string]sampler{
	"bool":       {"true or false", renderWith(gen.Bool(), plain[bool])},
	"int":        {"ints in [-size, size]", renderWith(gen.Int(), plain[int])},
	"int64":      {"any int64", renderWith(gen.Int64(), plain[int64])},
	"float":      {"floats in [0, 1)", renderWith(gen.Float64(), plain[float64])},
	"string":     {"printable ASCII of length [0, size]", renderWith(gen.String(), quoted)},
	"edgeint":    {"boundary ints half of the time", renderWith(gen.EdgeCaseInt(), plain[int])},
	"edgestring": {"awkward strings 70% of the time", renderWith(gen.EdgeCaseString(), quoted)},
	"bytes":      {"hex byte slices of length [0, size]", renderWith(gen.Bytes(), func(b []byte) (string, error) { return hex.EncodeToString(b), nil })},
	"identifier": {"lowercase identifiers", renderWith(gen.Identifier(), plain[string])},
	"ints":       {"int slices of length [0, size]", renderWith(gen.SliceOf(gen.Int()), plain[[]int])},
	"nanoid":     {"21-character URL-safe IDs", renderWith(nanoid.Gen(), plain[string])},
	"objectid":   {"BSON ObjectIDs", renderWith(bsongen.ObjectID(), func(id primitive.ObjectID) (string, error) { return id.Hex(), nil })},
	"timestamp":  {"times in the year before " + bsongen.Epoch.Format(time.DateOnly), renderWith(bsongen.Timestamp(365*24*time.Hour), func(ts time.Time) (string, error) { return ts.Format(time.RFC3339Nano), nil })},
	"simple":     {"{rnd, v} documents", renderWith(bsongen.Simple(), extJSON)},
	"article":    {"blog-post documents", renderWith(bsongen.Article(), extJSON)},
	"query":      {"find filters for articles", renderWith(bsongen.Query(), extJSON)},
	"document":   {"arbitrary nested documents", renderWith(bsongen.Document(), extJSON)},
}

func generatorsCmd() {
	names := make([]string, 0, len(samplers))
	for name := range samplers {
		names = append(names, name)
	}
	slices.Sort(names)

	rows := make([][]string, len(names))
	for i, name := range names {
		rows[i] = []string{name, samplers[name].desc}
	}
	cli.Table([]string{"generator", "description"}, rows)
}

// sampleCmd prints values from a named generator. The seed is reported on
// stderr so a run can be repeated.
func sampleCmd(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: genything sample <generator> [-n count] [-seed seed] [-size size]")
	}
	name := args[0]
	s, ok := samplers[name]
	if !ok {
		return fmt.Errorf("unknown generator %q (run 'genything generators')", name)
	}

	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	n := fs.Int("n", cfg.Sample.Count, "number of values")
	seed := fs.Int64("seed", cfg.Sample.Seed, "seed (0 picks one)")
	size := fs.Int("size", cfg.Sample.Size, "size hint")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if *n <= 0 {
		return fmt.Errorf("-n must be positive, got %d", *n)
	}
	if *size < 0 {
		return fmt.Errorf("-size must not be negative, got %d", *size)
	}
	if *seed == 0 {
		*seed = random.NewSeed()
	}

	lines, err := s.render(gen.NewContext(*seed).WithSize(*size), *n)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.Stderr, "# generator=%s seed=%d size=%d\n", name, *seed, *size)
	for _, line := range lines {
		cli.Info(line)
	}
	return nil
}
