package proptest

import (
	"log/slog"

	"github.com/kelseyhightower/envconfig"
	"github.com/rcrowley/go-metrics"

	"github.com/magaliet/genything/gen"
	"github.com/magaliet/genything/seedstore"
)

// Config controls property test behavior.
type Config struct {
	// Iterations is the number of trials per seed. Default: 100.
	Iterations int

	// Seed is the random seed for reproducibility. 0 derives one per run.
	// PROPTEST_SEED overrides it, and PROPTEST_SEED=0 pins seed 0.
	Seed int64 `ignored:"true"`

	// Size bounds collection lengths and integer magnitudes. Default: 30.
	Size int

	// MaxFilterRetries caps rejected Filter candidates per draw. 0 means
	// 100 × Iterations.
	MaxFilterRetries int `split_words:"true"`

	// Verbose logs every trial at debug level.
	Verbose bool

	// Logger receives run events. Nil logs to the test's t.Logf.
	Logger *slog.Logger `ignored:"true"`

	// Store, when set, replays previously failing seeds before the fresh
	// run and records new failures.
	Store seedstore.Store `ignored:"true"`

	// Metrics receives trial counters and the active-run gauge. Nil uses
	// metrics.DefaultRegistry.
	Metrics metrics.Registry `ignored:"true"`
}

// DefaultConfig returns sensible defaults for property testing.
func DefaultConfig() Config {
	return Config{
		Iterations: gen.DefaultIterations,
		Size:       gen.DefaultSize,
	}
}

// envSeed reads PROPTEST_SEED separately so an explicit 0 is told apart
// from an unset variable.
type envSeed struct {
	Seed *int64
}

// withEnv applies PROPTEST_ITERATIONS, PROPTEST_SEED, PROPTEST_SIZE,
// PROPTEST_MAX_FILTER_RETRIES and PROPTEST_VERBOSE on top of cfg and
// reports whether PROPTEST_SEED was set. A malformed variable leaves cfg
// untouched.
func withEnv(cfg Config) (Config, bool, error) {
	out := cfg
	if err := envconfig.Process("proptest", &out); err != nil {
		return cfg, false, err
	}
	var env envSeed
	if err := envconfig.Process("proptest", &env); err != nil {
		return cfg, false, err
	}
	if env.Seed == nil {
		return out, false, nil
	}
	out.Seed = *env.Seed
	return out, true, nil
}

func (c Config) withDefaults() Config {
	if c.Iterations <= 0 {
		c.Iterations = gen.DefaultIterations
	}
	if c.Size < 0 {
		c.Size = 0
	}
	if c.Size == 0 {
		c.Size = gen.DefaultSize
	}
	if c.Metrics == nil {
		c.Metrics = metrics.DefaultRegistry
	}
	return c
}

// context builds the generation context for one seed.
func (c Config) context(seed int64) gen.Context {
	return gen.NewContext(seed).
		WithSize(c.Size).
		WithIterations(c.Iterations).
		WithMaxFilterRetries(c.MaxFilterRetries)
}
