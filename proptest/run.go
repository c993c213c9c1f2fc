package proptest

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/rcrowley/go-metrics"

	"github.com/magaliet/genything/logging"
	"github.com/magaliet/genything/nanoid"
	"github.com/magaliet/genything/random"
	"github.com/magaliet/genything/seedstore"
)

const activePrefix = "proptest.active."

// run is the state of one Check call. It exists from start to finish and
// is never shared between calls.
type run struct {
	t       TestingT
	name    string
	key     string
	id      string
	cfg     Config
	seed    int64
	replays []int64
	logger  *slog.Logger
	started time.Time

	activeKey string
	active    metrics.Gauge
	trials    metrics.Counter
	failures  metrics.Counter
	duration  metrics.Timer
}

// start resolves configuration and registers the run. Callers must defer
// finish.
func start(t TestingT, name string, cfg Config, pinned bool) *run {
	t.Helper()

	r := &run{
		t:       t,
		name:    name,
		key:     propertyKey(t, name),
		id:      nanoid.New(),
		started: time.Now(),
	}

	resolved, seedFromEnv, envErr := withEnv(cfg)
	if pinned {
		resolved.Seed = cfg.Seed
	}
	r.cfg = resolved.withDefaults()

	r.logger = r.cfg.Logger
	if r.logger == nil {
		level := slog.LevelInfo
		if r.cfg.Verbose {
			level = slog.LevelDebug
		}
		r.logger = logging.NewTestLogger(t, level)
	}
	r.logger = r.logger.With("property", r.key, "run_id", r.id)
	if envErr != nil {
		r.logger.Warn("invalid_environment", "error", envErr)
	}

	r.seed = r.cfg.Seed
	if r.seed == 0 && !pinned && !seedFromEnv {
		r.seed = random.NewSeed()
	}

	reg := r.cfg.Metrics
	r.trials = metrics.GetOrRegisterCounter("proptest.trials", reg)
	r.failures = metrics.GetOrRegisterCounter("proptest.failures", reg)
	r.duration = metrics.GetOrRegisterTimer("proptest.duration", reg)
	r.activeKey = activePrefix + r.key + "#" + r.id
	r.active = metrics.NewGauge()
	r.active.Update(1)
	if err := reg.Register(r.activeKey, r.active); err != nil {
		r.logger.Warn("metrics_register_failed", "error", err)
	}

	if r.cfg.Store != nil && !pinned {
		seeds, err := r.cfg.Store.Seeds(context.Background(), r.key)
		if err != nil {
			r.logger.Warn("seed_store_unavailable", "error", err)
		}
		for _, s := range seeds {
			if s != r.seed && !slices.Contains(r.replays, s) {
				r.replays = append(r.replays, s)
			}
		}
	}

	r.logger.Info("check_started",
		"seed", r.seed,
		"iterations", r.cfg.Iterations,
		"size", r.cfg.Size,
		"replays", len(r.replays))
	return r
}

// finish unregisters the run. It runs on every exit path, including a
// panicking body.
func (r *run) finish() {
	r.cfg.Metrics.Unregister(r.activeKey)
	r.duration.UpdateSince(r.started)
}

func (r *run) trialStarted() {
	r.trials.Inc(1)
}

func (r *run) record(seed int64, trial int, value string) {
	r.failures.Inc(1)
	if r.cfg.Store == nil {
		return
	}
	f := seedstore.NewFailure(r.key, seed, trial, value)
	if err := r.cfg.Store.Record(context.Background(), f); err != nil {
		r.logger.Warn("seed_store_record_failed", "seed", seed, "error", err)
	}
}

// propertyKey names a property within its test so the same property name
// in two tests keeps separate seeds.
func propertyKey(t TestingT, name string) string {
	switch {
	case name == "":
		return t.Name()
	case t.Name() == "":
		return name
	default:
		return t.Name() + "/" + name
	}
}

// ActiveRuns lists the runs currently registered in reg.
func ActiveRuns(reg metrics.Registry) []string {
	var names []string
	reg.Each(func(name string, _ any) {
		if strings.HasPrefix(name, activePrefix) {
			names = append(names, strings.TrimPrefix(name, activePrefix))
		}
	})
	slices.Sort(names)
	return names
}
