// Package proptest runs properties against values drawn from gen
// generators and reports the seed that reproduces a failure.
//
// A run draws Config.Iterations values and stops at the first one the body
// rejects. The seed is logged for every run; a failing run also reports it
// through t.Errorf:
//
//	func TestReverseTwice(t *testing.T) {
//	    ints := gen.SliceOf(gen.Int())
//	    proptest.QuickCheck(t, "reverse twice", ints, func(t *proptest.T, xs []int) {
//	        ys := slices.Clone(xs)
//	        slices.Reverse(ys)
//	        slices.Reverse(ys)
//	        assert.Equal(t, xs, ys)
//	    })
//	}
//
// Rerun with PROPTEST_SEED=<seed> to reproduce a failure.
package proptest

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/magaliet/genything/gen"
)

// FailureKind classifies how a run ended.
type FailureKind int

const (
	KindNone FailureKind = iota
	// KindPredicate means the body failed its T.
	KindPredicate
	// KindExhausted means a Filter gave up before the body ran.
	KindExhausted
	// KindPanic means the body panicked. The panic is re-raised after the
	// outcome is reported.
	KindPanic
)

func (k FailureKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindPredicate:
		return "predicate"
	case KindExhausted:
		return "exhausted"
	case KindPanic:
		return "panic"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// Outcome is the result of a Check.
type Outcome[V any] struct {
	Name  string
	RunID string

	// Seed reproduces the outcome: for a failure, the seed of the failing
	// run (possibly a replayed one); otherwise the fresh run's seed.
	Seed   int64
	Passed bool

	// Trials counts body invocations across replays and the fresh run.
	Trials int

	// Index is the 1-based position of the failing value in its seed's
	// sequence. Zero when the run passed.
	Index int
	Value V

	Messages []string
	Kind     FailureKind
	Err      error
}

// describe renders the failing value, or "" when no value was drawn.
func (o Outcome[V]) describe() string {
	if o.Kind != KindPredicate {
		return ""
	}
	return fmt.Sprintf("%+v", o.Value)
}

var errTrialFailed = errors.New("proptest: trial failed")

// Check draws cfg.Iterations values from g and runs body on each, stopping
// at the first failure. Previously failing seeds in cfg.Store are tried
// before a fresh seed.
//
// Failures are reported with t.Errorf; Check never calls t.FailNow.
func Check[A any](t TestingT, name string, cfg Config, g gen.Generator[A], body func(*T, A)) Outcome[A] {
	t.Helper()
	return check(t, name, cfg, false, g, body)
}

// MustCheck is like Check but calls t.FailNow after reporting a failure.
func MustCheck[A any](t TestingT, name string, cfg Config, g gen.Generator[A], body func(*T, A)) Outcome[A] {
	t.Helper()
	out := check(t, name, cfg, false, g, body)
	if !out.Passed {
		t.FailNow()
	}
	return out
}

// QuickCheck runs Check with DefaultConfig.
func QuickCheck[A any](t TestingT, name string, g gen.Generator[A], body func(*T, A)) Outcome[A] {
	t.Helper()
	return check(t, name, DefaultConfig(), false, g, body)
}

// ForAll checks a boolean predicate.
//
//	proptest.ForAll(t, "abs is non-negative", cfg, gen.Int(), func(n int) bool {
//	    return abs(n) >= 0
//	})
func ForAll[A any](t TestingT, name string, cfg Config, g gen.Generator[A], pred func(A) bool) Outcome[A] {
	t.Helper()
	return check(t, name, cfg, false, g, func(pt *T, v A) {
		if !pred(v) {
			pt.Errorf("predicate returned false")
		}
	})
}

// RunSeeds runs the property once per seed, each as a subtest. Useful for
// pinning known problematic seeds. PROPTEST_SEED and the seed store are
// ignored.
func RunSeeds[A any](t *testing.T, name string, cfg Config, seeds []int64, g gen.Generator[A], body func(*T, A)) {
	t.Helper()

	for _, seed := range seeds {
		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			c := cfg
			c.Seed = seed
			check(t, name, c, true, g, body)
		})
	}
}

func check[A any](t TestingT, name string, cfg Config, pinned bool, g gen.Generator[A], body func(*T, A)) Outcome[A] {
	t.Helper()

	r := start(t, name, cfg, pinned)
	defer r.finish()

	trials := 0
	for _, seed := range r.replays {
		r.logger.Info("seed_replay", "seed", seed)
		out := runSeed(r, seed, g, body)
		trials += out.Trials
		if !out.Passed {
			out.Trials = trials
			r.report(out.Seed, out.Index, out.Kind, out.describe(), out.Messages, out.Err)
			return out
		}
	}

	out := runSeed(r, r.seed, g, body)
	out.Trials += trials
	if out.Passed {
		r.logger.Info("check_passed", "seed", r.seed, "trials", out.Trials)
		return out
	}
	r.report(out.Seed, out.Index, out.Kind, out.describe(), out.Messages, out.Err)
	return out
}

// runSeed runs the trials of one seed.
func runSeed[A any](r *run, seed int64, g gen.Generator[A], body func(*T, A)) Outcome[A] {
	out := Outcome[A]{Name: r.name, RunID: r.id, Seed: seed, Passed: true}

	index := 0
	err := gen.ForEach(g, r.cfg.context(seed), r.cfg.Iterations, func(v A) error {
		index++
		out.Trials++
		r.trialStarted()

		pt := newT(r.key, index)
		r.runBody(seed, index, v, func() { body(pt, v) })
		if pt.Failed() {
			for _, line := range pt.logs {
				r.t.Logf("%s", line)
			}
			out.Passed = false
			out.Kind = KindPredicate
			out.Index = index
			out.Value = v
			out.Messages = pt.messages
			return errTrialFailed
		}
		r.logger.Debug("trial_passed", "seed", seed, "trial", index)
		return nil
	})
	if err != nil && !errors.Is(err, errTrialFailed) {
		out.Passed = false
		out.Kind = KindExhausted
		out.Index = index + 1
		out.Err = err
	}
	return out
}

// runBody calls fn, absorbing a trial FailNow. Any other panic is logged
// with the seed, recorded, and re-raised.
func (r *run) runBody(seed int64, trial int, v any, fn func()) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if _, ok := rec.(trialFailNow); ok {
			return
		}
		r.logger.Error("check_panicked",
			"seed", seed,
			"trial", trial,
			"kind", KindPanic.String(),
			"value", fmt.Sprintf("%+v", v),
			"panic", fmt.Sprint(rec))
		r.t.Logf("proptest %q panicked on trial %d (seed=%d, use PROPTEST_SEED=%d to reproduce)",
			r.key, trial, seed, seed)
		r.record(seed, trial, fmt.Sprintf("%+v", v))
		panic(rec)
	}()
	fn()
}

func (r *run) report(seed int64, trial int, kind FailureKind, value string, messages []string, err error) {
	r.t.Helper()

	r.logger.Error("check_failed",
		"seed", seed,
		"trial", trial,
		"kind", kind.String(),
		"value", value)
	r.record(seed, trial, value)

	var detail string
	if len(messages) > 0 {
		detail = "\n" + strings.Join(messages, "\n")
	}
	switch kind {
	case KindExhausted:
		r.t.Errorf("proptest %q: %v on trial %d (seed=%d, use PROPTEST_SEED=%d to reproduce)",
			r.key, err, trial, seed, seed)
	default:
		r.t.Errorf("proptest %q failed on trial %d with value %s (seed=%d, use PROPTEST_SEED=%d to reproduce)%s",
			r.key, trial, value, seed, seed, detail)
	}
}
