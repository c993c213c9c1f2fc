package gen

import "github.com/magaliet/genything/random"

const (
	// DefaultSize bounds the magnitude of sized values such as slice lengths.
	DefaultSize = 30

	// DefaultIterations is the number of values a run draws when no count is given.
	DefaultIterations = 100

	filterRetryFactor = 100
)

// Context carries the state threaded through every generator invocation.
//
// Context is a value. Generators receive a copy and return the advanced copy,
// so a Context never has a hidden cursor and the same Context always
// produces the same values.
type Context struct {
	// Source is the random state. It advances on every draw.
	Source random.Source

	// Size hints how large generated structures should be.
	// Draws never change it; only sizing combinators do.
	Size int

	// Iterations is the number of values a run draws by default.
	Iterations int

	// OriginalSeed is the seed the run started from. It is never modified
	// by generators and is what a failing run reports.
	OriginalSeed int64

	// MaxFilterRetries caps Filter rejections per draw. Zero means
	// 100 times Iterations.
	MaxFilterRetries int
}

// NewContext returns a Context seeded with seed and default sizing.
func NewContext(seed int64) Context {
	return Context{
		Source:       random.New(seed),
		Size:         DefaultSize,
		Iterations:   DefaultIterations,
		OriginalSeed: seed,
	}
}

// DefaultContext returns a Context with a process-derived seed.
func DefaultContext() Context {
	return NewContext(random.NewSeed())
}

func (c Context) WithSize(size int) Context {
	c.Size = max(size, 0)
	return c
}

func (c Context) WithIterations(n int) Context {
	c.Iterations = n
	return c
}

func (c Context) WithMaxFilterRetries(n int) Context {
	c.MaxFilterRetries = n
	return c
}

// FilterBudget is the number of candidates Filter may reject before giving up.
func (c Context) FilterBudget() int {
	if c.MaxFilterRetries > 0 {
		return c.MaxFilterRetries
	}
	return max(filterRetryFactor*c.Iterations, filterRetryFactor)
}

// Draw returns a uniform value in [0, bound) and the advanced Context.
func (c Context) Draw(bound uint64) (uint64, Context) {
	v, src := c.Source.Draw(bound)
	c.Source = src
	return v, c
}

// Next returns 64 random bits and the advanced Context.
func (c Context) Next() (uint64, Context) {
	v, src := c.Source.Next()
	c.Source = src
	return v, c
}

// Float64 returns a value in [0.0, 1.0) and the advanced Context.
func (c Context) Float64() (float64, Context) {
	f, src := c.Source.Float64()
	c.Source = src
	return f, c
}

// Split returns the advanced receiver and an independent child Context.
// Both keep the receiver's Size, Iterations and OriginalSeed.
func (c Context) Split() (Context, Context) {
	parent, child := c.Source.Split()
	p, ch := c, c
	p.Source = parent
	ch.Source = child
	return p, ch
}
