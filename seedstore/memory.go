package seedstore

import (
	"cmp"
	"context"
	"slices"
	"sync"
)

// Memory is an in-process Store.
type Memory struct {
	mu       sync.Mutex
	failures map[string]Failure
	closed   bool
}

func NewMemory() *Memory {
	return &Memory{failures: make(map[string]Failure)}
}

func (m *Memory) Record(_ context.Context, f Failure) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	f = normalize(f)
	if _, ok := m.failures[f.Fingerprint]; !ok {
		m.failures[f.Fingerprint] = f
	}
	return nil
}

func (m *Memory) Seeds(ctx context.Context, property string) ([]int64, error) {
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	var seeds []int64
	for _, f := range all {
		if f.Property == property {
			seeds = append(seeds, f.Seed)
		}
	}
	return seeds, nil
}

func (m *Memory) List(_ context.Context) ([]Failure, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, ErrClosed
	}
	all := make([]Failure, 0, len(m.failures))
	for _, f := range m.failures {
		all = append(all, f)
	}
	sortFailures(all)
	return all, nil
}

func (m *Memory) Forget(_ context.Context, property string, seeds ...int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, ErrClosed
	}
	removed := 0
	for key, f := range m.failures {
		if f.Property == property && (len(seeds) == 0 || slices.Contains(seeds, f.Seed)) {
			delete(m.failures, key)
			removed++
		}
	}
	return removed, nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func sortFailures(all []Failure) {
	slices.SortFunc(all, func(a, b Failure) int {
		return cmp.Or(
			cmp.Compare(a.Property, b.Property),
			a.CreatedAt.Compare(b.CreatedAt),
			cmp.Compare(a.Seed, b.Seed),
		)
	})
}
