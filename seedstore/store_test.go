package seedstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magaliet/genything/dburl"
)

func storeSuite(t *testing.T, open func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("record and seeds", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Record(ctx, NewFailure("sum_commutes", 11, 3, "[1 2]")))
		require.NoError(t, s.Record(ctx, NewFailure("sum_commutes", 22, 7, "[3 4]")))
		require.NoError(t, s.Record(ctx, NewFailure("other", 33, 1, "x")))

		seeds, err := s.Seeds(ctx, "sum_commutes")
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{11, 22}, seeds)

		seeds, err = s.Seeds(ctx, "missing")
		require.NoError(t, err)
		assert.Empty(t, seeds)
	})

	t.Run("record is idempotent per property and seed", func(t *testing.T) {
		s := open(t)
		first := NewFailure("p", 5, 1, "first")
		require.NoError(t, s.Record(ctx, first))
		require.NoError(t, s.Record(ctx, NewFailure("p", 5, 9, "second")))

		all, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, first.ID, all[0].ID)
		assert.Equal(t, "first", all[0].Value)
		assert.Equal(t, 1, all[0].Trial)
	})

	t.Run("list is ordered and round-trips fields", func(t *testing.T) {
		s := open(t)
		base := time.Date(2026, 1, 2, 3, 4, 5, 6, time.UTC)
		b := Failure{Property: "b", Seed: -1, Trial: 2, Value: "vb", CreatedAt: base}
		a2 := Failure{Property: "a", Seed: 2, Trial: 1, Value: "va2", CreatedAt: base.Add(time.Second)}
		a1 := Failure{Property: "a", Seed: 1, Trial: 4, Value: "va1", CreatedAt: base}
		for _, f := range []Failure{b, a2, a1} {
			require.NoError(t, s.Record(ctx, f))
		}

		all, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []int64{1, 2, -1}, []int64{all[0].Seed, all[1].Seed, all[2].Seed})

		got := all[2]
		assert.Equal(t, "b", got.Property)
		assert.Equal(t, 2, got.Trial)
		assert.Equal(t, "vb", got.Value)
		assert.Equal(t, Fingerprint("b", -1), got.Fingerprint)
		assert.NotEmpty(t, got.ID)
		assert.True(t, base.Equal(got.CreatedAt), "created_at %v", got.CreatedAt)
	})

	t.Run("forget", func(t *testing.T) {
		s := open(t)
		for _, seed := range []int64{1, 2, 3} {
			require.NoError(t, s.Record(ctx, NewFailure("p", seed, 1, "")))
		}
		require.NoError(t, s.Record(ctx, NewFailure("q", 1, 1, "")))

		n, err := s.Forget(ctx, "p", 2, 99)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		seeds, err := s.Seeds(ctx, "p")
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{1, 3}, seeds)

		n, err = s.Forget(ctx, "p")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		seeds, err = s.Seeds(ctx, "q")
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, seeds)
	})

	t.Run("closed store", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Close())
		err := s.Record(ctx, NewFailure("p", 1, 1, ""))
		assert.ErrorIs(t, err, ErrClosed)
	})
}

func TestMemory(t *testing.T) {
	storeSuite(t, func(t *testing.T) Store {
		s := NewMemory()
		t.Cleanup(func() { s.Close() })
		return s
	})
}

func TestBolt(t *testing.T) {
	storeSuite(t, func(t *testing.T) Store {
		s, err := OpenBolt(filepath.Join(t.TempDir(), "seeds.bolt"))
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		return s
	})
}

func TestSQLite(t *testing.T) {
	storeSuite(t, func(t *testing.T) Store {
		s, err := OpenSQL(context.Background(), dburl.BuildSQLiteURL(filepath.Join(t.TempDir(), "seeds.db")))
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		return s
	})
}

func TestSQLiteInMemory(t *testing.T) {
	storeSuite(t, func(t *testing.T) Store {
		s, err := OpenSQL(context.Background(), "sqlite::memory:")
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		return s
	})
}

// Server-backed stores run only when a URL is provided.
func TestServerStores(t *testing.T) {
	for _, env := range []string{"GENYTHING_TEST_POSTGRES_URL", "GENYTHING_TEST_MYSQL_URL"} {
		t.Run(env, func(t *testing.T) {
			url := os.Getenv(env)
			if url == "" {
				t.Skipf("%s not set", env)
			}
			storeSuite(t, func(t *testing.T) Store {
				s, err := OpenSQL(context.Background(), url)
				require.NoError(t, err)
				_, err = s.db.Exec("DELETE FROM genything_failures")
				require.NoError(t, err)
				t.Cleanup(func() { s.Close() })
				return s
			})
		})
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		url  string
		want any
	}{
		{"memory://", &Memory{}},
		{"bolt://" + filepath.Join(dir, "a.bolt"), &Bolt{}},
		{"sqlite://" + filepath.Join(dir, "a.db"), &SQL{}},
		{"sqlite::memory:", &SQL{}},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			s, err := Open(ctx, tt.url)
			require.NoError(t, err)
			defer s.Close()
			assert.IsType(t, tt.want, s)
		})
	}

	_, err := Open(ctx, "redis://localhost")
	assert.ErrorIs(t, err, ErrUnknownScheme)
}

func TestFingerprint(t *testing.T) {
	fp := Fingerprint("prop", 42)
	assert.Len(t, fp, 32)
	assert.Equal(t, fp, Fingerprint("prop", 42))
	assert.NotEqual(t, fp, Fingerprint("prop", 43))
	assert.NotEqual(t, fp, Fingerprint("prop2", 42))
	assert.NotEqual(t, Fingerprint("ab", 1), Fingerprint("a", 1))
}
