// Package seedstore persists the seeds of failing property runs so they can
// be replayed before fresh random trials.
//
// A store is opened from a URL:
//
//	memory://                  in-process, for tests
//	bolt:///path/seeds.bolt    bbolt file
//	sqlite:///path/seeds.db    SQLite file (sqlite::memory: for tests)
//	postgres://u@host/db       PostgreSQL
//	mysql://u@host:3306/db     MySQL
package seedstore

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/magaliet/genything/dburl"
)

var (
	ErrUnknownScheme = errors.New("seedstore: unknown store URL scheme")
	ErrClosed        = errors.New("seedstore: store is closed")
)

// Failure is one recorded failing run.
type Failure struct {
	ID          string    `json:"id"`
	Property    string    `json:"property"`
	Seed        int64     `json:"seed"`
	Trial       int       `json:"trial"`
	Value       string    `json:"value"`
	Fingerprint string    `json:"fingerprint"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store records failures and hands back their seeds.
//
// Record is idempotent per (property, seed): recording the same pair twice
// keeps the first record.
type Store interface {
	Record(ctx context.Context, f Failure) error
	// Seeds returns the seeds recorded for property, oldest first.
	Seeds(ctx context.Context, property string) ([]int64, error)
	// List returns every failure ordered by property, then age.
	List(ctx context.Context) ([]Failure, error)
	// Forget deletes the given seeds of property, or all of them when none
	// are given, and reports how many records were removed.
	Forget(ctx context.Context, property string, seeds ...int64) (int, error)
	Close() error
}

// Open opens the store described by storeURL.
func Open(ctx context.Context, storeURL string) (Store, error) {
	if strings.HasPrefix(storeURL, "memory:") {
		return NewMemory(), nil
	}
	dialect, err := dburl.InferDialectFromDBUrl(storeURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownScheme, err)
	}
	if dialect == dburl.DialectBolt {
		path, err := dburl.DSN(storeURL)
		if err != nil {
			return nil, err
		}
		return OpenBolt(path)
	}
	return OpenSQL(ctx, storeURL)
}

// NewFailure fills in the ID, fingerprint and timestamp of a failure.
func NewFailure(property string, seed int64, trial int, value string) Failure {
	return Failure{
		ID:          uuid.NewString(),
		Property:    property,
		Seed:        seed,
		Trial:       trial,
		Value:       value,
		Fingerprint: Fingerprint(property, seed),
		CreatedAt:   time.Now().UTC(),
	}
}

// Fingerprint identifies a (property, seed) pair.
func Fingerprint(property string, seed int64) string {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(seed))

	h, _ := blake2b.New256(nil)
	h.Write([]byte(property))
	h.Write([]byte{0})
	h.Write(buf[:])
	return hex.EncodeToString(h.Sum(nil)[:16])
}

// normalize completes a Failure built by hand.
func normalize(f Failure) Failure {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.Fingerprint == "" {
		f.Fingerprint = Fingerprint(f.Property, f.Seed)
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	return f
}
