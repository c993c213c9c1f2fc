package seedstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/magaliet/genything/dburl"
)

const createTable = `CREATE TABLE IF NOT EXISTS genything_failures (
	fingerprint VARCHAR(32) NOT NULL PRIMARY KEY,
	id VARCHAR(36) NOT NULL,
	property VARCHAR(255) NOT NULL,
	seed BIGINT NOT NULL,
	trial INTEGER NOT NULL,
	value TEXT NOT NULL,
	created_at BIGINT NOT NULL
)`

const failureColumns = "id, property, seed, trial, value, fingerprint, created_at"

// SQL stores failures in a database/sql database.
type SQL struct {
	db      *sql.DB
	dialect string
}

// OpenSQL connects to a sqlite, postgres or mysql URL and creates the
// failures table when it is missing.
func OpenSQL(ctx context.Context, dbURL string) (*SQL, error) {
	dialect, err := dburl.InferDialectFromDBUrl(dbURL)
	if err != nil {
		return nil, err
	}
	driver, err := dburl.DriverName(dialect)
	if err != nil {
		return nil, err
	}
	dsn, err := dburl.DSN(dbURL)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", dburl.Redact(dbURL), err)
	}
	if dialect == dburl.DialectSQLite {
		// One connection: :memory: databases are per connection, and
		// SQLite serializes writers anyway.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to %s: %w", dburl.Redact(dbURL), err)
	}
	if _, err := db.ExecContext(ctx, createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create failures table: %w", err)
	}
	return &SQL{db: db, dialect: dialect}, nil
}

func (s *SQL) Record(ctx context.Context, f Failure) error {
	f = normalize(f)
	var query string
	switch s.dialect {
	case dburl.DialectMySQL:
		query = "INSERT IGNORE INTO genything_failures (" + failureColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?)"
	default:
		query = "INSERT INTO genything_failures (" + failureColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?) ON CONFLICT (fingerprint) DO NOTHING"
	}
	_, err := s.db.ExecContext(ctx, s.rebind(query),
		f.ID, f.Property, f.Seed, f.Trial, f.Value, f.Fingerprint, f.CreatedAt.UnixNano())
	if err != nil {
		return s.wrap("record failure", err)
	}
	return nil
}

func (s *SQL) Seeds(ctx context.Context, property string) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx,
		s.rebind("SELECT seed FROM genything_failures WHERE property = ? ORDER BY created_at, seed"), property)
	if err != nil {
		return nil, s.wrap("query seeds", err)
	}
	defer rows.Close()

	var seeds []int64
	for rows.Next() {
		var seed int64
		if err := rows.Scan(&seed); err != nil {
			return nil, s.wrap("scan seed", err)
		}
		seeds = append(seeds, seed)
	}
	return seeds, rows.Err()
}

func (s *SQL) List(ctx context.Context) ([]Failure, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+failureColumns+" FROM genything_failures ORDER BY property, created_at, seed")
	if err != nil {
		return nil, s.wrap("list failures", err)
	}
	defer rows.Close()

	var all []Failure
	for rows.Next() {
		var (
			f       Failure
			created int64
		)
		if err := rows.Scan(&f.ID, &f.Property, &f.Seed, &f.Trial, &f.Value, &f.Fingerprint, &created); err != nil {
			return nil, s.wrap("scan failure", err)
		}
		f.CreatedAt = time.Unix(0, created).UTC()
		all = append(all, f)
	}
	return all, rows.Err()
}

func (s *SQL) Forget(ctx context.Context, property string, seeds ...int64) (int, error) {
	query := "DELETE FROM genything_failures WHERE property = ?"
	args := []any{property}
	if len(seeds) > 0 {
		query += " AND seed IN (?" + strings.Repeat(", ?", len(seeds)-1) + ")"
		for _, seed := range seeds {
			args = append(args, seed)
		}
	}
	res, err := s.db.ExecContext(ctx, s.rebind(query), args...)
	if err != nil {
		return 0, s.wrap("forget failures", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, s.wrap("count forgotten failures", err)
	}
	return int(n), nil
}

func (s *SQL) Close() error {
	return s.db.Close()
}

// rebind rewrites ? placeholders as $1, $2, ... for postgres.
func (s *SQL) rebind(query string) string {
	if s.dialect != dburl.DialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *SQL) wrap(op string, err error) error {
	if errors.Is(err, sql.ErrConnDone) || strings.Contains(err.Error(), "sql: database is closed") {
		return fmt.Errorf("%w: %s", ErrClosed, op)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
