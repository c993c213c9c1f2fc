// Package dburl maps seed-store URLs to database/sql driver names and DSNs.
package dburl

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Supported database dialects
const (
	DialectPostgres = "postgres"
	DialectMySQL    = "mysql"
	DialectSQLite   = "sqlite"
	DialectBolt     = "bolt"
)

var (
	ErrUnknownDialect = errors.New("unknown database dialect")
	ErrInvalidURL     = errors.New("invalid database URL")
)

// InferDialectFromDBUrl returns the dialect based on the URL scheme.
func InferDialectFromDBUrl(dbURL string) (string, error) {
	u, err := url.Parse(dbURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	scheme := strings.ToLower(u.Scheme)
	switch scheme {
	case "postgres", "postgresql":
		return DialectPostgres, nil
	case "mysql":
		return DialectMySQL, nil
	case "sqlite", "sqlite3":
		return DialectSQLite, nil
	case "bolt", "bbolt":
		return DialectBolt, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownDialect, scheme)
	}
}

// DriverName returns the database/sql driver registered for dialect.
// Bolt is not a database/sql driver and returns ErrUnknownDialect.
func DriverName(dialect string) (string, error) {
	switch dialect {
	case DialectPostgres:
		return "pgx", nil
	case DialectMySQL:
		return "mysql", nil
	case DialectSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("%w: no sql driver for %q", ErrUnknownDialect, dialect)
	}
}

// DSN converts a URL into the data source name its driver expects.
//
//	postgres://u@h:5432/db   -> unchanged (pgx accepts URLs)
//	mysql://u:p@h:3306/db    -> u:p@tcp(h:3306)/db
//	sqlite:///abs/seeds.db   -> /abs/seeds.db
//	sqlite:rel/seeds.db      -> rel/seeds.db
//	sqlite::memory:          -> :memory:
//	bolt:///abs/seeds.bolt   -> /abs/seeds.bolt
func DSN(dbURL string) (string, error) {
	dialect, err := InferDialectFromDBUrl(dbURL)
	if err != nil {
		return "", err
	}
	u, err := url.Parse(dbURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	switch dialect {
	case DialectPostgres:
		return dbURL, nil
	case DialectMySQL:
		return mysqlDSN(u), nil
	default:
		path := u.Opaque
		if path == "" {
			path = u.Host + u.Path
		}
		if path == "" {
			return "", fmt.Errorf("%w: missing path in %q", ErrInvalidURL, dbURL)
		}
		if dialect == DialectSQLite && u.RawQuery != "" {
			path += "?" + u.RawQuery
		}
		return path, nil
	}
}

// mysqlDSN builds user[:password]@tcp(host:port)/dbname[?params].
func mysqlDSN(u *url.URL) string {
	var sb strings.Builder
	if u.User != nil {
		sb.WriteString(u.User.Username())
		if pw, ok := u.User.Password(); ok {
			sb.WriteString(":" + pw)
		}
		sb.WriteString("@")
	}
	if u.Host != "" {
		sb.WriteString("tcp(" + u.Host + ")")
	}
	sb.WriteString("/" + strings.TrimPrefix(u.Path, "/"))
	if u.RawQuery != "" {
		sb.WriteString("?" + u.RawQuery)
	}
	return sb.String()
}

// BuildSQLiteURL constructs a SQLite connection URL.
// Format: sqlite:///path/to/file.db
func BuildSQLiteURL(filepath string) string {
	if strings.HasPrefix(filepath, "/") {
		return fmt.Sprintf("sqlite://%s", filepath)
	}
	return fmt.Sprintf("sqlite:%s", filepath)
}

// Redact hides the password of a URL so it can be logged.
func Redact(dbURL string) string {
	u, err := url.Parse(dbURL)
	if err != nil {
		return dbURL
	}
	return u.Redacted()
}
