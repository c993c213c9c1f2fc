// Package config loads genything.ini, the settings file of the genything
// command.
//
//	[store]
//	url = sqlite:.genything/seeds.db
//
//	[sample]
//	seed = 0      ; 0 picks a fresh seed
//	count = 10
//	size = 30
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/magaliet/genything/dburl"
	"github.com/magaliet/genything/gen"
	"github.com/magaliet/genything/inifile"
)

// Filename is the name of the config file.
const Filename = "genything.ini"

// DefaultStoreURL keeps seeds next to the config file.
const DefaultStoreURL = "sqlite:.genything/seeds.db"

// StoreURLEnv overrides [store] url.
const StoreURLEnv = "GENYTHING_STORE_URL"

var ErrNotFound = errors.New(Filename + " not found")

// Config holds the settings from genything.ini.
type Config struct {
	// Dir is the directory containing genything.ini, or the start
	// directory when there is none. Relative store paths resolve against it.
	Dir string

	// Path is the file that was read; empty when defaults are used.
	Path string

	Store  StoreConfig
	Sample SampleConfig
}

// StoreConfig holds the [store] section.
type StoreConfig struct {
	URL string
}

// SampleConfig holds the [sample] section.
type SampleConfig struct {
	Seed  int64
	Count int
	Size  int
}

// Default returns the configuration used when no genything.ini exists.
func Default(dir string) *Config {
	return &Config{
		Dir:   dir,
		Store: StoreConfig{URL: DefaultStoreURL},
		Sample: SampleConfig{
			Count: 10,
			Size:  gen.DefaultSize,
		},
	}
}

// Load finds genything.ini by walking up from dir (or the working directory
// if dir is empty) and parses it. Without a file, defaults rooted at dir
// are returned.
func Load(dir string) (*Config, error) {
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	path, err := Find(dir)
	if errors.Is(err, ErrNotFound) {
		cfg := Default(dir)
		applyEnv(cfg)
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile parses a specific config file.
func LoadFile(path string) (*Config, error) {
	f, err := inifile.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg := Default(filepath.Dir(path))
	cfg.Path = path

	if v := f.Get("store", "url"); v != "" {
		if _, err := dburl.InferDialectFromDBUrl(v); err != nil && !isMemory(v) {
			return nil, fmt.Errorf("%s: store.url: %w", Filename, err)
		}
		cfg.Store.URL = v
	}

	if v, ok, err := f.GetInt64("sample", "seed"); err != nil {
		return nil, fmt.Errorf("%s: %w", Filename, err)
	} else if ok {
		cfg.Sample.Seed = v
	}
	if v, ok, err := f.GetInt("sample", "count"); err != nil {
		return nil, fmt.Errorf("%s: %w", Filename, err)
	} else if ok {
		if v <= 0 {
			return nil, fmt.Errorf("%s: sample.count must be positive, got %d", Filename, v)
		}
		cfg.Sample.Count = v
	}
	if v, ok, err := f.GetInt("sample", "size"); err != nil {
		return nil, fmt.Errorf("%s: %w", Filename, err)
	} else if ok {
		if v < 0 {
			return nil, fmt.Errorf("%s: sample.size must not be negative, got %d", Filename, v)
		}
		cfg.Sample.Size = v
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(StoreURLEnv); v != "" {
		cfg.Store.URL = v
	}
}

// Find walks up from dir looking for genything.ini.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		path := filepath.Join(dir, Filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// StoreURL returns the store URL with relative sqlite and bolt paths made
// absolute against Dir.
func (c *Config) StoreURL() string {
	raw := c.Store.URL
	if isMemory(raw) {
		return raw
	}
	dialect, err := dburl.InferDialectFromDBUrl(raw)
	if err != nil || (dialect != dburl.DialectSQLite && dialect != dburl.DialectBolt) {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Opaque == "" || u.Opaque == ":memory:" || filepath.IsAbs(u.Opaque) {
		return raw
	}
	u.Opaque = filepath.Join(c.Dir, u.Opaque)
	if dialect == dburl.DialectSQLite && u.RawQuery == "" {
		return dburl.BuildSQLiteURL(u.Opaque)
	}
	return u.Scheme + "://" + u.Opaque + querySuffix(u)
}

func querySuffix(u *url.URL) string {
	if u.RawQuery == "" {
		return ""
	}
	return "?" + u.RawQuery
}

func isMemory(raw string) bool {
	return strings.HasPrefix(raw, "memory:")
}

// Write stores cfg as an INI file at path.
func (c *Config) Write(path string) error {
	f := &inifile.File{}
	f.Set("store", "url", c.Store.URL)
	f.Set("sample", "seed", strconv.FormatInt(c.Sample.Seed, 10))
	f.Set("sample", "count", strconv.Itoa(c.Sample.Count))
	f.Set("sample", "size", strconv.Itoa(c.Sample.Size))
	return f.WriteFile(path)
}
