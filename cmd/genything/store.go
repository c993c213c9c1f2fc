package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/magaliet/genything/cli"
	"github.com/magaliet/genything/dburl"
	"github.com/magaliet/genything/internal/config"
	"github.com/magaliet/genything/logging"
	"github.com/magaliet/genything/seedstore"
)

const valueWidth = 40

// openStore opens the configured store, creating the directory of a file
// backed store first.
func openStore(ctx context.Context, cfg *config.Config) (seedstore.Store, error) {
	storeURL := cfg.StoreURL()
	logger := logging.New(cli.Stderr, os.Getenv("GENYTHING_LOG"))

	if strings.HasPrefix(storeURL, "memory:") {
		cli.Warnf("%s is not persisted; nothing survives this command", storeURL)
	} else {
		dialect, err := dburl.InferDialectFromDBUrl(storeURL)
		if err != nil {
			return nil, err
		}
		if dialect == dburl.DialectSQLite || dialect == dburl.DialectBolt {
			if path, err := dburl.DSN(storeURL); err == nil && path != ":memory:" {
				path, _, _ = strings.Cut(path, "?")
				if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
					return nil, fmt.Errorf("failed to create store directory: %w", err)
				}
			}
		}
	}

	store, err := seedstore.Open(ctx, storeURL)
	if err != nil {
		return nil, err
	}
	logger.Debug("store_opened", "url", dburl.Redact(storeURL))
	return store, nil
}

// listCmd prints recorded failures, optionally only those whose property
// starts with args[0].
func listCmd(cfg *config.Config, args []string) error {
	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	failures, err := store.List(ctx)
	if err != nil {
		return err
	}

	var prefix string
	if len(args) > 0 {
		prefix = args[0]
	}

	var rows [][]string
	for _, f := range failures {
		if !strings.HasPrefix(f.Property, prefix) {
			continue
		}
		rows = append(rows, []string{
			f.Property,
			strconv.FormatInt(f.Seed, 10),
			strconv.Itoa(f.Trial),
			truncate(f.Value, valueWidth),
			f.CreatedAt.Local().Format(time.DateTime),
		})
	}
	if len(rows) == 0 {
		cli.Info("No recorded failures")
		return nil
	}
	cli.Table([]string{"property", "seed", "trial", "value", "recorded"}, rows)
	return nil
}

// forgetCmd deletes the given seeds of a property, or all of them.
func forgetCmd(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: genything forget <property> [seed...]")
	}
	property := args[0]
	var seeds []int64
	for _, raw := range args[1:] {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q", raw)
		}
		seeds = append(seeds, seed)
	}

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Forget(ctx, property, seeds...)
	if err != nil {
		return err
	}
	cli.Successf("Forgot %d seed(s) for %s", n, property)
	return nil
}

func truncate(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
