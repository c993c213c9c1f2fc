package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magaliet/genything/cli"
	"github.com/magaliet/genything/internal/config"
	"github.com/magaliet/genything/seedstore"
)

func captureOutput(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	oldOut, oldErr := cli.Stdout, cli.Stderr
	cli.Stdout, cli.Stderr = stdout, stderr
	t.Cleanup(func() { cli.Stdout, cli.Stderr = oldOut, oldErr })
	return stdout, stderr
}

func TestInitCmd(t *testing.T) {
	t.Setenv(config.StoreURLEnv, "")
	stdout, _ := captureOutput(t)
	dir := t.TempDir()

	require.NoError(t, initCmd(dir))
	assert.Contains(t, stdout.String(), "Created genything.ini")
	assert.FileExists(t, filepath.Join(dir, config.Filename))

	cfg, err := config.LoadFile(filepath.Join(dir, config.Filename))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultStoreURL, cfg.Store.URL)

	stdout.Reset()
	require.NoError(t, initCmd(dir))
	assert.Contains(t, stdout.String(), "Already initialized")
}

func TestEnsureGitignore(t *testing.T) {
	t.Run("creates file", func(t *testing.T) {
		dir := t.TempDir()
		updated, err := ensureGitignore(dir)
		require.NoError(t, err)
		assert.True(t, updated)

		content, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
		require.NoError(t, err)
		assert.Equal(t, "# genything seed database\n.genything/\n", string(content))
	})

	t.Run("appends to existing", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ".gitignore")
		require.NoError(t, os.WriteFile(path, []byte("*.log"), 0o644))

		updated, err := ensureGitignore(dir)
		require.NoError(t, err)
		assert.True(t, updated)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "*.log\n\n# genything seed database\n.genything/\n", string(content))
	})

	for _, entry := range []string{".genything", "/.genything/", "  .genything/  "} {
		t.Run("already present "+entry, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("bin/\n"+entry+"\n"), 0o644))
			updated, err := ensureGitignore(dir)
			require.NoError(t, err)
			assert.False(t, updated)
		})
	}
}

func TestSampleCmd(t *testing.T) {
	cfg := config.Default(t.TempDir())

	run := func(args ...string) (string, string) {
		stdout, stderr := captureOutput(t)
		require.NoError(t, sampleCmd(cfg, args))
		return stdout.String(), stderr.String()
	}

	first, diag := run("int", "-seed", "42", "-n", "5")
	second, _ := run("int", "-seed", "42", "-n", "5")
	assert.Equal(t, first, second)
	assert.Len(t, strings.Split(strings.TrimSpace(first), "\n"), 5)
	assert.Equal(t, "# generator=int seed=42 size=30\n", diag)

	small, _ := run("int", "-seed", "42", "-n", "50", "-size", "0")
	for _, line := range strings.Fields(small) {
		assert.Equal(t, "0", line)
	}

	for name := range samplers {
		t.Run(name, func(t *testing.T) {
			out, _ := run(name, "-seed", "7", "-n", "3")
			assert.Equal(t, 3, strings.Count(out, "\n"), "output: %s", out)
		})
	}

	doc, _ := run("article", "-seed", "1", "-n", "1", "-size", "2")
	assert.Contains(t, doc, `"_id":{"$oid":"`)
	assert.Contains(t, doc, `"author":`)

	_, diag = run("bool", "-n", "1")
	assert.NotContains(t, diag, "seed=0 ")
}

func TestSampleCmd_Errors(t *testing.T) {
	captureOutput(t)
	cfg := config.Default(t.TempDir())

	tests := []struct {
		args    []string
		wantErr string
	}{
		{nil, "usage"},
		{[]string{"unicorn"}, `unknown generator "unicorn"`},
		{[]string{"int", "-n", "0"}, "-n must be positive"},
		{[]string{"int", "-size", "-1"}, "-size must not be negative"},
		{[]string{"int", "-bogus"}, "flag provided but not defined"},
	}
	for _, tt := range tests {
		err := sampleCmd(cfg, tt.args)
		require.Error(t, err, "args %v", tt.args)
		assert.Contains(t, err.Error(), tt.wantErr)
	}
}

func TestListAndForget(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	cfg := config.Default(dir)
	cfg.Store.URL = "bolt:seeds.bolt"

	store, err := seedstore.OpenBolt(filepath.Join(dir, "seeds.bolt"))
	require.NoError(t, err)
	require.NoError(t, store.Record(ctx, seedstore.NewFailure("TestSum/commutes", 11, 3, "[1 2]")))
	require.NoError(t, store.Record(ctx, seedstore.NewFailure("TestSum/commutes", 22, 1, strings.Repeat("x", 100))))
	require.NoError(t, store.Record(ctx, seedstore.NewFailure("TestReverse/twice", 33, 9, "[]")))
	require.NoError(t, store.Close())

	stdout, _ := captureOutput(t)
	require.NoError(t, listCmd(cfg, nil))
	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "PROPERTY"), out)
	assert.Contains(t, out, "TestReverse/twice")
	assert.Contains(t, out, strings.Repeat("x", 37)+"...")

	stdout.Reset()
	require.NoError(t, listCmd(cfg, []string{"TestSum"}))
	assert.NotContains(t, stdout.String(), "TestReverse")
	assert.Equal(t, 3, strings.Count(stdout.String(), "\n"))

	stdout.Reset()
	require.NoError(t, forgetCmd(cfg, []string{"TestSum/commutes", "11"}))
	assert.Contains(t, stdout.String(), "Forgot 1 seed(s) for TestSum/commutes")

	stdout.Reset()
	require.NoError(t, forgetCmd(cfg, []string{"TestSum/commutes"}))
	assert.Contains(t, stdout.String(), "Forgot 1 seed(s)")

	stdout.Reset()
	require.NoError(t, listCmd(cfg, []string{"TestSum"}))
	assert.Equal(t, "No recorded failures\n", stdout.String())

	assert.ErrorContains(t, forgetCmd(cfg, nil), "usage")
	assert.ErrorContains(t, forgetCmd(cfg, []string{"p", "abc"}), `invalid seed "abc"`)
}

func TestOpenStore_CreatesDirectory(t *testing.T) {
	captureOutput(t)
	dir := t.TempDir()
	cfg := config.Default(dir)

	store, err := openStore(context.Background(), cfg)
	require.NoError(t, err)
	defer store.Close()

	assert.DirExists(t, filepath.Join(dir, ".genything"))
	assert.FileExists(t, filepath.Join(dir, ".genything", "seeds.db"))
}
