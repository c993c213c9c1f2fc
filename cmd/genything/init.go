package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magaliet/genything/cli"
	"github.com/magaliet/genything/internal/config"
)

const gitignoreEntry = ".genything/"

// initCmd writes a default genything.ini into dir and makes sure the local
// seed database is ignored by git.
func initCmd(dir string) error {
	path := filepath.Join(dir, config.Filename)
	created := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := config.Default(dir).Write(path); err != nil {
			return fmt.Errorf("failed to write %s: %w", config.Filename, err)
		}
		created = true
	} else if err != nil {
		return err
	}

	updated, err := ensureGitignore(dir)
	if err != nil {
		return fmt.Errorf("failed to update .gitignore: %w", err)
	}

	switch {
	case created && updated:
		cli.Successf("Created %s", config.Filename)
		cli.Info("  Updated .gitignore")
	case created:
		cli.Successf("Created %s", config.Filename)
	case updated:
		cli.Success("Updated .gitignore")
	default:
		cli.Infof("Already initialized (%s exists)", config.Filename)
	}
	return nil
}

// ensureGitignore appends .genything/ to .gitignore unless present.
// It reports whether the file was created or modified.
func ensureGitignore(dir string) (bool, error) {
	path := filepath.Join(dir, ".gitignore")

	content, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}

	for _, line := range strings.Split(string(content), "\n") {
		switch strings.TrimSpace(line) {
		case gitignoreEntry, ".genything", "/.genything/", "/.genything":
			return false, nil
		}
	}

	existing := string(content)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		existing += "\n"
	}
	if existing != "" {
		existing += "\n"
	}
	next := existing + "# genything seed database\n" + gitignoreEntry + "\n"
	if err := os.WriteFile(path, []byte(next), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
