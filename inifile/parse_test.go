package inifile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mustParse(t *testing.T, ini string) *File {
	t.Helper()
	f, err := Parse(strings.NewReader(ini))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return f
}

func TestParse(t *testing.T) {
	t.Run("empty file", func(t *testing.T) {
		f := mustParse(t, "")
		if len(f.Sections) != 0 {
			t.Errorf("expected empty sections, got %d", len(f.Sections))
		}
	})

	t.Run("multiple sections", func(t *testing.T) {
		f := mustParse(t, "[store]\nurl = sqlite:seeds.db\n[sample]\ncount = 5\n")
		if got := f.Get("store", "url"); got != "sqlite:seeds.db" {
			t.Errorf("store.url: got %q", got)
		}
		if got := f.Get("sample", "count"); got != "5" {
			t.Errorf("sample.count: got %q", got)
		}
	})

	t.Run("comments", func(t *testing.T) {
		f := mustParse(t, "# header\n; other\n[sample]\nseed = 42 # pinned\nsize = 10\t; small\n")
		if got := f.Get("sample", "seed"); got != "42" {
			t.Errorf("seed: got %q, want 42", got)
		}
		if got := f.Get("sample", "size"); got != "10" {
			t.Errorf("size: got %q, want 10", got)
		}
	})

	t.Run("value containing equals and hash", func(t *testing.T) {
		f := mustParse(t, "[store]\nurl = postgres://u:p@h/db?sslmode=disable#frag\n")
		if got := f.Get("store", "url"); got != "postgres://u:p@h/db?sslmode=disable#frag" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("keys before any section are ignored", func(t *testing.T) {
		f := mustParse(t, "orphan = 1\n[s]\nk = v\n")
		if len(f.Sections) != 1 || len(f.Sections[0].Values) != 1 {
			t.Errorf("unexpected sections: %+v", f.Sections)
		}
	})

	t.Run("lines without equals are ignored", func(t *testing.T) {
		f := mustParse(t, "[s]\njunk\nk = v\n")
		if got := f.Get("s", "k"); got != "v" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("unterminated header", func(t *testing.T) {
		if _, err := Parse(strings.NewReader("[store\nurl = x\n")); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("last value wins", func(t *testing.T) {
		f := mustParse(t, "[s]\nk = 1\nk = 2\n")
		if got := f.Get("s", "k"); got != "2" {
			t.Errorf("got %q, want 2", got)
		}
	})
}

func TestCaseInsensitivity(t *testing.T) {
	f := mustParse(t, "[Store]\nURL = x\n")
	if got := f.Get("STORE", "url"); got != "x" {
		t.Errorf("got %q", got)
	}
	if f.Section("store") == nil {
		t.Error("section lookup should be case-insensitive")
	}
}

func TestLookup(t *testing.T) {
	f := mustParse(t, "[s]\nempty =\nk = v\n")

	tests := []struct {
		section, key string
		want         string
		ok           bool
	}{
		{"s", "k", "v", true},
		{"s", "empty", "", true},
		{"s", "missing", "", false},
		{"missing", "k", "", false},
	}
	for _, tt := range tests {
		got, ok := f.Lookup(tt.section, tt.key)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Lookup(%q, %q) = %q, %v; want %q, %v", tt.section, tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTypedGetters(t *testing.T) {
	f := mustParse(t, `
[sample]
seed = -42
count = 7
bad = seven
verbose = yes
quiet = 0
maybe = perhaps
empty =
`)

	if v, ok, err := f.GetInt64("sample", "seed"); err != nil || !ok || v != -42 {
		t.Errorf("seed = %d, %v, %v", v, ok, err)
	}
	if v, ok, err := f.GetInt("sample", "count"); err != nil || !ok || v != 7 {
		t.Errorf("count = %d, %v, %v", v, ok, err)
	}
	if _, ok, err := f.GetInt("sample", "bad"); err == nil || !ok {
		t.Errorf("bad: expected error, got ok=%v err=%v", ok, err)
	}
	if _, ok, err := f.GetInt("sample", "empty"); err != nil || ok {
		t.Errorf("empty: expected not ok, got ok=%v err=%v", ok, err)
	}
	if _, ok, err := f.GetInt("sample", "missing"); err != nil || ok {
		t.Errorf("missing: expected not ok, got ok=%v err=%v", ok, err)
	}

	if v, ok, err := f.GetBool("sample", "verbose"); err != nil || !ok || !v {
		t.Errorf("verbose = %v, %v, %v", v, ok, err)
	}
	if v, ok, err := f.GetBool("sample", "quiet"); err != nil || !ok || v {
		t.Errorf("quiet = %v, %v, %v", v, ok, err)
	}
	if _, _, err := f.GetBool("sample", "maybe"); err == nil {
		t.Error("maybe: expected error")
	} else if !strings.Contains(err.Error(), "sample.maybe") {
		t.Errorf("error should name the key, got %v", err)
	}
}

func TestSet(t *testing.T) {
	f := &File{}
	f.Set("Store", "URL", "a")
	f.Set("store", "url", "b")
	f.Set("sample", "count", "3")

	if got := f.Get("store", "url"); got != "b" {
		t.Errorf("got %q, want b", got)
	}
	if len(f.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(f.Sections))
	}
	if len(f.Sections[0].Values) != 1 {
		t.Errorf("Set should replace, got %+v", f.Sections[0].Values)
	}
}

func TestWrite(t *testing.T) {
	f := &File{}
	f.Set("store", "url", "sqlite:.genything/seeds.db")
	f.Set("sample", "count", "10")
	f.Set("sample", "size", "30")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "[store]\nurl = sqlite:.genything/seeds.db\n\n[sample]\ncount = 10\nsize = 30\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genything.ini")

	f := &File{}
	f.Set("store", "url", "bolt:///tmp/seeds.bolt")
	f.Set("sample", "seed", "99")
	if err := f.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if got.Get("store", "url") != "bolt:///tmp/seeds.bolt" {
		t.Errorf("store.url = %q", got.Get("store", "url"))
	}
	if v, _, _ := got.GetInt64("sample", "seed"); v != 99 {
		t.Errorf("sample.seed = %d", v)
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.ini")); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
