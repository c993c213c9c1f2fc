// Package inifile reads and writes the small INI dialect used by
// genything.ini: [section] headers, key = value pairs, and # or ; comments.
// Section and key names are case-insensitive.
package inifile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// File represents a parsed INI file.
type File struct {
	Sections []Section
}

// Section represents a named section in an INI file.
type Section struct {
	Name   string
	Values []KeyValue // preserves order
}

// KeyValue represents a key-value pair.
type KeyValue struct {
	Key   string
	Value string
}

// Parse reads an INI file from the given reader.
func Parse(r io.Reader) (*File, error) {
	f := &File{}
	var current *Section

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return nil, fmt.Errorf("line %d: unterminated section header %q", lineNo, line)
			}
			name := strings.ToLower(strings.TrimSpace(strings.Trim(line, "[]")))
			f.Sections = append(f.Sections, Section{Name: name})
			current = &f.Sections[len(f.Sections)-1]
			continue
		}

		// Keys before any section are ignored.
		if current == nil {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		current.Values = append(current.Values, KeyValue{
			Key:   strings.ToLower(strings.TrimSpace(key)),
			Value: stripComment(strings.TrimSpace(value)),
		})
	}

	return f, scanner.Err()
}

// stripComment removes a trailing " #" or " ;" comment from a value.
func stripComment(v string) string {
	for _, marker := range []string{" #", " ;", "\t#", "\t;"} {
		if i := strings.Index(v, marker); i >= 0 {
			v = strings.TrimSpace(v[:i])
		}
	}
	return v
}

// ParseFile reads and parses an INI file from disk.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Section returns the section with the given name, or nil.
func (f *File) Section(name string) *Section {
	name = strings.ToLower(name)
	for i := range f.Sections {
		if f.Sections[i].Name == name {
			return &f.Sections[i]
		}
	}
	return nil
}

// Get returns the last value for a key in a section.
func (f *File) Get(section, key string) string {
	v, _ := f.Lookup(section, key)
	return v
}

// Lookup is Get that also reports whether the key is present.
func (f *File) Lookup(section, key string) (string, bool) {
	s := f.Section(section)
	if s == nil {
		return "", false
	}
	return s.Lookup(key)
}

// GetInt64 parses a key as a base-10 integer. A missing or empty key
// reports ok = false.
func (f *File) GetInt64(section, key string) (v int64, ok bool, err error) {
	raw, ok := f.Lookup(section, key)
	if !ok || raw == "" {
		return 0, false, nil
	}
	v, err = strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, true, fmt.Errorf("%s.%s: invalid integer %q", section, key, raw)
	}
	return v, true, nil
}

// GetInt is GetInt64 for int.
func (f *File) GetInt(section, key string) (int, bool, error) {
	v, ok, err := f.GetInt64(section, key)
	return int(v), ok, err
}

// GetBool accepts true/false/1/0/yes/no/on/off.
func (f *File) GetBool(section, key string) (v bool, ok bool, err error) {
	raw, ok := f.Lookup(section, key)
	if !ok || raw == "" {
		return false, false, nil
	}
	switch strings.ToLower(raw) {
	case "true", "1", "yes", "on":
		return true, true, nil
	case "false", "0", "no", "off":
		return false, true, nil
	default:
		return false, true, fmt.Errorf("%s.%s: invalid boolean %q (expected true/false/1/0)", section, key, raw)
	}
}

// Get returns the last value for a key.
func (s *Section) Get(key string) string {
	v, _ := s.Lookup(key)
	return v
}

// Lookup returns the last value for a key and whether it is present.
func (s *Section) Lookup(key string) (string, bool) {
	key = strings.ToLower(key)
	var (
		result string
		found  bool
	)
	for _, kv := range s.Values {
		if kv.Key == key {
			result, found = kv.Value, true
		}
	}
	return result, found
}

// Set sets a key in a section, creating the section if needed and
// replacing an existing value.
func (f *File) Set(section, key, value string) {
	section = strings.ToLower(section)
	key = strings.ToLower(key)

	s := f.Section(section)
	if s == nil {
		f.Sections = append(f.Sections, Section{Name: section})
		s = &f.Sections[len(f.Sections)-1]
	}

	for i := range s.Values {
		if s.Values[i].Key == key {
			s.Values[i].Value = value
			return
		}
	}
	s.Values = append(s.Values, KeyValue{Key: key, Value: value})
}

// Write serializes the INI file to the given writer.
func (f *File) Write(w io.Writer) error {
	for i, section := range f.Sections {
		if _, err := fmt.Fprintf(w, "[%s]\n", section.Name); err != nil {
			return err
		}
		for _, kv := range section.Values {
			if _, err := fmt.Fprintf(w, "%s = %s\n", kv.Key, kv.Value); err != nil {
				return err
			}
		}
		if i < len(f.Sections)-1 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteFile writes the INI file to the specified path.
func (f *File) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := f.Write(file); err != nil {
		return err
	}
	return file.Sync()
}
