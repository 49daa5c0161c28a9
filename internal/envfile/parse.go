// Package envfile parses and validates dotenv example files such as
// backend/.env.example.
package envfile

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/harrison/docguard/internal/models"
)

var assignRegex = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*) *= *(.*)$`)

// Entry is one KEY=value assignment.
type Entry struct {
	Key   string
	Value string
	Line  int
}

// Env is a parsed env file. Later assignments of a key override earlier ones.
type Env struct {
	Path       string
	Entries    []Entry
	Duplicates []string

	values map[string]string
}

// Get returns the value of key and whether it was assigned.
func (e *Env) Get(key string) (string, bool) {
	v, ok := e.values[key]
	return v, ok
}

// Value returns the value of key, or "" when it is not assigned.
func (e *Env) Value(key string) string {
	return e.values[key]
}

// Has reports whether key was assigned.
func (e *Env) Has(key string) bool {
	_, ok := e.values[key]
	return ok
}

// Keys lists assigned keys in first-assignment order.
func (e *Env) Keys() []string {
	seen := make(map[string]bool, len(e.Entries))
	var keys []string
	for _, entry := range e.Entries {
		if !seen[entry.Key] {
			seen[entry.Key] = true
			keys = append(keys, entry.Key)
		}
	}
	return keys
}

// Parse reads dotenv text. Blank lines, comment lines and lines that are not
// assignments are ignored. An "export " prefix is stripped. A value wrapped in
// matching single or double quotes is unquoted as is; any other value loses a
// trailing "# comment".
func Parse(text string) *Env {
	env := &Env{values: make(map[string]string)}

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "export "); ok {
			line = strings.TrimSpace(rest)
		}

		m := assignRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		key, value := m[1], unquote(strings.TrimSpace(m[2]))

		if _, dup := env.values[key]; dup {
			env.Duplicates = append(env.Duplicates, key)
		}
		env.values[key] = value
		env.Entries = append(env.Entries, Entry{Key: key, Value: value, Line: i + 1})
	}

	return env
}

func unquote(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' || first == '\'') && first == last {
			return value[1 : len(value)-1]
		}
	}
	if hash := strings.Index(value, "#"); hash >= 0 {
		value = strings.TrimSpace(value[:hash])
	}
	return value
}

// Load reads and parses the env file at path.
func Load(path string) (*Env, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}
	env := Parse(models.DecodeText(data))
	env.Path = path
	return env, nil
}
