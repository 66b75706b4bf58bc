package domain

import "strings"

// Environ is an immutable snapshot of the invoking process environment.
// The zero value is an empty environment.
type Environ struct {
	vars map[string]string
}

// NewEnviron builds a snapshot from "KEY=VALUE" entries as returned by os.Environ.
// Entries without "=" are ignored. When a key repeats, the first entry wins.
func NewEnviron(entries []string) Environ {
	vars := make(map[string]string, len(entries))
	for _, entry := range entries {
		k, v, ok := strings.Cut(entry, "=")
		if !ok || k == "" {
			continue
		}
		if _, exists := vars[k]; exists {
			continue
		}
		vars[k] = v
	}
	return Environ{vars: vars}
}

// EnvironFromMap builds a snapshot from a map. The map is copied.
func EnvironFromMap(m map[string]string) Environ {
	vars := make(map[string]string, len(m))
	for k, v := range m {
		vars[k] = v
	}
	return Environ{vars: vars}
}

// Lookup returns the value of key and whether it is set.
func (e Environ) Lookup(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

// Len returns the number of variables in the snapshot.
func (e Environ) Len() int {
	return len(e.vars)
}

// EnvVar is a single variable assignment inside the sandbox.
type EnvVar struct {
	Key   string
	Value string
}
